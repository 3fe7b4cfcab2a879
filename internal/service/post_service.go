package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"
	"github.com/vuongphamdev/migration-project/internal/entity"
)

// PostStore is the persistence surface the post service needs. It is
// satisfied by repository.PostRepository and by test substitutes.
type PostStore interface {
	Create(ctx context.Context, userID int, title, content string) (int, error)
	GetPage(ctx context.Context, page, limit int) ([]entity.Post, int, error)
	GetByID(ctx context.Context, id int) (*entity.Post, error)
	Update(ctx context.Context, id int, title, content string) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type PostService struct {
	repo        PostStore
	kafkaWriter *kafka.Writer
}

// NewPostService creates a new instance of PostService. The writer may be
// nil, which disables event publishing.
func NewPostService(repo PostStore, kafkaWriter *kafka.Writer) *PostService {
	return &PostService{repo: repo, kafkaWriter: kafkaWriter}
}

// CreatePost inserts the post. A user_id that references no live user is
// rejected by the store's foreign key and surfaces as a plain error.
func (s *PostService) CreatePost(ctx context.Context, userID int, title, content string) (int, error) {
	id, err := s.repo.Create(ctx, userID, title, content)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating post")
		return 0, err
	}

	publishEvent(ctx, s.kafkaWriter, fmt.Sprintf("post-created-%d", id), map[string]interface{}{
		"id":      id,
		"user_id": userID,
		"title":   title,
	})

	return id, nil
}

// GetPosts returns one page of posts plus the total row count.
func (s *PostService) GetPosts(ctx context.Context, page, limit int) ([]entity.Post, int, error) {
	posts, total, err := s.repo.GetPage(ctx, page, limit)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing posts")
		return nil, 0, err
	}

	return posts, total, nil
}

// GetPostByID returns ErrNotFound when the id does not exist.
func (s *PostService) GetPostByID(ctx context.Context, id int) (*entity.Post, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Msgf("Error getting post by ID %d", id)
		return nil, err
	}

	return post, nil
}

func (s *PostService) UpdatePost(ctx context.Context, id int, title, content string) (bool, error) {
	updated, err := s.repo.Update(ctx, id, title, content)
	if err != nil {
		logger.Error().Err(err).Msgf("Error updating post %d", id)
		return false, err
	}

	return updated, nil
}

func (s *PostService) DeletePost(ctx context.Context, id int) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error deleting post %d", id)
		return false, err
	}

	if deleted {
		publishEvent(ctx, s.kafkaWriter, fmt.Sprintf("post-deleted-%d", id), map[string]interface{}{
			"id": id,
		})
	}

	return deleted, nil
}
