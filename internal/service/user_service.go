package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"
	"github.com/vuongphamdev/migration-project/internal/entity"
)

// UserStore is the persistence surface the user service needs. It is
// satisfied by repository.UserRepository and by test substitutes.
type UserStore interface {
	Create(ctx context.Context, name, email string) (int, error)
	GetAll(ctx context.Context) ([]entity.User, error)
	GetByID(ctx context.Context, id int) (*entity.User, error)
	Update(ctx context.Context, id int, name, email string) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type UserService struct {
	repo        UserStore
	kafkaWriter *kafka.Writer
}

// NewUserService creates a new instance of UserService. The writer may be
// nil, which disables event publishing.
func NewUserService(repo UserStore, kafkaWriter *kafka.Writer) *UserService {
	return &UserService{repo: repo, kafkaWriter: kafkaWriter}
}

func (s *UserService) CreateUser(ctx context.Context, name, email string) (int, error) {
	id, err := s.repo.Create(ctx, name, email)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating user")
		return 0, err
	}

	publishEvent(ctx, s.kafkaWriter, fmt.Sprintf("user-created-%d", id), map[string]interface{}{
		"id":    id,
		"name":  name,
		"email": email,
	})

	return id, nil
}

func (s *UserService) GetUsers(ctx context.Context) ([]entity.User, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing users")
		return nil, err
	}

	return users, nil
}

// GetUserByID returns ErrNotFound when the id does not exist.
func (s *UserService) GetUserByID(ctx context.Context, id int) (*entity.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Msgf("Error getting user by ID %d", id)
		return nil, err
	}

	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id int, name, email string) (bool, error) {
	updated, err := s.repo.Update(ctx, id, name, email)
	if err != nil {
		logger.Error().Err(err).Msgf("Error updating user %d", id)
		return false, err
	}

	return updated, nil
}

// DeleteUser removes the user; the store cascades deletion of its posts.
func (s *UserService) DeleteUser(ctx context.Context, id int) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error deleting user %d", id)
		return false, err
	}

	if deleted {
		publishEvent(ctx, s.kafkaWriter, fmt.Sprintf("user-deleted-%d", id), map[string]interface{}{
			"id": id,
		})
	}

	return deleted, nil
}
