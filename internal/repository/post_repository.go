package repository

import (
	"context"
	"database/sql"

	"github.com/vuongphamdev/migration-project/internal/entity"
)

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db}
}

func (r *PostRepository) Create(ctx context.Context, userID int, title, content string) (int, error) {
	query := `INSERT INTO posts (user_id, title, content) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, userID, title, content)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	return int(id), nil
}

func (r *PostRepository) GetAll(ctx context.Context) ([]entity.Post, error) {
	query := `SELECT id, user_id, title, content, created_at FROM posts ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

// GetPage returns one page of posts plus the total row count, newest first.
func (r *PostRepository) GetPage(ctx context.Context, page, limit int) ([]entity.Post, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM posts`
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	query := `SELECT id, user_id, title, content, created_at FROM posts ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	posts, err := scanPosts(rows)
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// GetByID passes sql.ErrNoRows through when no post matches.
func (r *PostRepository) GetByID(ctx context.Context, id int) (*entity.Post, error) {
	post := &entity.Post{}
	query := `SELECT id, user_id, title, content, created_at FROM posts WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&post.ID, &post.UserID, &post.Title, &post.Content, &post.CreatedAt)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (r *PostRepository) Update(ctx context.Context, id int, title, content string) (bool, error) {
	query := `UPDATE posts SET title = ?, content = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, title, content, id)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *PostRepository) Delete(ctx context.Context, id int) (bool, error) {
	query := `DELETE FROM posts WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func scanPosts(rows *sql.Rows) ([]entity.Post, error) {
	posts := []entity.Post{}
	for rows.Next() {
		var post entity.Post
		err := rows.Scan(&post.ID, &post.UserID, &post.Title, &post.Content, &post.CreatedAt)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	return posts, rows.Err()
}
