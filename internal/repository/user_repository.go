package repository

import (
	"context"
	"database/sql"

	"github.com/vuongphamdev/migration-project/internal/entity"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db}
}

func (r *UserRepository) Create(ctx context.Context, name, email string) (int, error) {
	query := `INSERT INTO users (name, email) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, query, name, email)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	return int(id), nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]entity.User, error) {
	query := `SELECT id, name, email, created_at FROM users ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []entity.User{}
	for rows.Next() {
		var user entity.User
		err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// GetByID passes sql.ErrNoRows through when no user matches.
func (r *UserRepository) GetByID(ctx context.Context, id int) (*entity.User, error) {
	user := &entity.User{}
	query := `SELECT id, name, email, created_at FROM users WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) Update(ctx context.Context, id int, name, email string) (bool, error) {
	query := `UPDATE users SET name = ?, email = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, name, email, id)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// Delete removes the user; the posts foreign key cascades the deletion
// of any posts that reference it.
func (r *UserRepository) Delete(ctx context.Context, id int) (bool, error) {
	query := `DELETE FROM users WHERE id = ?`
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
