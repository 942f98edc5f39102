package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"contact-management/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines methods for interacting with user storage.
type RepositoryInterface interface {
	CountByUsername(ctx context.Context, username string) (int, error)
	Create(ctx context.Context, username, passwordHash, name string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByToken(ctx context.Context, token string) (*models.User, error)
	UpdateProfile(ctx context.Context, username string, name, passwordHash *string) (*models.User, error)
	SetToken(ctx context.Context, username, token string) error
	ClearToken(ctx context.Context, username string) error
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

func (r *Repository) CountByUsername(ctx context.Context, username string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE username = $1`, username).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("repository.CountByUsername: %w", err)
	}
	return count, nil
}

func (r *Repository) Create(ctx context.Context, username, passwordHash, name string) (*models.User, error) {
	user := &models.User{}
	query := `
		INSERT INTO users (username, password, name)
		VALUES ($1, $2, $3)
		RETURNING username, name`
	err := r.db.QueryRow(ctx, query, username, passwordHash, name).Scan(&user.Username, &user.Name)
	if err != nil {
		return nil, fmt.Errorf("repository.CreateUser: %w", err)
	}
	return user, nil
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT username, password, name, token FROM users WHERE username = $1`
	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.Username, &user.PasswordHash, &user.Name, &user.Token,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository.FindByUsername: %w", err)
	}
	return user, nil
}

func (r *Repository) FindByToken(ctx context.Context, token string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT username, password, name, token FROM users WHERE token = $1`
	err := r.db.QueryRow(ctx, query, token).Scan(
		&user.Username, &user.PasswordHash, &user.Name, &user.Token,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository.FindByToken: %w", err)
	}
	return user, nil
}

// UpdateProfile applies a partial update; nil fields are left untouched.
func (r *Repository) UpdateProfile(ctx context.Context, username string, name, passwordHash *string) (*models.User, error) {
	var setClauses []string
	var args []interface{}
	argIdx := 1

	if name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *name)
		argIdx++
	}
	if passwordHash != nil {
		setClauses = append(setClauses, fmt.Sprintf("password = $%d", argIdx))
		args = append(args, *passwordHash)
		argIdx++
	}

	if len(setClauses) == 0 {
		return r.FindByUsername(ctx, username)
	}

	args = append(args, username)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE username = $%d RETURNING username, name`,
		strings.Join(setClauses, ", "), argIdx)

	user := &models.User{}
	err := r.db.QueryRow(ctx, query, args...).Scan(&user.Username, &user.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository.UpdateProfile: %w", err)
	}
	return user, nil
}

func (r *Repository) SetToken(ctx context.Context, username, token string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE users SET token = $1 WHERE username = $2`, token, username)
	if err != nil {
		return fmt.Errorf("repository.SetToken: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (r *Repository) ClearToken(ctx context.Context, username string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE users SET token = NULL WHERE username = $1`, username)
	if err != nil {
		return fmt.Errorf("repository.ClearToken: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrUserNotFound
	}
	return nil
}
