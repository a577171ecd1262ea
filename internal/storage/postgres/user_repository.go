package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"gw-fraud-scoring/internal/custom_err"
	"gw-fraud-scoring/internal/models"
	"gw-fraud-scoring/internal/storage"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

type PgUserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *PgUserRepository {
	return &PgUserRepository{db: db}
}

func (r *PgUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	const op = "storage.CreateUser"

	var created models.User
	err := r.db.QueryRow(ctx, storage.CreateUserQuery,
		user.ID, user.Username, user.Email, user.FullName, user.Role, user.PasswordHash,
	).Scan(
		&created.ID,
		&created.Username,
		&created.Email,
		&created.FullName,
		&created.Role,
		&created.Enabled,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, custom_err.ErrDuplicateRequest
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	created.PasswordHash = user.PasswordHash
	return &created, nil
}

func (r *PgUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.GetUserByUsername"

	var user models.User
	err := r.db.QueryRow(ctx, storage.GetUserByUsernameQuery, username).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FullName,
		&user.Role,
		&user.PasswordHash,
		&user.Enabled,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, custom_err.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &user, nil
}

func (r *PgUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	const op = "storage.ExistsByUsername"

	var exists bool
	if err := r.db.QueryRow(ctx, storage.CheckUserExistsByUsernameQuery, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}
