package repository

import (
	"context"
	"database/sql"

	"collabtime-api/core/database"
	"collabtime-api/core/logger"
	"collabtime-api/modules/auth/entity"

	"github.com/google/uuid"
)

// UserRepository handles user database operations
type UserRepository struct {
	DB database.Database
}

// NewUserRepository creates a new repository instance
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{DB: db}
}

// UserRepositoryInterface defines the repository contract
type UserRepositoryInterface interface {
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetUserByGoogleID(ctx context.Context, googleID string) (*entity.User, error)
	LinkGoogleID(ctx context.Context, userID uuid.UUID, googleID string) error
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (email, password, name, google_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, password, name, google_id, email_verified_at, created_at, updated_at
	`

	var created entity.User
	err := r.DB.GetContext(ctx, &created, query, user.Email, user.Password, user.Name, user.GoogleID)
	if err != nil {
		logger.Error("UserRepository:CreateUser", err)
		return nil, err
	}

	return &created, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, email, password, name, google_id, email_verified_at, created_at, updated_at
		FROM users WHERE email = $1
	`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetUserByEmail", err)
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, email, password, name, google_id, email_verified_at, created_at, updated_at
		FROM users WHERE id = $1
	`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetUserByID", err)
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	query := `
		SELECT id, email, password, name, google_id, email_verified_at, created_at, updated_at
		FROM users WHERE google_id = $1
	`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, googleID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetUserByGoogleID", err)
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) LinkGoogleID(ctx context.Context, userID uuid.UUID, googleID string) error {
	err := r.DB.ExecContext(ctx, `UPDATE users SET google_id = $1, updated_at = NOW() WHERE id = $2`, googleID, userID)
	if err != nil {
		logger.Error("UserRepository:LinkGoogleID", err)
	}
	return err
}
