package repository

import (
	"context"
	"errors"
	"time"

	"github.com/kiddocare/auth-api/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no user matches the query.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when a create hits the unique email index.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}
