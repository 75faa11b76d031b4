package repository

import (
	"context"
	"errors"

	"github.com/mahendrairawan/sociable/internal/domain/entity"
)

// ErrNotFound is returned by repositories when a record does not exist.
// Services translate it into the HTTP not-found taxonomy.
var ErrNotFound = errors.New("not found")

// Duplicate-key errors returned when a write loses the registration race and
// hits the database unique constraint instead of the pre-check.
var (
	ErrDuplicateUsername = errors.New("username already taken")
	ErrDuplicateEmail    = errors.New("email already taken")
)

// UserRepository defines user and social-graph database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	UsernameTaken(ctx context.Context, username string) (bool, error)
	EmailTaken(ctx context.Context, email string) (bool, error)

	// Social graph. Follow and Unfollow are idempotent: re-adding an existing
	// edge or removing an absent one is a no-op. Follow reports whether a new
	// edge was written.
	IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error)
	Follow(ctx context.Context, followerID, followeeID string) (bool, error)
	Unfollow(ctx context.Context, followerID, followeeID string) error

	// Suggested samples up to sampleSize random users other than userID,
	// drops the ones already followed and truncates to limit.
	Suggested(ctx context.Context, userID string, sampleSize, limit int) ([]entity.User, error)
}
