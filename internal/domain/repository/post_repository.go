package repository

import (
	"context"

	"github.com/mahendrairawan/sociable/internal/domain/entity"
)

// PostRepository defines post, comment and like database operations.
// List results are newest-first and hydrated: author and comment users carry
// public profile fields, likes carry user ids.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	Delete(ctx context.Context, id string) error

	AddComment(ctx context.Context, postID string, c *entity.Comment) error

	// Like and Unlike are idempotent single-statement writes; Like reports
	// whether a new like was recorded.
	Like(ctx context.Context, postID, userID string) (bool, error)
	Unlike(ctx context.Context, postID, userID string) error
	HasLiked(ctx context.Context, postID, userID string) (bool, error)

	ListAll(ctx context.Context) ([]entity.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]entity.Post, error)
	ListByFollowed(ctx context.Context, viewerID string) ([]entity.Post, error)
	ListLikedBy(ctx context.Context, userID string) ([]entity.Post, error)
}
