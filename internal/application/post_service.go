package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mahendrairawan/sociable/internal/apperror"
	"github.com/mahendrairawan/sociable/internal/domain/entity"
	"github.com/mahendrairawan/sociable/internal/domain/repository"
)

// PostService covers authoring, comments, likes and the feed queries.
type PostService struct {
	Posts  repository.PostRepository
	Users  repository.UserRepository
	Notifs repository.NotificationRepository
	Images ImageStore
	Logger *logrus.Logger
}

func NewPostService(posts repository.PostRepository, users repository.UserRepository,
	notifs repository.NotificationRepository, images ImageStore, logger *logrus.Logger) *PostService {
	return &PostService{Posts: posts, Users: users, Notifs: notifs, Images: images, Logger: logger}
}

type CreatePostInput struct {
	Text  string
	Image string // base64 data URI, optional
}

// Create stores a new post. The image (when present) is uploaded first so a
// failed upload leaves no half-written post behind.
func (s *PostService) Create(ctx context.Context, authorID string, in CreatePostInput) (*entity.Post, error) {
	author, err := s.Users.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, err
	}
	if in.Text == "" && in.Image == "" {
		return nil, apperror.Validation("post must have text or image")
	}

	imageURL := ""
	if in.Image != "" {
		data, contentType, err := decodeImagePayload(in.Image)
		if err != nil {
			return nil, err
		}
		imageURL, err = s.Images.Upload(ctx, data, contentType)
		if err != nil {
			return nil, err
		}
	}

	p := &entity.Post{
		ID:       uuid.NewString(),
		AuthorID: authorID,
		Text:     in.Text,
		ImageURL: imageURL,
	}
	if err := s.Posts.Create(ctx, p); err != nil {
		return nil, err
	}
	p.Author = author
	p.Likes = []string{}
	p.Comments = []entity.Comment{}
	return p, nil
}

// Delete removes a post owned by the actor, along with its hosted image.
// Image removal failures are logged but do not block the delete.
func (s *PostService) Delete(ctx context.Context, actorID, postID string) error {
	p, err := s.Posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("Post not found")
		}
		return err
	}
	if p.AuthorID != actorID {
		return apperror.Unauthorized("You are not authorized to delete this post")
	}
	if p.ImageURL != "" {
		if err := s.Images.Remove(ctx, p.ImageURL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("post_id", postID).Warn("remove post image failed")
		}
	}
	return s.Posts.Delete(ctx, postID)
}

// Comment appends a comment and returns the post with comments hydrated.
func (s *PostService) Comment(ctx context.Context, actorID, postID, text string) (*entity.Post, error) {
	if text == "" {
		return nil, apperror.Validation("text field is required")
	}
	if _, err := s.Posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("post not found")
		}
		return nil, err
	}
	c := &entity.Comment{
		ID:        uuid.NewString(),
		UserID:    actorID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Posts.AddComment(ctx, postID, c); err != nil {
		return nil, err
	}
	return s.Posts.GetByID(ctx, postID)
}

// LikeToggle likes the post when the actor has not liked it and unlikes it
// otherwise, reporting which way it went. A like on someone else's post
// emits a notification; liking your own post does not.
func (s *PostService) LikeToggle(ctx context.Context, actorID, postID string) (bool, error) {
	p, err := s.Posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, apperror.NotFound("post not found")
		}
		return false, err
	}

	liked, err := s.Posts.HasLiked(ctx, postID, actorID)
	if err != nil {
		return false, err
	}
	if liked {
		if err := s.Posts.Unlike(ctx, postID, actorID); err != nil {
			return false, err
		}
		return false, nil
	}

	added, err := s.Posts.Like(ctx, postID, actorID)
	if err != nil {
		return false, err
	}
	if added && p.AuthorID != actorID {
		n := &entity.Notification{
			ID:     uuid.NewString(),
			FromID: actorID,
			ToID:   p.AuthorID,
			Kind:   entity.NotificationLike,
		}
		if err := s.Notifs.Create(ctx, n); err != nil {
			return true, err
		}
	}
	return true, nil
}

// All returns every post, newest first.
func (s *PostService) All(ctx context.Context) ([]entity.Post, error) {
	return s.Posts.ListAll(ctx)
}

// Following returns posts authored by users the viewer follows.
func (s *PostService) Following(ctx context.Context, viewerID string) ([]entity.Post, error) {
	return s.Posts.ListByFollowed(ctx, viewerID)
}

// ByUser returns the named user's posts, newest first.
func (s *PostService) ByUser(ctx context.Context, username string) ([]entity.Post, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, err
	}
	return s.Posts.ListByAuthor(ctx, u.ID)
}

// LikedBy returns posts the given user has liked.
func (s *PostService) LikedBy(ctx context.Context, userID string) ([]entity.Post, error) {
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, err
	}
	return s.Posts.ListLikedBy(ctx, userID)
}
