package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mahendrairawan/sociable/internal/apperror"
	"github.com/mahendrairawan/sociable/internal/domain/entity"
	"github.com/mahendrairawan/sociable/internal/domain/repository"
	"github.com/mahendrairawan/sociable/pkg/helpers"
	"github.com/mahendrairawan/sociable/pkg/mailer"
)

const (
	suggestedSampleSize = 10
	suggestedLimit      = 4
)

// UserService covers public profiles, the social graph and profile updates.
type UserService struct {
	Users  repository.UserRepository
	Notifs repository.NotificationRepository
	Images ImageStore
	Index  *UserIndex
	Mail   EmailPublisher
	Logger *logrus.Logger
}

func NewUserService(users repository.UserRepository, notifs repository.NotificationRepository,
	images ImageStore, index *UserIndex, mail EmailPublisher, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, Notifs: notifs, Images: images, Index: index, Mail: mail, Logger: logger}
}

// Profile returns the public profile for a username.
func (s *UserService) Profile(ctx context.Context, username string) (*entity.User, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, err
	}
	return u, nil
}

// FollowToggle follows the target when no edge exists and unfollows it
// otherwise, reporting which way it went. Both edge writes are idempotent;
// a follow emits a notification to the target.
func (s *UserService) FollowToggle(ctx context.Context, actorID, targetID string) (bool, error) {
	if actorID == targetID {
		return false, apperror.Validation("you can't follow/unfollow yourself")
	}
	if _, err := s.Users.GetByID(ctx, targetID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, apperror.NotFound("user not found")
		}
		return false, err
	}

	following, err := s.Users.IsFollowing(ctx, actorID, targetID)
	if err != nil {
		return false, err
	}
	if following {
		if err := s.Users.Unfollow(ctx, actorID, targetID); err != nil {
			return false, err
		}
		return false, nil
	}

	added, err := s.Users.Follow(ctx, actorID, targetID)
	if err != nil {
		return false, err
	}
	if added {
		n := &entity.Notification{
			ID:     uuid.NewString(),
			FromID: actorID,
			ToID:   targetID,
			Kind:   entity.NotificationFollow,
		}
		if err := s.Notifs.Create(ctx, n); err != nil {
			return true, err
		}
	}
	return true, nil
}

// Suggested returns up to 4 profiles the actor does not follow yet. The
// sample is drawn before filtering, so fewer than 4 may come back.
func (s *UserService) Suggested(ctx context.Context, actorID string) ([]entity.User, error) {
	return s.Users.Suggested(ctx, actorID, suggestedSampleSize, suggestedLimit)
}

// UpdateProfileInput uses pointers to distinguish absent fields (unchanged)
// from present ones, including present-but-empty (clear).
type UpdateProfileInput struct {
	Username        *string
	FullName        *string
	Email           *string
	Bio             *string
	Link            *string
	ProfileImg      *string // base64 data URI to replace, "" to clear
	CoverImg        *string
	CurrentPassword *string
	NewPassword     *string
}

// UpdateProfile applies a partial update. Image uploads happen before the
// database write so an upload failure aborts the whole update; password
// changes require both current and new password.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, err
	}

	passwordChanged := false
	if (in.CurrentPassword == nil) != (in.NewPassword == nil) {
		return nil, apperror.Validation("please provide both current password and new password")
	}
	if in.CurrentPassword != nil {
		if !helpers.CompareHashAndPassword(u.Password, *in.CurrentPassword) {
			return nil, apperror.Validation("current password doesn't match")
		}
		if len(*in.NewPassword) < minPasswordLen {
			return nil, apperror.Validation("Password must be at least 6 characters long")
		}
		hash, err := helpers.HashPassword(*in.NewPassword)
		if err != nil {
			return nil, err
		}
		u.Password = hash
		passwordChanged = true
	}

	if in.Username != nil {
		if *in.Username == "" {
			return nil, apperror.Validation("username cannot be empty")
		}
		u.Username = *in.Username
	}
	if in.Email != nil {
		if !emailPattern.MatchString(*in.Email) {
			return nil, apperror.Validation("Invalid email format")
		}
		u.Email = *in.Email
	}
	if in.FullName != nil {
		u.FullName = *in.FullName
	}
	if in.Bio != nil {
		u.Bio = *in.Bio
	}
	if in.Link != nil {
		u.Link = *in.Link
	}

	if in.ProfileImg != nil {
		url, err := s.replaceImage(ctx, u.ProfileImg, *in.ProfileImg)
		if err != nil {
			return nil, err
		}
		u.ProfileImg = url
	}
	if in.CoverImg != nil {
		url, err := s.replaceImage(ctx, u.CoverImg, *in.CoverImg)
		if err != nil {
			return nil, err
		}
		u.CoverImg = url
	}

	if err := s.Users.Update(ctx, u); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, apperror.Validation("Username already exist")
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, apperror.Validation("email already exist")
		case errors.Is(err, repository.ErrNotFound):
			return nil, apperror.NotFound("user not found")
		}
		return nil, err
	}

	s.Index.IndexUser(ctx, u)
	if passwordChanged {
		s.sendPasswordChangedEmail(ctx, u)
	}
	return u, nil
}

// replaceImage removes the old remote image (tolerating failures) and uploads
// the new payload. An empty payload clears the reference.
func (s *UserService) replaceImage(ctx context.Context, oldURL, payload string) (string, error) {
	if oldURL != "" {
		if err := s.Images.Remove(ctx, oldURL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("url", oldURL).Warn("remove old image failed")
		}
	}
	if payload == "" {
		return "", nil
	}
	data, contentType, err := decodeImagePayload(payload)
	if err != nil {
		return "", err
	}
	return s.Images.Upload(ctx, data, contentType)
}

// SearchUsers queries the Elasticsearch profile index.
func (s *UserService) SearchUsers(ctx context.Context, q string, size int) ([]map[string]any, error) {
	return s.Index.Search(ctx, q, size)
}

func (s *UserService) sendPasswordChangedEmail(ctx context.Context, u *entity.User) {
	if s.Mail == nil {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: "password_changed",
		Data:     map[string]any{"Username": u.Username},
	}
	if err := s.Mail.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("enqueue password changed email failed")
	}
}
