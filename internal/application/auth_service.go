package application

import (
	"context"
	"errors"
	"regexp"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mahendrairawan/sociable/internal/apperror"
	"github.com/mahendrairawan/sociable/internal/domain/entity"
	"github.com/mahendrairawan/sociable/internal/domain/repository"
	"github.com/mahendrairawan/sociable/pkg/helpers"
	"github.com/mahendrairawan/sociable/pkg/mailer"
)

// emailPattern requires one @ with non-whitespace on both sides and a dot in
// the domain part.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLen = 6

// EmailPublisher enqueues email jobs; *helpers.RabbitPublisher satisfies it.
type EmailPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// AuthService covers registration, login and the authenticated self view.
type AuthService struct {
	Users  repository.UserRepository
	Index  *UserIndex
	Mail   EmailPublisher
	Logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, index *UserIndex, mail EmailPublisher, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Index: index, Mail: mail, Logger: logger}
}

type SignupInput struct {
	Username string
	FullName string
	Email    string
	Password string
}

// Signup validates, hashes and persists a new identity. The username and
// email existence checks run sequentially before the insert; a concurrent
// registration that slips past them is caught by the database unique
// constraints and surfaces the same messages.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*entity.User, error) {
	if !emailPattern.MatchString(in.Email) {
		return nil, apperror.Validation("Invalid email format")
	}

	taken, err := s.Users.UsernameTaken(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.Validation("Username already exist")
	}

	taken, err = s.Users.EmailTaken(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.Validation("email already exist")
	}

	if len(in.Password) < minPasswordLen {
		return nil, apperror.Validation("Password must be at least 6 characters long")
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		ID:        uuid.NewString(),
		Username:  in.Username,
		FullName:  in.FullName,
		Email:     in.Email,
		Password:  hash,
		Followers: []string{},
		Following: []string{},
	}
	if err := s.Users.Create(ctx, u); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, apperror.Validation("Username already exist")
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, apperror.Validation("email already exist")
		}
		return nil, err
	}

	s.Index.IndexUser(ctx, u)
	s.sendWelcomeEmail(ctx, u)
	return u, nil
}

// Login verifies credentials. An unknown username and a wrong password are
// indistinguishable to the caller; the hash comparison runs either way.
func (s *AuthService) Login(ctx context.Context, username, password string) (*entity.User, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	storedHash := ""
	if u != nil {
		storedHash = u.Password
	}
	if !helpers.CompareHashAndPassword(storedHash, password) || u == nil {
		return nil, apperror.Validation("Invalid username and password")
	}
	return u, nil
}

// Me returns the authenticated identity's current profile.
func (s *AuthService) Me(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, err
	}
	return u, nil
}

func (s *AuthService) sendWelcomeEmail(ctx context.Context, u *entity.User) {
	if s.Mail == nil {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: "welcome",
		Data:     map[string]any{"Username": u.Username},
	}
	if err := s.Mail.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("enqueue welcome email failed")
	}
}
