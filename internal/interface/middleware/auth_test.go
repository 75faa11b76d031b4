package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mahendrairawan/sociable/internal/domain/entity"
	"github.com/mahendrairawan/sociable/internal/domain/repository"
	"github.com/mahendrairawan/sociable/pkg/helpers"
)

// stubUserRepo serves GetByID from a map; the auth middleware uses nothing
// else from the interface.
type stubUserRepo struct {
	users map[string]*entity.User
	err   error
}

func (s *stubUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (s *stubUserRepo) Create(context.Context, *entity.User) error { return nil }
func (s *stubUserRepo) GetByUsername(context.Context, string) (*entity.User, error) {
	return nil, repository.ErrNotFound
}
func (s *stubUserRepo) Update(context.Context, *entity.User) error            { return nil }
func (s *stubUserRepo) UsernameTaken(context.Context, string) (bool, error)   { return false, nil }
func (s *stubUserRepo) EmailTaken(context.Context, string) (bool, error)      { return false, nil }
func (s *stubUserRepo) IsFollowing(context.Context, string, string) (bool, error) {
	return false, nil
}
func (s *stubUserRepo) Follow(context.Context, string, string) (bool, error) { return false, nil }
func (s *stubUserRepo) Unfollow(context.Context, string, string) error       { return nil }
func (s *stubUserRepo) Suggested(context.Context, string, int, int) ([]entity.User, error) {
	return nil, nil
}

func authTestRouter(t *testing.T, users repository.UserRepository, jwtm *helpers.JWTManager) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	r := gin.New()
	r.GET("/protected", RequireAuth(jwtm, users, logger), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetString(CtxUserID)})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	jwtm := helpers.NewJWTManager("test-secret-0123456789", time.Hour)
	users := &stubUserRepo{users: map[string]*entity.User{
		"u1": {ID: "u1", Username: "al"},
	}}
	r := authTestRouter(t, users, jwtm)

	token, _, err := jwtm.Generate("u1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	t.Run("no cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d", w.Code)
		}
		if got := w.Body.String(); got != `{"error":"unauthorized: no token"}` {
			t.Fatalf("body = %s", got)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: "garbage"})
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d", w.Code)
		}
		if got := w.Body.String(); got != `{"error":"unauthorized: invalid token"}` {
			t.Fatalf("body = %s", got)
		}
	})

	t.Run("user deleted after token issued", func(t *testing.T) {
		ghostToken, _, err := jwtm.Generate("deleted-user")
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: ghostToken})
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("valid session", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: token})
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		if got := w.Body.String(); got != `{"userID":"u1"}` {
			t.Fatalf("body = %s", got)
		}
	})
}

func TestRequireAuthRepoError(t *testing.T) {
	jwtm := helpers.NewJWTManager("test-secret-0123456789", time.Hour)
	users := &stubUserRepo{err: context.DeadlineExceeded}
	r := authTestRouter(t, users, jwtm)

	token, _, _ := jwtm.Generate("u1")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: token})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Body.String(); got != `{"error":"Internal server error"}` {
		t.Fatalf("body = %s", got)
	}
}
