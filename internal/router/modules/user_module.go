package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mahendrairawan/sociable/internal/container"
	"github.com/mahendrairawan/sociable/internal/domain/repository"
	handlers "github.com/mahendrairawan/sociable/internal/interface/http"
	"github.com/mahendrairawan/sociable/internal/interface/middleware"
)

// UserModule wires profile and social-graph routes.
// Public: GET /api/users/:username
// Protected: POST /api/users/follow/:id, GET /api/users/suggested,
// POST /api/users/update, GET /api/users/search

type UserModule struct {
	Handler *handlers.UserHandler
	Users   repository.UserRepository
}

func NewUserModule(h *handlers.UserHandler, users repository.UserRepository) *UserModule {
	return &UserModule{Handler: h, Users: users}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	profileLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)
	rg.GET("/users/:username", profileLimiter, m.Handler.Profile)

	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth(container.GetJWT(), m.Users, container.GetLogger()))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.POST("/users/follow/:id", m.Handler.FollowToggle)
		auth.GET("/users/suggested", m.Handler.Suggested)
		auth.POST("/users/update", m.Handler.Update)
		auth.GET("/users/search", m.Handler.Search)
	}
}
