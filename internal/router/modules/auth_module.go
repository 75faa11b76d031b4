package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mahendrairawan/sociable/internal/container"
	"github.com/mahendrairawan/sociable/internal/domain/repository"
	handlers "github.com/mahendrairawan/sociable/internal/interface/http"
	"github.com/mahendrairawan/sociable/internal/interface/middleware"
)

// AuthModule wires the session endpoints.
// Public: POST /api/auth/signup, POST /api/auth/login
// Protected: POST /api/auth/logout, GET /api/auth/me

type AuthModule struct {
	Handler *handlers.AuthHandler
	Users   repository.UserRepository
}

func NewAuthModule(h *handlers.AuthHandler, users repository.UserRepository) *AuthModule {
	return &AuthModule{Handler: h, Users: users}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public with rate limiting
	signupLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil) // 10 req/min per IP
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)  // 10 req/min per IP

	rg.POST("/auth/signup", signupLimiter, m.Handler.Signup)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)

	// Protected
	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth(container.GetJWT(), m.Users, container.GetLogger()))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.POST("/auth/logout", m.Handler.Logout)
		auth.GET("/auth/me", m.Handler.Me)
	}
}
