package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mahendrairawan/sociable/internal/container"
	"github.com/mahendrairawan/sociable/internal/domain/repository"
	handlers "github.com/mahendrairawan/sociable/internal/interface/http"
	"github.com/mahendrairawan/sociable/internal/interface/middleware"
)

// NotificationModule wires the inbox routes. Fetching marks everything read.

type NotificationModule struct {
	Handler *handlers.NotificationHandler
	Users   repository.UserRepository
}

func NewNotificationModule(h *handlers.NotificationHandler, users repository.UserRepository) *NotificationModule {
	return &NotificationModule{Handler: h, Users: users}
}

func (m *NotificationModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth(container.GetJWT(), m.Users, container.GetLogger()))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.GET("/notifications", m.Handler.List)
		auth.DELETE("/notifications", m.Handler.Clear)
	}
}
