package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mahendrairawan/sociable/internal/container"
	"github.com/mahendrairawan/sociable/internal/domain/repository"
	handlers "github.com/mahendrairawan/sociable/internal/interface/http"
	"github.com/mahendrairawan/sociable/internal/interface/middleware"
)

// PostModule wires authoring, reactions and feed routes. Everything requires
// an authenticated session.

type PostModule struct {
	Handler *handlers.PostHandler
	Users   repository.UserRepository
}

func NewPostModule(h *handlers.PostHandler, users repository.UserRepository) *PostModule {
	return &PostModule{Handler: h, Users: users}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth(container.GetJWT(), m.Users, container.GetLogger()))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.POST("/posts", m.Handler.Create)
		auth.DELETE("/posts/:id", m.Handler.Delete)
		auth.POST("/posts/comment/:id", m.Handler.Comment)
		auth.POST("/posts/like/:id", m.Handler.LikeToggle)

		auth.GET("/posts/all", m.Handler.All)
		auth.GET("/posts/following", m.Handler.Following)
		auth.GET("/posts/likes/:id", m.Handler.LikedBy)
		auth.GET("/posts/user/:username", m.Handler.ByUser)
	}
}
