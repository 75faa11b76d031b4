package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mahendrairawan/sociable/internal/application"
	"github.com/mahendrairawan/sociable/internal/interface/middleware"
	"github.com/mahendrairawan/sociable/pkg/response"
)

type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

type createPostRequest struct {
	Text  string `json:"text"`
	Image string `json:"img"`
}

type commentRequest struct {
	Text string `json:"text"`
}

func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload")
		return
	}

	p, err := h.Svc.Create(c.Request.Context(), c.GetString(middleware.CtxUserID), application.CreatePostInput{
		Text:  req.Text,
		Image: req.Image,
	})
	if err != nil {
		response.FromError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusCreated, p)
}

func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.GetString(middleware.CtxUserID), c.Param("id")); err != nil {
		response.FromError(c, h.Logger, err)
		return
	}
	response.Message(c, http.StatusOK, "Post deleted successfully")
}

func (h *PostHandler) Comment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "text field is required")
		return
	}

	p, err := h.Svc.Comment(c.Request.Context(), c.GetString(middleware.CtxUserID), c.Param("id"), req.Text)
	if err != nil {
		response.FromError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, p)
}

func (h *PostHandler) LikeToggle(c *gin.Context) {
	liked, err := h.Svc.LikeToggle(c.Request.Context(), c.GetString(middleware.CtxUserID), c.Param("id"))
	if err != nil {
		response.FromError(c, h.Logger, err)
		return
	}
	if liked {
		response.Message(c, http.StatusOK, "Post liked successfully")
		return
	}
	response.Message(c, http.StatusOK, "Post unliked successfully")
}

func (h *PostHandler) All(c *gin.Context) {
	posts, err := h.Svc.All(c.Request.Context())
	if err != nil {
		response.FromError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, posts)
}

func (h *PostHandler) Following(c *gin.Context) {
	posts, err := h.Svc.Following(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		response.FromError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, posts)
}

func (h *PostHandler) ByUser(c *gin.Context) {
	posts, err := h.Svc.ByUser(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.FromError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, posts)
}

func (h *PostHandler) LikedBy(c *gin.Context) {
	posts, err := h.Svc.LikedBy(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, posts)
}
