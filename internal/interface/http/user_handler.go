package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mahendrairawan/sociable/internal/application"
	"github.com/mahendrairawan/sociable/internal/interface/middleware"
	"github.com/mahendrairawan/sociable/pkg/response"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// updateProfileRequest mirrors UpdateProfileInput; pointer fields keep
// "absent" distinguishable from "present but empty".
type updateProfileRequest struct {
	Username        *string `json:"username"`
	FullName        *string `json:"fullname"`
	Email           *string `json:"email"`
	Bio             *string `json:"bio"`
	Link            *string `json:"link"`
	ProfileImg      *string `json:"profileImg"`
	CoverImg        *string `json:"coverImg"`
	CurrentPassword *string `json:"currentPassword"`
	NewPassword     *string `json:"newPassword"`
}

func (h *UserHandler) Profile(c *gin.Context) {
	u, err := h.Svc.Profile(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.FromError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, u)
}

func (h *UserHandler) FollowToggle(c *gin.Context) {
	followed, err := h.Svc.FollowToggle(c.Request.Context(), c.GetString(middleware.CtxUserID), c.Param("id"))
	if err != nil {
		response.FromError(c, h.Logger, err)
		return
	}
	if followed {
		response.Message(c, http.StatusOK, "user followed successfully")
		return
	}
	response.Message(c, http.StatusOK, "user unfollowed successfully")
}

func (h *UserHandler) Suggested(c *gin.Context) {
	users, err := h.Svc.Suggested(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		response.FromError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, users)
}

func (h *UserHandler) Update(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload")
		return
	}

	u, err := h.Svc.UpdateProfile(c.Request.Context(), c.GetString(middleware.CtxUserID), application.UpdateProfileInput{
		Username:        req.Username,
		FullName:        req.FullName,
		Email:           req.Email,
		Bio:             req.Bio,
		Link:            req.Link,
		ProfileImg:      req.ProfileImg,
		CoverImg:        req.CoverImg,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		response.FromError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, u)
}

func (h *UserHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error(c, http.StatusBadRequest, "query parameter q is required")
		return
	}
	size := 10
	if raw := c.Query("size"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 50 {
			size = n
		}
	}

	hits, err := h.Svc.SearchUsers(c.Request.Context(), q, size)
	if err != nil {
		response.FromError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, hits)
}
