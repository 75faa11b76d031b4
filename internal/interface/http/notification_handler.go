package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mahendrairawan/sociable/internal/application"
	"github.com/mahendrairawan/sociable/internal/interface/middleware"
	"github.com/mahendrairawan/sociable/pkg/response"
)

type NotificationHandler struct {
	Svc    *application.NotificationService
	Logger *logrus.Logger
}

func NewNotificationHandler(svc *application.NotificationService, logger *logrus.Logger) *NotificationHandler {
	return &NotificationHandler{Svc: svc, Logger: logger}
}

// List returns the caller's notifications; fetching marks them all read.
func (h *NotificationHandler) List(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		response.FromError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

func (h *NotificationHandler) Clear(c *gin.Context) {
	if err := h.Svc.Clear(c.Request.Context(), c.GetString(middleware.CtxUserID)); err != nil {
		response.FromError(c, h.Logger, err)
		return
	}
	response.Message(c, http.StatusOK, "Notifications deleted successfully")
}
