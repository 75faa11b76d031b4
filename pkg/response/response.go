package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mahendrairawan/sociable/internal/apperror"
)

// Wire shapes are deliberately small: resources are returned bare, failures
// as {"error": ...} and status updates as {"message": ...}.

func JSON(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// FromError maps a service error onto the HTTP taxonomy. Unknown errors are
// logged with the request id and answered with a generic 500 body; internal
// detail is never sent to the client.
func FromError(c *gin.Context, logger *logrus.Logger, err error) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		switch {
		case errors.Is(appErr.Kind, apperror.ErrValidation):
			Error(c, http.StatusBadRequest, appErr.Message)
		case errors.Is(appErr.Kind, apperror.ErrUnauthorized):
			Error(c, http.StatusUnauthorized, appErr.Message)
		case errors.Is(appErr.Kind, apperror.ErrNotFound):
			Error(c, http.StatusNotFound, appErr.Message)
		default:
			internal(c, logger, err)
		}
		return
	}
	internal(c, logger, err)
}

func internal(c *gin.Context, logger *logrus.Logger, err error) {
	if logger != nil {
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"path":       c.FullPath(),
			"error":      err.Error(),
		}).Error("request failed")
	}
	Error(c, http.StatusInternalServerError, "Internal server error")
}
