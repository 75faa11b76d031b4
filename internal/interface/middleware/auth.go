package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mahendrairawan/sociable/internal/domain/repository"
	"github.com/mahendrairawan/sociable/pkg/helpers"
	"github.com/mahendrairawan/sociable/pkg/response"
)

const (
	CtxUserID      = "userID"
	CtxCurrentUser = "currentUser"
)

// RequireAuth reads the session cookie, verifies the token and loads the
// current user into the context. Requests without a valid session never reach
// the handler.
func RequireAuth(jwtm *helpers.JWTManager, users repository.UserRepository, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookieName)
		if err != nil || token == "" {
			response.Error(c, http.StatusUnauthorized, "unauthorized: no token")
			c.Abort()
			return
		}

		claims, err := jwtm.Parse(token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "unauthorized: invalid token")
			c.Abort()
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				response.Error(c, http.StatusNotFound, "user not found")
			} else {
				if logger != nil {
					logger.WithFields(logrus.Fields{
						"request_id": c.GetString("request_id"),
						"user_id":    claims.UserID,
						"error":      err.Error(),
					}).Error("load session user failed")
				}
				response.Error(c, http.StatusInternalServerError, "Internal server error")
			}
			c.Abort()
			return
		}

		c.Set(CtxUserID, user.ID)
		c.Set(CtxCurrentUser, user)
		c.Next()
	}
}
