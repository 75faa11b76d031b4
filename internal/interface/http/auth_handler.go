package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mahendrairawan/sociable/internal/application"
	"github.com/mahendrairawan/sociable/internal/interface/middleware"
	"github.com/mahendrairawan/sociable/pkg/helpers"
	"github.com/mahendrairawan/sociable/pkg/response"
	"github.com/mahendrairawan/sociable/pkg/validation"
)

type AuthHandler struct {
	Svc     *application.AuthService
	JWT     *helpers.JWTManager
	Cookies *helpers.CookieManager
	Logger  *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, jwt *helpers.JWTManager, cookies *helpers.CookieManager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, JWT: jwt, Cookies: cookies, Logger: logger}
}

type signupRequest struct {
	Username string `json:"username" binding:"required"`
	FullName string `json:"fullname" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.WithField("details", validation.ToDetails(err)).Debug("signup payload rejected")
		response.Error(c, http.StatusBadRequest, "All fields are required")
		return
	}

	u, err := h.Svc.Signup(c.Request.Context(), application.SignupInput{
		Username: req.Username,
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.FromError(c, h.Logger, err)
		return
	}

	token, exp, err := h.JWT.Generate(u.ID)
	if err != nil {
		response.FromError(c, h.Logger, err)
		return
	}
	h.Cookies.Attach(c, token, exp)
	response.JSON(c, http.StatusCreated, u)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid username and password")
		return
	}

	u, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.FromError(c, h.Logger, err)
		return
	}

	token, exp, err := h.JWT.Generate(u.ID)
	if err != nil {
		response.FromError(c, h.Logger, err)
		return
	}
	h.Cookies.Attach(c, token, exp)
	response.JSON(c, http.StatusOK, u)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	response.Message(c, http.StatusOK, "Logged out successfully")
}

func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.Svc.Me(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		response.FromError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, u)
}
