package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kiddocare/auth-api/config"
	"github.com/kiddocare/auth-api/internal/application"
	"github.com/kiddocare/auth-api/pkg/helpers"
	"github.com/kiddocare/auth-api/pkg/mailer"
	"github.com/kiddocare/auth-api/pkg/response"
	"github.com/kiddocare/auth-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
	Cfg    *config.Config
	Pub    *helpers.RabbitPublisher
}

func NewAuthHandler(svc *application.Service, logger *logrus.Logger, cfg *config.Config, pub *helpers.RabbitPublisher) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Cfg: cfg, Pub: pub}
}

type registerRequest struct {
	FullName        string `json:"fullName" binding:"required,min=2"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
	Role            string `json:"role" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

func clientIP(c *gin.Context) string {
	if ip := c.GetString("real_ip"); ip != "" {
		return ip
	}
	return c.ClientIP()
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Role:            req.Role,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.notify(c, res.User.Email, "Welcome to KiddoCare",
		fmt.Sprintf("Hi %s,\n\nYour %s account has been created. You can now sign in with your email address.", res.User.FullName, res.User.Role))

	response.Success(c, http.StatusCreated, res, "registration successful")
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "email and password are required", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), application.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.notify(c, res.User.Email, "New login to your account",
		fmt.Sprintf("Hi %s,\n\nYour account was signed in from %s (%s) at %s. If this wasn't you, please reset your password.",
			res.User.FullName, clientIP(c), c.GetHeader("User-Agent"), time.Now().UTC().Format(time.RFC1123)))

	response.Success(c, http.StatusOK, res, "login successful")
}

// Me GET /api/auth/me (requires bearer token)
func (h *AuthHandler) Me(c *gin.Context) {
	uid := c.GetString("userID")
	u, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u.Profile()}, "profile")
}

// fail maps service errors to HTTP statuses. Anything unexpected is logged
// and reported as a generic server error.
func (h *AuthHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrMissingFields),
		errors.Is(err, application.ErrFullNameTooShort),
		errors.Is(err, application.ErrPasswordMismatch):
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, application.ErrRoleNotAllowed),
		errors.Is(err, application.ErrRoleMismatch):
		response.Error(c, http.StatusForbidden, err.Error(), nil)
	case errors.Is(err, application.ErrEmailTaken):
		response.Error(c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, err.Error(), nil)
	default:
		h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("auth request failed")
		response.Error(c, http.StatusInternalServerError, "server error", nil)
	}
}

// notify enqueues a plain-text email. Best effort only: a missing publisher
// or a broker failure never affects the request outcome.
func (h *AuthHandler) notify(c *gin.Context, to, subject, text string) {
	if h.Pub == nil || h.Cfg == nil || !h.Cfg.MailSendEnabled {
		return
	}
	job := mailer.EmailJob{To: to, Subject: subject, Text: text}
	if err := h.Pub.PublishJSON(c.Request.Context(), job); err != nil {
		h.Logger.WithError(err).WithField("to", to).Warn("email publish failed")
	}
}
