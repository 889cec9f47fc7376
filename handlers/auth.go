package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/adewale-dev/portfolio-api/internal/accounts"
	"github.com/adewale-dev/portfolio-api/internal/config"
	"github.com/adewale-dev/portfolio-api/internal/models"
	"github.com/adewale-dev/portfolio-api/internal/sessions"
	"github.com/adewale-dev/portfolio-api/internal/tokens"
	"github.com/adewale-dev/portfolio-api/pkg/logger"
	"github.com/adewale-dev/portfolio-api/pkg/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler owns login, session refresh, logout, the one-time setup routine
// and the account security endpoints.
type AuthHandler struct {
	cfg         *config.Config
	accountsSvc *accounts.Service
	sessionsSvc *sessions.Service
}

func NewAuthHandler(cfg *config.Config, a *accounts.Service, s *sessions.Service) *AuthHandler {
	return &AuthHandler{cfg: cfg, accountsSvc: a, sessionsSvc: s}
}

func (h *AuthHandler) Register(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	rg.POST("/setup", h.Setup)
	a := rg.Group("/auth")
	a.POST("/login", h.Login)
	a.POST("/refresh", h.Refresh)
	a.POST("/logout", auth, h.Logout)
	a.POST("/change-password", auth, h.ChangePassword)
	a.POST("/change-email", auth, h.ChangeEmail)
	a.GET("/security-info", auth, h.SecurityInfo)
	a.GET("/update-profile", auth, h.GetProfile)
	a.POST("/update-profile", auth, h.UpdateProfile)
}

type setupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Setup bootstraps the single administrator account. It fails once any
// account exists.
func (h *AuthHandler) Setup(c *gin.Context) {
	var req setupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request body")
		return
	}
	a, err := h.accountsSvc.Setup(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrAccountExists):
			respondErr(c, http.StatusConflict, err.Error())
		case errors.Is(err, accounts.ErrMissingFields),
			errors.Is(err, accounts.ErrInvalidEmail),
			errors.Is(err, accounts.ErrPasswordTooShort):
			respondErr(c, http.StatusBadRequest, err.Error())
		default:
			logger.Errorf("setup: %v", err)
			respondErr(c, http.StatusInternalServerError, "setup failed")
		}
		return
	}
	respondOK(c, http.StatusCreated, a)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "email and password are required")
		return
	}
	a, err := h.accountsSvc.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, accounts.ErrInvalidCredentials) {
			respondErr(c, http.StatusUnauthorized, err.Error())
			return
		}
		logger.Errorf("login: %v", err)
		respondErr(c, http.StatusInternalServerError, "login failed")
		return
	}

	access, err := tokens.GenerateAccessToken(h.cfg, a, h.cfg.JWT.AccessTokenTTL)
	if err != nil {
		logger.Errorf("login token: %v", err)
		respondErr(c, http.StatusInternalServerError, "login failed")
		return
	}
	refresh, err := h.sessionsSvc.CreateSession(c.Request.Context(), a.ID, h.cfg.JWT.RefreshTokenTTL)
	if err != nil {
		logger.Errorf("login session: %v", err)
		respondErr(c, http.StatusInternalServerError, "login failed")
		return
	}

	respondOK(c, http.StatusOK, gin.H{
		"accessToken":  access,
		"refreshToken": refresh,
		"account":      a,
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "refreshToken is required")
		return
	}
	sess, err := h.sessionsSvc.ValidateRefresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		logger.Errorf("refresh: %v", err)
		respondErr(c, http.StatusInternalServerError, "refresh failed")
		return
	}
	if sess == nil {
		respondErr(c, http.StatusUnauthorized, "invalid refresh token")
		return
	}
	a, err := h.accountsSvc.Get(c.Request.Context(), sess.AccountID)
	if err != nil {
		respondErr(c, http.StatusUnauthorized, "invalid refresh token")
		return
	}
	access, err := tokens.GenerateAccessToken(h.cfg, a, h.cfg.JWT.AccessTokenTTL)
	if err != nil {
		logger.Errorf("refresh token: %v", err)
		respondErr(c, http.StatusInternalServerError, "refresh failed")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"accessToken": access})
}

type logoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Logout revokes the refresh session and blacklists the presented access
// token for the remainder of its lifetime.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req logoutRequest
	_ = c.ShouldBindJSON(&req)

	if req.RefreshToken != "" {
		if err := h.sessionsSvc.DeleteRefresh(c.Request.Context(), req.RefreshToken); err != nil {
			logger.Errorf("logout session delete: %v", err)
		}
	}

	var access string
	if n, _ := fmt.Sscanf(c.GetHeader("Authorization"), "Bearer %s", &access); n == 1 {
		if err := sessions.BlacklistAccessToken(c.Request.Context(), access, h.cfg.JWT.AccessTokenTTL); err != nil {
			logger.Errorf("logout blacklist: %v", err)
		}
	}

	respondOK(c, http.StatusOK, gin.H{"loggedOut": true})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	id, ok := middleware.Identity(c)
	if !ok {
		respondErr(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "currentPassword and newPassword are required")
		return
	}
	err := h.accountsSvc.ChangePassword(c.Request.Context(), id.AccountID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrPasswordTooShort):
			respondErr(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, accounts.ErrInvalidCredentials):
			respondErr(c, http.StatusUnauthorized, "current password is incorrect")
		default:
			logger.Errorf("change-password: %v", err)
			respondErr(c, http.StatusInternalServerError, "failed to change password")
		}
		return
	}
	respondOK(c, http.StatusOK, gin.H{"changed": true})
}

type changeEmailRequest struct {
	Password string `json:"password" binding:"required"`
	NewEmail string `json:"newEmail" binding:"required"`
}

func (h *AuthHandler) ChangeEmail(c *gin.Context) {
	id, ok := middleware.Identity(c)
	if !ok {
		respondErr(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req changeEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "password and newEmail are required")
		return
	}
	err := h.accountsSvc.ChangeEmail(c.Request.Context(), id.AccountID, req.Password, req.NewEmail)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrInvalidEmail):
			respondErr(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, accounts.ErrEmailTaken):
			respondErr(c, http.StatusConflict, err.Error())
		case errors.Is(err, accounts.ErrInvalidCredentials):
			respondErr(c, http.StatusUnauthorized, "password is incorrect")
		default:
			logger.Errorf("change-email: %v", err)
			respondErr(c, http.StatusInternalServerError, "failed to change email")
		}
		return
	}
	respondOK(c, http.StatusOK, gin.H{"changed": true})
}

// SecurityInfo reports when the password and email were last changed.
func (h *AuthHandler) SecurityInfo(c *gin.Context) {
	id, ok := middleware.Identity(c)
	if !ok {
		respondErr(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	a, err := h.accountsSvc.Get(c.Request.Context(), id.AccountID)
	if err != nil {
		logger.Errorf("security-info: %v", err)
		respondErr(c, http.StatusInternalServerError, "failed to load account")
		return
	}
	respondOK(c, http.StatusOK, gin.H{
		"email":              a.Email,
		"lastPasswordChange": a.LastPasswordChange,
		"lastEmailChange":    a.LastEmailChange,
	})
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	id, ok := middleware.Identity(c)
	if !ok {
		respondErr(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	a, err := h.accountsSvc.Get(c.Request.Context(), id.AccountID)
	if err != nil {
		logger.Errorf("get profile: %v", err)
		respondErr(c, http.StatusInternalServerError, "failed to load account")
		return
	}
	respondOK(c, http.StatusOK, a.Profile)
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	id, ok := middleware.Identity(c)
	if !ok {
		respondErr(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var p models.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request body")
		return
	}
	a, err := h.accountsSvc.UpdateProfile(c.Request.Context(), id.AccountID, p)
	if err != nil {
		logger.Errorf("update profile: %v", err)
		respondErr(c, http.StatusInternalServerError, "failed to update profile")
		return
	}
	respondOK(c, http.StatusOK, a.Profile)
}
