package handlers

import (
	"net/http"

	"github.com/adewale-dev/portfolio-api/internal/accounts"
	"github.com/adewale-dev/portfolio-api/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the public contact-details endpoint backed by the
// administrator account's profile sub-document.
type ProfileHandler struct {
	svc *accounts.Service
}

func NewProfileHandler(s *accounts.Service) *ProfileHandler {
	return &ProfileHandler{svc: s}
}

func (h *ProfileHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/profile", h.Get)
}

func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.svc.PublicProfile(c.Request.Context())
	if err != nil {
		logger.Errorf("public profile: %v", err)
		respondErr(c, http.StatusInternalServerError, "failed to load profile")
		return
	}
	respondOK(c, http.StatusOK, p)
}
