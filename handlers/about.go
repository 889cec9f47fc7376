package handlers

import (
	"net/http"

	"github.com/adewale-dev/portfolio-api/internal/about"
	"github.com/adewale-dev/portfolio-api/internal/models"
	"github.com/adewale-dev/portfolio-api/pkg/logger"
	"github.com/gin-gonic/gin"
)

// AboutHandler serves the singleton bio document.
type AboutHandler struct {
	svc *about.Service
}

func NewAboutHandler(s *about.Service) *AboutHandler {
	return &AboutHandler{svc: s}
}

func (h *AboutHandler) Register(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	rg.GET("/about", h.Get)
	rg.POST("/about", auth, h.Update)
}

// Get is public. When nothing has been saved yet it returns the structurally
// complete empty document, never an error.
func (h *AboutHandler) Get(c *gin.Context) {
	a, err := h.svc.Get(c.Request.Context())
	if err != nil {
		logger.Errorf("about get: %v", err)
		respondErr(c, http.StatusInternalServerError, "failed to load about")
		return
	}
	respondOK(c, http.StatusOK, a)
}

func (h *AboutHandler) Update(c *gin.Context) {
	var a models.About
	if err := c.ShouldBindJSON(&a); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request body")
		return
	}
	saved, err := h.svc.Update(c.Request.Context(), &a)
	if err != nil {
		logger.Errorf("about update: %v", err)
		respondErr(c, http.StatusInternalServerError, "failed to save about")
		return
	}
	respondOK(c, http.StatusOK, saved)
}
