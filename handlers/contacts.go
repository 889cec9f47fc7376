package handlers

import (
	"errors"
	"net/http"

	"github.com/adewale-dev/portfolio-api/internal/contacts"
	"github.com/adewale-dev/portfolio-api/internal/models"
	"github.com/adewale-dev/portfolio-api/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ContactHandler exposes the public contact form and the admin inbox.
type ContactHandler struct {
	svc *contacts.Service
}

func NewContactHandler(s *contacts.Service) *ContactHandler {
	return &ContactHandler{svc: s}
}

// Register mounts the routes. Creation is the public surface of the portfolio;
// everything else is behind auth.
func (h *ContactHandler) Register(rg *gin.RouterGroup, auth gin.HandlerFunc, limit gin.HandlerFunc) {
	g := rg.Group("/contact")
	if limit != nil {
		g.POST("", limit, h.Create)
	} else {
		g.POST("", h.Create)
	}
	g.GET("", auth, h.List)
	g.GET("/:id", auth, h.View)
	g.PATCH("/:id", auth, h.UpdateStatus)
	g.DELETE("/:id", auth, h.Delete)
}

type createContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req createContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.svc.Create(c.Request.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		if errors.Is(err, contacts.ErrMissingFields) {
			respondErr(c, http.StatusBadRequest, err.Error())
			return
		}
		logger.Errorf("contact create: %v", err)
		respondErr(c, http.StatusInternalServerError, "failed to save message")
		return
	}
	respondOK(c, http.StatusCreated, created)
}

func (h *ContactHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		logger.Errorf("contact list: %v", err)
		respondErr(c, http.StatusInternalServerError, "failed to load messages")
		return
	}
	respondOK(c, http.StatusOK, list)
}

// View returns one contact; a "new" contact is marked read as a side effect.
func (h *ContactHandler) View(c *gin.Context) {
	got, err := h.svc.View(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, contacts.ErrNotFound) {
			respondErr(c, http.StatusNotFound, "contact not found")
			return
		}
		logger.Errorf("contact view: %v", err)
		respondErr(c, http.StatusInternalServerError, "failed to load message")
		return
	}
	respondOK(c, http.StatusOK, got)
}

type updateContactRequest struct {
	Status models.ContactStatus `json:"status"`
}

func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	var req updateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request body")
		return
	}
	got, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, contacts.ErrInvalidStatus):
			respondErr(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, contacts.ErrNotFound):
			respondErr(c, http.StatusNotFound, "contact not found")
		default:
			logger.Errorf("contact update: %v", err)
			respondErr(c, http.StatusInternalServerError, "failed to update message")
		}
		return
	}
	respondOK(c, http.StatusOK, got)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, contacts.ErrNotFound) {
			respondErr(c, http.StatusNotFound, "contact not found")
			return
		}
		logger.Errorf("contact delete: %v", err)
		respondErr(c, http.StatusInternalServerError, "failed to delete message")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}
