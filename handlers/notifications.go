package handlers

import (
	"errors"
	"net/http"

	"github.com/adewale-dev/portfolio-api/internal/models"
	"github.com/adewale-dev/portfolio-api/internal/notifications"
	"github.com/adewale-dev/portfolio-api/pkg/logger"
	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the admin notification feed. There is no public
// route here at all.
type NotificationHandler struct {
	svc *notifications.Service
}

func NewNotificationHandler(s *notifications.Service) *NotificationHandler {
	return &NotificationHandler{svc: s}
}

func (h *NotificationHandler) Register(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	g := rg.Group("/notifications", auth)
	g.GET("", h.List)
	g.POST("", h.Create)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.POST("/mark-all-read", h.MarkAllRead)
	g.POST("/seed", h.Seed)
}

func (h *NotificationHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		logger.Errorf("notification list: %v", err)
		respondErr(c, http.StatusInternalServerError, "failed to load notifications")
		return
	}
	respondOK(c, http.StatusOK, list)
}

func (h *NotificationHandler) Create(c *gin.Context) {
	var n models.Notification
	if err := c.ShouldBindJSON(&n); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.Create(c.Request.Context(), &n); err != nil {
		if errors.Is(err, notifications.ErrInvalid) {
			respondErr(c, http.StatusBadRequest, err.Error())
			return
		}
		logger.Errorf("notification create: %v", err)
		respondErr(c, http.StatusInternalServerError, "failed to create notification")
		return
	}
	respondOK(c, http.StatusCreated, &n)
}

type updateNotificationRequest struct {
	Read    *bool   `json:"read"`
	Title   *string `json:"title"`
	Message *string `json:"message"`
	Link    *string `json:"link"`
}

func (h *NotificationHandler) Update(c *gin.Context) {
	var req updateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request body")
		return
	}
	got, err := h.svc.Update(c.Request.Context(), c.Param("id"), notifications.UpdateParams{
		Read:    req.Read,
		Title:   req.Title,
		Message: req.Message,
		Link:    req.Link,
	})
	if err != nil {
		if errors.Is(err, notifications.ErrNotFound) {
			respondErr(c, http.StatusNotFound, "notification not found")
			return
		}
		logger.Errorf("notification update: %v", err)
		respondErr(c, http.StatusInternalServerError, "failed to update notification")
		return
	}
	respondOK(c, http.StatusOK, got)
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, notifications.ErrNotFound) {
			respondErr(c, http.StatusNotFound, "notification not found")
			return
		}
		logger.Errorf("notification delete: %v", err)
		respondErr(c, http.StatusInternalServerError, "failed to delete notification")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}

// MarkAllRead is idempotent: a second call affects zero documents and still
// succeeds.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	n, err := h.svc.MarkAllRead(c.Request.Context())
	if err != nil {
		logger.Errorf("notification mark-all-read: %v", err)
		respondErr(c, http.StatusInternalServerError, "failed to mark notifications read")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"modified": n})
}

func (h *NotificationHandler) Seed(c *gin.Context) {
	if err := h.svc.Seed(c.Request.Context()); err != nil {
		logger.Errorf("notification seed: %v", err)
		respondErr(c, http.StatusInternalServerError, "failed to seed notifications")
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"seeded": 3})
}
