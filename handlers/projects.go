package handlers

import (
	"errors"
	"net/http"

	"github.com/adewale-dev/portfolio-api/internal/models"
	"github.com/adewale-dev/portfolio-api/internal/projects"
	"github.com/adewale-dev/portfolio-api/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ProjectHandler exposes the public project list and the admin CRUD surface.
type ProjectHandler struct {
	svc *projects.Service
}

func NewProjectHandler(s *projects.Service) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

func (h *ProjectHandler) Register(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	g := rg.Group("/projects")
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", auth, h.Create)
	g.PUT("/:id", auth, h.Update)
	g.DELETE("/:id", auth, h.Delete)
}

func (h *ProjectHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		logger.Errorf("project list: %v", err)
		respondErr(c, http.StatusInternalServerError, "failed to load projects")
		return
	}
	respondOK(c, http.StatusOK, list)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	got, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, projects.ErrNotFound) {
			respondErr(c, http.StatusNotFound, "project not found")
			return
		}
		logger.Errorf("project get: %v", err)
		respondErr(c, http.StatusInternalServerError, "failed to load project")
		return
	}
	respondOK(c, http.StatusOK, got)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var p models.Project
	if err := c.ShouldBindJSON(&p); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.svc.Create(c.Request.Context(), &p)
	if err != nil {
		if errors.Is(err, projects.ErrMissingFields) {
			respondErr(c, http.StatusBadRequest, err.Error())
			return
		}
		logger.Errorf("project create: %v", err)
		respondErr(c, http.StatusInternalServerError, "failed to create project")
		return
	}
	respondOK(c, http.StatusCreated, created)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	var p models.Project
	if err := c.ShouldBindJSON(&p); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request body")
		return
	}
	p.ID = c.Param("id")
	updated, err := h.svc.Update(c.Request.Context(), &p)
	if err != nil {
		switch {
		case errors.Is(err, projects.ErrMissingFields):
			respondErr(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, projects.ErrNotFound):
			respondErr(c, http.StatusNotFound, "project not found")
		default:
			logger.Errorf("project update: %v", err)
			respondErr(c, http.StatusInternalServerError, "failed to update project")
		}
		return
	}
	respondOK(c, http.StatusOK, updated)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, projects.ErrNotFound) {
			respondErr(c, http.StatusNotFound, "project not found")
			return
		}
		logger.Errorf("project delete: %v", err)
		respondErr(c, http.StatusInternalServerError, "failed to delete project")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}
