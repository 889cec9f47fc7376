package handlers

import (
	"errors"
	"net/http"

	"github.com/adewale-dev/portfolio-api/internal/export"
	"github.com/adewale-dev/portfolio-api/internal/models"
	"github.com/adewale-dev/portfolio-api/internal/resumes"
	"github.com/adewale-dev/portfolio-api/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ResumeHandler exposes the admin-only resume CRUD and export surface. There
// is no public read path for resumes, including GET by id.
type ResumeHandler struct {
	svc *resumes.Service
}

func NewResumeHandler(s *resumes.Service) *ResumeHandler {
	return &ResumeHandler{svc: s}
}

func (h *ResumeHandler) Register(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	g := rg.Group("/resume", auth)
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.GET("/:id/export", h.Export)
}

func (h *ResumeHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		logger.Errorf("resume list: %v", err)
		respondErr(c, http.StatusInternalServerError, "failed to load resumes")
		return
	}
	respondOK(c, http.StatusOK, list)
}

func (h *ResumeHandler) Create(c *gin.Context) {
	var doc models.Resume
	if err := c.ShouldBindJSON(&doc); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.svc.Create(c.Request.Context(), &doc)
	if err != nil {
		if errors.Is(err, resumes.ErrMissingFields) {
			respondErr(c, http.StatusBadRequest, err.Error())
			return
		}
		logger.Errorf("resume create: %v", err)
		respondErr(c, http.StatusInternalServerError, "failed to create resume")
		return
	}
	respondOK(c, http.StatusCreated, created)
}

func (h *ResumeHandler) Get(c *gin.Context) {
	got, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			respondErr(c, http.StatusNotFound, "resume not found")
			return
		}
		logger.Errorf("resume get: %v", err)
		respondErr(c, http.StatusInternalServerError, "failed to load resume")
		return
	}
	respondOK(c, http.StatusOK, got)
}

func (h *ResumeHandler) Update(c *gin.Context) {
	var doc models.Resume
	if err := c.ShouldBindJSON(&doc); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request body")
		return
	}
	doc.ID = c.Param("id")
	updated, err := h.svc.Update(c.Request.Context(), &doc)
	if err != nil {
		switch {
		case errors.Is(err, resumes.ErrMissingFields):
			respondErr(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, resumes.ErrNotFound):
			respondErr(c, http.StatusNotFound, "resume not found")
		default:
			logger.Errorf("resume update: %v", err)
			respondErr(c, http.StatusInternalServerError, "failed to update resume")
		}
		return
	}
	respondOK(c, http.StatusOK, updated)
}

func (h *ResumeHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			respondErr(c, http.StatusNotFound, "resume not found")
			return
		}
		logger.Errorf("resume delete: %v", err)
		respondErr(c, http.StatusInternalServerError, "failed to delete resume")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}

// Export renders the resume into the requested format. The format query
// parameter defaults to txt.
func (h *ResumeHandler) Export(c *gin.Context) {
	doc, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			respondErr(c, http.StatusNotFound, "resume not found")
			return
		}
		logger.Errorf("resume export: %v", err)
		respondErr(c, http.StatusInternalServerError, "failed to load resume")
		return
	}

	format := c.DefaultQuery("format", "txt")
	var (
		body        []byte
		contentType string
	)
	switch format {
	case "txt":
		body = export.RenderText(doc)
		contentType = "text/plain; charset=utf-8"
	case "pdf":
		body, err = export.RenderPDF(doc)
		contentType = "application/pdf"
	case "docx":
		body, err = export.RenderDOCX(doc)
		contentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		respondErr(c, http.StatusBadRequest, "unsupported format")
		return
	}
	if err != nil {
		logger.Errorf("resume export (%s): %v", format, err)
		respondErr(c, http.StatusInternalServerError, "failed to render resume")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.Filename(doc, format)+`"`)
	c.Data(http.StatusOK, contentType, body)
}
