package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/adewale-dev/portfolio-api/internal/storage"
	"github.com/adewale-dev/portfolio-api/pkg/logger"
	"github.com/gin-gonic/gin"
)

// maxUploadSize caps project-image uploads at 8 MiB.
const maxUploadSize = 8 << 20

// UploadHandler stores project images in the object store and returns a
// presigned URL for them.
type UploadHandler struct {
	store *storage.MinIOStorage
}

func NewUploadHandler(s *storage.MinIOStorage) *UploadHandler {
	return &UploadHandler{store: s}
}

func (h *UploadHandler) Register(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	rg.POST("/upload", auth, h.Upload)
}

func (h *UploadHandler) Upload(c *gin.Context) {
	if h.store == nil {
		respondErr(c, http.StatusServiceUnavailable, "image storage not configured")
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		respondErr(c, http.StatusBadRequest, "a file field is required")
		return
	}
	if fh.Size > maxUploadSize {
		respondErr(c, http.StatusBadRequest, "file too large")
		return
	}
	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondErr(c, http.StatusBadRequest, "only image uploads are accepted")
		return
	}

	f, err := fh.Open()
	if err != nil {
		logger.Errorf("upload open: %v", err)
		respondErr(c, http.StatusInternalServerError, "failed to read upload")
		return
	}
	defer f.Close()

	key, err := h.store.UploadImage(c.Request.Context(), fh.Filename, f, fh.Size, contentType)
	if err != nil {
		logger.Errorf("upload store: %v", err)
		respondErr(c, http.StatusBadGateway, "failed to store image")
		return
	}

	url, err := h.store.GetPresignedURL(c.Request.Context(), key, 7*24*time.Hour)
	if err != nil {
		logger.Errorf("upload presign: %v", err)
		respondErr(c, http.StatusBadGateway, "failed to link image")
		return
	}

	respondOK(c, http.StatusCreated, gin.H{"key": key, "url": url})
}
