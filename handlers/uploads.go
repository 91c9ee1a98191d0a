package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/taskhive/taskhive-api/internal/storage"
	"github.com/taskhive/taskhive-api/pkg/logger"
	"github.com/taskhive/taskhive-api/pkg/metrics"
)

// UploadsHandler proxies image uploads to the object store and hands the
// resulting URL back to the client, which embeds it in a project.
type UploadsHandler struct {
	store *storage.ImageStore
}

func NewUploadsHandler(store *storage.ImageStore) *UploadsHandler {
	return &UploadsHandler{store: store}
}

// Register routes under /api
func (h *UploadsHandler) Register(rg *gin.RouterGroup) {
	rg.Group("/api").POST("/upload", h.Upload)
}

func (h *UploadsHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "file field is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		metrics.Uploads.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"message": fmt.Sprintf("An error occurred while uploading the image - %s", err.Error())})
		return
	}
	defer f.Close()

	key := randomKey() + filepath.Ext(fh.Filename)
	contentType := fh.Header.Get("Content-Type")

	imgURL, err := h.store.Upload(c.Request.Context(), key, f, fh.Size, contentType)
	if err != nil {
		logger.Errorf("image upload failed: %v", err)
		metrics.Uploads.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"message": fmt.Sprintf("An error occurred while uploading the image - %s", err.Error())})
		return
	}

	metrics.Uploads.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, gin.H{"imgUrl": imgURL})
}

func randomKey() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "img"
	}
	return hex.EncodeToString(b)
}
