package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UploadHandler struct {
	dir    string
	logger *zap.Logger
}

func NewUploadHandler(dir string, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{dir: dir, logger: logger}
}

// Upload stores a single multipart image under a collision-free name and
// returns the URL it is served from.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	name := fmt.Sprintf("image-%s%s", uuid.New().String(), filepath.Ext(file.Filename))

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		h.logger.Error("failed to create upload directory", zap.String("dir", h.dir), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store upload"})
		return
	}
	if err := c.SaveUploadedFile(file, filepath.Join(h.dir, name)); err != nil {
		h.logger.Error("failed to store upload", zap.String("filename", name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store upload"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"imageUrl": "/uploads/" + name,
		"filename": name,
	})
}
