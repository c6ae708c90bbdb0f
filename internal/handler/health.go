package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safar/storefront/internal/config"
)

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Health reports which required settings are present, without exposing their
// values.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"message": "API server is running",
		"env": gin.H{
			"EMAIL_HOST":   h.cfg.Mail.Host != "",
			"EMAIL_PORT":   h.cfg.Mail.Port != 0,
			"EMAIL_USER":   h.cfg.Mail.User != "",
			"EMAIL_PASS":   h.cfg.Mail.Password != "",
			"ADMIN_EMAIL":  h.cfg.Mail.AdminEmail != "",
			"DATABASE_URL": h.cfg.Database.URL != "",
			"JWT_SECRET":   h.cfg.Auth.JWTSecret != "",
			"CLOUDINARY":   h.cfg.Storage.CloudinaryCloudName != "",
			"APP_ENV":      h.cfg.Server.Environment,
		},
	})
}
