package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safar/storefront/internal/auth"
	"go.uber.org/zap"
)

type AuthHandler struct {
	manager *auth.Manager
	logger  *zap.Logger
}

func NewAuthHandler(manager *auth.Manager, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{manager: manager, logger: logger}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	token, err := h.manager.Login(req.Username, req.Password)
	if err != nil {
		h.logger.Warn("failed admin login attempt", zap.String("username", req.Username))
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Invalid username or password",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
	})
}
