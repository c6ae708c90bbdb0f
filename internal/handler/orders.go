package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/safar/storefront/internal/database"
	"github.com/safar/storefront/internal/models"
	"github.com/safar/storefront/internal/notify"
	"github.com/safar/storefront/internal/store"
	"go.uber.org/zap"
)

type OrderHandler struct {
	db          *sql.DB
	notifier    *notify.Dispatcher
	frontendURL string
	logger      *zap.Logger
}

func NewOrderHandler(db *sql.DB, notifier *notify.Dispatcher, frontendURL string, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{db: db, notifier: notifier, frontendURL: frontendURL, logger: logger}
}

// Submit validates, persists, then notifies — in that order. Persistence is
// the durable fact; a notification failure is reported in the payload but
// never changes the HTTP outcome.
func (h *OrderHandler) Submit(c *gin.Context) {
	var req models.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if verr := req.Validate(); verr != nil {
		c.JSON(http.StatusBadRequest, verr)
		return
	}

	order, err := store.CreateOrder(c.Request.Context(), h.db, &req)
	if err != nil {
		if errors.Is(err, database.ErrDuplicateOrderNumber) {
			c.JSON(http.StatusConflict, gin.H{"error": "Order number already exists"})
			return
		}
		h.logger.Error("failed to create order",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("order_number", req.OrderNumber),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to submit order",
			"message": err.Error(),
		})
		return
	}

	result := h.notifier.OrderCreated(c.Request.Context(), notify.Event{
		Order:   order,
		BaseURL: h.baseURL(c),
	})

	var emailError interface{}
	if result.Err != "" {
		emailError = result.Err
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Order placed successfully",
		"orderNumber": order.OrderNumber,
		"orderId":     order.ID,
		"emailSent":   result.Sent,
		"emailError":  emailError,
	})
}

// baseURL picks the storefront origin for dashboard links: the requesting
// origin when present, the configured frontend URL otherwise.
func (h *OrderHandler) baseURL(c *gin.Context) string {
	base := c.GetHeader("Origin")
	if base == "" {
		base = c.GetHeader("Referer")
	}
	if base == "" {
		base = h.frontendURL
	}
	return strings.TrimRight(base, "/")
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := store.ListOrders(c.Request.Context(), h.db)
	if err != nil {
		h.logger.Error("failed to list orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch orders",
			"message": err.Error(),
		})
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"orders":  orders,
		"count":   len(orders),
	})
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderNumber := c.Param("orderNumber")

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}
	if !models.ValidOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status: " + req.Status})
		return
	}

	order, err := store.UpdateOrderStatus(c.Request.Context(), h.db, orderNumber, req.Status)
	if err != nil {
		if errors.Is(err, database.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		h.logger.Error("failed to update order status",
			zap.String("order_number", orderNumber),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to update order status",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order status updated",
		"order":   order,
	})
}
