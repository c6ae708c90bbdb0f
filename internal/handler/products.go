package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safar/storefront/internal/database"
	"github.com/safar/storefront/internal/models"
	"github.com/safar/storefront/internal/store"
	"go.uber.org/zap"
)

type ProductHandler struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewProductHandler(db *sql.DB, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{db: db, logger: logger}
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := store.ListProducts(c.Request.Context(), h.db)
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"products": products,
	})
}

// Create performs no field validation beyond what the column types enforce;
// only persistence errors reject a product.
func (h *ProductHandler) Create(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := p.NormalizePrices(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price format"})
		return
	}

	created, err := store.CreateProduct(c.Request.Context(), h.db, &p)
	if err != nil {
		h.logger.Error("failed to add product", zap.String("product_id", p.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"product": created,
	})
}

func (h *ProductHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := p.NormalizePrices(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price format"})
		return
	}

	updated, err := store.UpdateProduct(c.Request.Context(), h.db, id, &p)
	if err != nil {
		if errors.Is(err, database.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		h.logger.Error("failed to update product", zap.String("product_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"product": updated,
	})
}

// Delete succeeds whether or not the id exists.
func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := store.DeleteProduct(c.Request.Context(), h.db, id); err != nil {
		h.logger.Error("failed to delete product", zap.String("product_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product deleted",
	})
}
