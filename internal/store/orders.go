package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/safar/storefront/internal/database"
	"github.com/safar/storefront/internal/models"
)

const orderColumns = `id, order_number, customer_name, customer_email, customer_phone,
		items, total_amount, status, created_at, updated_at`

// CreateOrder persists a validated submission and returns the stored row.
// A duplicate order_number surfaces as database.ErrDuplicateOrderNumber so
// callers can distinguish the conflict from other persistence failures.
func CreateOrder(ctx context.Context, db *sql.DB, req *models.SubmitOrderRequest) (*models.Order, error) {
	status := req.Status
	if status == "" {
		status = models.OrderStatusPending
	}

	query := `
		INSERT INTO orders (order_number, customer_name, customer_email, customer_phone,
			items, total_amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + orderColumns

	order := &models.Order{}
	err := db.QueryRowContext(ctx, query,
		req.OrderNumber,
		req.CustomerName,
		req.CustomerEmail,
		req.CustomerPhone,
		req.Items,
		req.TotalAmount,
		status,
	).Scan(
		&order.ID,
		&order.OrderNumber,
		&order.CustomerName,
		&order.CustomerEmail,
		&order.CustomerPhone,
		&order.Items,
		&order.TotalAmount,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, database.ErrDuplicateOrderNumber
		}
		return nil, fmt.Errorf("create order: %w", err)
	}

	return order, nil
}

func GetOrderByNumber(ctx context.Context, db *sql.DB, orderNumber string) (*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_number = $1`

	order := &models.Order{}
	err := db.QueryRowContext(ctx, query, orderNumber).Scan(
		&order.ID,
		&order.OrderNumber,
		&order.CustomerName,
		&order.CustomerEmail,
		&order.CustomerPhone,
		&order.Items,
		&order.TotalAmount,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	return order, nil
}

// ListOrders returns every order, newest first.
func ListOrders(ctx context.Context, db *sql.DB) ([]models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC, id DESC`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var order models.Order
		err := rows.Scan(
			&order.ID,
			&order.OrderNumber,
			&order.CustomerName,
			&order.CustomerEmail,
			&order.CustomerPhone,
			&order.Items,
			&order.TotalAmount,
			&order.Status,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return orders, nil
}

// UpdateOrderStatus overwrites the status and bumps updated_at, returning the
// full updated row. No prior-status audit trail is kept.
func UpdateOrderStatus(ctx context.Context, db *sql.DB, orderNumber, status string) (*models.Order, error) {
	query := `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE order_number = $2
		RETURNING ` + orderColumns

	order := &models.Order{}
	err := db.QueryRowContext(ctx, query, status, orderNumber).Scan(
		&order.ID,
		&order.OrderNumber,
		&order.CustomerName,
		&order.CustomerEmail,
		&order.CustomerPhone,
		&order.Items,
		&order.TotalAmount,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrOrderNotFound
		}
		return nil, fmt.Errorf("update order status: %w", err)
	}

	return order, nil
}
