package models

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// SubmitOrderRequest is the order payload the checkout flow assembles.
// Field names mirror the wire format the storefront clients send.
type SubmitOrderRequest struct {
	OrderNumber   string          `json:"orderNumber"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	CustomerPhone string          `json:"customerPhone"`
	Items         OrderItems      `json:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Status        string          `json:"status"`
}

// ValidationError is a client input error. Missing carries the names of the
// absent required fields when the message is the missing-fields one.
type ValidationError struct {
	Message string   `json:"error"`
	Missing []string `json:"required,omitempty"`
}

func (e *ValidationError) Error() string { return e.Message }

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate enforces the submission constraints before any persistence
// attempt. It never mutates the request.
func (r *SubmitOrderRequest) Validate() *ValidationError {
	var missing []string
	if strings.TrimSpace(r.OrderNumber) == "" {
		missing = append(missing, "orderNumber")
	}
	if strings.TrimSpace(r.CustomerName) == "" {
		missing = append(missing, "customerName")
	}
	if strings.TrimSpace(r.CustomerEmail) == "" {
		missing = append(missing, "customerEmail")
	}
	if strings.TrimSpace(r.CustomerPhone) == "" {
		missing = append(missing, "customerPhone")
	}
	if len(r.Items) == 0 {
		missing = append(missing, "items")
	}
	if !r.TotalAmount.IsPositive() {
		missing = append(missing, "totalAmount")
	}
	if len(missing) > 0 {
		return &ValidationError{Message: "Missing required fields", Missing: missing}
	}

	if !emailPattern.MatchString(r.CustomerEmail) {
		return &ValidationError{Message: "Invalid email format"}
	}
	if len(digitsOf(r.CustomerPhone)) != 10 {
		return &ValidationError{Message: "Invalid phone number. Must be 10 digits."}
	}
	if r.Status != "" && !ValidOrderStatus(r.Status) {
		return &ValidationError{Message: "Unknown order status: " + r.Status}
	}
	return nil
}

func digitsOf(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
