package models

import (
	"time"

	"github.com/safar/storefront/internal/money"
	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending         = "pending"
	OrderStatusWhatsAppPending = "whatsapp_pending"
	OrderStatusShipped         = "shipped"
	OrderStatusDelivered       = "delivered"
	OrderStatusCancelled       = "cancelled"
)

var orderStatuses = map[string]struct{}{
	OrderStatusPending:         {},
	OrderStatusWhatsAppPending: {},
	OrderStatusShipped:         {},
	OrderStatusDelivered:       {},
	OrderStatusCancelled:       {},
}

// ValidOrderStatus reports whether s is a member of the fixed status set.
// Transitions between members are unrestricted: the workflow is advisory.
func ValidOrderStatus(s string) bool {
	_, ok := orderStatuses[s]
	return ok
}

// Order is immutable after creation except for Status and UpdatedAt.
type Order struct {
	ID            int64           `json:"id"`
	OrderNumber   string          `json:"order_number"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	CustomerPhone string          `json:"customer_phone"`
	Items         OrderItems      `json:"items"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ProductID      string `json:"id"`
	Title          string `json:"title"`
	UnitPriceMinor int64  `json:"unit_price_minor"`
	Currency       string `json:"currency,omitempty"`
	Quantity       int    `json:"quantity"`
	Category       string `json:"category,omitempty"`
}

// Price returns the display form of the unit price.
func (i OrderItem) Price() string {
	currency := i.Currency
	if currency == "" {
		currency = money.DefaultCurrency
	}
	return money.Format(currency, i.UnitPriceMinor)
}

type Product struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Category           string     `json:"category"`
	Type               string     `json:"type"`
	PriceMinor         int64      `json:"price_minor"`
	OriginalPriceMinor int64      `json:"original_price_minor"`
	Currency           string     `json:"currency"`
	Price              string     `json:"price"`
	OriginalPrice      string     `json:"original_price,omitempty"`
	DiscountPercent    int64      `json:"discount_percent"`
	Rating             float64    `json:"rating"`
	Reviews            int        `json:"reviews"`
	Description        string     `json:"description"`
	ImagePath          string     `json:"image_path"`
	BgPath             string     `json:"bg_path"`
	Features           StringList `json:"features"`
	Specifications     SpecMap    `json:"specifications"`
	IsFeatured         bool       `json:"is_featured"`
	CoverImagePath     string     `json:"cover_image_path,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// NormalizePrices back-fills the minor-unit amounts from display-form price
// strings when a client sent only those.
func (p *Product) NormalizePrices() error {
	if p.PriceMinor == 0 && p.Price != "" {
		minor, err := money.Parse(p.Price)
		if err != nil {
			return err
		}
		p.PriceMinor = minor
	}
	if p.OriginalPriceMinor == 0 && p.OriginalPrice != "" {
		minor, err := money.Parse(p.OriginalPrice)
		if err != nil {
			return err
		}
		p.OriginalPriceMinor = minor
	}
	return nil
}

// FormatPrices fills the derived display fields from the minor-unit amounts.
func (p *Product) FormatPrices() {
	if p.Currency == "" {
		p.Currency = money.DefaultCurrency
	}
	p.Price = money.Format(p.Currency, p.PriceMinor)
	if p.OriginalPriceMinor > 0 {
		p.OriginalPrice = money.Format(p.Currency, p.OriginalPriceMinor)
	} else {
		p.OriginalPrice = ""
	}
	p.DiscountPercent = money.DiscountPercent(p.OriginalPriceMinor, p.PriceMinor)
}
