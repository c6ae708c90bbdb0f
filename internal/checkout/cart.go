// Package checkout models the client-side cart and order assembly: a typed
// cart synchronized to durable local storage, order-number generation, and the
// WhatsApp order message. The cart is cleared explicitly on checkout success
// so a reload cannot resubmit the same order.
package checkout

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/safar/storefront/internal/models"
	"github.com/safar/storefront/internal/money"
	"github.com/safar/storefront/internal/notify"
)

// Line is one cart entry.
type Line struct {
	ProductID      string `json:"id"`
	Title          string `json:"title"`
	UnitPriceMinor int64  `json:"unit_price_minor"`
	Currency       string `json:"currency,omitempty"`
	Quantity       int    `json:"quantity"`
	Category       string `json:"category,omitempty"`
}

// Store is the durable backing for cart state.
type Store interface {
	Load() ([]Line, error)
	Save(lines []Line) error
}

// FileStore keeps the cart as a JSON document on disk, surviving restarts the
// way browser local storage survives reloads.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() ([]Line, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return lines, nil
}

func (s *FileStore) Save(lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save cart: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

type Cart struct {
	store Store
	lines []Line
}

// NewCart loads any previously saved state from the store.
func NewCart(store Store) (*Cart, error) {
	lines, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Cart{store: store, lines: lines}, nil
}

// Add merges the line into the cart, incrementing quantity for an already
// present product, and persists the new state.
func (c *Cart) Add(line Line) error {
	if line.Quantity <= 0 {
		line.Quantity = 1
	}
	for i := range c.lines {
		if c.lines[i].ProductID == line.ProductID {
			c.lines[i].Quantity += line.Quantity
			return c.store.Save(c.lines)
		}
	}
	c.lines = append(c.lines, line)
	return c.store.Save(c.lines)
}

func (c *Cart) Remove(productID string) error {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			break
		}
	}
	return c.store.Save(c.lines)
}

// SetQuantity updates a line's quantity; zero or negative removes the line.
func (c *Cart) SetQuantity(productID string, quantity int) error {
	if quantity <= 0 {
		return c.Remove(productID)
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			break
		}
	}
	return c.store.Save(c.lines)
}

func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) TotalMinor() int64 {
	var total int64
	for _, line := range c.lines {
		total += line.UnitPriceMinor * int64(line.Quantity)
	}
	return total
}

func (c *Cart) Currency() string {
	for _, line := range c.lines {
		if line.Currency != "" {
			return line.Currency
		}
	}
	return money.DefaultCurrency
}

// Clear empties the cart and persists the empty state. Called after the order
// submission succeeds.
func (c *Cart) Clear() error {
	c.lines = nil
	return c.store.Save(nil)
}

// Customer is the checkout form data.
type Customer struct {
	Name  string
	Email string
	Phone string
}

// NewOrderNumber derives a short human-readable order number from the last
// eight digits of the millisecond clock, e.g. BEP89658214.
func NewOrderNumber(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return "BEP" + ms
}

// BuildOrder assembles the submission payload from the cart contents.
func (c *Cart) BuildOrder(customer Customer, orderNumber, status string) *models.SubmitOrderRequest {
	items := make(models.OrderItems, 0, len(c.lines))
	for _, line := range c.lines {
		items = append(items, models.OrderItem{
			ProductID:      line.ProductID,
			Title:          line.Title,
			UnitPriceMinor: line.UnitPriceMinor,
			Currency:       line.Currency,
			Quantity:       line.Quantity,
			Category:       line.Category,
		})
	}
	return &models.SubmitOrderRequest{
		OrderNumber:   orderNumber,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		CustomerPhone: customer.Phone,
		Items:         items,
		TotalAmount:   money.FromMinor(c.TotalMinor()),
		Status:        status,
	}
}

// OrderMessage composes the WhatsApp order text for the whatsapp_pending flow.
func (c *Cart) OrderMessage(customer Customer, orderNumber string) string {
	msg := fmt.Sprintf("*NEW ORDER - #%s*\n\n*Customer Details:*\nName: %s\nPhone: %s\n\n*Order Items:*\n",
		orderNumber, customer.Name, customer.Phone)
	for _, line := range c.lines {
		msg += fmt.Sprintf("- %s (Qty: %d)\n", line.Title, line.Quantity)
	}
	msg += fmt.Sprintf("\n*Total Amount:* %s\n\nPlease confirm my order.",
		money.Format(c.Currency(), c.TotalMinor()))
	return msg
}

// OrderLink is the wa.me deep link carrying the order message.
func (c *Cart) OrderLink(whatsappNumber string, customer Customer, orderNumber string) string {
	return notify.WhatsAppLink(whatsappNumber, c.OrderMessage(customer, orderNumber))
}
