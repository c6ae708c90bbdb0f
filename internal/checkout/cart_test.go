package checkout

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/safar/storefront/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLine() Line {
	return Line{
		ProductID:      "v1",
		Title:          "MIDNIGHT MIST",
		UnitPriceMinor: 249900,
		Quantity:       1,
		Category:       "PREMIUM VAPE",
	}
}

func newTestCart(t *testing.T) (*Cart, *FileStore) {
	t.Helper()
	store := NewFileStore(filepath.Join(t.TempDir(), "cart.json"))
	cart, err := NewCart(store)
	require.NoError(t, err)
	return cart, store
}

func TestCartSurvivesReload(t *testing.T) {
	cart, store := newTestCart(t)
	require.NoError(t, cart.Add(testLine()))
	require.NoError(t, cart.Add(Line{ProductID: "h1", Title: "CRIMSON CONQUEST", UnitPriceMinor: 1299900, Quantity: 1}))

	reloaded, err := NewCart(store)
	require.NoError(t, err)
	assert.Equal(t, cart.Lines(), reloaded.Lines())
	assert.Equal(t, int64(249900+1299900), reloaded.TotalMinor())
}

func TestAddMergesExistingProduct(t *testing.T) {
	cart, _ := newTestCart(t)
	require.NoError(t, cart.Add(testLine()))
	require.NoError(t, cart.Add(testLine()))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestSetQuantityAndRemove(t *testing.T) {
	cart, _ := newTestCart(t)
	require.NoError(t, cart.Add(testLine()))

	require.NoError(t, cart.SetQuantity("v1", 4))
	assert.Equal(t, int64(4*249900), cart.TotalMinor())

	require.NoError(t, cart.SetQuantity("v1", 0))
	assert.Empty(t, cart.Lines())
}

func TestClearEmptiesDurableState(t *testing.T) {
	cart, store := newTestCart(t)
	require.NoError(t, cart.Add(testLine()))
	require.NoError(t, cart.Clear())

	reloaded, err := NewCart(store)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Lines())
}

func TestNewOrderNumber(t *testing.T) {
	now := time.UnixMilli(1735689658214)
	number := NewOrderNumber(now)
	assert.Equal(t, "BEP89658214", number)
	assert.True(t, strings.HasPrefix(number, "BEP"))
	assert.Len(t, number, 11)
}

func TestBuildOrderProducesValidSubmission(t *testing.T) {
	cart, _ := newTestCart(t)
	require.NoError(t, cart.Add(testLine()))
	require.NoError(t, cart.SetQuantity("v1", 2))

	customer := Customer{Name: "Priya Sharma", Email: "priya@example.com", Phone: "9876543210"}
	req := cart.BuildOrder(customer, "BEP12345678", models.OrderStatusPending)

	assert.Nil(t, req.Validate())
	assert.Equal(t, "BEP12345678", req.OrderNumber)
	require.Len(t, req.Items, 1)
	assert.Equal(t, 2, req.Items[0].Quantity)
	assert.True(t, decimal.NewFromInt(4998).Equal(req.TotalAmount))
}

func TestOrderMessageAndLink(t *testing.T) {
	cart, _ := newTestCart(t)
	require.NoError(t, cart.Add(testLine()))

	customer := Customer{Name: "Priya Sharma", Phone: "9876543210"}
	msg := cart.OrderMessage(customer, "BEP12345678")

	assert.Contains(t, msg, "*NEW ORDER - #BEP12345678*")
	assert.Contains(t, msg, "Name: Priya Sharma")
	assert.Contains(t, msg, "- MIDNIGHT MIST (Qty: 1)")
	assert.Contains(t, msg, "*Total Amount:* ₹2,499")

	link := cart.OrderLink("911234567890", customer, "BEP12345678")
	assert.True(t, strings.HasPrefix(link, "https://wa.me/911234567890?text="))
	assert.NotContains(t, link, " ")
}
