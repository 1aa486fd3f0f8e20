package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikolayk812/foodorder-demo/internal/checkout"
)

func TestBuildOrderPlaced(t *testing.T) {
	placedAt := time.Date(2024, time.March, 9, 12, 30, 0, 0, time.UTC)

	ev := BuildOrderPlaced(checkout.Order{
		ID:       "8f9f2c1e-3f7a-4f3c-9f71-6a1f0a2b9c11",
		UserID:   "user-42",
		Amount:   5688,
		Currency: "EUR",
		PlacedAt: placedAt,
	})

	assert.Equal(t, "OrderPlaced", ev.EventType)
	assert.Equal(t, "8f9f2c1e-3f7a-4f3c-9f71-6a1f0a2b9c11", ev.OrderID)
	assert.Equal(t, "user-42", ev.UserID)
	assert.Equal(t, int64(5688), ev.AmountMinor)
	assert.Equal(t, "EUR", ev.Currency)
	assert.Equal(t, placedAt, ev.Timestamp)
}

// Consumers depend on the field names, so the wire shape is pinned here.
func TestOrderPlaced_WireFormat(t *testing.T) {
	ev := BuildOrderPlaced(checkout.Order{
		ID:       "order-1",
		UserID:   "user-1",
		Amount:   3049,
		Currency: "EUR",
		PlacedAt: time.Date(2024, time.March, 9, 12, 30, 0, 0, time.UTC),
	})

	body, err := json.Marshal(ev)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))

	assert.Equal(t, map[string]any{
		"eventType":   "OrderPlaced",
		"orderId":     "order-1",
		"userId":      "user-1",
		"amountMinor": float64(3049),
		"currency":    "EUR",
		"timestamp":   "2024-03-09T12:30:00Z",
	}, got)
}
