package domain

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// CartLine is one distinct purchasable configuration in the cart: a menu item
// plus a specific set of selected customizations. The same menu item with a
// different customization set is a different line.
type CartLine struct {
	ItemID    string
	Name      string
	UnitPrice Money
	ImageURL  string
	Quantity  int

	// Customizations keeps insertion order for display; order does not
	// affect line identity or price.
	Customizations []Customization
}

func (l CartLine) Key() string {
	return LineKey(l.ItemID, l.Customizations)
}

// LineKey builds the canonical identity key of a line: the item id joined with
// the sorted customization ids. Two selections with the same ids in any order
// address the same line.
func LineKey(itemID string, customizations []Customization) string {
	ids := make([]string, 0, len(customizations))
	for _, c := range customizations {
		ids = append(ids, c.ID)
	}
	sort.Strings(ids)

	return itemID + "|" + strings.Join(ids, ",")
}

// Subtotal is (unit price + selected customization prices) × quantity.
func (l CartLine) Subtotal() decimal.Decimal {
	unit := l.UnitPrice.Amount
	for _, c := range l.Customizations {
		unit = unit.Add(c.Price.Amount)
	}

	return unit.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
