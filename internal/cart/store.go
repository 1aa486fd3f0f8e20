package cart

import (
	"sync"

	"github.com/nikolayk812/foodorder-demo/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Store holds the lines of one user's cart in insertion order. Mutations are
// serialized by an internal mutex, so the key-uniqueness and quantity
// invariants hold no matter how many request goroutines touch the same cart.
//
// Mutation operations never fail: unknown keys are a no-op, since a UI
// double-tap causing a redundant request is an expected condition, not a fault.
type Store struct {
	mu       sync.Mutex
	lines    []domain.CartLine
	currency currency.Unit
}

func NewStore(cur currency.Unit) *Store {
	return &Store{currency: cur}
}

// AddItem merges into the line with the same (item, customization set) key, or
// appends a new line with quantity 1.
func (s *Store) AddItem(item domain.MenuItem, customizations []domain.Customization) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.LineKey(item.ID, customizations)
	for i := range s.lines {
		if s.lines[i].Key() == key {
			s.lines[i].Quantity++
			return
		}
	}

	s.lines = append(s.lines, domain.CartLine{
		ItemID:         item.ID,
		Name:           item.Name,
		UnitPrice:      item.Price,
		ImageURL:       item.ImageURL,
		Quantity:       1,
		Customizations: append([]domain.Customization(nil), customizations...),
	})
}

// IncreaseQty adds one to the matching line.
func (s *Store) IncreaseQty(itemID string, customizations []domain.Customization) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.LineKey(itemID, customizations)
	for i := range s.lines {
		if s.lines[i].Key() == key {
			s.lines[i].Quantity++
			return
		}
	}
}

// DecreaseQty subtracts one from the matching line and removes the line
// entirely when the quantity reaches zero. Quantities never go negative.
func (s *Store) DecreaseQty(itemID string, customizations []domain.Customization) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.LineKey(itemID, customizations)
	for i := range s.lines {
		if s.lines[i].Key() == key {
			if s.lines[i].Quantity <= 1 {
				s.lines = append(s.lines[:i], s.lines[i+1:]...)
			} else {
				s.lines[i].Quantity--
			}
			return
		}
	}
}

// RemoveItem removes the matching line regardless of its quantity.
func (s *Store) RemoveItem(itemID string, customizations []domain.Customization) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.LineKey(itemID, customizations)
	for i := range s.lines {
		if s.lines[i].Key() == key {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Called after a successful checkout.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
}

// Lines returns a snapshot copy of the lines in display order.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalItems is the sum of quantities across all lines, not the line count.
// It drives the empty-cart check before checkout.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, l := range s.lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice is recomputed from the current lines on every call. There is no
// cached total to go stale: this value is the single source of truth for what
// the user is charged.
func (s *Store) TotalPrice() domain.Money {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, l := range s.lines {
		total = total.Add(l.Subtotal())
	}

	return domain.Money{Amount: total, Currency: s.currency}
}
