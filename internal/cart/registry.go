package cart

import (
	"sync"

	"golang.org/x/text/currency"
)

// Registry hands out one Store per user id, creating it on first use.
type Registry struct {
	mu       sync.Mutex
	stores   map[string]*Store
	currency currency.Unit
}

func NewRegistry(cur currency.Unit) *Registry {
	return &Registry{
		stores:   make(map[string]*Store),
		currency: cur,
	}
}

func (r *Registry) Get(userID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.stores[userID]
	if !ok {
		s = NewStore(r.currency)
		r.stores[userID] = s
	}
	return s
}
