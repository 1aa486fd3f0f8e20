package catalog

import (
	"context"
	"fmt"

	"github.com/nikolayk812/foodorder-demo/internal/domain"
	"github.com/nikolayk812/foodorder-demo/internal/port"
)

// Catalog is the read-only customization reference list, populated once at
// startup and never mutated afterwards.
type Catalog struct {
	customizations []domain.Customization
}

func New(customizations []domain.Customization) *Catalog {
	return &Catalog{
		customizations: append([]domain.Customization(nil), customizations...),
	}
}

// Default builds the catalog from the built-in dataset.
func Default() *Catalog {
	return New(DefaultDataset().Customizations)
}

// Load builds the catalog from the backing store.
func Load(ctx context.Context, repo port.CatalogRepository) (*Catalog, error) {
	customizations, err := repo.ListCustomizations(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.ListCustomizations: %w", err)
	}

	return New(customizations), nil
}

// ListByType is a pure filter preserving declaration order. An empty result is
// valid, e.g. for an unused type.
func (c *Catalog) ListByType(t domain.CustomizationType) []domain.Customization {
	var out []domain.Customization
	for _, cu := range c.customizations {
		if cu.Type == t {
			out = append(out, cu)
		}
	}
	return out
}

// All returns every customization in declaration order.
func (c *Catalog) All() []domain.Customization {
	return append([]domain.Customization(nil), c.customizations...)
}

// ByID looks a customization up by id.
func (c *Catalog) ByID(id string) (domain.Customization, bool) {
	for _, cu := range c.customizations {
		if cu.ID == id {
			return cu, true
		}
	}
	return domain.Customization{}, false
}
