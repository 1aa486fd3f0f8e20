package port

import (
	"context"
	"errors"

	"github.com/nikolayk812/foodorder-demo/internal/domain"
)

var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuFilter narrows ListMenu results. The zero value selects everything.
type MenuFilter struct {
	CategoryID string // equality match
	Query      string // case-insensitive substring match on the item name
	Limit      int    // 0 means no limit
}

type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListMenu(ctx context.Context, filter MenuFilter) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (domain.MenuItem, error)
	ListCustomizations(ctx context.Context) ([]domain.Customization, error)

	CreateCategory(ctx context.Context, category domain.Category) error
	CreateCustomization(ctx context.Context, customization domain.Customization) error
	CreateMenuItem(ctx context.Context, item domain.MenuItem) error
	DeleteAll(ctx context.Context) error
}
