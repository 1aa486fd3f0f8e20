package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/foodorder-demo/internal/domain"
	"github.com/nikolayk812/foodorder-demo/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type catalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalog(pool *pgxpool.Pool) (port.CatalogRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &catalogRepository{pool: pool}, nil
}

func (r *catalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description FROM categories ORDER BY created_at, name`)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return categories, nil
}

func (r *catalogRepository) ListMenu(ctx context.Context, filter port.MenuFilter) ([]domain.MenuItem, error) {
	query := `SELECT id, name, description, image_url, price_amount::text, price_currency,
		rating, calories, protein, category_id FROM menu_items`

	var (
		conds []string
		args  []any
	)
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		conds = append(conds, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if filter.Query != "" {
		args = append(args, escapeLike(filter.Query))
		conds = append(conds, fmt.Sprintf("name ILIKE '%%' || $%d || '%%'", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	query += " ORDER BY created_at, name"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	items, err := mapMenuRows(rows)
	if err != nil {
		return nil, fmt.Errorf("mapMenuRows: %w", err)
	}

	if err := r.attachCustomizations(ctx, items); err != nil {
		return nil, fmt.Errorf("attachCustomizations: %w", err)
	}

	return items, nil
}

func (r *catalogRepository) GetMenuItem(ctx context.Context, id string) (domain.MenuItem, error) {
	if id == "" {
		return domain.MenuItem{}, fmt.Errorf("id is empty")
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, image_url, price_amount::text, price_currency,
			rating, calories, protein, category_id FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	items, err := mapMenuRows(rows)
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("mapMenuRows: %w", err)
	}
	if len(items) == 0 {
		return domain.MenuItem{}, port.ErrMenuItemNotFound
	}

	if err := r.attachCustomizations(ctx, items); err != nil {
		return domain.MenuItem{}, fmt.Errorf("attachCustomizations: %w", err)
	}

	return items[0], nil
}

func (r *catalogRepository) ListCustomizations(ctx context.Context) ([]domain.Customization, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, price_amount::text, price_currency, type
		FROM customizations ORDER BY created_at, name`)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	return mapCustomizationRows(rows)
}

func (r *catalogRepository) CreateCategory(ctx context.Context, category domain.Category) error {
	if category.ID == "" {
		return fmt.Errorf("category id is empty")
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO categories (id, name, description) VALUES ($1, $2, $3)`,
		category.ID, category.Name, category.Description)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}

func (r *catalogRepository) CreateCustomization(ctx context.Context, customization domain.Customization) error {
	if customization.ID == "" {
		return fmt.Errorf("customization id is empty")
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO customizations (id, name, price_amount, price_currency, type)
		VALUES ($1, $2, $3, $4, $5)`,
		customization.ID,
		customization.Name,
		customization.Price.Amount.String(),
		customization.Price.Currency.String(),
		string(customization.Type))
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}

func (r *catalogRepository) CreateMenuItem(ctx context.Context, item domain.MenuItem) error {
	if item.ID == "" {
		return fmt.Errorf("menu item id is empty")
	}

	// item row and its customization links land atomically
	_, err := withTx(ctx, r.pool, func(tx pgx.Tx) (struct{}, error) {
		_, err := tx.Exec(ctx,
			`INSERT INTO menu_items (id, name, description, image_url, price_amount,
				price_currency, rating, calories, protein, category_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			item.ID, item.Name, item.Description, item.ImageURL,
			item.Price.Amount.String(), item.Price.Currency.String(),
			item.Rating, item.Calories, item.Protein, item.CategoryID)
		if err != nil {
			return struct{}{}, fmt.Errorf("insert menu item: %w", err)
		}

		for _, c := range item.Customizations {
			_, err := tx.Exec(ctx,
				`INSERT INTO menu_item_customizations (menu_item_id, customization_id)
				VALUES ($1, $2)`, item.ID, c.ID)
			if err != nil {
				return struct{}{}, fmt.Errorf("insert customization link: %w", err)
			}
		}

		return struct{}{}, nil
	})

	return err
}

func (r *catalogRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx,
		`TRUNCATE TABLE menu_item_customizations, menu_items, customizations, categories CASCADE`)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}

// attachCustomizations loads the linked customizations for the given items in
// one query and attaches them in name order.
func (r *catalogRepository) attachCustomizations(ctx context.Context, items []domain.MenuItem) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT mic.menu_item_id, c.id, c.name, c.price_amount::text, c.price_currency, c.type
		FROM menu_item_customizations mic
		JOIN customizations c ON c.id = mic.customization_id
		WHERE mic.menu_item_id = ANY ($1)
		ORDER BY c.name`, ids)
	if err != nil {
		return fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	byItem := make(map[string][]domain.Customization)
	for rows.Next() {
		var (
			itemID string
			c      domain.Customization
		)
		if err := scanCustomization(rows, &itemID, &c); err != nil {
			return err
		}
		byItem[itemID] = append(byItem[itemID], c)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("rows.Err: %w", err)
	}

	for i := range items {
		items[i].Customizations = byItem[items[i].ID]
	}

	return nil
}

func mapMenuRows(rows pgx.Rows) ([]domain.MenuItem, error) {
	var items []domain.MenuItem

	for rows.Next() {
		var (
			it          domain.MenuItem
			amount, cur string
		)
		err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.ImageURL,
			&amount, &cur, &it.Rating, &it.Calories, &it.Protein, &it.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}

		price, err := parseMoney(amount, cur)
		if err != nil {
			return nil, fmt.Errorf("parseMoney: %w", err)
		}
		it.Price = price

		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return items, nil
}

func mapCustomizationRows(rows pgx.Rows) ([]domain.Customization, error) {
	var customizations []domain.Customization

	for rows.Next() {
		var c domain.Customization
		if err := scanCustomization(rows, nil, &c); err != nil {
			return nil, err
		}
		customizations = append(customizations, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return customizations, nil
}

func scanCustomization(rows pgx.Rows, itemID *string, c *domain.Customization) error {
	var (
		amount, cur, typ string
		dest             []any
	)
	if itemID != nil {
		dest = append(dest, itemID)
	}
	dest = append(dest, &c.ID, &c.Name, &amount, &cur, &typ)

	if err := rows.Scan(dest...); err != nil {
		return fmt.Errorf("rows.Scan: %w", err)
	}

	price, err := parseMoney(amount, cur)
	if err != nil {
		return fmt.Errorf("parseMoney: %w", err)
	}

	c.Price = price
	c.Type = domain.CustomizationType(typ)

	return nil
}

// escapeLike neutralizes LIKE metacharacters so a search for "100%" matches
// the literal text instead of acting as a wildcard.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func parseMoney(amount, cur string) (domain.Money, error) {
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return domain.Money{}, fmt.Errorf("amount[%s] is not valid: %w", amount, err)
	}

	parsedCurrency, err := currency.ParseISO(cur)
	if err != nil {
		return domain.Money{}, fmt.Errorf("currency[%s] is not valid: %w", cur, err)
	}

	return domain.Money{Amount: parsedAmount, Currency: parsedCurrency}, nil
}
