package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/nikolayk812/foodorder-demo/internal/catalog"
	"github.com/nikolayk812/foodorder-demo/internal/config"
	"github.com/nikolayk812/foodorder-demo/internal/db"
	"github.com/nikolayk812/foodorder-demo/internal/domain"
	"github.com/nikolayk812/foodorder-demo/internal/port"
	"github.com/nikolayk812/foodorder-demo/internal/repository"
)

// Clears the catalog tables and reloads the built-in dataset. Safe to rerun.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()

	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	repo, err := repository.NewCatalog(pool)
	if err != nil {
		log.Fatalf("create catalog repository: %v", err)
	}

	if err := seed(ctx, repo, catalog.DefaultDataset()); err != nil {
		log.Fatalf("seed: %v", err)
	}
}

func seed(ctx context.Context, repo port.CatalogRepository, data catalog.Dataset) error {
	log.Println("clearing existing data...")
	if err := repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("repo.DeleteAll: %w", err)
	}

	categoryIDs := make(map[string]string, len(data.Categories))
	for _, c := range data.Categories {
		if err := repo.CreateCategory(ctx, c); err != nil {
			return fmt.Errorf("repo.CreateCategory[%s]: %w", c.Name, err)
		}
		categoryIDs[c.Name] = c.ID
	}
	log.Printf("inserted %d categories", len(data.Categories))

	customizations := make(map[string]domain.Customization, len(data.Customizations))
	for _, c := range data.Customizations {
		if err := repo.CreateCustomization(ctx, c); err != nil {
			return fmt.Errorf("repo.CreateCustomization[%s]: %w", c.Name, err)
		}
		customizations[c.Name] = c
	}
	log.Printf("inserted %d customizations", len(data.Customizations))

	for _, entry := range data.Menu {
		item, err := buildMenuItem(entry, categoryIDs, customizations)
		if err != nil {
			return err
		}
		if err := repo.CreateMenuItem(ctx, item); err != nil {
			return fmt.Errorf("repo.CreateMenuItem[%s]: %w", item.Name, err)
		}
	}
	log.Printf("inserted %d menu items", len(data.Menu))

	log.Println("seeding completed")
	return nil
}

func buildMenuItem(entry catalog.MenuEntry, categoryIDs map[string]string, customizations map[string]domain.Customization) (domain.MenuItem, error) {
	categoryID, ok := categoryIDs[entry.CategoryName]
	if !ok {
		return domain.MenuItem{}, fmt.Errorf("menu item %s references unknown category %s", entry.Name, entry.CategoryName)
	}

	selected := make([]domain.Customization, 0, len(entry.CustomizationNames))
	for _, name := range entry.CustomizationNames {
		c, ok := customizations[name]
		if !ok {
			return domain.MenuItem{}, fmt.Errorf("menu item %s references unknown customization %s", entry.Name, name)
		}
		selected = append(selected, c)
	}

	return domain.MenuItem{
		ID:             "item-" + slugify(entry.Name),
		Name:           entry.Name,
		Description:    entry.Description,
		ImageURL:       entry.ImageURL,
		Price:          entry.Price,
		Rating:         entry.Rating,
		Calories:       entry.Calories,
		Protein:        entry.Protein,
		CategoryID:     categoryID,
		Customizations: selected,
	}, nil
}

func slugify(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}
