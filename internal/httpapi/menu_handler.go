package httpapi

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nikolayk812/foodorder-demo/internal/catalog"
	"github.com/nikolayk812/foodorder-demo/internal/domain"
	"github.com/nikolayk812/foodorder-demo/internal/port"
)

type MenuHandler struct {
	repo    port.CatalogRepository
	catalog *catalog.Catalog
}

func NewMenuHandler(repo port.CatalogRepository, cat *catalog.Catalog) *MenuHandler {
	return &MenuHandler{repo: repo, catalog: cat}
}

// ListMenu supports ?category=, ?q= (name search) and ?limit= filters.
func (h *MenuHandler) ListMenu(w http.ResponseWriter, r *http.Request) {
	filter := port.MenuFilter{
		CategoryID: r.URL.Query().Get("category"),
		Query:      r.URL.Query().Get("q"),
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			respondError(w, http.StatusBadRequest, "invalid_limit", "limit must be a non-negative integer")
			return
		}
		filter.Limit = limit
	}

	items, err := h.repo.ListMenu(r.Context(), filter)
	if err != nil {
		log.Printf("list menu: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load menu")
		return
	}

	out := make([]MenuItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, toMenuItemDTO(item))
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *MenuHandler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")

	item, err := h.repo.GetMenuItem(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, port.ErrMenuItemNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "menu item not found")
			return
		}
		log.Printf("get menu item %s: %v", itemID, err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load menu item")
		return
	}

	respondJSON(w, http.StatusOK, toMenuItemDTO(item))
}

func (h *MenuHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.ListCategories(r.Context())
	if err != nil {
		log.Printf("list categories: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load categories")
		return
	}

	out := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryDTO(c))
	}
	respondJSON(w, http.StatusOK, out)
}

// ListCustomizations serves the in-process catalog, optionally filtered by
// ?type=topping or ?type=side.
func (h *MenuHandler) ListCustomizations(w http.ResponseWriter, r *http.Request) {
	var customizations []domain.Customization

	switch t := r.URL.Query().Get("type"); t {
	case "":
		customizations = h.catalog.All()
	case string(domain.CustomizationTopping), string(domain.CustomizationSide):
		customizations = h.catalog.ListByType(domain.CustomizationType(t))
	default:
		respondError(w, http.StatusBadRequest, "invalid_type", "type must be topping or side")
		return
	}

	respondJSON(w, http.StatusOK, toCustomizationDTOs(customizations))
}
