package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nikolayk812/foodorder-demo/internal/cart"
	"github.com/nikolayk812/foodorder-demo/internal/domain"
	"github.com/nikolayk812/foodorder-demo/internal/port"
)

type CartHandler struct {
	carts *cart.Registry
	repo  port.CatalogRepository
}

func NewCartHandler(carts *cart.Registry, repo port.CatalogRepository) *CartHandler {
	return &CartHandler{carts: carts, repo: repo}
}

type AddItemRequest struct {
	ItemID           string   `json:"itemId"`
	CustomizationIDs []string `json:"customizationIds"`
}

type LineSelectionRequest struct {
	CustomizationIDs []string `json:"customizationIds"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, toCartDTO(store.Lines(), store.TotalItems(), store.TotalPrice()))
}

// AddItem resolves the menu item and the selected customizations against the
// item's own allowed set, then merges the selection into the cart.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ItemID == "" {
		respondError(w, http.StatusBadRequest, "invalid_item_id", "itemId is required")
		return
	}

	item, err := h.repo.GetMenuItem(r.Context(), req.ItemID)
	if err != nil {
		if errors.Is(err, port.ErrMenuItemNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "menu item not found")
			return
		}
		log.Printf("get menu item %s: %v", req.ItemID, err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load menu item")
		return
	}

	customizations, err := resolveCustomizations(item, req.CustomizationIDs)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_customization", err.Error())
		return
	}

	store.AddItem(item, customizations)
	respondJSON(w, http.StatusOK, toCartDTO(store.Lines(), store.TotalItems(), store.TotalPrice()))
}

func (h *CartHandler) IncreaseQty(w http.ResponseWriter, r *http.Request) {
	h.mutateLine(w, r, func(store *cart.Store, itemID string, customizations []domain.Customization) {
		store.IncreaseQty(itemID, customizations)
	})
}

func (h *CartHandler) DecreaseQty(w http.ResponseWriter, r *http.Request) {
	h.mutateLine(w, r, func(store *cart.Store, itemID string, customizations []domain.Customization) {
		store.DecreaseQty(itemID, customizations)
	})
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.mutateLine(w, r, func(store *cart.Store, itemID string, customizations []domain.Customization) {
		store.RemoveItem(itemID, customizations)
	})
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	store.Clear()
	respondJSON(w, http.StatusOK, toCartDTO(store.Lines(), store.TotalItems(), store.TotalPrice()))
}

// mutateLine handles the shared shape of increase/decrease/remove: locate the
// line by item id plus selected customization ids, apply the mutation, return
// the updated cart. Line identity needs only the ids, so no catalog lookup.
func (h *CartHandler) mutateLine(w http.ResponseWriter, r *http.Request, mutate func(*cart.Store, string, []domain.Customization)) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	itemID := chi.URLParam(r, "itemId")
	if itemID == "" {
		respondError(w, http.StatusBadRequest, "invalid_item_id", "itemId is required")
		return
	}

	var req LineSelectionRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
			return
		}
	}

	selection := make([]domain.Customization, 0, len(req.CustomizationIDs))
	for _, id := range req.CustomizationIDs {
		selection = append(selection, domain.Customization{ID: id})
	}

	mutate(store, itemID, selection)
	respondJSON(w, http.StatusOK, toCartDTO(store.Lines(), store.TotalItems(), store.TotalPrice()))
}

func (h *CartHandler) store(w http.ResponseWriter, r *http.Request) (*cart.Store, bool) {
	user := userFromContext(r.Context())
	if user.ID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user identity")
		return nil, false
	}
	return h.carts.Get(user.ID), true
}

func resolveCustomizations(item domain.MenuItem, ids []string) ([]domain.Customization, error) {
	allowed := make(map[string]domain.Customization, len(item.Customizations))
	for _, c := range item.Customizations {
		allowed[c.ID] = c
	}

	out := make([]domain.Customization, 0, len(ids))
	for _, id := range ids {
		c, ok := allowed[id]
		if !ok {
			return nil, fmt.Errorf("customization %s is not offered for item %s", id, item.ID)
		}
		out = append(out, c)
	}
	return out, nil
}
