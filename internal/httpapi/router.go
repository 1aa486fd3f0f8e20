package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(menu *MenuHandler, carts *CartHandler, co *CheckoutHandler, timeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(timeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/categories", menu.ListCategories)
		r.Get("/menu", menu.ListMenu)
		r.Get("/menu/{itemId}", menu.GetMenuItem)
		r.Get("/customizations", menu.ListCustomizations)

		r.Group(func(r chi.Router) {
			r.Use(Identity)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", carts.GetCart)
				r.Delete("/", carts.ClearCart)
				r.Post("/items", carts.AddItem)
				r.Post("/items/{itemId}/increase", carts.IncreaseQty)
				r.Post("/items/{itemId}/decrease", carts.DecreaseQty)
				r.Post("/items/{itemId}/remove", carts.RemoveItem)
			})

			r.Post("/checkout", co.Checkout)
		})
	})

	return r
}
