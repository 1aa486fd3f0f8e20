package httpapi

import (
	"log"
	"net/http"

	"github.com/nikolayk812/foodorder-demo/internal/cart"
	"github.com/nikolayk812/foodorder-demo/internal/checkout"
)

type CheckoutHandler struct {
	orchestrator *checkout.Orchestrator
	carts        *cart.Registry
}

func NewCheckoutHandler(orchestrator *checkout.Orchestrator, carts *cart.Registry) *CheckoutHandler {
	return &CheckoutHandler{orchestrator: orchestrator, carts: carts}
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	if user.ID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user identity")
		return
	}

	store := h.carts.Get(user.ID)

	result, err := h.orchestrator.Checkout(r.Context(), store, user)
	if err != nil {
		log.Printf("checkout for %s: %v", user.ID, err)
		respondError(w, http.StatusInternalServerError, "internal_error", "checkout failed")
		return
	}

	respondJSON(w, outcomeStatus(result.Outcome), toCheckoutResponse(result))
}

// outcomeStatus maps checkout outcomes to HTTP statuses. A cancelled sheet is
// a clean 200: the attempt ended, nothing went wrong.
func outcomeStatus(outcome checkout.Outcome) int {
	switch outcome {
	case checkout.OutcomeSucceeded, checkout.OutcomeCancelled:
		return http.StatusOK
	case checkout.OutcomeRejected:
		return http.StatusUnprocessableEntity
	case checkout.OutcomeDeclined:
		return http.StatusPaymentRequired
	case checkout.OutcomeSetupFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
