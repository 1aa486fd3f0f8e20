package checkout

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/foodorder-demo/internal/cart"
	"github.com/nikolayk812/foodorder-demo/internal/domain"
	"github.com/nikolayk812/foodorder-demo/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/currency"
)

// Order describes a successfully paid checkout, published for downstream
// consumers.
type Order struct {
	ID       string
	UserID   string
	Amount   int64 // minor currency units
	Currency string
	PlacedAt time.Time
}

type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, order Order) error
}

type Config struct {
	MerchantName string
	Currency     currency.Unit
	DeliveryFee  decimal.Decimal
	Discount     decimal.Decimal
}

// Orchestrator turns the current cart contents into a completed or failed
// payment attempt: compute the charge, request credentials, drive the payment
// sheet, reconcile the outcome into the cart.
type Orchestrator struct {
	intents port.PaymentIntents
	sheet   port.PaymentSheet
	events  OrderPublisher // optional
	cfg     Config

	sfg singleflight.Group
}

func New(intents port.PaymentIntents, sheet port.PaymentSheet, events OrderPublisher, cfg Config) (*Orchestrator, error) {
	if intents == nil {
		return nil, fmt.Errorf("intents is nil")
	}
	if sheet == nil {
		return nil, fmt.Errorf("sheet is nil")
	}
	if cfg.DeliveryFee.IsNegative() || cfg.Discount.IsNegative() {
		return nil, fmt.Errorf("delivery fee and discount must be non-negative")
	}
	// a discount above the delivery fee could push the charge below zero
	if cfg.Discount.GreaterThan(cfg.DeliveryFee) {
		return nil, fmt.Errorf("discount %s exceeds delivery fee %s", cfg.Discount, cfg.DeliveryFee)
	}

	return &Orchestrator{
		intents: intents,
		sheet:   sheet,
		events:  events,
		cfg:     cfg,
	}, nil
}

// Checkout runs one payment attempt for the payer's current cart. All four
// failure kinds come back inside Result; a non-nil error means a wiring defect,
// not a payment failure.
//
// Concurrent attempts for the same payer are collapsed into one: the credential
// request runs at most once and every caller observes the same Result, so a
// double-submitted checkout cannot double-charge. A retry is a fresh invocation
// with freshly issued credentials.
//
// The collapsed attempt runs under the context of the caller that started it.
// If that caller's request is cancelled mid-attempt, joined callers observe
// the same cancellation and can simply retry.
func (o *Orchestrator) Checkout(ctx context.Context, store *cart.Store, payer domain.User) (Result, error) {
	v, err, _ := o.sfg.Do(payer.ID, func() (any, error) {
		return o.checkout(ctx, store, payer)
	})
	if err != nil {
		return Result{}, err
	}

	return v.(Result), nil
}

func (o *Orchestrator) checkout(ctx context.Context, store *cart.Store, payer domain.User) (Result, error) {
	if payer.ID == "" || payer.Email == "" {
		return Result{Outcome: OutcomeRejected, Reason: "missing payer identity"}, nil
	}
	if store.TotalItems() == 0 {
		return Result{Outcome: OutcomeRejected, Reason: "cart is empty"}, nil
	}

	// The charge amount is fixed here for the lifetime of the attempt. The
	// credentials issued below encode it; recomputing after the interactive
	// step would desync from what the remote side authorized.
	amount, err := o.chargeAmount(store.TotalPrice())
	if err != nil {
		return Result{}, err
	}

	cur := strings.ToLower(o.cfg.Currency.String())

	creds, err := o.intents.CreateIntent(ctx, port.IntentRequest{
		Amount:   amount,
		Currency: cur,
		UserID:   payer.ID,
		Email:    payer.Email,
	})
	if err != nil {
		log.Printf("create payment intent for user %s: %v", payer.ID, err)
		return Result{Outcome: OutcomeSetupFailed, Reason: "payment setup failed, please try again", Amount: amount, Currency: cur}, nil
	}

	billingName := payer.Name
	if billingName == "" {
		billingName = "Customer"
	}

	err = o.sheet.Init(ctx, port.SheetConfig{
		MerchantName: o.cfg.MerchantName,
		CustomerID:   creds.CustomerID,
		EphemeralKey: creds.EphemeralKey,
		ClientSecret: creds.ClientSecret,
		BillingName:  billingName,
		BillingEmail: payer.Email,
	})
	if err != nil {
		log.Printf("init payment sheet for user %s: %v", payer.ID, err)
		return Result{Outcome: OutcomeSetupFailed, Reason: "payment setup failed, please try again", Amount: amount, Currency: cur}, nil
	}

	res, err := o.sheet.Present(ctx)
	if err != nil {
		log.Printf("present payment sheet for user %s: %v", payer.ID, err)
		return Result{Outcome: OutcomeDeclined, Reason: "payment could not be completed", Amount: amount, Currency: cur}, nil
	}

	switch res.Status {
	case port.SheetCancelled:
		return Result{Outcome: OutcomeCancelled, Amount: amount, Currency: cur}, nil
	case port.SheetFailed:
		return Result{Outcome: OutcomeDeclined, Reason: res.Reason, Amount: amount, Currency: cur}, nil
	case port.SheetCompleted:
		// fall through
	default:
		return Result{}, fmt.Errorf("unexpected sheet status %q", res.Status)
	}

	store.Clear()

	result := Result{
		Outcome:  OutcomeSucceeded,
		OrderID:  uuid.NewString(),
		Amount:   amount,
		Currency: cur,
	}

	if o.events != nil {
		order := Order{
			ID:       result.OrderID,
			UserID:   payer.ID,
			Amount:   amount,
			Currency: cur,
			PlacedAt: time.Now(),
		}
		// the payment already went through, the event is best-effort
		if err := o.events.PublishOrderPlaced(ctx, order); err != nil {
			log.Printf("publish order placed %s: %v", order.ID, err)
		}
	}

	return result, nil
}

// chargeAmount converts cart total + delivery fee - discount to minor units,
// rounding half away from zero. A negative result is a configuration defect
// and comes back as an error, never clamped.
func (o *Orchestrator) chargeAmount(total domain.Money) (int64, error) {
	final := total.Amount.Add(o.cfg.DeliveryFee).Sub(o.cfg.Discount)

	amount := domain.Money{Amount: final, Currency: o.cfg.Currency}.MinorUnits()
	if amount < 0 {
		return 0, fmt.Errorf("charge amount is negative: %s", final)
	}

	return amount, nil
}
