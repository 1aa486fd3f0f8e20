package checkout_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/foodorder-demo/internal/cart"
	"github.com/nikolayk812/foodorder-demo/internal/checkout"
	"github.com/nikolayk812/foodorder-demo/internal/domain"
	"github.com/nikolayk812/foodorder-demo/internal/port"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/text/currency"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var payer = domain.User{ID: "user-1", Name: "Ada", Email: "ada@example.com"}

func TestNew_RejectsBadConfig(t *testing.T) {
	intents := &mockIntents{}
	sheet := &mockSheet{}

	tests := []struct {
		name      string
		cfg       checkout.Config
		wantError string
	}{
		{
			name:      "discount above delivery fee",
			cfg:       config("5.00", "6.00"),
			wantError: "discount 6 exceeds delivery fee 5",
		},
		{
			name:      "negative delivery fee",
			cfg:       config("-1.00", "0"),
			wantError: "delivery fee and discount must be non-negative",
		},
		{
			name: "valid",
			cfg:  config("5.00", "0.50"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := checkout.New(intents, sheet, nil, tt.cfg)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCheckout_LocalValidation(t *testing.T) {
	tests := []struct {
		name     string
		payer    domain.User
		fillCart bool
	}{
		{name: "empty cart", payer: payer},
		{name: "missing payer id", payer: domain.User{Email: "a@b.c"}, fillCart: true},
		{name: "missing payer email", payer: domain.User{ID: "user-1"}, fillCart: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intents := &mockIntents{}
			sheet := &mockSheet{}
			o := newOrchestrator(t, intents, sheet, nil)

			store := cart.NewStore(currency.EUR)
			if tt.fillCart {
				store.AddItem(burger(), nil)
			}

			res, err := o.Checkout(t.Context(), store, tt.payer)
			require.NoError(t, err)

			assert.Equal(t, checkout.OutcomeRejected, res.Outcome)
			assert.NotEmpty(t, res.Reason)
			// a local validation failure never issues a remote call
			assert.Zero(t, intents.callCount())
			assert.Zero(t, sheet.initCount())
		})
	}
}

func TestCheckout_Success(t *testing.T) {
	intents := &mockIntents{creds: port.IntentCredentials{
		ClientSecret: "pi_secret",
		EphemeralKey: "ek_key",
		CustomerID:   "cus_1",
	}}
	sheet := &mockSheet{result: port.SheetResult{Status: port.SheetCompleted}}
	events := &mockPublisher{}
	o := newOrchestrator(t, intents, sheet, events)

	store := cart.NewStore(currency.EUR)
	store.AddItem(burger(), []domain.Customization{jalapenos()})
	store.IncreaseQty(burger().ID, []domain.Customization{jalapenos()})

	res, err := o.Checkout(t.Context(), store, payer)
	require.NoError(t, err)

	assert.Equal(t, checkout.OutcomeSucceeded, res.Outcome)
	assert.NotEmpty(t, res.OrderID)
	// (25.99 + 0.20) * 2 + 5.00 - 0.50 = 56.88 -> 5688 cents
	assert.EqualValues(t, 5688, res.Amount)
	assert.Equal(t, "eur", res.Currency)

	req := intents.lastRequest()
	assert.EqualValues(t, 5688, req.Amount)
	assert.Equal(t, "eur", req.Currency)
	assert.Equal(t, payer.ID, req.UserID)
	assert.Equal(t, payer.Email, req.Email)

	cfg := sheet.config()
	assert.Equal(t, "Food Delivery App", cfg.MerchantName)
	assert.Equal(t, "pi_secret", cfg.ClientSecret)
	assert.Equal(t, "ek_key", cfg.EphemeralKey)
	assert.Equal(t, "cus_1", cfg.CustomerID)
	assert.Equal(t, payer.Name, cfg.BillingName)
	assert.Equal(t, payer.Email, cfg.BillingEmail)

	// success clears the cart
	assert.Empty(t, store.Lines())
	assert.Zero(t, store.TotalItems())

	orders := events.published()
	require.Len(t, orders, 1)
	assert.Equal(t, res.OrderID, orders[0].ID)
	assert.Equal(t, payer.ID, orders[0].UserID)
	assert.EqualValues(t, 5688, orders[0].Amount)
	assert.False(t, orders[0].PlacedAt.IsZero())
}

func TestCheckout_FailuresLeaveCartUntouched(t *testing.T) {
	tests := []struct {
		name        string
		intents     *mockIntents
		sheet       *mockSheet
		wantOutcome checkout.Outcome
		wantReason  string
		wantInits   int
	}{
		{
			name:        "intent request fails",
			intents:     &mockIntents{err: errors.New("connection refused")},
			sheet:       &mockSheet{},
			wantOutcome: checkout.OutcomeSetupFailed,
			wantReason:  "payment setup failed, please try again",
		},
		{
			name:        "sheet init fails",
			intents:     &mockIntents{},
			sheet:       &mockSheet{initErr: errors.New("bad ephemeral key")},
			wantOutcome: checkout.OutcomeSetupFailed,
			wantReason:  "payment setup failed, please try again",
			wantInits:   1,
		},
		{
			name:        "user cancels",
			intents:     &mockIntents{},
			sheet:       &mockSheet{result: port.SheetResult{Status: port.SheetCancelled}},
			wantOutcome: checkout.OutcomeCancelled,
			wantInits:   1,
		},
		{
			name:        "payment declined",
			intents:     &mockIntents{},
			sheet:       &mockSheet{result: port.SheetResult{Status: port.SheetFailed, Reason: "card declined"}},
			wantOutcome: checkout.OutcomeDeclined,
			wantReason:  "card declined",
			wantInits:   1,
		},
		{
			name:        "sheet presentation errors",
			intents:     &mockIntents{},
			sheet:       &mockSheet{presentErr: errors.New("sdk crashed")},
			wantOutcome: checkout.OutcomeDeclined,
			wantReason:  "payment could not be completed",
			wantInits:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := &mockPublisher{}
			o := newOrchestrator(t, tt.intents, tt.sheet, events)

			store := cart.NewStore(currency.EUR)
			store.AddItem(burger(), []domain.Customization{jalapenos()})
			store.AddItem(burger(), nil)
			before := store.Lines()

			res, err := o.Checkout(t.Context(), store, payer)
			require.NoError(t, err)

			assert.Equal(t, tt.wantOutcome, res.Outcome)
			assert.Equal(t, tt.wantReason, res.Reason)
			assert.Equal(t, tt.wantInits, tt.sheet.initCount())

			// lines must be identical: same keys, quantities, customizations
			assert.Empty(t, cmp.Diff(before, store.Lines(),
				cmp.Comparer(func(x, y decimal.Decimal) bool { return x.Equal(y) }),
				cmp.Comparer(func(x, y currency.Unit) bool { return x.String() == y.String() }),
			))
			assert.Empty(t, events.published())
		})
	}
}

// The charge amount is fixed before the interactive step: mutating the cart
// while the sheet is on screen must not change what is charged.
func TestCheckout_AmountFixedDuringPresentation(t *testing.T) {
	intents := &mockIntents{}
	store := cart.NewStore(currency.EUR)
	store.AddItem(burger(), nil) // 25.99 + 5.00 - 0.50 = 30.49

	sheet := &mockSheet{result: port.SheetResult{Status: port.SheetCancelled}}
	sheet.onPresent = func() {
		store.AddItem(burger(), []domain.Customization{jalapenos()})
	}

	o := newOrchestrator(t, intents, sheet, nil)

	res, err := o.Checkout(t.Context(), store, payer)
	require.NoError(t, err)

	assert.EqualValues(t, 3049, res.Amount)
	assert.EqualValues(t, 3049, intents.lastRequest().Amount)
	// the cancelled attempt leaves the mid-flight mutation in place
	assert.Equal(t, 2, store.TotalItems())
}

func TestCheckout_HalfCentRoundsAwayFromZero(t *testing.T) {
	intents := &mockIntents{}
	sheet := &mockSheet{result: port.SheetResult{Status: port.SheetCancelled}}
	o := newOrchestrator(t, intents, sheet, nil)

	store := cart.NewStore(currency.EUR)
	item := burger()
	item.Price.Amount = decimal.RequireFromString("10.005")
	store.AddItem(item, nil)

	res, err := o.Checkout(t.Context(), store, payer)
	require.NoError(t, err)

	// 10.005 + 5.00 - 0.50 = 14.505 -> 1450.5 -> 1451
	assert.EqualValues(t, 1451, res.Amount)
}

// A double-submitted checkout for the same payer must request credentials at
// most once; both callers observe the same result.
func TestCheckout_DoubleSubmitChargesOnce(t *testing.T) {
	intents := &mockIntents{}

	var (
		inPresent = make(chan struct{})
		release   = make(chan struct{})
		once      sync.Once
	)
	sheet := &mockSheet{result: port.SheetResult{Status: port.SheetCompleted}}
	sheet.onPresent = func() {
		once.Do(func() { close(inPresent) })
		<-release
	}

	o := newOrchestrator(t, intents, sheet, nil)

	store := cart.NewStore(currency.EUR)
	store.AddItem(burger(), nil)

	var wg sync.WaitGroup
	results := make([]checkout.Result, 2)
	submit := func(i int) {
		defer wg.Done()
		res, err := o.Checkout(t.Context(), store, payer)
		assert.NoError(t, err)
		results[i] = res
	}

	wg.Add(2)
	go submit(0)
	<-inPresent // first attempt is now blocked inside the sheet
	go submit(1)
	time.Sleep(50 * time.Millisecond) // let the second attempt join the flight

	close(release)
	wg.Wait()

	assert.Equal(t, 1, intents.callCount())
	assert.Equal(t, results[0], results[1])
	assert.Equal(t, checkout.OutcomeSucceeded, results[0].Outcome)
}

func TestOutcome_Silent(t *testing.T) {
	assert.True(t, checkout.OutcomeSucceeded.Silent())
	assert.True(t, checkout.OutcomeCancelled.Silent())
	assert.False(t, checkout.OutcomeRejected.Silent())
	assert.False(t, checkout.OutcomeSetupFailed.Silent())
	assert.False(t, checkout.OutcomeDeclined.Silent())
}

func newOrchestrator(t *testing.T, intents port.PaymentIntents, sheet port.PaymentSheet, events checkout.OrderPublisher) *checkout.Orchestrator {
	t.Helper()

	o, err := checkout.New(intents, sheet, events, checkout.Config{
		MerchantName: "Food Delivery App",
		Currency:     currency.EUR,
		DeliveryFee:  decimal.RequireFromString("5.00"),
		Discount:     decimal.RequireFromString("0.50"),
	})
	require.NoError(t, err)

	return o
}

func config(fee, discount string) checkout.Config {
	return checkout.Config{
		MerchantName: "Food Delivery App",
		Currency:     currency.EUR,
		DeliveryFee:  decimal.RequireFromString(fee),
		Discount:     decimal.RequireFromString(discount),
	}
}

func burger() domain.MenuItem {
	return domain.MenuItem{
		ID:   "item-burger",
		Name: "Classic Cheeseburger",
		Price: domain.Money{
			Amount:   decimal.RequireFromString("25.99"),
			Currency: currency.EUR,
		},
	}
}

func jalapenos() domain.Customization {
	return domain.Customization{
		ID:   "cust-jalapenos",
		Name: "Jalapeños",
		Price: domain.Money{
			Amount:   decimal.RequireFromString("0.20"),
			Currency: currency.EUR,
		},
		Type: domain.CustomizationTopping,
	}
}
