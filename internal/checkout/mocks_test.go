package checkout_test

import (
	"context"
	"sync"

	"github.com/nikolayk812/foodorder-demo/internal/checkout"
	"github.com/nikolayk812/foodorder-demo/internal/port"
)

// mockIntents implements port.PaymentIntents for testing.
type mockIntents struct {
	mu    sync.Mutex
	calls int
	last  port.IntentRequest

	creds port.IntentCredentials
	err   error
}

func (m *mockIntents) CreateIntent(_ context.Context, req port.IntentRequest) (port.IntentCredentials, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	m.last = req
	return m.creds, m.err
}

func (m *mockIntents) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *mockIntents) lastRequest() port.IntentRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// mockSheet implements port.PaymentSheet for testing. onPresent runs before
// Present returns, to model the cart changing while the sheet is on screen.
type mockSheet struct {
	mu       sync.Mutex
	inits    int
	presents int
	lastCfg  port.SheetConfig

	initErr    error
	result     port.SheetResult
	presentErr error
	onPresent  func()
}

func (m *mockSheet) Init(_ context.Context, cfg port.SheetConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.inits++
	m.lastCfg = cfg
	return m.initErr
}

func (m *mockSheet) Present(_ context.Context) (port.SheetResult, error) {
	m.mu.Lock()
	hook := m.onPresent
	m.presents++
	m.mu.Unlock()

	if hook != nil {
		hook()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.result, m.presentErr
}

func (m *mockSheet) initCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inits
}

func (m *mockSheet) presentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.presents
}

func (m *mockSheet) config() port.SheetConfig {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastCfg
}

// mockPublisher implements checkout.OrderPublisher for testing.
type mockPublisher struct {
	mu     sync.Mutex
	orders []checkout.Order
	err    error
}

func (m *mockPublisher) PublishOrderPlaced(_ context.Context, order checkout.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.orders = append(m.orders, order)
	return m.err
}

func (m *mockPublisher) published() []checkout.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]checkout.Order(nil), m.orders...)
}
