package payment

import (
	"context"
	"fmt"
	"sync"

	"github.com/nikolayk812/foodorder-demo/internal/port"
)

// AutoConfirmSheet implements port.PaymentSheet by reporting every presented
// session as completed. The interactive sheet lives in the mobile SDK on the
// device; this stand-in serves deployments where no device is in the loop
// (demos, smoke environments).
//
// One instance serves every checkout in the process, so sessions are counted
// rather than flagged: concurrent attempts for different payers may interleave
// their Init and Present calls, and each Present consumes exactly one
// outstanding Init.
type AutoConfirmSheet struct {
	mu      sync.Mutex
	pending int
}

func (s *AutoConfirmSheet) Init(_ context.Context, cfg port.SheetConfig) error {
	if cfg.ClientSecret == "" || cfg.EphemeralKey == "" || cfg.CustomerID == "" {
		return fmt.Errorf("sheet config is missing credentials")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending++

	return nil
}

func (s *AutoConfirmSheet) Present(_ context.Context) (port.SheetResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == 0 {
		return port.SheetResult{}, fmt.Errorf("sheet is not initialized")
	}
	// credentials are single-use, a retry needs a fresh Init
	s.pending--

	return port.SheetResult{Status: port.SheetCompleted}, nil
}

// SheetFuncs adapts plain functions to port.PaymentSheet.
type SheetFuncs struct {
	InitFunc    func(ctx context.Context, cfg port.SheetConfig) error
	PresentFunc func(ctx context.Context) (port.SheetResult, error)
}

func (s SheetFuncs) Init(ctx context.Context, cfg port.SheetConfig) error {
	return s.InitFunc(ctx, cfg)
}

func (s SheetFuncs) Present(ctx context.Context) (port.SheetResult, error) {
	return s.PresentFunc(ctx)
}
