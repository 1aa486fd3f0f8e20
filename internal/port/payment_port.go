package port

import "context"

// IntentRequest is the payload sent to the remote credential endpoint.
type IntentRequest struct {
	Amount   int64  // minor currency units
	Currency string // lowercase ISO code, e.g. "eur"
	UserID   string
	Email    string
}

// IntentCredentials is the triple issued by the credential endpoint for a
// single payment attempt. Credentials are never reused across attempts.
type IntentCredentials struct {
	ClientSecret string
	EphemeralKey string
	CustomerID   string
}

type PaymentIntents interface {
	CreateIntent(ctx context.Context, req IntentRequest) (IntentCredentials, error)
}

type SheetConfig struct {
	MerchantName string
	CustomerID   string
	EphemeralKey string
	ClientSecret string
	BillingName  string
	BillingEmail string
}

type SheetStatus string

const (
	SheetCompleted SheetStatus = "COMPLETED"
	SheetCancelled SheetStatus = "CANCELLED"
	SheetFailed    SheetStatus = "FAILED"
)

// SheetResult is the terminal outcome of presenting the payment sheet.
// Reason is set only for SheetFailed.
type SheetResult struct {
	Status SheetStatus
	Reason string
}

// PaymentSheet is the opaque payment UI capability: initialize a session with
// issued credentials, then present it and wait for the user. Present blocks
// until the user completes, cancels, or the payment is declined.
type PaymentSheet interface {
	Init(ctx context.Context, cfg SheetConfig) error
	Present(ctx context.Context) (SheetResult, error)
}
