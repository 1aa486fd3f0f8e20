package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/nikolayk812/foodorder-demo/internal/port"
	"github.com/sony/gobreaker/v2"
)

// Client implements port.PaymentIntents against the remote credential
// endpoint: one POST per checkout attempt, returning the credential triple for
// the payment sheet. Calls go through a circuit breaker so a flapping endpoint
// fails fast instead of hanging every checkout.
type Client struct {
	endpoint string
	http     *http.Client
	breaker  *gobreaker.CircuitBreaker[port.IntentCredentials]
}

func NewClient(endpoint string, httpClient *http.Client) (*Client, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("endpoint is empty")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	breaker := gobreaker.NewCircuitBreaker[port.IntentCredentials](gobreaker.Settings{
		Name: "payment-intents",
	})

	return &Client{
		endpoint: endpoint,
		http:     httpClient,
		breaker:  breaker,
	}, nil
}

type intentRequestBody struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	UserID   string `json:"userId"`
	Email    string `json:"email"`
}

// intentResponseBody is an untrusted external payload: every field is checked
// before use.
type intentResponseBody struct {
	Success       bool   `json:"success"`
	Error         string `json:"error"`
	PaymentIntent string `json:"paymentIntent"`
	EphemeralKey  string `json:"ephemeralKey"`
	Customer      string `json:"customer"`
}

func (c *Client) CreateIntent(ctx context.Context, req port.IntentRequest) (port.IntentCredentials, error) {
	return c.breaker.Execute(func() (port.IntentCredentials, error) {
		return c.createIntent(ctx, req)
	})
}

func (c *Client) createIntent(ctx context.Context, req port.IntentRequest) (port.IntentCredentials, error) {
	var zero port.IntentCredentials

	body, err := json.Marshal(intentRequestBody{
		Amount:   req.Amount,
		Currency: req.Currency,
		UserID:   req.UserID,
		Email:    req.Email,
	})
	if err != nil {
		return zero, fmt.Errorf("json.Marshal: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return zero, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return zero, fmt.Errorf("http.Do: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return zero, fmt.Errorf("io.ReadAll: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var decoded intentResponseBody
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return zero, fmt.Errorf("json.Unmarshal: %w", err)
	}

	if decoded.Error != "" {
		return zero, fmt.Errorf("endpoint error: %s", decoded.Error)
	}
	if !decoded.Success {
		return zero, fmt.Errorf("endpoint did not report success")
	}
	if decoded.PaymentIntent == "" || decoded.EphemeralKey == "" || decoded.Customer == "" {
		return zero, fmt.Errorf("response is missing credential fields")
	}

	return port.IntentCredentials{
		ClientSecret: decoded.PaymentIntent,
		EphemeralKey: decoded.EphemeralKey,
		CustomerID:   decoded.Customer,
	}, nil
}
