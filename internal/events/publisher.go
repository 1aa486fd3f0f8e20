package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/nikolayk812/foodorder-demo/internal/checkout"
)

const (
	Exchange = "foodorder.events"

	OrderPlacedKey = "order.placed.v1"
)

type OrderPlaced struct {
	EventType   string    `json:"eventType"`
	OrderID     string    `json:"orderId"`
	UserID      string    `json:"userId"`
	AmountMinor int64     `json:"amountMinor"`
	Currency    string    `json:"currency"`
	Timestamp   time.Time `json:"timestamp"`
}

func BuildOrderPlaced(order checkout.Order) OrderPlaced {
	return OrderPlaced{
		EventType:   "OrderPlaced",
		OrderID:     order.ID,
		UserID:      order.UserID,
		AmountMinor: order.Amount,
		Currency:    order.Currency,
		Timestamp:   order.PlacedAt.UTC(),
	}
}

type Publisher struct {
	ch *amqp.Channel
}

func NewPublisher(conn *amqp.Connection) (*Publisher, error) {
	if conn == nil {
		return nil, fmt.Errorf("conn is nil")
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("conn.Channel: %w", err)
	}

	// Declare the exchange so publish never fails due to missing infra
	if err := ch.ExchangeDeclare(Exchange, "topic", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("ch.ExchangeDeclare[%s]: %w", Exchange, err)
	}

	return &Publisher{ch: ch}, nil
}

func (p *Publisher) Close() error {
	return p.ch.Close()
}

func (p *Publisher) PublishOrderPlaced(ctx context.Context, order checkout.Order) error {
	body, err := json.Marshal(BuildOrderPlaced(order))
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	return p.publishJSON(ctx, OrderPlacedKey, body)
}

func (p *Publisher) publishJSON(ctx context.Context, routingKey string, body []byte) error {
	pubCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	err := p.ch.PublishWithContext(
		pubCtx,
		Exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("ch.PublishWithContext[%s]: %w", routingKey, err)
	}

	return nil
}
