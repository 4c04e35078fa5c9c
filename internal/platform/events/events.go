// Package events publishes back-office lifecycle events for downstream consumers
// such as accounting sync and notifications.
package events

import (
	"context"
	"time"
)

// Event types.
const (
	SaleCreated    = "sale.created"
	SaleRefunded   = "sale.refunded"
	SaleDeleted    = "sale.deleted"
	PaymentCreated = "payment.created"
)

// Event is one lifecycle notification. Key orders events of the same record.
type Event struct {
	Type       string    `json:"type"`
	Key        string    `json:"key"`
	OfficeID   string    `json:"officeId"`
	Actor      string    `json:"actor"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

// Publisher delivers events.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }

func (NoopPublisher) Close() error { return nil }
