package service

import (
	"context"
)

// EntitlementEvent is published when a user's entitlement state changes, so
// currently displayed gated screens can react without polling.
type EntitlementEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	UserID    string `json:"user_id"`
	Verdict   string `json:"verdict"`    // Terminal verdict after resolution.
	ProductID string `json:"product_id"` // Subscription product that triggered the change.
	Source    string `json:"source"`     // "receipt" or "reconciliation".
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishEntitlementEvent publishes an entitlement state change for async consumers.
	PublishEntitlementEvent(ctx context.Context, event *EntitlementEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
