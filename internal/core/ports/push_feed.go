package ports

import (
	"context"
	"fmt"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/pkg/errs"
)

// EventAction classifies a push-delivered order change.
type EventAction int

const (
	// ActionUnknown represents an unrecognized action. Events carrying it
	// never pass validation.
	ActionUnknown EventAction = iota

	// ActionCreated signals that an order was created elsewhere.
	ActionCreated

	// ActionUpdated signals that an order was changed elsewhere.
	ActionUpdated

	// ActionDeleted signals that an order was removed elsewhere.
	ActionDeleted
)

// String returns the wire name of the action.
func (a EventAction) String() string {
	switch a {
	case ActionCreated:
		return "create"
	case ActionUpdated:
		return "update"
	case ActionDeleted:
		return "delete"
	default:
		return "unknown"
	}
}

// OrderEvent is the tagged variant delivered by the push feed:
// Created(order) | Updated(order) | Deleted(orderID).
//
// Adapters validate raw payloads exactly once at the boundary via
// NewOrderEvent, so the engine's internals never branch on untyped data.
// For Created and Updated the full order is present; for Deleted only the
// identifier is.
type OrderEvent struct {
	Action  EventAction
	Order   *order.Order
	OrderID kernel.UUID
}

// NewOrderEvent builds a validated OrderEvent.
//
// Created/Updated require a constructed order; Deleted requires a valid
// order id and carries no order. Any other combination is rejected.
func NewOrderEvent(action EventAction, o *order.Order, orderID kernel.UUID) (OrderEvent, error) {
	switch action {
	case ActionCreated, ActionUpdated:
		if err := o.Validate(); err != nil {
			return OrderEvent{}, errs.NewValueIsRequiredErrorWithCause("event order", err)
		}
		return OrderEvent{Action: action, Order: o, OrderID: o.ID()}, nil
	case ActionDeleted:
		if err := orderID.Validate(); err != nil {
			return OrderEvent{}, errs.NewValueIsRequiredErrorWithCause("event order id", err)
		}
		return OrderEvent{Action: action, OrderID: orderID}, nil
	default:
		return OrderEvent{}, errs.NewValueIsInvalidErrorWithCause(
			"event action",
			fmt.Errorf("%d is not a valid action", action),
		)
	}
}

// Category returns the fulfillment category the event pertains to, and
// false when the event does not carry one (deletions).
func (e OrderEvent) Category() (order.Category, bool) {
	if e.Order == nil {
		return order.Unknown, false
	}
	return e.Order.Category(), true
}

// PushFeed delivers out-of-band order change events scoped to the current
// tenant. Implementations validate payloads at the boundary and drop
// malformed ones; the returned channel only ever carries valid events.
type PushFeed interface {
	// Subscribe starts delivery of events. The channel is closed when the
	// context is cancelled or the feed is closed.
	Subscribe(ctx context.Context) (<-chan OrderEvent, error)

	// Close tears down the subscription and releases transport resources.
	Close() error
}
