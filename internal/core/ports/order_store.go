// Package ports defines the collaborator contracts the board engine
// consumes. The engine never implements these itself; adapters under
// internal/adapters provide the concrete transports.
package ports

import (
	"context"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/domain/model/stage"
)

// OrderFilter narrows FetchOrders to the subset a board displays.
// Zero-valued fields are ignored.
type OrderFilter struct {
	// Category restricts results to one fulfillment category.
	Category order.Category

	// FormOwnerID restricts results to orders governed by one order-form
	// configuration.
	FormOwnerID *kernel.UUID
}

// OrderFetcher retrieves the authoritative order collection.
// Used for the initial board load and for every reconciliation refresh.
type OrderFetcher interface {
	// FetchOrders returns all orders matching the filter, cancelled
	// orders included, in a stable server-defined order.
	FetchOrders(ctx context.Context, filter OrderFilter) ([]*order.Order, error)
}

// TransitionCommitter persists a stage transition with the collaborator
// that owns the order's data.
type TransitionCommitter interface {
	// CommitTransition records that the order moved to the target stage.
	// The formOwnerID routes the call to the service endpoint governing
	// the order. Idempotent from the caller's perspective; a returned
	// error carries a reason suitable for user display.
	CommitTransition(ctx context.Context, formOwnerID, orderID kernel.UUID, targetStageID stage.ID) error
}
