// Package commands contains business operations that modify board state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: constructor
// validation, board resolution, and delegation to the board engine.
package commands

import (
	"orderboard/internal/core/application/board"
	"orderboard/internal/core/domain/model/order"
)

// BoardProvider resolves the board instance for a fulfillment category.
// Command handlers depend on this abstraction so that composition can
// run one board per category (and per tenant) without the handlers
// knowing how boards are wired.
type BoardProvider interface {
	// BoardFor returns the board displaying the given category.
	// Returns an error for invalid or unserved categories.
	BoardFor(category order.Category) (*board.Board, error)
}
