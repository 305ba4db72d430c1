// Package queries contains read-only operations for board and pipeline
// state. Implements the Query side of the CQRS architecture: queries
// read the in-memory board engine, never the persistence layer, so a
// render is always a snapshot of what the engine currently shows.
package queries

import (
	"orderboard/internal/core/application/board"
	"orderboard/internal/core/domain/model/order"
)

// BoardProvider resolves the board instance for a fulfillment category.
// Declared here so the query handlers state their own dependency.
type BoardProvider interface {
	// BoardFor returns the board displaying the given category.
	// Returns an error for invalid or unserved categories.
	BoardFor(category order.Category) (*board.Board, error)
}
