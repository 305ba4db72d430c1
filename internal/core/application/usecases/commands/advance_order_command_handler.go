package commands

import (
	"context"
)

// AdvanceOrderCommandHandler executes forward stage transitions through
// the board engine. The engine applies the optimistic mutation before the
// persistence call resolves and rolls back on failure, so a returned error
// means the board already reflects the authoritative state again.
type AdvanceOrderCommandHandler struct {
	boards BoardProvider
}

// NewAdvanceOrderCommandHandler creates a handler for advance operations.
func NewAdvanceOrderCommandHandler(boards BoardProvider) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{boards: boards}
}

// Handle processes the advance command. Resolves the board for the
// command's category and delegates to the engine's write path.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, command AdvanceOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	b, err := h.boards.BoardFor(command.Category())
	if err != nil {
		return err
	}

	return b.Advance(ctx, command.OrderID())
}
