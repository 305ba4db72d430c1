package commands

import (
	"context"
)

// RetreatOrderCommandHandler executes backward stage transitions through
// the board engine.
type RetreatOrderCommandHandler struct {
	boards BoardProvider
}

// NewRetreatOrderCommandHandler creates a handler for retreat operations.
func NewRetreatOrderCommandHandler(boards BoardProvider) RetreatOrderCommandHandler {
	return RetreatOrderCommandHandler{boards: boards}
}

// Handle processes the retreat command. Resolves the board for the
// command's category and delegates to the engine's write path.
func (h RetreatOrderCommandHandler) Handle(ctx context.Context, command RetreatOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	b, err := h.boards.BoardFor(command.Category())
	if err != nil {
		return err
	}

	return b.Retreat(ctx, command.OrderID())
}
