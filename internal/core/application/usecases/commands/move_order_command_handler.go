package commands

import (
	"context"
)

// MoveOrderCommandHandler executes drag-and-drop placements through the
// board engine. Moves within the same stage reorder locally without a
// persistence call; cross-stage moves commit the stage change and roll
// back on failure.
type MoveOrderCommandHandler struct {
	boards BoardProvider
}

// NewMoveOrderCommandHandler creates a handler for move operations.
func NewMoveOrderCommandHandler(boards BoardProvider) MoveOrderCommandHandler {
	return MoveOrderCommandHandler{boards: boards}
}

// Handle processes the move command. Resolves the board for the
// command's category and delegates to the engine's reorder path.
func (h MoveOrderCommandHandler) Handle(ctx context.Context, command MoveOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	b, err := h.boards.BoardFor(command.Category())
	if err != nil {
		return err
	}

	return b.Move(ctx, command.OrderID(), command.ToStage(), command.ToIndex())
}
