package commands

import (
	"errors"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/domain/model/stage"
	"orderboard/internal/pkg/errs"
	"orderboard/internal/pkg/guard"
)

var ErrMoveOrderCommandIsNotConstructed = errors.New(
	"MoveOrderCommand must be created via NewMoveOrderCommand constructor",
)

// MoveOrderCommand requests a drag-and-drop placement of an order into a
// destination stage at a destination index. Out-of-range indexes are
// clamped by the board rather than rejected here; negative values are
// invalid input.
type MoveOrderCommand struct { //nolint:recvcheck //using for validation
	category order.Category
	orderID  kernel.UUID
	toStage  stage.ID
	toIndex  int

	guard guard.ConstructorGuard
}

// NewMoveOrderCommand creates a command to place an order at a position
// within a stage column. Validates the category, order identifier,
// destination stage and index.
func NewMoveOrderCommand(
	category order.Category,
	orderID kernel.UUID,
	toStage stage.ID,
	toIndex int,
) (MoveOrderCommand, error) {
	cmd := MoveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCategory(category),
		cmd.setOrderID(orderID),
		cmd.setToStage(toStage),
		cmd.setToIndex(toIndex),
	); err != nil {
		return MoveOrderCommand{}, err
	}

	return cmd, nil
}

// Category returns the fulfillment category of the targeted board.
func (c MoveOrderCommand) Category() order.Category {
	return c.category
}

// OrderID returns the identifier of the order to move.
func (c MoveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ToStage returns the destination stage identifier.
func (c MoveOrderCommand) ToStage() stage.ID {
	return c.toStage
}

// ToIndex returns the requested position within the destination column.
func (c MoveOrderCommand) ToIndex() int {
	return c.toIndex
}

// Validate ensures the command was created through the constructor.
func (c *MoveOrderCommand) Validate() error {
	return c.guard.Validate(ErrMoveOrderCommandIsNotConstructed)
}

func (c *MoveOrderCommand) setCategory(category order.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	c.category = category
	return nil
}

func (c *MoveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *MoveOrderCommand) setToStage(toStage stage.ID) error {
	if toStage == "" {
		return errs.NewValueIsRequiredError("toStage")
	}
	c.toStage = toStage
	return nil
}

func (c *MoveOrderCommand) setToIndex(toIndex int) error {
	if toIndex < 0 {
		return errs.NewValueIsInvalidError("toIndex")
	}
	c.toIndex = toIndex
	return nil
}
