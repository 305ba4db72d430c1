package commands

import (
	"errors"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand requests that an order move one stage forward on
// its board. The target stage is resolved by the state machine; when the
// order has no forward transition the request is a silent no-op.
//
// Example:
//
//	cmd, err := NewAdvanceOrderCommand(order.Delivery, orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // persistence failed; the board already rolled back and resynced
//	}
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	category order.Category
	orderID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance an order one stage.
// Validates the category and order identifier.
func NewAdvanceOrderCommand(category order.Category, orderID kernel.UUID) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCategory(category),
		cmd.setOrderID(orderID),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return cmd, nil
}

// Category returns the fulfillment category of the targeted board.
func (c AdvanceOrderCommand) Category() order.Category {
	return c.category
}

// OrderID returns the identifier of the order to advance.
func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Validate ensures the command was created through the constructor.
func (c *AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

func (c *AdvanceOrderCommand) setCategory(category order.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	c.category = category
	return nil
}

func (c *AdvanceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
