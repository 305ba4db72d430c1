package commands

import (
	"errors"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/pkg/guard"
)

var ErrRetreatOrderCommandIsNotConstructed = errors.New(
	"RetreatOrderCommand must be created via NewRetreatOrderCommand constructor",
)

// RetreatOrderCommand requests that an order move one stage backward on
// its board. Orders already on the first stage have no backward
// transition and the request is a silent no-op.
type RetreatOrderCommand struct { //nolint:recvcheck //using for validation
	category order.Category
	orderID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRetreatOrderCommand creates a command to move an order one stage back.
// Validates the category and order identifier.
func NewRetreatOrderCommand(category order.Category, orderID kernel.UUID) (RetreatOrderCommand, error) {
	cmd := RetreatOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCategory(category),
		cmd.setOrderID(orderID),
	); err != nil {
		return RetreatOrderCommand{}, err
	}

	return cmd, nil
}

// Category returns the fulfillment category of the targeted board.
func (c RetreatOrderCommand) Category() order.Category {
	return c.category
}

// OrderID returns the identifier of the order to retreat.
func (c RetreatOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Validate ensures the command was created through the constructor.
func (c *RetreatOrderCommand) Validate() error {
	return c.guard.Validate(ErrRetreatOrderCommandIsNotConstructed)
}

func (c *RetreatOrderCommand) setCategory(category order.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	c.category = category
	return nil
}

func (c *RetreatOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
