package order

import (
	"fmt"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/pkg/errs"
)

// maxLineItemQuantity bounds a single line item. Larger orders arrive as
// multiple items; the bound guards against corrupt wire payloads.
const maxLineItemQuantity = 999

// LineItem is a value object describing one product line of an order:
// the product name, the quantity ordered, and the unit price.
//
// Line items are set when the order is created and never mutated by the
// board engine; they are carried through for display and totals only.
type LineItem struct {
	name      string
	quantity  int
	unitPrice kernel.Money
}

// NewLineItem creates a validated LineItem.
//
// The name must be non-empty and the quantity must lie within
// [1, maxLineItemQuantity]. The unit price may be zero (free items).
func NewLineItem(name string, quantity int, unitPrice kernel.Money) (LineItem, error) {
	if name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("line item name")
	}
	if quantity < 1 || quantity > maxLineItemQuantity {
		return LineItem{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxLineItemQuantity)
	}
	return LineItem{name: name, quantity: quantity, unitPrice: unitPrice}, nil
}

// Name returns the product name.
func (li LineItem) Name() string {
	return li.name
}

// Quantity returns the number of units ordered.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the price of a single unit.
func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// Subtotal returns quantity times unit price.
func (li LineItem) Subtotal() kernel.Money {
	return li.unitPrice.Multiply(li.quantity)
}

// String returns a compact human-readable representation for logs.
func (li LineItem) String() string {
	return fmt.Sprintf("%dx %s @ %s", li.quantity, li.name, li.unitPrice)
}
