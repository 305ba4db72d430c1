package order

import (
	"errors"
	"fmt"
	"time"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/stage"
	"orderboard/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a customer order moving across the fulfillment board.
// It is the aggregate root for the order lifecycle: the stage field is the
// only mutable attribute, and it changes only through ChangeStage.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a valid form owner identifier (the configuration that
//     routes persistence calls for this order)
//   - Category is immutable and selects the applicable pipeline
//   - Stage, when set, belongs to the order's pipeline
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// formOwnerID identifies the owning order-form configuration
	formOwnerID kernel.UUID

	// category selects which stage pipeline applies (immutable)
	category Category

	// stageID is the current lifecycle stage; empty means the pipeline's
	// first stage
	stageID stage.ID

	// items is the ordered sequence of product lines (immutable)
	items []LineItem

	// total is the order's monetary total
	total kernel.Money

	// submittedAt is the creation timestamp (immutable)
	submittedAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order with validation. Freshly created orders sit
// in the first stage of their category's pipeline and their total is
// derived from the line items.
//
// Parameters:
//   - id: unique identifier for the order
//   - formOwnerID: identifier of the owning order-form configuration
//   - category: DineIn or Delivery
//   - items: at least one validated line item
//   - submittedAt: creation timestamp
//
// Returns the created order, or a validation error if any parameter is
// invalid.
func NewOrder(
	id kernel.UUID,
	formOwnerID kernel.UUID,
	category Category,
	items []LineItem,
	submittedAt time.Time,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setFormOwnerID(formOwnerID),
		o.setCategory(category),
		o.setItems(items),
		o.setSubmittedAt(submittedAt),
	); err != nil {
		return nil, err
	}

	o.stageID = o.category.Pipeline().First().ID()

	total := kernel.Money{}
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	o.total = total

	return o, nil
}

// RestoreOrder rehydrates an Order from persistence or from a push-event
// payload. Unlike NewOrder it accepts the stored stage and server-provided
// total verbatim, validating that the stage belongs to the category's
// pipeline.
func RestoreOrder(
	id kernel.UUID,
	formOwnerID kernel.UUID,
	category Category,
	stageID stage.ID,
	items []LineItem,
	total kernel.Money,
	submittedAt time.Time,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setFormOwnerID(formOwnerID),
		o.setCategory(category),
		o.setItems(items),
		o.setSubmittedAt(submittedAt),
	); err != nil {
		return nil, err
	}

	if stageID != "" && !o.category.Pipeline().Contains(stageID) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			fmt.Errorf("%q is not a stage of the %s pipeline", stageID, o.category),
		)
	}

	o.stageID = stageID
	o.total = total
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// FormOwnerID returns the identifier of the owning order-form configuration.
func (o *Order) FormOwnerID() kernel.UUID {
	return o.formOwnerID
}

// Category returns the order's fulfillment category.
func (o *Order) Category() Category {
	return o.category
}

// Pipeline returns the stage pipeline applicable to this order.
func (o *Order) Pipeline() stage.Pipeline {
	return o.category.Pipeline()
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the order's monetary total.
func (o *Order) Total() kernel.Money {
	return o.total
}

// SubmittedAt returns the creation timestamp.
func (o *Order) SubmittedAt() time.Time {
	return o.submittedAt
}

// CurrentStage returns the order's current stage id, defaulting to the
// first stage of its pipeline when no stage has been recorded yet.
func (o *Order) CurrentStage() stage.ID {
	if o.stageID == "" {
		return o.category.Pipeline().First().ID()
	}
	return o.stageID
}

// NextStage returns the stage immediately following the order's current
// one, or false when no forward transition is available. Pure query; an
// absent successor is a normal outcome, not an error.
func (o *Order) NextStage() (stage.Stage, bool) {
	return o.Pipeline().Next(o.CurrentStage())
}

// PreviousStage returns the stage immediately preceding the order's
// current one, or false when no backward transition is available.
func (o *Order) PreviousStage() (stage.Stage, bool) {
	return o.Pipeline().Previous(o.CurrentStage())
}

// IsCancelled reports whether the order sits in its pipeline's terminal
// stage. Cancelled orders are excluded from the visible board.
func (o *Order) IsCancelled() bool {
	return o.Pipeline().IsTerminal(o.CurrentStage())
}

// ChangeStage moves the order to the given stage.
//
// This is the only stage mutator. The target must be a stage of the
// order's pipeline; adjacency is enforced by the callers that resolve the
// target through NextStage/PreviousStage, not here, because reconciliation
// may legitimately place an order several stages away.
func (o *Order) ChangeStage(id stage.ID) error {
	if id == "" {
		return errs.NewValueIsRequiredError("stage id")
	}
	if !o.Pipeline().Contains(id) {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			fmt.Errorf("%q is not a stage of the %s pipeline", id, o.category),
		)
	}
	o.stageID = id
	return nil
}

// Clone returns a deep copy of the order. The board hands clones to the
// presentation layer so that no external code can mutate engine-owned
// state.
func (o *Order) Clone() *Order {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)

	return &Order{
		id:            o.id,
		formOwnerID:   o.formOwnerID,
		category:      o.category,
		stageID:       o.stageID,
		items:         items,
		total:         o.total,
		submittedAt:   o.submittedAt,
		isConstructed: o.isConstructed,
	}
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setFormOwnerID validates and sets the owning form configuration id.
// This is a private method used only during construction.
func (o *Order) setFormOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("form owner id", err)
	}
	o.formOwnerID = id
	return nil
}

// setCategory validates and sets the order's category.
// This is a private method used only during construction.
func (o *Order) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	o.category = category
	return nil
}

// setItems validates and sets the order's line items.
// At least one item is required; the slice is copied.
// This is a private method used only during construction.
func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	copied := make([]LineItem, len(items))
	copy(copied, items)
	o.items = copied
	return nil
}

// setSubmittedAt validates and sets the creation timestamp.
// This is a private method used only during construction.
func (o *Order) setSubmittedAt(submittedAt time.Time) error {
	if submittedAt.IsZero() {
		return errs.NewValueIsRequiredError("submittedAt")
	}
	o.submittedAt = submittedAt
	return nil
}
