package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/domain/model/stage"
	"orderboard/internal/core/ports"
	"orderboard/internal/pkg/errs"
)

var (
	// ErrBoardClosed is returned by write operations after Close.
	// Completions of in-flight commits arriving after Close are ignored.
	ErrBoardClosed = errors.New("board is closed")

	// ErrTransitionFailed wraps a persistence failure surfaced to the
	// caller after the local state has been rolled back and a
	// reconciliation refresh has been requested.
	ErrTransitionFailed = errors.New("transition could not be persisted")
)

// Column is one rendered board column: a stage plus the orders currently
// sitting in it, in collection order. Orders are deep copies; mutating
// them does not affect engine state.
type Column struct {
	Stage  stage.Stage
	Orders []*order.Order
}

// Board owns the in-memory order collection for one category and applies
// the optimistic-transition protocol against the persistence collaborators.
//
// All reads and synchronous mutations happen under one mutex, so the
// collection is never observed half-mutated. The only suspension points
// are the collaborator calls, which run outside the mutex: the optimistic
// mutation always completes before the persistence call is dispatched,
// and the completion re-enters the mutex to confirm or roll back.
//
// Per-order mutual exclusion is provided by TransitionLock: at most one
// transition per order is in flight, and a second request for the same
// order while one is pending is a silent no-op, not queued. Transitions
// on different orders proceed independently.
type Board struct {
	category  order.Category
	pipeline  stage.Pipeline
	filter    ports.OrderFilter
	committer ports.TransitionCommitter
	fetcher   ports.OrderFetcher
	lock      *TransitionLock
	logger    *slog.Logger

	mu     sync.Mutex
	orders []*order.Order
	closed bool
}

// NewBoard creates a Board for one fulfillment category.
//
// The committer persists stage transitions; the fetcher supplies the
// authoritative collection for the initial load and every reconciliation
// refresh. The board starts empty; call Refresh for the initial load.
func NewBoard(
	category order.Category,
	committer ports.TransitionCommitter,
	fetcher ports.OrderFetcher,
	logger *slog.Logger,
) (*Board, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}
	if committer == nil {
		return nil, errs.NewValueIsRequiredError("committer")
	}
	if fetcher == nil {
		return nil, errs.NewValueIsRequiredError("fetcher")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &Board{
		category:  category,
		pipeline:  category.Pipeline(),
		filter:    ports.OrderFilter{Category: category},
		committer: committer,
		fetcher:   fetcher,
		lock:      NewTransitionLock(),
		logger:    logger.With("component", "board", "category", category.String()),
	}, nil
}

// Category returns the fulfillment category this board displays.
func (b *Board) Category() order.Category {
	return b.category
}

// Pipeline returns the stage pipeline this board renders columns for.
func (b *Board) Pipeline() stage.Pipeline {
	return b.pipeline
}

// Lock exposes the transition lock for the stale-lock sweeper job.
func (b *Board) Lock() *TransitionLock {
	return b.lock
}

// Close tears the board down. Further writes fail with ErrBoardClosed and
// completions of still-in-flight persistence calls are ignored.
func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
}

// Snapshot returns deep copies of all visible (non-cancelled) orders in
// collection order. Columns are always derived from this flat collection
// by stage filtering, never stored separately.
func (b *Board) Snapshot() []*order.Order {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]*order.Order, 0, len(b.orders))
	for _, o := range b.orders {
		if o.IsCancelled() {
			continue
		}
		out = append(out, o.Clone())
	}
	return out
}

// Columns partitions the visible collection into per-stage columns in
// pipeline order. Orders are deep copies.
func (b *Board) Columns() []Column {
	snapshot := b.Snapshot()

	columns := make([]Column, 0, len(b.pipeline.Columns()))
	for _, s := range b.pipeline.Columns() {
		col := Column{Stage: s, Orders: []*order.Order{}}
		for _, o := range snapshot {
			if o.CurrentStage() == s.ID() {
				col.Orders = append(col.Orders, o)
			}
		}
		columns = append(columns, col)
	}
	return columns
}

// Find returns a deep copy of the order with the given id, or an
// ObjectNotFound error.
func (b *Board) Find(orderID kernel.UUID) (*order.Order, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if o := b.findLocked(orderID); o != nil {
		return o.Clone(), nil
	}
	return nil, errs.NewObjectNotFoundError("orderId", orderID.String())
}

// Refresh replaces the collection wholesale with the authoritative list
// from the fetcher. Used for the initial load, after every failed commit,
// and by the reconciliation feed on push events. The refresh is silent: it
// carries no loading state and never disturbs in-flight transitions on
// other orders beyond replacing their optimistic view with server truth.
func (b *Board) Refresh(ctx context.Context) error {
	fetched, err := b.fetcher.FetchOrders(ctx, b.filter)
	if err != nil {
		return fmt.Errorf("refresh orders: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrBoardClosed
	}
	b.orders = fetched
	return nil
}

// Advance moves the order one stage forward.
//
// The target stage is resolved by the state machine; when no forward
// transition exists the call is a silent no-op. See commitTransition for
// the optimistic protocol.
func (b *Board) Advance(ctx context.Context, orderID kernel.UUID) error {
	return b.step(ctx, orderID, func(o *order.Order) (stage.Stage, bool) {
		return o.NextStage()
	})
}

// Retreat moves the order one stage back, letting staff correct a
// misclick. Symmetric to Advance.
func (b *Board) Retreat(ctx context.Context, orderID kernel.UUID) error {
	return b.step(ctx, orderID, func(o *order.Order) (stage.Stage, bool) {
		return o.PreviousStage()
	})
}

// Move applies a drag-and-drop reorder: the order lands in the destination
// column at the given index (clamped to the column bounds).
//
// A move that changes the order's stage runs the full optimistic-commit
// protocol. A move within the order's current column only changes local
// ordering and involves no persistence call. Moving a cancelled order is
// a no-op: the terminal stage can be neither source nor destination.
func (b *Board) Move(ctx context.Context, orderID kernel.UUID, toStage stage.ID, toIndex int) error {
	if !b.pipeline.Contains(toStage) || b.pipeline.IsTerminal(toStage) {
		return errs.NewValueIsInvalidErrorWithCause(
			"destination stage",
			fmt.Errorf("%q is not a column of the %s pipeline", toStage, b.category),
		)
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrBoardClosed
	}

	o := b.findLocked(orderID)
	if o == nil {
		b.mu.Unlock()
		return errs.NewObjectNotFoundError("orderId", orderID.String())
	}

	if o.IsCancelled() {
		// Cancelled orders are frozen; dragging one is a no-op, the same
		// as an order with no legal transition.
		b.mu.Unlock()
		return nil
	}

	move := ReorderMove{OrderID: orderID, DestinationStage: toStage, DestinationIndex: toIndex}

	if o.CurrentStage() == toStage {
		// Same-column reorder: purely local, nothing to persist.
		b.orders = ProjectReorder(b.orders, b.pipeline, move)
		b.mu.Unlock()
		return nil
	}

	if err := o.FormOwnerID().Validate(); err != nil {
		b.mu.Unlock()
		return errs.NewValueIsRequiredErrorWithCause("form owner id", err)
	}

	if !b.lock.TryAcquire(orderID) {
		b.mu.Unlock()
		return nil
	}

	previousStage := o.CurrentStage()
	formOwnerID := o.FormOwnerID()
	b.orders = ProjectReorder(b.orders, b.pipeline, move)
	b.mu.Unlock()

	return b.commitTransition(ctx, orderID, formOwnerID, previousStage, toStage)
}

// step implements the shared advance/retreat write path.
func (b *Board) step(
	ctx context.Context,
	orderID kernel.UUID,
	resolve func(*order.Order) (stage.Stage, bool),
) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrBoardClosed
	}

	o := b.findLocked(orderID)
	if o == nil {
		b.mu.Unlock()
		return errs.NewObjectNotFoundError("orderId", orderID.String())
	}

	target, ok := resolve(o)
	if !ok || target.ID() == o.CurrentStage() {
		// No legal transition: expected outcome, not an error.
		b.mu.Unlock()
		return nil
	}

	if err := o.FormOwnerID().Validate(); err != nil {
		// Identification failure: abort before any mutation or lock.
		b.mu.Unlock()
		return errs.NewValueIsRequiredErrorWithCause("form owner id", err)
	}

	if !b.lock.TryAcquire(orderID) {
		// A transition for this order is already in flight.
		b.mu.Unlock()
		return nil
	}

	previousStage := o.CurrentStage()
	formOwnerID := o.FormOwnerID()

	// Optimistic apply: the moved order joins the end of the target
	// column through the same projector the drag path uses.
	b.orders = ProjectReorder(b.orders, b.pipeline, ReorderMove{
		OrderID:          orderID,
		DestinationStage: target.ID(),
		DestinationIndex: len(b.orders),
	})
	b.mu.Unlock()

	return b.commitTransition(ctx, orderID, formOwnerID, previousStage, target.ID())
}

// commitTransition dispatches the persistence call for an already-applied
// optimistic mutation and resolves the two-path outcome: confirm on
// success, revert-and-resync on failure. The transition lock is always
// released exactly once.
func (b *Board) commitTransition(
	ctx context.Context,
	orderID kernel.UUID,
	formOwnerID kernel.UUID,
	previousStage stage.ID,
	targetStage stage.ID,
) error {
	err := b.committer.CommitTransition(ctx, formOwnerID, orderID, targetStage)

	b.mu.Lock()
	if b.closed {
		// The board was torn down while the call was in flight; drop the
		// completion on the floor.
		b.mu.Unlock()
		b.lock.Release(orderID)
		return ErrBoardClosed
	}

	if err == nil {
		// The optimistic state already reflects the outcome.
		b.mu.Unlock()
		b.lock.Release(orderID)
		return nil
	}

	// Revert the specific order's stage to its pre-transition value. The
	// rollback never happens in isolation: a reconciliation refresh
	// follows, because other orders may have changed while this one was
	// in flight.
	if o := b.findLocked(orderID); o != nil {
		if revertErr := o.ChangeStage(previousStage); revertErr != nil {
			b.logger.ErrorContext(ctx, "rollback failed", "orderId", orderID.String(), "error", revertErr)
		}
	}
	b.mu.Unlock()
	b.lock.Release(orderID)

	b.logger.WarnContext(ctx, "transition rejected, rolled back",
		"orderId", orderID.String(),
		"from", string(previousStage),
		"to", string(targetStage),
		"error", err,
	)

	if refreshErr := b.Refresh(ctx); refreshErr != nil && !errors.Is(refreshErr, ErrBoardClosed) {
		b.logger.ErrorContext(ctx, "reconciliation refresh failed", "error", refreshErr)
	}

	return fmt.Errorf("%w: %w", ErrTransitionFailed, err)
}

// findLocked locates an order by id. Callers must hold b.mu.
func (b *Board) findLocked(orderID kernel.UUID) *order.Order {
	for _, o := range b.orders {
		if o.ID().IsEqual(orderID) {
			return o
		}
	}
	return nil
}
