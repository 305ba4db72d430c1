package board

import (
	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/domain/model/stage"
)

// ReorderMove describes a drag-and-drop move on the board: which order
// moves, which column it lands in, and at which position within that
// column. The source column is not part of the description; the moved
// order is located by identifier so the projection stays correct even if
// intervening state changed since the drag started.
type ReorderMove struct {
	OrderID          kernel.UUID
	DestinationStage stage.ID
	DestinationIndex int
}

// ProjectReorder recomputes the full ordered collection after a move,
// preserving per-column relative order.
//
// The algorithm:
//  1. Partition the non-cancelled collection into per-stage ordered lists,
//     preserving existing relative order within each stage.
//  2. Remove the moved order from its current list, matching by id.
//  3. Insert it into the destination list at min(index, len), clamped so
//     an out-of-range index never fails.
//  4. Set the moved order's stage to the destination stage.
//  5. Flatten the per-stage lists back into one collection in
//     pipeline-stage order, then append cancelled orders unchanged.
//
// The input slice is not mutated; the moved order's stage is changed in
// place (the collection owns its orders). Returns the input unchanged when
// the order id is unknown or the destination stage is not a pipeline
// column.
func ProjectReorder(orders []*order.Order, pipeline stage.Pipeline, move ReorderMove) []*order.Order {
	if !pipeline.Contains(move.DestinationStage) || pipeline.IsTerminal(move.DestinationStage) {
		return orders
	}

	var moved *order.Order
	byStage := make(map[stage.ID][]*order.Order)
	var cancelled []*order.Order

	for _, o := range orders {
		if o.IsCancelled() {
			cancelled = append(cancelled, o)
			continue
		}
		if o.ID().IsEqual(move.OrderID) {
			moved = o
			continue
		}
		current := o.CurrentStage()
		byStage[current] = append(byStage[current], o)
	}

	if moved == nil {
		return orders
	}

	target := byStage[move.DestinationStage]
	idx := move.DestinationIndex
	if idx < 0 {
		idx = 0
	}
	if idx > len(target) {
		idx = len(target)
	}

	target = append(target, nil)
	copy(target[idx+1:], target[idx:])
	target[idx] = moved
	byStage[move.DestinationStage] = target

	// Stage membership and list position change as one operation.
	_ = moved.ChangeStage(move.DestinationStage)

	flattened := make([]*order.Order, 0, len(orders))
	for _, col := range pipeline.Columns() {
		flattened = append(flattened, byStage[col.ID()]...)
	}
	flattened = append(flattened, cancelled...)
	return flattened
}
