// Package board implements the order-lifecycle synchronization engine
// behind the staff-facing Kanban board.
//
// The engine reconciles three concurrent sources of truth for the same
// order collection: user-initiated stage transitions, server-confirmed
// results of those transitions, and out-of-band push notifications from
// other actors. Its write path is optimistic: the in-memory collection is
// mutated before the persistence collaborator confirms, and a failed
// commit reverts the order's stage and forces a full reconciliation
// refresh so the client can never stay diverged from the server.
//
// The package provides:
//   - Board: the owner of the in-memory order collection, exposing the
//     advance/retreat/move write path and read-only snapshots
//   - TransitionLock: per-order mutual exclusion for in-flight transitions
//   - ProjectReorder: the drag-and-drop reordering projector
//   - ReconciliationFeed: the push-event consumer triggering silent
//     full-refresh reconciliation
//
// The collection is the sole shared mutable resource; it is owned
// exclusively by the Board and exposed to the presentation layer only as
// deep-copied snapshots.
package board
