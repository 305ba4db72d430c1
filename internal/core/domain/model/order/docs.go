// Package order provides domain entities and business logic for orders
// shown on the fulfillment board. It implements the Order aggregate root
// with stage lifecycle management.
//
// The package includes:
//   - Order: The aggregate root carrying identity, line items, and the current stage
//   - Category: An enum selecting which stage pipeline applies to an order
//   - LineItem: A value object for one product line (name, quantity, unit price)
//
// Key business rules:
//   - Orders must have a valid unique identifier and form owner identifier
//   - The category is immutable and resolves the fulfillment pipeline
//   - The stage is the only mutable attribute and changes only through ChangeStage
//   - Stage transitions on the board are strictly single-step in either direction
//   - Orders in the terminal (cancelled) stage are excluded from the visible board
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
