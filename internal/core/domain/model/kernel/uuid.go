package kernel

import (
	"fmt"

	"orderboard/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not properly initialized through one of the constructor functions.
// This error is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is a value object that represents a universally unique identifier.
// It wraps the github.com/google/uuid implementation to provide domain-specific behavior
// and ensure immutability. Every identity in the board domain rides on it:
// order ids, form owner ids, transition lock keys.
//
// The zero value of UUID is invalid and must be constructed using one of the provided
// factory functions: NewUUID, UUIDFromString, or UUIDFromBytes.
//
// UUID is immutable and thread-safe, making it suitable for concurrent use.
//
// Example usage:
//
//	// Generate an identifier for a newly submitted order
//	orderID := kernel.NewUUID()
//
//	// Parse the order id from a route parameter
//	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
//	if err != nil {
//	    // respond 400
//	}
//
//	// Use as aggregate identifier
//	type Order struct {
//	    id          kernel.UUID
//	    formOwnerID kernel.UUID
//	    // other fields...
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4).
// This is the primary way to create new identifiers for entities.
// The generated UUID is guaranteed to be valid and unique with
// extremely high probability.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	logger.Info("order submitted", "orderId", orderID.String())
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its string representation.
// It accepts standard UUID formats including:
//   - "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//   - "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"
//   - "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//
// Returns an error if the string is not a valid UUID format.
// Used when binding route parameters and when decoding push-event
// payloads, the two places order ids arrive as text.
//
// Example:
//
//	formOwnerID, err := kernel.UUIDFromString(payload.FormOwnerID)
//	if err != nil {
//	    return fmt.Errorf("invalid form owner id: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a byte slice.
// The byte slice must be exactly 16 bytes long.
// Returns an error if the byte slice is not valid for UUID construction.
//
// Used when rehydrating orders from the database, where ids are stored
// as native uuid columns.
//
// Example:
//
//	orderID, err := kernel.UUIDFromBytes(dto.ID[:])
//	if err != nil {
//	    return nil, err
//	}
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the standard string representation of the UUID.
// The format is "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" where x is a hexadecimal digit.
// For a zero value UUID, this returns "00000000-0000-0000-0000-000000000000".
//
// This method is commonly used for:
//   - Structured log fields (orderId, formOwnerId)
//   - JSON response DTOs
//   - Not-found error messages
//
// Example:
//
//	return errs.NewObjectNotFoundError("orderId", orderID.String())
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying UUID value.
// Note: This returns the internal uuid.UUID type, not a byte slice.
// For a byte slice representation, use id.Bytes()[:].
//
// This method exists for the persistence boundary, where gorm maps
// uuid.UUID directly onto the uuid column type. Direct access elsewhere
// should be minimized to maintain encapsulation.
//
// Example:
//
//	dto := OrderDTO{ID: o.ID().Bytes(), FormOwnerID: o.FormOwnerID().Bytes()}
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual compares two UUIDs for equality.
// Returns true if both UUIDs represent the same value, false otherwise.
// This comparison is case-insensitive for the hexadecimal digits.
//
// Example:
//
//	for _, o := range b.orders {
//	    if o.ID().IsEqual(orderID) {
//	        return o
//	    }
//	}
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate checks if the UUID is properly constructed.
// Returns ErrUUIDIsNotConstructed if the UUID is a zero value (nil UUID).
// A valid UUID is any UUID that was created through one of the constructor functions.
//
// Every command constructor and aggregate setter calls this, so a
// zero-value id can never reach the engine or the persistence layer.
//
// Example:
//
//	func (c *AdvanceOrderCommand) setOrderID(orderID kernel.UUID) error {
//	    if err := orderID.Validate(); err != nil {
//	        return err
//	    }
//	    c.orderID = orderID
//	    return nil
//	}
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
