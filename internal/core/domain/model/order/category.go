package order

import (
	"fmt"

	"orderboard/internal/core/domain/model/stage"
	"orderboard/internal/pkg/errs"
)

// Category classifies an order by how it is fulfilled and selects which
// stage pipeline applies to it. The category is fixed at creation and
// never changes over the order's lifetime.
//
// Category is a value object that validates its values and resolves the
// fulfillment pipeline for the order.
type Category int

const (
	// Unknown represents an invalid or undefined category.
	// This value (0) helps catch uninitialized Category values.
	Unknown Category = iota

	// DineIn identifies orders consumed on premises. Dine-in orders use
	// the shorter pipeline without the out-for-delivery stage.
	DineIn

	// Delivery identifies orders delivered to the customer. Delivery
	// orders use the longer pipeline including out-for-delivery.
	Delivery
)

// getCategoryStrings returns a map of Category values to their string representations.
// All categories are included for string conversion.
func getCategoryStrings() map[Category]string {
	return map[Category]string{
		Unknown:  "Unknown",
		DineIn:   "DineIn",
		Delivery: "Delivery",
	}
}

// getValidCategoryStrings returns a map of only valid Category values.
// Only valid categories are included to support validation.
func getValidCategoryStrings() map[Category]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Category]string{
		DineIn:   "DineIn",
		Delivery: "Delivery",
	}
}

// Validate checks if the Category value is valid.
//
// Valid categories are: DineIn, Delivery.
// Unknown (0) and any other values are invalid.
func (c Category) Validate() error {
	if _, ok := getValidCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"category is invalid",
			fmt.Errorf("%d is not a valid category", c),
		)
	}
	return nil
}

// String returns the human-readable name of the category.
//
// Returns "DineIn" or "Delivery" for valid categories and "Unknown" for
// invalid values. Implements fmt.Stringer and is safe to call on any
// Category value.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}

// Pipeline resolves the fulfillment pipeline for the category.
//
// DineIn maps to the shorter built-in pipeline, Delivery to the longer
// one with the out-for-delivery stage. Invalid categories fall back to
// the dine-in pipeline so that presentation code always has a workable
// stage sequence; callers that care about validity use Validate first.
func (c Category) Pipeline() stage.Pipeline {
	if c == Delivery {
		return stage.DeliveryPipeline()
	}
	return stage.DineInPipeline()
}

// CategoryFromString parses a category from its wire representation.
// Accepts the canonical names used by the persistence and push-event
// collaborators.
func CategoryFromString(s string) (Category, error) {
	switch s {
	case "DineIn", "dine_in":
		return DineIn, nil
	case "Delivery", "delivery":
		return Delivery, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"category is invalid",
			fmt.Errorf("%q is not a valid category", s),
		)
	}
}
