package order_test

import (
	"fmt"
	"testing"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/domain/model/stage"
	"orderboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.DineIn))
		assert.Equal(t, 2, int(order.Delivery))
	})
}

func TestCategory_Validate(t *testing.T) {
	t.Run("should validate valid categories", func(t *testing.T) {
		for _, category := range []order.Category{order.DineIn, order.Delivery} {
			t.Run(fmt.Sprintf("should validate %s category", category.String()), func(t *testing.T) {
				require.NoError(t, category.Validate())
			})
		}
	})

	t.Run("should reject Unknown category", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "category is invalid")
	})

	t.Run("should reject invalid category values", func(t *testing.T) {
		for _, category := range []order.Category{order.Category(-1), order.Category(3), order.Category(100)} {
			t.Run(fmt.Sprintf("should reject category value %d", int(category)), func(t *testing.T) {
				err := category.Validate()

				require.Error(t, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid category", int(category)))
			})
		}
	})
}

func TestCategory_String(t *testing.T) {
	testCases := []struct {
		category order.Category
		expected string
	}{
		{order.Unknown, "Unknown"},
		{order.DineIn, "DineIn"},
		{order.Delivery, "Delivery"},
		{order.Category(42), "Unknown"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.category)), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.category.String())
		})
	}
}

func TestCategory_Pipeline(t *testing.T) {
	t.Run("dine-in category uses the shorter pipeline", func(t *testing.T) {
		p := order.DineIn.Pipeline()

		assert.False(t, p.Contains(stage.OutForDelivery))
	})

	t.Run("delivery category uses the pipeline with out-for-delivery", func(t *testing.T) {
		p := order.Delivery.Pipeline()

		assert.True(t, p.Contains(stage.OutForDelivery))
	})
}

func TestCategoryFromString(t *testing.T) {
	t.Run("should parse canonical names", func(t *testing.T) {
		testCases := map[string]order.Category{
			"DineIn":   order.DineIn,
			"dine_in":  order.DineIn,
			"Delivery": order.Delivery,
			"delivery": order.Delivery,
		}

		for input, expected := range testCases {
			category, err := order.CategoryFromString(input)

			require.NoError(t, err)
			assert.Equal(t, expected, category)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.CategoryFromString("takeaway")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
