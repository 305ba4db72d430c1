package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderboard/internal/core/application/usecases/commands"
	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/domain/model/stage"
	"orderboard/internal/pkg/errs"
)

func TestNewMoveOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewMoveOrderCommand(order.Delivery, orderID, stage.Preparing, 2)

	require.NoError(t, err)
	assert.Equal(t, order.Delivery, cmd.Category())
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.Equal(t, stage.Preparing, cmd.ToStage())
	assert.Equal(t, 2, cmd.ToIndex())
	assert.NoError(t, cmd.Validate())
}

func TestNewMoveOrderCommand_ZeroIndexIsValid(t *testing.T) {
	cmd, err := commands.NewMoveOrderCommand(order.DineIn, kernel.NewUUID(), stage.New, 0)

	require.NoError(t, err)
	assert.Zero(t, cmd.ToIndex())
}

func TestNewMoveOrderCommand_EmptyStage(t *testing.T) {
	_, err := commands.NewMoveOrderCommand(order.DineIn, kernel.NewUUID(), "", 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewMoveOrderCommand_NegativeIndex(t *testing.T) {
	_, err := commands.NewMoveOrderCommand(order.DineIn, kernel.NewUUID(), stage.New, -1)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewMoveOrderCommand_MultipleCombinedErrors(t *testing.T) {
	_, err := commands.NewMoveOrderCommand(order.Unknown, kernel.UUID{}, "", -5)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestMoveOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.MoveOrderCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrMoveOrderCommandIsNotConstructed)
}
