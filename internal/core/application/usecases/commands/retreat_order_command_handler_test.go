package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderboard/internal/core/application/usecases/commands"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/domain/model/stage"
)

func TestRetreatOrderCommandHandler_Handle_Success(t *testing.T) {
	committer := &stubCommitter{}
	tracked := buildOrder(t, order.DineIn, stage.Preparing)
	b := buildBoard(t, order.DineIn, []*order.Order{tracked}, committer)
	handler := commands.NewRetreatOrderCommandHandler(
		&singleBoardProvider{category: order.DineIn, board: b},
	)

	cmd, err := commands.NewRetreatOrderCommand(order.DineIn, tracked.ID())
	require.NoError(t, err)

	err = handler.Handle(context.Background(), cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, committer.calls)

	moved, err := b.Find(tracked.ID())
	require.NoError(t, err)
	assert.Equal(t, stage.Confirmed, moved.CurrentStage())
}

func TestRetreatOrderCommandHandler_Handle_FirstStageIsNoOp(t *testing.T) {
	committer := &stubCommitter{}
	tracked := buildOrder(t, order.DineIn, stage.New)
	b := buildBoard(t, order.DineIn, []*order.Order{tracked}, committer)
	handler := commands.NewRetreatOrderCommandHandler(
		&singleBoardProvider{category: order.DineIn, board: b},
	)

	cmd, err := commands.NewRetreatOrderCommand(order.DineIn, tracked.ID())
	require.NoError(t, err)

	err = handler.Handle(context.Background(), cmd)

	require.NoError(t, err)
	assert.Zero(t, committer.calls)

	unmoved, err := b.Find(tracked.ID())
	require.NoError(t, err)
	assert.Equal(t, stage.New, unmoved.CurrentStage())
}

func TestRetreatOrderCommandHandler_Handle_InvalidCommand(t *testing.T) {
	handler := commands.NewRetreatOrderCommandHandler(&singleBoardProvider{})

	err := handler.Handle(context.Background(), commands.RetreatOrderCommand{})

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRetreatOrderCommandIsNotConstructed)
}
