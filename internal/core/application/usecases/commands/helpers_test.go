package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"orderboard/internal/core/application/board"
	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/domain/model/stage"
	"orderboard/internal/core/ports"
	"orderboard/internal/pkg/errs"
)

func buildOrder(t *testing.T, category order.Category, stageID stage.ID) *order.Order {
	t.Helper()

	price, err := kernel.NewMoney(1800)
	require.NoError(t, err)
	item, err := order.NewLineItem("Feijoada", 1, price)
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), category,
		stageID, []order.LineItem{item}, price, time.Now(),
	)
	require.NoError(t, err)
	return o
}

// stubCommitter records commits and can be primed to fail.
type stubCommitter struct {
	calls   int
	failErr error
}

func (c *stubCommitter) CommitTransition(
	_ context.Context, _, _ kernel.UUID, _ stage.ID,
) error {
	c.calls++
	return c.failErr
}

// stubFetcher serves a fixed collection.
type stubFetcher struct {
	orders []*order.Order
}

func (f *stubFetcher) FetchOrders(_ context.Context, _ ports.OrderFilter) ([]*order.Order, error) {
	return f.orders, nil
}

// singleBoardProvider serves one board for one category.
type singleBoardProvider struct {
	category order.Category
	board    *board.Board
}

func (p *singleBoardProvider) BoardFor(category order.Category) (*board.Board, error) {
	if category != p.category {
		return nil, errs.NewValueIsInvalidError("category")
	}
	return p.board, nil
}

func buildBoard(
	t *testing.T, category order.Category, orders []*order.Order, committer *stubCommitter,
) *board.Board {
	t.Helper()

	b, err := board.NewBoard(
		category, committer, &stubFetcher{orders: orders},
		slog.New(slog.DiscardHandler),
	)
	require.NoError(t, err)
	require.NoError(t, b.Refresh(context.Background()))
	return b
}
