package board_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/domain/model/stage"
	"orderboard/internal/core/ports"

	"github.com/stretchr/testify/require"
)

// buildOrder creates a restored order sitting in the given stage.
func buildOrder(t *testing.T, category order.Category, stageID stage.ID) *order.Order {
	t.Helper()

	price, err := kernel.NewMoney(2500)
	require.NoError(t, err)
	item, err := order.NewLineItem("Marmita", 1, price)
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), category,
		stageID, []order.LineItem{item}, price, time.Now(),
	)
	require.NoError(t, err)
	return o
}

// fakeCommitter records transition commits and can fail or block on demand.
type fakeCommitter struct {
	mu      sync.Mutex
	calls   []stage.ID
	failErr error
	block   chan struct{}
}

func (f *fakeCommitter) CommitTransition(
	_ context.Context,
	_ kernel.UUID,
	_ kernel.UUID,
	targetStageID stage.ID,
) error {
	f.mu.Lock()
	block := f.block
	f.calls = append(f.calls, targetStageID)
	err := f.failErr
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	return err
}

func (f *fakeCommitter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// fakeFetcher serves a configurable collection and counts fetches.
type fakeFetcher struct {
	mu     sync.Mutex
	orders []*order.Order
	count  int
	err    error
}

func (f *fakeFetcher) FetchOrders(_ context.Context, _ ports.OrderFilter) ([]*order.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*order.Order, len(f.orders))
	copy(out, f.orders)
	return out, nil
}

func (f *fakeFetcher) setOrders(orders []*order.Order) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders = orders
}

func (f *fakeFetcher) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.count
}

// fakePushFeed delivers events pushed by the test through a channel.
type fakePushFeed struct {
	events chan ports.OrderEvent
	closed bool
}

func newFakePushFeed() *fakePushFeed {
	return &fakePushFeed{events: make(chan ports.OrderEvent, 8)}
}

func (f *fakePushFeed) Subscribe(_ context.Context) (<-chan ports.OrderEvent, error) {
	return f.events, nil
}

func (f *fakePushFeed) Close() error {
	if !f.closed {
		f.closed = true
		close(f.events)
	}
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
