package board

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"orderboard/internal/core/ports"
	"orderboard/internal/pkg/errs"
)

// ReconciliationFeed keeps a Board eventually consistent with changes made
// by other actors. It consumes the push feed and, for every event matching
// the board's category, triggers a silent full refresh of the collection.
//
// The feed never patches the collection from event payloads: partial
// patching in the presence of in-flight optimistic transitions is
// error-prone, so it always refetches the authoritative list wholesale.
// Deletion events carry no category and always trigger a refresh.
//
// A feed is an explicitly constructed object with Start/Stop lifecycle so
// that multiple independent boards can run in one process without
// cross-talk.
type ReconciliationFeed struct {
	board  *Board
	feed   ports.PushFeed
	logger *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
	mu     sync.Mutex
}

// NewReconciliationFeed creates a feed bound to one board and one push
// transport. Call Start to begin consuming events.
func NewReconciliationFeed(b *Board, feed ports.PushFeed, logger *slog.Logger) (*ReconciliationFeed, error) {
	if b == nil {
		return nil, errs.NewValueIsRequiredError("board")
	}
	if feed == nil {
		return nil, errs.NewValueIsRequiredError("push feed")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &ReconciliationFeed{
		board:  b,
		feed:   feed,
		logger: logger.With("component", "reconciliation_feed", "category", b.Category().String()),
	}, nil
}

// Start subscribes to the push feed and begins processing events on a
// background goroutine. Returns an error if the subscription fails.
func (f *ReconciliationFeed) Start(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	events, err := f.feed.Subscribe(ctx)
	if err != nil {
		cancel()
		return err
	}

	f.cancel = cancel
	f.done = make(chan struct{})
	go f.run(ctx, events)

	f.logger.InfoContext(ctx, "Reconciliation feed started")
	return nil
}

// Stop cancels the subscription and waits for the processing goroutine to
// drain. Safe to call more than once.
func (f *ReconciliationFeed) Stop() {
	f.mu.Lock()
	cancel, done := f.cancel, f.done
	f.cancel, f.done = nil, nil
	f.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	f.logger.Info("Reconciliation feed stopped")
}

func (f *ReconciliationFeed) run(ctx context.Context, events <-chan ports.OrderEvent) {
	defer close(f.done)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			f.handle(ctx, ev)
		}
	}
}

// handle triggers a silent refresh for events relevant to the board's
// category. Events for another category are ignored; deletions carry no
// category and always refresh.
func (f *ReconciliationFeed) handle(ctx context.Context, ev ports.OrderEvent) {
	if category, ok := ev.Category(); ok && category != f.board.Category() {
		return
	}

	f.logger.DebugContext(ctx, "push event received",
		"action", ev.Action.String(),
		"orderId", ev.OrderID.String(),
	)

	if err := f.board.Refresh(ctx); err != nil {
		if errors.Is(err, ErrBoardClosed) || errors.Is(err, context.Canceled) {
			return
		}
		f.logger.ErrorContext(ctx, "reconciliation refresh failed", "error", err)
	}
}
