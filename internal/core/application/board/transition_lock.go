package board

import (
	"sync"
	"time"

	"orderboard/internal/core/domain/model/kernel"
)

// TransitionLock tracks in-flight stage transitions per order identifier,
// preventing duplicate or overlapping commits for the same order.
//
// Acquisition is an atomic check-and-set: a second request for an order
// whose transition is still in flight observes TryAcquire returning false
// and backs off silently. Locks on different orders are independent.
//
// Each hold records its acquisition time so that ReleaseStale can recover
// locks whose persistence call never resolved.
type TransitionLock struct {
	mu   sync.Mutex
	held map[kernel.UUID]time.Time

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

// NewTransitionLock creates an empty TransitionLock.
func NewTransitionLock() *TransitionLock {
	return &TransitionLock{
		held: make(map[kernel.UUID]time.Time),
		now:  time.Now,
	}
}

// TryAcquire marks the order as having a transition in flight.
// Returns false, without side effects, if the order is already held.
func (l *TransitionLock) TryAcquire(orderID kernel.UUID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.held[orderID]; ok {
		return false
	}
	l.held[orderID] = l.now()
	return true
}

// Release unconditionally clears the hold for the order.
// Releasing an order that is not held is a no-op.
func (l *TransitionLock) Release(orderID kernel.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, orderID)
}

// IsHeld reports whether a transition is currently in flight for the order.
func (l *TransitionLock) IsHeld(orderID kernel.UUID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.held[orderID]
	return ok
}

// ReleaseStale releases every hold older than maxAge and returns the
// identifiers that were released. Used by the sweeper job to recover from
// persistence calls that never resolved.
func (l *TransitionLock) ReleaseStale(maxAge time.Duration) []kernel.UUID {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-maxAge)
	var released []kernel.UUID
	for id, acquiredAt := range l.held {
		if acquiredAt.Before(cutoff) || acquiredAt.Equal(cutoff) {
			delete(l.held, id)
			released = append(released, id)
		}
	}
	return released
}
