package board_test

import (
	"testing"
	"time"

	"orderboard/internal/core/application/board"
	"orderboard/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionLock_TryAcquire(t *testing.T) {
	t.Run("acquire then reacquire returns true then false", func(t *testing.T) {
		lock := board.NewTransitionLock()
		id := kernel.NewUUID()

		assert.True(t, lock.TryAcquire(id))
		assert.False(t, lock.TryAcquire(id))
		assert.True(t, lock.IsHeld(id))
	})

	t.Run("locks on different orders are independent", func(t *testing.T) {
		lock := board.NewTransitionLock()

		assert.True(t, lock.TryAcquire(kernel.NewUUID()))
		assert.True(t, lock.TryAcquire(kernel.NewUUID()))
	})
}

func TestTransitionLock_Release(t *testing.T) {
	t.Run("release makes the order acquirable again", func(t *testing.T) {
		lock := board.NewTransitionLock()
		id := kernel.NewUUID()

		require.True(t, lock.TryAcquire(id))
		lock.Release(id)

		assert.False(t, lock.IsHeld(id))
		assert.True(t, lock.TryAcquire(id))
	})

	t.Run("releasing an unheld order is a no-op", func(t *testing.T) {
		lock := board.NewTransitionLock()

		lock.Release(kernel.NewUUID())
	})
}

func TestTransitionLock_ReleaseStale(t *testing.T) {
	t.Run("releases holds older than maxAge", func(t *testing.T) {
		lock := board.NewTransitionLock()
		id := kernel.NewUUID()
		require.True(t, lock.TryAcquire(id))

		released := lock.ReleaseStale(0)

		require.Len(t, released, 1)
		assert.True(t, released[0].IsEqual(id))
		assert.False(t, lock.IsHeld(id))
	})

	t.Run("keeps fresh holds", func(t *testing.T) {
		lock := board.NewTransitionLock()
		id := kernel.NewUUID()
		require.True(t, lock.TryAcquire(id))

		released := lock.ReleaseStale(time.Hour)

		assert.Empty(t, released)
		assert.True(t, lock.IsHeld(id))
	})
}
