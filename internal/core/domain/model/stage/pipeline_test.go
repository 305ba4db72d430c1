package stage_test

import (
	"fmt"
	"testing"

	"orderboard/internal/core/domain/model/stage"
	"orderboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStage(t *testing.T) {
	t.Run("should create valid stage", func(t *testing.T) {
		s, err := stage.NewStage("novo", "Novo", "#3B82F6")

		require.NoError(t, err)
		assert.Equal(t, stage.ID("novo"), s.ID())
		assert.Equal(t, "Novo", s.Label())
		assert.Equal(t, "#3B82F6", s.Color())
		assert.False(t, s.IsZero())
	})

	t.Run("should allow empty color", func(t *testing.T) {
		s, err := stage.NewStage("novo", "Novo", "")

		require.NoError(t, err)
		assert.Empty(t, s.Color())
	})

	t.Run("should reject empty id", func(t *testing.T) {
		_, err := stage.NewStage("", "Novo", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject empty label", func(t *testing.T) {
		_, err := stage.NewStage("novo", "", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestorePipeline(t *testing.T) {
	makeStages := func(t *testing.T, ids ...stage.ID) []stage.Stage {
		t.Helper()
		stages := make([]stage.Stage, 0, len(ids))
		for _, id := range ids {
			s, err := stage.NewStage(id, string(id), "")
			require.NoError(t, err)
			stages = append(stages, s)
		}
		return stages
	}

	t.Run("should restore valid pipeline", func(t *testing.T) {
		stages := makeStages(t, "a", "b", "done", "void")

		p, err := stage.RestorePipeline(stages, "void")

		require.NoError(t, err)
		assert.Equal(t, stage.ID("void"), p.TerminalID())
		assert.Len(t, p.Stages(), 4)
		assert.Len(t, p.Columns(), 3)
		assert.Equal(t, stage.ID("a"), p.First().ID())
	})

	t.Run("should reject empty stage list", func(t *testing.T) {
		_, err := stage.RestorePipeline(nil, "void")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject duplicate stage ids", func(t *testing.T) {
		stages := makeStages(t, "a", "b", "a", "void")

		_, err := stage.RestorePipeline(stages, "void")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject terminal not part of pipeline", func(t *testing.T) {
		stages := makeStages(t, "a", "b", "c")

		_, err := stage.RestorePipeline(stages, "void")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject pipeline with a single traversable stage", func(t *testing.T) {
		stages := makeStages(t, "a", "void")

		_, err := stage.RestorePipeline(stages, "void")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestBuiltInPipelines(t *testing.T) {
	t.Run("dine-in pipeline order", func(t *testing.T) {
		p := stage.DineInPipeline()

		ids := make([]stage.ID, 0)
		for _, s := range p.Stages() {
			ids = append(ids, s.ID())
		}

		assert.Equal(t, []stage.ID{
			stage.New, stage.Confirmed, stage.Preparing,
			stage.Ready, stage.Delivered, stage.Cancelled,
		}, ids)
		assert.Equal(t, stage.Cancelled, p.TerminalID())
	})

	t.Run("delivery pipeline inserts out-for-delivery between ready and delivered", func(t *testing.T) {
		p := stage.DeliveryPipeline()

		next, ok := p.Next(stage.Ready)
		require.True(t, ok)
		assert.Equal(t, stage.OutForDelivery, next.ID())

		next, ok = p.Next(stage.OutForDelivery)
		require.True(t, ok)
		assert.Equal(t, stage.Delivered, next.ID())
	})

	t.Run("columns exclude the cancelled stage", func(t *testing.T) {
		for _, p := range []stage.Pipeline{stage.DineInPipeline(), stage.DeliveryPipeline()} {
			for _, s := range p.Columns() {
				assert.NotEqual(t, stage.Cancelled, s.ID())
			}
		}
	})
}

func TestPipeline_Next(t *testing.T) {
	p := stage.DeliveryPipeline()

	t.Run("should step forward one stage", func(t *testing.T) {
		next, ok := p.Next(stage.New)

		require.True(t, ok)
		assert.Equal(t, stage.Confirmed, next.ID())
	})

	t.Run("should return false when next stage is terminal", func(t *testing.T) {
		_, ok := p.Next(stage.Delivered)

		assert.False(t, ok)
	})

	t.Run("should return false for terminal stage", func(t *testing.T) {
		_, ok := p.Next(stage.Cancelled)

		assert.False(t, ok)
	})

	t.Run("should return false for unknown stage", func(t *testing.T) {
		_, ok := p.Next("inexistente")

		assert.False(t, ok)
	})
}

func TestPipeline_Previous(t *testing.T) {
	p := stage.DeliveryPipeline()

	t.Run("should step back one stage", func(t *testing.T) {
		prev, ok := p.Previous(stage.Confirmed)

		require.True(t, ok)
		assert.Equal(t, stage.New, prev.ID())
	})

	t.Run("should return false at the first stage", func(t *testing.T) {
		_, ok := p.Previous(stage.New)

		assert.False(t, ok)
	})

	t.Run("should return false for terminal stage", func(t *testing.T) {
		_, ok := p.Previous(stage.Cancelled)

		assert.False(t, ok)
	})

	t.Run("should return false for unknown stage", func(t *testing.T) {
		_, ok := p.Previous("inexistente")

		assert.False(t, ok)
	})
}

func TestPipeline_RoundTrip(t *testing.T) {
	t.Run("next of previous returns the original stage", func(t *testing.T) {
		for _, p := range []stage.Pipeline{stage.DineInPipeline(), stage.DeliveryPipeline()} {
			for _, s := range p.Columns() {
				prev, ok := p.Previous(s.ID())
				if !ok {
					continue
				}

				t.Run(fmt.Sprintf("stage %s", s.ID()), func(t *testing.T) {
					next, nextOK := p.Next(prev.ID())
					require.True(t, nextOK)
					assert.Equal(t, s.ID(), next.ID())
				})
			}
		}
	})
}

func TestPipeline_Find(t *testing.T) {
	p := stage.DineInPipeline()

	t.Run("should find existing stage", func(t *testing.T) {
		s, ok := p.Find(stage.Preparing)

		require.True(t, ok)
		assert.Equal(t, "Preparando", s.Label())
	})

	t.Run("should not find unknown stage", func(t *testing.T) {
		_, ok := p.Find("inexistente")

		assert.False(t, ok)
		assert.False(t, p.Contains("inexistente"))
	})
}
