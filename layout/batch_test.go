package layout_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roomgrid/layout"
	"github.com/katalvlaran/roomgrid/roomtype"
)

func newBatchGenerator(t *testing.T, opts ...layout.Option) *layout.Generator {
	t.Helper()
	opts = append([]layout.Option{layout.WithSize(5, 6), layout.WithSeed(2024)}, opts...)
	g, err := layout.NewGenerator(roomtype.Standard(), layout.Coordinate{Row: 0, Col: 3}, opts...)
	require.NoError(t, err)
	return g
}

// TestBatch_WorkerCountDoesNotChangeResults generates the same batch with
// one and with eight workers and expects identical layouts.
func TestBatch_WorkerCountDoesNotChangeResults(t *testing.T) {
	const n = 64
	serial, err := layout.Batch(context.Background(), newBatchGenerator(t), n, 1)
	require.NoError(t, err)
	parallel, err := layout.Batch(context.Background(), newBatchGenerator(t), n, 8)
	require.NoError(t, err)

	require.Len(t, serial, n)
	require.Len(t, parallel, n)
	for i := range serial {
		require.NoError(t, layout.Validate(serial[i]), "layout %d", i)
		assert.Equal(t, serial[i].Names(), parallel[i].Names(), "layout %d", i)
		assert.Equal(t, serial[i].MainPath, parallel[i].MainPath, "layout %d", i)
	}
}

func TestBatch_StreamsDiffer(t *testing.T) {
	out, err := layout.Batch(context.Background(), newBatchGenerator(t), 32, 0)
	require.NoError(t, err)

	distinct := map[string]struct{}{}
	for _, l := range out {
		b, err := l.MarshalJSON()
		require.NoError(t, err)
		distinct[string(b)] = struct{}{}
	}
	assert.Greater(t, len(distinct), 1)
}

func TestBatch_Edges(t *testing.T) {
	out, err := layout.Batch(context.Background(), newBatchGenerator(t), 0, 2)
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = layout.Batch(context.Background(), newBatchGenerator(t), -1, 2)
	assert.ErrorIs(t, err, layout.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = layout.Batch(ctx, newBatchGenerator(t), 10, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBatch_PropagatesGenerationError(t *testing.T) {
	g := newBatchGenerator(t, layout.WithStepBudget(2))
	out, err := layout.Batch(context.Background(), g, 8, 4)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, layout.ErrStepBudgetExceeded)
}
