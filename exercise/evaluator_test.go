package exercise

import (
	"bytes"
	"context"
	"log/slog"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/testutil"
)

func randomTasks(t *testing.T, n int) []Task {
	t.Helper()
	rng := testutil.NewRNG(4711)
	ops := []Op{OpPlus, OpMinus, OpDot, OpCross, OpParallelogram}

	tasks := make([]Task, n)
	for i := range tasks {
		a, b := rng.Vector(3), rng.Vector(3)
		tasks[i] = Task{ID: strconv.Itoa(i), Op: ops[i%len(ops)], A: &a, B: &b}
	}
	return tasks
}

func TestEvaluatorRun(t *testing.T) {
	t.Run("Preserves order", func(t *testing.T) {
		tasks := randomTasks(t, 100)
		e := NewEvaluator(WithConcurrency(8))

		results, err := e.Run(context.Background(), tasks)
		require.NoError(t, err)
		require.Len(t, results, len(tasks))

		for i, res := range results {
			assert.Equal(t, tasks[i].ID, res.ID)
			assert.Equal(t, tasks[i].Op, res.Op)
			assert.Equal(t, Evaluate(tasks[i]).String(), res.String())
		}
	})

	t.Run("Failures do not abort", func(t *testing.T) {
		zero := *vecPtr(t, "0", "0")
		tasks := []Task{
			{ID: "ok", Op: OpMagnitude, A: vecPtr(t, "3", "4")},
			{ID: "bad", Op: OpNormalize, A: &zero},
			{ID: "ok2", Op: OpDot, A: vecPtr(t, "1", "1"), B: vecPtr(t, "1", "1")},
		}

		mc := &BasicMetricsCollector{}
		e := NewEvaluator(WithConcurrency(2), WithMetricsCollector(mc))

		results, err := e.Run(context.Background(), tasks)
		require.NoError(t, err)
		require.Len(t, results, 3)

		assert.NoError(t, results[0].Err())
		assert.ErrorIs(t, results[1].Err(), vecmath.ErrZeroVector)
		assert.NoError(t, results[2].Err())

		stats := mc.GetStats()
		assert.Equal(t, int64(3), stats.TaskCount)
		assert.Equal(t, int64(1), stats.TaskErrors)
		assert.Equal(t, int64(1), stats.RunCount)
		assert.Equal(t, int64(3), stats.RunTasks)
		assert.Equal(t, int64(1), stats.RunFailed)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		mc := &BasicMetricsCollector{}
		e := NewEvaluator(WithMetricsCollector(mc))

		results, err := e.Run(ctx, randomTasks(t, 10))
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, results)
		assert.Equal(t, int64(0), mc.GetStats().RunCount)
	})

	t.Run("Empty batch", func(t *testing.T) {
		results, err := NewEvaluator().Run(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("Vector options", func(t *testing.T) {
		e := NewEvaluator(WithVectorOptions(vecmath.WithPrecision(2)))
		results, err := e.Run(context.Background(), []Task{
			{Op: OpPlus, A: vecPtr(t, "1.234"), B: vecPtr(t, "0")},
		})
		require.NoError(t, err)
		assert.Equal(t, "Vector: (1.2)", results[0].String())
	})

	t.Run("Logs", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		e := NewEvaluator(WithLogger(logger), WithConcurrency(1))

		_, err := e.Run(context.Background(), []Task{
			{ID: "z", Op: OpNormalize, A: vecPtr(t, "0")},
		})
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, `"msg":"task failed"`)
		assert.Contains(t, out, `"kind":"ZeroVector"`)
		assert.Contains(t, out, `"op":"normalize"`)
		assert.Contains(t, out, `"msg":"run completed with failures"`)
	})
}

func TestNewEvaluatorDefaults(t *testing.T) {
	e := NewEvaluator(WithConcurrency(0), WithLogger(nil))
	assert.GreaterOrEqual(t, e.concurrency, 1)
	assert.NotNil(t, e.logger)
	assert.NotNil(t, e.metrics)
}
