package exercise

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/vecmath"
)

// Evaluator runs batches of tasks with bounded concurrency.
type Evaluator struct {
	concurrency int
	logger      *Logger
	metrics     MetricsCollector
	vectorOpts  []vecmath.Option
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithConcurrency sets the maximum number of tasks evaluated at once.
// Values below 1 select GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(e *Evaluator) {
		e.concurrency = n
	}
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l *Logger) Option {
	return func(e *Evaluator) {
		e.logger = l
	}
}

// WithMetricsCollector sets the metrics collector.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(e *Evaluator) {
		e.metrics = mc
	}
}

// WithVectorOptions applies precision and tolerance settings to every
// operand of every task.
func WithVectorOptions(opts ...vecmath.Option) Option {
	return func(e *Evaluator) {
		e.vectorOpts = append(e.vectorOpts, opts...)
	}
}

// NewEvaluator creates an Evaluator.
func NewEvaluator(optFns ...Option) *Evaluator {
	e := &Evaluator{}
	for _, fn := range optFns {
		fn(e)
	}
	if e.concurrency < 1 {
		e.concurrency = runtime.GOMAXPROCS(0)
	}
	if e.logger == nil {
		e.logger = NoopLogger()
	}
	if e.metrics == nil {
		e.metrics = &NoopMetricsCollector{}
	}
	return e
}

// Run evaluates tasks concurrently and returns one result per task, in
// input order. Task failures are reported in the results; the returned
// error is non-nil only if ctx is cancelled before all tasks ran.
func (e *Evaluator) Run(ctx context.Context, tasks []Task) ([]Result, error) {
	start := time.Now()
	results := make([]Result, len(tasks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i, task := range tasks {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			taskStart := time.Now()
			res := Evaluate(task, e.vectorOpts...)
			elapsed := time.Since(taskStart)

			e.logger.WithOp(task.Op).LogTask(gctx, task.ID, elapsed, res.err)
			e.metrics.RecordTask(task.Op, elapsed, res.err)

			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
		}
	}
	elapsed := time.Since(start)
	e.logger.LogRun(ctx, len(results), failed, elapsed)
	e.metrics.RecordRun(len(results), failed, elapsed)

	return results, nil
}
