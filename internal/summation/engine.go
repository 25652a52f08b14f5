package summation

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/fpsum/internal/logging"
)

const tracerName = "github.com/agbru/fpsum/internal/summation"

// Engine computes the sum over a TermRange with a fixed number of workers.
// An Engine is immutable after New and safe for concurrent use, although the
// driver calls it strictly one run at a time.
type Engine struct {
	workers  int
	schedule Schedule
	chunk    int
	terms    TermRange
	tracer   trace.Tracer
	logger   logging.Logger
}

// Option configures an Engine during construction.
type Option func(*Engine)

// WithWorkers sets the number of concurrent workers.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}

// WithSchedule sets the chunk assignment policy.
func WithSchedule(s Schedule) Option {
	return func(e *Engine) { e.schedule = s }
}

// WithChunkSize sets the chunk size for the dynamic and guided schedules.
func WithChunkSize(n int) Option {
	return func(e *Engine) { e.chunk = n }
}

// WithTerms sets the summed range.
func WithTerms(r TermRange) Option {
	return func(e *Engine) { e.terms = r }
}

// WithLogger sets the logger used for per-call debug entries.
func WithLogger(l logging.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithTracerProvider overrides the global OpenTelemetry tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(e *Engine) { e.tracer = tp.Tracer(tracerName) }
}

// New builds an Engine. Without options it sums DefaultTerms with one worker
// under DefaultSchedule.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		workers:  1,
		schedule: DefaultSchedule,
		chunk:    DefaultChunkSize,
		terms:    DefaultTerms(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.workers < 1 {
		return nil, fmt.Errorf("summation: worker count must be at least 1, got %d", e.workers)
	}
	if e.chunk < 1 {
		return nil, fmt.Errorf("summation: chunk size must be at least 1, got %d", e.chunk)
	}
	if _, ok := scheduleNames[e.schedule]; !ok {
		return nil, fmt.Errorf("summation: invalid schedule %v", e.schedule)
	}
	if e.tracer == nil {
		e.tracer = otel.Tracer(tracerName)
	}
	if e.logger == nil {
		e.logger = logging.NopLogger{}
	}
	return e, nil
}

// Workers returns the configured worker count.
func (e *Engine) Workers() int { return e.workers }

// Schedule returns the configured schedule.
func (e *Engine) Schedule() Schedule { return e.schedule }

// Terms returns the summed range.
func (e *Engine) Terms() TermRange { return e.terms }

// Sum computes one instance of the sum. It forks e.Workers() workers, each
// accumulating a local partial over the spans it receives, and returns once
// every partial has been folded into the total. Cancellation is observed
// between spans.
func (e *Engine) Sum(ctx context.Context) (float64, error) {
	ctx, span := e.tracer.Start(ctx, "summation.Sum", trace.WithAttributes(
		attribute.Int("summation.workers", e.workers),
		attribute.String("summation.schedule", e.schedule.String()),
		attribute.Int("summation.chunk", e.chunk),
		attribute.Int("summation.terms", e.terms.Len()),
	))
	defer span.End()

	d := newDispenser(e.schedule, e.terms, e.workers, e.chunk)
	var total reduction

	g, gctx := errgroup.WithContext(ctx)
	for w := range e.workers {
		g.Go(func() error {
			partial := 0.0
			for {
				if err := gctx.Err(); err != nil {
					return err
				}
				s, ok := d.next(w)
				if !ok {
					break
				}
				partial = e.terms.accumulate(partial, s.lo, s.hi)
			}
			total.add(partial)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, fmt.Errorf("summation: %w", err)
	}

	sum := total.value()
	span.SetAttributes(attribute.Float64("summation.result", sum))
	e.logger.Debug("sum computed",
		logging.Int("workers", e.workers),
		logging.String("schedule", e.schedule.String()),
		logging.Float64("value", sum),
	)
	return sum, nil
}

// reduction is the shared target workers fold their partials into. The first
// contribution is stored as is so that a single worker reproduces the
// sequential result exactly.
type reduction struct {
	mu    sync.Mutex
	sum   float64
	count int
}

func (r *reduction) add(v float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.count == 0 {
		r.sum = v
	} else {
		r.sum += v
	}
	r.count++
}

func (r *reduction) value() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.sum
}
