package pipeline

import (
	"log/slog"
	"time"

	"github.com/funscript-tools/fsdiff/internal/logging"
	"github.com/funscript-tools/fsdiff/internal/signal"
)

// Observer is notified after every applied operation.
type Observer interface {
	ObserveOperation(name string, sizeBefore, sizeAfter int, elapsed time.Duration)
}

// Pipeline applies a fixed sequence of operations to a signal.
type Pipeline struct {
	ops      []Operation
	logger   *slog.Logger
	observer Observer
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger operations report to.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = l
	}
}

// WithObserver sets an observer for per-operation statistics.
func WithObserver(o Observer) Option {
	return func(p *Pipeline) {
		p.observer = o
	}
}

// New creates a pipeline for ops. Without a logger option nothing is logged.
func New(ops []Operation, opts ...Option) *Pipeline {
	p := &Pipeline{
		ops:    ops,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Operations returns the operations in application order.
func (p *Pipeline) Operations() []Operation {
	return p.ops
}

// Run applies every operation to s in order.
func (p *Pipeline) Run(s *signal.Signal) {
	for _, op := range p.ops {
		log := p.logger.With(logging.Operation(op.Name()))

		before := s.Len()
		start := time.Now()
		op.Apply(s, log)
		elapsed := time.Since(start)

		log.Debug("operation applied", logging.SizeAfter(s.Len()), logging.Duration(elapsed))
		if p.observer != nil {
			p.observer.ObserveOperation(op.Name(), before, s.Len(), elapsed)
		}
	}
}
