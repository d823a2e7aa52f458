// Package runner executes one transform run end to end: it loads a script,
// derives the rate signal, applies the operation chain and writes the result.
package runner

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/funscript-tools/fsdiff/internal/funscript"
	"github.com/funscript-tools/fsdiff/internal/logging"
	"github.com/funscript-tools/fsdiff/internal/metrics"
	"github.com/funscript-tools/fsdiff/internal/pipeline"
	"github.com/funscript-tools/fsdiff/internal/signal"
)

// Request describes a single run.
type Request struct {
	Input       string
	Output      string
	Pretty      bool
	Tokens      []string
	MetricsFile string
}

// Result reports what a run did.
type Result struct {
	RunID        string
	Operations   []string
	ActionsIn    int
	SignalPoints int
	ActionsOut   int
	Elapsed      time.Duration
}

// Runner executes transform runs.
type Runner struct {
	logger *slog.Logger
}

// New creates a runner that logs to logger. A nil logger disables logging.
func New(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Runner{logger: logger}
}

// Run performs req. Operation tokens and the input document are both
// validated before anything is transformed, and the output is only written
// once the whole chain has succeeded.
func (r *Runner) Run(req Request) (*Result, error) {
	start := time.Now()
	res := &Result{RunID: uuid.NewString()}
	log := r.logger.With(logging.RunID(res.RunID))
	rec := metrics.New()

	ops, err := pipeline.ParseTokens(req.Tokens)
	if err != nil {
		return nil, err
	}
	res.Operations = pipeline.Describe(ops)
	log.Info("parsed commands", slog.Any("operations", res.Operations))

	script, err := funscript.Load(req.Input)
	if err != nil {
		return nil, err
	}
	res.ActionsIn = len(script.Actions)
	rec.ActionsTotal.WithLabelValues(metrics.DirectionRead).Add(float64(res.ActionsIn))
	log.Info("parsed script", logging.Path(req.Input), logging.Actions(res.ActionsIn))
	log.Debug("parsed script metadata", slog.Any("metadata", script.Metadata))

	sig, err := signal.Extract(script.Actions)
	if err != nil {
		return nil, err
	}
	res.SignalPoints = sig.Len()
	rec.SignalPoints.WithLabelValues(metrics.StageExtracted).Set(float64(sig.Len()))

	pipeline.New(ops, pipeline.WithLogger(log), pipeline.WithObserver(rec)).Run(sig)
	rec.SignalPoints.WithLabelValues(metrics.StageFinal).Set(float64(sig.Len()))

	script.Actions = signal.Materialize(sig)
	res.ActionsOut = len(script.Actions)

	if err := funscript.Save(req.Output, script, req.Pretty); err != nil {
		return nil, err
	}
	rec.ActionsTotal.WithLabelValues(metrics.DirectionWritten).Add(float64(res.ActionsOut))

	res.Elapsed = time.Since(start)
	log.Info("wrote script", logging.Path(req.Output), logging.Actions(res.ActionsOut), logging.Duration(res.Elapsed))

	if req.MetricsFile != "" {
		if err := rec.WriteTextfile(req.MetricsFile); err != nil {
			// Metrics are best effort once the script is written.
			log.Warn("failed to write metrics", logging.Path(req.MetricsFile), logging.Error(err))
		}
	}

	return res, nil
}

// ResolveTokens prepends the tokens of a preset to the explicit tokens.
func ResolveTokens(preset []string, tokens []string) []string {
	out := make([]string, 0, len(preset)+len(tokens))
	out = append(out, preset...)
	return append(out, tokens...)
}

// String summarizes the result for terminal output.
func (r *Result) String() string {
	return fmt.Sprintf("%d actions in, %d signal points, %d actions out", r.ActionsIn, r.SignalPoints, r.ActionsOut)
}
