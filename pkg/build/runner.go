package build

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tilesmith/tilesmith/pkg/graph"
	"github.com/tilesmith/tilesmith/pkg/pixel"
	"github.com/tilesmith/tilesmith/pkg/taskspec"
)

// Runner executes texture builds. It is stateless between runs; multiple
// goroutines can use the same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Result contains the outputs of one build run.
type Result struct {
	// RunID uniquely identifies the run in logs.
	RunID string

	// Graph is the constructed dependency graph, retained for inspection
	// and DOT export.
	Graph *graph.Graph

	// Failed maps the display form of each failed sink to its error.
	Failed map[string]error

	// Stats contains timing and size information.
	Stats Stats
}

// Execute runs the complete construct → execute pipeline over the given sink
// specs. A run with failed sinks still returns a Result; inspect
// Result.Failed and Stats.Failures. A non-nil error means the run could not
// proceed at all (invalid options, a construction bug, cancellation).
func (r *Runner) Execute(ctx context.Context, specs []taskspec.Spec, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RunID: uuid.New().String(),
	}
	logger := opts.Logger.With("run", result.RunID)

	// Stage 1: Construct
	constructStart := time.Now()
	g, err := r.Construct(ctx, specs, opts)
	if err != nil {
		return nil, fmt.Errorf("construct: %w", err)
	}
	result.Graph = g
	result.Stats.ConstructTime = time.Since(constructStart)
	result.Stats.Nodes = g.NodeCount()
	result.Stats.Edges = g.EdgeCount()

	logger.Info("constructed graph",
		"sinks", len(specs),
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.ConstructTime)

	// Stage 2: Execute
	executeStart := time.Now()
	summary, err := graph.Execute(ctx, g, graph.ExecuteOptions{
		Jobs:   opts.Jobs,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("execute: %w", err)
	}
	result.Failed = summary.Failed
	result.Stats.ExecuteTime = time.Since(executeStart)
	result.Stats.Executed = summary.Executed
	result.Stats.Deduplicated = summary.Deduplicated
	result.Stats.OutputsWritten = summary.SinksWritten
	result.Stats.Failures = len(summary.Failed)

	logger.Info("executed graph",
		"executed", summary.Executed,
		"deduplicated", summary.Deduplicated,
		"outputs", summary.SinksWritten,
		"failures", len(summary.Failed),
		"duration", result.Stats.ExecuteTime)
	for display, ferr := range summary.Failed {
		logger.Error("sink failed", "sink", display, "err", ferr)
	}

	return result, nil
}

// Construct walks every spec tree and registers its nodes into one
// deduplicated graph. Shared sub-trees across specs collapse to single
// nodes because the visited set spans the whole run.
func (r *Runner) Construct(ctx context.Context, specs []taskspec.Spec, opts Options) (*graph.Graph, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	pool, err := pixel.NewBufferPool(opts.TileWidth)
	if err != nil {
		return nil, err
	}
	b := &graph.Builder{
		Pool:      pool,
		TileWidth: opts.TileWidth,
		SVGRoot:   opts.SVGRoot,
		OutRoot:   opts.OutRoot,
	}

	g := graph.New()
	visited := make(map[string]bool)
	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := b.AddTo(g, visited, spec); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
