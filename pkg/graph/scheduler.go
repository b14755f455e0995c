package graph

import (
	"context"
	"io"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/tilesmith/tilesmith/pkg/errors"
	"github.com/tilesmith/tilesmith/pkg/lazy"
	"github.com/tilesmith/tilesmith/pkg/observability"
	"github.com/tilesmith/tilesmith/pkg/pixel"
)

// ExecuteOptions configures graph execution.
type ExecuteOptions struct {
	// Jobs bounds the number of node bodies running concurrently.
	// Zero or negative means GOMAXPROCS.
	Jobs int

	// Logger receives per-node debug logging. Nil discards.
	Logger *log.Logger
}

// Summary reports the outcome of one graph execution.
type Summary struct {
	// Nodes is the total number of registered nodes.
	Nodes int
	// Executed is the number of node bodies that actually ran.
	Executed int
	// Deduplicated is the number of consumer references served by a
	// shared node beyond its first: the renders that structural dedup
	// avoided.
	Deduplicated int
	// SinksWritten is the number of sinks that realized their outputs.
	SinksWritten int
	// Failed maps the display form of each failed sink to its error.
	// Successful branches are unaffected by failures elsewhere.
	Failed map[string]error
	// Duration is the wall time of the execution.
	Duration time.Duration
}

// Execute runs every node of the graph in dependency order on a bounded
// worker group. Each node body runs at most once; its result is shared by
// all consumers through a lazy task. A failed node poisons its dependents
// with a dependency error while independent branches continue, so a run can
// partially succeed: inspect Summary.Failed.
//
// Execute returns a non-nil error only for systemic conditions (context
// cancellation); per-sink failures live in the summary.
func Execute(ctx context.Context, g *Graph, opts ExecuteOptions) (*Summary, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	start := time.Now()
	nodes := g.TopoOrder()

	// Intermediate buffers go back to the pool once their last consumer has
	// taken them. Sink outputs stay valid for the caller, and anything a
	// retaining node touches is kept alive for its cross-execution memo.
	remaining := make(map[string]*atomic.Int32, len(nodes))
	for key, c := range g.Consumers() {
		cnt := new(atomic.Int32)
		cnt.Store(int32(c))
		remaining[key] = cnt
	}
	releasable := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		releasable[n.Key] = !n.Sink && !n.Retain
	}
	for _, n := range nodes {
		if n.Retain {
			for _, depKey := range n.Inputs {
				releasable[depKey] = false
			}
		}
	}

	var executed atomic.Int32
	tasks := make(map[string]*lazy.Task[*pixel.Pixmap], len(nodes))
	for _, n := range nodes {
		tasks[n.Key] = newNodeTask(ctx, n, tasks, remaining, releasable, &executed, logger)
	}

	var eg errgroup.Group
	eg.SetLimit(jobs)
	for _, n := range nodes {
		task := tasks[n.Key]
		eg.Go(func() error {
			task.Result()
			return nil
		})
	}
	_ = eg.Wait() // node failures are collected below, not through the group

	summary := &Summary{
		Nodes:    g.NodeCount(),
		Executed: int(executed.Load()),
		Failed:   make(map[string]error),
		Duration: time.Since(start),
	}
	for _, c := range g.Consumers() {
		if c > 1 {
			summary.Deduplicated += c - 1
		}
	}
	for _, sink := range g.Sinks() {
		if res := tasks[sink.Key].Result(); res.Err != nil {
			summary.Failed[sink.Display] = res.Err
		} else {
			summary.SinksWritten++
		}
	}

	if err := ctx.Err(); err != nil {
		return summary, err
	}
	return summary, nil
}

// newNodeTask wraps a node body in a lazy task that first demands every
// input from its producer task. tasks must be fully populated before any
// task is forced; after that the map is only read.
func newNodeTask(ctx context.Context, n *Node, tasks map[string]*lazy.Task[*pixel.Pixmap],
	remaining map[string]*atomic.Int32, releasable map[string]bool,
	executed *atomic.Int32, logger *log.Logger) *lazy.Task[*pixel.Pixmap] {

	return lazy.New(n.Display, func() (*pixel.Pixmap, error) {
		// Each consumer accounts for every input exactly once, even on the
		// early returns below; the last one releases the producer's buffer.
		defer func() {
			for _, depKey := range n.Inputs {
				if !releasable[depKey] {
					continue
				}
				if remaining[depKey].Add(-1) == 0 {
					if res := tasks[depKey].Result(); res.Value != nil {
						res.Value.Release()
					}
				}
			}
		}()
		inputs := make(map[string]*pixel.Pixmap, len(n.Inputs))
		for slot, depKey := range n.Inputs {
			dep := tasks[depKey]
			if dep.Done() {
				observability.Cache().OnResultReused(ctx, dep.Name())
			}
			res := dep.Result()
			if res.Err != nil {
				return nil, errors.Wrap(errors.ErrCodeDependencyFailed, res.Err,
					"input %q of %s", slot, n.Display)
			}
			inputs[slot] = res.Value
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		observability.Cache().OnResultComputed(ctx, n.Display)
		observability.Build().OnNodeStart(ctx, n.Display)
		nodeStart := time.Now()
		out, err := n.Run(ctx, inputs)
		executed.Add(1)
		elapsed := time.Since(nodeStart)
		observability.Build().OnNodeComplete(ctx, n.Display, elapsed, err)

		if err != nil {
			logger.Debug("node failed", "node", n.Display, "duration", elapsed, "err", err)
			return nil, err
		}
		logger.Debug("node executed", "node", n.Display, "duration", elapsed)
		if n.Sink {
			observability.Build().OnSinkWritten(ctx, n.Destinations)
		}
		return out, nil
	})
}
