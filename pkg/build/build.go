// Package build provides the end-to-end texture build pipeline.
//
// This package implements the complete construct → execute pipeline that
// turns a list of sink specifications into PNG files on disk. By
// centralizing this logic, the CLI and any embedding program get identical
// behavior: one shared buffer pool, one deduplicated graph per run, one
// summary.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Construct: Walk every spec tree and register its nodes into one
//     deduplicated dependency graph.
//  2. Execute: Run the graph on a bounded worker group; every node renders
//     at most once and sinks realize their destinations.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := build.NewRunner(logger)
//	opts := build.Options{
//	    TileWidth: 16,
//	    SVGRoot:   "assets/svg",
//	    OutRoot:   "out",
//	}
//	result, err := runner.Execute(ctx, specs, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Stats.OutputsWritten)
package build

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
)

const (
	// DefaultTileWidth is the standard square tile width in pixels.
	DefaultTileWidth = 16

	// DefaultSVGRoot is the default directory of vector sources.
	DefaultSVGRoot = "assets/svg"

	// DefaultOutRoot is the default output directory.
	DefaultOutRoot = "out"
)

// Options contains all configuration for one build run.
type Options struct {
	// TileWidth is the rasterization width for vector sources. Must be
	// positive; zero picks DefaultTileWidth.
	TileWidth int

	// Jobs bounds the number of nodes rendering concurrently.
	// Zero picks GOMAXPROCS.
	Jobs int

	// SVGRoot is the directory holding vector sources.
	SVGRoot string

	// OutRoot is the directory that sink destinations resolve under.
	OutRoot string

	// Logger receives progress logging. Nil discards.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.TileWidth == 0 {
		o.TileWidth = DefaultTileWidth
	}
	if o.TileWidth < 0 {
		return fmt.Errorf("tile width must be positive, got %d", o.TileWidth)
	}
	if o.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", o.Jobs)
	}
	if o.Jobs == 0 {
		o.Jobs = runtime.GOMAXPROCS(0)
	}
	if o.SVGRoot == "" {
		o.SVGRoot = DefaultSVGRoot
	}
	if o.OutRoot == "" {
		o.OutRoot = DefaultOutRoot
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Stats contains build execution statistics.
type Stats struct {
	// Nodes is the number of structurally distinct graph nodes.
	Nodes int
	// Edges is the number of dependency edges.
	Edges int
	// Executed is the number of node bodies that ran.
	Executed int
	// Deduplicated is the number of renders avoided by structural sharing.
	Deduplicated int
	// OutputsWritten is the number of sinks fully realized on disk.
	OutputsWritten int
	// Failures is the number of sinks that did not produce output.
	Failures int
	// ConstructTime is the wall time of graph construction.
	ConstructTime time.Duration
	// ExecuteTime is the wall time of graph execution.
	ExecuteTime time.Duration
}
