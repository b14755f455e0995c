package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/spf13/cobra"

	"github.com/tilesmith/tilesmith/pkg/build"
	"github.com/tilesmith/tilesmith/pkg/catalogue"
	"github.com/tilesmith/tilesmith/pkg/graph"
)

// newGraphCmd creates the graph debug command.
func newGraphCmd() *cobra.Command {
	var (
		output  string
		svgRoot string
	)

	cmd := &cobra.Command{
		Use:   "graph <tile-width>",
		Short: "Export the deduplicated build graph",
		Long: `Export the deduplicated build graph without rendering any texture.

The graph command constructs the same dependency graph a build would run and
writes it as Graphviz DOT, or as SVG when the output file ends in .svg.
Useful for inspecting how much of the catalogue collapses into shared
nodes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tileWidth, err := parseTileWidth(args[0])
			if err != nil {
				return err
			}
			return runGraph(cmd.Context(), build.Options{
				TileWidth: tileWidth,
				SVGRoot:   svgRoot,
			}, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "graph.dot", "output file (.dot or .svg)")
	cmd.Flags().StringVar(&svgRoot, "svg", build.DefaultSVGRoot, "directory of vector sources")

	return cmd
}

// runGraph constructs the catalogue graph and writes it to the output file.
func runGraph(ctx context.Context, opts build.Options, output string) error {
	logger := loggerFromContext(ctx)
	opts.Logger = logger

	materials, err := catalogue.All()
	if err != nil {
		return fmt.Errorf("load catalogue: %w", err)
	}

	runner := build.NewRunner(logger)
	g, err := runner.Construct(ctx, catalogue.Sinks(materials), opts)
	if err != nil {
		printError("Graph construction failed")
		return err
	}

	var dot bytes.Buffer
	if err := graph.WriteDOT(&dot, g); err != nil {
		return fmt.Errorf("export DOT: %w", err)
	}

	data := dot.Bytes()
	if strings.HasSuffix(output, ".svg") {
		if data, err = renderSVG(ctx, dot.String()); err != nil {
			return fmt.Errorf("render SVG: %w", err)
		}
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Exported build graph")
	printFile(output)
	printStats(
		fmt.Sprintf("%d materials", len(materials)),
		fmt.Sprintf("%d nodes", g.NodeCount()),
		fmt.Sprintf("%d edges", g.EdgeCount()),
	)
	return nil
}

// renderSVG renders a DOT graph to SVG using Graphviz.
func renderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
