package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tilesmith/tilesmith/pkg/build"
	"github.com/tilesmith/tilesmith/pkg/catalogue"
	"github.com/tilesmith/tilesmith/pkg/errors"
)

// newBuildCmd creates the build command.
func newBuildCmd() *cobra.Command {
	var (
		jobs    int
		outRoot string
		svgRoot string
	)

	cmd := &cobra.Command{
		Use:   "build <tile-width>",
		Short: "Render the material catalogue into PNG textures",
		Long: `Render the material catalogue into PNG textures.

The build command expands every catalogue material into a task tree,
deduplicates shared layers into a single dependency graph, and renders the
graph concurrently. Each texture is written to <out>/<category>/<name>.png
at the given tile width.

A build with failed textures still writes every successful one; the command
then exits non-zero and lists the failures.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tileWidth, err := parseTileWidth(args[0])
			if err != nil {
				return err
			}
			return runBuild(cmd.Context(), build.Options{
				TileWidth: tileWidth,
				Jobs:      jobs,
				SVGRoot:   svgRoot,
				OutRoot:   outRoot,
			})
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "number of concurrent renders (default: number of CPUs)")
	cmd.Flags().StringVarP(&outRoot, "out", "o", build.DefaultOutRoot, "output directory")
	cmd.Flags().StringVar(&svgRoot, "svg", build.DefaultSVGRoot, "directory of vector sources")

	return cmd
}

// runBuild executes the full catalogue build and prints the summary.
func runBuild(ctx context.Context, opts build.Options) error {
	logger := loggerFromContext(ctx)
	opts.Logger = logger

	materials, err := catalogue.All()
	if err != nil {
		return fmt.Errorf("load catalogue: %w", err)
	}

	prog := newProgress(logger)
	runner := build.NewRunner(logger)
	result, err := runner.Execute(ctx, catalogue.Sinks(materials), opts)
	if err != nil {
		printError("Build failed")
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d textures", result.Stats.OutputsWritten))

	printSuccess("Built %s", StyleValue.Render(opts.OutRoot))
	printStats(
		fmt.Sprintf("%d textures", result.Stats.OutputsWritten),
		fmt.Sprintf("%d nodes", result.Stats.Nodes),
		fmt.Sprintf("%d reused", result.Stats.Deduplicated),
	)

	if result.Stats.Failures > 0 {
		printError("%d textures failed", result.Stats.Failures)
		for display, ferr := range result.Failed {
			printDetail("%s: %s", display, errors.UserMessage(ferr))
		}
		return fmt.Errorf("%d of %d textures failed", result.Stats.Failures, len(materials))
	}
	return nil
}
