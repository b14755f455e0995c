package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the tilesmith CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "tilesmith",
		Short:        "Tilesmith renders the resource pack textures from vector sources",
		Long:         `Tilesmith builds a game resource pack from SVG sources: the material catalogue expands into a deduplicated task graph, shared layers render exactly once, and every texture is written as a PNG tile.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("tilesmith %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newBuildCmd())
	root.AddCommand(newGraphCmd())

	return root.ExecuteContext(ctx)
}

// parseTileWidth parses the positional tile width argument. It fails fast
// with a clear message on anything but a positive integer.
func parseTileWidth(arg string) (int, error) {
	width, err := strconv.Atoi(arg)
	if err != nil || width <= 0 {
		return 0, fmt.Errorf("tile width must be a positive integer, got %q", arg)
	}
	return width, nil
}
