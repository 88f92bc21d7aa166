// Package cli implements the msgprune command-line interface.
//
// The root command prunes every catalog in a messages directory down to the
// keys of a reference catalog. Subcommands check for extras without writing
// (for CI), list the key paths of a single catalog, and generate shell
// completions.
//
// Human-readable progress goes to stdout; logs go to stderr through
// charmbracelet/log, at debug level with --verbose.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/msgprune/pkg/prune"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for the binary and config file.
const appName = "msgprune"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out io.Writer
}

// New creates a new CLI instance. Logs are written to w; command output goes
// to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects command output.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// newRunner creates a prune runner for CLI use.
func (c *CLI) newRunner() *prune.Runner {
	return prune.NewRunner(c.Logger)
}
