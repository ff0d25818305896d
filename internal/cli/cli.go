// Package cli implements the commentbox command-line interface.
package cli

import (
	"io"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/commentbox/pkg/buildinfo"
	"github.com/matzehuels/commentbox/pkg/config"
	"github.com/matzehuels/commentbox/pkg/observability"
	"github.com/matzehuels/commentbox/pkg/style"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = config.AppName

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

	// Registry holds the built-in styles plus whatever the config file adds.
	// It is populated once per invocation before any subcommand runs.
	Registry *style.Registry

	configPath string
	noConfig   bool

	// copyText writes to the system clipboard; swapped out in tests.
	copyText func(string) error
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(w, level),
		Registry: style.NewRegistry(),
		copyText: clipboard.WriteAll,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Commentbox draws decorative comment boxes around text",
		Long: `Commentbox wraps lines of text in a decorative /* ... */ comment box.

Glyph styles, padding, alignment and sizing come from the built-in defaults,
an optional config file, and per-invocation flags, in that order.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			observability.SetRenderHooks(logHooks{logger: c.Logger})
			observability.SetRegistryHooks(logHooks{logger: c.Logger})
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/"+appName+"/config.toml)")
	root.PersistentFlags().BoolVar(&c.noConfig, "no-config", false, "ignore the config file")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.stylesCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config Loading
// =============================================================================

// loadConfig applies the config file to the registry. An explicit --config
// path must exist; the default location is optional.
func (c *CLI) loadConfig() error {
	if c.noConfig {
		return nil
	}
	path := c.configPath
	if path == "" {
		found, ok := config.Find()
		if !ok {
			c.Logger.Debug("no config file", "dir", config.DefaultDir())
			return nil
		}
		path = found
	}

	f, err := config.Load(path)
	if err != nil {
		return err
	}
	for _, key := range f.Unknown {
		c.Logger.Warn("unknown config key", "key", key, "file", path)
	}
	if err := f.Apply(c.Registry); err != nil {
		return err
	}
	c.Logger.Debug("loaded config", "file", path, "styles", len(f.Styles))
	return nil
}
