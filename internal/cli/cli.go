// Package cli implements the pipeloop command-line interface.
//
// The commands read a pipe grid from a file (or stdin when the path is "-"),
// run the solver and print the results:
//
//   - solve:   print the farthest-point distance and the enclosed area
//   - render:  print the filled 3× raster used for the area count
//   - version: print build information
//
// Defaults come from an optional TOML or YAML config file (see Config).
// Logging uses charmbracelet/log on stderr; --verbose switches to debug.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const (
	// appName is the application name used for display and the env prefix.
	appName = "pipeloop"

	// envConfig names the config file when --config is not given.
	envConfig = "PIPELOOP_CONFIG"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	config     *Config
}

// New creates a CLI that logs to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   appName,
		Short: "pipeloop measures the loop hidden in a grid of pipes",
		Long: `pipeloop reads a grid of pipe symbols (| - L J 7 F . S), follows the single
loop through the start cell S, and reports how far its farthest point is from
S and how many cells the loop encloses.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			c.config = cfg
			if verbose || cfg.Verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(versionText())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (.toml, .yaml); defaults to $"+envConfig)

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.versionCommand())

	return root
}

// loadConfig resolves the config path from the flag or the environment.
func (c *CLI) loadConfig() (*Config, error) {
	path := c.configPath
	if path == "" {
		path = os.Getenv(envConfig)
	}
	if path == "" {
		cfg := DefaultConfig()
		return &cfg, nil
	}
	c.Logger.Debug("loading config", "path", path)
	return LoadConfig(path)
}

// cfg returns the loaded config, or defaults when no command pre-run happened.
func (c *CLI) cfg() *Config {
	if c.config == nil {
		cfg := DefaultConfig()
		c.config = &cfg
	}
	return c.config
}
