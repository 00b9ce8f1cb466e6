package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build information, set via ldflags:
//
//	go build -ldflags "-X github.com/katalvlaran/pipeloop/internal/cli.Version=v1.0.0 \
//	    -X github.com/katalvlaran/pipeloop/internal/cli.Commit=$(git rev-parse HEAD)"
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// versionText is printed by both --version and the version command.
func versionText() string {
	return fmt.Sprintf("%s version %s\ncommit: %s\nbuilt: %s\n", appName, Version, Commit, Date)
}

// versionCommand creates the version command.
func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), versionText())
		},
	}
}
