package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/bpos/internal/cli"
	"github.com/example/bpos/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "bpos",
		Short:   "bpos - Blueprint OS project lifecycle tracker",
		Version: version.String(),
		Long: `bpos tracks projects through a fixed lifecycle from planning to live.
Readiness gates between states check that the right artifacts, research,
decisions, tasks, and tests exist before a project moves forward.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.AppCmd())
	rootCmd.AddCommand(cli.ProjectCmd())

	// Entity commands
	rootCmd.AddCommand(cli.ArtifactCmd())
	rootCmd.AddCommand(cli.TopicCmd())
	rootCmd.AddCommand(cli.ADRCmd())
	rootCmd.AddCommand(cli.TaskCmd())
	rootCmd.AddCommand(cli.TestCmd())
	rootCmd.AddCommand(cli.RiskCmd())

	rootCmd.AddCommand(cli.AssistantCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
