package main

import (
	"fmt"
	"os"

	"github.com/helmcode/leadscore/cmd"
	"github.com/helmcode/leadscore/pkg/config"
	"github.com/spf13/cobra"
)

var (
	version = "v0.1.0" // Overwritten at build time
)

func main() {
	rootCmd := newRootCmd(config.Load())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "leadscore",
		Short: "Heuristic lead qualification for social profiles",
		Long: `leadscore scores social-media leads from their bio text and profile
screenshots using keyword tables and weighted heuristics. Every command
prints a single JSON object unless another output format is requested.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Disable automatic 'completion' command added by cobra
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	cmd.AddGlobalFlags(rootCmd, cfg)

	// Add subcommands
	rootCmd.AddCommand(
		cmd.NewBioCmd(),
		cmd.NewQualifyCmd(),
		cmd.NewVisionCmd(cfg),
		cmd.NewLeadCmd(cfg),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "leadscore version %s\n", version)
		},
	}
}
