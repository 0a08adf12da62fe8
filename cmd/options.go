package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/helmcode/leadscore/pkg/config"
	"github.com/helmcode/leadscore/pkg/logging"
	"github.com/spf13/cobra"
)

var (
	outputFormat string
	debug        bool
	noColor      bool
)

// AddGlobalFlags registers the flags shared by every subcommand. Defaults
// come from cfg.
func AddGlobalFlags(root *cobra.Command, cfg *config.Config) {
	root.PersistentFlags().StringVarP(&outputFormat, "output", "o", cfg.Output, "Output format (json, yaml, human)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Print scoring decisions to stderr")
	root.PersistentFlags().BoolVar(&noColor, "no-color", cfg.NoColor, "Disable colored output")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		outputFormat = strings.ToLower(outputFormat)
		switch outputFormat {
		case config.OutputJSON, config.OutputYAML, config.OutputHuman:
		default:
			return fmt.Errorf("unsupported output format %q (want json, yaml or human)", outputFormat)
		}

		if noColor {
			color.NoColor = true
		}

		level := cfg.LogLevel
		if debug {
			level = "debug"
		}
		logging.SetDefault(cmd.ErrOrStderr(), level)
		return nil
	}
}

// argOrEmpty returns the single optional positional argument.
func argOrEmpty(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

func printSuccess(w io.Writer, msg string) {
	green := color.New(color.FgGreen)
	green.Fprintf(w, "✓ %s\n", msg)
}
