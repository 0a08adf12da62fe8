package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/helmcode/leadscore/pkg/analyzer"
	"github.com/helmcode/leadscore/pkg/config"
	"github.com/helmcode/leadscore/pkg/formatter"
	"github.com/helmcode/leadscore/pkg/parser"
	"github.com/helmcode/leadscore/pkg/vision"
	"github.com/spf13/cobra"
)

var leadInspect bool

func NewLeadCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lead [FILE]",
		Short: "Compute a 0-100 lead score from a scraped profile",
		Long: `Compute a lead score from a profile document (YAML or JSON). The bio is
qualified, the screenshot (if any) is scored, and contact and activity
signals are combined into a HOT, WARM, QUALIFIED or COLD tier.

Reads standard input when FILE is omitted or "-". Input that is not a
mapping is treated as a bare bio.

Example profile:
  username: studio_cuts
  bio: "Master barber in Manhattan. Book now: 555-123-4567"
  followers: 12000
  posts: 340
  avg_likes: 600
  external_url: https://studiocuts.example
  screenshot: screenshots/studio_cuts.png

Examples:
  leadscore lead profile.yaml -o human
  cat profile.json | leadscore lead`,
		Args: cobra.RangeArgs(0, 1),
		RunE: runLead,
	}

	cmd.Flags().BoolVar(&leadInspect, "inspect", cfg.Inspect, "Decode the screenshot and report image facts")

	return cmd
}

func runLead(cmd *cobra.Command, args []string) error {
	raw, err := readInput(cmd, argOrEmpty(args))
	if err != nil {
		return err
	}

	profile, err := parser.ParseProfile(raw)
	if err != nil {
		return fmt.Errorf("failed to parse profile: %w", err)
	}

	human := outputFormat == config.OutputHuman
	var s *spinner.Spinner
	if human {
		s = spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
		s.Suffix = " Scoring lead..."
		s.Start()
	}

	report := analyzer.NewWithVision(vision.New(leadInspect)).AnalyzeLead(*profile)

	if human {
		s.Stop()
		printSuccess(cmd.ErrOrStderr(), "Lead scored")
	}

	return formatter.Display(cmd.OutOrStdout(), report, outputFormat)
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return b, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}
	return b, nil
}
