package cmd

import (
	"fmt"
	"log/slog"

	"github.com/helmcode/leadscore/pkg/config"
	"github.com/helmcode/leadscore/pkg/formatter"
	"github.com/helmcode/leadscore/pkg/model"
	"github.com/helmcode/leadscore/pkg/vision"
	"github.com/spf13/cobra"
)

var visionInspect bool

func NewVisionCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vision [PATH]",
		Short: "Score a profile image from its file size and name",
		Long: `Score a profile image for quality, professionalism, branding and composition.
Scores come from the file size and filename only. Use --inspect to also report
the decoded format, dimensions, perceptual hash and authorship metadata.

Examples:
  # Score a screenshot
  leadscore vision screenshots/studio_headshot_hd.jpg

  # Include decoded image facts
  leadscore vision logo.png --inspect -o human`,
		Args: cobra.RangeArgs(0, 1),
		RunE: runVision,
	}

	cmd.Flags().BoolVar(&visionInspect, "inspect", cfg.Inspect, "Decode the image and report format, size, hash and metadata")

	return cmd
}

// runVision never fails: any problem is reported as a failure object on
// stdout.
func runVision(cmd *cobra.Command, args []string) (err error) {
	w := cmd.OutOrStdout()

	defer func() {
		if r := recover(); r != nil {
			err = reportVisionFailure(cmd, fmt.Errorf("%v", r))
		}
	}()

	result := vision.New(visionInspect).Analyze(argOrEmpty(args))
	if err := formatter.Display(w, result, outputFormat); err != nil {
		return reportVisionFailure(cmd, err)
	}
	return nil
}

func reportVisionFailure(cmd *cobra.Command, cause error) error {
	slog.Error("vision command failed", "error", cause)
	return formatter.Display(cmd.OutOrStdout(), model.VisionFailure{Error: cause.Error()}, config.OutputJSON)
}
