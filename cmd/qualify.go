package cmd

import (
	"github.com/helmcode/leadscore/pkg/formatter"
	"github.com/helmcode/leadscore/pkg/qualify"
	"github.com/spf13/cobra"
)

func NewQualifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "qualify [TEXT]",
		Short: "Qualify a lead from its bio with weighted industry, credibility and region signals",
		Long: `Qualify a lead from its bio. Business category, urgency, credibility,
contact readiness and region are combined into a pitch score and a recommendation.

Examples:
  # Qualify a bio
  leadscore qualify "Top producer realtor in Manhattan, call 555-123-4567"

  # YAML output
  leadscore qualify "Executive chef, catering company in Austin" -o yaml`,
		Args: cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := qualify.Analyze(argOrEmpty(args))
			return formatter.Display(cmd.OutOrStdout(), result, outputFormat)
		},
	}
}
