package cmd

import (
	"github.com/helmcode/leadscore/pkg/bio"
	"github.com/helmcode/leadscore/pkg/formatter"
	"github.com/spf13/cobra"
)

func NewBioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bio [TEXT]",
		Short: "Score a bio with the basic keyword scorer",
		Long: `Score a short profile bio for language, region, business type, pitch and urgency.

Examples:
  # Score a bio
  leadscore bio "Certified barber in NYC, book now! DM me"

  # Human readable output
  leadscore bio "Wedding photographer, link in bio" -o human`,
		Args: cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := bio.Score(argOrEmpty(args))
			return formatter.Display(cmd.OutOrStdout(), result, outputFormat)
		},
	}
}
