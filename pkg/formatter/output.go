package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/helmcode/leadscore/pkg/config"
	"github.com/helmcode/leadscore/pkg/model"
	"gopkg.in/yaml.v3"
)

// Display writes v to w in the given format. JSON is a single line.
func Display(w io.Writer, v any, format string) error {
	switch format {
	case config.OutputJSON:
		return displayJSON(w, v)
	case config.OutputYAML:
		return displayYAML(w, v)
	case config.OutputHuman:
		return displayHuman(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func displayJSON(w io.Writer, v any) error {
	output, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

func displayYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(v)
}

func displayHuman(w io.Writer, v any) error {
	switch a := v.(type) {
	case model.BioAnalysis:
		displayBio(w, a)
	case model.QualifyAnalysis:
		displayQualify(w, a)
	case model.VisionAnalysis:
		displayVision(w, a)
	case model.VisionFailure:
		color.New(color.FgRed, color.Bold).Fprintf(w, "✗ Vision analysis failed: %s\n", a.Error)
	case *model.LeadReport:
		displayLead(w, a)
	default:
		return fmt.Errorf("no human format for %T", v)
	}
	return nil
}

func displayBio(w io.Writer, a model.BioAnalysis) {
	header(w, "📝 BIO SCORE")
	scoreLine(w, "Pitch", a.PitchScore)
	scoreLine(w, "Urgency", a.UrgencyScore)
	field(w, "Language", a.Language)
	field(w, "Region", a.Region)
	field(w, "Business", a.BusinessType)
	footer(w)
}

func displayQualify(w io.Writer, a model.QualifyAnalysis) {
	header(w, "🎯 LEAD QUALIFICATION")
	scoreLine(w, "Pitch", a.PitchScore)
	scoreLine(w, "Urgency", a.UrgencyScore)
	fmt.Fprintf(w, "   %-12s %.1f / 2\n", "Credibility", a.CredibilityScore)
	fmt.Fprintf(w, "   %-12s %.1f / 2\n", "Contact", a.ContactReadiness)
	field(w, "Business", fmt.Sprintf("%s (confidence %.1f, revenue %.1f)", a.BusinessType, a.BusinessConfidence, a.RevenuePotential))
	field(w, "Language", a.Language)
	field(w, "Region", fmt.Sprintf("%s (%s)", a.Region, a.RegionValue))
	list(w, "🔑 KEY INDICATORS:", a.KeyIndicators)
	recommendation(w, a.Recommendation)
	footer(w)
}

func displayVision(w io.Writer, a model.VisionAnalysis) {
	header(w, "📸 PROFILE IMAGE")
	scoreLine(w, "Overall", a.ProfessionalScore)
	scoreLine(w, "Quality", a.QualityScore)
	scoreLine(w, "Branding", a.BrandingScore)
	scoreLine(w, "Composition", a.CompositionScore)
	field(w, "Size", fmt.Sprintf("%.2f MB", a.FileSizeMB))
	field(w, "Quality", a.ImageQuality)
	field(w, "Rating", a.ProfessionalRating)
	field(w, "Market", a.Marketability)
	if info := a.ImageInfo; info != nil {
		if info.Format != "" {
			field(w, "Format", fmt.Sprintf("%s %dx%d", info.Format, info.Width, info.Height))
		}
		if info.Hash != "" {
			field(w, "Hash", info.Hash)
		}
		if info.Artist != "" {
			field(w, "Artist", info.Artist)
		}
		if info.Copyright != "" {
			field(w, "Copyright", info.Copyright)
		}
		if info.Error != "" {
			field(w, "Inspect", color.YellowString(info.Error))
		}
	}
	list(w, "💪 STRENGTHS:", a.KeyStrengths)
	list(w, "💡 SUGGESTIONS:", a.ImprovementSuggestions)
	recommendation(w, a.Recommendation)
	footer(w)
}

func displayLead(w io.Writer, r *model.LeadReport) {
	title := "👤 LEAD REPORT"
	if r.Username != "" {
		title += ": @" + r.Username
	}
	header(w, title)

	tierColor := getTierColor(r.Lead.Tier)
	tierColor.Fprintf(w, "   %s %d/100 (priority %d, confidence %s)\n", r.Lead.Tier, r.Lead.Score, r.Lead.Priority, r.Lead.Confidence)
	fmt.Fprintf(w, "   Action: %s\n\n", r.Lead.Action)

	if r.BioScore != nil {
		scoreLine(w, "Pitch", r.BioScore.PitchScore)
		scoreLine(w, "Urgency", r.BioScore.UrgencyScore)
		field(w, "Business", r.BioScore.BusinessType)
		field(w, "Region", r.BioScore.Region)
	}
	if r.VisionScore != nil {
		scoreLine(w, "Visuals", r.VisionScore.ProfessionalScore)
	}
	field(w, "Engagement", fmt.Sprintf("%.2f%% (%s)", r.Activity.EngagementRate, r.Activity.EngagementTier))
	list(w, "📞 CONTACT METHODS:", r.ContactInfo.Methods)
	list(w, "📋 FACTORS:", r.Lead.Factors)
	footer(w)
}

func header(w io.Writer, title string) {
	fmt.Fprintln(w)
	color.New(color.FgCyan, color.Bold).Fprintln(w, title)
}

func footer(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintf(w, "💡 %s\n", color.HiBlackString("Run with -o json or -o yaml for machine-readable output"))
}

func scoreLine(w io.Writer, label string, score float64) {
	getScoreColor(score).Fprintf(w, "   %-12s %4.1f / 10  %s\n", label, score, bar(score))
}

func field(w io.Writer, label, value string) {
	fmt.Fprintf(w, "   %-12s %s\n", label, value)
}

func list(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(w)
	color.New(color.FgYellow, color.Bold).Fprintln(w, title)
	for i, item := range items {
		fmt.Fprintf(w, "   %d. %s\n", i+1, item)
	}
}

func recommendation(w io.Writer, text string) {
	fmt.Fprintln(w)
	color.New(color.FgGreen, color.Bold).Fprintln(w, "🚀 RECOMMENDATION:")
	fmt.Fprintln(w, wrapText(text, 80, "   "))
	fmt.Fprintln(w)
}

func bar(score float64) string {
	filled := int(score + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > 10 {
		filled = 10
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

func getScoreColor(score float64) *color.Color {
	switch {
	case score >= 8:
		return color.New(color.FgGreen, color.Bold)
	case score >= 6:
		return color.New(color.FgGreen)
	case score >= 4:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func getTierColor(tier string) *color.Color {
	switch strings.ToUpper(tier) {
	case "HOT":
		return color.New(color.FgRed, color.Bold)
	case "WARM":
		return color.New(color.FgYellow, color.Bold)
	case "QUALIFIED":
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgWhite)
	}
}

func wrapText(text string, width int, indent string) string {
	var result strings.Builder
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		words := strings.Fields(line)
		if len(words) == 0 {
			result.WriteString("\n")
			continue
		}

		currentLine := indent
		for _, word := range words {
			if len(currentLine)+len(word)+1 > width {
				result.WriteString(currentLine + "\n")
				currentLine = indent + word
			} else if currentLine == indent {
				currentLine += word
			} else {
				currentLine += " " + word
			}
		}

		if currentLine != indent {
			result.WriteString(currentLine + "\n")
		}
	}

	return strings.TrimSuffix(result.String(), "\n")
}
