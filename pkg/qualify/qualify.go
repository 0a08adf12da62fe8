// Package qualify implements the refined bio scorer. It weighs business
// category, urgency, credibility, contact readiness and region to produce a
// pitch score and a follow-up recommendation.
package qualify

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/helmcode/leadscore/pkg/model"
	"github.com/helmcode/leadscore/pkg/score"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	minBioRunes = 5

	basePitch   = 3.0
	baseUrgency = 2.0

	maxCredibility = 2.0
	maxContact     = 2.0

	minLanguageMarkers = 2
)

var phoneRe = regexp.MustCompile(`\d{3}[-.]?\d{3}[-.]?\d{4}`)

// Business is the winning business category for a bio.
type Business struct {
	Type              string
	Confidence        float64
	ScoreContribution float64
	RevenuePotential  float64
}

// Region is the market a bio mentions.
type Region struct {
	Name       string
	Value      string
	Multiplier float64
}

// Default returns the result for empty or too-short bios.
func Default() model.QualifyAnalysis {
	return model.QualifyAnalysis{
		PitchScore:     1.0,
		UrgencyScore:   1.0,
		BusinessType:   "Unknown",
		Language:       "English",
		Region:         "Unknown",
		RegionValue:    "Standard",
		KeyIndicators:  []string{},
		Recommendation: recInsufficient,
	}
}

// Analyze scores a bio.
func Analyze(text string) model.QualifyAnalysis {
	if n := utf8.RuneCountInString(strings.TrimSpace(text)); n < minBioRunes {
		slog.Debug("bio too short", "runes", n)
		return Default()
	}

	lower := strings.ToLower(text)

	business := AnalyzeBusiness(lower)
	urgency := UrgencyScore(lower)
	credibility := CredibilityScore(lower)
	contact := ContactReadiness(lower)
	region := AnalyzeRegion(lower)

	pitch := basePitch
	pitch += business.ScoreContribution
	pitch += credibility
	pitch += contact
	pitch *= region.Multiplier
	pitch = score.Cap(pitch, score.Max)

	slog.Debug("bio qualified",
		"business", business.Type,
		"confidence", business.Confidence,
		"region", region.Name,
		"multiplier", region.Multiplier,
		"pitch", pitch,
		"urgency", urgency)

	return model.QualifyAnalysis{
		PitchScore:         score.Round(pitch, 1),
		UrgencyScore:       score.Round(urgency, 1),
		CredibilityScore:   score.Round(credibility, 1),
		ContactReadiness:   score.Round(contact, 1),
		BusinessType:       business.Type,
		BusinessConfidence: score.Round(business.Confidence, 1),
		RevenuePotential:   business.RevenuePotential,
		Language:           DetectLanguage(lower),
		Region:             region.Name,
		RegionValue:        region.Value,
		KeyIndicators:      KeyIndicators(lower),
		Recommendation:     Recommend(pitch, urgency, business),
	}
}

// AnalyzeBusiness picks the category with the strictly highest confidence.
// A later category only wins when it beats the stored, clamped best.
func AnalyzeBusiness(lower string) Business {
	best := Business{
		Type:              "General Business",
		Confidence:        0.1,
		ScoreContribution: 0.5,
		RevenuePotential:  5.0,
	}

	for _, c := range businessCategories {
		confidence := 0.0
		for _, kw := range c.Keywords {
			if strings.Contains(lower, kw) {
				confidence += keywordWeight
			}
		}
		for _, kw := range c.HighValue {
			if strings.Contains(lower, kw) {
				confidence += highValueWeight
			}
		}

		if confidence > best.Confidence {
			best = Business{
				Type:              c.Name,
				Confidence:        score.Cap(confidence, 1.0),
				ScoreContribution: score.Cap(confidence*3, 3.0),
				RevenuePotential:  c.RevenuePotential,
			}
		}
	}

	return best
}

// UrgencyScore sums every urgency keyword match on top of the base.
func UrgencyScore(lower string) float64 {
	return score.Cap(sumMatches(baseUrgency, urgencyTiers, lower), score.Max)
}

// CredibilityScore sums trust signals, capped at 2.
func CredibilityScore(lower string) float64 {
	return score.Cap(sumMatches(0, credibilitySignals, lower), maxCredibility)
}

// ContactReadiness sums contact signals plus email and phone presence,
// capped at 2.
func ContactReadiness(lower string) float64 {
	s := sumMatches(0, contactSignals, lower)
	if strings.Contains(lower, "@") || strings.Contains(lower, emailGlyph) {
		s += emailPoints
	}
	if phoneRe.MatchString(lower) {
		s += phonePoints
	}
	return score.Cap(s, maxContact)
}

// AnalyzeRegion returns the first region keyword found, scanning tiers from
// the most valuable down.
func AnalyzeRegion(lower string) Region {
	for _, tier := range regionTiers {
		for _, kw := range tier.Keywords {
			if strings.Contains(lower, kw) {
				return Region{
					Name:       cases.Title(language.English).String(kw),
					Value:      tier.Value,
					Multiplier: tier.Multiplier,
				}
			}
		}
	}
	return Region{Name: "Unknown", Value: "Standard", Multiplier: 1.0}
}

// DetectLanguage counts space-delimited Spanish and French markers. German
// is not detected by this scorer.
func DetectLanguage(lower string) string {
	padded := " " + lower + " "
	count := func(markers []string) int {
		n := 0
		for _, m := range markers {
			if strings.Contains(padded, " "+m+" ") {
				n++
			}
		}
		return n
	}

	switch {
	case count(spanishMarkers) >= minLanguageMarkers:
		return "Spanish"
	case count(frenchMarkers) >= minLanguageMarkers:
		return "French"
	default:
		return "English"
	}
}

// KeyIndicators lists the labels whose terms appear in lower, in fixed order.
func KeyIndicators(lower string) []string {
	out := []string{}
	for _, ind := range keyIndicators {
		if score.ContainsAny(lower, ind.Terms) {
			out = append(out, ind.Label)
		}
	}
	return out
}

// Recommend maps pitch, urgency and industry value to a follow-up label.
func Recommend(pitch, urgency float64, business Business) string {
	switch {
	case pitch >= 8.5 && urgency >= 7:
		return recHot
	case pitch >= 7 && urgency >= 5:
		return recWarm
	case pitch >= 5:
		return recQualified
	case business.RevenuePotential >= 8:
		return recHighValue
	default:
		return recStandard
	}
}

func sumMatches(base float64, groups []weighted, lower string) float64 {
	s := base
	for _, g := range groups {
		for _, kw := range g.Keywords {
			if strings.Contains(lower, kw) {
				s += g.Points
			}
		}
	}
	return s
}
