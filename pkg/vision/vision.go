// Package vision estimates how professional a profile image looks from its
// file size and filename. Pixels are never read for scoring; the optional
// inspection in inspect.go only reports facts alongside the scores.
package vision

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/helmcode/leadscore/pkg/model"
	"github.com/helmcode/leadscore/pkg/score"
)

const bytesPerMB = 1024 * 1024

// Analyzer scores image files.
type Analyzer struct {
	inspect bool
	stat    func(name string) (fs.FileInfo, error)
}

// New creates an analyzer. With inspect set, results also carry decoded
// image facts in ImageInfo.
func New(inspect bool) *Analyzer {
	return &Analyzer{
		inspect: inspect,
		stat:    os.Stat,
	}
}

// Default returns the result for a missing image.
func Default() model.VisionAnalysis {
	return model.VisionAnalysis{
		ProfessionalScore:      1.0,
		QualityScore:           1.0,
		BrandingScore:          1.0,
		CompositionScore:       1.0,
		FileSizeMB:             0.0,
		ImageQuality:           "Unknown",
		ProfessionalRating:     "Unknown",
		KeyStrengths:           []string{},
		ImprovementSuggestions: []string{"No image available"},
		Marketability:          "Unknown",
		Recommendation:         recNoImage,
	}
}

// Failure returns the result for an image that could not be analyzed.
func Failure(msg string) model.VisionAnalysis {
	return model.VisionAnalysis{
		ImageQuality:           "Error",
		ProfessionalRating:     "Error",
		KeyStrengths:           []string{},
		ImprovementSuggestions: []string{"Error: " + msg},
		Marketability:          "Cannot assess",
		Recommendation:         recError,
	}
}

// Analyze scores the image at path. It never fails: a missing file yields
// Default and any other problem yields Failure.
func (a *Analyzer) Analyze(path string) (result model.VisionAnalysis) {
	if path == "" {
		return Default()
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("vision analysis panic", "path", path, "panic", r)
			result = Failure(fmt.Sprint(r))
		}
	}()

	info, err := a.stat(path)
	if err != nil {
		if notExist(err) {
			slog.Debug("image not found", "path", path, "error", err)
			return Default()
		}
		slog.Debug("image stat failed", "path", path, "error", err)
		return Failure(err.Error())
	}

	size := info.Size()
	name := strings.ToLower(filepath.Base(path))

	quality := QualityScore(size, name)
	professional := ProfessionalismScore(size, name)
	branding := BrandingScore(name)
	composition := CompositionScore(size, name)
	overall := Overall(quality, professional, branding, composition)

	slog.Debug("image scored",
		"file", name,
		"bytes", size,
		"quality", quality,
		"professional", professional,
		"branding", branding,
		"composition", composition,
		"overall", overall)

	result = model.VisionAnalysis{
		ProfessionalScore:      score.Round(overall, 1),
		QualityScore:           score.Round(quality, 1),
		BrandingScore:          score.Round(branding, 1),
		CompositionScore:       score.Round(composition, 1),
		FileSizeMB:             score.Round(float64(size)/bytesPerMB, 2),
		ImageQuality:           QualityRating(quality),
		ProfessionalRating:     ProfessionalRating(overall),
		KeyStrengths:           Strengths(quality, professional, branding),
		ImprovementSuggestions: Suggestions(quality, professional, branding),
		Marketability:          Marketability(overall, branding),
		Recommendation:         Recommend(overall, quality),
	}

	if a.inspect {
		result.ImageInfo = Inspect(path)
	}

	return result
}

// notExist reports whether err means there is no file at the path. A path
// through a regular file or with an overlong name cannot exist either.
func notExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, syscall.ENOTDIR) ||
		errors.Is(err, syscall.ENAMETOOLONG)
}

// QualityScore rates resolution from file size and resolution keywords.
// Files under 10KB are treated as placeholders.
func QualityScore(size int64, name string) float64 {
	s := 3.0
	switch {
	case size >= sizeHuge:
		s += 4.0
	case size >= sizeLarge:
		s += 3.0
	case size >= sizeMedium:
		s += 2.0
	case size >= sizeSmall:
		s += 1.0
	default:
		s = 1.0
	}
	s += float64(score.CountContains(name, resolutionKeywords))
	return score.Cap(s, score.Max)
}

// ProfessionalismScore rates presentation from size and context keywords.
func ProfessionalismScore(size int64, name string) float64 {
	s := 4.0
	switch {
	case size >= sizeLarge:
		s += 2.0
	case size >= sizeMedium:
		s += 1.0
	case size < sizeTiny:
		s = 2.0
	}
	s += float64(score.CountContains(name, professionalKeywords))
	return score.Cap(s, score.Max)
}

// BrandingScore adds 1.5 per branding keyword in the filename.
func BrandingScore(name string) float64 {
	s := 3.0
	for _, kw := range brandingKeywords {
		if strings.Contains(name, kw) {
			s += 1.5
		}
	}
	return score.Cap(s, score.Max)
}

// CompositionScore rates framing from size and composition keywords.
func CompositionScore(size int64, name string) float64 {
	s := 4.0
	switch {
	case size > sizeHuge:
		s += 2.0
	case size > sizeLarge:
		s += 1.0
	}
	s += float64(score.CountContains(name, compositionKeywords))
	return score.Cap(s, score.Max)
}

// Overall is the weighted composite of the four sub-scores.
func Overall(quality, professional, branding, composition float64) float64 {
	weighted := quality*qualityWeight +
		professional*professionalWeight +
		branding*brandingWeight +
		composition*compositionWeight
	return score.Cap(weighted, score.Max)
}

// QualityRating labels a quality sub-score.
func QualityRating(s float64) string {
	switch {
	case s >= 8.0:
		return "Excellent"
	case s >= 6.0:
		return "Good"
	case s >= 4.0:
		return "Average"
	default:
		return "Needs Improvement"
	}
}

// ProfessionalRating labels the composite score.
func ProfessionalRating(s float64) string {
	switch {
	case s >= 8.5:
		return "Highly Professional"
	case s >= 7.0:
		return "Professional"
	case s >= 5.0:
		return "Semi-Professional"
	default:
		return "Casual"
	}
}

// Strengths lists the sub-scores that stand out.
func Strengths(quality, professional, branding float64) []string {
	var out []string
	if quality >= 7.0 {
		out = append(out, "High Image Quality")
	}
	if professional >= 7.0 {
		out = append(out, "Professional Presentation")
	}
	if branding >= 6.0 {
		out = append(out, "Strong Branding Elements")
	}
	if len(out) == 0 {
		return []string{"Basic Profile Image"}
	}
	return out
}

// Suggestions lists improvements for weak sub-scores.
func Suggestions(quality, professional, branding float64) []string {
	var out []string
	if quality < 6.0 {
		out = append(out, "Improve image quality - use higher resolution")
	}
	if professional < 6.0 {
		out = append(out, "Consider more professional presentation")
	}
	if branding < 5.0 {
		out = append(out, "Add branding elements")
	}
	if len(out) == 0 {
		return []string{"Image meets standards"}
	}
	return out
}

// Marketability rates the average of the composite and branding scores.
func Marketability(overall, branding float64) string {
	combined := (overall + branding) / 2
	switch {
	case combined >= 8.0:
		return "High - Excellent for marketing"
	case combined >= 6.0:
		return "Good - Suitable for business use"
	case combined >= 4.0:
		return "Moderate - Could be improved"
	default:
		return "Low - Needs professional photography"
	}
}

// Recommend maps the average of the composite and quality scores to a verdict.
func Recommend(overall, quality float64) string {
	avg := (overall + quality) / 2
	switch {
	case avg >= 8.5:
		return recExcellent
	case avg >= 7.0:
		return recProfessional
	case avg >= 5.0:
		return recGood
	case avg >= 3.0:
		return recBasic
	default:
		return recNeedsWork
	}
}
