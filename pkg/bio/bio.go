// Package bio implements the basic bio scorer: ordered keyword groups for
// language, region and business type plus additive pitch and urgency scores.
package bio

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/helmcode/leadscore/pkg/model"
	"github.com/helmcode/leadscore/pkg/score"
)

const (
	baseScore    = 2.0
	defaultScore = 1.0

	langEnglish = "English"
	unknown     = "Unknown"
)

// group is a labelled list of terms. Groups are checked in declaration
// order and the first match wins.
type group struct {
	Label string
	Terms []string
}

// increment adds Points when any of Terms is present.
type increment struct {
	Points float64
	Terms  []string
}

var languages = []group{
	{"Spanish", []string{"el", "la", "de", "y", "en", "con", "para", "por", "una", "un", "es", "mi", "tu", "su", "que", "pero", "como", "muy", "más", "también", "hola", "gracias"}},
	{"French", []string{"le", "la", "et", "un", "une", "des", "pour", "avec", "est", "je", "tu", "il", "elle", "nous", "vous", "ils", "elles", "bonjour", "merci"}},
	{"German", []string{"der", "die", "das", "und", "ist", "ein", "eine", "mit", "für", "ich", "du", "er", "sie", "wir", "ihr", "hallo", "danke"}},
}

var regions = []group{
	{"Los Angeles", []string{"la ", "los angeles", "hollywood", "beverly hills", "santa monica"}},
	{"New York", []string{"nyc", "new york", "manhattan", "brooklyn", "queens"}},
	{"London", []string{"london", "uk", "england"}},
	{"Paris", []string{"paris", "france"}},
	{"Toronto", []string{"toronto", "canada"}},
}

var businesses = []group{
	{"Barber", []string{"barber", "haircut", "fade", "beard trim"}},
	{"Salon", []string{"salon", "hair salon", "beauty", "nails"}},
	{"Photographer", []string{"photographer", "photography", "photos", "photoshoot"}},
	{"Artist", []string{"artist", "art", "painting", "drawing"}},
	{"Coach", []string{"coach", "coaching", "mentor", "training"}},
	{"Fitness/Gym", []string{"gym", "fitness", "personal trainer", "workout"}},
	{"Agency", []string{"agency", "marketing", "advertising"}},
	{"Catering", []string{"catering", "food", "chef", "restaurant"}},
}

var pitchIncrements = []increment{
	{3.0, []string{"dm me", "dm for", "book now", "booking", "appointments"}},
	{2.0, []string{"link in bio", "website", "book online"}},
	{1.5, []string{"professional", "certified", "licensed"}},
	{1.0, []string{"years experience", "expert", "specialist"}},
}

// contactRe matches contact glyphs (including the emoji variation selector)
// or contact words.
var contactRe = regexp.MustCompile(`[📧📞☎️📲]|email|phone|call|contact`)

const contactPoints = 1.5

var urgencyIncrements = []increment{
	{3.0, []string{"limited time", "special offer", "discount", "sale"}},
	{2.5, []string{"book now", "call today", "available now"}},
	{2.0, []string{"dm me", "message me", "contact me"}},
	{1.5, []string{"new", "opening", "grand opening"}},
}

// Default returns the result used for empty input.
func Default() model.BioAnalysis {
	return model.BioAnalysis{
		PitchScore:   defaultScore,
		UrgencyScore: defaultScore,
		Language:     langEnglish,
		Region:       unknown,
		BusinessType: unknown,
	}
}

// Score analyzes text and returns its basic bio scores.
func Score(text string) model.BioAnalysis {
	if text == "" {
		return Default()
	}

	lower := strings.ToLower(text)

	result := model.BioAnalysis{
		PitchScore:   score.Round(pitchScore(lower), 1),
		UrgencyScore: score.Round(urgencyScore(lower), 1),
		Language:     DetectLanguage(lower),
		Region:       firstMatch(regions, lower, unknown),
		BusinessType: firstMatch(businesses, lower, "Business"),
	}

	slog.Debug("bio scored",
		"language", result.Language,
		"region", result.Region,
		"business", result.BusinessType,
		"pitch", result.PitchScore,
		"urgency", result.UrgencyScore)

	return result
}

// DetectLanguage returns the first language with a whole-word marker in
// lower, falling back to English.
func DetectLanguage(lower string) string {
	words := score.Words(lower)
	for _, g := range languages {
		if score.HasWord(words, g.Terms) {
			return g.Label
		}
	}
	return langEnglish
}

func firstMatch(groups []group, lower, fallback string) string {
	for _, g := range groups {
		if score.ContainsAny(lower, g.Terms) {
			return g.Label
		}
	}
	return fallback
}

func pitchScore(lower string) float64 {
	s := addIncrements(baseScore, pitchIncrements, lower)
	if contactRe.MatchString(lower) {
		s += contactPoints
	}
	return score.Cap(s, score.Max)
}

func urgencyScore(lower string) float64 {
	return score.Cap(addIncrements(baseScore, urgencyIncrements, lower), score.Max)
}

func addIncrements(s float64, incs []increment, lower string) float64 {
	for _, inc := range incs {
		if score.ContainsAny(lower, inc.Terms) {
			s += inc.Points
		}
	}
	return s
}
