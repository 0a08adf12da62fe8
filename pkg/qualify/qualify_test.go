package qualify

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/helmcode/leadscore/pkg/logging"
	"github.com/helmcode/leadscore/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeShortBio(t *testing.T) {
	for _, text := range []string{"", "abcd", "  ab  ", "🔥🔥🔥🔥", "\n\t\n"} {
		assert.Equal(t, Default(), Analyze(text), "input %q", text)
	}
}

func TestAnalyzeShortBioLogsTrimmedRunes(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logging.SetDefault(&buf, "debug")

	Analyze("   héé   ")
	assert.Contains(t, buf.String(), "bio too short: runes=3")
}

func TestAnalyzeGeneralBusiness(t *testing.T) {
	want := model.QualifyAnalysis{
		PitchScore:         3.5,
		UrgencyScore:       2,
		CredibilityScore:   0,
		ContactReadiness:   0,
		BusinessType:       "General Business",
		BusinessConfidence: 0.1,
		RevenuePotential:   5,
		Language:           "English",
		Region:             "Unknown",
		RegionValue:        "Standard",
		KeyIndicators:      []string{},
		Recommendation:     recStandard,
	}

	assert.Equal(t, want, Analyze("hello there friends"))
}

func TestAnalyzeHotLead(t *testing.T) {
	got := Analyze("Top producer realtor in Manhattan. Licensed, 10 years experience. Book now, call today 555-123-4567 or email me@realty.com")

	assert.Equal(t, 10.0, got.PitchScore)
	assert.Equal(t, 8.0, got.UrgencyScore)
	assert.Equal(t, 1.7, got.CredibilityScore)
	assert.Equal(t, 2.0, got.ContactReadiness)
	assert.Equal(t, "Real Estate", got.BusinessType)
	assert.Equal(t, 1.0, got.BusinessConfidence)
	assert.Equal(t, 9.5, got.RevenuePotential)
	assert.Equal(t, "English", got.Language)
	assert.Equal(t, "Manhattan", got.Region)
	assert.Equal(t, "High Value", got.RegionValue)
	assert.Equal(t, []string{"Certified Professional", "Contact Ready", "Email Available", "Award Winner"}, got.KeyIndicators)
	assert.Equal(t, recHot, got.Recommendation)
}

func TestAnalyzeBusiness(t *testing.T) {
	t.Run("tie keeps earlier category", func(t *testing.T) {
		for _, text := range []string{"barber and photographer", "photographer and barber"} {
			b := AnalyzeBusiness(text)
			assert.Equal(t, "Beauty", b.Type)
			assert.InDelta(t, 0.3, b.Confidence, 1e-9)
			assert.InDelta(t, 0.9, b.ScoreContribution, 1e-9)
			assert.Equal(t, 7.5, b.RevenuePotential)
		}
	})

	t.Run("later category beats clamped best", func(t *testing.T) {
		b := AnalyzeBusiness("certified licensed barber; therapist at clinic, wellness and medical")
		assert.Equal(t, "Healthcare", b.Type)
		assert.Equal(t, 1.0, b.Confidence)
		assert.Equal(t, 3.0, b.ScoreContribution)
		assert.Equal(t, 9.5, b.RevenuePotential)
	})

	t.Run("no match", func(t *testing.T) {
		b := AnalyzeBusiness("hello there friends")
		assert.Equal(t, Business{Type: "General Business", Confidence: 0.1, ScoreContribution: 0.5, RevenuePotential: 5.0}, b)
	})
}

func TestContactReadiness(t *testing.T) {
	assert.Equal(t, 2.0, ContactReadiness("book now! certified stylist, call 555-123-4567"))
	assert.InDelta(t, 1.7, ContactReadiness("book a session: 555.123.4567"), 1e-9)
	assert.InDelta(t, 0.8, ContactReadiness("📧 in profile"), 1e-9)
	assert.Equal(t, 0.0, ContactReadiness("just vibes"))
}

func TestCredibilityScore(t *testing.T) {
	assert.InDelta(t, 1.1, CredibilityScore("licensed master stylist"), 1e-9)
	assert.Equal(t, 2.0, CredibilityScore("certified award winner, top expert agency"))
	assert.Equal(t, 0.0, CredibilityScore("hello"))
}

func TestUrgencyScore(t *testing.T) {
	assert.Equal(t, 2.0, UrgencyScore("hello"))
	assert.Equal(t, 5.0, UrgencyScore("dm me, now accepting clients"))
	assert.Equal(t, 10.0, UrgencyScore("book now, call today, limited time, urgent"))
}

func TestAnalyzeRegion(t *testing.T) {
	tests := []struct {
		text string
		want Region
	}{
		{"realtor in beverly hills", Region{Name: "Beverly Hills", Value: "High Value", Multiplier: 1.5}},
		{"chef in nyc and atlanta", Region{Name: "Nyc", Value: "Major Cities", Multiplier: 1.3}},
		{"austin bakery", Region{Name: "Austin", Value: "Medium Cities", Multiplier: 1.1}},
		{"somewhere quiet", Region{Name: "Unknown", Value: "Standard", Multiplier: 1.0}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AnalyzeRegion(tt.text), tt.text)
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"estilista de pelo con experiencia en miami", "Spanish"},
		{"je suis coiffeuse pour le salon et la boutique", "French"},
		{"ich bin ein friseur und trainer", "English"},
		{"la vida", "English"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectLanguage(tt.text), tt.text)
	}
}

func TestKeyIndicators(t *testing.T) {
	assert.Equal(t, []string{}, KeyIndicators("nothing here"))
	assert.Equal(t,
		[]string{"Certified Professional", "Contact Ready", "Email Available", "Award Winner", "Business Entity"},
		KeyIndicators("best llc, licensed, dm hi@shop.co"))
}

func TestRecommend(t *testing.T) {
	low := Business{RevenuePotential: 7.9}
	high := Business{RevenuePotential: 8}

	tests := []struct {
		name     string
		pitch    float64
		urgency  float64
		business Business
		want     string
	}{
		{"hot", 8.5, 7, low, recHot},
		{"warm", 8.4, 7, low, recWarm},
		{"qualified", 7, 4.9, low, recQualified},
		{"high value industry", 4.9, 10, high, recHighValue},
		{"standard", 4.9, 10, low, recStandard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Recommend(tt.pitch, tt.urgency, tt.business))
		})
	}
}

func TestAnalyzeBounds(t *testing.T) {
	inputs := []string{
		"Top producer realtor in Manhattan, million dollar luxury homes. Certified, licensed, award winner. DM, text, call, email, book now",
		"Estilista de pelo con experiencia en Miami",
		"Executive chef, catering company in Austin",
		"hello there friends",
	}

	for _, in := range inputs {
		got := Analyze(in)
		for _, v := range []float64{got.PitchScore, got.UrgencyScore, got.CredibilityScore, got.ContactReadiness} {
			assert.GreaterOrEqual(t, v, 0.0, in)
			assert.LessOrEqual(t, v, 10.0, in)
		}
		require.NotNil(t, got.KeyIndicators)
		assert.LessOrEqual(t, got.BusinessConfidence, 1.0)
	}
}
