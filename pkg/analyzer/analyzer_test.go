package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/helmcode/leadscore/pkg/model"
	"github.com/helmcode/leadscore/pkg/vision"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func barberProfile() model.LeadProfile {
	return model.LeadProfile{
		Username:    "studio_cuts",
		Bio:         "Master barber in Manhattan. Licensed. Book now: 555-123-4567",
		Followers:   12000,
		Posts:       340,
		AvgLikes:    600,
		ExternalURL: "https://studiocuts.example",
	}
}

func TestAnalyzeLeadWithoutScreenshot(t *testing.T) {
	report := New().AnalyzeLead(barberProfile())

	assert.Equal(t, "studio_cuts", report.Username)
	assert.Nil(t, report.VisionScore)

	require.NotNil(t, report.BioScore)
	assert.Equal(t, 10.0, report.BioScore.PitchScore)
	assert.Equal(t, "Beauty", report.BioScore.BusinessType)
	assert.Equal(t, "Manhattan", report.BioScore.Region)

	assert.Equal(t, model.ContactInfo{
		HasDirectContact: true,
		ContactMethods:   2,
		Methods:          []string{"Phone in bio", "Website link"},
	}, report.ContactInfo)

	assert.True(t, report.Activity.IsActive)
	assert.Equal(t, "High", report.Activity.EngagementTier)

	assert.Equal(t, 80, report.Lead.Score)
	assert.Equal(t, "HOT", report.Lead.Tier)
	assert.Equal(t, []string{
		"Excellent Bio Score",
		"Direct Contact Available",
		"Recently Active",
		"High Engagement Rate",
		"🔥 HOT LEAD",
	}, report.Lead.Factors)
}

func TestAnalyzeLeadWithScreenshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studio_headshot_professional_hd.jpg")
	require.NoError(t, os.WriteFile(path, make([]byte, 1200000), 0o600))

	p := barberProfile()
	p.Screenshot = path

	report := NewWithVision(vision.New(false)).AnalyzeLead(p)

	require.NotNil(t, report.VisionScore)
	assert.Equal(t, 7.4, report.VisionScore.ProfessionalScore)
	assert.Equal(t, 85, report.Lead.Score)
}

func TestAnalyzeLeadMissingScreenshot(t *testing.T) {
	p := barberProfile()
	p.Screenshot = filepath.Join(t.TempDir(), "missing.png")

	report := New().AnalyzeLead(p)

	require.NotNil(t, report.VisionScore)
	assert.Equal(t, vision.Default(), *report.VisionScore)
	// The 1.0 default scores no visual points.
	assert.Equal(t, 80, report.Lead.Score)
}

func TestAnalyzeLeadEmptyProfile(t *testing.T) {
	report := New().AnalyzeLead(model.LeadProfile{})

	require.NotNil(t, report.BioScore)
	assert.Equal(t, 1.0, report.BioScore.PitchScore)
	assert.Equal(t, "COLD", report.Lead.Tier)
	assert.Equal(t, 0, report.Lead.Score)
	assert.Equal(t, "Low", report.Lead.Confidence)
}
