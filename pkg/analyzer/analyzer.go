package analyzer

import (
	"log/slog"

	"github.com/helmcode/leadscore/pkg/lead"
	"github.com/helmcode/leadscore/pkg/model"
	"github.com/helmcode/leadscore/pkg/qualify"
	"github.com/helmcode/leadscore/pkg/vision"
)

// neutralProfessionalScore stands in for the vision score when a profile
// has no screenshot.
const neutralProfessionalScore = 5.0

type Analyzer struct {
	vision *vision.Analyzer
}

func New() *Analyzer {
	return &Analyzer{vision: vision.New(false)}
}

func NewWithVision(v *vision.Analyzer) *Analyzer {
	return &Analyzer{vision: v}
}

// AnalyzeLead runs the refined bio scorer, the vision scorer and the lead
// scorer over one profile.
func (a *Analyzer) AnalyzeLead(p model.LeadProfile) *model.LeadReport {
	bio := qualify.Analyze(p.Bio)

	professional := neutralProfessionalScore
	var visionScore *model.VisionAnalysis
	if p.Screenshot != "" {
		v := a.vision.Analyze(p.Screenshot)
		visionScore = &v
		professional = v.ProfessionalScore
	}

	contact := lead.ExtractContactInfo(p)
	activity := lead.AnalyzeActivity(p)
	score := lead.Score(bio.PitchScore, professional, contact, activity)

	slog.Debug("lead scored", "username", p.Username, "score", score.Score, "tier", score.Tier)

	return &model.LeadReport{
		Username:    p.Username,
		BioScore:    &bio,
		VisionScore: visionScore,
		ContactInfo: contact,
		Activity:    activity,
		Lead:        score,
	}
}
