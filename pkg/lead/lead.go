// Package lead combines bio, contact, activity and visual signals of a
// scraped profile into a 0-100 lead score with a follow-up tier.
package lead

import (
	"math"
	"regexp"

	"github.com/helmcode/leadscore/pkg/model"
)

var (
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	phoneRe    = regexp.MustCompile(`(\+?1?[-.\s]?)?(\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4})`)
	dmRe       = regexp.MustCompile(`(?i)\b(dm|message|contact|email)\b`)
	businessRe = regexp.MustCompile(`(?i)\b(booking|appointments|consultation|inquiry)\b`)
)

// ExtractContactInfo lists the contact methods visible on a profile.
func ExtractContactInfo(p model.LeadProfile) model.ContactInfo {
	methods := []string{}
	direct := false

	if p.Bio != "" {
		if emailRe.MatchString(p.Bio) {
			methods = append(methods, "Email in bio")
			direct = true
		}
		if phoneRe.MatchString(p.Bio) {
			methods = append(methods, "Phone in bio")
			direct = true
		}
		if dmRe.MatchString(p.Bio) {
			methods = append(methods, "DM welcome")
		}
		if businessRe.MatchString(p.Bio) {
			methods = append(methods, "Business inquiries")
		}
	}

	if p.ExternalURL != "" {
		methods = append(methods, "Website link")
	}

	return model.ContactInfo{
		HasDirectContact: direct,
		ContactMethods:   len(methods),
		Methods:          methods,
	}
}

// AnalyzeActivity estimates activity and engagement. Without average likes
// the engagement rate is 0.
func AnalyzeActivity(p model.LeadProfile) model.ActivityData {
	rate := 0.0
	tier := "Low"
	high := false

	if p.Followers > 0 && p.AvgLikes > 0 {
		rate = p.AvgLikes / float64(p.Followers) * 100
		switch {
		case rate > 3:
			tier = "High"
			high = true
		case rate > 1:
			tier = "Good"
		case rate > 0.5:
			tier = "Average"
		}
	}

	return model.ActivityData{
		IsActive:         p.Posts > 0 && !p.IsPrivate,
		IsVerified:       p.IsVerified,
		EngagementRate:   math.Round(rate*100) / 100,
		EngagementTier:   tier,
		IsHighEngagement: high,
	}
}

// tier is a lead score bucket. Tiers are checked from the top.
type tier struct {
	Min      int
	Name     string
	Priority int
	Action   string
	Factor   string
}

var tiers = []tier{
	{80, "HOT", 1, "Contact immediately!", "🔥 HOT LEAD"},
	{60, "WARM", 2, "Contact within 24 hours", "🌟 WARM LEAD"},
	{40, "QUALIFIED", 3, "Add to outreach campaign", "💼 QUALIFIED LEAD"},
}

var cold = tier{Name: "COLD", Priority: 4, Action: "Add to nurture sequence"}

const maxLeadScore = 100

// Score computes the lead score from the bio pitch score, the profile
// image's professional score, contact info and activity.
func Score(pitch, professional float64, contact model.ContactInfo, activity model.ActivityData) model.LeadScore {
	s := 0
	factors := []string{}
	add := func(points int, factor string) {
		s += points
		if factor != "" {
			factors = append(factors, factor)
		}
	}

	switch {
	case pitch >= 8:
		add(30, "Excellent Bio Score")
	case pitch >= 6:
		add(20, "Good Bio Score")
	case pitch >= 4:
		add(10, "Average Bio Score")
	}

	if contact.HasDirectContact {
		add(15, "Direct Contact Available")
	}
	switch {
	case contact.ContactMethods >= 3:
		add(10, "Multiple Contact Methods")
	case contact.ContactMethods >= 1:
		add(5, "")
	}

	if activity.IsActive {
		add(15, "Recently Active")
	}
	if activity.HasActiveStory {
		add(5, "Active Stories")
	}
	if activity.IsVerified {
		add(3, "Verified Account")
	}

	switch {
	case activity.IsHighEngagement:
		add(15, "High Engagement Rate")
	case activity.EngagementTier == "Good":
		add(10, "Good Engagement")
	case activity.EngagementTier == "Average":
		add(5, "")
	}

	switch {
	case professional >= 8:
		add(10, "Professional Visuals")
	case professional >= 6:
		add(5, "")
	}

	t := cold
	for _, candidate := range tiers {
		if s >= candidate.Min {
			t = candidate
			factors = append(factors, candidate.Factor)
			break
		}
	}

	return model.LeadScore{
		Score:      min(s, maxLeadScore),
		Tier:       t.Name,
		Priority:   t.Priority,
		Action:     t.Action,
		Confidence: confidence(len(factors)),
		Factors:    factors,
	}
}

func confidence(factors int) string {
	switch {
	case factors >= 3:
		return "High"
	case factors >= 2:
		return "Medium"
	default:
		return "Low"
	}
}
