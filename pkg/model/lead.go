package model

// LeadProfile is a scraped social profile fed to the lead scorer.
type LeadProfile struct {
	Username    string  `json:"username" yaml:"username"`
	DisplayName string  `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Bio         string  `json:"bio" yaml:"bio"`
	Followers   int64   `json:"followers" yaml:"followers"`
	Following   int64   `json:"following" yaml:"following"`
	Posts       int64   `json:"posts" yaml:"posts"`
	AvgLikes    float64 `json:"avg_likes,omitempty" yaml:"avg_likes,omitempty"`
	IsPrivate   bool    `json:"is_private" yaml:"is_private"`
	IsVerified  bool    `json:"is_verified" yaml:"is_verified"`
	ExternalURL string  `json:"external_url,omitempty" yaml:"external_url,omitempty"`
	Screenshot  string  `json:"screenshot,omitempty" yaml:"screenshot,omitempty"`
}

// ContactInfo summarizes the ways a lead can be reached.
type ContactInfo struct {
	HasDirectContact bool     `json:"has_direct_contact" yaml:"has_direct_contact"`
	ContactMethods   int      `json:"contact_methods" yaml:"contact_methods"`
	Methods          []string `json:"methods" yaml:"methods"`
}

// ActivityData summarizes account activity and engagement.
type ActivityData struct {
	IsActive         bool    `json:"is_active" yaml:"is_active"`
	HasActiveStory   bool    `json:"has_active_story" yaml:"has_active_story"`
	IsVerified       bool    `json:"is_verified" yaml:"is_verified"`
	EngagementRate   float64 `json:"engagement_rate" yaml:"engagement_rate"`
	EngagementTier   string  `json:"engagement_tier" yaml:"engagement_tier"`
	IsHighEngagement bool    `json:"is_high_engagement" yaml:"is_high_engagement"`
}

// LeadScore is the 0-100 composite and its tier.
type LeadScore struct {
	Score      int      `json:"score" yaml:"score"`
	Tier       string   `json:"tier" yaml:"tier"`
	Priority   int      `json:"priority" yaml:"priority"`
	Action     string   `json:"action" yaml:"action"`
	Confidence string   `json:"confidence" yaml:"confidence"`
	Factors    []string `json:"factors" yaml:"factors"`
}

// LeadReport bundles every analysis run for one profile.
type LeadReport struct {
	Username    string           `json:"username" yaml:"username"`
	BioScore    *QualifyAnalysis `json:"bio_score" yaml:"bio_score"`
	VisionScore *VisionAnalysis  `json:"vision_score" yaml:"vision_score"`
	ContactInfo ContactInfo      `json:"contact_info" yaml:"contact_info"`
	Activity    ActivityData     `json:"activity" yaml:"activity"`
	Lead        LeadScore        `json:"lead" yaml:"lead"`
}
