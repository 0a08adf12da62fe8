package model

// BioAnalysis is the result of the basic bio scorer.
type BioAnalysis struct {
	PitchScore   float64 `json:"pitch_score" yaml:"pitch_score"`
	UrgencyScore float64 `json:"urgency_score" yaml:"urgency_score"`
	Language     string  `json:"language" yaml:"language"`
	Region       string  `json:"region" yaml:"region"`
	BusinessType string  `json:"business_type" yaml:"business_type"`
}

// QualifyAnalysis is the result of the refined bio scorer.
type QualifyAnalysis struct {
	PitchScore         float64  `json:"pitch_score" yaml:"pitch_score"`
	UrgencyScore       float64  `json:"urgency_score" yaml:"urgency_score"`
	CredibilityScore   float64  `json:"credibility_score" yaml:"credibility_score"`
	ContactReadiness   float64  `json:"contact_readiness" yaml:"contact_readiness"`
	BusinessType       string   `json:"business_type" yaml:"business_type"`
	BusinessConfidence float64  `json:"business_confidence" yaml:"business_confidence"`
	RevenuePotential   float64  `json:"revenue_potential" yaml:"revenue_potential"`
	Language           string   `json:"language" yaml:"language"`
	Region             string   `json:"region" yaml:"region"`
	RegionValue        string   `json:"region_value" yaml:"region_value"`
	KeyIndicators      []string `json:"key_indicators" yaml:"key_indicators"`
	Recommendation     string   `json:"recommendation" yaml:"recommendation"`
}

// VisionAnalysis is the result of the vision scorer.
type VisionAnalysis struct {
	ProfessionalScore      float64    `json:"professional_score" yaml:"professional_score"`
	QualityScore           float64    `json:"quality_score" yaml:"quality_score"`
	BrandingScore          float64    `json:"branding_score" yaml:"branding_score"`
	CompositionScore       float64    `json:"composition_score" yaml:"composition_score"`
	FileSizeMB             float64    `json:"file_size_mb" yaml:"file_size_mb"`
	ImageQuality           string     `json:"image_quality" yaml:"image_quality"`
	ProfessionalRating     string     `json:"professional_rating" yaml:"professional_rating"`
	KeyStrengths           []string   `json:"key_strengths" yaml:"key_strengths"`
	ImprovementSuggestions []string   `json:"improvement_suggestions" yaml:"improvement_suggestions"`
	Marketability          string     `json:"marketability" yaml:"marketability"`
	Recommendation         string     `json:"recommendation" yaml:"recommendation"`
	ImageInfo              *ImageInfo `json:"image_info,omitempty" yaml:"image_info,omitempty"`
}

// ImageInfo holds decoded facts about an image. It is informational only
// and never feeds into any vision score.
type ImageInfo struct {
	Format    string `json:"format,omitempty" yaml:"format,omitempty"`
	Width     int    `json:"width,omitempty" yaml:"width,omitempty"`
	Height    int    `json:"height,omitempty" yaml:"height,omitempty"`
	Hash      string `json:"hash,omitempty" yaml:"hash,omitempty"`
	Artist    string `json:"artist,omitempty" yaml:"artist,omitempty"`
	Copyright string `json:"copyright,omitempty" yaml:"copyright,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

// VisionFailure is printed when the vision command itself fails.
type VisionFailure struct {
	ProfessionalScore float64 `json:"professional_score" yaml:"professional_score"`
	Error             string  `json:"error" yaml:"error"`
}
