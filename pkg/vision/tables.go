package vision

// File size thresholds in bytes.
const (
	sizeTiny   = 1000
	sizeSmall  = 10000
	sizeMedium = 100000
	sizeLarge  = 500000
	sizeHuge   = 1000000
)

// Filename keywords per sub-score. Every keyword found adds its points.
var (
	resolutionKeywords   = []string{"4k", "1080", "720", "hd", "uhd"}
	professionalKeywords = []string{"professional", "business", "corporate", "headshot", "portrait"}
	brandingKeywords     = []string{"logo", "brand", "company", "business", "professional"}
	compositionKeywords  = []string{"headshot", "portrait", "professional", "studio"}
)

// Composite weights.
const (
	qualityWeight      = 0.4
	professionalWeight = 0.3
	brandingWeight     = 0.2
	compositionWeight  = 0.1
)

const (
	recExcellent    = "🌟 EXCELLENT PROFILE"
	recProfessional = "✅ PROFESSIONAL PROFILE"
	recGood         = "👍 GOOD PROFILE"
	recBasic        = "⚠️ BASIC PROFILE"
	recNeedsWork    = "❌ NEEDS IMPROVEMENT"
	recNoImage      = "❌ NO IMAGE"
	recError        = "❌ ERROR"
)
