package qualify

// category is one business type. Its order in businessCategories is the
// tie-break order.
type category struct {
	Name             string
	Keywords         []string
	HighValue        []string
	RevenuePotential float64
}

var businessCategories = []category{
	{
		Name:             "Fitness",
		Keywords:         []string{"trainer", "fitness", "gym", "workout", "personal training", "crossfit", "yoga", "pilates", "nutrition", "bodybuilding", "coach", "athlete"},
		HighValue:        []string{"certified trainer", "nutrition coach", "fitness coach", "personal trainer"},
		RevenuePotential: 8.5,
	},
	{
		Name:             "Beauty",
		Keywords:         []string{"barber", "hair", "salon", "beauty", "makeup", "nails", "lashes", "brows", "aesthetics", "skincare"},
		HighValue:        []string{"master barber", "certified", "licensed", "award winning"},
		RevenuePotential: 7.5,
	},
	{
		Name:             "Photography",
		Keywords:         []string{"photographer", "photography", "photos", "wedding", "portrait", "commercial", "headshots"},
		HighValue:        []string{"wedding photographer", "commercial photographer", "award winning"},
		RevenuePotential: 8.0,
	},
	{
		Name:             "Food Service",
		Keywords:         []string{"chef", "catering", "restaurant", "food", "culinary", "bakery", "cafe", "meal prep"},
		HighValue:        []string{"executive chef", "catering company", "restaurant owner"},
		RevenuePotential: 7.0,
	},
	{
		Name:             "Real Estate",
		Keywords:         []string{"realtor", "real estate", "broker", "property", "homes", "listings"},
		HighValue:        []string{"top producer", "million dollar", "luxury homes"},
		RevenuePotential: 9.5,
	},
	{
		Name:             "Consulting",
		Keywords:         []string{"consultant", "coaching", "business coach", "mentor", "advisor", "strategy"},
		HighValue:        []string{"business consultant", "executive coach", "strategy consultant"},
		RevenuePotential: 9.0,
	},
	{
		Name:             "Healthcare",
		Keywords:         []string{"doctor", "dentist", "therapist", "clinic", "medical", "health", "wellness"},
		HighValue:        []string{"md", "dds", "licensed therapist", "clinic owner"},
		RevenuePotential: 9.5,
	},
	{
		Name:             "Legal",
		Keywords:         []string{"lawyer", "attorney", "law firm", "legal", "paralegal"},
		HighValue:        []string{"partner", "law firm", "attorney"},
		RevenuePotential: 9.5,
	},
	{
		Name:             "Marketing",
		Keywords:         []string{"marketing", "social media", "advertising", "branding", "digital marketing", "seo"},
		HighValue:        []string{"marketing agency", "digital marketing", "brand strategist"},
		RevenuePotential: 8.5,
	},
	{
		Name:             "Ecommerce",
		Keywords:         []string{"ecommerce", "online store", "shopify", "amazon", "dropshipping", "retail"},
		HighValue:        []string{"7 figure", "8 figure", "million", "successful"},
		RevenuePotential: 8.0,
	},
}

const (
	keywordWeight   = 0.3
	highValueWeight = 0.7
)

// weighted is a keyword list where every match adds Points.
type weighted struct {
	Points   float64
	Keywords []string
}

// urgencyTiers are high, medium and low urgency.
var urgencyTiers = []weighted{
	{3.0, []string{"book now", "call today", "limited time", "urgent", "asap", "immediate", "hurry"}},
	{2.0, []string{"dm me", "message me", "contact", "reach out", "get in touch"}},
	{1.0, []string{"available", "open", "accepting"}},
}

// credibilitySignals are certifications, achievements, experience and scale.
var credibilitySignals = []weighted{
	{0.7, []string{"certified", "licensed", "accredited", "board certified", "diploma"}},
	{0.6, []string{"award", "winner", "top", "best", "featured", "published", "recognized"}},
	{0.4, []string{"years", "decade", "veteran", "expert", "specialist", "master"}},
	{0.5, []string{"company", "agency", "firm", "corporation", "llc", "inc"}},
}

// contactSignals are direct, booking and social proof.
var contactSignals = []weighted{
	{0.8, []string{"dm", "text", "call", "email", "whatsapp", "telegram"}},
	{0.7, []string{"book", "schedule", "appointment", "consultation", "meeting"}},
	{0.5, []string{"reviews", "testimonials", "clients", "customers", "satisfied"}},
}

const (
	emailPoints = 0.8
	phonePoints = 1.0
	emailGlyph  = "📧"
)

// regionTier groups cities by market value.
type regionTier struct {
	Value      string
	Keywords   []string
	Multiplier float64
}

var regionTiers = []regionTier{
	{"High Value", []string{"manhattan", "beverly hills", "silicon valley", "miami beach", "soho"}, 1.5},
	{"Major Cities", []string{"nyc", "new york", "los angeles", "chicago", "miami", "san francisco", "boston", "seattle"}, 1.3},
	{"Medium Cities", []string{"atlanta", "dallas", "houston", "phoenix", "denver", "austin"}, 1.1},
}

var (
	spanishMarkers = []string{"el", "la", "de", "y", "en", "con", "para", "por", "una", "un", "es", "mi", "tu", "su"}
	frenchMarkers  = []string{"le", "la", "et", "un", "une", "des", "pour", "avec", "est", "mon", "ton", "son"}
)

// indicator appends Label when any of Terms is present.
type indicator struct {
	Label string
	Terms []string
}

var keyIndicators = []indicator{
	{"Certified Professional", []string{"certified", "licensed"}},
	{"Contact Ready", []string{"dm", "contact", "book"}},
	{"Email Available", []string{"@", emailGlyph}},
	{"Award Winner", []string{"award", "top", "best"}},
	{"Business Entity", []string{"company", "llc", "inc"}},
}

const (
	recHot          = "🔥 HOT LEAD - Contact immediately! High-value prospect with strong indicators."
	recWarm         = "🌟 WARM LEAD - Strong potential, reach out within 24 hours."
	recQualified    = "💼 QUALIFIED LEAD - Good business potential, add to nurture sequence."
	recHighValue    = "💎 HIGH-VALUE INDUSTRY - Lower engagement but high revenue potential."
	recStandard     = "📋 STANDARD LEAD - Basic qualification, consider for mass outreach."
	recInsufficient = "❌ INSUFFICIENT DATA - Bio too short or empty."
)
