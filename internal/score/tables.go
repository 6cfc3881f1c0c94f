package score

// Static lookup tables for the feature extractors. These are fixed
// configuration, enumerated in full; nothing here is computed at runtime.

var industryKeywordTable = map[string][]string{
	"restaurant": {"food", "foodie", "eat", "dining", "chef", "menu", "delicious", "tasty", "meal", "cuisine"},
	"retail":     {"shop", "shopping", "sale", "store", "fashion", "style", "deals", "boutique", "product"},
	"healthcare": {"health", "wellness", "care", "medical", "doctor", "clinic", "patient", "healing"},
	"fitness":    {"fit", "fitness", "gym", "workout", "training", "exercise", "strength", "cardio", "health"},
	"beauty":     {"beauty", "salon", "hair", "skin", "makeup", "glow", "spa", "nails", "style"},
	"technology": {"tech", "software", "digital", "innovation", "startup", "code", "data", "app", "ai"},
	"education":  {"learn", "learning", "education", "school", "study", "teach", "student", "course", "knowledge"},
	"automotive": {"car", "auto", "vehicle", "drive", "repair", "garage", "motor", "wheels"},
	"realestate": {"home", "house", "property", "realty", "realestate", "listing", "mortgage", "rent"},
	"legal":      {"law", "legal", "attorney", "lawyer", "justice", "rights", "court", "counsel"},
}

// genericIndustryKeywords applies when the business type has no table entry.
var genericIndustryKeywords = []string{"business", "service", "quality", "professional", "local", "best", "expert"}

// semanticKeywordTable carries richer, more abstract terms per industry than
// the plain industry table; used only by the semantic relevance extractor.
var semanticKeywordTable = map[string][]string{
	"restaurant": {"flavor", "fresh", "homemade", "artisan", "organic", "farmtotable", "craft", "seasonal"},
	"retail":     {"curated", "handpicked", "trend", "collection", "exclusive", "limited", "lifestyle"},
	"healthcare": {"holistic", "preventive", "recovery", "mindful", "vitality", "wellbeing"},
	"fitness":    {"transformation", "endurance", "mindset", "goals", "progress", "motivation", "discipline"},
	"beauty":     {"radiant", "selfcare", "pamper", "transformation", "confidence", "natural"},
	"technology": {"automation", "cloud", "scalable", "disruption", "future", "smart", "machinelearning"},
	"education":  {"growth", "curiosity", "mastery", "mentorship", "discovery", "potential"},
	"automotive": {"performance", "detailing", "restoration", "horsepower", "classic", "custom"},
	"realestate": {"dreamhome", "investment", "neighborhood", "openhouse", "staging", "equity"},
	"legal":      {"advocacy", "compliance", "settlement", "consultation", "defense", "trusted"},
}

var genericSemanticKeywords = []string{"community", "trusted", "authentic", "experience", "passion"}

// platformTable holds per-platform hashtag value tiers and the optimal
// length range used when no tier matches.
type platformTable struct {
	high   []string
	medium []string
	minLen int
	maxLen int
}

var platformTables = map[string]platformTable{
	"instagram": {
		high:   []string{"instagood", "photooftheday", "reels", "instadaily", "explorepage"},
		medium: []string{"picoftheday", "igers", "instamood", "followme"},
		minLen: 5, maxLen: 24,
	},
	"facebook": {
		high:   []string{"community", "local", "family", "events"},
		medium: []string{"share", "friends", "weekend", "giveaway"},
		minLen: 4, maxLen: 20,
	},
	"twitter": {
		high:   []string{"breaking", "trending", "news", "nowplaying"},
		medium: []string{"thread", "follow", "retweet"},
		minLen: 3, maxLen: 15,
	},
	"linkedin": {
		high:   []string{"leadership", "business", "networking", "career"},
		medium: []string{"professional", "industry", "growth", "hiring"},
		minLen: 5, maxLen: 25,
	},
	"tiktok": {
		high:   []string{"fyp", "foryou", "viral", "trending"},
		medium: []string{"duet", "challenge", "tiktokmademebuyit"},
		minLen: 3, maxLen: 20,
	},
	"pinterest": {
		high:   []string{"diy", "inspiration", "ideas", "homedecor"},
		medium: []string{"style", "recipe", "craft", "aesthetic"},
		minLen: 4, maxLen: 25,
	},
}

// Engagement keyword sets. Membership bonuses stack; the final clip bounds
// the sum.
var (
	highEngagementWords = []string{"love", "instagood", "photooftheday", "happy", "beautiful", "follow", "amazing"}
	emotionalWords      = []string{"love", "happy", "beautiful", "amazing", "inspiring", "joy", "excited", "grateful"}
	actionWords         = []string{"shop", "buy", "visit", "try", "join", "book", "order", "discover", "win"}
)

// overlyGenericWords trigger the engagement penalty on an exact match.
var overlyGenericWords = map[string]bool{
	"good": true, "nice": true, "great": true, "cool": true, "ok": true, "fine": true,
}

var localTerms = []string{"local", "community", "neighborhood", "nearby", "hometown"}

var regionalTerms = []string{"downtown", "uptown", "regional", "district", "citycenter"}

// Temporal keyword buckets. The active bucket is derived from the scoring
// context's time overrides or the engine clock.
var daypartWords = map[string][]string{
	"morning":   {"morning", "breakfast", "coffee", "sunrise", "riseandshine"},
	"afternoon": {"lunch", "afternoon", "midday", "lunchtime"},
	"evening":   {"evening", "dinner", "sunset", "happyhour"},
	"night":     {"night", "latenight", "midnight", "nightlife"},
}

var (
	weekendWords = []string{"weekend", "saturday", "sunday", "weekendvibes", "brunch"}
	weekdayWords = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "workday", "hustle"}
)

var seasonWords = map[string][]string{
	"spring": {"spring", "bloom", "fresh", "renewal"},
	"summer": {"summer", "sunshine", "beach", "vacation"},
	"fall":   {"fall", "autumn", "harvest", "cozy"},
	"winter": {"winter", "snow", "holiday", "festive"},
}

// contentStopWords filters the lightweight keyword extraction used by the
// semantic relevance extractor.
var contentStopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "that": true,
	"this": true, "from": true, "your": true, "have": true, "will": true,
	"our": true, "are": true, "was": true, "been": true, "has": true,
	"more": true, "than": true, "them": true, "they": true, "their": true,
	"about": true, "into": true, "over": true, "just": true, "very": true,
	"what": true, "when": true, "where": true, "which": true, "would": true,
	"come": true, "here": true, "there": true, "some": true, "were": true,
}

func industryKeywords(businessType string) []string {
	if kws, ok := industryKeywordTable[squash(businessType)]; ok {
		return kws
	}
	return genericIndustryKeywords
}

func semanticKeywords(industry string) []string {
	if kws, ok := semanticKeywordTable[squash(industry)]; ok {
		return kws
	}
	return genericSemanticKeywords
}
