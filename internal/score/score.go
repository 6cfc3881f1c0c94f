// Package score computes hashtag relevance: eight bounded sub-scores over a
// business context and one trend snapshot, aggregated into a weighted total
// with a confidence estimate, a recommendation tier, and reasoning text.
package score

import (
	"math"
	"time"

	"github.com/charo360/tagrank/internal/trends"
)

// Context is the business/platform/location setting a hashtag is scored
// against. BusinessType, Location, and Platform are required by the engine;
// the remaining fields sharpen individual sub-scores when present.
type Context struct {
	BusinessType   string
	BusinessName   string
	Location       string
	Platform       string
	PostContent    string
	TargetAudience string
	Industry       string
	Services       []string

	// TimeOfDay (0–23) and DayOfWeek (0=Sunday) override the engine clock
	// when set, so temporal scoring is reproducible.
	TimeOfDay *int
	DayOfWeek *int
}

// Breakdown shows how each of the eight extractors contributed. Every field
// is within [0,10].
type Breakdown struct {
	Trending   float64
	Business   float64
	Location   float64
	Platform   float64
	Engagement float64
	Temporal   float64
	Competitor float64
	Semantic   float64
}

func (b Breakdown) values() [8]float64 {
	return [8]float64{
		b.Trending, b.Business, b.Location, b.Platform,
		b.Engagement, b.Temporal, b.Competitor, b.Semantic,
	}
}

// Recommendation is the four-tier verdict derived from total score and
// confidence.
type Recommendation string

const (
	RecommendHigh   Recommendation = "high"
	RecommendMedium Recommendation = "medium"
	RecommendLow    Recommendation = "low"
	RecommendAvoid  Recommendation = "avoid"
)

// Result is the full scoring output for one hashtag.
type Result struct {
	Hashtag        string
	Total          float64
	Breakdown      Breakdown
	Confidence     float64
	Recommendation Recommendation
	Reasoning      []string
}

// Fixed weight vector, sums to 1.0.
const (
	weightTrending   = 0.25
	weightBusiness   = 0.20
	weightEngagement = 0.15
	weightPlatform   = 0.12
	weightLocation   = 0.10
	weightSemantic   = 0.08
	weightTemporal   = 0.06
	weightCompetitor = 0.04
)

// Rate runs the full scoring pipeline for a single hashtag. It is pure:
// identical inputs produce identical results.
func Rate(hashtag string, ctx Context, snap trends.Snapshot, now time.Time) Result {
	b := Evaluate(hashtag, ctx, snap, now)
	total := Total(b)
	conf := Confidence(b, len(snap.Articles))
	return Result{
		Hashtag:        hashtag,
		Total:          total,
		Breakdown:      b,
		Confidence:     conf,
		Recommendation: Recommend(total, conf),
		Reasoning:      Reasons(b, ctx.Platform),
	}
}

// Evaluate runs the eight extractors against a normalized hashtag.
func Evaluate(hashtag string, ctx Context, snap trends.Snapshot, now time.Time) Breakdown {
	tag := Normalize(hashtag)

	hour := now.Hour()
	if ctx.TimeOfDay != nil {
		hour = *ctx.TimeOfDay
	}
	weekday := now.Weekday()
	if ctx.DayOfWeek != nil {
		weekday = time.Weekday(*ctx.DayOfWeek % 7)
	}

	return Breakdown{
		Trending:   trendingScore(tag, snap, now),
		Business:   businessScore(tag, ctx),
		Location:   locationScore(tag, ctx),
		Platform:   platformScore(tag, ctx.Platform),
		Engagement: engagementScore(tag),
		Temporal:   temporalScore(tag, hour, weekday, now.Month()),
		Competitor: competitorScore(tag, ctx.BusinessType, snap),
		Semantic:   semanticScore(tag, ctx),
	}
}

// Total aggregates a breakdown into the weighted score, rounded to one
// decimal.
func Total(b Breakdown) float64 {
	raw := b.Trending*weightTrending +
		b.Business*weightBusiness +
		b.Engagement*weightEngagement +
		b.Platform*weightPlatform +
		b.Location*weightLocation +
		b.Semantic*weightSemantic +
		b.Temporal*weightTemporal +
		b.Competitor*weightCompetitor
	return round1(raw)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clip(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}
