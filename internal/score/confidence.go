package score

import (
	"fmt"
	"math"
)

// Confidence estimates how trustworthy a breakdown is, in [0,1]. It rewards
// trend-data volume, low sub-score variance, and multiple strong signals.
// If no factor triggers, the estimate defaults to a neutral 0.5.
func Confidence(b Breakdown, articleCount int) float64 {
	var conf float64
	factors := 0

	switch {
	case articleCount >= 10:
		conf += 0.3
		factors++
	case articleCount >= 5:
		conf += 0.2
		factors++
	}

	switch v := variance(b.values()); {
	case v < 4:
		conf += 0.3
		factors++
	case v < 9:
		conf += 0.2
		factors++
	}

	strong := 0
	for _, s := range b.values() {
		if s >= 7 {
			strong++
		}
	}
	switch {
	case strong >= 4:
		conf += 0.4
		factors++
	case strong >= 2:
		conf += 0.3
		factors++
	}

	if factors == 0 {
		return 0.5
	}
	return math.Min(conf, 1)
}

// variance is the population variance of the eight sub-scores.
func variance(vals [8]float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	mean := sum / float64(len(vals))

	var sq float64
	for _, v := range vals {
		d := v - mean
		sq += d * d
	}
	return sq / float64(len(vals))
}

// Recommend maps a total score and confidence to a tier. Rules are checked
// in priority order; the first match wins.
func Recommend(total, confidence float64) Recommendation {
	switch {
	case total >= 8 && confidence >= 0.7:
		return RecommendHigh
	case total >= 6 && confidence >= 0.5:
		return RecommendMedium
	case total >= 4:
		return RecommendLow
	default:
		return RecommendAvoid
	}
}

// Reasons builds the explanation list from sub-score thresholds. Each rule
// appends at most one sentence; if none fire, a single fallback sentence is
// returned so reasoning is never empty.
func Reasons(b Breakdown, platform string) []string {
	var reasons []string

	switch {
	case b.Trending >= 8:
		reasons = append(reasons, "Highly trending in the current news cycle")
	case b.Trending >= 6:
		reasons = append(reasons, "Moderately trending right now")
	}

	switch {
	case b.Business >= 8:
		reasons = append(reasons, "Strong match for your business")
	case b.Business >= 6:
		reasons = append(reasons, "Good relevance to your business")
	}

	if b.Engagement >= 8 {
		reasons = append(reasons, "High engagement potential")
	}
	if b.Platform >= 8 {
		reasons = append(reasons, fmt.Sprintf("Well optimized for %s", platform))
	}
	if b.Location >= 8 {
		reasons = append(reasons, "Strong local relevance")
	}
	if b.Competitor >= 7 {
		reasons = append(reasons, "Actively used across your industry")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "Standard performance expected for this hashtag")
	}
	return reasons
}
