package score

import (
	"strings"
	"time"
	"unicode"

	"github.com/charo360/tagrank/internal/trends"
)

// Normalize strips a leading '#' and lowercases the hashtag. All extractors
// operate on normalized text.
func Normalize(hashtag string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(hashtag), "#"))
}

// trendingScore maps article mentions to a bucketed base, adds keyword
// overlap (2 per match, capped at 4) and a recency bonus for mentions within
// the last six hours of the snapshot time.
func trendingScore(tag string, snap trends.Snapshot, now time.Time) float64 {
	mentions := 0
	recent := false
	for _, a := range snap.Articles {
		text := strings.ToLower(a.Title + " " + a.Description)
		if !strings.Contains(text, tag) {
			continue
		}
		mentions++
		if !a.Published.IsZero() && now.Sub(a.Published) <= 6*time.Hour {
			recent = true
		}
	}

	var s float64
	switch {
	case mentions >= 5:
		s = 10
	case mentions >= 3:
		s = 8
	case mentions >= 1:
		s = 6
	default:
		s = 2
	}

	overlap := 0.0
	for _, kw := range snap.Keywords {
		kw = strings.ToLower(kw)
		if kw == "" {
			continue
		}
		if strings.Contains(tag, kw) || strings.Contains(kw, tag) {
			overlap += 2
			if overlap >= 4 {
				break
			}
		}
	}
	s += overlap

	if recent {
		s += 2
	}
	return clip(s)
}

func businessScore(tag string, ctx Context) float64 {
	var s float64
	if name := squash(ctx.BusinessName); name != "" && strings.Contains(tag, name) {
		s += 10
	}
	if bt := squash(ctx.BusinessType); bt != "" && strings.Contains(tag, bt) {
		s += 8
	}

	serviceHits := 0
	for _, svc := range ctx.Services {
		for _, tok := range tokenize(svc) {
			if strings.Contains(tag, tok) {
				serviceHits++
				break
			}
		}
		if serviceHits >= 2 {
			break
		}
	}
	s += float64(serviceHits) * 3

	industryHits := 0
	for _, kw := range industryKeywords(ctx.BusinessType) {
		if strings.Contains(tag, kw) {
			industryHits++
			if industryHits >= 2 {
				break
			}
		}
	}
	s += float64(industryHits) * 2

	return clip(s)
}

func locationScore(tag string, ctx Context) float64 {
	var s float64
	if loc := squash(ctx.Location); loc != "" && strings.Contains(tag, loc) {
		s += 10
	}

	partial := 0
	for _, tok := range tokenize(ctx.Location) {
		if len(tok) <= 2 {
			continue
		}
		if strings.Contains(tag, tok) {
			partial++
			if partial >= 2 {
				break
			}
		}
	}
	s += float64(partial) * 4

	if containsAny(tag, localTerms) {
		s += 6
	}
	if containsAny(tag, regionalTerms) {
		s += 4
	}
	return clip(s)
}

// platformScore checks the per-platform value tiers, then falls back to the
// platform's optimal length range. Unknown platforms score a neutral 5.
func platformScore(tag, platform string) float64 {
	table, ok := platformTables[strings.ToLower(strings.TrimSpace(platform))]
	if !ok {
		return 5
	}
	if containsAny(tag, table.high) {
		return 10
	}
	if containsAny(tag, table.medium) {
		return 7
	}
	if n := len(tag); n >= table.minLen && n <= table.maxLen {
		return 6
	}
	return 3
}

func engagementScore(tag string) float64 {
	var s float64
	if containsAny(tag, highEngagementWords) {
		s += 9
	}
	if containsAny(tag, emotionalWords) {
		s += 7
	}
	if containsAny(tag, actionWords) {
		s += 6
	}

	switch n := len(tag); {
	case n >= 6 && n <= 15:
		s += 5
	case n >= 4 && n <= 20:
		s += 3
	default:
		s += 1
	}

	if overlyGenericWords[tag] {
		s -= 3
	}
	return clip(s)
}

func temporalScore(tag string, hour int, weekday time.Weekday, month time.Month) float64 {
	s := 5.0
	if containsAny(tag, daypartWords[daypart(hour)]) {
		s += 3
	}
	if weekday == time.Saturday || weekday == time.Sunday {
		if containsAny(tag, weekendWords) {
			s += 2
		}
	} else if containsAny(tag, weekdayWords) {
		s += 2
	}
	if containsAny(tag, seasonWords[season(month)]) {
		s += 2
	}
	return clip(s)
}

// competitorScore counts articles that mention both the hashtag and an
// industry keyword for the business type. Heavy co-occurrence is treated as
// oversaturation.
func competitorScore(tag, businessType string, snap trends.Snapshot) float64 {
	s := 5.0
	kws := industryKeywords(businessType)
	co := 0
	for _, a := range snap.Articles {
		text := strings.ToLower(a.Title + " " + a.Description)
		if !strings.Contains(text, tag) {
			continue
		}
		for _, kw := range kws {
			if strings.Contains(text, kw) {
				co++
				break
			}
		}
	}

	switch {
	case co >= 3:
		s += 4
	case co >= 1:
		s += 2
	}
	if co >= 10 {
		s -= 2
	}
	return clip(s)
}

func semanticScore(tag string, ctx Context) float64 {
	var s float64
	if ctx.PostContent != "" {
		if overlapsContentWord(tag, ctx.PostContent) {
			s += 8
		}
		for _, kw := range extractKeywords(ctx.PostContent) {
			if strings.Contains(tag, kw) || strings.Contains(kw, tag) {
				s += 6
				break
			}
		}
	}

	if ctx.TargetAudience != "" {
		for _, tok := range tokenize(ctx.TargetAudience) {
			if strings.Contains(tag, tok) {
				s += 5
				break
			}
		}
	}

	industry := ctx.Industry
	if industry == "" {
		industry = ctx.BusinessType
	}
	for _, kw := range semanticKeywords(industry) {
		if strings.Contains(tag, kw) {
			s += 4
			break
		}
	}
	return clip(s)
}

func overlapsContentWord(tag, content string) bool {
	for _, w := range strings.Fields(strings.ToLower(content)) {
		w = trimPunct(w)
		if w == "" {
			continue
		}
		if strings.Contains(tag, w) || strings.Contains(w, tag) {
			return true
		}
	}
	return false
}

// extractKeywords is a deliberately lightweight lexical heuristic: lowercase,
// punctuation-stripped words longer than 3 characters, minus stop words.
func extractKeywords(content string) []string {
	var keywords []string
	seen := map[string]bool{}
	for _, w := range strings.Fields(strings.ToLower(content)) {
		w = trimPunct(w)
		if len(w) <= 3 || contentStopWords[w] || seen[w] {
			continue
		}
		seen[w] = true
		keywords = append(keywords, w)
	}
	return keywords
}

func daypart(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "morning"
	case hour >= 12 && hour < 17:
		return "afternoon"
	case hour >= 17 && hour < 21:
		return "evening"
	default:
		return "night"
	}
}

func season(month time.Month) string {
	switch month {
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	case time.September, time.October, time.November:
		return "fall"
	default:
		return "winter"
	}
}

func containsAny(tag string, words []string) bool {
	for _, w := range words {
		if strings.Contains(tag, w) {
			return true
		}
	}
	return false
}

// squash lowercases and keeps only letters and digits, so "Joe's Diner"
// matches inside "joesdiner" and "New York, NY" becomes "newyorkny".
func squash(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func trimPunct(w string) string {
	return strings.TrimFunc(w, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func tokenize(s string) []string {
	var tokens []string
	for _, word := range strings.Fields(strings.ToLower(s)) {
		word = trimPunct(word)
		if word != "" {
			tokens = append(tokens, word)
		}
	}
	return tokens
}
