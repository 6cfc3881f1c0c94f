package trends

import (
	"context"
	"sort"
	"strings"
	"time"
	"unicode"
)

// Feed is one trend feed the RSS trend source pulls from.
type Feed struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	URL     string `yaml:"url"`
	Topic   string `yaml:"topic,omitempty"`
	Enabled bool   `yaml:"enabled"`
}

// Article is a single trend article within a snapshot.
type Article struct {
	Title       string
	Description string
	Source      string
	Published   time.Time
}

// Snapshot is one immutable fetch of trend data. A batch of hashtag scores
// shares a single snapshot; it is never refreshed mid-batch.
type Snapshot struct {
	Articles  []Article
	Keywords  []string
	Topics    []string
	FetchedAt time.Time
}

// Source supplies trend snapshots on demand. Implementations may cache
// upstream; fetch failures are handled by the scoring engine, not the caller.
type Source interface {
	Trending(ctx context.Context) (Snapshot, error)
}

// Empty returns a snapshot with no signal, used when trend data is
// unavailable but scoring should proceed.
func Empty(now time.Time) Snapshot {
	return Snapshot{FetchedAt: now}
}

// Build assembles a snapshot from articles: keywords are tokens that appear
// in at least two article titles, most frequent first, capped at 15.
func Build(articles []Article, topics []string, now time.Time) Snapshot {
	freq := map[string]int{}
	for _, a := range articles {
		seen := map[string]bool{}
		for _, w := range tokenize(a.Title) {
			if !seen[w] {
				freq[w]++
				seen[w] = true
			}
		}
	}

	type kw struct {
		term  string
		count int
	}
	var ranked []kw
	for term, count := range freq {
		if count < 2 {
			continue
		}
		ranked = append(ranked, kw{term, count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].term < ranked[j].term
	})

	limit := 15
	if len(ranked) < limit {
		limit = len(ranked)
	}
	keywords := make([]string, limit)
	for i := 0; i < limit; i++ {
		keywords[i] = ranked[i].term
	}

	return Snapshot{
		Articles:  articles,
		Keywords:  keywords,
		Topics:    topics,
		FetchedAt: now,
	}
}

var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "is": true, "it": true, "its": true,
	"this": true, "that": true, "are": true, "was": true, "were": true, "be": true,
	"been": true, "have": true, "has": true, "had": true, "will": true, "would": true,
	"could": true, "should": true, "may": true, "might": true, "can": true,
	"not": true, "how": true, "what": true, "when": true, "where": true,
	"who": true, "which": true, "why": true, "your": true, "their": true,
	"after": true, "before": true, "over": true, "into": true, "about": true,
	"more": true, "most": true, "than": true, "them": true, "they": true,
	"says": true, "said": true, "news": true, "here": true, "just": true,
}

func tokenize(s string) []string {
	var tokens []string
	for _, word := range strings.Fields(strings.ToLower(s)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if len(word) < 4 {
			continue
		}
		if stopWords[word] {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}
