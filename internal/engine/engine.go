// Package engine is the public scoring surface: it validates input, caches
// computed scores, shares one trend snapshot per batch, and degrades to a
// neutral fallback score when trend data cannot be fetched.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charo360/tagrank/internal/score"
	"github.com/charo360/tagrank/internal/trends"
)

var (
	// ErrEmptyHashtag rejects blank hashtags before they enter the pipeline.
	ErrEmptyHashtag = errors.New("hashtag is empty")
	// ErrInvalidContext rejects contexts missing a required field.
	ErrInvalidContext = errors.New("invalid context")
)

const (
	// DefaultTTL is how long a computed score is served from cache.
	DefaultTTL = 10 * time.Minute
	// DefaultFetchTimeout bounds the trend snapshot fetch; past it the
	// engine falls back rather than stalling a batch.
	DefaultFetchTimeout = 10 * time.Second

	// Expired entries are swept once the cache grows past this.
	sweepThreshold = 1024
)

// Engine scores hashtags against a trend source. Source is required; Clock,
// TTL, and FetchTimeout may be overridden before first use (tests inject a
// fixed clock).
type Engine struct {
	Source       trends.Source
	Clock        func() time.Time
	TTL          time.Duration
	FetchTimeout time.Duration

	mu    sync.RWMutex
	cache map[cacheKey]cacheEntry
}

type cacheKey struct {
	hashtag      string
	businessType string
	location     string
	platform     string
}

type cacheEntry struct {
	result score.Result
	at     time.Time
}

func New(src trends.Source) *Engine {
	return &Engine{
		Source:       src,
		Clock:        time.Now,
		TTL:          DefaultTTL,
		FetchTimeout: DefaultFetchTimeout,
		cache:        make(map[cacheKey]cacheEntry),
	}
}

// ScoreHashtag scores one hashtag. It returns an error only for invalid
// input or context; trend failures yield the fallback score instead.
func (e *Engine) ScoreHashtag(ctx context.Context, hashtag string, sc score.Context) (score.Result, error) {
	if err := validateHashtag(hashtag); err != nil {
		return score.Result{}, err
	}
	if err := validateContext(sc); err != nil {
		return score.Result{}, err
	}

	if res, ok := e.cached(hashtag, sc); ok {
		return res, nil
	}

	snap, err := e.fetch(ctx)
	if err != nil {
		return Fallback(hashtag), nil
	}

	res := score.Rate(hashtag, sc, snap, e.Clock())
	e.put(hashtag, sc, res)
	return res, nil
}

// ScoreHashtags scores a batch concurrently against one shared snapshot and
// returns the results sorted by descending total score; ties keep input
// order.
func (e *Engine) ScoreHashtags(ctx context.Context, hashtags []string, sc score.Context) ([]score.Result, error) {
	for _, h := range hashtags {
		if err := validateHashtag(h); err != nil {
			return nil, fmt.Errorf("%w: %q", err, h)
		}
	}
	if err := validateContext(sc); err != nil {
		return nil, err
	}

	// The snapshot is fetched at most once, and only if some hashtag
	// misses the cache.
	var (
		once     sync.Once
		snap     trends.Snapshot
		fetchErr error
	)
	fetchOnce := func() (trends.Snapshot, error) {
		once.Do(func() { snap, fetchErr = e.fetch(ctx) })
		return snap, fetchErr
	}

	results := make([]score.Result, len(hashtags))
	var wg sync.WaitGroup
	for i, h := range hashtags {
		wg.Add(1)
		go func(i int, h string) {
			defer wg.Done()
			if res, ok := e.cached(h, sc); ok {
				results[i] = res
				return
			}
			s, err := fetchOnce()
			if err != nil {
				results[i] = Fallback(h)
				return
			}
			res := score.Rate(h, sc, s, e.Clock())
			e.put(h, sc, res)
			results[i] = res
		}(i, h)
	}
	wg.Wait()

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Total > results[j].Total
	})
	return results, nil
}

// Fallback is the neutral score returned when signal computation fails: the
// call degrades instead of raising.
func Fallback(hashtag string) score.Result {
	return score.Result{
		Hashtag: hashtag,
		Total:   5.0,
		Breakdown: score.Breakdown{
			Trending: 5, Business: 5, Location: 5, Platform: 5,
			Engagement: 5, Temporal: 5, Competitor: 5, Semantic: 5,
		},
		Confidence:     0.3,
		Recommendation: score.RecommendMedium,
		Reasoning:      []string{"Fallback scoring due to analysis error"},
	}
}

func (e *Engine) fetch(ctx context.Context) (trends.Snapshot, error) {
	timeout := e.FetchTimeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	fctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return e.Source.Trending(fctx)
}

func (e *Engine) key(hashtag string, sc score.Context) cacheKey {
	return cacheKey{
		hashtag:      score.Normalize(hashtag),
		businessType: normalizeField(sc.BusinessType),
		location:     normalizeField(sc.Location),
		platform:     normalizeField(sc.Platform),
	}
}

func (e *Engine) cached(hashtag string, sc score.Context) (score.Result, bool) {
	k := e.key(hashtag, sc)
	e.mu.RLock()
	entry, ok := e.cache[k]
	e.mu.RUnlock()
	if !ok {
		return score.Result{}, false
	}
	if e.Clock().Sub(entry.at) > e.ttl() {
		return score.Result{}, false
	}
	return entry.result, true
}

func (e *Engine) put(hashtag string, sc score.Context, res score.Result) {
	now := e.Clock()
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.cache) >= sweepThreshold {
		for k, entry := range e.cache {
			if now.Sub(entry.at) > e.ttl() {
				delete(e.cache, k)
			}
		}
	}
	e.cache[e.key(hashtag, sc)] = cacheEntry{result: res, at: now}
}

func (e *Engine) ttl() time.Duration {
	if e.TTL <= 0 {
		return DefaultTTL
	}
	return e.TTL
}

func validateHashtag(hashtag string) error {
	if strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(hashtag), "#")) == "" {
		return ErrEmptyHashtag
	}
	return nil
}

func validateContext(sc score.Context) error {
	switch {
	case strings.TrimSpace(sc.BusinessType) == "":
		return fmt.Errorf("%w: businessType is required", ErrInvalidContext)
	case strings.TrimSpace(sc.Location) == "":
		return fmt.Errorf("%w: location is required", ErrInvalidContext)
	case strings.TrimSpace(sc.Platform) == "":
		return fmt.Errorf("%w: platform is required", ErrInvalidContext)
	}
	return nil
}

func normalizeField(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
