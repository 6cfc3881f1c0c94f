package engine

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/charo360/tagrank/internal/score"
	"github.com/charo360/tagrank/internal/trends"
)

type fakeSource struct {
	mu    sync.Mutex
	calls int
	snap  trends.Snapshot
	err   error
}

func (f *fakeSource) Trending(ctx context.Context) (trends.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.snap, f.err
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeSource) set(snap trends.Snapshot, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snap, f.err = snap, err
}

func intPtr(n int) *int { return &n }

func testContext() score.Context {
	return score.Context{
		BusinessType: "plumbing",
		Location:     "Austin, TX",
		Platform:     "instagram",
		TimeOfDay:    intPtr(9),
		DayOfWeek:    intPtr(2),
	}
}

func testEngine(src *fakeSource) (*Engine, *time.Time) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	e := New(src)
	e.Clock = func() time.Time { return now }
	e.TTL = time.Minute
	return e, &now
}

func TestScoreHashtagValidation(t *testing.T) {
	e, _ := testEngine(&fakeSource{})

	for _, tag := range []string{"", "#", "   ", " # "} {
		if _, err := e.ScoreHashtag(context.Background(), tag, testContext()); !errors.Is(err, ErrEmptyHashtag) {
			t.Errorf("ScoreHashtag(%q) error = %v, want ErrEmptyHashtag", tag, err)
		}
	}

	tests := []struct {
		name string
		ctx  score.Context
	}{
		{"missing business type", score.Context{Location: "Austin, TX", Platform: "instagram"}},
		{"missing location", score.Context{BusinessType: "plumbing", Platform: "instagram"}},
		{"missing platform", score.Context{BusinessType: "plumbing", Location: "Austin, TX"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := e.ScoreHashtag(context.Background(), "#brunch", tt.ctx); !errors.Is(err, ErrInvalidContext) {
				t.Errorf("error = %v, want ErrInvalidContext", err)
			}
		})
	}
}

func TestScoreHashtagFallbackOnFetchError(t *testing.T) {
	src := &fakeSource{err: errors.New("feed unreachable")}
	e, _ := testEngine(src)

	got, err := e.ScoreHashtag(context.Background(), "#brunch", testContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, Fallback("#brunch")) {
		t.Errorf("result = %+v, want fallback", got)
	}
	if got.Total != 5.0 || got.Confidence != 0.3 || got.Recommendation != score.RecommendMedium {
		t.Errorf("fallback fields: total=%v confidence=%v recommendation=%q", got.Total, got.Confidence, got.Recommendation)
	}
}

func TestFallbackNotCached(t *testing.T) {
	src := &fakeSource{err: errors.New("feed unreachable")}
	e, _ := testEngine(src)
	ctx := context.Background()

	if _, err := e.ScoreHashtag(ctx, "#brunch", testContext()); err != nil {
		t.Fatal(err)
	}

	src.set(trends.Snapshot{}, nil)
	got, err := e.ScoreHashtag(ctx, "#brunch", testContext())
	if err != nil {
		t.Fatal(err)
	}
	if src.callCount() != 2 {
		t.Errorf("source called %d times, want 2 (fallback must not be cached)", src.callCount())
	}
	if reflect.DeepEqual(got, Fallback("#brunch")) {
		t.Error("still serving fallback after the source recovered")
	}
}

func TestScoreHashtagCaching(t *testing.T) {
	src := &fakeSource{}
	e, _ := testEngine(src)
	ctx := context.Background()

	first, err := e.ScoreHashtag(ctx, "#brunch", testContext())
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.ScoreHashtag(ctx, "#brunch", testContext())
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached result differs:\n%+v\n%+v", first, second)
	}
	if src.callCount() != 1 {
		t.Errorf("source called %d times, want 1", src.callCount())
	}
}

func TestCacheKeyNormalization(t *testing.T) {
	src := &fakeSource{}
	e, _ := testEngine(src)
	ctx := context.Background()

	if _, err := e.ScoreHashtag(ctx, "#Brunch", testContext()); err != nil {
		t.Fatal(err)
	}

	variant := testContext()
	variant.BusinessType = "  PLUMBING "
	variant.Location = "austin,  tx"
	variant.Platform = "Instagram"
	if _, err := e.ScoreHashtag(ctx, "brunch", variant); err != nil {
		t.Fatal(err)
	}

	if src.callCount() != 1 {
		t.Errorf("source called %d times, want 1 (equivalent keys must share a cache entry)", src.callCount())
	}
}

func TestCacheExpiryRecomputes(t *testing.T) {
	src := &fakeSource{}
	e, now := testEngine(src)
	ctx := context.Background()

	first, err := e.ScoreHashtag(ctx, "#brunch", testContext())
	if err != nil {
		t.Fatal(err)
	}

	// Fresh trend data arrives, then the entry expires.
	var articles []trends.Article
	for i := 0; i < 5; i++ {
		articles = append(articles, trends.Article{
			Title:     "brunch spots worth the wait",
			Published: now.Add(-time.Hour),
		})
	}
	src.set(trends.Snapshot{Articles: articles}, nil)
	*now = now.Add(e.TTL + time.Second)

	second, err := e.ScoreHashtag(ctx, "#brunch", testContext())
	if err != nil {
		t.Fatal(err)
	}
	if src.callCount() != 2 {
		t.Errorf("source called %d times, want 2 after expiry", src.callCount())
	}
	if second.Breakdown.Trending <= first.Breakdown.Trending {
		t.Errorf("expected recomputed trending score to rise: first=%v second=%v",
			first.Breakdown.Trending, second.Breakdown.Trending)
	}
}

func TestScoreHashtagsValidatesWholeBatch(t *testing.T) {
	e, _ := testEngine(&fakeSource{})

	res, err := e.ScoreHashtags(context.Background(), []string{"#brunch", "  "}, testContext())
	if !errors.Is(err, ErrEmptyHashtag) {
		t.Errorf("error = %v, want ErrEmptyHashtag", err)
	}
	if res != nil {
		t.Errorf("expected nil results on invalid batch, got %v", res)
	}
}

func TestScoreHashtagsSortedDescending(t *testing.T) {
	src := &fakeSource{}
	e, _ := testEngine(src)

	input := []string{"#zzzq", "#instagood", "#supportlocal"}
	res, err := e.ScoreHashtags(context.Background(), input, testContext())
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != len(input) {
		t.Fatalf("got %d results, want %d", len(res), len(input))
	}

	if !sort.SliceIsSorted(res, func(i, j int) bool { return res[i].Total > res[j].Total }) {
		t.Errorf("results not sorted by descending total: %v", totals(res))
	}
	if res[0].Hashtag != "#instagood" {
		t.Errorf("top result = %q, want #instagood", res[0].Hashtag)
	}

	got := map[string]bool{}
	for _, r := range res {
		got[r.Hashtag] = true
	}
	for _, h := range input {
		if !got[h] {
			t.Errorf("hashtag %q missing from results", h)
		}
	}
}

func TestScoreHashtagsTiesKeepInputOrder(t *testing.T) {
	src := &fakeSource{}
	e, _ := testEngine(src)

	// Identical structure, no keyword hits; both score the same.
	res, err := e.ScoreHashtags(context.Background(), []string{"#zzzq", "#qzzz"}, testContext())
	if err != nil {
		t.Fatal(err)
	}
	if res[0].Total != res[1].Total {
		t.Fatalf("expected a tie, got %v and %v", res[0].Total, res[1].Total)
	}
	if res[0].Hashtag != "#zzzq" || res[1].Hashtag != "#qzzz" {
		t.Errorf("tie order changed: %q, %q", res[0].Hashtag, res[1].Hashtag)
	}
}

func TestScoreHashtagsFetchesOnce(t *testing.T) {
	src := &fakeSource{}
	e, _ := testEngine(src)

	_, err := e.ScoreHashtags(context.Background(), []string{"#brunch", "#coffee", "#pasta", "#tacos"}, testContext())
	if err != nil {
		t.Fatal(err)
	}
	if src.callCount() != 1 {
		t.Errorf("source called %d times, want 1 per batch", src.callCount())
	}
}

func TestScoreHashtagsAllCachedSkipsFetch(t *testing.T) {
	src := &fakeSource{}
	e, _ := testEngine(src)
	ctx := context.Background()

	if _, err := e.ScoreHashtags(ctx, []string{"#brunch", "#coffee"}, testContext()); err != nil {
		t.Fatal(err)
	}
	if _, err := e.ScoreHashtags(ctx, []string{"#coffee", "#brunch"}, testContext()); err != nil {
		t.Fatal(err)
	}
	if src.callCount() != 1 {
		t.Errorf("source called %d times, want 1 (second batch fully cached)", src.callCount())
	}
}

func TestScoreHashtagsFallbackPerHashtag(t *testing.T) {
	src := &fakeSource{err: errors.New("feed unreachable")}
	e, _ := testEngine(src)

	res, err := e.ScoreHashtags(context.Background(), []string{"#brunch", "#coffee"}, testContext())
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range res {
		if !reflect.DeepEqual(r, Fallback(r.Hashtag)) {
			t.Errorf("result for %q is not the fallback: %+v", r.Hashtag, r)
		}
	}
}

func totals(res []score.Result) []float64 {
	out := make([]float64, len(res))
	for i, r := range res {
		out[i] = r.Total
	}
	return out
}
