package score

import (
	"reflect"
	"testing"
	"time"

	"github.com/charo360/tagrank/internal/trends"
)

func intPtr(n int) *int { return &n }

func TestTotalWeights(t *testing.T) {
	tests := []struct {
		name string
		b    Breakdown
		want float64
	}{
		{"all max", Breakdown{10, 10, 10, 10, 10, 10, 10, 10}, 10.0},
		{"all neutral", Breakdown{5, 5, 5, 5, 5, 5, 5, 5}, 5.0},
		{"all zero", Breakdown{}, 0.0},
		{"trending only", Breakdown{Trending: 10}, 2.5},
		{"business only", Breakdown{Business: 10}, 2.0},
		{"engagement only", Breakdown{Engagement: 10}, 1.5},
		{"platform only", Breakdown{Platform: 10}, 1.2},
		{"location only", Breakdown{Location: 10}, 1.0},
		{"semantic only", Breakdown{Semantic: 10}, 0.8},
		{"temporal only", Breakdown{Temporal: 10}, 0.6},
		{"competitor only", Breakdown{Competitor: 10}, 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Total(tt.b); got != tt.want {
				t.Errorf("Total() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTotalRoundsHalfUp(t *testing.T) {
	// 5 * 0.25 = 1.25, rounds away from zero to 1.3
	if got := Total(Breakdown{Trending: 5}); got != 1.3 {
		t.Errorf("Total() = %v, want 1.3", got)
	}
}

func nycFoodieInputs() (Context, trends.Snapshot, time.Time) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	ctx := Context{
		BusinessType: "restaurant",
		Location:     "New York, NY",
		Platform:     "instagram",
		TimeOfDay:    intPtr(9),
		DayOfWeek:    intPtr(2),
	}
	var articles []trends.Article
	for i := 0; i < 5; i++ {
		articles = append(articles, trends.Article{
			Title:       "City buzz: nycfoodie keeps growing",
			Description: "Another look at the scene.",
			Published:   now.Add(-24 * time.Hour),
		})
	}
	return ctx, trends.Snapshot{Articles: articles}, now
}

func TestRateEndToEnd(t *testing.T) {
	ctx, snap, now := nycFoodieInputs()
	res := Rate("#NYCFoodie", ctx, snap, now)

	wantBreakdown := Breakdown{
		Trending:   10, // five mentions
		Business:   4,  // two industry keyword hits
		Location:   0,
		Platform:   6, // length within range
		Engagement: 5, // length bonus only
		Temporal:   5, // base only
		Competitor: 9, // heavy industry co-occurrence
		Semantic:   0,
	}
	if res.Breakdown != wantBreakdown {
		t.Fatalf("Breakdown = %+v, want %+v", res.Breakdown, wantBreakdown)
	}
	if res.Total != 5.4 {
		t.Errorf("Total = %v, want 5.4", res.Total)
	}
	if res.Confidence != 0.5 {
		t.Errorf("Confidence = %v, want 0.5", res.Confidence)
	}
	if res.Recommendation != RecommendLow {
		t.Errorf("Recommendation = %q, want %q", res.Recommendation, RecommendLow)
	}
	wantReasons := []string{
		"Highly trending in the current news cycle",
		"Actively used across your industry",
	}
	if !reflect.DeepEqual(res.Reasoning, wantReasons) {
		t.Errorf("Reasoning = %v, want %v", res.Reasoning, wantReasons)
	}
}

func TestRateIsDeterministic(t *testing.T) {
	ctx, snap, now := nycFoodieInputs()
	first := Rate("#NYCFoodie", ctx, snap, now)
	second := Rate("#NYCFoodie", ctx, snap, now)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different results:\n%+v\n%+v", first, second)
	}
}

func TestEvaluateTimeOverrides(t *testing.T) {
	// Clock says Saturday night; overrides say Tuesday morning.
	now := time.Date(2025, 7, 12, 23, 0, 0, 0, time.UTC)
	ctx := Context{
		BusinessType: "restaurant",
		Location:     "Austin, TX",
		Platform:     "instagram",
		TimeOfDay:    intPtr(8),
		DayOfWeek:    intPtr(2),
	}
	b := Evaluate("#morningcoffee", ctx, trends.Snapshot{}, now)
	if b.Temporal != 8 {
		t.Errorf("Temporal = %v, want 8 (overridden morning hour)", b.Temporal)
	}

	ctx.TimeOfDay = nil
	ctx.DayOfWeek = nil
	b = Evaluate("#morningcoffee", ctx, trends.Snapshot{}, now)
	if b.Temporal != 5 {
		t.Errorf("Temporal = %v, want 5 (clock hour 23 is night)", b.Temporal)
	}
}

func TestEvaluateAllScoresBounded(t *testing.T) {
	ctx, snap, now := nycFoodieInputs()
	ctx.BusinessName = "NYC Foodie"
	ctx.PostContent = "nycfoodie brunch love amazing food"
	b := Evaluate("#nycfoodie", ctx, snap, now)
	for i, v := range b.values() {
		if v < 0 || v > 10 {
			t.Errorf("sub-score %d out of bounds: %v", i, v)
		}
	}
	total := Total(b)
	if total < 0 || total > 10 {
		t.Errorf("total out of bounds: %v", total)
	}
}
