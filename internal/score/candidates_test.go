package score

import (
	"strings"
	"testing"
)

func TestCandidatesFromContext(t *testing.T) {
	ctx := Context{
		BusinessName: "Joe's Diner",
		BusinessType: "restaurant",
		Location:     "New York, NY",
		Services:     []string{"catering"},
		PostContent:  "Fresh pasta specials tonight",
	}
	got := Candidates(ctx)

	if len(got) == 0 || len(got) > 20 {
		t.Fatalf("Candidates() returned %d entries", len(got))
	}

	seen := map[string]bool{}
	for _, c := range got {
		if !strings.HasPrefix(c, "#") {
			t.Errorf("candidate %q missing # prefix", c)
		}
		body := strings.TrimPrefix(c, "#")
		if len(body) < 3 || len(body) > 30 {
			t.Errorf("candidate %q outside length bounds", c)
		}
		if seen[c] {
			t.Errorf("duplicate candidate %q", c)
		}
		seen[c] = true
	}

	for _, want := range []string{"#joesdiner", "#restaurant", "#catering", "#newrestaurant", "#food"} {
		if !seen[want] {
			t.Errorf("Candidates() missing %q in %v", want, got)
		}
	}
}

func TestCandidatesDedupeAcrossSources(t *testing.T) {
	ctx := Context{
		BusinessType: "restaurant",
		Services:     []string{"food"}, // also an industry keyword
	}
	count := 0
	for _, c := range Candidates(ctx) {
		if c == "#food" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("#food appeared %d times, want 1", count)
	}
}

func TestCandidatesEmptyContext(t *testing.T) {
	got := Candidates(Context{})
	// Generic industry and semantic vocabulary still applies.
	if len(got) == 0 {
		t.Fatal("expected fallback candidates for an empty context")
	}
	for _, c := range got {
		if !strings.HasPrefix(c, "#") {
			t.Errorf("candidate %q missing # prefix", c)
		}
	}
}
