package trends

import (
	"reflect"
	"testing"
	"time"
)

func TestBuildKeywords(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	articles := []Article{
		{Title: "Local restaurants embrace seasonal menus"},
		{Title: "Seasonal produce drives restaurant menus"},
		{Title: "Restaurant openings surge downtown"},
	}

	snap := Build(articles, []string{"business"}, now)

	// Terms in two or more titles, tied counts broken alphabetically.
	want := []string{"menus", "restaurant", "seasonal"}
	if !reflect.DeepEqual(snap.Keywords, want) {
		t.Errorf("Keywords = %v, want %v", snap.Keywords, want)
	}
	if len(snap.Articles) != 3 {
		t.Errorf("Articles = %d, want 3", len(snap.Articles))
	}
	if !reflect.DeepEqual(snap.Topics, []string{"business"}) {
		t.Errorf("Topics = %v", snap.Topics)
	}
	if !snap.FetchedAt.Equal(now) {
		t.Errorf("FetchedAt = %v, want %v", snap.FetchedAt, now)
	}
}

func TestBuildCountsTermOncePerTitle(t *testing.T) {
	now := time.Now()
	articles := []Article{
		{Title: "pizza pizza pizza festival"},
		{Title: "weekend concert lineup"},
	}
	snap := Build(articles, nil, now)
	if len(snap.Keywords) != 0 {
		t.Errorf("Keywords = %v, want none (no term spans two titles)", snap.Keywords)
	}
}

func TestBuildCapsKeywords(t *testing.T) {
	now := time.Now()
	title := "alpha bravo charlie delta echoes foxtrot golfing hotels india juliet kilos limas mikes novembers oscars papas quebecs"
	articles := []Article{{Title: title}, {Title: title}}
	snap := Build(articles, nil, now)
	if len(snap.Keywords) != 15 {
		t.Errorf("len(Keywords) = %d, want cap of 15", len(snap.Keywords))
	}
}

func TestEmpty(t *testing.T) {
	now := time.Now()
	snap := Empty(now)
	if len(snap.Articles) != 0 || len(snap.Keywords) != 0 {
		t.Errorf("Empty snapshot carries data: %+v", snap)
	}
	if !snap.FetchedAt.Equal(now) {
		t.Errorf("FetchedAt = %v, want %v", snap.FetchedAt, now)
	}
}

func TestTokenize(t *testing.T) {
	got := tokenize("When markets rally, investors cheer loudly")
	want := []string{"markets", "rally", "investors", "cheer", "loudly"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tokenize() = %v, want %v", got, want)
	}
}

func TestTokenizeDropsShortAndStopWords(t *testing.T) {
	for _, tok := range tokenize("The cat says news at ten o'clock") {
		if stopWords[tok] {
			t.Errorf("stop word %q survived", tok)
		}
		if len(tok) < 4 {
			t.Errorf("short token %q survived", tok)
		}
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<p>Hello <b>world</b></p>", "Hello world"},
		{"plain text", "plain text"},
		{"line<br/>break", "line break"},
		{"  spaced   out  ", "spaced out"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := stripHTML(tt.in); got != tt.want {
			t.Errorf("stripHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is a longer string", 10, "this is..."},
		{"abcdef", 3, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
