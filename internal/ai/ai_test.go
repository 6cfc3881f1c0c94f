package ai

import (
	"reflect"
	"strings"
	"testing"

	"github.com/charo360/tagrank/internal/config"
)

func TestParseHashtags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			"one per line",
			"#brunch\n#tacos\n#austineats",
			[]string{"#brunch", "#tacos", "#austineats"},
		},
		{
			"comma separated",
			"#brunch, #tacos, #austineats",
			[]string{"#brunch", "#tacos", "#austineats"},
		},
		{
			"bullets and missing prefixes",
			"- #brunch\n* tacos\n• #austineats",
			[]string{"#brunch", "#tacos", "#austineats"},
		},
		{
			"dedupes case-insensitively",
			"#Brunch\n#brunch\n#BRUNCH",
			[]string{"#Brunch"},
		},
		{
			"skips multi-word entries",
			"#brunch\nhere are some tags\n#tacos",
			[]string{"#brunch", "#tacos"},
		},
		{
			"empty input",
			"",
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseHashtags(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseHashtags() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseHashtagsCap(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 30; i++ {
		sb.WriteString("#tag")
		sb.WriteByte(byte('a' + i))
		sb.WriteByte('\n')
	}
	if got := parseHashtags(sb.String()); len(got) != 15 {
		t.Errorf("len = %d, want cap of 15", len(got))
	}
}

func TestNew(t *testing.T) {
	if _, err := New(nil, "key"); err == nil {
		t.Error("expected error for nil config")
	}
	if _, err := New(&config.AIConfig{Provider: "claude"}, ""); err == nil {
		t.Error("expected error for missing key")
	}
	if _, err := New(&config.AIConfig{Provider: "gemini"}, "key"); err == nil {
		t.Error("expected error for unknown provider")
	}

	gen, err := New(&config.AIConfig{Provider: "claude"}, "key")
	if err != nil {
		t.Fatalf("New(claude) error: %v", err)
	}
	cp, ok := gen.(*claudeProvider)
	if !ok {
		t.Fatalf("got %T, want *claudeProvider", gen)
	}
	if cp.model == "" {
		t.Error("default model not applied")
	}

	gen, err = New(&config.AIConfig{Provider: "openai", Model: "gpt-4o"}, "key")
	if err != nil {
		t.Fatalf("New(openai) error: %v", err)
	}
	op, ok := gen.(*openaiProvider)
	if !ok {
		t.Fatalf("got %T, want *openaiProvider", gen)
	}
	if op.model != "gpt-4o" {
		t.Errorf("model = %q, want explicit override", op.model)
	}
}
