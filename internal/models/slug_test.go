package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple word", input: "guitar", want: "guitar"},
		{name: "uppercase", input: "Programming", want: "programming"},
		{name: "spaces become hyphens", input: "Web Development", want: "web-development"},
		{name: "punctuation collapses", input: "UI/UX Design", want: "ui-ux-design"},
		{name: "multiple separators collapse", input: "Data  --  Science", want: "data-science"},
		{name: "leading and trailing trimmed", input: "  photography!  ", want: "photography"},
		{name: "digits kept", input: "Web3 Basics", want: "web3-basics"},
		{name: "empty", input: "", want: ""},
		{name: "only separators", input: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestSlugifyProperties(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		input := rapid.String().Draw(rt, "input")
		slug := Slugify(input)

		for _, r := range slug {
			if !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r != '-' {
				rt.Fatalf("slug %q contains invalid rune %q", slug, r)
			}
		}
		if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
			rt.Fatalf("slug %q has a boundary hyphen", slug)
		}
		if strings.Contains(slug, "--") {
			rt.Fatalf("slug %q has consecutive hyphens", slug)
		}
		if Slugify(slug) != slug {
			rt.Fatalf("slugify is not idempotent for %q: %q", input, slug)
		}
	})
}
