package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Tech Conf 2024!! — Keynote", "tech-conf-2024-keynote"},
		{"Hello World", "hello-world"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Already-Hyphenated Title", "already-hyphenated-title"},
		{"Multiple   spaces\tand\ttabs", "multiple-spaces-and-tabs"},
		{"--- dashes --- everywhere ---", "dashes-everywhere"},
		{"GoConf (Berlin) @ 2025", "goconf-berlin-2025"},
		{"UPPERCASE", "uppercase"},
		{"", ""},
		{"!!!???", ""},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, GenerateSlug(c.title), "title %q", c.title)
	}
}

func TestGenerateSlugDeterministic(t *testing.T) {
	titles := []string{"Tech Conf 2024", "  A   B  ", "é è ü", "x-y-z"}
	for _, title := range titles {
		assert.Equal(t, GenerateSlug(title), GenerateSlug(title))
	}
}

func TestGenerateSlugIdempotent(t *testing.T) {
	// a slug re-slugged is itself
	titles := []string{"Tech Conf!! 2024", "Hello, World", "a  b   c"}
	for _, title := range titles {
		slug := GenerateSlug(title)
		assert.Equal(t, slug, GenerateSlug(slug))
	}
}
