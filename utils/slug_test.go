package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSlug(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"clean input is idempotent", "abc-def", "abc-def"},
		{"strips punctuation and collapses whitespace", "Hello, World!!", "hello-world"},
		{"lowercases", "Welcome Quiz", "welcome-quiz"},
		{"collapses hyphen runs", "a -- b", "a-b"},
		{"strips symbols", "50% Off: Summer Sale!", "50-off-summer-sale"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveSlug(tt.title))
		})
	}
}

func TestDeriveSlugTruncatesTo50(t *testing.T) {
	long := strings.Repeat("abcde ", 20)
	slug := DeriveSlug(long)
	assert.LessOrEqual(t, len(slug), 50)
	assert.True(t, strings.HasPrefix(slug, "abcde-abcde"))
}

func TestSanitizeHandle(t *testing.T) {
	tests := []struct {
		name   string
		handle string
		want   string
	}{
		{"strips spaces and punctuation", "My Program #1", "myprogram1"},
		{"lowercases", "Acme!", "acme"},
		{"keeps hyphens", "acme-rewards", "acme-rewards"},
		{"already clean", "demo", "demo"},
		{"only symbols become empty", "###", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeHandle(tt.handle))
		})
	}
}
