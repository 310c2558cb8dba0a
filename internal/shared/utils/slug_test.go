package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorySlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single word", "General", "general"},
		{"two words", "Web Development", "webdevelopment"},
		{"extra whitespace", "  Web   Development  ", "webdevelopment"},
		{"mixed case", "DevOps Tips", "devopstips"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategorySlug(tt.in))
		})
	}
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "go,web", []string{"go", "web"}},
		{"trims spaces", " go , web ", []string{"go", "web"}},
		{"drops empties", "go,,web,", []string{"go", "web"}},
		{"empty input", "", []string{}},
		{"only commas", ",,,", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitTags(tt.in))
		})
	}
}
