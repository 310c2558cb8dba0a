package utils

import (
	"strings"
)

// CategorySlug derives a URL slug from a category name by lowercasing and
// stripping all whitespace: "Web Development" -> "webdevelopment".
func CategorySlug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "")
}

// SplitTags turns a comma-delimited tag string into an ordered, trimmed
// tag list. Empty entries are dropped.
func SplitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
