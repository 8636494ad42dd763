package utils

import (
	"regexp"
	"strings"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>?`)

// SanitizeString removes HTML-tag-like substrings and trims surrounding
// whitespace.
func SanitizeString(value string) string {
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(value, ""))
}

// SanitizeTags sanitizes each tag, drops empties, deduplicates
// case-insensitively keeping the first-seen casing and input order, and
// stops once 5 unique tags are collected.
func SanitizeTags(tags []string) []string {
	clean := make([]string, 0, 5)
	seen := make(map[string]bool, len(tags))
	for _, raw := range tags {
		tag := SanitizeString(raw)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		clean = append(clean, tag)
		if len(clean) >= 5 {
			break
		}
	}
	return clean
}
