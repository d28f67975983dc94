// Package utils provides utility functions and helpers for common operations
// used throughout the application: errors, responses, validation, logging and
// a handful of slice helpers for app and group lists.
package utils

import (
	"strings"
)

// ContainsString checks if a slice of strings contains a specific string.
func ContainsString(slice []string, str string) bool {
	for _, item := range slice {
		if item == str {
			return true
		}
	}
	return false
}

// NormalizeList trims every entry, drops empty ones and removes duplicates
// while keeping the first occurrence order.
//
// Parameters:
//   - values: the raw list, e.g. group ids taken from a request body
//
// Returns:
//   - a new slice, never nil
func NormalizeList(values []string) []string {
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

// Intersects reports whether the two lists share at least one entry.
func Intersects(a, b []string) bool {
	for _, item := range a {
		if ContainsString(b, item) {
			return true
		}
	}
	return false
}
