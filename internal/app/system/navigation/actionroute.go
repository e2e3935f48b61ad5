// Package navigation provides helpers for safe dashboard action URLs.
//
// Action URLs arrive from the plan service and from stored documents, so
// they are treated as untrusted: only rooted in-app routes survive, and a
// fallback route takes the place of anything suspicious. This keeps the
// single dashboard CTA from ever carrying a script-bearing scheme.
package navigation

import "strings"

// FallbackRoute is the universal safe destination for the dashboard CTA.
const FallbackRoute = "/focus"

// IsValidActionRoute reports whether href is a safe in-app route: non-empty,
// rooted at "/", and free of javascript:/data: scheme payloads anywhere in
// the string (schemes can hide behind whitespace or nesting, so a contains
// check is deliberate).
func IsValidActionRoute(href string) bool {
	if href == "" {
		return false
	}
	if !strings.HasPrefix(href, "/") {
		return false
	}
	lower := strings.ToLower(href)
	if strings.Contains(lower, "javascript:") || strings.Contains(lower, "data:") {
		return false
	}
	return true
}

// SafeActionRoute returns href when it passes IsValidActionRoute, otherwise
// the given fallback (or FallbackRoute when fallback is empty).
func SafeActionRoute(href, fallback string) string {
	if IsValidActionRoute(href) {
		return href
	}
	if fallback == "" {
		return FallbackRoute
	}
	return fallback
}
