// Package htmlsanitize strips markup from externally sourced text.
//
// Plan item titles and CTA labels originate in other services and end up in
// the renderer verbatim, so they pass through bluemonday's strict policy
// before entering a response payload.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var strict = bluemonday.StrictPolicy()

// PlainText removes every HTML element and attribute, leaving only the
// escaped text content.
func PlainText(s string) string {
	return strict.Sanitize(s)
}
