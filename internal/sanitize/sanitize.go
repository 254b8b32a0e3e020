// Package sanitize strips markup from free text before it is stored or returned.
package sanitize

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// maxPasses bounds how many layers of entity encoding Text peels off.
const maxPasses = 8

// Text removes every HTML element from s, including markup hidden behind
// entity encoding. The result is plain text: entities are decoded only once no
// further markup can appear.
func Text(s string) string {
	if s == "" {
		return s
	}
	for i := 0; i < maxPasses; i++ {
		clean := policy.Sanitize(s)
		plain := html.UnescapeString(clean)
		if plain == s {
			return plain
		}
		s = plain
	}
	return policy.Sanitize(s)
}

// Ptr applies Text to a nullable value.
func Ptr(s *string) *string {
	if s == nil {
		return nil
	}
	clean := Text(*s)
	return &clean
}
