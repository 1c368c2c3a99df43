// Package sanitize strips markup from request payloads before validation and
// binding. The policy is bluemonday's strict policy: every tag and attribute
// is removed, text content survives with entities escaped.
package sanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// String removes all markup from s, returning plain text. Entities in the
// output stay escaped, so the result is a fixpoint of the policy:
// String(String(s)) == String(s), and no tag can survive a pass.
func String(s string) string {
	return policy.Sanitize(s)
}

// Strip walks a decoded JSON payload and sanitizes every string value,
// descending into nested objects and arrays. Non-string values pass through
// unchanged. The input map is returned for chaining; string values are
// replaced in place.
func Strip(payload map[string]any) map[string]any {
	for k, v := range payload {
		payload[k] = value(v)
	}
	return payload
}

func value(v any) any {
	switch t := v.(type) {
	case string:
		return String(t)
	case map[string]any:
		return Strip(t)
	case []any:
		for i, e := range t {
			t[i] = value(e)
		}
		return t
	default:
		return v
	}
}
