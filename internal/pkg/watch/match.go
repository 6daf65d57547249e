package watch

import "strings"

// Match returns every keyword contained in text, in keyword order.
// Keywords are expected to be lowercase already.
func Match(text string, keywords []string) []string {
	text = strings.ToLower(text)
	var matched []string
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}

// First returns the first keyword contained in text. A message produces at
// most one notification, so the forwarding path only looks at this one.
func First(text string, keywords []string) (string, bool) {
	text = strings.ToLower(text)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, kw) {
			return kw, true
		}
	}
	return "", false
}
