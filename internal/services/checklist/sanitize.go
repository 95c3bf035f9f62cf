package checklistsvc

import "strings"

// sanitizeText trims leading/trailing whitespace and strips control
// characters (U+0000-U+001F and U+007F).
func sanitizeText(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

// sanitizePayload sanitizes string values at the top level of the payload
// only; nested containers pass through untouched, as do non-string values.
func sanitizePayload(payload map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(payload))
	for k, v := range payload {
		if s, ok := v.(string); ok {
			out[k] = sanitizeText(s)
			continue
		}
		out[k] = v
	}
	return out
}
