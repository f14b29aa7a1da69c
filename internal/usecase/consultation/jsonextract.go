package consultation

import "strings"

// ExtractJSONObject returns the first balanced {...} span in s. Model output
// often wraps the JSON payload in commentary, so a greedy match from the first
// brace to the last would truncate or overmatch on nested objects. The scan is
// string-aware: braces inside JSON string literals do not affect the depth.
func ExtractJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	return "", false
}
