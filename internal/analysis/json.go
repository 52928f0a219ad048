package analysis

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fenceRegex = regexp.MustCompile("(?s)```(?:json)?\n?(.*?)```")

// extractJSON pulls a valid JSON block out of model output, handling
// markdown code fences and surrounding prose. Returns the sanitized
// input unchanged when no valid block is found, leaving the decode
// failure to the caller.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)

	var best string
	for _, m := range fenceRegex.FindAllStringSubmatch(text, -1) {
		if len(m) < 2 {
			continue
		}
		candidate := sanitizeJSON(strings.TrimSpace(m[1]))
		if json.Valid([]byte(candidate)) && len(candidate) > len(best) {
			best = candidate
		}
	}
	if best != "" {
		return best
	}

	if block := balancedBlock(text); block != "" {
		return block
	}
	return sanitizeJSON(text)
}

// balancedBlock scans for the largest balanced {...} or [...] region
// that decodes as JSON.
func balancedBlock(text string) string {
	var best string
	for i := 0; i < len(text); {
		start := strings.IndexAny(text[i:], "{[")
		if start == -1 {
			break
		}
		start += i

		opener := text[start]
		closer := byte('}')
		if opener == '[' {
			closer = ']'
		}

		depth := 0
		inString := false
		escaped := false
		end := -1
		for j := start; j < len(text); j++ {
			ch := text[j]
			if escaped {
				escaped = false
				continue
			}
			switch ch {
			case '\\':
				escaped = true
				continue
			case '"':
				inString = !inString
				continue
			}
			if inString {
				continue
			}
			if ch == opener {
				depth++
			} else if ch == closer {
				depth--
				if depth == 0 {
					end = j
					break
				}
			}
		}

		if end == -1 {
			i = start + 1
			continue
		}
		candidate := sanitizeJSON(text[start : end+1])
		if json.Valid([]byte(candidate)) && len(candidate) > len(best) {
			best = candidate
		}
		i = end + 1
	}
	return best
}

var jsonStringRegex = regexp.MustCompile(`"(?:\\.|[^"\\])*"`)

// sanitizeJSON escapes raw newlines inside string literals, a common
// defect in model generated JSON.
func sanitizeJSON(s string) string {
	return jsonStringRegex.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ReplaceAll(m, "\n", "\\n")
	})
}
