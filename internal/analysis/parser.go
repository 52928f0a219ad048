package analysis

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/tensorus/repoagent/internal/domain/models"
)

// ParseSuggestions converts raw model output into a SuggestionMap. The
// model is asked for JSON but not trusted to return it, so parsing is a
// best-effort fallback chain:
//
//  1. structured: decode as JSON and project the expected keys;
//  2. free text: only when the JSON decode fails, scan numbered or
//     labelled lines, with ordinals mapped positionally onto keys.
//
// An empty map is a valid outcome meaning "no suggestions extracted";
// ParseSuggestions never fails.
func ParseSuggestions(raw string, keys []string) *models.SuggestionMap {
	out := models.NewSuggestionMap()
	if strings.TrimSpace(raw) == "" {
		return out
	}
	if parseStructured(raw, keys, out) {
		return out
	}
	parseFreeText(raw, keys, out)
	return out
}

// suggestionRecord is the object shape some responses use instead of a
// plain string array.
type suggestionRecord struct {
	Suggestion string `json:"suggestion"`
}

// parseStructured reports whether raw decoded as JSON. Expected keys
// whose value is neither an array of strings nor an array of suggestion
// records are skipped silently; absent keys are simply not in the
// result.
func parseStructured(raw string, keys []string, out *models.SuggestionMap) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(extractJSON(raw)), &fields); err != nil {
		return false
	}

	for _, key := range keys {
		value, ok := fields[key]
		if !ok {
			continue
		}

		var plain []string
		if err := json.Unmarshal(value, &plain); err == nil {
			out.AddAll(key, plain)
			continue
		}

		var records []suggestionRecord
		if err := json.Unmarshal(value, &records); err != nil {
			continue
		}
		for _, r := range records {
			if s := strings.TrimSpace(r.Suggestion); s != "" {
				out.Add(key, s)
			}
		}
	}
	return true
}

var ordinalRegex = regexp.MustCompile(`^(\d+)\.\s*(.*)$`)

// parseFreeText scans numbered-list or labelled output line by line. An
// ordinal marker selects the positionally matching key (out-of-range
// ordinals clear the cursor so following lines are dropped, not
// misfiled); a line ending in ':' selects its normalized label; any
// other non-blank line is collected under the current cursor.
func parseFreeText(raw string, keys []string, out *models.SuggestionMap) {
	current := ""
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := ordinalRegex.FindStringSubmatch(line); m != nil {
			idx, _ := strconv.Atoi(m[1])
			if idx >= 1 && idx <= len(keys) {
				current = keys[idx-1]
				// "1. Code Quality:" is a heading, "1. Add tests" is
				// already a suggestion.
				if rest := strings.TrimSpace(m[2]); rest != "" && !strings.HasSuffix(rest, ":") {
					out.Add(current, rest)
				}
			} else {
				current = ""
			}
			continue
		}

		if strings.HasSuffix(line, ":") {
			current = normalizeLabel(strings.TrimSuffix(line, ":"))
			continue
		}

		if current != "" {
			out.Add(current, line)
		}
	}
}

// normalizeLabel lowercases a heading and joins its words with
// underscores, so "Code Quality" matches the "code_quality" key.
func normalizeLabel(label string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "_")
}
