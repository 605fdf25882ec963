package analyses

import (
	"encoding/json"
	"strings"
)

// Normalize repairs a raw model completion into an AnalysisResult. It is a
// total function: any unparseable input yields the fallback result with
// degraded set to true, never an error.
//
// The model is not contractually guaranteed to emit bare JSON. The string
// surgery below tolerates the two deviations seen in practice: markdown
// fencing and trailing prose after the closing brace.
func Normalize(raw string) (AnalysisResult, bool) {
	s := strings.TrimSpace(raw)

	// Strip one leading fence line ("```" or "```json") and one trailing
	// fence marker. Not a global removal.
	if strings.HasPrefix(s, "```") {
		if idx := strings.IndexByte(s, '\n'); idx >= 0 {
			s = s[idx+1:]
		} else {
			s = ""
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")

	// Cut anything the model appended after the JSON object. If there is
	// no closing brace the string passes through unchanged and parsing
	// decides its fate.
	if idx := strings.LastIndexByte(s, '}'); idx >= 0 {
		s = s[:idx+1]
	}

	// Unmarshal accepts "null" as a silent no-op, so require an object.
	if !strings.HasPrefix(s, "{") {
		return FallbackResult(), true
	}
	var result AnalysisResult
	if err := json.Unmarshal([]byte(s), &result); err != nil {
		return FallbackResult(), true
	}
	return result, false
}
