// jsonparse.go - Two-stage parsing of untrusted inference responses

package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// StripCodeFence removes a markdown code fence wrapping a response.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

var reJSONString = regexp.MustCompile(`"([^"]*(?:\\.[^"]*)*)"`)

// RepairJSONEscaping fixes the most common escaping defect in model output:
// literal newlines, tabs and control characters inside JSON string values,
// which the strict parser rejects.
func RepairJSONEscaping(jsonStr string) string {
	return reJSONString.ReplaceAllStringFunc(jsonStr, func(match string) string {
		if len(match) < 2 {
			return match
		}
		content := match[1 : len(match)-1]

		// backslash-space is an invalid escape the model occasionally emits
		content = strings.ReplaceAll(content, "\\ ", "\\\\ ")
		content = strings.ReplaceAll(content, "\n", "\\n")
		content = strings.ReplaceAll(content, "\r", "\\r")
		content = strings.ReplaceAll(content, "\t", "\\t")
		content = strings.ReplaceAll(content, "\f", "\\f")
		content = strings.ReplaceAll(content, "\b", "\\b")

		var b strings.Builder
		for _, ch := range content {
			if ch < 0x20 {
				b.WriteString(fmt.Sprintf("\\u%04x", ch))
			} else {
				b.WriteRune(ch)
			}
		}
		return `"` + b.String() + `"`
	})
}

// ExtractJSONObject locates the largest balanced {...} span in a response
// that mixes prose with JSON. String literals and escapes are honored while
// tracking brace depth.
func ExtractJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
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

// ParseWithRecovery parses an untrusted inference response into v. Stage
// one strips any code fence and attempts a strict parse (after escaping
// repair); stage two extracts the largest balanced brace span and retries.
// The stage-one error is preserved when both fail.
func ParseWithRecovery(raw string, v interface{}) error {
	s := StripCodeFence(raw)

	strictErr := json.Unmarshal([]byte(RepairJSONEscaping(s)), v)
	if strictErr == nil {
		return nil
	}

	span, ok := ExtractJSONObject(s)
	if !ok {
		return fmt.Errorf("response is not valid JSON and contains no JSON object: %w", strictErr)
	}
	if err := json.Unmarshal([]byte(RepairJSONEscaping(span)), v); err != nil {
		return fmt.Errorf("recovered JSON span failed to parse: %v (strict parse: %w)", err, strictErr)
	}
	return nil
}
