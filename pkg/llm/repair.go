package llm

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNoJSON is returned when no JSON object can be recovered from the text.
var ErrNoJSON = errors.New("no JSON object found in LLM output")

var (
	fencePattern         = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
	lineCommentPattern   = regexp.MustCompile(`(?m)^\s*//.*$`)
	trailingCommaPattern = regexp.MustCompile(`,\s*([}\]])`)
)

// RepairJSON applies the deterministic repair pass to raw model output:
// strip markdown code fences, extract the outermost {...} object, drop
// line comments, and remove trailing commas. It never attempts semantic
// fixes — anything beyond these mechanical repairs is a stage failure.
func RepairJSON(raw string) (string, error) {
	text := strings.TrimSpace(raw)

	if m := fencePattern.FindStringSubmatch(text); m != nil {
		text = strings.TrimSpace(m[1])
	}

	text = extractOutermostObject(text)
	if text == "" {
		return "", ErrNoJSON
	}

	text = lineCommentPattern.ReplaceAllString(text, "")
	text = trailingCommaPattern.ReplaceAllString(text, "$1")

	return strings.TrimSpace(text), nil
}

// extractOutermostObject returns the first balanced {...} span, tracking
// string literals so braces inside values do not confuse the depth count.
func extractOutermostObject(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}
