package ai

import (
	"regexp"
	"strings"

	"github.com/zhubert/navigator/internal/errors"
	"github.com/zhubert/navigator/internal/theme"
)

// jsonObject spans from the first '{' to the last '}', across newlines.
var jsonObject = regexp.MustCompile(`\{[\s\S]*\}`)

// ExtractJSON returns the brace-delimited span of raw, if any. The service
// may wrap its JSON in prose or markdown fences.
func ExtractJSON(raw string) (string, bool) {
	span := jsonObject.FindString(strings.TrimSpace(raw))
	return span, span != ""
}

// ExtractTheme runs the two-stage theme pipeline over raw response text:
// structural extraction, then strict decoding and validation.
func ExtractTheme(raw string) (theme.Theme, error) {
	span, ok := ExtractJSON(raw)
	if !ok {
		return theme.Theme{}, errors.MalformedResponse("ai.ExtractTheme", raw)
	}
	return theme.Parse([]byte(span))
}
