// Package theme validates color themes and derives the secondary visual
// tokens the rendering layer needs from them.
package theme

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/zhubert/navigator/internal/errors"
)

// Theme is the four-color palette of the shell. Every field is a
// "#rrggbb" string. Themes are replaced wholesale, never patched.
type Theme struct {
	PrimaryColor    string `json:"primaryColor"`
	AccentColor     string `json:"accentColor"`
	TextColor       string `json:"textColor"`
	BackgroundColor string `json:"backgroundColor"`
}

// Default is the theme every session starts with.
func Default() Theme {
	return Theme{
		PrimaryColor:    "#03d8f3",
		AccentColor:     "#fcee0c",
		TextColor:       "#e0e0e0",
		BackgroundColor: "#1a1a2e",
	}
}

// Field names as they appear on the wire, in schema order.
const (
	FieldPrimary    = "primaryColor"
	FieldAccent     = "accentColor"
	FieldText       = "textColor"
	FieldBackground = "backgroundColor"
)

// Fields lists the required keys in schema order.
var Fields = []string{FieldPrimary, FieldAccent, FieldText, FieldBackground}

// Validate reports every required field that is the empty string. Color
// syntax is not checked; a malformed color degrades in DeriveTokens instead.
func Validate(t Theme) error {
	var missing []string
	for _, f := range []struct {
		name, value string
	}{
		{FieldPrimary, t.PrimaryColor},
		{FieldAccent, t.AccentColor},
		{FieldText, t.TextColor},
		{FieldBackground, t.BackgroundColor},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return errors.ValidationFailed("theme.Validate", missing)
	}
	return nil
}

// Parse decodes a JSON object into a Theme and validates it. Keys must
// match Fields exactly, including case. Unknown keys are ignored; a
// non-string value for a required key fails decoding.
func Parse(raw []byte) (Theme, error) {
	const op errors.Op = "theme.Parse"

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return Theme{}, errors.E(op, errors.KindMalformedResponse, err)
	}
	values := make(map[string]string, len(Fields))
	for _, f := range Fields {
		v, ok := obj[f]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return Theme{}, errors.E(op, errors.KindMalformedResponse, f, err)
		}
		values[f] = s
	}

	t := Theme{
		PrimaryColor:    values[FieldPrimary],
		AccentColor:     values[FieldAccent],
		TextColor:       values[FieldText],
		BackgroundColor: values[FieldBackground],
	}
	if err := Validate(t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// Tokens are the values derived from a Theme.
type Tokens struct {
	// BackgroundAlpha85 is BackgroundColor with the "d9" (~85%) alpha suffix.
	BackgroundAlpha85 string
	// BorderColor is PrimaryColor at 30% opacity, "rgba(r,g,b,0.3)".
	BorderColor string
	// Valid is false when PrimaryColor was not well-formed hex and some
	// BorderColor components fell back to 0.
	Valid bool
}

// alphaSuffix85 is ~85% opacity as a two-digit hex alpha.
const alphaSuffix85 = "d9"

// DeriveTokens computes the secondary tokens for t. It never fails: an
// unparsable primary color yields zeroed components and Valid=false.
func DeriveTokens(t Theme) Tokens {
	r, g, b, ok := RGB(t.PrimaryColor)
	return Tokens{
		BackgroundAlpha85: t.BackgroundColor + alphaSuffix85,
		BorderColor:       fmt.Sprintf("rgba(%d,%d,%d,0.3)", r, g, b),
		Valid:             ok,
	}
}

// RGB splits the hex digits after the leading '#' into three two-digit
// groups. A group that is missing or not hex becomes 0 and ok is false.
func RGB(color string) (r, g, b int, ok bool) {
	hex := strings.Replace(color, "#", "", 1)
	ok = true
	parts := [3]int{}
	for i := range parts {
		start, end := i*2, i*2+2
		if start >= len(hex) {
			ok = false
			continue
		}
		if end > len(hex) {
			end = len(hex)
		}
		v, err := strconv.ParseUint(hex[start:end], 16, 8)
		if err != nil {
			ok = false
			continue
		}
		parts[i] = int(v)
	}
	return parts[0], parts[1], parts[2], ok
}

// Variable names pushed to the rendering layer.
const (
	VarPrimary               = "--primary-color"
	VarAccent                = "--accent-color"
	VarText                  = "--text-color"
	VarBackground            = "--background-color"
	VarBackgroundTransparent = "--background-color-transparent"
	VarGlow                  = "--glow-color"
	VarBorder                = "--border-color"
)

// Variables returns the full named-variable set for t.
func Variables(t Theme) map[string]string {
	tok := DeriveTokens(t)
	return map[string]string{
		VarPrimary:               t.PrimaryColor,
		VarAccent:                t.AccentColor,
		VarText:                  t.TextColor,
		VarBackground:            t.BackgroundColor,
		VarBackgroundTransparent: tok.BackgroundAlpha85,
		VarGlow:                  t.PrimaryColor,
		VarBorder:                tok.BorderColor,
	}
}
