package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zhubert/navigator/internal/theme"
)

// rgb is an opaque terminal color.
type rgb struct{ r, g, b int }

func (c rgb) hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
}

// parseHexColor parses "#rrggbb" or "#rrggbbaa". Alpha defaults to 1.
func parseHexColor(s string) (c rgb, alpha float64, ok bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") || (len(s) != 7 && len(s) != 9) {
		return rgb{}, 0, false
	}
	r, g, b, ok := theme.RGB(s[:7])
	if !ok {
		return rgb{}, 0, false
	}
	alpha = 1
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return rgb{}, 0, false
		}
		alpha = float64(a) / 255
	}
	return rgb{r, g, b}, alpha, true
}

// parseRGBA parses the "rgba(r,g,b,a)" form used by derived tokens.
func parseRGBA(s string) (c rgb, alpha float64, ok bool) {
	var r, g, b int
	if _, err := fmt.Sscanf(strings.ReplaceAll(s, " ", ""), "rgba(%d,%d,%d,%g)", &r, &g, &b, &alpha); err != nil {
		return rgb{}, 0, false
	}
	return rgb{r, g, b}, alpha, true
}

// blend composites fg at alpha over bg.
func blend(fg, bg rgb, alpha float64) rgb {
	mix := func(f, b int) int {
		v := int(float64(f)*alpha + float64(b)*(1-alpha) + 0.5)
		return max(0, min(255, v))
	}
	return rgb{mix(fg.r, bg.r), mix(fg.g, bg.g), mix(fg.b, bg.b)}
}

// resolveColor turns a theme variable into an opaque hex color over bg.
// Unparsable values yield fallback.
func resolveColor(value string, bg rgb, fallback string) string {
	if c, a, ok := parseHexColor(value); ok {
		return blend(c, bg, a).hex()
	}
	if c, a, ok := parseRGBA(value); ok {
		return blend(c, bg, a).hex()
	}
	if c, _, ok := parseHexColor(fallback); ok {
		return c.hex()
	}
	return fallback
}

// parseColorValue returns the opaque hex form of a "#rrggbb" value.
func parseColorValue(value string) (string, bool) {
	c, _, ok := parseHexColor(value)
	if !ok {
		return "", false
	}
	return c.hex(), true
}
