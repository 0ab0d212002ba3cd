package component

import (
	"fmt"
)

// TextColor is either one of the named colors, Reset, or a custom
// "#RRGGBB" value. Its string value is the wire token.
type TextColor string

const (
	Black     TextColor = "black"
	DarkBlue  TextColor = "dark_blue"
	DarkGreen TextColor = "dark_green"
	DarkCyan  TextColor = "dark_aqua"
	DarkRed   TextColor = "dark_red"
	Purple    TextColor = "dark_purple"
	Gold      TextColor = "gold"
	Gray      TextColor = "gray"
	DarkGray  TextColor = "dark_gray"
	Blue      TextColor = "blue"
	Green     TextColor = "green"
	Cyan      TextColor = "aqua"
	Red       TextColor = "red"
	Pink      TextColor = "light_purple"
	Yellow    TextColor = "yellow"
	White     TextColor = "white"
	Reset     TextColor = "reset"
)

// NamedColors lists the sixteen named colors in legacy code order (§0 to §f).
var NamedColors = [16]TextColor{
	Black, DarkBlue, DarkGreen, DarkCyan, DarkRed, Purple, Gold, Gray,
	DarkGray, Blue, Green, Cyan, Red, Pink, Yellow, White,
}

var namedColorTokens = map[string]TextColor{
	string(Reset): Reset,
}

func init() {
	for _, c := range NamedColors {
		namedColorTokens[string(c)] = c
	}
}

// Custom validates a "#RRGGBB" color.
func Custom(hex string) (TextColor, error) {
	if !isHexColor(hex) {
		return "", fmt.Errorf("%w: %q", ErrMalformedColor, hex)
	}
	return TextColor(hex), nil
}

// ParseColor decodes a wire color token. Named tokens are matched first;
// anything else must be a "#RRGGBB" custom color.
func ParseColor(token string) (TextColor, error) {
	if c, ok := namedColorTokens[token]; ok {
		return c, nil
	}
	return Custom(token)
}

// IsCustom reports whether c is an RGB color rather than a named one.
func (c TextColor) IsCustom() bool {
	_, named := namedColorTokens[string(c)]
	return !named
}

// RGB returns the components of a custom color.
func (c TextColor) RGB() (r, g, b uint8, ok bool) {
	if !isHexColor(string(c)) {
		return 0, 0, 0, false
	}
	return hexByte(c[1], c[2]), hexByte(c[3], c[4]), hexByte(c[5], c[6]), true
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for i := 1; i < 7; i++ {
		if _, ok := hexDigit(s[i]); !ok {
			return false
		}
	}
	return true
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func hexByte(hi, lo byte) uint8 {
	h, _ := hexDigit(hi)
	l, _ := hexDigit(lo)
	return h<<4 | l
}
