package render

import (
	"strings"

	"github.com/fatih/color"

	"github.com/obeliskdev/mcchat/component"
)

var namedColors = map[component.TextColor]color.Attribute{
	component.Black:     color.FgBlack,
	component.DarkBlue:  color.FgBlue,
	component.DarkGreen: color.FgGreen,
	component.DarkCyan:  color.FgCyan,
	component.DarkRed:   color.FgRed,
	component.Purple:    color.FgMagenta,
	component.Gold:      color.FgYellow,
	component.Gray:      color.FgWhite,
	component.DarkGray:  color.FgHiBlack,
	component.Blue:      color.FgHiBlue,
	component.Green:     color.FgHiGreen,
	component.Cyan:      color.FgHiCyan,
	component.Red:       color.FgHiRed,
	component.Pink:      color.FgHiMagenta,
	component.Yellow:    color.FgHiYellow,
	component.White:     color.FgHiWhite,
}

// ANSI renders c for a terminal. Each run of text is wrapped in SGR
// sequences for its inherited style; custom colors use 24-bit escapes and
// obfuscated text blinks. Sequences are written even when stdout is not a
// terminal.
func ANSI(c component.Chat, cat *Catalog) string {
	var sb strings.Builder
	walk(c, component.Style{}, cat, func(text string, style component.Style) {
		if text == "" {
			return
		}
		if sgr := sgrFor(style); sgr != nil {
			sb.WriteString(sgr.Sprint(text))
			return
		}
		sb.WriteString(text)
	})
	return sb.String()
}

// sgrFor returns nil when style has nothing a terminal can show.
func sgrFor(style component.Style) *color.Color {
	var attrs []color.Attribute
	flags := []struct {
		set  *bool
		attr color.Attribute
	}{
		{style.Bold, color.Bold},
		{style.Italic, color.Italic},
		{style.Underlined, color.Underline},
		{style.Obfuscated, color.BlinkSlow},
		{style.Strikethrough, color.CrossedOut},
	}
	for _, f := range flags {
		if f.set != nil && *f.set {
			attrs = append(attrs, f.attr)
		}
	}

	var rgb []int
	if style.Color != nil {
		if fg, ok := namedColors[*style.Color]; ok {
			attrs = append(attrs, fg)
		} else if r, g, b, ok := style.Color.RGB(); ok {
			rgb = []int{int(r), int(g), int(b)}
		}
	}

	if len(attrs) == 0 && rgb == nil {
		return nil
	}
	sgr := color.New(attrs...)
	if rgb != nil {
		sgr.AddRGB(rgb[0], rgb[1], rgb[2])
	}
	sgr.EnableColor()
	return sgr
}
