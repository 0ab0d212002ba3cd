package render

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/obeliskdev/mcchat/component"
)

// marker stands in for a translation argument while the template is
// formatted, so the argument can be drawn with its own style afterwards.
const marker = "\x00"

type emitFunc func(text string, style component.Style)

// walk visits c depth-first and emits each run of text with the style the
// client would draw it in.
func walk(c component.Chat, parent component.Style, cat *Catalog, emit emitFunc) {
	style := Inherit(parent, c.Style)

	switch k := c.Kind.(type) {
	case component.Text:
		emit(k.Text, style)
	case component.Translation:
		walkTranslation(k, style, cat, emit)
	case component.Score:
		if k.Value != nil {
			emit(*k.Value, style)
		}
	case component.Selector:
		emit(k.Selector, style)
	case component.Keybind:
		emit(k.Keybind, style)
	}

	for _, child := range c.Extra {
		walk(child, style, cat, emit)
	}
}

func walkTranslation(t component.Translation, style component.Style, cat *Catalog, emit emitFunc) {
	if !cat.Has(t.Key) {
		emit(t.Key, style)
		return
	}

	placeholders := lo.Map(t.With, func(_ component.Chat, i int) string {
		return marker + strconv.Itoa(i) + marker
	})
	text := cat.Translate(t.Key, placeholders...)

	for text != "" {
		start := strings.Index(text, marker)
		if start < 0 {
			emit(text, style)
			return
		}
		emit(text[:start], style)
		text = text[start+len(marker):]

		end := strings.Index(text, marker)
		if end < 0 {
			emit(text, style)
			return
		}
		i, err := strconv.Atoi(text[:end])
		if err != nil || i < 0 || i >= len(t.With) {
			emit(text[:end], style)
		} else {
			walk(t.With[i], style, cat, emit)
		}
		text = text[end+len(marker):]
	}
}

// Plain returns the text of c with translations resolved through cat and
// all styling dropped. A nil catalog leaves translation keys as they are.
func Plain(c component.Chat, cat *Catalog) string {
	var sb strings.Builder
	walk(c, component.Style{}, cat, func(text string, _ component.Style) {
		sb.WriteString(text)
	})
	return sb.String()
}
