// Package render turns chat components into text for logs and terminals.
// It resolves translations through a Catalog and applies the style
// inheritance a client performs when it draws a component tree.
package render

import (
	"github.com/obeliskdev/mcchat/component"
)

// Inherit merges child over parent: every field the child leaves unset is
// taken from the parent.
func Inherit(parent, child component.Style) component.Style {
	out := child
	if out.Bold == nil {
		out.Bold = parent.Bold
	}
	if out.Italic == nil {
		out.Italic = parent.Italic
	}
	if out.Underlined == nil {
		out.Underlined = parent.Underlined
	}
	if out.Strikethrough == nil {
		out.Strikethrough = parent.Strikethrough
	}
	if out.Obfuscated == nil {
		out.Obfuscated = parent.Obfuscated
	}
	if out.Color == nil {
		out.Color = parent.Color
	}
	if out.Insertion == nil {
		out.Insertion = parent.Insertion
	}
	if out.Font == nil {
		out.Font = parent.Font
	}
	if out.Click == nil {
		out.Click = parent.Click
	}
	if out.Hover == nil {
		out.Hover = parent.Hover
	}
	return out
}
