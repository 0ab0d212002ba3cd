// Package component models Minecraft chat components and converts them to
// and from the JSON shape a client at a given protocol version expects.
package component

import (
	"strings"
)

// Chat is one node of a chat component tree. Extra holds the children that
// the wire format calls "extra"; their order is significant.
type Chat struct {
	Kind  Kind
	Style Style
	Extra []Chat
}

// Kind is the content of a Chat node. Exactly one kind is set per node.
type Kind interface {
	isKind()
}

type Text struct {
	Text string
}

type Translation struct {
	Key  string
	With []Chat
}

type Score struct {
	Name      string
	Objective string
	Value     *string
}

type Selector struct {
	Selector  string
	Separator *Chat
}

type Keybind struct {
	Keybind string
}

func (Text) isKind()        {}
func (Translation) isKind() {}
func (Score) isKind()       {}
func (Selector) isKind()    {}
func (Keybind) isKind()     {}

func NewText(text string) Chat {
	return Chat{Kind: Text{Text: text}}
}

func NewTranslation(key string, with ...Chat) Chat {
	if len(with) == 0 {
		with = nil
	}
	return Chat{Kind: Translation{Key: key, With: with}}
}

func NewScore(name, objective string) Chat {
	return Chat{Kind: Score{Name: name, Objective: objective}}
}

func NewSelector(selector string) Chat {
	return Chat{Kind: Selector{Selector: selector}}
}

func NewKeybind(keybind string) Chat {
	return Chat{Kind: Keybind{Keybind: keybind}}
}

// Append returns a copy of c with children added after its existing ones.
func (c Chat) Append(children ...Chat) Chat {
	if len(children) == 0 {
		return c
	}
	extra := make([]Chat, 0, len(c.Extra)+len(children))
	extra = append(extra, c.Extra...)
	c.Extra = append(extra, children...)
	return c
}

// WithStyle returns a copy of c carrying style.
func (c Chat) WithStyle(style Style) Chat {
	c.Style = style
	return c
}

// String flattens the tree to its raw text without resolving translations.
func (c Chat) String() string {
	var sb strings.Builder
	c.writeString(&sb)
	return sb.String()
}

func (c Chat) writeString(sb *strings.Builder) {
	switch k := c.Kind.(type) {
	case Text:
		sb.WriteString(k.Text)
	case Translation:
		sb.WriteString(k.Key)
		for _, arg := range k.With {
			arg.writeString(sb)
		}
	case Score:
		if k.Value != nil {
			sb.WriteString(*k.Value)
		}
	case Selector:
		sb.WriteString(k.Selector)
	case Keybind:
		sb.WriteString(k.Keybind)
	}

	for _, extra := range c.Extra {
		extra.writeString(sb)
	}
}
