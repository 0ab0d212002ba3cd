package component

import (
	"github.com/obeliskdev/mcchat/protocol"
)

// Project returns c as a reader at protocol v sees it: every field that v
// cannot represent is removed, recursively, and empty child lists are
// normalised to nil. For any tree, Decode(Encode(c, v)) equals Project(c, v).
func Project(c Chat, v protocol.Version) Chat {
	p := projector{caps: v.Capabilities()}
	return p.chat(c)
}

type projector struct {
	caps protocol.Capabilities
}

func (p projector) chat(c Chat) Chat {
	return Chat{
		Kind:  p.kind(c.Kind),
		Style: p.style(c.Style),
		Extra: p.chats(c.Extra),
	}
}

func (p projector) chats(cs []Chat) []Chat {
	if len(cs) == 0 {
		return nil
	}
	out := make([]Chat, len(cs))
	for i, c := range cs {
		out[i] = p.chat(c)
	}
	return out
}

func (p projector) kind(kind Kind) Kind {
	switch k := kind.(type) {
	case Text, Score, Keybind:
		return k
	case Translation:
		return Translation{Key: k.Key, With: p.chats(k.With)}
	case Selector:
		if k.Separator != nil {
			separator := p.chat(*k.Separator)
			k.Separator = &separator
		}
		return k
	}
	return Text{}
}

func (p projector) style(s Style) Style {
	if s.Color != nil && s.Color.IsCustom() && !p.caps.CustomColor {
		s.Color = nil
	}
	if !p.caps.Insertion {
		s.Insertion = nil
	}
	if !p.caps.Font {
		s.Font = nil
	}
	if _, clipboard := s.Click.(CopyToClipboard); clipboard && !p.caps.ClipboardClick {
		s.Click = nil
	}

	switch h := s.Hover.(type) {
	case ShowText:
		s.Hover = ShowText{Text: p.chat(h.Text)}
	case ShowEntity:
		if h.Entity.Name != nil {
			name := p.chat(*h.Entity.Name)
			h.Entity.Name = &name
		}
		s.Hover = h
	}
	return s
}
