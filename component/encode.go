package component

import (
	"bytes"
	"encoding/json"
	"log/slog"

	"github.com/samber/lo"
	"github.com/valyala/bytebufferpool"

	"github.com/obeliskdev/mcchat/protocol"
	"github.com/obeliskdev/mcchat/snbt"
)

type encoder struct {
	version protocol.Version
	caps    protocol.Capabilities
	records snbt.Codec
	logger  *slog.Logger
}

func newEncoder(v protocol.Version, o *options) *encoder {
	return &encoder{
		version: v,
		caps:    v.Capabilities(),
		records: o.records,
		logger:  o.logger,
	}
}

// Encode renders c as the JSON value a client speaking protocol v reads.
// Fields that v cannot represent are left out. The result holds only maps,
// slices, strings, booleans and integers and can be passed to json.Marshal
// or straight back to Decode.
func Encode(c Chat, v protocol.Version, opts ...Option) map[string]any {
	return newEncoder(v, newOptions(opts)).chat(c)
}

// Marshal encodes c for protocol v as JSON text with sorted keys.
func Marshal(c Chat, v protocol.Version, opts ...Option) ([]byte, error) {
	return marshalValue(Encode(c, v, opts...))
}

// Versioned pairs a Chat with the protocol version it is marshalled for.
type Versioned struct {
	Chat    Chat
	Version protocol.Version
}

func (m Versioned) MarshalJSON() ([]byte, error) {
	return Marshal(m.Chat, m.Version)
}

func marshalValue(v any) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.Clone(bytes.TrimSuffix(buf.B, []byte{'\n'})), nil
}

func (e *encoder) chat(c Chat) map[string]any {
	out := make(map[string]any)
	e.kind(out, c.Kind)
	e.style(out, c.Style)
	if len(c.Extra) > 0 {
		out["extra"] = e.chats(c.Extra)
	}
	return out
}

func (e *encoder) chats(cs []Chat) []any {
	return lo.Map(cs, func(c Chat, _ int) any {
		return e.chat(c)
	})
}

func (e *encoder) kind(out map[string]any, kind Kind) {
	switch k := kind.(type) {
	case Text:
		out["text"] = k.Text
	case Translation:
		out["translate"] = k.Key
		if len(k.With) > 0 {
			out["with"] = e.chats(k.With)
		}
	case Score:
		score := map[string]any{
			"name":      k.Name,
			"objective": k.Objective,
		}
		if k.Value != nil {
			score["value"] = *k.Value
		}
		out["score"] = score
	case Selector:
		out["selector"] = k.Selector
		if k.Separator != nil {
			out["separator"] = e.chat(*k.Separator)
		}
	case Keybind:
		out["keybind"] = k.Keybind
	default:
		out["text"] = ""
	}
}

func (e *encoder) style(out map[string]any, s Style) {
	flags := []struct {
		key   string
		value *bool
	}{
		{"bold", s.Bold},
		{"italic", s.Italic},
		{"underlined", s.Underlined},
		{"strikethrough", s.Strikethrough},
		{"obfuscated", s.Obfuscated},
	}
	for _, flag := range flags {
		if flag.value != nil {
			out[flag.key] = *flag.value
		}
	}

	if s.Color != nil {
		if !s.Color.IsCustom() || e.caps.CustomColor {
			out["color"] = string(*s.Color)
		} else {
			e.drop("color")
		}
	}

	if s.Insertion != nil {
		if e.caps.Insertion {
			out["insertion"] = *s.Insertion
		} else {
			e.drop("insertion")
		}
	}

	if s.Font != nil {
		if e.caps.Font {
			out["font"] = *s.Font
		} else {
			e.drop("font")
		}
	}

	if s.Click != nil {
		if _, clipboard := s.Click.(CopyToClipboard); clipboard && !e.caps.ClipboardClick {
			e.drop("clickEvent")
		} else {
			out["clickEvent"] = encodeClick(s.Click)
		}
	}

	if s.Hover != nil {
		out["hoverEvent"] = e.hover(s.Hover)
	}
}

func (e *encoder) drop(field string) {
	e.logger.Debug("dropping chat field unsupported by protocol version", "field", field, "version", e.version)
}
