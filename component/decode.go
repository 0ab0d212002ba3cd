package component

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/tidwall/jsonc"

	"github.com/obeliskdev/mcchat/snbt"
)

var kindKeys = []string{"text", "translate", "score", "selector", "keybind"}

var knownKeys = map[string]struct{}{
	"text": {}, "translate": {}, "with": {}, "score": {}, "selector": {},
	"separator": {}, "keybind": {}, "bold": {}, "italic": {}, "underlined": {},
	"strikethrough": {}, "obfuscated": {}, "color": {}, "insertion": {},
	"font": {}, "clickEvent": {}, "hoverEvent": {}, "extra": {},
}

type decoder struct {
	records  snbt.Codec
	maxDepth int
	lenient  bool
	logger   *slog.Logger
}

func newDecoder(o *options) *decoder {
	return &decoder{
		records:  o.records,
		maxDepth: o.maxDepth,
		lenient:  o.lenient,
		logger:   o.logger,
	}
}

// Unmarshal parses component JSON of any protocol version.
func Unmarshal(data []byte, opts ...Option) (Chat, error) {
	return newDecoder(newOptions(opts)).unmarshal(data, 1)
}

// Decode converts an already parsed JSON value into a Chat. It accepts a
// string, an array whose first element is the parent of the rest, or an
// object, and infers everything else from the shape it sees.
func Decode(value any, opts ...Option) (Chat, error) {
	return newDecoder(newOptions(opts)).chat(value, 1)
}

func (c *Chat) UnmarshalJSON(data []byte) error {
	chat, err := Unmarshal(data)
	if err != nil {
		return err
	}
	*c = chat
	return nil
}

func (d *decoder) unmarshal(data []byte, depth int) (Chat, error) {
	if d.lenient {
		data = jsonc.ToJSON(data)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return Chat{}, fmt.Errorf("parse chat json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Chat{}, fmt.Errorf("parse chat json: unexpected data after component")
	}

	return d.chat(value, depth)
}

func isChatShape(v any) bool {
	switch v.(type) {
	case string, []any, map[string]any:
		return true
	}
	return false
}

func (d *decoder) chat(value any, depth int) (Chat, error) {
	if d.maxDepth > 0 && depth > d.maxDepth {
		return Chat{}, fmt.Errorf("%w (%d)", ErrTooDeep, d.maxDepth)
	}

	switch v := value.(type) {
	case string:
		return NewText(v), nil
	case []any:
		if len(v) == 0 {
			return Chat{}, ErrEmptyComponentArray
		}
		first, err := d.chat(v[0], depth+1)
		if err != nil {
			return Chat{}, fmt.Errorf("[0]: %w", err)
		}
		rest, err := d.chats("", v[1:], depth+1, 1)
		if err != nil {
			return Chat{}, err
		}
		return first.Append(rest...), nil
	case map[string]any:
		return d.object(v, depth)
	default:
		return Chat{}, fmt.Errorf("%w: got %T", ErrUnexpectedShape, value)
	}
}

// chats decodes a list of components; offset shifts the indexes in errors.
func (d *decoder) chats(field string, values []any, depth, offset int) ([]Chat, error) {
	if len(values) == 0 {
		return nil, nil
	}
	out := make([]Chat, 0, len(values))
	for i, value := range values {
		c, err := d.chat(value, depth)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", field, i+offset, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func (d *decoder) object(obj map[string]any, depth int) (Chat, error) {
	kind, err := d.kind(obj, depth)
	if err != nil {
		return Chat{}, err
	}
	style, err := d.style(obj, depth)
	if err != nil {
		return Chat{}, err
	}

	var extra []Chat
	if raw, ok := obj["extra"]; ok {
		values, ok := raw.([]any)
		if !ok {
			return Chat{}, fmt.Errorf("extra: %w: got %T", ErrInvalidField, raw)
		}
		if extra, err = d.chats("extra", values, depth+1, 0); err != nil {
			return Chat{}, err
		}
	}

	for key := range obj {
		if _, ok := knownKeys[key]; !ok {
			d.logger.Debug("ignoring unknown chat field", "field", key)
		}
	}

	return Chat{Kind: kind, Style: style, Extra: extra}, nil
}

func (d *decoder) kind(obj map[string]any, depth int) (Kind, error) {
	present := lo.Filter(kindKeys, func(key string, _ int) bool {
		_, ok := obj[key]
		return ok
	})
	switch len(present) {
	case 0:
		return nil, fmt.Errorf("%w: one of %s", ErrMissingField, strings.Join(kindKeys, ", "))
	case 1:
	default:
		return nil, fmt.Errorf("%w: %s", ErrAmbiguousKind, strings.Join(present, ", "))
	}

	switch present[0] {
	case "text":
		text, err := stringField(obj, "text")
		if err != nil {
			return nil, err
		}
		return Text{Text: text}, nil
	case "translate":
		key, err := stringField(obj, "translate")
		if err != nil {
			return nil, err
		}
		translation := Translation{Key: key}
		if raw, ok := obj["with"]; ok {
			values, ok := raw.([]any)
			if !ok {
				return nil, fmt.Errorf("with: %w: got %T", ErrInvalidField, raw)
			}
			if translation.With, err = d.chats("with", values, depth+1, 0); err != nil {
				return nil, err
			}
		}
		return translation, nil
	case "score":
		score, ok := obj["score"].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("score: %w: got %T", ErrInvalidField, obj["score"])
		}
		name, err := requiredString(score, "score", "name")
		if err != nil {
			return nil, err
		}
		objective, err := requiredString(score, "score", "objective")
		if err != nil {
			return nil, err
		}
		value, err := optionalString(score, "value")
		if err != nil {
			return nil, fmt.Errorf("score.%w", err)
		}
		return Score{Name: name, Objective: objective, Value: value}, nil
	case "selector":
		selector, err := stringField(obj, "selector")
		if err != nil {
			return nil, err
		}
		kind := Selector{Selector: selector}
		if raw, ok := obj["separator"]; ok {
			separator, err := d.chat(raw, depth+1)
			if err != nil {
				return nil, fmt.Errorf("separator: %w", err)
			}
			kind.Separator = &separator
		}
		return kind, nil
	default:
		keybind, err := stringField(obj, "keybind")
		if err != nil {
			return nil, err
		}
		return Keybind{Keybind: keybind}, nil
	}
}

func (d *decoder) style(obj map[string]any, depth int) (Style, error) {
	var s Style
	var err error

	flags := []struct {
		key string
		dst **bool
	}{
		{"bold", &s.Bold},
		{"italic", &s.Italic},
		{"underlined", &s.Underlined},
		{"strikethrough", &s.Strikethrough},
		{"obfuscated", &s.Obfuscated},
	}
	for _, flag := range flags {
		if *flag.dst, err = optionalBool(obj, flag.key); err != nil {
			return Style{}, err
		}
	}

	token, err := optionalString(obj, "color")
	if err != nil {
		return Style{}, err
	}
	if token != nil {
		color, err := ParseColor(*token)
		if err != nil {
			return Style{}, fmt.Errorf("color: %w", err)
		}
		s.Color = &color
	}

	if s.Insertion, err = optionalString(obj, "insertion"); err != nil {
		return Style{}, err
	}
	if s.Font, err = optionalString(obj, "font"); err != nil {
		return Style{}, err
	}

	if raw, ok := obj["clickEvent"]; ok {
		if s.Click, err = decodeClick(raw); err != nil {
			return Style{}, err
		}
	}
	if raw, ok := obj["hoverEvent"]; ok {
		if s.Hover, err = d.hover(raw, depth+1); err != nil {
			return Style{}, err
		}
	}

	return s, nil
}

func stringField(obj map[string]any, key string) (string, error) {
	s, ok := obj[key].(string)
	if !ok {
		return "", fmt.Errorf("%s: %w: got %T", key, ErrInvalidField, obj[key])
	}
	return s, nil
}

func requiredString(obj map[string]any, parent, key string) (string, error) {
	raw, ok := obj[key]
	if !ok {
		return "", fmt.Errorf("%s: %w: %q", parent, ErrMissingField, key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s.%s: %w: got %T", parent, key, ErrInvalidField, raw)
	}
	return s, nil
}

func optionalString(obj map[string]any, key string) (*string, error) {
	raw, ok := obj[key]
	if !ok {
		return nil, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("%s: %w: got %T", key, ErrInvalidField, raw)
	}
	return &s, nil
}

func optionalBool(obj map[string]any, key string) (*bool, error) {
	raw, ok := obj[key]
	if !ok {
		return nil, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return nil, fmt.Errorf("%s: %w: got %T", key, ErrInvalidField, raw)
	}
	return &b, nil
}
