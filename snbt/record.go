// Package snbt encodes the flat key/value records that pre-1.16 hover events
// embed as strings, e.g. {"id":"minecraft:stone","Count":3}.
//
// Only flat records of strings and integers are modelled. Nested compounds
// and lists are carried through as SNBT text.
package snbt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"
)

var ErrSyntax = errors.New("snbt: syntax error")

// Field is one named value of a Record. Value is a string or an integer.
// A Bare field is written without quotes wherever it reads back unchanged,
// the way the game itself writes entity records.
type Field struct {
	Name  string
	Value any
	Bare  bool
}

// Record is an ordered set of fields. Order is preserved on Marshal.
type Record []Field

func (r Record) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// String returns the named field if it is present and holds a string.
func (r Record) String(name string) (string, bool) {
	v, ok := r.Get(name)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Int returns the named field if it is present and holds an integer.
func (r Record) Int(name string) (int64, bool) {
	v, ok := r.Get(name)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case int:
		return int64(n), true
	}
	return 0, false
}

// Codec converts records to and from their string form.
type Codec interface {
	Marshal(Record) string
	Unmarshal(string) (Record, error)
}

type defaultCodec struct{}

func (defaultCodec) Marshal(r Record) string             { return Marshal(r) }
func (defaultCodec) Unmarshal(s string) (Record, error) { return Unmarshal(s) }

// Default is the codec used when none is configured.
var Default Codec = defaultCodec{}

// Marshal writes r with quoted keys, quoted strings and bare integers.
// Bare fields drop the quotes from their key and from string values that
// would not read back as a number or a boolean.
func Marshal(r Record) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_ = buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			_ = buf.WriteByte(',')
		}
		writeString(buf, f.Name, f.Bare && isKey(f.Name))
		_ = buf.WriteByte(':')
		switch v := f.Value.(type) {
		case string:
			writeString(buf, v, f.Bare && isWord(v))
		case int:
			buf.B = strconv.AppendInt(buf.B, int64(v), 10)
		case int32:
			buf.B = strconv.AppendInt(buf.B, int64(v), 10)
		case int64:
			buf.B = strconv.AppendInt(buf.B, v, 10)
		default:
			writeQuoted(buf, fmt.Sprint(v))
		}
	}
	_ = buf.WriteByte('}')

	return buf.String()
}

func writeString(buf *bytebufferpool.ByteBuffer, s string, bare bool) {
	if bare {
		_, _ = buf.WriteString(s)
		return
	}
	writeQuoted(buf, s)
}

func writeQuoted(buf *bytebufferpool.ByteBuffer, s string) {
	_ = buf.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' {
			_ = buf.WriteByte('\\')
		}
		_ = buf.WriteByte(c)
	}
	_ = buf.WriteByte('"')
}

func isKey(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isBareKeyChar(s[i]) {
			return false
		}
	}
	return true
}

// isWord reports whether s can be written unquoted and still read back as
// the same string.
func isWord(s string) bool {
	if !isKey(s) || s == "true" || s == "false" {
		return false
	}
	if _, ok := parseInteger(s); ok {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimRight(s, "fFdD"), 64)
	return err != nil
}
