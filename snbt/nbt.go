package snbt

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/Tnze/go-mc/nbt"
)

// Unmarshal parses a record. Well-formed SNBT is decoded by go-mc, which
// types every value; records it rejects, such as the bare namespaced ids
// older servers wrote, are read by a lenient scanner instead. Nested
// compounds and lists come back as SNBT text.
func Unmarshal(src string) (Record, error) {
	if record, err := decodeNBT(src); err == nil {
		return record, nil
	}
	return scan(src)
}

func decodeNBT(src string) (Record, error) {
	src = strings.TrimSpace(src)
	if !strings.HasPrefix(src, "{") {
		return nil, fmt.Errorf("%w: record is not a compound", ErrSyntax)
	}
	data, err := nbt.Marshal(nbt.StringifiedMessage(src))
	if err != nil {
		return nil, err
	}

	var c compound
	if err := nbt.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	if !c.closed {
		return nil, fmt.Errorf("%w: unterminated record", ErrSyntax)
	}
	return c.record, nil
}

// compound collects the fields of a binary compound in the order they
// were written.
type compound struct {
	record Record
	closed bool
}

func (c *compound) UnmarshalNBT(tagType byte, r nbt.DecoderReader) error {
	if tagType != nbt.TagCompound {
		return fmt.Errorf("%w: record is not a compound", ErrSyntax)
	}
	for {
		tag, err := r.ReadByte()
		if err != nil {
			return err
		}
		if tag == nbt.TagEnd {
			c.closed = true
			return nil
		}

		name, err := readName(r)
		if err != nil {
			return err
		}
		var raw nbt.RawMessage
		if err := raw.UnmarshalNBT(tag, r); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
		raw.Type = tag

		value, err := fieldValue(raw)
		if err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
		c.record = append(c.record, Field{Name: name, Value: value})
	}
}

func readName(r io.Reader) (string, error) {
	var n uint16
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return "", err
	}
	name := make([]byte, n)
	if _, err := io.ReadFull(r, name); err != nil {
		return "", err
	}
	return string(name), nil
}

// fieldValue narrows a tag to the string and int64 values a Record holds.
// Every other tag is kept as its SNBT text.
func fieldValue(raw nbt.RawMessage) (any, error) {
	switch raw.Type {
	case nbt.TagString, nbt.TagByte, nbt.TagShort, nbt.TagInt, nbt.TagLong:
		var v any
		if err := raw.Unmarshal(&v); err != nil {
			return nil, err
		}
		switch v := v.(type) {
		case string:
			return v, nil
		case int8:
			return int64(v), nil
		case uint8:
			return int64(v), nil
		case int16:
			return int64(v), nil
		case int32:
			return int64(v), nil
		case int64:
			return v, nil
		}
	}
	return raw.String(), nil
}
