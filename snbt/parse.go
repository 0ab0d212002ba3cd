package snbt

import (
	"fmt"
	"strconv"
	"strings"
)

type scanner struct {
	src string
	pos int
}

func (s *scanner) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrSyntax, s.pos, fmt.Sprintf(format, args...))
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

func (s *scanner) peek() (byte, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	return s.src[s.pos], true
}

func (s *scanner) expect(c byte) error {
	s.skipSpace()
	got, ok := s.peek()
	if !ok {
		return s.errorf("expected %q, got end of input", c)
	}
	if got != c {
		return s.errorf("expected %q, got %q", c, got)
	}
	s.pos++
	return nil
}

// scan parses a record leniently. Keys and string values may be quoted with
// either quote character or left bare, and bare values may contain colons
// the way pre-1.13 records wrote namespaced ids. Integers may carry a b, s
// or l type suffix.
func scan(src string) (Record, error) {
	s := &scanner{src: src}
	if err := s.expect('{'); err != nil {
		return nil, err
	}

	var record Record
	s.skipSpace()
	if c, ok := s.peek(); ok && c == '}' {
		s.pos++
	} else {
		for {
			s.skipSpace()
			name, err := s.readKey()
			if err != nil {
				return nil, err
			}
			if err := s.expect(':'); err != nil {
				return nil, err
			}
			s.skipSpace()
			value, err := s.readValue()
			if err != nil {
				return nil, err
			}
			record = append(record, Field{Name: name, Value: value})

			s.skipSpace()
			c, ok := s.peek()
			if !ok {
				return nil, s.errorf("unterminated record")
			}
			s.pos++
			if c == '}' {
				break
			}
			if c != ',' {
				return nil, s.errorf("expected ',' or '}', got %q", c)
			}
		}
	}

	s.skipSpace()
	if s.pos != len(s.src) {
		return nil, s.errorf("trailing data after record")
	}
	return record, nil
}

func (s *scanner) readKey() (string, error) {
	c, ok := s.peek()
	if !ok {
		return "", s.errorf("expected key, got end of input")
	}
	if c == '"' || c == '\'' {
		return s.readQuoted()
	}
	start := s.pos
	for s.pos < len(s.src) && isBareKeyChar(s.src[s.pos]) {
		s.pos++
	}
	if s.pos == start {
		return "", s.errorf("expected key, got %q", c)
	}
	return s.src[start:s.pos], nil
}

func (s *scanner) readValue() (any, error) {
	c, ok := s.peek()
	if !ok {
		return nil, s.errorf("expected value, got end of input")
	}
	switch c {
	case '"', '\'':
		return s.readQuoted()
	case '{', '[':
		return s.readNested()
	}

	start := s.pos
	for s.pos < len(s.src) && isBareValueChar(s.src[s.pos]) {
		s.pos++
	}
	if s.pos == start {
		return nil, s.errorf("expected value, got %q", c)
	}
	word := s.src[start:s.pos]
	if n, ok := parseInteger(word); ok {
		return n, nil
	}
	return word, nil
}

func (s *scanner) readQuoted() (string, error) {
	quote := s.src[s.pos]
	s.pos++

	var sb strings.Builder
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		s.pos++
		switch {
		case c == '\\':
			if s.pos >= len(s.src) {
				return "", s.errorf("unterminated escape")
			}
			sb.WriteByte(s.src[s.pos])
			s.pos++
		case c == quote:
			return sb.String(), nil
		default:
			sb.WriteByte(c)
		}
	}
	return "", s.errorf("unterminated string")
}

// readNested returns a compound or list value verbatim.
func (s *scanner) readNested() (string, error) {
	start := s.pos
	depth := 0
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch c {
		case '"', '\'':
			if _, err := s.readQuoted(); err != nil {
				return "", err
			}
			continue
		case '{', '[':
			depth++
		case '}', ']':
			depth--
		}
		s.pos++
		if depth == 0 {
			return s.src[start:s.pos], nil
		}
	}
	return "", s.errorf("unterminated nested value")
}

func parseInteger(word string) (int64, bool) {
	digits := word
	if last := word[len(word)-1]; strings.IndexByte("bBsSlL", last) >= 0 {
		digits = word[:len(word)-1]
	}
	if digits == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isBareKeyChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '_' || c == '-' || c == '.' || c == '+'
}

func isBareValueChar(c byte) bool {
	return isBareKeyChar(c) || c == ':'
}
