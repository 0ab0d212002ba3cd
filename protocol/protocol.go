package protocol

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf16"
	"unicode/utf8"
)

const (
	MaxVarIntSize     = 5
	MaxPacketDataSize = 2097152

	// MaxStringLength is the largest chat string a client accepts, counted
	// in UTF-16 units the way the game counts characters.
	MaxStringLength = 262144

	maxStringBytes = MaxStringLength * 3
)

var (
	ErrVarIntTooBig   = errors.New("varint is too big")
	ErrStringTooLong  = errors.New("string exceeds max length")
	ErrInvalidUTF8    = errors.New("string is not valid utf-8")
	ErrNegativeLength = errors.New("length is negative")
)

func WriteVarInt(w io.Writer, value int32) error {
	uv := uint32(value)
	for {
		if (uv & ^uint32(0x7F)) == 0 {
			return WriteByte(w, byte(uv))
		}
		if err := WriteByte(w, byte(uv&0x7F|0x80)); err != nil {
			return err
		}
		uv >>= 7
	}
}

func ReadVarInt(r io.Reader) (int32, error) {
	var val uint32
	var pos uint
	for i := 0; i < MaxVarIntSize; i++ {
		b, err := ReadByte(r)
		if err != nil {
			return 0, err
		}
		val |= uint32(b&0x7F) << pos
		if (b & 0x80) == 0 {
			return int32(val), nil
		}
		pos += 7
	}
	return 0, ErrVarIntTooBig
}

func WriteString(w io.Writer, value string) error {
	if n := stringLength(value); n > MaxStringLength {
		return fmt.Errorf("write string of %d characters: %w", n, ErrStringTooLong)
	}
	return WriteByteSlice(w, []byte(value))
}

func ReadString(r io.Reader) (string, error) {
	data, err := ReadBytes(r)
	if err != nil {
		return "", err
	}
	if len(data) > maxStringBytes {
		return "", fmt.Errorf("read string of %d bytes: %w", len(data), ErrStringTooLong)
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	s := string(data)
	if n := stringLength(s); n > MaxStringLength {
		return "", fmt.Errorf("read string of %d characters: %w", n, ErrStringTooLong)
	}
	return s, nil
}

// stringLength counts s in UTF-16 units.
func stringLength(s string) int {
	n := 0
	for _, r := range s {
		n += max(utf16.RuneLen(r), 1)
	}
	return n
}

func ReadBytes(r io.Reader) ([]byte, error) {
	length, err := ReadVarInt(r)
	if err != nil {
		return nil, fmt.Errorf("read byte array length: %w", err)
	}
	if length < 0 {
		return nil, fmt.Errorf("byte array length %d: %w", length, ErrNegativeLength)
	}
	if length > MaxPacketDataSize {
		return nil, fmt.Errorf("byte array length %d exceeds max size", length)
	}
	buf := make([]byte, length)
	_, err = io.ReadFull(r, buf)
	return buf, err
}

func WriteByteSlice(w io.Writer, data []byte) error {
	if err := WriteVarInt(w, int32(len(data))); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

func ReadByte(r io.Reader) (byte, error) {
	if br, ok := r.(io.ByteReader); ok {
		return br.ReadByte()
	}
	var b [1]byte
	_, err := io.ReadFull(r, b[:])
	return b[0], err
}

func WriteByte(w io.Writer, b byte) error {
	if bw, ok := w.(io.ByteWriter); ok {
		return bw.WriteByte(b)
	}
	_, err := w.Write([]byte{b})
	return err
}
