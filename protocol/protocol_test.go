package protocol

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestVarIntRoundTrip(t *testing.T) {
	samples := map[int32][]byte{
		0:           {0x00},
		1:           {0x01},
		127:         {0x7f},
		128:         {0x80, 0x01},
		255:         {0xff, 0x01},
		2097151:     {0xff, 0xff, 0x7f},
		2147483647:  {0xff, 0xff, 0xff, 0xff, 0x07},
		-1:          {0xff, 0xff, 0xff, 0xff, 0x0f},
		-2147483648: {0x80, 0x80, 0x80, 0x80, 0x08},
	}

	for value, encoded := range samples {
		var buf bytes.Buffer
		if err := WriteVarInt(&buf, value); err != nil {
			t.Fatalf("WriteVarInt(%d): %v", value, err)
		}
		if !bytes.Equal(buf.Bytes(), encoded) {
			t.Errorf("WriteVarInt(%d) = %x, want %x", value, buf.Bytes(), encoded)
		}
		got, err := ReadVarInt(bytes.NewReader(encoded))
		if err != nil {
			t.Fatalf("ReadVarInt(%x): %v", encoded, err)
		}
		if got != value {
			t.Errorf("ReadVarInt(%x) = %d, want %d", encoded, got, value)
		}
	}
}

func TestReadVarIntTooBig(t *testing.T) {
	_, err := ReadVarInt(bytes.NewReader([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}))
	if !errors.Is(err, ErrVarIntTooBig) {
		t.Fatalf("expected ErrVarIntTooBig, got %v", err)
	}
}

func TestStringRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteString(&buf, `{"text":"héllo"}`); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	got, err := ReadString(&buf)
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if got != `{"text":"héllo"}` {
		t.Fatalf("ReadString = %q", got)
	}
}

func TestStringLimits(t *testing.T) {
	long := strings.Repeat("a", MaxStringLength+1)
	if err := WriteString(&bytes.Buffer{}, long); !errors.Is(err, ErrStringTooLong) {
		t.Fatalf("expected ErrStringTooLong on write, got %v", err)
	}

	var buf bytes.Buffer
	_ = WriteByteSlice(&buf, []byte(long))
	if _, err := ReadString(&buf); !errors.Is(err, ErrStringTooLong) {
		t.Fatalf("expected ErrStringTooLong on read, got %v", err)
	}

	buf.Reset()
	_ = WriteByteSlice(&buf, []byte{0xff, 0xfe})
	if _, err := ReadString(&buf); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestStringLimitCountsCharacters(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		tooLong bool
	}{
		{"two byte runes at limit", strings.Repeat("é", MaxStringLength), false},
		{"three byte runes at limit", strings.Repeat("€", MaxStringLength), false},
		{"three byte runes over limit", strings.Repeat("€", MaxStringLength+1), true},
		{"surrogate pairs at limit", strings.Repeat("😀", MaxStringLength/2), false},
		{"surrogate pairs over limit", strings.Repeat("😀", MaxStringLength/2+1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WriteString(&bytes.Buffer{}, tt.value)
			if tt.tooLong != errors.Is(err, ErrStringTooLong) {
				t.Fatalf("WriteString error = %v", err)
			}

			var buf bytes.Buffer
			_ = WriteByteSlice(&buf, []byte(tt.value))
			got, err := ReadString(&buf)
			if tt.tooLong {
				if !errors.Is(err, ErrStringTooLong) {
					t.Fatalf("ReadString error = %v, want ErrStringTooLong", err)
				}
				return
			}
			if err != nil || got != tt.value {
				t.Fatalf("ReadString = %d bytes, %v", len(got), err)
			}
		})
	}
}

func TestReadBytesNegativeLength(t *testing.T) {
	var buf bytes.Buffer
	_ = WriteVarInt(&buf, -3)
	if _, err := ReadBytes(&buf); !errors.Is(err, ErrNegativeLength) {
		t.Fatalf("expected ErrNegativeLength, got %v", err)
	}
}

type plainWriter struct{ data []byte }

func (w *plainWriter) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)
	return len(p), nil
}

func TestByteHelpers(t *testing.T) {
	w := &plainWriter{}
	if err := WriteByte(w, 0x2a); err != nil {
		t.Fatalf("WriteByte: %v", err)
	}
	if err := WriteByteSlice(w, []byte("hi")); err != nil {
		t.Fatalf("WriteByteSlice: %v", err)
	}

	r := strings.NewReader(string(w.data))
	b, err := ReadByte(r)
	if err != nil || b != 0x2a {
		t.Fatalf("ReadByte = %x, %v", b, err)
	}
	data, err := ReadBytes(r)
	if err != nil || string(data) != "hi" {
		t.Fatalf("ReadBytes = %q, %v", data, err)
	}
	if _, err := ReadByte(r); err == nil {
		t.Fatal("ReadByte past end succeeded")
	}
}
