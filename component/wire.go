package component

import (
	"fmt"
	"io"

	"github.com/obeliskdev/mcchat/protocol"
)

// WriteChat writes c as a length-prefixed JSON string, the form chat fields
// take inside packets up to 1.20.2.
func WriteChat(w io.Writer, c Chat, v protocol.Version, opts ...Option) error {
	data, err := Marshal(c, v, opts...)
	if err != nil {
		return fmt.Errorf("marshal chat: %w", err)
	}
	return protocol.WriteString(w, string(data))
}

func ReadChat(r io.Reader, opts ...Option) (Chat, error) {
	s, err := protocol.ReadString(r)
	if err != nil {
		return Chat{}, fmt.Errorf("read chat: %w", err)
	}
	return Unmarshal([]byte(s), opts...)
}
