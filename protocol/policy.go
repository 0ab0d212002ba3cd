package protocol

// Protocol numbers at which chat features became representable. These are
// snapshot numbers, not releases, so they do not line up with the named
// constants and must only ever be compared numerically.
const (
	insertionSince       Version = 5
	clipboardClickSince  Version = 558
	customColorSince     Version = 713
	fontSince            Version = 713
	structuredHoverSince Version = 735
)

// Capabilities lists which optional chat fields a reader at a given protocol
// version understands.
type Capabilities struct {
	Insertion       bool
	ClipboardClick  bool
	CustomColor     bool
	Font            bool
	StructuredHover bool // hover events carry "contents" instead of "value"
}

func CapabilitiesOf(v Version) Capabilities {
	return Capabilities{
		Insertion:       v >= insertionSince,
		ClipboardClick:  v >= clipboardClickSince,
		CustomColor:     v >= customColorSince,
		Font:            v >= fontSince,
		StructuredHover: v >= structuredHoverSince,
	}
}

func (v Version) Capabilities() Capabilities {
	return CapabilitiesOf(v)
}
