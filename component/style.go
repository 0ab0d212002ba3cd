package component

// Style holds the optional formatting of a Chat node. A nil field means the
// node has no opinion and a renderer should inherit it; a set field is an
// explicit override, including an explicit false.
type Style struct {
	Bold          *bool
	Italic        *bool
	Underlined    *bool
	Strikethrough *bool
	Obfuscated    *bool
	Color         *TextColor
	Insertion     *string
	Font          *string
	Click         ClickEvent
	Hover         HoverEvent
}

func (s Style) IsZero() bool {
	return s.Bold == nil && s.Italic == nil && s.Underlined == nil &&
		s.Strikethrough == nil && s.Obfuscated == nil && s.Color == nil &&
		s.Insertion == nil && s.Font == nil && s.Click == nil && s.Hover == nil
}
