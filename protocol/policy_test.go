package protocol

import "testing"

func TestCapabilitiesOf(t *testing.T) {
	tests := []struct {
		name    string
		version Version
		want    Capabilities
	}{
		{"1.7.2", V1_7_2, Capabilities{}},
		{"insertion boundary", 5, Capabilities{Insertion: true}},
		{"1.8", V1_8, Capabilities{Insertion: true}},
		{"before clipboard", 557, Capabilities{Insertion: true}},
		{"clipboard boundary", 558, Capabilities{Insertion: true, ClipboardClick: true}},
		{"1.15", V1_15, Capabilities{Insertion: true, ClipboardClick: true}},
		{"before color", 712, Capabilities{Insertion: true, ClipboardClick: true}},
		{"color boundary", 713, Capabilities{Insertion: true, ClipboardClick: true, CustomColor: true, Font: true}},
		{"before structured hover", 734, Capabilities{Insertion: true, ClipboardClick: true, CustomColor: true, Font: true}},
		{"1.16", V1_16, Capabilities{Insertion: true, ClipboardClick: true, CustomColor: true, Font: true, StructuredHover: true}},
		{"latest", Latest, Capabilities{Insertion: true, ClipboardClick: true, CustomColor: true, Font: true, StructuredHover: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CapabilitiesOf(tt.version); got != tt.want {
				t.Errorf("CapabilitiesOf(%d) = %+v, want %+v", tt.version, got, tt.want)
			}
			if got := tt.version.Capabilities(); got != tt.want {
				t.Errorf("Version(%d).Capabilities() = %+v, want %+v", tt.version, got, tt.want)
			}
		})
	}
}
