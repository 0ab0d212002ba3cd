package component

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/obeliskdev/mcchat/protocol"
)

func herobrineMessage() Chat {
	name := NewText("Herobrine")
	sender := NewText("Herobrine").WithStyle(Style{
		Insertion: lo.ToPtr("Herobrine"),
		Click:     SuggestCommand{Command: "/msg Herobrine "},
		Hover: ShowEntity{Entity: EntityTooltip{
			Name: &name,
			ID:   uuid.NullUUID{UUID: uuid.MustParse("f84c6a79-0a4e-45e0-879b-cd49ebd4c4e2"), Valid: true},
		}},
	})
	return NewTranslation("chat.type.text", sender, NewText("I don't exist"))
}

func TestMarshalChatMessage(t *testing.T) {
	tests := []struct {
		name    string
		version protocol.Version
		want    string
	}{
		{
			name:    "1.7.2 drops insertion",
			version: protocol.V1_7_2,
			want:    `{"translate":"chat.type.text","with":[{"clickEvent":{"action":"suggest_command","value":"/msg Herobrine "},"hoverEvent":{"action":"show_entity","value":"{id:f84c6a79-0a4e-45e0-879b-cd49ebd4c4e2,name:Herobrine}"},"text":"Herobrine"},{"text":"I don't exist"}]}`,
		},
		{
			name:    "1.8",
			version: protocol.V1_8,
			want:    `{"translate":"chat.type.text","with":[{"clickEvent":{"action":"suggest_command","value":"/msg Herobrine "},"hoverEvent":{"action":"show_entity","value":"{id:f84c6a79-0a4e-45e0-879b-cd49ebd4c4e2,name:Herobrine}"},"insertion":"Herobrine","text":"Herobrine"},{"text":"I don't exist"}]}`,
		},
		{
			name:    "1.16 structured hover",
			version: protocol.V1_16,
			want:    `{"translate":"chat.type.text","with":[{"clickEvent":{"action":"suggest_command","value":"/msg Herobrine "},"hoverEvent":{"action":"show_entity","contents":{"id":"f84c6a79-0a4e-45e0-879b-cd49ebd4c4e2","name":{"text":"Herobrine"}}},"insertion":"Herobrine","text":"Herobrine"},{"text":"I don't exist"}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Marshal(herobrineMessage(), tt.version)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(got) != tt.want {
				t.Fatalf("Marshal =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

// referenceMessage is the message as the vanilla server sends it, with its
// own key order.
const referenceMessage = `{"translate":"chat.type.text","with":[{"text":"Herobrine","clickEvent":{"action":"suggest_command","value":"/msg Herobrine "},"hoverEvent":{"action":"show_entity","value":"{id:f84c6a79-0a4e-45e0-879b-cd49ebd4c4e2,name:Herobrine}"},"insertion":"Herobrine"},{"text":"I don't exist"}]}`

func TestMarshalMatchesReferenceMessage(t *testing.T) {
	got, err := Marshal(herobrineMessage(), protocol.V1_8)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var gotValue, wantValue any
	if err := json.Unmarshal(got, &gotValue); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if err := json.Unmarshal([]byte(referenceMessage), &wantValue); err != nil {
		t.Fatalf("decode reference: %v", err)
	}
	if !reflect.DeepEqual(gotValue, wantValue) {
		t.Fatalf("Marshal =\n%s\nwant the same value as\n%s", got, referenceMessage)
	}
}

func TestMarshalPlainText(t *testing.T) {
	got, err := Marshal(NewText("Sample text"), protocol.V1_8)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(got) != `{"text":"Sample text"}` {
		t.Fatalf("Marshal = %s", got)
	}
}

func TestMarshalDoesNotEscapeHTML(t *testing.T) {
	got, err := Marshal(NewText("<a> & <b>"), protocol.Latest)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(got) != `{"text":"<a> & <b>"}` {
		t.Fatalf("Marshal = %s", got)
	}
}

func TestEncodeStyleGating(t *testing.T) {
	purple, _ := Custom("#aa11bb")
	style := Style{
		Bold:      lo.ToPtr(true),
		Italic:    lo.ToPtr(false),
		Color:     &purple,
		Insertion: lo.ToPtr("y"),
		Font:      lo.ToPtr("x"),
	}

	tests := []struct {
		name    string
		version protocol.Version
		want    map[string]any
	}{
		{
			name:    "before insertion",
			version: protocol.V1_7_2,
			want:    map[string]any{"text": "", "bold": true, "italic": false},
		},
		{
			name:    "insertion only",
			version: protocol.V1_7_6,
			want:    map[string]any{"text": "", "bold": true, "italic": false, "insertion": "y"},
		},
		{
			name:    "last version without custom colors",
			version: protocol.Version(712),
			want:    map[string]any{"text": "", "bold": true, "italic": false, "insertion": "y"},
		},
		{
			name:    "custom colors and fonts",
			version: protocol.Version(713),
			want:    map[string]any{"text": "", "bold": true, "italic": false, "insertion": "y", "font": "x", "color": "#aa11bb"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(Chat{Kind: Text{}, Style: style}, tt.version)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Encode = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestEncodeOnlyFontAndInsertionBeforeSupport(t *testing.T) {
	c := NewText("").WithStyle(Style{Bold: lo.ToPtr(true), Font: lo.ToPtr("x"), Insertion: lo.ToPtr("y")})
	got, err := Marshal(c, protocol.V1_7_2)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(got) != `{"bold":true,"text":""}` {
		t.Fatalf("Marshal = %s", got)
	}
}

func TestEncodeNamedColorAlwaysKept(t *testing.T) {
	c := NewText("warn").WithStyle(Style{Color: lo.ToPtr(Gold)})
	for _, v := range []protocol.Version{protocol.V1_7_2, protocol.V1_12_2, protocol.Latest} {
		got := Encode(c, v)
		if got["color"] != "gold" {
			t.Errorf("Encode at %s: color = %v", v, got["color"])
		}
	}
}

func TestEncodeClipboardClick(t *testing.T) {
	c := NewText("copy me").WithStyle(Style{Click: CopyToClipboard{Text: "secret"}})

	if got := Encode(c, protocol.Version(557)); got["clickEvent"] != nil {
		t.Fatalf("clipboard click kept at 557: %v", got["clickEvent"])
	}
	got := Encode(c, protocol.Version(558))
	want := map[string]any{"action": "copy_to_clipboard", "value": "secret"}
	if !reflect.DeepEqual(got["clickEvent"], want) {
		t.Fatalf("clickEvent at 558 = %#v", got["clickEvent"])
	}
}

func TestEncodeOtherClicksKeptEverywhere(t *testing.T) {
	c := NewText("p. 2").WithStyle(Style{Click: ChangePage{Page: 2}})
	got := Encode(c, protocol.V1_7_2)
	want := map[string]any{"action": "change_page", "value": uint32(2)}
	if !reflect.DeepEqual(got["clickEvent"], want) {
		t.Fatalf("clickEvent = %#v", got["clickEvent"])
	}
}

func TestEncodeKinds(t *testing.T) {
	separator := NewText(", ")
	tests := []struct {
		name string
		chat Chat
		want string
	}{
		{"nil kind", Chat{}, `{"text":""}`},
		{"translation without args", NewTranslation("multiplayer.disconnect.kicked"), `{"translate":"multiplayer.disconnect.kicked"}`},
		{"score", NewScore("@p", "kills"), `{"score":{"name":"@p","objective":"kills"}}`},
		{
			"score with value",
			Chat{Kind: Score{Name: "Steve", Objective: "deaths", Value: lo.ToPtr("3")}},
			`{"score":{"name":"Steve","objective":"deaths","value":"3"}}`,
		},
		{"selector", NewSelector("@a"), `{"selector":"@a"}`},
		{
			"selector with separator",
			Chat{Kind: Selector{Selector: "@e[type=pig]", Separator: &separator}},
			`{"selector":"@e[type=pig]","separator":{"text":", "}}`,
		},
		{"keybind", NewKeybind("key.jump"), `{"keybind":"key.jump"}`},
		{"extra", NewText("a").Append(NewText("b"), NewKeybind("key.use")), `{"extra":[{"text":"b"},{"keybind":"key.use"}],"text":"a"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Marshal(tt.chat, protocol.Latest)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(got) != tt.want {
				t.Fatalf("Marshal = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestVersionedMarshalJSON(t *testing.T) {
	got, err := Versioned{Chat: NewText("hi"), Version: protocol.V1_8}.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(got) != `{"text":"hi"}` {
		t.Fatalf("MarshalJSON = %s", got)
	}
}

func TestEncodeLogsDroppedFields(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c := NewText("x").WithStyle(Style{Font: lo.ToPtr("minecraft:uniform")})
	Encode(c, protocol.V1_8, WithLogger(logger))

	if !strings.Contains(logs.String(), "field=font") {
		t.Fatalf("expected dropped font to be logged, got %q", logs.String())
	}
}
