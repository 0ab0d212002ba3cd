package render

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

var positional = regexp.MustCompile(`^([1-9][0-9]*)\$s`)

// Catalog resolves translation keys for one language.
type Catalog struct {
	tag     language.Tag
	printer *message.Printer
	arity   map[string]int
}

// NewCatalog builds a catalog from a key to message table in the game's
// own format, where %s takes the next argument, %2$s the second one and
// %% is a literal percent sign.
func NewCatalog(tag language.Tag, entries map[string]string) (*Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(tag))
	arity := make(map[string]int, len(entries))
	for key, msg := range entries {
		format, n := convertFormat(msg)
		if err := b.SetString(tag, key, format); err != nil {
			return nil, fmt.Errorf("translation %q: %w", key, err)
		}
		arity[key] = n
	}

	return &Catalog{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(b)),
		arity:   arity,
	}, nil
}

// LoadCatalog reads a language file. Both the JSON files shipped with the
// game and flat YAML mappings are accepted.
func LoadCatalog(r io.Reader, tag language.Tag) (*Catalog, error) {
	var entries map[string]string
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode language file: %w", err)
	}
	return NewCatalog(tag, entries)
}

func (c *Catalog) Language() language.Tag {
	if c == nil {
		return language.Und
	}
	return c.tag
}

func (c *Catalog) Has(key string) bool {
	if c == nil {
		return false
	}
	_, ok := c.arity[key]
	return ok
}

// Translate formats key with args. Unknown keys come back unchanged;
// surplus arguments are ignored and missing ones render empty.
func (c *Catalog) Translate(key string, args ...string) string {
	if !c.Has(key) {
		return key
	}
	values := make([]any, c.arity[key])
	for i := range values {
		values[i] = ""
		if i < len(args) {
			values[i] = args[i]
		}
	}
	return c.printer.Sprintf(key, values...)
}

// convertFormat rewrites a game format string into explicitly indexed
// verbs and reports how many arguments it consumes.
func convertFormat(src string) (string, int) {
	var sb strings.Builder
	next, arity := 0, 0
	for i := 0; i < len(src); i++ {
		if src[i] != '%' {
			sb.WriteByte(src[i])
			continue
		}

		rest := src[i+1:]
		switch {
		case strings.HasPrefix(rest, "%"):
			sb.WriteString("%%")
			i++
		case strings.HasPrefix(rest, "s"):
			next++
			arity = max(arity, next)
			fmt.Fprintf(&sb, "%%[%d]s", next)
			i++
		default:
			m := positional.FindStringSubmatch(rest)
			if m == nil {
				sb.WriteString("%%")
				continue
			}
			n, err := strconv.Atoi(m[1])
			if err != nil || n > 64 {
				sb.WriteString("%%")
				continue
			}
			arity = max(arity, n)
			fmt.Fprintf(&sb, "%%[%d]s", n)
			i += len(m[0])
		}
	}
	return sb.String(), arity
}
