package message

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/xssguard/pkg/defuse"
)

// Format selects how a message is rendered.
type Format int

const (
	// FormatPlain substitutes parameters without any transformation.
	FormatPlain Format = iota
	// FormatText is plain text that may go through text-level transforms.
	FormatText
	// FormatEscaped entity-escapes the whole formatted message.
	FormatEscaped
	// FormatParse treats the template as HTML and escapes parameters.
	FormatParse
)

func (f Format) String() string {
	switch f {
	case FormatPlain:
		return "plain"
	case FormatText:
		return "text"
	case FormatEscaped:
		return "escaped"
	case FormatParse:
		return "parse"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a format name to its Format value.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plain":
		return FormatPlain, nil
	case "text":
		return FormatText, nil
	case "escaped":
		return FormatEscaped, nil
	case "parse":
		return FormatParse, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ModeFor returns the rewrite mode used for messages of format f. The second
// result is false when the format is not rewritten at all: escaped messages
// contain no live markup.
func ModeFor(f Format) (defuse.Mode, bool) {
	switch f {
	case FormatPlain, FormatText:
		return defuse.ModeText, true
	case FormatParse:
		return defuse.ModeHTML, true
	default:
		return 0, false
	}
}
