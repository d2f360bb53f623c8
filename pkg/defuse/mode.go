package defuse

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by ParseMode for unrecognised mode names.
var ErrUnknownMode = errors.New("unknown rewrite mode")

// Mode selects the output channel a rewrite targets.
type Mode int

const (
	// ModeHTML neutralizes by entity-escaping. It is the zero value.
	ModeHTML Mode = iota
	// ModeText neutralizes by inserting Joiner.
	ModeText
)

// Joiner is U+2060 WORD JOINER. Inserted between "<" and a tag name (or
// before an attribute "="), it keeps an HTML tokenizer from recognising the
// construct while rendering as nothing.
const Joiner = "\u2060"

func (m Mode) String() string {
	switch m {
	case ModeText:
		return "text"
	default:
		return "html"
	}
}

// ParseMode parses a mode name as used in configuration and on the command line.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "html":
		return ModeHTML, nil
	case "text", "plain":
		return ModeText, nil
	default:
		return ModeHTML, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}
