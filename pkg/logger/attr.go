package logger

import (
	"log/slog"
	"maps"
	"slices"
)

// Error records err under "error". Nil errors yield an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records id under "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Mode records a rewrite mode under "mode".
func Mode(mode string) slog.Attr {
	return slog.String("mode", mode)
}

// Surface records a render surface under "surface".
func Surface(surface string) slog.Attr {
	return slog.String("surface", surface)
}

// MessageFormat records a message format under "format".
func MessageFormat(format string) slog.Attr {
	return slog.String("format", format)
}

// MessageKey records a message catalog key under "message_key".
func MessageKey(key string) slog.Attr {
	return slog.String("message_key", key)
}

// Rewrites records a substitution count under "rewrites".
func Rewrites(n int) slog.Attr {
	return slog.Int("rewrites", n)
}

// Rules groups per-rule substitution counts under "rules". Rules with a zero
// count are left out; if none remain the Attr is empty.
func Rules(counts map[string]int) slog.Attr {
	attrs := make([]slog.Attr, 0, len(counts))
	for _, name := range slices.Sorted(maps.Keys(counts)) {
		if n := counts[name]; n > 0 {
			attrs = append(attrs, slog.Int(name, n))
		}
	}
	if len(attrs) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "rules", Value: slog.GroupValue(attrs...)}
}
