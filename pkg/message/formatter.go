package message

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/net/html"

	"github.com/dmitrymomot/xssguard/pkg/logger"
)

// DefaultLanguage is used when no WithDefaultLanguage option is given.
const DefaultLanguage = "en"

// Formatter renders catalog messages. It is safe for concurrent use; the
// catalog is never modified after New returns.
type Formatter struct {
	catalog     Catalog
	defaultLang string
	logger      *slog.Logger
	post        []PostProcessor
	negotiator  negotiator
}

// New loads the catalog from src and returns a Formatter.
func New(ctx context.Context, src Source, opts ...Option) (*Formatter, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	f := &Formatter{
		defaultLang: DefaultLanguage,
		logger:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}

	cat, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, messages := range cat {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidCatalog)
		}
		if messages == nil {
			return nil, fmt.Errorf("%w: nil messages for language %q", ErrInvalidCatalog, lang)
		}
	}
	f.catalog = cat
	f.negotiator = newNegotiator(f.defaultLang, f.Languages())

	f.logger.InfoContext(ctx, "message catalog loaded",
		slog.Any("languages", f.Languages()),
		slog.Int("post_processors", len(f.post)),
	)
	return f, nil
}

// Languages returns the catalog languages in sorted order.
func (f *Formatter) Languages() []string {
	return slices.Sorted(maps.Keys(f.catalog))
}

// Has reports whether key resolves to a message for lang, falling back to
// the default language like Format does.
func (f *Formatter) Has(lang, key string) bool {
	_, ok := f.lookup(lang, key)
	return ok
}

// Format renders the message key for lang. Params are name/value pairs that
// fill %{name} placeholders; a trailing name without a value is ignored.
// Unknown keys render as ⧼key⧽. The result always runs through the
// configured post-processors.
func (f *Formatter) Format(ctx context.Context, lang, key string, format Format, params ...string) string {
	var out string
	if tmpl, ok := f.lookup(lang, key); ok {
		out = render(tmpl, format, buildParams(params))
	} else {
		f.logger.DebugContext(ctx, "message not found",
			slog.String("lang", lang),
			logger.MessageKey(key),
			logger.MessageFormat(format.String()),
		)
		out = missing(key, format)
	}

	for _, p := range f.post {
		out = p.Process(ctx, format, out)
	}
	return out
}

func (f *Formatter) lookup(lang, key string) (string, bool) {
	if messages, ok := f.catalog[lang]; ok {
		if tmpl, ok := findMessage(messages, key); ok {
			return tmpl, true
		}
	}
	if lang == f.defaultLang {
		return "", false
	}
	if messages, ok := f.catalog[f.defaultLang]; ok {
		return findMessage(messages, key)
	}
	return "", false
}

// findMessage resolves key first as a literal key and then as a
// dot-separated path into nested maps.
func findMessage(messages map[string]any, key string) (string, bool) {
	if v, ok := messages[key]; ok {
		return leafString(v)
	}

	var current any = messages
	for part := range strings.SplitSeq(key, ".") {
		switch m := current.(type) {
		case map[string]any:
			v, ok := m[part]
			if !ok {
				return "", false
			}
			current = v
		case map[any]any:
			v, ok := m[part]
			if !ok {
				return "", false
			}
			current = v
		default:
			return "", false
		}
	}
	return leafString(current)
}

func leafString(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case nil, map[string]any, map[any]any, []any:
		return "", false
	default:
		return fmt.Sprint(v), true
	}
}

func buildParams(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

func render(tmpl string, format Format, params map[string]string) string {
	out := paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		val, ok := params[match[2:len(match)-1]]
		if !ok {
			return match
		}
		if format == FormatParse {
			return html.EscapeString(val)
		}
		return val
	})
	if format == FormatEscaped {
		return html.EscapeString(out)
	}
	return out
}

func missing(key string, format Format) string {
	switch format {
	case FormatParse, FormatEscaped:
		return "⧼" + html.EscapeString(key) + "⧽"
	default:
		return "⧼" + key + "⧽"
	}
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithDefaultLanguage sets the language consulted when a key is missing in
// the requested one. Empty values are ignored.
func WithDefaultLanguage(lang string) Option {
	return func(f *Formatter) {
		if lang != "" {
			f.defaultLang = lang
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(f *Formatter) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithPostProcessors appends post-processors. They run in the given order
// after formatting. Nil entries are dropped.
func WithPostProcessors(pp ...PostProcessor) Option {
	return func(f *Formatter) {
		for _, p := range pp {
			if p != nil {
				f.post = append(f.post, p)
			}
		}
	}
}
