package message

import (
	"context"

	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrymomot/xssguard/pkg/defuse"
)

// PostProcessor transforms a formatted message. Every message a Formatter
// produces passes through its post-processors, missing-key placeholders
// included.
type PostProcessor interface {
	Process(ctx context.Context, format Format, s string) string
}

// PostProcessorFunc adapts a function to PostProcessor.
type PostProcessorFunc func(ctx context.Context, format Format, s string) string

func (fn PostProcessorFunc) Process(ctx context.Context, format Format, s string) string {
	return fn(ctx, format, s)
}

// Protect rewrites messages with defuse. Plain and text messages are
// rewritten in text mode so they stay readable when shown outside HTML,
// parse messages in HTML mode. Escaped messages are returned as is.
func Protect(flags defuse.Flags) PostProcessor {
	return PostProcessorFunc(func(_ context.Context, format Format, s string) string {
		mode, ok := ModeFor(format)
		if !ok {
			return s
		}
		return defuse.Rewrite(s, mode, flags)
	})
}

// Sanitize runs policy over FormatParse messages and leaves other formats
// alone. A nil policy falls back to bluemonday.UGCPolicy.
func Sanitize(policy *bluemonday.Policy) PostProcessor {
	if policy == nil {
		policy = bluemonday.UGCPolicy()
	}
	return PostProcessorFunc(func(_ context.Context, format Format, s string) string {
		if format != FormatParse {
			return s
		}
		return policy.Sanitize(s)
	})
}
