package render

import (
	"context"
	"regexp"
)

var headCloseRegex = regexp.MustCompile(`(?i)</head\s*>`)

// InjectHead returns an Interceptor that inserts snippet right before the
// first closing head tag. Bodies without one are returned unchanged.
//
// Register it after the Protector when snippet is trusted markup that the
// rewrite rules would otherwise neutralize, such as csp.CompanionTag.
func InjectHead(snippet string) Interceptor {
	return InterceptorFunc(func(_ context.Context, surface Surface, body string) string {
		if surface != SurfacePrimary {
			return body
		}
		loc := headCloseRegex.FindStringIndex(body)
		if loc == nil {
			return body
		}
		return body[:loc[0]] + snippet + body[loc[0]:]
	})
}
