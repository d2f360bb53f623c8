package csp

import "strings"

// HeaderName is the response header this package appends to.
const HeaderName = "Content-Security-Policy"

// Directives returns the policy value for the given scriptless setting.
// Inline event handler attributes are always blocked. Scriptless mode also
// locks base-uri and object-src to 'none' and form-action to 'self'.
func Directives(scriptless bool) string {
	var b strings.Builder
	b.WriteString("script-src-attr 'none';")
	if scriptless {
		b.WriteString("base-uri 'none';")
		b.WriteString("object-src 'none';")
		b.WriteString("form-action 'self';")
	} else {
		b.WriteString("base-uri 'self';")
	}
	return b.String()
}
