package defuse

import "regexp"

// Pre-compiled patterns. RE2 matching is linear in the input length.
//
// Tag names use explicit ASCII classes: (?i) folds Unicode, so it would also
// match "<ſcript" (U+017F), which browsers do not treat as a script tag.
var (
	scriptTagRegex     = regexp.MustCompile(`<[sS][cC][rR][iI][pP][tT]`)
	scriptlessTagRegex = regexp.MustCompile(`<(?:[mM][eE][tT][aA]|[bB][aA][sS][eE])`)

	// hrefAssignRegex only finds candidates; whether the value after "="
	// is suspicious is decided by hrefValueLooksSafe.
	hrefAssignRegex = regexp.MustCompile(`(?i)href[\x00\t\f\n\r ]*=`)
)
