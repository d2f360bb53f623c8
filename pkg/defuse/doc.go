// Package defuse rewrites untrusted markup so that the few constructs a browser
// would execute or follow without script are turned into inert text.
//
// It is a second line of defense that sits behind a Content-Security-Policy
// header. It is not an HTML sanitizer: nothing is parsed, nothing is removed,
// and well-formedness of the surrounding markup is never checked. Three small
// rules are applied to the raw string instead:
//
//   - script:     every "<script" (any case) stops being a tag start.
//   - href:       an "=" after "href" whose value looks like it could be a
//     javascript: URI stops being an attribute assignment.
//   - scriptless: every "<meta" and "<base" stops being a tag start. Only
//     active when Flags.Scriptless is set.
//
// # Modes
//
// ModeHTML is used for output that is rendered as HTML. Tag starts are
// entity-escaped ("&lt;script") and the href "=" becomes "&#61;".
//
// ModeText is used for strings that should never be interpreted as HTML at
// all. The invisible Joiner character (U+2060 WORD JOINER) is inserted after
// "<" or before "=", which breaks HTML tokenization while leaving the text
// visually unchanged. This is weaker than escaping and only makes sense if
// plain-text consumers really never treat the output as markup.
//
// # Usage
//
//	out := defuse.Rewrite(body, defuse.ModeHTML, defuse.Flags{Scriptless: true})
//
// RewriteReport returns the same output together with per-rule substitution
// counts, which is what the render and message pipelines use for logging and
// metrics.
//
// # Matching
//
// The href rule is biased towards false positives: some legitimate href
// values are mangled, but no javascript: URI survives. All rules run in
// linear time; the href lookahead is evaluated by a small scanner rather
// than a backtracking regular expression.
//
// All functions are pure and safe for concurrent use.
package defuse
