package defuse

import (
	"regexp"
	"strings"
)

// Rule names as reported in Report and used as metric labels.
const (
	RuleScript     = "script"
	RuleHref       = "href"
	RuleScriptless = "scriptless"
)

// Rule is one pattern to replacement transform.
type Rule struct {
	Name string

	appliesWhen func(Flags) bool
	apply       func(s string, mode Mode) (string, int)
}

// AppliesTo reports whether the rule is active under flags.
func (r Rule) AppliesTo(flags Flags) bool {
	return r.appliesWhen == nil || r.appliesWhen(flags)
}

// Apply rewrites every non-overlapping match in s and returns the result
// together with the number of substitutions made.
func (r Rule) Apply(s string, mode Mode) (string, int) {
	if r.apply == nil {
		return s, 0
	}
	return r.apply(s, mode)
}

// The order matters: later rules must never match text inserted by earlier ones.
var ruleSet = []Rule{
	{
		Name:  RuleScript,
		apply: defuseTagStarts(scriptTagRegex),
	},
	{
		Name:  RuleHref,
		apply: defuseHrefAssignments,
	},
	{
		Name:        RuleScriptless,
		appliesWhen: func(f Flags) bool { return f.Scriptless },
		apply:       defuseTagStarts(scriptlessTagRegex),
	},
}

// Rules returns every rule in application order, regardless of flags.
func Rules() []Rule {
	out := make([]Rule, len(ruleSet))
	copy(out, ruleSet)
	return out
}

// defuseTagStarts keeps the tag name exactly as written and only changes
// what precedes it.
func defuseTagStarts(re *regexp.Regexp) func(string, Mode) (string, int) {
	return func(s string, mode Mode) (string, int) {
		locs := re.FindAllStringIndex(s, -1)
		if len(locs) == 0 {
			return s, 0
		}

		var b strings.Builder
		b.Grow(len(s) + len(locs)*len(Joiner))
		last := 0
		for _, loc := range locs {
			b.WriteString(s[last:loc[0]])
			if mode == ModeText {
				b.WriteByte('<')
				b.WriteString(Joiner)
			} else {
				b.WriteString("&lt;")
			}
			last = loc[0] + 1
		}
		b.WriteString(s[last:])
		return b.String(), len(locs)
	}
}

func defuseHrefAssignments(s string, mode Mode) (string, int) {
	locs := hrefAssignRegex.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return s, 0
	}

	scan := newHrefScanner(s)
	var b strings.Builder
	n, last := 0, 0
	for _, loc := range locs {
		if scan.safeAt(loc[1]) {
			continue
		}
		if n == 0 {
			b.Grow(len(s) + len(locs)*len("&#61;"))
		}
		eq := loc[1] - 1
		b.WriteString(s[last:eq])
		if mode == ModeText {
			b.WriteString(Joiner)
			b.WriteByte('=')
		} else {
			b.WriteString("&#61;")
		}
		last = loc[1]
		n++
	}
	if n == 0 {
		return s, 0
	}
	b.WriteString(s[last:])
	return b.String(), n
}
