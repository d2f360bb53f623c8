package defuse

// Flags is the configuration a rewrite runs under. It is passed explicitly
// on every call; the package keeps no global state.
type Flags struct {
	// Scriptless also neutralizes <meta> and <base>, which can redirect or
	// exfiltrate without running script.
	Scriptless bool
}

// Policy is the ordered list of rules active for one mode and flag set.
type Policy struct {
	Mode  Mode
	Rules []Rule
}

// Select returns the rules that apply under flags, in application order.
// Modes other than ModeText are treated as ModeHTML.
func Select(mode Mode, flags Flags) Policy {
	if mode != ModeText {
		mode = ModeHTML
	}
	rules := make([]Rule, 0, len(ruleSet))
	for _, r := range ruleSet {
		if r.AppliesTo(flags) {
			rules = append(rules, r)
		}
	}
	return Policy{Mode: mode, Rules: rules}
}

// Apply runs every rule of the policy over s in order.
func (p Policy) Apply(s string) (string, Report) {
	report := make(Report, 0, len(p.Rules))
	for _, r := range p.Rules {
		var n int
		s, n = r.Apply(s, p.Mode)
		report = append(report, RuleCount{Rule: r.Name, Count: n})
	}
	return s, report
}
