package defuse

// Rewrite neutralizes script vectors in input for the given output mode.
// It never fails and never removes characters from the input.
func Rewrite(input string, mode Mode, flags Flags) string {
	out, _ := Select(mode, flags).Apply(input)
	return out
}

// RewriteReport is Rewrite plus the number of substitutions per rule.
func RewriteReport(input string, mode Mode, flags Flags) (string, Report) {
	return Select(mode, flags).Apply(input)
}

// RuleCount is the number of substitutions one rule made.
type RuleCount struct {
	Rule  string
	Count int
}

// Report lists substitution counts for every rule that ran, in order.
type Report []RuleCount

// Total returns the number of substitutions across all rules.
func (r Report) Total() int {
	total := 0
	for _, c := range r {
		total += c.Count
	}
	return total
}

// Changed reports whether any rule rewrote something.
func (r Report) Changed() bool {
	return r.Total() > 0
}

// Count returns the substitutions made by the named rule.
func (r Report) Count(rule string) int {
	for _, c := range r {
		if c.Rule == rule {
			return c.Count
		}
	}
	return 0
}
