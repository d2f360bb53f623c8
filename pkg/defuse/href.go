package defuse

// hrefScanner evaluates, at increasing offsets of one string, the negative
// lookahead
//
//	[\0\t\f\n\r ]*+['"]?(?:[a-ik-z0-9/]|[^:'"/]++['"/])
//
// case-insensitively. A match means the href value looks safe; anything
// else, including a missing value, counts as suspicious.
//
// The end of the last scanned [^:'"/] run is remembered, so a long run
// shared by many candidates is walked once.
type hrefScanner struct {
	s        string
	runStart int
	runStop  int
}

func newHrefScanner(s string) *hrefScanner {
	return &hrefScanner{s: s, runStart: -1, runStop: -1}
}

// safeAt evaluates the lookahead at offset p, the byte after "=".
func (h *hrefScanner) safeAt(p int) bool {
	i := p
	for i < len(h.s) && isHrefSpace(h.s[i]) {
		i++
	}
	if i < len(h.s) && isQuote(h.s[i]) && h.valueStartSafeAt(i+1) {
		return true
	}
	return h.valueStartSafeAt(i)
}

// valueStartSafeAt: a letter other than j, a digit or a slash, or a run
// free of ':', quotes and '/' that ends in a quote or '/'.
func (h *hrefScanner) valueStartSafeAt(p int) bool {
	if p >= len(h.s) {
		return false
	}
	c := h.s[p]
	if isAllowedValueStart(c) {
		return true
	}
	if isValueStop(c) {
		return false
	}
	stop := h.stopFrom(p)
	return stop < len(h.s) && h.s[stop] != ':'
}

// stopFrom returns the index of the first stop byte at or after p, or len(s).
func (h *hrefScanner) stopFrom(p int) int {
	if h.runStart >= 0 && h.runStart <= p && p <= h.runStop {
		return h.runStop
	}
	i := p
	for i < len(h.s) && !isValueStop(h.s[i]) {
		i++
	}
	h.runStart, h.runStop = p, i
	return i
}

func hrefValueLooksSafe(v string) bool {
	return newHrefScanner(v).safeAt(0)
}

func isHrefSpace(c byte) bool {
	switch c {
	case 0, '\t', '\f', '\n', '\r', ' ':
		return true
	}
	return false
}

func isQuote(c byte) bool {
	return c == '"' || c == '\''
}

func isValueStop(c byte) bool {
	return c == ':' || c == '/' || isQuote(c)
}

// j is excluded on purpose.
func isAllowedValueStart(c byte) bool {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	switch {
	case c >= 'a' && c <= 'i', c >= 'k' && c <= 'z':
		return true
	case c >= '0' && c <= '9', c == '/':
		return true
	}
	return false
}
