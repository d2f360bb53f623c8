package message

import (
	"golang.org/x/text/language"
)

type negotiator struct {
	langs   []string
	matcher language.Matcher
}

// newNegotiator builds a matcher over the catalog languages with def in
// front, so an unmatched preference resolves to it. Codes that are not
// valid BCP 47 tags can still be requested by exact name but never win a
// negotiation.
func newNegotiator(def string, catalogLangs []string) negotiator {
	n := negotiator{}
	tags := make([]language.Tag, 0, len(catalogLangs)+1)
	for _, l := range append([]string{def}, catalogLangs...) {
		if len(n.langs) > 0 && l == def {
			continue
		}
		tag, err := language.Parse(l)
		if err != nil {
			continue
		}
		n.langs = append(n.langs, l)
		tags = append(tags, tag)
	}
	if len(tags) > 0 {
		n.matcher = language.NewMatcher(tags)
	}
	return n
}

// Negotiate returns the catalog language that best fits prefs, checked in
// order. Each pref is an Accept-Language style list ("de-AT,de;q=0.9") or a
// single tag. A pref naming a catalog language exactly wins immediately;
// otherwise the first pref with any acceptable match decides. Without a
// match the default language is returned.
func (f *Formatter) Negotiate(prefs ...string) string {
	for _, pref := range prefs {
		if pref == "" {
			continue
		}
		if _, ok := f.catalog[pref]; ok {
			return pref
		}
		if f.negotiator.matcher == nil {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(pref)
		if err != nil || len(tags) == 0 {
			continue
		}
		_, idx, conf := f.negotiator.matcher.Match(tags...)
		if conf != language.No {
			return f.negotiator.langs[idx]
		}
	}
	return f.defaultLang
}
