// File: plural.go
// Title: English Pluralization
// Description: Rule based plural forms for the nouns that show up as set,
//              mesh and variable names. Rules are suffix patterns tried in
//              order; the first that matches wins.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package strhelp

// PluralRule rewrites the end of a word. Pattern is a POSIX ERE; on a match
// the word is cut at the start of the match and Replacement is appended.
type PluralRule struct {
	Pattern     string
	Replacement string
}

// pluralRules is ordered: specific endings come before the generic ones they
// would otherwise be shadowed by. There is no table of irregular nouns, so
// words like "child" fall through to the trailing "s".
var pluralRules = []PluralRule{
	{"ss$", "sses"},
	{"zz$", "zzes"},
	{"sh$", "shes"},
	{"tch$", "tches"},
	{"eaf$", "eaves"},
	{"ief$", "ieves"},
	{"roof$", "roofs"},
	{"ife$", "ives"},
	{"lf$", "lves"},
	{"ay$", "ays"},
	{"ey$", "eys"},
	{"iy$", "iys"},
	{"oy$", "oys"},
	{"uy$", "uys"},
	{"ndum$", "nda"},
	{"um$", "a"},
	{"schema$", "schemas"},
	{"ia$", "ium"},
	{"ma$", "mata"},
	{"na$", "nae"},
	{"ta$", "tum"},
	{"atlas$", "atlases"},
	{"aircraft$", "aircraft"},
	{"alga$", "algae"},
	{"alumna$", "alumnae"},
	{"automaton$", "automata"},
	{"corpus$", "corpora"},
	{"cs$", "csen"},
	{"foot$", "feet"},
	{"formula$", "formulae"},
	{"rion$", "ria"},
	{"focus$", "foci"},
	{"genus$", "genera"},
	{"hedron$", "hedra"},
	{"index$", "indices"},
	{"ouse$", "ice"},
	{"man$", "men"},
	{"matrix$", "matrices"},
	{"nucleus$", "nuclei"},
	{"offspring$", "offspring"},
	{"phenomenon$", "phenomena"},
	{"people$", "people"},
	{"perch$", "perch"},
	{"piano$", "pianos"},
	{"police$", "police"},
	{"portico$", "porticos"},
	{"quarto$", "quartos"},
	{"radius$", "radii"},
	{"solo$", "solos"},
	{"syllabus$", "syllabi"},
	{"terminus$", "termini"},
	{"ulus$", "uli"},
	{"tooth$", "teeth"},
	{"uterus$", "uteri"},
	{"virtuoso$", "virtuosi"},
	{"viscus$", "viscera"},
	{"is$", "es"},
	{"us$", "uses"},
	{"io$", "ios"},
	{"oo$", "oos"},
	{"o$", "oes"},
	{"y$", "ies"},
	{"ex$", "ices"},
	{"ix$", "ices"},
	{"x$", "xes"},
}

// PluralRules returns a copy of the rule table in application order
func PluralRules() []PluralRule {
	out := make([]PluralRule, len(pluralRules))
	copy(out, pluralRules)
	return out
}

// Plural returns the English plural of a singular noun. The first rule whose
// pattern matches rewrites the word; without a matching rule "s" is
// appended.
func Plural(word string) string {
	for _, rule := range pluralRules {
		if plural, ok := ReplaceRE(word, rule.Pattern, rule.Replacement); ok {
			return plural
		}
	}
	return word + "s"
}
