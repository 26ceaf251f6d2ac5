package symblex

import "strings"

// ============================================================
// Suffix Stemming
// ============================================================

// suffixRule describes one derivation: a word ending, whether the root
// may have elided a trailing "e" (love -> loving), and the single
// character used as the last byte of a suffix token.
type suffixRule struct {
	suffix string
	eDrop  bool
	code   byte
}

// suffixRules is the fixed rule table, in priority order: longer and more
// specific endings come before the short ones they contain ("ers" before
// "er" and "s", "est" before "s"), so the most specific derivation wins.
// The table position is also the 4-bit rule index in the packed binary
// format, so entries must never be reordered or removed.
var suffixRules = []suffixRule{
	{"ment", false, 'M'},
	{"ness", false, 'N'},
	{"tion", false, 'T'},
	{"able", true, 'A'},
	{"less", false, 'L'},
	{"ful", false, 'F'},
	{"est", true, 'E'},
	{"ers", true, 'R'},
	{"ing", true, 'G'},
	{"ion", true, 'I'},
	{"ed", true, 'D'},
	{"er", true, 'r'},
	{"ly", true, 'l'},
	{"es", false, 'e'},
	{"s", false, 's'},
}

// maxStemRoot is the highest registry index a suffix token can address:
// the first payload character is one of 26 uppercase letters, the second
// one of 62 digits. Custom words merged beyond this range silently stop
// being usable as stem roots, which is acceptable: custom words are not
// meant to be stemmed.
const maxStemRoot = 26*62 - 1

// ruleByCode returns the rule position for a token code byte.
func ruleByCode(code byte) (int, bool) {
	for i := range suffixRules {
		if suffixRules[i].code == code {
			return i, true
		}
	}
	return 0, false
}

// stem resolves a lowercase word absent from the registry into a
// (root index, rule position) pair. Every rule whose suffix matches the
// word's ending is tried in table order; a textual match whose root
// lookups fail does not stop the scan.
func (d *Dictionary) stem(word string) (root int, rule int, ok bool) {
	for i, r := range suffixRules {
		if len(word) <= len(r.suffix) || !strings.HasSuffix(word, r.suffix) {
			continue
		}
		base := word[:len(word)-len(r.suffix)]
		if idx, found := d.byWord[base]; found {
			return idx, i, true
		}
		if r.eDrop {
			if idx, found := d.byWord[base+"e"]; found {
				return idx, i, true
			}
		}
	}
	return 0, 0, false
}

// expandStem reconstructs the surface word for a (root index, rule
// position) pair: root + suffix, with the root's trailing "e" removed
// first when the rule elides it.
func (d *Dictionary) expandStem(root, rule int) (string, bool) {
	word, ok := d.wordAt(root)
	if !ok || rule < 0 || rule >= len(suffixRules) {
		return "", false
	}
	r := suffixRules[rule]
	if r.eDrop && len(word) > 0 && word[len(word)-1] == 'e' {
		word = word[:len(word)-1]
	}
	return word + r.suffix, true
}

// suffixToken builds the 4-char token for a stem derivation. Roots
// beyond the addressable range have no token.
func suffixToken(root, rule int) (string, bool) {
	if root < 0 || root > maxStemRoot || rule < 0 || rule >= len(suffixRules) {
		return "", false
	}
	return string([]byte{Sigil, byte('A' + root/62), base62[root%62], suffixRules[rule].code}), true
}

// parseSuffixToken decodes a 4-char suffix token into its (root index,
// rule position) pair. The token must be sigil + uppercase letter +
// base-62 digit + rule code.
func parseSuffixToken(tok string) (root int, rule int, ok bool) {
	if len(tok) != 4 || tok[0] != Sigil || tok[1] < 'A' || tok[1] > 'Z' {
		return 0, 0, false
	}
	lo := base62Pos(tok[2])
	if lo < 0 {
		return 0, 0, false
	}
	rule, ok = ruleByCode(tok[3])
	if !ok {
		return 0, 0, false
	}
	return int(tok[1]-'A')*62 + lo, rule, true
}
