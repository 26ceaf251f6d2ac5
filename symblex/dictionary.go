package symblex

import (
	"sort"
	"strings"
	"sync"
)

// ============================================================
// Dictionary
// ============================================================

// Dictionary holds the word registry and the derived token maps. A
// Dictionary is an explicit instance owned by the caller; there is no
// package-level shared state. Lookups and codec operations take a read
// lock, Merge takes the write lock, so a single instance can be shared
// across goroutines as long as merges happen-before or are serialized
// with reads in the usual way.
type Dictionary struct {
	mu sync.RWMutex

	// words is the append-only registry. A word's position is its
	// registry index and is stable for the lifetime of the instance:
	// suffix tokens and packed bitstreams both embed these positions.
	words []string

	// byWord maps a registry word to its index. Exact, case-sensitive
	// on the stored (lowercase) form.
	byWord map[string]int

	// encode maps lowercase word -> token. Custom merges overwrite
	// (last writer wins).
	encode map[string]string

	// decode maps token -> lowercase word. Custom merges never
	// overwrite (first writer wins), so built-in reverse mappings are
	// permanent.
	decode map[string]string
}

// New creates a Dictionary loaded with the built-in word registry.
func New() *Dictionary {
	d := &Dictionary{
		words:  make([]string, 0, len(builtinWords)),
		byWord: make(map[string]int, len(builtinWords)),
		encode: make(map[string]string, len(builtinWords)),
		decode: make(map[string]string, len(builtinWords)),
	}
	for _, w := range builtinWords {
		i := len(d.words)
		d.words = append(d.words, w)
		d.byWord[w] = i
		if tok, ok := tokenForIndex(i); ok {
			d.encode[w] = tok
			d.decode[tok] = w
		}
	}
	return d
}

// Len returns the number of words in the registry (built-in plus merged
// custom words).
func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.words)
}

// IndexOf returns the registry index of a word. Exact match only,
// case-sensitive on the stored lowercase form.
func (d *Dictionary) IndexOf(word string) (int, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	i, ok := d.byWord[word]
	return i, ok
}

// WordAt returns the registry word at the given index.
func (d *Dictionary) WordAt(index int) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.wordAt(index)
}

func (d *Dictionary) wordAt(index int) (string, bool) {
	if index < 0 || index >= len(d.words) {
		return "", false
	}
	return d.words[index], true
}

// TokenFor returns the 3-char token for a word, if one exists. The word
// is lowercased before lookup.
func (d *Dictionary) TokenFor(word string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	tok, ok := d.encode[lowerRun(word)]
	return tok, ok
}

// WordFor returns the word for a 3-char token, if one exists.
func (d *Dictionary) WordFor(token string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	w, ok := d.decode[token]
	return w, ok
}

// Lookup resolves a word to its token the same way Encode does: direct
// dictionary match first, then stem derivation. Returns false when the
// word is not representable.
func (d *Dictionary) Lookup(word string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	lower := lowerRun(word)
	if tok, ok := d.encode[lower]; ok {
		return tok, true
	}
	if root, rule, ok := d.stem(lower); ok {
		if tok, ok := suffixToken(root, rule); ok {
			return tok, true
		}
	}
	return "", false
}

// Words returns a snapshot copy of the registry in index order.
func (d *Dictionary) Words() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}

// ============================================================
// Custom Merge
// ============================================================

// minCustomWordLen is the shortest word a custom dictionary may add.
// Shorter words never pay for their token and are skipped.
const minCustomWordLen = 4

// Merge folds a custom dictionary artifact into the instance. See
// MergeCustom for the rules. A nil artifact is a no-op.
func (d *Dictionary) Merge(cd *CustomDict) int {
	if cd == nil {
		return 0
	}
	return d.MergeCustom(cd.Encode, cd.Decode)
}

// MergeCustom merges externally supplied word/token pairs.
//
// For each encode pair: words shorter than 4 characters are skipped; the
// word is lowercased, inserted into the encode map (overwriting any prior
// entry), inserted into the decode map only when the token has no reverse
// entry yet, and appended to the registry when not already present.
// Decode-only pairs fill decode-map gaps under the same first-writer-wins
// rule and never touch the registry.
//
// Malformed entries (empty or unmarked tokens) are skipped individually;
// the merge itself never fails. Returns the number of encode pairs
// accepted. Entries are applied in sorted key order so that colliding
// input produces the same maps on every run.
func (d *Dictionary) MergeCustom(encode, decode map[string]string) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	accepted := 0
	for _, word := range sortedKeys(encode) {
		tok := encode[word]
		lower := lowerRun(word)
		if len(lower) < minCustomWordLen || !validCustomToken(tok) {
			continue
		}
		d.encode[lower] = tok
		if _, exists := d.decode[tok]; !exists {
			d.decode[tok] = lower
		}
		if _, exists := d.byWord[lower]; !exists {
			d.byWord[lower] = len(d.words)
			d.words = append(d.words, lower)
		}
		accepted++
	}
	for _, tok := range sortedKeys(decode) {
		word := strings.TrimSpace(decode[tok])
		if word == "" || !validCustomToken(tok) {
			continue
		}
		if _, exists := d.decode[tok]; !exists {
			d.decode[tok] = lowerRun(word)
		}
	}
	return accepted
}

// validCustomToken checks the minimal shape of a merged token: sigil
// followed by at least two base-62 digits.
func validCustomToken(tok string) bool {
	if len(tok) < 3 || tok[0] != Sigil {
		return false
	}
	for i := 1; i < len(tok); i++ {
		if !isBase62(tok[i]) {
			return false
		}
	}
	return true
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
