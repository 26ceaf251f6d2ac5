package symblex

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ============================================================
// Token Codec
// ============================================================

// Encode replaces every recognizable English word in text with its
// token. The scan walks maximal ASCII letter runs; digits, punctuation,
// whitespace, and non-Latin bytes pass through verbatim. A run resolves
// to a 3-char token on an exact dictionary match (case-insensitive), to
// a 4-char suffix token when the stemmer derives it from a registry
// root, and otherwise stays unchanged with its original casing.
//
// Encode is a total function: it never fails, and in the worst case
// returns the input unchanged.
func (d *Dictionary) Encode(text string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); {
		if !isLetter(text[i]) {
			sb.WriteByte(text[i])
			i++
			continue
		}
		j := i + 1
		for j < len(text) && isLetter(text[j]) {
			j++
		}
		run := text[i:j]
		sb.WriteString(d.encodeRun(run))
		i = j
	}
	return sb.String()
}

// encodeRun resolves one letter run to a token, or returns the run
// unchanged. Caller holds the read lock.
func (d *Dictionary) encodeRun(run string) string {
	lower := lowerRun(run)
	if tok, ok := d.encode[lower]; ok {
		return tok
	}
	if root, rule, ok := d.stem(lower); ok {
		if tok, ok := suffixToken(root, rule); ok {
			return tok
		}
	}
	return run
}

// Decode replaces every token-shaped substring in text with its word.
// A token shape is the sigil followed greedily by 2-3 base-62 digits.
// Two digits form a 3-char token resolved through the decode map; three
// digits form a 4-char suffix token, honored only when the first digit
// is an uppercase letter. Anything unrecognized, including unknown
// tokens, passes through verbatim. Decode never fails.
func (d *Dictionary) Decode(text string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); {
		if text[i] != Sigil {
			sb.WriteByte(text[i])
			i++
			continue
		}
		n := 0
		for n < 3 && i+1+n < len(text) && isBase62(text[i+1+n]) {
			n++
		}
		if n < 2 {
			sb.WriteByte(text[i])
			i++
			continue
		}
		tok := text[i : i+1+n]
		sb.WriteString(d.decodeToken(tok))
		i += 1 + n
	}
	return sb.String()
}

// decodeToken resolves one token-shaped substring, falling back to the
// literal text. Caller holds the read lock.
func (d *Dictionary) decodeToken(tok string) string {
	if len(tok) == 3 {
		if w, ok := d.decode[tok]; ok {
			return w
		}
		return tok
	}
	// 4-char shape: only an uppercase zone character marks a suffix
	// token; everything else is plain text that happened to match.
	root, rule, ok := parseSuffixToken(tok)
	if !ok {
		return tok
	}
	if w, ok := d.expandStem(root, rule); ok {
		return w
	}
	return tok
}

// EncodeToURL encodes text and substitutes spaces with '+', yielding a
// string that needs no percent-encoding in a URL query.
func (d *Dictionary) EncodeToURL(text string) string {
	return strings.ReplaceAll(d.Encode(text), " ", "+")
}

// DecodeFromURL reverses EncodeToURL. Both '+' and the literal sequence
// "%20" are accepted as spaces before decoding.
func (d *Dictionary) DecodeFromURL(text string) string {
	text = strings.ReplaceAll(text, "+", " ")
	text = strings.ReplaceAll(text, "%20", " ")
	return d.Decode(text)
}

// EncodeAny coerces an arbitrary value to text and encodes it. Booleans
// and numbers use their literal text, structured values their canonical
// JSON form, nil the empty string. Coercion never fails; values that
// cannot be serialized fall back to fmt's default formatting.
func (d *Dictionary) EncodeAny(v any) string {
	return d.Encode(Coerce(v))
}

// Coerce renders an arbitrary value as the text Encode operates on.
func Coerce(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32)
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	default:
		if b, err := json.Marshal(v); err == nil {
			return string(b)
		}
		return fmt.Sprint(v)
	}
}
