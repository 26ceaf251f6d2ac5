package symblex

// ============================================================
// Token Alphabet and Zones
// ============================================================

// Sigil is the marker character prefixing every token. It is in the
// RFC 3986 unreserved set, so token text survives URL embedding without
// percent-encoding.
const Sigil = '~'

// base62 is the token digit alphabet, in positional order. The first
// character of a 3-char token is base62[index/62], which partitions the
// index space into zones:
//
//	positions  0-23 ('0'-'9', 'a'-'n')  built-in words, index 0-1467
//	positions 24-35 ('o'-'z')           custom words, index 1500-2231
//	positions 36-61 ('A'-'Z')           never produced by 3-char tokens;
//	                                    reserved for 4-char suffix tokens
//
// Zone membership is decidable from the first payload character alone,
// so the three namespaces cannot collide by construction.
const base62 = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// customIndexStart is the first token index assigned to custom words.
// Indices 1468-1499 are left unused as a buffer between the built-in
// registry and the custom zone.
const customIndexStart = 1500

// customIndexEnd is the last addressable custom token index ('z' + 'Z').
const customIndexEnd = 35*62 + 61 // 2231

// CustomCapacity is the number of token slots in the custom zone.
const CustomCapacity = customIndexEnd - customIndexStart + 1 // 732

// base62Pos returns the positional value of a base-62 digit, or -1 if
// the byte is not in the alphabet.
func base62Pos(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 36
	default:
		return -1
	}
}

// isBase62 reports whether c is a token digit.
func isBase62(c byte) bool {
	return base62Pos(c) >= 0
}

// tokenForIndex builds the 3-char token for a word index (built-in or
// custom zone). Indexes outside [0, customIndexEnd] have no token.
func tokenForIndex(index int) (string, bool) {
	if index < 0 || index > customIndexEnd {
		return "", false
	}
	return string([]byte{Sigil, base62[index/62], base62[index%62]}), true
}

// indexForToken decodes the word index of a 3-char token. The token must
// be exactly sigil + two base-62 digits.
func indexForToken(tok string) (int, bool) {
	if len(tok) != 3 || tok[0] != Sigil {
		return 0, false
	}
	hi := base62Pos(tok[1])
	lo := base62Pos(tok[2])
	if hi < 0 || lo < 0 {
		return 0, false
	}
	return hi*62 + lo, true
}

// isLetter reports whether b is an ASCII letter. Letter-run scanning is
// byte-based: every byte of a multi-byte UTF-8 sequence has the high bit
// set, so non-Latin text can never be mistaken for a word.
func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// lowerRun lowercases an ASCII letter run without touching other bytes.
func lowerRun(s string) string {
	buf := []byte(s)
	changed := false
	for i, b := range buf {
		if b >= 'A' && b <= 'Z' {
			buf[i] = b + ('a' - 'A')
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(buf)
}
