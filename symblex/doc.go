// Package symblex compresses English text by replacing common and
// derived words with short URL-safe tokens, and offers a bit-packed
// binary encoding for maximum density.
//
// # Token Form
//
// Every token starts with the sigil '~' followed by base-62 digits. The
// first digit selects the namespace:
//
//	~ng   3 chars, first digit in 0-9a-n: built-in word (index 0-1467)
//	~o3   3 chars, first digit in o-z:    custom word (index 1500-2231)
//	~XgG  4 chars, first digit in A-Z:    stem (root index + suffix rule)
//
// The three zones are disjoint by construction, so a token's meaning is
// decidable from its first payload character alone.
//
// # Encoding
//
//	d := symblex.New()
//	d.Encode("working together toward freedom")  // "~ng ~kQ ~l6 ~7N"
//	d.Decode("~ng ~kQ ~l6 ~7N")                  // back to the text
//
// Words absent from the registry but derivable as root + suffix
// ("developing" = "develop" + "ing") become 4-char suffix tokens.
// Unrecognized words, digits, punctuation, and non-Latin text pass
// through verbatim in both directions: every operation is a total
// function that degrades to pass-through instead of failing.
//
// # Binary Form
//
// Pack serializes text as a prefix-free variable-length bit code
// (dictionary words in 12 bits, stems in 17, spaces in 3) rendered in
// the base64url alphabet, and Unpack reverses it:
//
//	d.Unpack(d.Pack("working toward freedom")) // round-trips
//
// # Custom Dictionaries
//
// A corpus scanned offline with Builder yields a custom dictionary
// artifact occupying the custom token zone. Merging it extends the
// registry without perturbing built-in indices:
//
//	cd, _ := symblex.LoadCustomDict("corpus.dict.json")
//	d.Merge(cd)
package symblex
