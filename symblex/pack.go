package symblex

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/icza/bitio"
)

// ============================================================
// Binary Packer
// ============================================================
//
// The packed form serializes text as a prefix-free bit code:
//
//	0   + 11-bit word index      dictionary word (registry position)
//	10  + 11-bit root + 4-bit    stem word (root position + rule index)
//	110                          single space
//	111 + 7-bit code point       raw ASCII character
//
// The stream always ends with the END sentinel: the dictionary-word tag
// carrying the reserved index 2047. The bit sequence is padded with
// zeros to a multiple of 6 and each 6-bit group is mapped through the
// base64url alphabet, so the result is URL-safe without escaping.

// packAlphabet is the base64url symbol set (RFC 4648 §5).
const packAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

const (
	packEndIndex = 2047 // reserved dictionary index marking end-of-stream
	packMaxIndex = 2046 // highest registry position the 11-bit field can carry
)

// Pack serializes text into the packed bit format and returns it as a
// base64url string. Letter runs are matched against the registry as-is
// (the registry stores lowercase, so capitalized runs fall through to
// raw characters and survive a round trip). Runes outside ASCII are
// percent-escaped to their UTF-8 byte sequence first and each escape
// character is packed as a raw slot; unpacking such input yields the
// escape text, not the original rune. Pack never fails.
func (d *Dictionary) Pack(text string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	nbits := 0
	write := func(v uint64, n uint8) {
		// The writer only fails when the underlying buffer does,
		// which bytes.Buffer never reports.
		_ = w.WriteBits(v&((1<<n)-1), n)
		nbits += int(n)
	}

	for i := 0; i < len(text); {
		b := text[i]
		switch {
		case isLetter(b):
			j := i + 1
			for j < len(text) && isLetter(text[j]) {
				j++
			}
			d.packRun(write, text[i:j])
			i = j
		case b == ' ':
			write(6, 3) // 110
			i++
		case b < 0x80:
			write(7, 3) // 111
			write(uint64(b), 7)
			i++
		default:
			// Non-ASCII: percent-escape the rune's UTF-8 bytes and
			// pack each escape character as a raw slot. This does
			// not round-trip to the original rune; see Unpack.
			_, size := utf8.DecodeRuneInString(text[i:])
			packEscape(write, text[i:i+size])
			i += size
		}
	}

	// END sentinel.
	write(0, 1)
	write(packEndIndex, 11)
	_ = w.Close()

	return packBits(buf.Bytes(), nbits)
}

// packRun emits one letter run: a word tag on an exact registry match,
// a stem tag on a derivable one, raw characters otherwise.
func (d *Dictionary) packRun(write func(uint64, uint8), run string) {
	if idx, ok := d.byWord[run]; ok && idx <= packMaxIndex {
		write(0, 1)
		write(uint64(idx), 11)
		return
	}
	if root, rule, ok := d.stem(run); ok && root <= packMaxIndex {
		write(2, 2) // 10
		write(uint64(root), 11)
		write(uint64(rule), 4)
		return
	}
	for i := 0; i < len(run); i++ {
		write(7, 3) // 111
		write(uint64(run[i]), 7)
	}
}

// packEscape emits the percent-escape of every byte in s as raw slots.
func packEscape(write func(uint64, uint8), s string) {
	for i := 0; i < len(s); i++ {
		esc := fmt.Sprintf("%%%02X", s[i])
		for k := 0; k < len(esc); k++ {
			write(7, 3) // 111
			write(uint64(esc[k]), 7)
		}
	}
}

// packBits regroups nbits bits (stored byte-aligned in data) into 6-bit
// symbols, zero-padding the tail group.
func packBits(data []byte, nbits int) string {
	groups := (nbits + 5) / 6
	// One spare byte covers the case where the 6-bit regrouping reads
	// past the byte-aligned payload.
	r := bitio.NewReader(bytes.NewReader(append(data, 0)))
	var sb strings.Builder
	sb.Grow(groups)
	for i := 0; i < groups; i++ {
		v, err := r.ReadBits(6)
		if err != nil {
			break
		}
		sb.WriteByte(packAlphabet[v])
	}
	return sb.String()
}

// Unpack reverses Pack. Unknown alphabet characters are skipped, a word
// read with an index at or beyond the registry terminates the stream,
// and reads are abandoned once fewer bits remain than the smallest tag
// needs. On any structural anomaly the text reconstructed so far is
// returned; Unpack never fails.
func (d *Dictionary) Unpack(packed string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var raw bytes.Buffer
	w := bitio.NewWriter(&raw)
	nbits := 0
	for i := 0; i < len(packed); i++ {
		v := strings.IndexByte(packAlphabet, packed[i])
		if v < 0 {
			continue
		}
		_ = w.WriteBits(uint64(v), 6)
		nbits += 6
	}
	_ = w.Close()

	r := bitio.NewReader(bytes.NewReader(append(raw.Bytes(), 0)))
	remaining := nbits
	read := func(n uint8) (uint64, bool) {
		if remaining < int(n) {
			return 0, false
		}
		v, err := r.ReadBits(n)
		if err != nil {
			remaining = 0
			return 0, false
		}
		remaining -= int(n)
		return v, true
	}

	var sb strings.Builder
	for remaining >= 3 {
		b, ok := read(1)
		if !ok {
			break
		}
		if b == 0 {
			// Dictionary word.
			idx, ok := read(11)
			if !ok {
				break
			}
			word, found := d.wordAt(int(idx))
			if idx == packEndIndex || !found {
				break // END sentinel or out-of-range index
			}
			sb.WriteString(word)
			continue
		}
		b, ok = read(1)
		if !ok {
			break
		}
		if b == 0 {
			// Stem word.
			root, ok := read(11)
			if !ok {
				break
			}
			rule, ok := read(4)
			if !ok {
				break
			}
			if word, found := d.expandStem(int(root), int(rule)); found {
				sb.WriteString(word)
			}
			continue
		}
		b, ok = read(1)
		if !ok {
			break
		}
		if b == 0 {
			sb.WriteByte(' ')
			continue
		}
		c, ok := read(7)
		if !ok {
			break
		}
		sb.WriteByte(byte(c))
	}
	return sb.String()
}
