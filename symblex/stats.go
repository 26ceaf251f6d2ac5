package symblex

import (
	"fmt"
	"unicode/utf8"
)

// ============================================================
// Compression Statistics
// ============================================================

// Stats summarizes how well one text compresses under both encodings.
// Lengths are in characters (runes). Ratios are saved/original,
// formatted to one decimal place as "NN.N%".
type Stats struct {
	Original     int    // input length
	Encoded      int    // token codec output length
	Packed       int    // binary packed output length
	SavedEncoded int    // Original - Encoded
	SavedPacked  int    // Original - Packed
	RatioEncoded string // token codec savings ratio
	RatioPacked  string // binary packer savings ratio

	WordsScanned int    // letter runs of length >= 4
	DictHits     int    // runs resolved by direct dictionary match
	StemHits     int    // runs resolved by stem derivation
	TotalHits    int    // DictHits + StemHits
	HitRate      string // TotalHits/WordsScanned, "0%" when nothing scanned

	// Err is set on the degraded report produced when measurement
	// fails internally; only Original is meaningful then.
	Err error
}

// minScanWordLen is the shortest letter run counted as a scanned word.
const minScanWordLen = 4

// MeasureStats computes compression statistics for one text. It never
// fails: an internal fault degrades to a report carrying the original
// length and the error.
func (d *Dictionary) MeasureStats(text string) (st Stats) {
	st.Original = utf8.RuneCountInString(text)
	defer func() {
		if r := recover(); r != nil {
			st = Stats{
				Original: utf8.RuneCountInString(text),
				Err:      fmt.Errorf("stats: %v", r),
			}
		}
	}()

	st.Encoded = utf8.RuneCountInString(d.Encode(text))
	st.Packed = utf8.RuneCountInString(d.Pack(text))
	st.SavedEncoded = st.Original - st.Encoded
	st.SavedPacked = st.Original - st.Packed
	st.RatioEncoded = ratio(st.SavedEncoded, st.Original)
	st.RatioPacked = ratio(st.SavedPacked, st.Original)

	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := 0; i < len(text); {
		if !isLetter(text[i]) {
			i++
			continue
		}
		j := i + 1
		for j < len(text) && isLetter(text[j]) {
			j++
		}
		run := text[i:j]
		i = j
		if len(run) < minScanWordLen {
			continue
		}
		st.WordsScanned++
		lower := lowerRun(run)
		if _, ok := d.encode[lower]; ok {
			st.DictHits++
		} else if _, _, ok := d.stem(lower); ok {
			st.StemHits++
		}
	}
	st.TotalHits = st.DictHits + st.StemHits
	if st.WordsScanned == 0 {
		st.HitRate = "0%"
	} else {
		st.HitRate = ratio(st.TotalHits, st.WordsScanned)
	}
	return st
}

// ratio formats part/whole as a percentage with one decimal place.
func ratio(part, whole int) string {
	if whole == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(part)/float64(whole)*100)
}
