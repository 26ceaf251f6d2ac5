package symblex

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// ============================================================
// Corpus Builder
// ============================================================

// BuildOpts configures corpus scanning for custom dictionary creation.
type BuildOpts struct {
	MinWordLength int // shortest word worth a token (default 4)
	MinFrequency  int // occurrences required to qualify (default 2)
	Capacity      int // token slots to fill (default 732, the custom zone)
}

// DefaultBuildOpts returns the builder defaults.
func DefaultBuildOpts() BuildOpts {
	return BuildOpts{
		MinWordLength: minCustomWordLen,
		MinFrequency:  2,
		Capacity:      CustomCapacity,
	}
}

// BuildStats reports what a corpus scan found.
type BuildStats struct {
	WordsScanned   int // letter runs seen (length >= MinWordLength)
	AlreadyCovered int // runs the built-in dictionary or stemmer resolves
	Unique         int // distinct candidate words
	Qualified      int // candidates at or above MinFrequency
	Accepted       int // words that received a token
}

// Builder accumulates word frequencies across corpus inputs and turns
// the most frequent uncovered words into a custom dictionary artifact.
// It is not safe for concurrent use; the builder is an offline batch
// tool, not part of the codec hot path.
type Builder struct {
	dict  *Dictionary
	opts  BuildOpts
	count map[string]int
	order map[string]int // first-seen rank, for deterministic ties
	stats BuildStats
}

// NewBuilder creates a corpus builder that skips words the given
// dictionary already resolves.
func NewBuilder(d *Dictionary, opts BuildOpts) *Builder {
	if opts.MinWordLength <= 0 {
		opts.MinWordLength = minCustomWordLen
	}
	if opts.MinFrequency <= 0 {
		opts.MinFrequency = 1
	}
	if opts.Capacity <= 0 || opts.Capacity > CustomCapacity {
		opts.Capacity = CustomCapacity
	}
	return &Builder{
		dict:  d,
		opts:  opts,
		count: make(map[string]int),
		order: make(map[string]int),
	}
}

// Scan reads one corpus stream and counts candidate words.
func (b *Builder) Scan(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		b.scanLine(sc.Text())
	}
	return sc.Err()
}

// ScanFile reads a corpus file, decompressing ".gz" paths.
func (b *Builder) ScanFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return err
		}
		defer zr.Close()
		r = zr
	}
	return b.Scan(r)
}

func (b *Builder) scanLine(line string) {
	for i := 0; i < len(line); {
		if !isLetter(line[i]) {
			i++
			continue
		}
		j := i + 1
		for j < len(line) && isLetter(line[j]) {
			j++
		}
		run := line[i:j]
		i = j
		if len(run) < b.opts.MinWordLength {
			continue
		}
		b.stats.WordsScanned++
		word := lowerRun(run)
		if _, ok := b.dict.Lookup(word); ok {
			b.stats.AlreadyCovered++
			continue
		}
		if _, seen := b.count[word]; !seen {
			b.order[word] = len(b.order)
		}
		b.count[word]++
	}
}

// Build ranks the counted words by frequency (first appearance breaks
// ties), caps the list at the configured capacity, assigns custom-zone
// tokens from index 1500 upward, and returns the artifact.
func (b *Builder) Build() (*CustomDict, BuildStats) {
	st := b.stats
	st.Unique = len(b.count)

	words := make([]string, 0, len(b.count))
	for w, n := range b.count {
		if n >= b.opts.MinFrequency {
			words = append(words, w)
		}
	}
	st.Qualified = len(words)
	sort.Slice(words, func(i, j int) bool {
		if b.count[words[i]] != b.count[words[j]] {
			return b.count[words[i]] > b.count[words[j]]
		}
		return b.order[words[i]] < b.order[words[j]]
	})
	if len(words) > b.opts.Capacity {
		words = words[:b.opts.Capacity]
	}

	cd := &CustomDict{
		Encode: make(map[string]string, len(words)),
		Decode: make(map[string]string, len(words)),
		Rules: BuildRules{
			MinWordLength: b.opts.MinWordLength,
			MinFrequency:  b.opts.MinFrequency,
			Capacity:      b.opts.Capacity,
		},
	}
	for i, w := range words {
		tok, ok := tokenForIndex(customIndexStart + i)
		if !ok {
			break
		}
		cd.Encode[w] = tok
		cd.Decode[tok] = w
		if cd.TokenRange.Start == "" {
			cd.TokenRange.Start = tok
		}
		cd.TokenRange.End = tok
	}
	cd.Total = len(cd.Encode)
	st.Accepted = cd.Total
	return cd, st
}
