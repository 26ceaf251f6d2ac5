package symblex

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

// ============================================================
// Corpus Builder Tests
// ============================================================

func TestBuilder_FrequencyRanking(t *testing.T) {
	d := New()
	b := NewBuilder(d, DefaultBuildOpts())
	corpus := "blockchain kubernetes blockchain flibber kubernetes blockchain"
	if err := b.Scan(strings.NewReader(corpus)); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	cd, st := b.Build()

	if st.WordsScanned != 6 {
		t.Errorf("WordsScanned: got %d, want 6", st.WordsScanned)
	}
	if st.Unique != 3 {
		t.Errorf("Unique: got %d, want 3", st.Unique)
	}
	if st.Qualified != 2 || st.Accepted != 2 {
		t.Errorf("qualified/accepted: got (%d, %d), want (2, 2)", st.Qualified, st.Accepted)
	}

	// Most frequent word gets the first custom-zone token.
	if cd.Encode["blockchain"] != "~oc" {
		t.Errorf("blockchain token: got %q, want ~oc", cd.Encode["blockchain"])
	}
	if cd.Encode["kubernetes"] != "~od" {
		t.Errorf("kubernetes token: got %q, want ~od", cd.Encode["kubernetes"])
	}
	if _, ok := cd.Encode["flibber"]; ok {
		t.Error("below-threshold word must not receive a token")
	}
	if cd.TokenRange.Start != "~oc" || cd.TokenRange.End != "~od" {
		t.Errorf("token range: %+v", cd.TokenRange)
	}
	if cd.Total != 2 {
		t.Errorf("Total: got %d, want 2", cd.Total)
	}
}

func TestBuilder_SkipsCoveredWords(t *testing.T) {
	// Words the dictionary already resolves, directly or via stems,
	// never become candidates.
	d := New()
	b := NewBuilder(d, DefaultBuildOpts())
	if err := b.Scan(strings.NewReader("freedom developing freedom developing")); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	cd, st := b.Build()
	if st.AlreadyCovered != 4 {
		t.Errorf("AlreadyCovered: got %d, want 4", st.AlreadyCovered)
	}
	if len(cd.Encode) != 0 {
		t.Errorf("covered words must not get tokens: %+v", cd.Encode)
	}
}

func TestBuilder_ShortWordsIgnored(t *testing.T) {
	d := New()
	b := NewBuilder(d, DefaultBuildOpts())
	if err := b.Scan(strings.NewReader("zzq zzq zzq zzqq zzqq")); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	cd, st := b.Build()
	if st.WordsScanned != 2 {
		t.Errorf("WordsScanned: got %d, want 2 (three-letter runs skipped)", st.WordsScanned)
	}
	if cd.Encode["zzqq"] != "~oc" {
		t.Errorf("zzqq token: got %q", cd.Encode["zzqq"])
	}
}

func TestBuilder_CapacityCap(t *testing.T) {
	d := New()
	opts := DefaultBuildOpts()
	opts.Capacity = 2
	opts.MinFrequency = 1
	b := NewBuilder(d, opts)
	if err := b.Scan(strings.NewReader("aaqz aaqz aaqz bbqz bbqz ccqz")); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	cd, st := b.Build()
	if st.Accepted != 2 {
		t.Fatalf("Accepted: got %d, want 2", st.Accepted)
	}
	if cd.Encode["aaqz"] != "~oc" || cd.Encode["bbqz"] != "~od" {
		t.Errorf("capacity ranking: %+v", cd.Encode)
	}
}

func TestBuilder_TieBreakFirstSeen(t *testing.T) {
	d := New()
	opts := DefaultBuildOpts()
	opts.MinFrequency = 1
	b := NewBuilder(d, opts)
	if err := b.Scan(strings.NewReader("qzzb qzza qzzb qzza")); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	cd, _ := b.Build()
	// Equal counts: first appearance wins the earlier token.
	if cd.Encode["qzzb"] != "~oc" || cd.Encode["qzza"] != "~od" {
		t.Errorf("tie break: %+v", cd.Encode)
	}
}

func TestBuilder_ScanFileGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte("blockchain blockchain kubernetes kubernetes\n")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	d := New()
	b := NewBuilder(d, DefaultBuildOpts())
	if err := b.ScanFile(path); err != nil {
		t.Fatalf("ScanFile: %v", err)
	}
	cd, _ := b.Build()
	if len(cd.Encode) != 2 {
		t.Errorf("gzip corpus: got %d entries, want 2", len(cd.Encode))
	}
}

func TestBuilder_EndToEnd(t *testing.T) {
	// Build an artifact, merge it, and compress text containing the
	// new vocabulary.
	d := New()
	opts := DefaultBuildOpts()
	b := NewBuilder(d, opts)
	if err := b.Scan(strings.NewReader("blockchain validator blockchain validator blockchain")); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	cd, _ := b.Build()
	if n := d.Merge(cd); n != 2 {
		t.Fatalf("merge: got %d, want 2", n)
	}

	in := "blockchain validator freedom"
	enc := d.Encode(in)
	if enc != "~oc ~od ~7N" {
		t.Fatalf("encode with custom vocabulary: got %q", enc)
	}
	if got := d.Decode(enc); got != in {
		t.Errorf("decode: got %q, want %q", got, in)
	}
}
