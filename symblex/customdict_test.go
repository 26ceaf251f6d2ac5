package symblex

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ============================================================
// Artifact Tests
// ============================================================

func TestReadCustomDict(t *testing.T) {
	src := `{
		"encode": {"blockchain": "~oc", "kubernetes": "~od"},
		"decode": {"~oc": "blockchain", "~od": "kubernetes"},
		"total": 2,
		"token_range": {"start": "~oc", "end": "~od"},
		"rules": {"min_word_length": 4, "min_frequency": 2, "capacity": 732}
	}`
	cd, err := ReadCustomDict(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadCustomDict: %v", err)
	}
	if cd.Total != 2 || len(cd.Encode) != 2 || len(cd.Decode) != 2 {
		t.Fatalf("artifact shape: %+v", cd)
	}
	if cd.TokenRange.Start != "~oc" || cd.Rules.Capacity != 732 {
		t.Errorf("metadata: %+v", cd)
	}

	d := New()
	if n := d.Merge(cd); n != 2 {
		t.Fatalf("merge accepted: got %d, want 2", n)
	}
	if got := d.Encode("blockchain kubernetes"); got != "~oc ~od" {
		t.Errorf("post-merge encode: got %q", got)
	}
	if got := d.Decode("~oc ~od"); got != "blockchain kubernetes" {
		t.Errorf("post-merge decode: got %q", got)
	}
}

func TestReadCustomDict_MissingMaps(t *testing.T) {
	cd, err := ReadCustomDict(strings.NewReader(`{"total": 0}`))
	if err != nil {
		t.Fatalf("ReadCustomDict: %v", err)
	}
	if cd.Encode == nil || cd.Decode == nil {
		t.Fatal("missing maps must be replaced with empty ones")
	}
	d := New()
	if n := d.Merge(cd); n != 0 {
		t.Errorf("empty artifact merge: got %d", n)
	}
}

func TestReadCustomDict_Malformed(t *testing.T) {
	if _, err := ReadCustomDict(strings.NewReader("not json")); !errors.Is(err, ErrArtifact) {
		t.Fatalf("want ErrArtifact, got %v", err)
	}
}

func TestLoadCustomDict_Missing(t *testing.T) {
	cd, err := LoadCustomDict(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, ErrArtifact) {
		t.Fatalf("want ErrArtifact, got %v", err)
	}
	// The nil artifact merges as a no-op: built-ins only.
	d := New()
	if n := d.Merge(cd); n != 0 || d.Len() != 1468 {
		t.Errorf("missing artifact must leave the dictionary untouched")
	}
}

func TestCustomDict_SaveLoad(t *testing.T) {
	cd := &CustomDict{
		Encode:     map[string]string{"blockchain": "~oc"},
		Decode:     map[string]string{"~oc": "blockchain"},
		Total:      1,
		TokenRange: TokenRange{Start: "~oc", End: "~oc"},
		Rules:      BuildRules{MinWordLength: 4, MinFrequency: 2, Capacity: 732},
	}
	for _, name := range []string{"dict.json", "dict.json.gz"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := cd.Save(path); err != nil {
				t.Fatalf("Save: %v", err)
			}
			if _, err := os.Stat(path); err != nil {
				t.Fatalf("stat: %v", err)
			}
			back, err := LoadCustomDict(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if back.Total != 1 || back.Encode["blockchain"] != "~oc" {
				t.Errorf("round trip: %+v", back)
			}
		})
	}
}
