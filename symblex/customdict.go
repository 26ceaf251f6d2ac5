package symblex

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// ============================================================
// Custom Dictionary Artifact
// ============================================================

// CustomDict is the on-disk artifact produced by the corpus builder and
// merged into a Dictionary at startup. The encode and decode maps are
// the payload; everything else is metadata the core tolerates but does
// not depend on.
type CustomDict struct {
	Encode     map[string]string `json:"encode"`
	Decode     map[string]string `json:"decode"`
	Total      int               `json:"total"`
	TokenRange TokenRange        `json:"token_range"`
	Rules      BuildRules        `json:"rules"`
}

// TokenRange records the first and last token the builder assigned.
type TokenRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// BuildRules records the builder settings the artifact was made with.
type BuildRules struct {
	MinWordLength int `json:"min_word_length"`
	MinFrequency  int `json:"min_frequency"`
	Capacity      int `json:"capacity"`
}

// ErrArtifact wraps failures to read or parse a custom dictionary file.
var ErrArtifact = errors.New("custom dictionary artifact")

// ReadCustomDict parses an artifact from a reader. Missing maps are
// replaced with empty ones so the result is always safe to merge.
func ReadCustomDict(r io.Reader) (*CustomDict, error) {
	var cd CustomDict
	if err := json.NewDecoder(r).Decode(&cd); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArtifact, err)
	}
	if cd.Encode == nil {
		cd.Encode = map[string]string{}
	}
	if cd.Decode == nil {
		cd.Decode = map[string]string{}
	}
	return &cd, nil
}

// LoadCustomDict reads an artifact file. Files ending in ".gz" are
// transparently decompressed. A missing or malformed file yields a nil
// artifact and an error; callers that want to proceed with built-ins
// only can merge the nil result, which is a no-op.
func LoadCustomDict(path string) (*CustomDict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArtifact, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrArtifact, err)
		}
		defer zr.Close()
		r = zr
	}
	return ReadCustomDict(r)
}

// WriteTo serializes the artifact as indented JSON.
func (cd *CustomDict) WriteTo(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cd); err != nil {
		return fmt.Errorf("%w: %v", ErrArtifact, err)
	}
	return nil
}

// Save writes the artifact to a file, gzip-compressed when the path
// ends in ".gz".
func (cd *CustomDict) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrArtifact, err)
	}
	defer f.Close()

	if strings.HasSuffix(path, ".gz") {
		zw := gzip.NewWriter(f)
		if err := cd.WriteTo(zw); err != nil {
			zw.Close()
			return err
		}
		return zw.Close()
	}
	return cd.WriteTo(f)
}
