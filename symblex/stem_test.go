package symblex

import "testing"

// ============================================================
// Stemmer Tests
// ============================================================

func TestStem_Derivations(t *testing.T) {
	d := New()
	tests := []struct {
		word  string
		token string
		root  string
	}{
		{"developing", "~FNG", "develop"},
		{"developers", "~FNR", "develop"},
		{"loving", "~OeG", "love"},   // e-drop: love -> lov + ing
		{"makers", "~OoR", "make"},   // e-drop: make -> mak + ers
		{"workers", "~XeR", "work"},  // "ers" preferred over "er"/"s"
		{"workings", "~Xgs", "working"},
		{"stronger", "~TPr", "strong"},
		{"useless", "~WiL", "use"},
		{"creation", "~FjI", "create"}, // e-drop via "ion"
		{"loved", "~OeD", "love"},
		{"walked", "~WvD", "walk"},
		{"boxes", "~DUe", "box"},
		{"cats", "~Ems", "cat"},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			tok, ok := d.Lookup(tt.word)
			if !ok || tok != tt.token {
				t.Fatalf("Lookup: got (%q, %v), want (%q, true)", tok, ok, tt.token)
			}
			root, rule, ok := d.stem(tt.word)
			if !ok {
				t.Fatal("stem did not resolve")
			}
			if w, _ := d.wordAt(root); w != tt.root {
				t.Errorf("root: got %q, want %q", w, tt.root)
			}
			// Reverse transform reproduces the surface word.
			if back, ok := d.expandStem(root, rule); !ok || back != tt.word {
				t.Errorf("expandStem: got (%q, %v), want (%q, true)", back, ok, tt.word)
			}
		})
	}
}

func TestStem_NoMatch(t *testing.T) {
	d := New()
	for _, w := range []string{"xyz", "happiness", "quickest", "zzzzz", "ing", "s", ""} {
		t.Run(w, func(t *testing.T) {
			if _, _, ok := d.stem(w); ok {
				t.Errorf("stem(%q) should not resolve", w)
			}
		})
	}
}

func TestStem_AllMatchingRulesTried(t *testing.T) {
	// "creation" matches "tion" textually first (root "crea"/"creae"
	// unknown), so the scan must continue to "ion" where the e-drop
	// root "create" resolves. Stopping at the first textual match
	// would lose the word.
	d := New()
	root, rule, ok := d.stem("creation")
	if !ok {
		t.Fatal("creation should stem")
	}
	if suffixRules[rule].suffix != "ion" {
		t.Errorf("rule: got %q, want ion", suffixRules[rule].suffix)
	}
	if w, _ := d.wordAt(root); w != "create" {
		t.Errorf("root: got %q, want create", w)
	}
}

func TestSuffixToken_Range(t *testing.T) {
	if _, ok := suffixToken(maxStemRoot, 0); !ok {
		t.Errorf("root %d should be addressable", maxStemRoot)
	}
	if _, ok := suffixToken(maxStemRoot+1, 0); ok {
		t.Error("root beyond the uppercase range must not produce a token")
	}
	if _, ok := suffixToken(-1, 0); ok {
		t.Error("negative root must not produce a token")
	}
	if _, ok := suffixToken(0, len(suffixRules)); ok {
		t.Error("out-of-range rule must not produce a token")
	}
}

func TestParseSuffixToken(t *testing.T) {
	tests := []struct {
		tok  string
		root int
		rule string
		ok   bool
	}{
		{"~FNG", 359, "ing", true},
		{"~A0s", 0, "s", true},
		{"~ZZs", 25*62 + 61, "s", true},
		{"~aNG", 0, "", false}, // lowercase zone char
		{"~FN?", 0, "", false}, // unknown rule code
		{"~FN", 0, "", false},  // too short
	}
	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			root, rule, ok := parseSuffixToken(tt.tok)
			if ok != tt.ok {
				t.Fatalf("ok: got %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if root != tt.root || suffixRules[rule].suffix != tt.rule {
				t.Errorf("got root %d rule %q, want %d %q", root, suffixRules[rule].suffix, tt.root, tt.rule)
			}
		})
	}
}

func TestSuffixRules_CodesUnique(t *testing.T) {
	seen := map[byte]string{}
	for _, r := range suffixRules {
		if prev, dup := seen[r.code]; dup {
			t.Fatalf("code %q used by %q and %q", r.code, prev, r.suffix)
		}
		seen[r.code] = r.suffix
	}
	if len(suffixRules) != 15 {
		t.Fatalf("rule table must stay at 15 entries, got %d", len(suffixRules))
	}
}
