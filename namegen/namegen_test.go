package namegen

import (
	"strings"
	"testing"

	"golang.org/x/exp/rand"
)

func TestGenerateUniquePronounceableNames(t *testing.T) {
	gen := New(rand.New(rand.NewSource(42)))

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		name := gen.Generate()
		if name == "" {
			t.Fatalf("empty name on attempt %d", i)
		}
		if seen[name] {
			t.Fatalf("duplicate name %q", name)
		}
		seen[name] = true

		if len(name) < minNameLength || len(name) > maxNameLength {
			t.Errorf("name %q length %d outside [%d,%d]", name, len(name), minNameLength, maxNameLength)
		}
		if !IsPronounceable(name) {
			t.Errorf("name %q failed its own pronounceability check", name)
		}
		if name[0] < 'A' || name[0] > 'Z' {
			t.Errorf("name %q not capitalized", name)
		}
	}
}

func TestIsPronounceable(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Alex", true},
		{"Kalron", true},
		{"Mia", true},
		{"xqar", false},   // bad cluster
		{"brrrt", false},  // 4+ consonants in a row
		{"aeiou", false},  // no consonant (and a long vowel run)
		{"bcdfg", false},  // no vowel
		{"queeen", false}, // ...but "ueee" is fine? no: u-e-e-e is 4 vowels
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPronounceable(tt.name); got != tt.want {
				t.Errorf("IsPronounceable(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestExtractSyllablesCoversName(t *testing.T) {
	// For names whose trailing consonant run is short, the syllables
	// joined back together must reproduce the lowercased name.
	for _, name := range []string{"Daniel", "Katherine", "Sophia", "Marcus", "Olivia"} {
		syllables := extractSyllables(name)
		if len(syllables) == 0 {
			t.Fatalf("no syllables for %q", name)
		}
		if got := strings.Join(syllables, ""); got != strings.ToLower(name) {
			t.Errorf("syllables of %q join to %q", name, got)
		}
	}
}

func TestGeneratorSeparateInstancesMayRepeat(t *testing.T) {
	// Uniqueness is per generator; two generators with the same seed
	// produce the same stream. Guards against an accidental global cache.
	a := New(rand.New(rand.NewSource(9)))
	b := New(rand.New(rand.NewSource(9)))
	if a.Generate() != b.Generate() {
		t.Fatal("same seed produced different first names")
	}
}
