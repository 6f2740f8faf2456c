// Package namegen produces pronounceable, unique snake names. It learns
// syllable transitions from a small corpus of real names (an order-1 Markov
// chain over syllables) and filters candidates through a pronounceability
// check, with a plain syllable-table fallback when the chain fails.
package namegen

import (
	"strings"

	"golang.org/x/exp/rand"
)

// nameCorpus seeds the Markov chain. Medium-length names give the best
// syllable patterns.
var nameCorpus = []string{
	"Alexander", "Benjamin", "Christopher", "Daniel", "Edward", "Franklin",
	"Gabriel", "Harrison", "Isaac", "Jackson", "Katherine", "Lucas",
	"Madison", "Nathaniel", "Olivia", "Patrick", "Quinn", "Rachel",
	"Samuel", "Thomas", "Victoria", "William", "Xavier", "Yasmine",
	"Zachary", "Amelia", "Blake", "Catherine", "David", "Elizabeth",
	"Felix", "Grace", "Henry", "Isabella", "James", "Liam", "Mia",
	"Noah", "Penelope", "Ryan", "Sophia", "Tyler", "Uma", "Vincent",
	"Willow", "Xander", "Yara", "Zoe", "Aiden", "Bella", "Caleb",
	"Diana", "Ethan", "Fiona", "George", "Hannah", "Ian", "Julia",
	"Kevin", "Luna", "Mason", "Nora", "Owen", "Piper", "Quincy",
	"Ruby", "Sebastian", "Tessa", "Ulysses", "Violet", "Wyatt",
	"Xara", "Yuki", "Zara", "Aria", "Brody", "Chloe", "Derek",
	"Emma", "Finn", "Gwen", "Hugo", "Iris", "Jake", "Kira", "Leo",
	"Maya", "Nate", "Oscar", "Paige", "Rex", "Sage", "Tara", "Uri",
	"Vera", "Wade", "Xena", "Zane", "Ava", "Cora", "Dean", "Eva",
	"Gia", "Hank", "Ivy", "Jax", "Kai", "Lane", "Max", "Nyx", "Ora",
	"Pax", "Rue", "Sky", "Tia", "Wren", "Xia", "Yin", "Aaron",
	"Brianna", "Cameron", "Dakota", "Elena", "Forrest", "Giselle",
	"Harper", "Ivan", "Jasmine", "Kendall", "Lillian", "Marcus",
	"Natalie", "Orion", "Phoebe", "Quentin", "Raven", "Sierra",
	"Tristan", "Ursula", "Vivian", "Winston", "Ximena", "Yvette",
	"Zander", "Adrian", "Brooke", "Carter", "Delilah", "Emmett",
	"Freya", "Gideon", "Hazel", "Jasper", "Kiera", "Landon",
	"Morgan", "Nolan",
}

// badClusters are consonant pairs that never read well.
var badClusters = []string{
	"xq", "qx", "zx", "xz", "qk", "kq", "jq", "qj",
	"xw", "wx", "zw", "wz", "qg", "gq", "jz", "zj",
}

// Fallback syllable tables, used when the chain cannot produce a valid name.
var (
	fallbackPrefixes = []string{
		"al", "ka", "ze", "mi", "to", "ri", "sa", "na", "el", "jo",
		"be", "ca", "da", "fi", "ga", "ha", "li", "ma", "ne", "pa",
	}
	fallbackMiddles = []string{
		"ex", "an", "in", "on", "er", "ar", "or", "en", "al", "el",
		"am", "em", "im", "om", "um", "ad", "ed", "id", "od", "ud",
	}
	fallbackSuffixes = []string{
		"ron", "lex", "ton", "ara", "vin", "den", "mar", "lan", "ris", "bel",
		"ian", "ael", "iel", "ora", "ina", "ena", "ira", "ela",
	}
)

const (
	minNameLength = 4
	maxNameLength = 12
)

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// extractSyllables splits a name into consonant+vowel chunks. A short
// trailing consonant run attaches to the last syllable.
func extractSyllables(name string) []string {
	name = strings.ToLower(name)
	var syllables []string
	i := 0
	for i < len(name) {
		start := i
		for i < len(name) && !isVowel(name[i]) {
			i++
		}
		hasVowel := false
		for i < len(name) && isVowel(name[i]) {
			i++
			hasVowel = true
		}
		chunk := name[start:i]
		if !hasVowel && len(syllables) > 0 && len(chunk) <= 2 {
			syllables[len(syllables)-1] += chunk
			continue
		}
		syllables = append(syllables, chunk)
	}
	return syllables
}

// IsPronounceable rejects names with awkward clusters, long consonant or
// vowel runs, or a missing vowel/consonant.
func IsPronounceable(name string) bool {
	name = strings.ToLower(name)
	for _, cluster := range badClusters {
		if strings.Contains(name, cluster) {
			return false
		}
	}
	vowels, consonants := 0, 0
	run, vowelRun := 0, false
	for i := 0; i < len(name); i++ {
		v := isVowel(name[i])
		if v {
			vowels++
		} else {
			consonants++
		}
		if i > 0 && v == vowelRun {
			run++
		} else {
			run = 1
			vowelRun = v
		}
		if run >= 4 {
			return false
		}
	}
	return vowels > 0 && consonants > 0
}

// Generator produces unique names. Not safe for concurrent use; the
// simulation owns one and calls it from the single tick goroutine.
type Generator struct {
	chain  map[string][]string
	starts []string
	used   map[string]bool
	rng    *rand.Rand
}

// New builds a generator from the default corpus.
func New(rng *rand.Rand) *Generator {
	g := &Generator{
		chain: make(map[string][]string),
		used:  make(map[string]bool),
		rng:   rng,
	}
	for _, name := range nameCorpus {
		syllables := extractSyllables(name)
		if len(syllables) < 2 {
			continue
		}
		g.starts = append(g.starts, syllables[0])
		for i := 0; i < len(syllables)-1; i++ {
			g.chain[syllables[i]] = append(g.chain[syllables[i]], syllables[i+1])
		}
	}
	return g
}

// Generate returns one new unique name. It falls back to syllable tables
// when the chain keeps producing rejects, and to "Snake" as a last resort.
func (g *Generator) Generate() string {
	for attempt := 0; attempt < 100; attempt++ {
		name := g.chainName()
		if len(name) < minNameLength || len(name) > maxNameLength {
			continue
		}
		if !IsPronounceable(name) || g.used[name] {
			continue
		}
		g.used[name] = true
		return capitalize(name)
	}
	return g.fallbackName()
}

// chainName walks the Markov chain from a random starting syllable,
// stopping probabilistically once the name is long enough.
func (g *Generator) chainName() string {
	if len(g.starts) == 0 {
		return ""
	}
	syllables := []string{g.starts[g.rng.Intn(len(g.starts))]}
	maxSyllables := maxNameLength/2 + 3

	for len(syllables) < maxSyllables {
		next, ok := g.chain[syllables[len(syllables)-1]]
		if !ok || len(next) == 0 {
			break
		}
		syllables = append(syllables, next[g.rng.Intn(len(next))])

		name := strings.Join(syllables, "")
		if len(syllables) < 2 || len(name) < minNameLength {
			continue
		}
		if len(name) > maxNameLength {
			break
		}
		// Stop with rising probability as the name approaches the cap.
		stopChance := 0.3
		switch {
		case len(name) >= maxNameLength-2:
			stopChance = 0.7
		case len(name) >= minNameLength+2:
			stopChance = 0.4
		}
		if g.rng.Float64() < stopChance {
			break
		}
	}

	if len(syllables) < 2 {
		return ""
	}
	return strings.Join(syllables, "")
}

func (g *Generator) fallbackName() string {
	for attempt := 0; attempt < 50; attempt++ {
		parts := []string{fallbackPrefixes[g.rng.Intn(len(fallbackPrefixes))]}
		if g.rng.Float64() < 0.6 {
			parts = append(parts, fallbackMiddles[g.rng.Intn(len(fallbackMiddles))])
		}
		parts = append(parts, fallbackSuffixes[g.rng.Intn(len(fallbackSuffixes))])
		name := strings.Join(parts, "")
		if len(name) >= minNameLength && len(name) <= maxNameLength &&
			IsPronounceable(name) && !g.used[name] {
			g.used[name] = true
			return capitalize(name)
		}
	}
	return "Snake"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
