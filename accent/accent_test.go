package accent

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/testconfig"

	"github.com/glottis/ipa"
	"github.com/glottis/ipa/phoneme"
)

func TestGuessIdentity(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	to, err := phoneme.FromLanguage("en-us")
	if err != nil {
		t.Fatalf("loading table: %v", err)
	}
	guess, err := GuessPhoneme("t͡ʃ", to)
	if err != nil {
		t.Fatalf("GuessPhoneme returned error: %v", err)
	}
	if len(guess) != 1 || guess[0] != "t͡ʃ" {
		t.Errorf("guess = %v, want identity", guess)
	}
}

func TestGuessRLike(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	de, err := phoneme.FromLanguage("de-de")
	if err != nil {
		t.Fatalf("loading table: %v", err)
	}
	en, err := phoneme.FromLanguage("en-us")
	if err != nil {
		t.Fatalf("loading table: %v", err)
	}
	m, err := GuessTableMap(de, en)
	if err != nil {
		t.Fatalf("GuessTableMap returned error: %v", err)
	}
	guess, ok := m["r"]
	if !ok || len(guess) != 1 {
		t.Fatalf("no mapping for r: %v", m["r"])
	}
	if !isRLike(guess[0]) {
		t.Errorf("r mapped to %q, want an r-like sound", guess[0])
	}
}

func TestGuessSchwaPreference(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	to, err := phoneme.FromLanguage("en-us")
	if err != nil {
		t.Fatalf("loading table: %v", err)
	}
	guess, err := GuessPhoneme("ɐ", to)
	if err != nil {
		t.Fatalf("GuessPhoneme returned error: %v", err)
	}
	if len(guess) != 1 {
		t.Fatalf("guess = %v", guess)
	}
	if v, _ := ipa.Classify(guess[0]); v.Vowel == nil && v.Schwa == nil {
		t.Errorf("ɐ mapped to %q, want a vowel", guess[0])
	}
}

func TestGuessDiphthongSplits(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	to, err := phoneme.FromText(strings.NewReader(`
a alto
e ese
i iberico
o ojo
u uno
`), "vowels-only")
	if err != nil {
		t.Fatalf("loading table: %v", err)
	}
	guess, err := GuessPhoneme("aʊ", to)
	if err != nil {
		t.Fatalf("GuessPhoneme returned error: %v", err)
	}
	if len(guess) != 2 {
		t.Fatalf("guess = %v, want two vowels", guess)
	}
	if guess[0] != "a" {
		t.Errorf("first half mapped to %q, want a", guess[0])
	}
	if guess[1] != "o" && guess[1] != "u" {
		t.Errorf("second half mapped to %q, want o or u", guess[1])
	}
}

func TestGuessMapCoversInventory(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	m, err := GuessMap("es-es", "en-us")
	if err != nil {
		t.Fatalf("GuessMap returned error: %v", err)
	}
	for _, from := range []string{"a", "s", "t", "ɾ"} {
		if _, ok := m[from]; !ok {
			t.Errorf("no mapping for %q", from)
		}
	}
}

func TestClosest(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	closest := Closest("e")
	if len(closest) == 0 {
		t.Fatal("no ranking for e")
	}
	for _, s := range closest {
		if s == "e" {
			t.Errorf("symbol lists itself")
		}
	}
	// ɛ differs from e only in height; a plosive must rank far behind.
	posEps, posP := -1, -1
	for i, s := range closest {
		switch s {
		case "ɛ":
			posEps = i
		case "p":
			posP = i
		}
	}
	if posEps < 0 || posP < 0 {
		t.Fatalf("ranking incomplete: ɛ at %d, p at %d", posEps, posP)
	}
	if posEps > posP {
		t.Errorf("ɛ ranks at %d, behind p at %d", posEps, posP)
	}
	if Closest("☃") != nil {
		t.Errorf("ranking for unknown symbol")
	}
}
