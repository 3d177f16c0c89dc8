package ipa

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestClassifyVowel(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	info, err := Classify("ˈãː")
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if !info.IsLetter() || info.Vowel == nil {
		t.Fatalf("info = %+v", info)
	}
	if info.Stress != Primary || info.Length != LengthLong {
		t.Errorf("stress/length = %v/%v", info.Stress, info.Length)
	}
	if !info.Vowel.Nasalized || info.Vowel.Height != Open || info.Vowel.Placement != Front {
		t.Errorf("vowel = %+v", info.Vowel)
	}
	if got := info.Describe(); got != "long nasalized open front unrounded vowel" {
		t.Errorf("Describe() = %q", got)
	}
}

func TestClassifyConsonant(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	info, err := Classify("d͡ʒ")
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	c := info.Consonant
	if c == nil || c.Type != Affricate || c.Place != PostAlveolar || !c.Voiced {
		t.Errorf("consonant = %+v", c)
	}
	if got := info.Describe(); got != "voiced post-alveolar affricate" {
		t.Errorf("Describe() = %q", got)
	}
}

func TestClassifyAlias(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	// Latin small letter g spells the same sound as the IPA script g.
	info, err := Classify("g")
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if info.Consonant == nil || info.Consonant.AliasOf != "ɡ" {
		t.Errorf("consonant = %+v", info.Consonant)
	}
}

func TestClassifyNonLetters(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	cases := []struct {
		symbol string
		class  SymbolClass
	}{
		{"ˈ", Suprasegmental},
		{"|", Suprasegmental},
		{"̃", Diacritic},
		{"͡", Tie},
	}
	for _, c := range cases {
		info, err := Classify(c.symbol)
		if err != nil {
			t.Fatalf("Classify(%q): %v", c.symbol, err)
		}
		if info.Class != c.class {
			t.Errorf("Classify(%q).Class = %v, want %v", c.symbol, info.Class, c.class)
		}
	}
}

func TestClassifyUnknown(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	_, err := Classify("☃")
	var unknown UnknownSymbolError
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want UnknownSymbolError", err)
	}
	if unknown.Symbol != "☃" {
		t.Errorf("Symbol = %q", unknown.Symbol)
	}
}

func TestGraphemes(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	got := Graphemes("ãew̃")
	want := []string{"ã", "e", "w̃"}
	if len(got) != len(want) {
		t.Fatalf("Graphemes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != NFC(want[i]) {
			t.Errorf("grapheme %d = %q, want %q", i, got[i], want[i])
		}
	}
}
