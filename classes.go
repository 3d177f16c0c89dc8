package ipa

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// SymbolClass is one of the 4 symbol categories of IPA composition:
// base letters, combining diacritics, suprasegmental marks and tie
// bars joining two letters into one phone.
type SymbolClass int8

// Symbol categories.
const (
	Unknown SymbolClass = iota
	Letter
	Diacritic
	Suprasegmental
	Tie
)

func (c SymbolClass) String() string {
	switch c {
	case Letter:
		return "letter"
	case Diacritic:
		return "diacritic"
	case Suprasegmental:
		return "suprasegmental"
	case Tie:
		return "tie"
	}
	return "unknown"
}

// ClassForRune returns the symbol category of a single code-point.
// Tie bars are combining characters, therefore the tie check has to
// come before the combining check.
func ClassForRune(r rune) SymbolClass {
	c := string(r)
	switch {
	case IsTie(c):
		return Tie
	case isCombining(r):
		return Diacritic
	case IsStress(c) || IsAccent(c) || IsLong(c) || c == HalfLongMark ||
		IsBreak(c) || IsIntonation(c) || IsTone(c) || c == ToneGlottalized:
		return Suprasegmental
	case isKnownLetter(c):
		return Letter
	}
	return Unknown
}

// isCombining is true for code-points with a non-zero canonical
// combining class.
func isCombining(r rune) bool {
	return norm.NFD.PropertiesString(string(r)).CCC() != 0
}

// isKnownLetter is true if c spells a letter of the vowel, consonant
// or schwa inventory.
func isKnownLetter(c string) bool {
	if _, ok := vowels[c]; ok {
		return true
	}
	if _, ok := consonants[c]; ok {
		return true
	}
	if _, ok := schwas[c]; ok {
		return true
	}
	return false
}

// NFC normalizes a symbol string to its composed form. Phone and
// phoneme texts are always handed out in this form.
func NFC(s string) string {
	return norm.NFC.String(s)
}

// NFD normalizes a symbol string to its decomposed form. All scanning
// in this module operates on decomposed text, so that diacritics are
// separate code-points.
func NFD(s string) string {
	return norm.NFD.String(s)
}

// Graphemes splits a symbol string into graphemes: every combining
// code-point is grouped with the base character preceding it. Each
// grapheme is returned NFC-normalized.
func Graphemes(s string) []string {
	var graphemes []string
	var current strings.Builder
	for _, r := range NFD(s) {
		if isCombining(r) || current.Len() == 0 {
			current.WriteRune(r)
			continue
		}
		graphemes = append(graphemes, NFC(current.String()))
		current.Reset()
		current.WriteRune(r)
	}
	if current.Len() > 0 {
		graphemes = append(graphemes, NFC(current.String()))
	}
	return graphemes
}
