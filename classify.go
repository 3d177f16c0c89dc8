package ipa

import "strings"

// SymbolInfo is the result of classifying one IPA symbol string: the
// symbol category and, for letters, the articulatory features. Exactly
// one of Vowel, Consonant and Schwa is non-nil for letter symbols.
type SymbolInfo struct {
	Text   string // NFC-normalized input
	Class  SymbolClass
	Stress Stress
	Length Length

	Vowel     *Vowel
	Consonant *Consonant
	Schwa     *Schwa
}

// IsLetter is true if the symbol is a (possibly tied or modified)
// letter of the inventory.
func (info SymbolInfo) IsLetter() bool {
	return info.Class == Letter
}

// Classify looks a symbol string up in the symbol table. The symbol
// may carry a leading stress mark and a trailing length mark; both are
// stripped and reported as features. Classify fails with
// UnknownSymbolError if the remaining spelling is not registered.
func Classify(symbol string) (SymbolInfo, error) {
	info := SymbolInfo{Text: NFC(symbol)}
	if symbol == "" {
		return info, UnknownSymbolError{Symbol: symbol}
	}

	// Single non-letter symbols first.
	if r := []rune(NFD(symbol)); len(r) == 1 {
		if c := ClassForRune(r[0]); c != Letter && c != Unknown {
			info.Class = c
			return info, nil
		}
	}

	s := NFD(symbol)
	if strings.HasPrefix(s, StressPrimary) {
		info.Stress = Primary
		s = strings.TrimPrefix(s, StressPrimary)
	} else if strings.HasPrefix(s, StressSecondary) {
		info.Stress = Secondary
		s = strings.TrimPrefix(s, StressSecondary)
	}
	if strings.HasSuffix(s, LongMark) {
		info.Length = LengthLong
		s = strings.TrimSuffix(s, LongMark)
	} else if strings.HasSuffix(s, HalfLongMark) {
		info.Length = LengthHalf
		s = strings.TrimSuffix(s, HalfLongMark)
	}
	if s == "" {
		return info, UnknownSymbolError{Symbol: symbol}
	}

	letters := NFC(s)
	if v, ok := vowels[letters]; ok {
		v.Stress = info.Stress
		v.Length = info.Length
		info.Class, info.Vowel = Letter, &v
		return info, nil
	}
	if c, ok := consonants[letters]; ok {
		c.Length = info.Length
		info.Class, info.Consonant = Letter, &c
		return info, nil
	}
	if schwa, ok := schwas[letters]; ok {
		schwa.Stress = info.Stress
		schwa.Length = info.Length
		info.Class, info.Schwa = Letter, &schwa
		return info, nil
	}

	// Nasalized spelling without a precomposed table entry.
	if strings.HasSuffix(s, NasalMark) {
		base := NFC(strings.TrimSuffix(s, NasalMark))
		if v, ok := vowels[base]; ok {
			v.Nasalized = true
			v.Stress = info.Stress
			v.Length = info.Length
			info.Class, info.Vowel = Letter, &v
			return info, nil
		}
	}

	T().Debugf("classify: symbol %q not in table", symbol)
	return info, UnknownSymbolError{Symbol: symbol}
}

// Describe composes a human-readable description of a classified
// symbol, e.g. "open front unrounded vowel" or "voiced alveolar
// nasal". Diacritic and length features are prepended as modifiers.
func (info SymbolInfo) Describe() string {
	var parts []string
	switch {
	case info.Vowel != nil:
		v := info.Vowel
		if v.Length != LengthNormal {
			parts = append(parts, v.Length.String())
		}
		if v.Nasalized {
			parts = append(parts, "nasalized")
		}
		rounded := "unrounded"
		if v.Rounded {
			rounded = "rounded"
		}
		parts = append(parts, v.Height.String(), v.Placement.String(), rounded, "vowel")
	case info.Consonant != nil:
		c := info.Consonant
		if c.Length != LengthNormal {
			parts = append(parts, c.Length.String())
		}
		voiced := "voiceless"
		if c.Voiced {
			voiced = "voiced"
		}
		parts = append(parts, voiced, c.Place.String(), c.Type.String())
	case info.Schwa != nil:
		if info.Schwa.Length != LengthNormal {
			parts = append(parts, info.Schwa.Length.String())
		}
		if info.Schwa.RColoured {
			parts = append(parts, "r-coloured")
		}
		parts = append(parts, "schwa")
	default:
		return info.Class.String()
	}
	return strings.Join(parts, " ")
}
