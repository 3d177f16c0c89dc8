package features

import (
	"github.com/glottis/ipa"
)

// A Symbol is anything a feature vector can encode: a vowel, a
// consonant, a schwa, or a break. Exactly one field is non-nil.
type Symbol struct {
	Vowel     *ipa.Vowel
	Consonant *ipa.Consonant
	Schwa     *ipa.Schwa
	Break     *ipa.BreakKind
}

// String returns the IPA spelling of the symbol, with stress, length
// and nasalization marks re-attached.
func (s Symbol) String() string {
	switch {
	case s.Vowel != nil:
		nasal := ""
		if s.Vowel.Nasalized {
			// Only if the spelling does not already carry the tilde.
			if base, ok := ipa.Vowels()[s.Vowel.IPA]; !ok || !base.Nasalized {
				nasal = ipa.NasalMark
			}
		}
		return ipa.NFC(s.Vowel.Stress.Mark() + s.Vowel.IPA + nasal + s.Vowel.Length.Mark())
	case s.Consonant != nil:
		return ipa.NFC(s.Consonant.IPA + s.Consonant.Length.Mark())
	case s.Schwa != nil:
		return ipa.NFC(s.Schwa.Stress.Mark() + s.Schwa.IPA + s.Schwa.Length.Mark())
	case s.Break != nil:
		switch *s.Break {
		case ipa.WordBreak:
			return ipa.BreakWord
		case ipa.MinorBreak:
			return ipa.BreakMinor
		case ipa.MajorBreak:
			return ipa.BreakMajor
		}
		return ipa.BreakSyllable
	}
	return ""
}

// StringToSymbol parses an IPA symbol string like "ˈãː" into a Symbol,
// with stress and length applied to the table entry's features.
func StringToSymbol(symbolStr string) (Symbol, error) {
	if kind, ok := ipa.BreakKindOf(symbolStr); ok {
		return Symbol{Break: &kind}, nil
	}
	info, err := ipa.Classify(symbolStr)
	if err != nil {
		return Symbol{}, err
	}
	switch {
	case info.Vowel != nil:
		return Symbol{Vowel: info.Vowel}, nil
	case info.Consonant != nil:
		return Symbol{Consonant: info.Consonant}, nil
	case info.Schwa != nil:
		return Symbol{Schwa: info.Schwa}, nil
	}
	return Symbol{}, ipa.UnknownSymbolError{Symbol: symbolStr}
}
