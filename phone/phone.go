package phone

import (
	"strings"

	"github.com/glottis/ipa"
)

// Kind distinguishes sounding phones from break and intonation
// markers, which carry no articulatory features but are kept in the
// phone sequence so that round-tripping preserves them.
type Kind int8

// Phone kinds.
const (
	Sound Kind = iota
	Break
	Intonation
)

// A Phone is one pronounceable unit of a transcription: one or more
// base letters joined by tie bars, plus the diacritics and
// suprasegmental marks attached to them. Break and intonation symbols
// are represented as phones of kind Break/Intonation with empty
// Letters.
//
// Phones are immutable values; transformations always produce new
// ones.
type Phone struct {
	Text    string // complete NFC-normalized spelling, incl. stress/length/tone
	Letters string // base letters and tie bars only, NFC-normalized
	Kind    Kind

	Stress ipa.Stress
	Accent ipa.Accent
	Length ipa.Length

	Diacritics []string // combining diacritics in scan order
	Tone       string   // trailing tone marks, if any

	BreakKind ipa.BreakKind // valid for Kind == Break
}

// New builds a Phone from an IPA spelling of a single phone. It
// tokenizes text and fails unless exactly one phone results.
func New(text string) (Phone, error) {
	phones, err := Tokenize(text)
	if err != nil {
		return Phone{}, err
	}
	if len(phones) != 1 {
		return Phone{}, ipa.MalformedInputError{Symbol: text, Offset: 0}
	}
	return phones[0], nil
}

// IsBreak is true for word/minor/major/syllable break phones.
func (p Phone) IsBreak() bool {
	return p.Kind == Break
}

// IsNasal is true if the phone carries the nasalization diacritic or
// its letter is inherently nasalized.
func (p Phone) IsNasal() bool {
	for _, d := range p.Diacritics {
		if ipa.IsNasal(d) {
			return true
		}
	}
	if v := p.Vowel(); v != nil {
		return v.Nasalized
	}
	return false
}

// IsLong is true for an elongated phone.
func (p Phone) IsLong() bool {
	return p.Length == ipa.LengthLong
}

// IsRaised is true if the phone carries the raised diacritic.
func (p Phone) IsRaised() bool {
	for _, d := range p.Diacritics {
		if ipa.IsRaised(d) {
			return true
		}
	}
	return false
}

// letterInfo classifies the phone's letters against the symbol table.
func (p Phone) letterInfo() (ipa.SymbolInfo, bool) {
	info, err := ipa.Classify(p.Letters)
	if err != nil {
		return info, false
	}
	return info, true
}

// Vowel returns the vowel features of a single-vowel phone, or nil.
// The result reflects the phone's diacritics: a nasalization mark sets
// Nasalized, stress and length are copied over.
func (p Phone) Vowel() *ipa.Vowel {
	info, ok := p.letterInfo()
	if !ok || info.Vowel == nil {
		return nil
	}
	v := *info.Vowel
	for _, d := range p.Diacritics {
		if ipa.IsNasal(d) {
			v.Nasalized = true
		}
	}
	v.Stress = p.Stress
	v.Length = p.Length
	return &v
}

// Consonant returns the consonant features of the phone, or nil.
func (p Phone) Consonant() *ipa.Consonant {
	info, ok := p.letterInfo()
	if !ok || info.Consonant == nil {
		return nil
	}
	c := *info.Consonant
	c.Length = p.Length
	return &c
}

// Schwa returns the schwa features of the phone, or nil.
func (p Phone) Schwa() *ipa.Schwa {
	info, ok := p.letterInfo()
	if !ok || info.Schwa == nil {
		return nil
	}
	s := *info.Schwa
	s.Stress = p.Stress
	s.Length = p.Length
	return &s
}

// Diphthong returns the two vowels of a tied two-vowel phone, or nil
// if the phone is not a diphthong. Untied vowel sequences tokenize as
// separate phones and combine at the phoneme level.
func (p Phone) Diphthong() *ipa.Diphthong {
	stripped := strings.ReplaceAll(p.Letters, ipa.TieAbove, "")
	stripped = strings.ReplaceAll(stripped, ipa.TieBelow, "")
	letters := ipa.Graphemes(stripped)
	if len(letters) != 2 {
		return nil
	}
	v1, ok1 := ipa.Vowels()[letters[0]]
	v2, ok2 := ipa.Vowels()[letters[1]]
	if !ok1 || !ok2 {
		return nil
	}
	return &ipa.Diphthong{Vowel1: v1, Vowel2: v2}
}

// IsVowel is true for single-vowel phones (including nasalized ones).
func (p Phone) IsVowel() bool { return p.Vowel() != nil }

// IsConsonant is true for consonant phones, including tied affricates.
func (p Phone) IsConsonant() bool { return p.Consonant() != nil }

// Describe composes a human-readable description of the phone from its
// letters' features, with diacritic modifiers applied, e.g.
// "long nasalized open front unrounded vowel".
func (p Phone) Describe() string {
	switch p.Kind {
	case Break:
		return p.BreakKind.String() + " break"
	case Intonation:
		if p.Text == ipa.IntonationRising {
			return "rising intonation"
		}
		return "falling intonation"
	}
	if d := p.Diphthong(); d != nil {
		return "diphthong " + d.Vowel1.IPA + d.Vowel2.IPA
	}
	if v := p.Vowel(); v != nil {
		return ipa.SymbolInfo{Vowel: v, Class: ipa.Letter}.Describe()
	}
	if c := p.Consonant(); c != nil {
		return ipa.SymbolInfo{Consonant: c, Class: ipa.Letter}.Describe()
	}
	if s := p.Schwa(); s != nil {
		return ipa.SymbolInfo{Schwa: s, Class: ipa.Letter}.Describe()
	}
	return "unknown phone"
}

// WithoutStress returns a copy of the phone with stress and accent
// marks removed from its text.
func (p Phone) WithoutStress() Phone {
	q := p
	q.Stress = ipa.NoStress
	q.Accent = ipa.NoAccent
	q.Text = ipa.NFC(ipa.WithoutStress(ipa.NFD(p.Text)))
	return q
}

// WithoutTones returns a copy of the phone with trailing tone marks
// removed from its text.
func (p Phone) WithoutTones() Phone {
	if p.Tone == "" {
		return p
	}
	q := p
	q.Tone = ""
	q.Text = ipa.NFC(strings.TrimSuffix(ipa.NFD(p.Text), ipa.NFD(p.Tone)))
	return q
}

func (p Phone) String() string {
	return p.Text
}
