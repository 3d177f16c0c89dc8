package ipa

// IPA marks which are not letters: suprasegmentals, diacritics, ties,
// breaks and brackets. All of them are strings (not runes) because the
// rest of the module passes symbols around as strings, and a few marks
// share a spelling with multi-code-point letters.
const (
	StressPrimary   = "ˈ" // ˈ
	StressSecondary = "ˌ" // ˌ

	AccentAcute = "'"
	AccentGrave = "²"

	LongMark       = "ː" // ː
	HalfLongMark   = "ˑ" // ˑ
	ExtraShortMark = "̆" // ə̆
	NasalMark      = "̃" // ẽ
	RaisedMark     = "̝" // r̝

	TieAbove = "͡" // ͡
	TieBelow = "͜" // ͜

	SyllabicMark    = "̩"
	NonSyllabicMark = "̯"

	BreakSyllable = "."
	BreakMinor    = "|"
	BreakMajor    = "‖" // ‖
	BreakWord     = "#"

	IntonationRising  = "↗" // ↗
	IntonationFalling = "↘" // ↘
)

// Tone marks: Chao letters and superscript digits.
const (
	Tone1 = "¹"
	Tone2 = "²"
	Tone3 = "³"
	Tone4 = "⁴"
	Tone5 = "⁵"
	Tone6 = "⁶"
	Tone7 = "⁷"
	Tone8 = "⁸"
	Tone9 = "⁹"

	ToneExtraHigh = "˥" // ˥
	ToneHigh      = "˦" // ˦
	ToneMid       = "˧" // ˧
	ToneLow       = "˨" // ˨
	ToneExtraLow  = "˩" // ˩

	ToneGlottalized = "ˀ" // ˀ
)

// Bracket symbols delimiting phonetic/phonemic/prosodic transcriptions.
const (
	BracketPhoneticLeft  = "["
	BracketPhoneticRight = "]"
	BracketPhonemicLeft  = "/"
	BracketPhonemicRight = "/"
	BracketProsodicLeft  = "{"
	BracketProsodicRight = "}"
	BracketOptionalLeft  = "("
	BracketOptionalRight = ")"
)

// IsStress is true for the primary and secondary stress marks.
func IsStress(symbol string) bool {
	return symbol == StressPrimary || symbol == StressSecondary
}

// IsAccent is true for the acute and grave accent symbols.
func IsAccent(symbol string) bool {
	return symbol == AccentAcute || symbol == AccentGrave
}

// IsLong is true for the elongation mark.
func IsLong(symbol string) bool {
	return symbol == LongMark
}

// IsNasal is true for the nasalization diacritic.
func IsNasal(symbol string) bool {
	return symbol == NasalMark
}

// IsRaised is true for the raised diacritic.
func IsRaised(symbol string) bool {
	return symbol == RaisedMark
}

// IsTie is true for the above/below tie bars.
func IsTie(symbol string) bool {
	return symbol == TieAbove || symbol == TieBelow
}

// IsBreak is true for syllable, minor (foot), major (intonation) and
// word breaks.
func IsBreak(symbol string) bool {
	switch symbol {
	case BreakSyllable, BreakMinor, BreakMajor, BreakWord:
		return true
	}
	return false
}

// IsIntonation is true for the rising and falling intonation marks.
func IsIntonation(symbol string) bool {
	return symbol == IntonationRising || symbol == IntonationFalling
}

// IsTone is true for tone digits and Chao tone letters.
func IsTone(symbol string) bool {
	switch symbol {
	case Tone1, Tone2, Tone3, Tone4, Tone5, Tone6, Tone7, Tone8, Tone9,
		ToneExtraHigh, ToneHigh, ToneMid, ToneLow, ToneExtraLow:
		return true
	}
	return false
}

// IsBracket is true for any IPA bracket symbol.
func IsBracket(symbol string) bool {
	switch symbol {
	case BracketPhoneticLeft, BracketPhoneticRight,
		BracketPhonemicLeft, BracketProsodicLeft, BracketProsodicRight,
		BracketOptionalLeft, BracketOptionalRight:
		return true
	}
	return false
}

// WithoutStress returns s with all stress and accent marks removed.
func WithoutStress(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		c := string(r)
		if IsStress(c) || IsAccent(c) {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

// Stress is the stress applied to a phone or phoneme.
type Stress int8

// Stress values.
const (
	NoStress Stress = iota
	Primary
	Secondary
)

func (s Stress) String() string {
	switch s {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	}
	return "none"
}

// Mark returns the IPA mark for a stress value, or "" for NoStress.
func (s Stress) Mark() string {
	switch s {
	case Primary:
		return StressPrimary
	case Secondary:
		return StressSecondary
	}
	return ""
}

// Accent is a word accent applied to a phone.
type Accent int8

// Accent values.
const (
	NoAccent Accent = iota
	Acute
	Grave
)

func (a Accent) String() string {
	switch a {
	case Acute:
		return "acute"
	case Grave:
		return "grave"
	}
	return "none"
}

// Mark returns the accent symbol, or "" for NoAccent.
func (a Accent) Mark() string {
	switch a {
	case Acute:
		return AccentAcute
	case Grave:
		return AccentGrave
	}
	return ""
}

// Length is the phonetic length of a phone or phoneme.
type Length int8

// Length values. The half-long mark shortens a long phone, hence the
// name LengthHalf.
const (
	LengthNormal Length = iota
	LengthHalf
	LengthLong
)

func (l Length) String() string {
	switch l {
	case LengthHalf:
		return "half-long"
	case LengthLong:
		return "long"
	}
	return "normal"
}

// Mark returns the IPA length mark, or "" for LengthNormal.
func (l Length) Mark() string {
	switch l {
	case LengthHalf:
		return HalfLongMark
	case LengthLong:
		return LongMark
	}
	return ""
}

// BreakKind distinguishes the break symbols.
type BreakKind int8

// Break kinds.
const (
	SyllableBreak BreakKind = iota
	MinorBreak
	MajorBreak
	WordBreak
)

func (b BreakKind) String() string {
	switch b {
	case MinorBreak:
		return "minor"
	case MajorBreak:
		return "major"
	case WordBreak:
		return "word"
	}
	return "syllable"
}

// BreakKindOf maps a break symbol to its kind. ok is false if symbol
// is not a break.
func BreakKindOf(symbol string) (kind BreakKind, ok bool) {
	switch symbol {
	case BreakSyllable:
		return SyllableBreak, true
	case BreakMinor:
		return MinorBreak, true
	case BreakMajor:
		return MajorBreak, true
	case BreakWord:
		return WordBreak, true
	}
	return 0, false
}
