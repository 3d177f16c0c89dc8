package ipa

// VowelHeight of a vowel, from close (high) to open (low).
type VowelHeight int8

// Vowel heights.
const (
	Close VowelHeight = iota
	NearClose
	CloseMid
	Mid
	OpenMid
	NearOpen
	Open
)

func (h VowelHeight) String() string {
	switch h {
	case Close:
		return "close"
	case NearClose:
		return "near-close"
	case CloseMid:
		return "close-mid"
	case Mid:
		return "mid"
	case OpenMid:
		return "open-mid"
	case NearOpen:
		return "near-open"
	case Open:
		return "open"
	}
	return "?"
}

// VowelPlacement is the front/back placement of a vowel.
type VowelPlacement int8

// Vowel placements.
const (
	Front VowelPlacement = iota
	NearFront
	Central
	NearBack
	Back
)

func (p VowelPlacement) String() string {
	switch p {
	case Front:
		return "front"
	case NearFront:
		return "near-front"
	case Central:
		return "central"
	case NearBack:
		return "near-back"
	case Back:
		return "back"
	}
	return "?"
}

// Vowel holds the articulatory features of a vowel letter, possibly
// modified by diacritics (nasalization), stress and length.
type Vowel struct {
	IPA       string
	Height    VowelHeight
	Placement VowelPlacement
	Rounded   bool
	Nasalized bool
	Stress    Stress
	Length    Length
	AliasOf   string // non-empty if this spelling aliases another entry
}

// Diphthong is a combination of two vowels within one phone.
type Diphthong struct {
	Vowel1 Vowel
	Vowel2 Vowel
}

// Schwa is a vowel-like sound without a fixed articulation target.
type Schwa struct {
	IPA       string
	RColoured bool
	Stress    Stress
	Length    Length
	AliasOf   string
}

// -----------------------------------------------------------------
// Vowels        Front    Near-Front    Central    Near-Back    Back
// -----------------------------------------------------------------
// Close         i/y                    ɨ/ʉ                     ɯ/u
// Near-Close             ɪ/ʏ                      ʊ
// Close-Mid     e/ø                    ɘ/ɵ                     ɤ/o
// Mid                                  ə
// Open-Mid      ɛ/œ                    ɜ/ɞ                     ʌ/ɔ
// Near-Open     æ                      ɐ
// Open          a/ɶ                                            ɑ/ɒ
// -----------------------------------------------------------------

var vowelTable = []Vowel{
	{IPA: "i", Height: Close, Placement: Front},
	{IPA: "y", Height: Close, Placement: Front, Rounded: true},
	{IPA: "ɨ", Height: Close, Placement: Central},
	{IPA: "ʉ", Height: Close, Placement: Central, Rounded: true},
	{IPA: "ɯ", Height: Close, Placement: Back},
	{IPA: "u", Height: Close, Placement: Back, Rounded: true},
	//
	{IPA: "ɪ", Height: NearClose, Placement: NearFront},
	{IPA: "ʏ", Height: NearClose, Placement: NearFront, Rounded: true},
	{IPA: "ʊ", Height: NearClose, Placement: NearBack, Rounded: true},
	//
	{IPA: "e", Height: CloseMid, Placement: Front},
	{IPA: "ø", Height: CloseMid, Placement: Front, Rounded: true},
	{IPA: "ɘ", Height: CloseMid, Placement: Central},
	{IPA: "ɵ", Height: CloseMid, Placement: Central, Rounded: true},
	{IPA: "ɤ", Height: CloseMid, Placement: Back},
	{IPA: "o", Height: CloseMid, Placement: Back, Rounded: true},
	//
	// The mid central vowel ə is represented as a schwa.
	//
	{IPA: "ɛ", Height: OpenMid, Placement: Front},
	{IPA: "œ", Height: OpenMid, Placement: Front, Rounded: true},
	{IPA: "ɜ", Height: OpenMid, Placement: Central},
	{IPA: "ɞ", Height: OpenMid, Placement: Central, Rounded: true},
	{IPA: "ʌ", Height: OpenMid, Placement: Back},
	{IPA: "ɔ", Height: OpenMid, Placement: Back, Rounded: true},
	//
	{IPA: "æ", Height: NearOpen, Placement: Front},
	{IPA: "ɐ", Height: NearOpen, Placement: Central},
	//
	{IPA: "a", Height: Open, Placement: Front},
	{IPA: "ɶ", Height: Open, Placement: Front, Rounded: true},
	{IPA: "ɑ", Height: Open, Placement: Back},
	{IPA: "ɒ", Height: Open, Placement: Back, Rounded: true},
	//
	// Nasalized vowels get their own entries so that single-grapheme
	// lookups (e.g. "ã") resolve without decomposition.
	{IPA: "ã", Height: Open, Placement: Front, Nasalized: true},
	{IPA: "ẽ", Height: CloseMid, Placement: Front, Nasalized: true},
	{IPA: "ĩ", Height: Close, Placement: Front, Nasalized: true},
	{IPA: "õ", Height: CloseMid, Placement: Back, Rounded: true, Nasalized: true},
	{IPA: "ũ", Height: Close, Placement: Back, Rounded: true, Nasalized: true},
}

var schwaTable = []Schwa{
	{IPA: "ə"},
	{IPA: "ɚ", RColoured: true},
	{IPA: "ɝ", RColoured: true},
	{IPA: "ɹ̩", RColoured: true},
}

var vowels = make(map[string]Vowel, len(vowelTable))
var schwas = make(map[string]Schwa, len(schwaTable))

func init() {
	for _, v := range vowelTable {
		vowels[NFC(v.IPA)] = v
	}
	for _, s := range schwaTable {
		schwas[NFC(s.IPA)] = s
	}
}

// Vowels returns the vowel inventory keyed by NFC spelling. The map
// is shared; callers must not modify it.
func Vowels() map[string]Vowel {
	return vowels
}

// Schwas returns the schwa inventory keyed by NFC spelling. The map
// is shared; callers must not modify it.
func Schwas() map[string]Schwa {
	return schwas
}
