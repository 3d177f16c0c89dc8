package phoneme

import (
	"github.com/glottis/ipa"
	"github.com/glottis/ipa/phone"
)

// A Phoneme is one rule of a language's phoneme inventory: a canonical
// IPA spelling plus the surface variant spellings that fold into it.
// Grouping produces copies of table rules, possibly with stress
// re-attached.
type Phoneme struct {
	Text     string     // canonical IPA spelling, NFC-normalized
	Example  string     // example word, documentation only
	Replaces []string   // variant spellings folded into this phoneme
	Stress   ipa.Stress // set by grouping with KeepStress
}

// Phones tokenizes the phoneme's canonical spelling.
func (p Phoneme) Phones() ([]phone.Phone, error) {
	return phone.Tokenize(p.Text)
}

// Diphthong returns the two vowels of a two-vowel phoneme like "aʊ",
// or nil.
func (p Phoneme) Diphthong() *ipa.Diphthong {
	letters := ipa.Graphemes(ipa.WithoutStress(p.Text))
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

func (p Phoneme) String() string {
	return p.Text
}
