package accent

import (
	"github.com/glottis/ipa"
	"github.com/glottis/ipa/phone"
	"github.com/glottis/ipa/phoneme"
)

// Preference lists for sounds that map badly by pure feature distance.
var (
	rLike          = []string{"ɹ", "ʁ", "r", "ʀ", "ɻ"}
	schwaPreferred = []string{"ə", "ɐ"}
	gForms         = []string{"ɡ", "g"}
)

func isRLike(s string) bool {
	for _, r := range rLike {
		if s == r {
			return true
		}
	}
	return false
}

// analysis holds the articulatory reading of one source phoneme.
type analysis struct {
	text      string
	letters   string
	vowel     *ipa.Vowel
	consonant *ipa.Consonant
	schwa     *ipa.Schwa
	diphthong *ipa.Diphthong
	elongated bool
}

func analyze(spelling string) (analysis, error) {
	a := analysis{text: ipa.NFC(ipa.WithoutStress(ipa.NFD(spelling)))}
	phones, err := phone.Tokenize(a.text)
	if err != nil {
		return a, err
	}
	for _, p := range phones {
		a.letters += p.Letters
		if p.IsLong() {
			a.elongated = true
		}
	}
	if len(phones) == 1 {
		p := phones[0]
		a.vowel = p.Vowel()
		a.consonant = p.Consonant()
		a.schwa = p.Schwa()
		a.diphthong = p.Diphthong()
		return a, nil
	}
	if len(phones) == 2 {
		v1, v2 := phones[0].Vowel(), phones[1].Vowel()
		if v1 != nil && v2 != nil {
			a.diphthong = &ipa.Diphthong{Vowel1: *v1, Vowel2: *v2}
		}
	}
	return a, nil
}

// VowelDistance measures articulatory distance between two vowels.
// Height differences weigh double, since they dominate perception.
func VowelDistance(v1, v2 ipa.Vowel) float64 {
	d := 2 * absInt(int(v1.Height)-int(v2.Height))
	d += absInt(int(v1.Placement) - int(v2.Placement))
	if v1.Rounded != v2.Rounded {
		d++
	}
	return float64(d)
}

// ConsonantDistance measures articulatory distance between two
// consonants.
func ConsonantDistance(c1, c2 ipa.Consonant) float64 {
	d := absInt(int(c1.Type) - int(c2.Type))
	d += absInt(int(c1.Place) - int(c2.Place))
	if c1.Voiced != c2.Voiced {
		d++
	}
	return float64(d)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// GuessPhoneme finds the best match for a source phoneme in a target
// inventory. A diphthong may map onto two target phonemes, hence the
// slice result. A nil result means nothing in the target inventory is
// comparable.
func GuessPhoneme(from string, to *phoneme.Table) ([]string, error) {
	src, err := analyze(from)
	if err != nil {
		return nil, err
	}

	// Both forms of "g" spell the same sound.
	for _, g := range gForms {
		if src.text != g {
			continue
		}
		for _, maybeG := range gForms {
			if to.Contains(maybeG) {
				return []string{maybeG}, nil
			}
		}
	}

	if src.schwa != nil {
		for _, maybeSchwa := range schwaPreferred {
			if to.Contains(maybeSchwa) {
				return []string{maybeSchwa}, nil
			}
		}
		if src.schwa.RColoured {
			for _, maybeR := range rLike {
				if to.Contains(maybeR) {
					return []string{maybeR}, nil
				}
			}
		}
		// Treat as a mid central vowel from here on.
		src.vowel = &ipa.Vowel{IPA: "ə", Height: ipa.Mid, Placement: ipa.Central}
	}

	var best string
	minDist := -1.0
	record := func(dist float64, text string) {
		if minDist < 0 || dist < minDist {
			minDist = dist
			best = text
		}
	}
	for _, toPhoneme := range to.Phonemes() {
		if src.text == toPhoneme.Text {
			return []string{toPhoneme.Text}, nil
		}
		dst, err := analyze(toPhoneme.Text)
		if err != nil {
			continue
		}
		if src.diphthong == nil && src.letters == dst.letters {
			// Same letters, differing only in elongation or accent.
			return []string{toPhoneme.Text}, nil
		}
		penalty := 0.0
		if src.elongated != dst.elongated {
			penalty = 0.5
		}
		switch {
		case src.vowel != nil && dst.vowel != nil:
			record(VowelDistance(*src.vowel, *dst.vowel)+penalty, toPhoneme.Text)
		case src.consonant != nil && dst.consonant != nil:
			record(ConsonantDistance(*src.consonant, *dst.consonant)+penalty, toPhoneme.Text)
		case src.diphthong != nil:
			if pair := splitDiphthong(*src.diphthong, to); pair != nil {
				return pair, nil
			}
		}
	}
	if best == "" {
		return nil, nil
	}
	return []string{best}, nil
}

// splitDiphthong maps the two halves of a diphthong independently onto
// the target inventory's vowels.
func splitDiphthong(d ipa.Diphthong, to *phoneme.Table) []string {
	var best1, best2 string
	min1, min2 := -1.0, -1.0
	for _, toPhoneme := range to.Phonemes() {
		dst, err := analyze(toPhoneme.Text)
		if err != nil || dst.vowel == nil {
			continue
		}
		if d1 := VowelDistance(d.Vowel1, *dst.vowel); min1 < 0 || d1 < min1 {
			min1, best1 = d1, toPhoneme.Text
		}
		if d2 := VowelDistance(d.Vowel2, *dst.vowel); min2 < 0 || d2 < min2 {
			min2, best2 = d2, toPhoneme.Text
		}
	}
	if best1 == "" || best2 == "" {
		return nil
	}
	return []string{best1, best2}
}

// GuessMap guesses a phoneme mapping between two language inventories.
// Arguments are language tags as understood by phoneme.FromLanguage.
func GuessMap(fromLang, toLang string) (map[string][]string, error) {
	from, err := phoneme.FromLanguage(fromLang)
	if err != nil {
		return nil, err
	}
	to, err := phoneme.FromLanguage(toLang)
	if err != nil {
		return nil, err
	}
	return GuessTableMap(from, to)
}

// GuessTableMap guesses a phoneme mapping between two loaded
// inventories.
func GuessTableMap(from, to *phoneme.Table) (map[string][]string, error) {
	mapping := make(map[string][]string)
	for _, fromPhoneme := range from.Phonemes() {
		guess, err := GuessPhoneme(fromPhoneme.Text, to)
		if err != nil {
			T().Infof("accent: cannot analyze %q: %v", fromPhoneme.Text, err)
			continue
		}
		if guess == nil {
			continue
		}
		// An r-like source should stay r-like even when feature
		// distance prefers something else.
		if isRLike(fromPhoneme.Text) && len(guess) == 1 && !isRLike(guess[0]) {
			for _, maybeR := range rLike {
				if to.Contains(maybeR) {
					guess = []string{maybeR}
					break
				}
			}
		}
		mapping[fromPhoneme.Text] = guess
	}
	return mapping, nil
}
