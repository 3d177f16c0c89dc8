package phone

import "strings"

// A Pronunciation is the phone sequence of a word or an utterance, as
// produced by the scanner.
type Pronunciation struct {
	phones []Phone
}

// ParsePronunciation tokenizes a transcription string.
func ParsePronunciation(text string) (*Pronunciation, error) {
	phones, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	return &Pronunciation{phones: phones}, nil
}

// Phones returns all phones, including breaks and intonation marks.
func (pron *Pronunciation) Phones() []Phone {
	return pron.phones
}

// Sounds returns the sound phones only, with breaks and intonation
// marks filtered out.
func (pron *Pronunciation) Sounds() []Phone {
	sounds := make([]Phone, 0, len(pron.phones))
	for _, p := range pron.phones {
		if p.Kind == Sound {
			sounds = append(sounds, p)
		}
	}
	return sounds
}

// Texts returns the textual form of every phone, in order.
func (pron *Pronunciation) Texts() []string {
	texts := make([]string, len(pron.phones))
	for i, p := range pron.phones {
		texts[i] = p.Text
	}
	return texts
}

// WithoutStress returns a copy of the pronunciation with all stress
// and accent marks removed.
func (pron *Pronunciation) WithoutStress() *Pronunciation {
	phones := make([]Phone, len(pron.phones))
	for i, p := range pron.phones {
		phones[i] = p.WithoutStress()
	}
	return &Pronunciation{phones: phones}
}

func (pron *Pronunciation) String() string {
	var b strings.Builder
	for _, p := range pron.phones {
		b.WriteString(p.Text)
	}
	return b.String()
}
