package phoneme

import (
	"strings"

	"github.com/glottis/ipa"
	"github.com/glottis/ipa/phone"
)

// GroupOptions configure grouping.
type GroupOptions struct {
	// KeepStress re-attaches a leading stress mark to the covering
	// phoneme instead of stripping it.
	KeepStress bool
	// DropTones removes trailing tone marks before matching.
	DropTones bool
}

// Group merges a phone sequence into the table's phonemes by greedy
// longest-match over canonical and variant spellings. Matching ignores
// stress marks. When several spellings match at the same position the
// longest one wins; spellings of equal length cannot collide, the
// loader rejects them. An unmatched phone passes through unchanged as
// a single-phone phoneme. Break and intonation phones are dropped.
func (tab *Table) Group(phones []phone.Phone, opts GroupOptions) []Phoneme {
	keys := make([]string, len(phones))
	for i, p := range phones {
		keys[i] = tab.matchKey(p, opts)
	}
	var phonemes []Phoneme
	for i := 0; i < len(phones); {
		if phones[i].Kind != phone.Sound {
			i++
			continue
		}
		matched := false
		for span := tab.window(len(phones) - i); span >= 1; span-- {
			key, ok := joinKeys(keys[i : i+span])
			if !ok {
				continue
			}
			rule, found := tab.index[key]
			if !found {
				continue
			}
			phonemes = append(phonemes, tab.cover(*rule, phones[i], opts))
			i += span
			matched = true
			break
		}
		if !matched {
			T().Debugf("group %s: no phoneme covers %q, passing through", tab.Key, phones[i].Text)
			phonemes = append(phonemes, tab.cover(Phoneme{Text: keys[i]}, phones[i], opts))
			i++
		}
	}
	return phonemes
}

// Split tokenizes a transcription and groups it in one step.
func (tab *Table) Split(text string, opts GroupOptions) ([]Phoneme, error) {
	phones, err := phone.Tokenize(text)
	if err != nil {
		return nil, err
	}
	return tab.Group(phones, opts), nil
}

// window caps the match span at the table's longest spelling.
func (tab *Table) window(remaining int) int {
	if tab.maxSpan < remaining {
		return tab.maxSpan
	}
	return remaining
}

// matchKey is the spelling a phone contributes to matching: NFC, with
// stress and accent stripped and, on request, tones as well.
func (tab *Table) matchKey(p phone.Phone, opts GroupOptions) string {
	q := p.WithoutStress()
	if opts.DropTones {
		q = q.WithoutTones()
	}
	return ipa.NFC(q.Text)
}

// joinKeys concatenates a span of match keys. ok is false if the span
// crosses a break or intonation phone, which no spelling may bridge.
func joinKeys(keys []string) (string, bool) {
	var b strings.Builder
	for _, k := range keys {
		if ipa.IsBreak(k) || ipa.IsIntonation(k) {
			return "", false
		}
		b.WriteString(k)
	}
	return b.String(), true
}

// cover finalizes the phoneme covering a span, re-attaching the first
// phone's stress if requested.
func (tab *Table) cover(p Phoneme, first phone.Phone, opts GroupOptions) Phoneme {
	if opts.KeepStress && first.Stress != ipa.NoStress {
		p.Stress = first.Stress
		p.Text = first.Stress.Mark() + p.Text
	}
	return p
}
