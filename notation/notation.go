package notation

import (
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/glottis/ipa"
	"github.com/glottis/ipa/phone"
)

// A Pair maps one IPA spelling onto one token of the external
// notation. The token may be empty for IPA symbols the notation does
// not represent (ties, some diacritics); an empty token is still a
// registered mapping.
type Pair struct {
	IPA   string
	Token string
}

// A Table is one notation's mapping, immutable after construction.
// Table order is significant: when several IPA spellings share a
// token, the reverse direction resolves the token to the spelling
// listed first.
type Table struct {
	Name    string
	pairs   []Pair
	forward *arraylist.List   // pairs ordered by IPA spelling length, longest first
	reverse *arraylist.List   // token->IPA candidates by token length, longest first
	ipas    map[string]string // IPA spelling -> token
	tokens  map[string]string // token -> first IPA spelling
}

// newTable freezes an ordered pair list into a Table. IPA spellings
// are held in NFD, since matching walks decomposed input.
func newTable(name string, pairs []Pair) *Table {
	t := &Table{
		Name:   name,
		pairs:  pairs,
		ipas:   make(map[string]string, len(pairs)),
		tokens: make(map[string]string, len(pairs)),
	}
	t.forward = arraylist.New()
	t.reverse = arraylist.New()
	for _, p := range pairs {
		key := ipa.NFD(p.IPA)
		if _, ok := t.ipas[key]; ok {
			T().Infof("notation %s: duplicate mapping for %q, keeping first", name, p.IPA)
			continue
		}
		t.ipas[key] = p.Token
		t.forward.Add(Pair{IPA: key, Token: p.Token})
		if p.Token == "" {
			continue
		}
		if _, ok := t.tokens[p.Token]; !ok {
			t.tokens[p.Token] = key
			t.reverse.Add(Pair{IPA: key, Token: p.Token})
		}
	}
	byLen := func(get func(Pair) string) func(a, b interface{}) int {
		return func(a, b interface{}) int {
			return len(get(b.(Pair))) - len(get(a.(Pair)))
		}
	}
	t.forward.Sort(byLen(func(p Pair) string { return p.IPA }))
	t.reverse.Sort(byLen(func(p Pair) string { return p.Token }))
	return t
}

// Pairs returns the table's mappings in table order.
func (t *Table) Pairs() []Pair {
	return t.pairs
}

// Token returns the notation token registered for an IPA spelling.
func (t *Table) Token(spelling string) (string, bool) {
	tok, ok := t.ipas[ipa.NFD(spelling)]
	return tok, ok
}

// FromIPA converts an IPA string into the notation. Matching walks the
// decomposed input greedily, longest registered spelling first.
// Whitespace passes through unchanged. An unregistered symbol fails
// with ipa.UnmappableSymbolError.
func (t *Table) FromIPA(text string) (string, error) {
	input := ipa.NFD(text)
	var out strings.Builder
	offset := 0 // rune offset, for error reporting
	for len(input) > 0 {
		r, size := utf8.DecodeRuneInString(input)
		if unicode.IsSpace(r) || ipa.IsBracket(string(r)) {
			if unicode.IsSpace(r) {
				out.WriteRune(r)
			}
			input = input[size:]
			offset++
			continue
		}
		matched := false
		for it := t.forward.Iterator(); it.Next(); {
			p := it.Value().(Pair)
			if strings.HasPrefix(input, p.IPA) {
				out.WriteString(p.Token)
				input = input[len(p.IPA):]
				offset += utf8.RuneCountInString(p.IPA)
				matched = true
				break
			}
		}
		if !matched {
			return "", ipa.UnmappableSymbolError{Symbol: string(r), Offset: offset, Notation: t.Name}
		}
	}
	return out.String(), nil
}

// ToIPA converts notation text back into an IPA string by greedy
// longest-token-first scanning. Transcription brackets and whitespace
// pass through; an unrecognized token fails with
// ipa.UnmappableSymbolError.
func (t *Table) ToIPA(text string) (string, error) {
	input := text
	var out strings.Builder
	offset := 0
	for len(input) > 0 {
		r, size := utf8.DecodeRuneInString(input)
		if unicode.IsSpace(r) {
			out.WriteRune(r)
			input = input[size:]
			offset++
			continue
		}
		if r == '[' || r == ']' {
			input = input[size:]
			offset++
			continue
		}
		matched := false
		for it := t.reverse.Iterator(); it.Next(); {
			p := it.Value().(Pair)
			if strings.HasPrefix(input, p.Token) {
				out.WriteString(p.IPA)
				input = input[len(p.Token):]
				offset += utf8.RuneCountInString(p.Token)
				matched = true
				break
			}
		}
		if !matched {
			return "", ipa.UnmappableSymbolError{Symbol: string(r), Offset: offset, Notation: t.Name}
		}
	}
	return ipa.NFC(out.String()), nil
}

// Phones converts notation text into a phone sequence, applying the
// usual tie and diacritic attachment rules to the rebuilt IPA string.
func (t *Table) Phones(text string) ([]phone.Phone, error) {
	ipaText, err := t.ToIPA(text)
	if err != nil {
		return nil, err
	}
	return phone.Tokenize(ipaText)
}

// --- Registry -----------------------------------------------------------

var tableOnce sync.Once
var tables map[string]*Table

func setupTables() {
	tableOnce.Do(func() {
		tables = map[string]*Table{
			"espeak": newTable("espeak", espeakPairs),
			"sampa":  newTable("sampa", sampaPairs),
		}
	})
}

// ForName returns the notation table registered under a name
// ("espeak", "sampa"), case-insensitively.
func ForName(name string) (*Table, bool) {
	setupTables()
	t, ok := tables[strings.ToLower(name)]
	return t, ok
}

// Names lists the registered notations in sorted order.
func Names() []string {
	setupTables()
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ToNotation renders a phone sequence in an external notation. Each
// phone's spelling maps symbol by symbol, so stress and length tokens
// come out attached to their phone.
func ToNotation(phones []phone.Phone, name string) (string, error) {
	t, ok := ForName(name)
	if !ok {
		return "", ipa.UnsupportedLanguageError{Language: name}
	}
	var b strings.Builder
	for _, p := range phones {
		b.WriteString(p.Text)
	}
	return t.FromIPA(b.String())
}

// FromNotation parses external notation text into a phone sequence.
func FromNotation(text string, name string) ([]phone.Phone, error) {
	t, ok := ForName(name)
	if !ok {
		return nil, ipa.UnsupportedLanguageError{Language: name}
	}
	return t.Phones(text)
}
