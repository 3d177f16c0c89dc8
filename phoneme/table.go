package phoneme

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/glottis/ipa"
	"github.com/glottis/ipa/phone"
)

//go:embed data
var dataFS embed.FS

// A Table holds one language's phoneme inventory: an ordered list of
// rules plus a spelling index for grouping. Tables are immutable after
// loading and safe for concurrent use.
type Table struct {
	Key     string // language identifier, possibly "lang/set"
	rules   []*Phoneme
	index   map[string]*Phoneme // canonical and variant spellings
	maxSpan int                 // longest spelling, in phones
}

// Phonemes returns the table's rules in table order.
func (tab *Table) Phonemes() []*Phoneme {
	return tab.rules
}

// Lookup finds the phoneme a canonical or variant spelling folds into.
func (tab *Table) Lookup(spelling string) (*Phoneme, bool) {
	p, ok := tab.index[ipa.NFC(spelling)]
	return p, ok
}

// Contains is true if spelling is the canonical form of one of the
// table's phonemes.
func (tab *Table) Contains(spelling string) bool {
	p, ok := tab.index[ipa.NFC(spelling)]
	return ok && p.Text == ipa.NFC(spelling)
}

// FromText reads a phoneme inventory from line-oriented text. Each
// non-blank line not starting with '#' is
//
//	<phoneme> <example-word> [<replace-token> ...]
//
// Rule order is preserved. A duplicate canonical spelling is reported
// and the first occurrence wins. A duplicate variant spelling is a
// load error, since it would make grouping ambiguous.
func FromText(r io.Reader, key string) (*Table, error) {
	tab := &Table{
		Key:   key,
		index: make(map[string]*Phoneme),
	}
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%s line %d: want <phoneme> <example> [<replace> ...], got %q",
				key, lineno, line)
		}
		p := &Phoneme{
			Text:    ipa.NFC(fields[0]),
			Example: fields[1],
		}
		if prev, ok := tab.index[p.Text]; ok {
			T().Infof("phonemes %s line %d: duplicate entry for %q, keeping first (%q)",
				key, lineno, p.Text, prev.Example)
			continue
		}
		tab.rules = append(tab.rules, p)
		tab.index[p.Text] = p
		tab.note(p.Text)
		for _, variant := range fields[2:] {
			variant = ipa.NFC(variant)
			if _, ok := tab.index[variant]; ok {
				return nil, fmt.Errorf("%s line %d: variant %q already registered",
					key, lineno, variant)
			}
			p.Replaces = append(p.Replaces, variant)
			tab.index[variant] = p
			tab.note(variant)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading phonemes %s: %w", key, err)
	}
	T().Debugf("loaded %d phonemes for %s", len(tab.rules), key)
	return tab, nil
}

// note tracks the longest spelling, measured in phones, for the
// grouping window.
func (tab *Table) note(spelling string) {
	phones, err := phone.Tokenize(spelling)
	if err != nil {
		// A spelling the tokenizer rejects can still be matched as a
		// single unit.
		if tab.maxSpan < 1 {
			tab.maxSpan = 1
		}
		return
	}
	if len(phones) > tab.maxSpan {
		tab.maxSpan = len(phones)
	}
}

// --- Language registry -------------------------------------------------

// languageAliases maps bare language codes onto the default full tag of
// an embedded inventory.
var languageAliases = map[string]string{
	"en": "en-us",
	"de": "de-de",
	"fr": "fr-fr",
	"es": "es-es",
}

var languageTables struct {
	sync.Mutex
	m map[string]*Table
}

// FromLanguage loads the embedded phoneme inventory for a language
// tag. Tags are canonicalized ("en_US" and "en-US" both select
// "en-us") and bare codes resolve to a default region ("en" selects
// "en-us"). A compound key "lang/set" selects an alternate phoneme set
// of the language, e.g. "en-us/cmudict". Tables are cached; repeated
// calls return the same instance.
func FromLanguage(lang string) (*Table, error) {
	key, err := resolveLanguage(lang)
	if err != nil {
		return nil, err
	}
	languageTables.Lock()
	defer languageTables.Unlock()
	if languageTables.m == nil {
		languageTables.m = make(map[string]*Table)
	}
	if tab, ok := languageTables.m[key]; ok {
		return tab, nil
	}
	f, err := dataFS.Open("data/" + key + "/phonemes.txt")
	if err != nil {
		return nil, ipa.UnsupportedLanguageError{Language: lang}
	}
	defer f.Close()
	tab, err := FromText(f, key)
	if err != nil {
		return nil, err
	}
	languageTables.m[key] = tab
	return tab, nil
}

// SupportedLanguages lists the keys of all embedded phoneme
// inventories, in lexical order.
func SupportedLanguages() []string {
	var keys []string
	entries, _ := dataFS.ReadDir("data")
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		keys = append(keys, e.Name())
		subs, _ := dataFS.ReadDir("data/" + e.Name())
		for _, s := range subs {
			if s.IsDir() {
				keys = append(keys, e.Name()+"/"+s.Name())
			}
		}
	}
	return keys
}

// resolveLanguage canonicalizes a language identifier onto an embedded
// inventory key.
func resolveLanguage(lang string) (string, error) {
	base := strings.ReplaceAll(strings.TrimSpace(lang), "_", "-")
	set := ""
	if i := strings.IndexByte(base, '/'); i >= 0 {
		base, set = base[:i], base[i+1:]
	}
	if tag, err := language.Parse(base); err == nil {
		base = strings.ToLower(tag.String())
	} else {
		base = strings.ToLower(base)
	}
	if alias, ok := languageAliases[base]; ok {
		base = alias
	}
	if base == "" {
		return "", ipa.UnsupportedLanguageError{Language: lang}
	}
	if set != "" {
		return base + "/" + set, nil
	}
	return base, nil
}
