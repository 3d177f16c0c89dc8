package features

import (
	"fmt"

	"github.com/glottis/ipa"
)

// A Vector is the numeric encoding of one Symbol.
type Vector []float64

// A column describes one feature of the vector layout. Category
// columns occupy one slot per possible value (one-hot); ordered
// columns occupy a single slot holding index/len(values).
type column struct {
	name    string
	values  []string
	ordered bool
}

// empty marks a feature that does not apply to the symbol.
const empty = ""

// columns is the fixed vector layout. Order matters and is part of the
// encoding.
var columns = []column{
	{name: "symbol_type", values: []string{empty, "phoneme", "break"}},
	{name: "phoneme_type", values: []string{empty, "vowel", "consonant", "schwa"}},
	{name: "diacritic", values: []string{empty, "nasalized", "velarized"}},
	{name: "vowel_height", ordered: true, values: []string{empty,
		"close", "near-close", "close-mid", "mid", "open-mid", "near-open", "open"}},
	{name: "vowel_place", ordered: true, values: []string{empty,
		"front", "near-front", "central", "near-back", "back"}},
	{name: "vowel_rounded", values: []string{empty, "rounded", "unrounded"}},
	{name: "vowel_stress", values: []string{empty, "none", "primary", "secondary"}},
	{name: "consonant_voiced", values: []string{empty, "voiced", "voiceless"}},
	{name: "consonant_type", values: []string{empty, "nasal", "plosive", "affricate",
		"fricative", "approximant", "flap", "trill", "lateral-approximant"}},
	{name: "consonant_place", ordered: true, values: []string{empty,
		"bilabial", "labio-dental", "dental", "alveolar", "post-alveolar",
		"retroflex", "palatal", "velar", "uvular", "pharyngeal", "glottal"}},
	{name: "consonant_sounds_like", values: []string{empty, "r", "l", "g"}},
	{name: "phoneme_length", ordered: true, values: []string{empty,
		"half-long", "normal", "long"}},
	{name: "break_type", values: []string{empty, "syllable", "word", "minor", "major"}},
}

// Width is the number of slots in a feature vector.
var Width int

// spans maps column names onto their slot ranges.
var spans map[string][2]int

func init() {
	spans = make(map[string][2]int, len(columns))
	for _, col := range columns {
		start := Width
		if col.ordered {
			Width++
		} else {
			Width += len(col.values)
		}
		spans[col.name] = [2]int{start, Width}
	}
}

// Span returns the slot range [start,end) a named column occupies.
// Distance weighting in the accent package addresses columns this way.
func Span(name string) ([2]int, bool) {
	s, ok := spans[name]
	return s, ok
}

// featureSet is a sparse symbol description, column name to value.
type featureSet map[string]string

func (fs featureSet) vector() (Vector, error) {
	vec := make(Vector, 0, Width)
	for _, col := range columns {
		value := fs[col.name]
		idx := -1
		for i, v := range col.values {
			if v == value {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("feature %s: unencodable value %q", col.name, value)
		}
		if col.ordered {
			vec = append(vec, float64(idx)/float64(len(col.values)))
		} else {
			for i := range col.values {
				if i == idx {
					vec = append(vec, 1)
				} else {
					vec = append(vec, 0)
				}
			}
		}
	}
	return vec, nil
}

func (v Vector) features() (featureSet, error) {
	if len(v) != Width {
		return nil, fmt.Errorf("feature vector has %d slots, want %d", len(v), Width)
	}
	fs := make(featureSet, len(columns))
	pos := 0
	for _, col := range columns {
		if col.ordered {
			idx := int(v[pos]*float64(len(col.values)) + 0.5)
			if idx < 0 || idx >= len(col.values) {
				return nil, fmt.Errorf("feature %s: value %v out of range", col.name, v[pos])
			}
			fs[col.name] = col.values[idx]
			pos++
			continue
		}
		idx := -1
		for i := range col.values {
			if v[pos+i] == 1 {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("feature %s: no value set", col.name)
		}
		fs[col.name] = col.values[idx]
		pos += len(col.values)
	}
	return fs, nil
}

// ToVector encodes a symbol as a feature vector.
func ToVector(sym Symbol) (Vector, error) {
	fs := featureSet{}
	switch {
	case sym.Vowel != nil:
		v := sym.Vowel
		fs["symbol_type"] = "phoneme"
		fs["phoneme_type"] = "vowel"
		fs["vowel_height"] = v.Height.String()
		fs["vowel_place"] = v.Placement.String()
		if v.Rounded {
			fs["vowel_rounded"] = "rounded"
		} else {
			fs["vowel_rounded"] = "unrounded"
		}
		fs["vowel_stress"] = v.Stress.String()
		fs["phoneme_length"] = v.Length.String()
		if v.Nasalized {
			fs["diacritic"] = "nasalized"
		}
	case sym.Consonant != nil:
		c := sym.Consonant
		fs["symbol_type"] = "phoneme"
		fs["phoneme_type"] = "consonant"
		if c.Voiced {
			fs["consonant_voiced"] = "voiced"
		} else {
			fs["consonant_voiced"] = "voiceless"
		}
		fs["consonant_type"] = c.Type.String()
		fs["consonant_place"] = c.Place.String()
		fs["consonant_sounds_like"] = c.SoundsLike
		fs["phoneme_length"] = c.Length.String()
		if c.Velarized {
			fs["diacritic"] = "velarized"
		}
	case sym.Schwa != nil:
		fs["symbol_type"] = "phoneme"
		fs["phoneme_type"] = "schwa"
		fs["phoneme_length"] = sym.Schwa.Length.String()
		if sym.Schwa.RColoured {
			fs["consonant_sounds_like"] = "r"
		}
	case sym.Break != nil:
		fs["symbol_type"] = "break"
		fs["break_type"] = sym.Break.String()
	default:
		return nil, fmt.Errorf("empty symbol")
	}
	return fs.vector()
}

// FromVector decodes a feature vector back into a symbol, matching
// against the vowel, consonant and schwa tables.
func FromVector(vec Vector) (Symbol, error) {
	fs, err := vec.features()
	if err != nil {
		return Symbol{}, err
	}
	switch fs["symbol_type"] {
	case "break":
		for _, kind := range []ipa.BreakKind{ipa.SyllableBreak, ipa.WordBreak,
			ipa.MinorBreak, ipa.MajorBreak} {
			if kind.String() == fs["break_type"] {
				k := kind
				return Symbol{Break: &k}, nil
			}
		}
		return Symbol{}, fmt.Errorf("unknown break type %q", fs["break_type"])
	case "phoneme":
		return phonemeFromFeatures(fs)
	}
	return Symbol{}, fmt.Errorf("unknown symbol type %q", fs["symbol_type"])
}

func phonemeFromFeatures(fs featureSet) (Symbol, error) {
	length := ipa.LengthNormal
	switch fs["phoneme_length"] {
	case "half-long":
		length = ipa.LengthHalf
	case "long":
		length = ipa.LengthLong
	}
	// Map iteration order is random; when several table entries share
	// the same features, pick the lexicographically first spelling.
	switch fs["phoneme_type"] {
	case "vowel":
		nasalized := fs["diacritic"] == "nasalized"
		rounded := fs["vowel_rounded"] == "rounded"
		var match *ipa.Vowel
		for _, v := range ipa.Vowels() {
			if v.AliasOf != "" {
				continue
			}
			if v.Height.String() == fs["vowel_height"] &&
				v.Placement.String() == fs["vowel_place"] &&
				v.Rounded == rounded && v.Nasalized == nasalized {
				if match == nil || v.IPA < match.IPA {
					v := v
					match = &v
				}
			}
		}
		if match == nil {
			return Symbol{}, fmt.Errorf("no vowel with features %v", fs)
		}
		switch fs["vowel_stress"] {
		case "primary":
			match.Stress = ipa.Primary
		case "secondary":
			match.Stress = ipa.Secondary
		}
		match.Length = length
		return Symbol{Vowel: match}, nil
	case "consonant":
		voiced := fs["consonant_voiced"] == "voiced"
		velarized := fs["diacritic"] == "velarized"
		var match *ipa.Consonant
		for _, c := range ipa.Consonants() {
			if c.AliasOf != "" {
				continue
			}
			if c.Type.String() == fs["consonant_type"] &&
				c.Place.String() == fs["consonant_place"] &&
				c.Voiced == voiced && c.Velarized == velarized {
				if match == nil || c.IPA < match.IPA {
					c := c
					match = &c
				}
			}
		}
		if match == nil {
			return Symbol{}, fmt.Errorf("no consonant with features %v", fs)
		}
		match.Length = length
		return Symbol{Consonant: match}, nil
	case "schwa":
		rColoured := fs["consonant_sounds_like"] == "r"
		var match *ipa.Schwa
		for _, s := range ipa.Schwas() {
			if s.AliasOf != "" {
				continue
			}
			if s.RColoured == rColoured {
				if match == nil || s.IPA < match.IPA {
					s := s
					match = &s
				}
			}
		}
		if match == nil {
			return Symbol{}, fmt.Errorf("no schwa with features %v", fs)
		}
		match.Length = length
		return Symbol{Schwa: match}, nil
	}
	return Symbol{}, fmt.Errorf("unknown phoneme type %q", fs["phoneme_type"])
}
