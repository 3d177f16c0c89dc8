package accent

import (
	"math"
	"sort"
	"sync"

	"github.com/glottis/ipa"
	"github.com/glottis/ipa/features"
)

// Feature weights for the closest-symbol ranking. Columns not listed
// weigh 1.
var closestWeights = map[string]float64{
	"vowel_place":           0.5,
	"vowel_height":          1,
	"vowel_rounded":         0.01,
	"consonant_place":       0.15,
	"consonant_voiced":      0.5,
	"consonant_sounds_like": 0.5,
}

var closestOnce sync.Once
var closestMap map[string][]string

// Closest returns all other symbols of the vowel, consonant and schwa
// tables ordered by increasing feature distance from the given symbol,
// or nil if the symbol is not in the tables. The ranking is computed
// once on first use.
func Closest(symbol string) []string {
	closestOnce.Do(setupClosest)
	return closestMap[ipa.NFC(symbol)]
}

func setupClosest() {
	weights := make([]float64, features.Width)
	for i := range weights {
		weights[i] = 1
	}
	for name, w := range closestWeights {
		span, ok := features.Span(name)
		if !ok {
			continue
		}
		for i := span[0]; i < span[1]; i++ {
			weights[i] = w
		}
	}

	var symbols []string
	vectors := make(map[string]features.Vector)
	add := func(text string, sym features.Symbol) {
		if _, ok := vectors[text]; ok {
			return
		}
		vec, err := features.ToVector(sym)
		if err != nil {
			T().Infof("accent: cannot encode %q: %v", text, err)
			return
		}
		symbols = append(symbols, text)
		vectors[text] = vec
	}
	for text, v := range ipa.Vowels() {
		if v.AliasOf != "" {
			continue
		}
		v := v
		add(text, features.Symbol{Vowel: &v})
	}
	for text, c := range ipa.Consonants() {
		if c.AliasOf != "" {
			continue
		}
		c := c
		add(text, features.Symbol{Consonant: &c})
	}
	for text, s := range ipa.Schwas() {
		if s.AliasOf != "" {
			continue
		}
		s := s
		add(text, features.Symbol{Schwa: &s})
	}
	sort.Strings(symbols) // map order is random, ranking must not be

	closestMap = make(map[string][]string, len(symbols))
	for _, from := range symbols {
		others := make([]string, 0, len(symbols)-1)
		for _, to := range symbols {
			if to != from {
				others = append(others, to)
			}
		}
		fromVec := vectors[from]
		sort.SliceStable(others, func(i, j int) bool {
			return weightedDistance(fromVec, vectors[others[i]], weights) <
				weightedDistance(fromVec, vectors[others[j]], weights)
		})
		closestMap[from] = others
	}
	T().Debugf("accent: ranked %d symbols by feature distance", len(symbols))
}

// weightedDistance is a weighted Euclidean distance.
func weightedDistance(a, b features.Vector, w []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += w[i] * d * d
	}
	return math.Sqrt(sum)
}
