package phoneme

import (
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func texts(phonemes []Phoneme) []string {
	out := make([]string, len(phonemes))
	for i, p := range phonemes {
		out[i] = p.Text
	}
	return out
}

func TestSplitSentence(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	tab, err := FromLanguage("en-us")
	if err != nil {
		t.Fatalf("loading table: %v", err)
	}
	// "Just a cow."
	phonemes, err := tab.Split("/dʒʌst ə kˈaʊ/", GroupOptions{KeepStress: true})
	if err != nil {
		t.Fatalf("split returned error: %v", err)
	}
	want := []string{"d͡ʒ", "ʌ", "s", "t", "ə", "k", "ˈaʊ"}
	if got := texts(phonemes); !reflect.DeepEqual(got, want) {
		t.Errorf("phonemes = %v, want %v", got, want)
	}
}

func TestGroupVariantFolding(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	tab, err := FromText(strings.NewReader(`
d͡ʒ jar dʒ ʒ
ʌ cut
s sit
t tie
`), "test")
	if err != nil {
		t.Fatalf("loading table: %v", err)
	}
	phonemes, err := tab.Split("dʒʌst", GroupOptions{})
	if err != nil {
		t.Fatalf("split returned error: %v", err)
	}
	want := []string{"d͡ʒ", "ʌ", "s", "t"}
	if got := texts(phonemes); !reflect.DeepEqual(got, want) {
		t.Errorf("phonemes = %v, want %v", got, want)
	}
}

func TestGroupLongestMatchWins(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	tab, err := FromText(strings.NewReader(`
r red ʁ ɹ ʀ
rr burr ʁʁ
a cat
`), "test")
	if err != nil {
		t.Fatalf("loading table: %v", err)
	}
	phonemes, err := tab.Split("aʁʁa", GroupOptions{})
	if err != nil {
		t.Fatalf("split returned error: %v", err)
	}
	want := []string{"a", "rr", "a"}
	if got := texts(phonemes); !reflect.DeepEqual(got, want) {
		t.Errorf("phonemes = %v, want %v", got, want)
	}
}

func TestGroupIdempotent(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	tab, err := FromLanguage("en-us")
	if err != nil {
		t.Fatalf("loading table: %v", err)
	}
	once, err := tab.Split("dʒʌst", GroupOptions{})
	if err != nil {
		t.Fatalf("split returned error: %v", err)
	}
	var canon strings.Builder
	for _, p := range once {
		canon.WriteString(p.Text)
	}
	twice, err := tab.Split(canon.String(), GroupOptions{})
	if err != nil {
		t.Fatalf("second split returned error: %v", err)
	}
	if !reflect.DeepEqual(texts(once), texts(twice)) {
		t.Errorf("grouping not idempotent: %v vs %v", texts(once), texts(twice))
	}
}

func TestGroupUnmatchedPassesThrough(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	tab, err := FromText(strings.NewReader("a cat\n"), "test")
	if err != nil {
		t.Fatalf("loading table: %v", err)
	}
	phonemes, err := tab.Split("aǂa", GroupOptions{})
	if err != nil {
		t.Fatalf("split returned error: %v", err)
	}
	want := []string{"a", "ǂ", "a"}
	if got := texts(phonemes); !reflect.DeepEqual(got, want) {
		t.Errorf("phonemes = %v, want %v", got, want)
	}
}

func TestGroupSpanNeverCrossesBreak(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	tab, err := FromText(strings.NewReader(`
aɪ eye
a cat
ɪ sit
`), "test")
	if err != nil {
		t.Fatalf("loading table: %v", err)
	}
	phonemes, err := tab.Split("a ɪ", GroupOptions{})
	if err != nil {
		t.Fatalf("split returned error: %v", err)
	}
	want := []string{"a", "ɪ"}
	if got := texts(phonemes); !reflect.DeepEqual(got, want) {
		t.Errorf("phonemes = %v, want %v", got, want)
	}
}
