package phone

import (
	"errors"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/testconfig"

	"github.com/glottis/ipa"
)

func TestTokenizeWord(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	phones, err := Tokenize("ˈjɛs|ˈt͡ʃuːz")
	if err != nil {
		t.Fatalf("tokenize returned error: %v", err)
	}
	want := []string{"ˈj", "ɛ", "s", "|", "ˈt͡ʃ", "uː", "z"}
	got := make([]string, len(phones))
	for i, p := range phones {
		got[i] = p.Text
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("phones = %v, want %v", got, want)
	}
}

func TestTokenizeStressPrefixesFollowingPhone(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	phones, err := Tokenize("ˌhɛˈloʊ")
	if err != nil {
		t.Fatalf("tokenize returned error: %v", err)
	}
	if phones[0].Stress != ipa.Secondary {
		t.Errorf("phone 0 stress = %v, want secondary", phones[0].Stress)
	}
	if phones[2].Stress != ipa.Primary {
		t.Errorf("phone 2 stress = %v, want primary", phones[2].Stress)
	}
	if phones[1].Stress != ipa.NoStress {
		t.Errorf("phone 1 stress = %v, want none", phones[1].Stress)
	}
}

func TestTokenizeTieJoinsLetters(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	phones, err := Tokenize("t͡ʃa")
	if err != nil {
		t.Fatalf("tokenize returned error: %v", err)
	}
	if len(phones) != 2 {
		t.Fatalf("got %d phones, want 2", len(phones))
	}
	if phones[0].Letters != "t͡ʃ" {
		t.Errorf("phone 0 letters = %q, want %q", phones[0].Letters, "t͡ʃ")
	}
}

func TestTokenizeDiacriticAttachesToPhone(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	phones, err := Tokenize("ɑ̃")
	if err != nil {
		t.Fatalf("tokenize returned error: %v", err)
	}
	if len(phones) != 1 {
		t.Fatalf("got %d phones, want 1", len(phones))
	}
	if !phones[0].IsNasal() {
		t.Errorf("phone %q not recognized as nasalized", phones[0].Text)
	}
	if phones[0].Letters != "ɑ" {
		t.Errorf("letters = %q, want %q", phones[0].Letters, "ɑ")
	}
}

func TestTokenizeBareDiacritic(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	_, err := Tokenize("̃a")
	var malformed ipa.MalformedInputError
	if !errors.As(err, &malformed) {
		t.Fatalf("err = %v, want MalformedInputError", err)
	}
	if malformed.Offset != 0 {
		t.Errorf("offset = %d, want 0", malformed.Offset)
	}
}

func TestTokenizeDanglingStress(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	_, err := Tokenize("aˈ")
	var malformed ipa.MalformedInputError
	if !errors.As(err, &malformed) {
		t.Fatalf("err = %v, want MalformedInputError", err)
	}
}

func TestTokenizeDanglingAccent(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	_, err := Tokenize(ipa.AccentAcute)
	var malformed ipa.MalformedInputError
	if !errors.As(err, &malformed) {
		t.Fatalf("err = %v, want MalformedInputError", err)
	}
	if malformed.Symbol != ipa.AccentAcute {
		t.Errorf("Symbol = %q, want the accent mark", malformed.Symbol)
	}
}

func TestTokenizeBreaksAndWhitespace(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	phones, err := Tokenize("a b‖c")
	if err != nil {
		t.Fatalf("tokenize returned error: %v", err)
	}
	want := []string{"a", "#", "b", "‖", "c"}
	got := make([]string, len(phones))
	for i, p := range phones {
		got[i] = p.Text
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("phones = %v, want %v", got, want)
	}
	if phones[1].BreakKind != ipa.WordBreak {
		t.Errorf("break kind = %v, want word break", phones[1].BreakKind)
	}
	if phones[3].BreakKind != ipa.MajorBreak {
		t.Errorf("break kind = %v, want major break", phones[3].BreakKind)
	}
}

func TestTokenizeIntonation(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	phones, err := Tokenize("a↗")
	if err != nil {
		t.Fatalf("tokenize returned error: %v", err)
	}
	if len(phones) != 2 || phones[1].Kind != Intonation {
		t.Errorf("phones = %v, want sound + intonation", phones)
	}
}

func TestTokenizeTones(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	phones, err := Tokenize("ma˥˩")
	if err != nil {
		t.Fatalf("tokenize returned error: %v", err)
	}
	last := phones[len(phones)-1]
	if last.Tone != "˥˩" {
		t.Errorf("tone = %q, want %q", last.Tone, "˥˩")
	}
	if last.WithoutTones().Text != "a" {
		t.Errorf("without tones = %q, want %q", last.WithoutTones().Text, "a")
	}
}

func TestTokenizeBracketsIgnored(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	phones, err := Tokenize("/aʊ/")
	if err != nil {
		t.Fatalf("tokenize returned error: %v", err)
	}
	want := []string{"a", "ʊ"}
	got := make([]string, len(phones))
	for i, p := range phones {
		got[i] = p.Text
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("phones = %v, want %v", got, want)
	}
}

func TestTokenizeLength(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	phones, err := Tokenize("aːeˑ")
	if err != nil {
		t.Fatalf("tokenize returned error: %v", err)
	}
	if phones[0].Length != ipa.LengthLong {
		t.Errorf("phone 0 length = %v, want long", phones[0].Length)
	}
	if phones[1].Length != ipa.LengthHalf {
		t.Errorf("phone 1 length = %v, want half-long", phones[1].Length)
	}
}

func TestScannerRestartable(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	scanner := NewScanner()
	var runs [2][]string
	for i := 0; i < 2; i++ {
		scanner.Init("ˈjɛs")
		for scanner.Next() {
			runs[i] = append(runs[i], scanner.Phone().Text)
		}
		if scanner.Err() != nil {
			t.Fatalf("run %d: %v", i, scanner.Err())
		}
	}
	if !reflect.DeepEqual(runs[0], runs[1]) {
		t.Errorf("runs differ: %v vs %v", runs[0], runs[1])
	}
}

func TestTokenizeRoundTrip(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	input := ipa.NFC("ˈt͡ʃuːz")
	pron, err := ParsePronunciation(input)
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if pron.String() != input {
		t.Errorf("round trip = %q, want %q", pron.String(), input)
	}
}
