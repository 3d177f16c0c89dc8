package notation

import (
	"errors"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/testconfig"

	"github.com/glottis/ipa"
	"github.com/glottis/ipa/phone"
)

func TestEspeakScenario(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	phones, err := phone.Tokenize("mʊmˈbaɪ") // Mumbai
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	out, err := ToNotation(phones, "espeak")
	if err != nil {
		t.Fatalf("ToNotation returned error: %v", err)
	}
	if out != "mUm'baI" {
		t.Errorf("espeak = %q, want %q", out, "mUm'baI")
	}
	back, err := FromNotation(out, "espeak")
	if err != nil {
		t.Fatalf("FromNotation returned error: %v", err)
	}
	want := []string{"m", "ʊ", "m", "ˈb", "a", "ɪ"}
	got := make([]string, len(back))
	for i, p := range back {
		got[i] = p.Text
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip phones = %v, want %v", got, want)
	}
}

// Round-trip property: every spelling that claims its token in the
// reverse direction comes back unchanged.
func TestRoundTripPerSymbol(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	for _, name := range Names() {
		tab, _ := ForName(name)
		for _, pair := range tab.Pairs() {
			if pair.Token == "" {
				continue
			}
			if owner, err := tab.ToIPA(pair.Token); err != nil || owner != ipa.NFC(pair.IPA) {
				continue // token claimed by an earlier spelling
			}
			out, err := tab.FromIPA(pair.IPA)
			if err != nil {
				t.Errorf("%s: FromIPA(%q): %v", name, pair.IPA, err)
				continue
			}
			back, err := tab.ToIPA(out)
			if err != nil {
				t.Errorf("%s: ToIPA(%q): %v", name, out, err)
				continue
			}
			if back != ipa.NFC(pair.IPA) {
				t.Errorf("%s: %q -> %q -> %q", name, pair.IPA, out, back)
			}
		}
	}
}

func TestEspeakBreaks(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	tab, _ := ForName("espeak")
	out, err := tab.FromIPA("a|b‖c")
	if err != nil {
		t.Fatalf("FromIPA returned error: %v", err)
	}
	if out != "a_::b_::_::c" {
		t.Errorf("espeak = %q", out)
	}
}

func TestSampaStressAndLength(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	tab, _ := ForName("sampa")
	out, err := tab.FromIPA("ˈt͡ʃuːz")
	if err != nil {
		t.Fatalf("FromIPA returned error: %v", err)
	}
	if out != "\"tSu:z" {
		t.Errorf("sampa = %q, want %q", out, "\"tSu:z")
	}
}

func TestUnmappableSymbol(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	tab, _ := ForName("espeak")
	_, err := tab.FromIPA("a˥")
	var unmappable ipa.UnmappableSymbolError
	if !errors.As(err, &unmappable) {
		t.Fatalf("err = %v, want UnmappableSymbolError", err)
	}
	if unmappable.Offset != 1 || unmappable.Notation != "espeak" {
		t.Errorf("error details = %+v", unmappable)
	}
}

func TestUnmappableToken(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	tab, _ := ForName("sampa")
	_, err := tab.ToIPA("a$")
	var unmappable ipa.UnmappableSymbolError
	if !errors.As(err, &unmappable) {
		t.Fatalf("err = %v, want UnmappableSymbolError", err)
	}
	if unmappable.Symbol != "$" {
		t.Errorf("symbol = %q, want $", unmappable.Symbol)
	}
}

func TestForName(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	if _, ok := ForName("ESPEAK"); !ok {
		t.Errorf("name lookup should be case-insensitive")
	}
	if _, ok := ForName("arpabet"); ok {
		t.Errorf("unknown notation found")
	}
}
