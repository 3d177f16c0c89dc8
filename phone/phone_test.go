package phone

import (
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/testconfig"

	"github.com/glottis/ipa"
)

func TestNewSinglePhone(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	p, err := New("ˈãː")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if p.Stress != ipa.Primary || !p.IsNasal() || p.Length != ipa.LengthLong {
		t.Errorf("phone features wrong: %+v", p)
	}
	if _, err := New("ab"); err == nil {
		t.Errorf("New accepted multi-phone input")
	}
}

func TestPhoneVowelFeatures(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	p, err := New("ˈiː")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	v := p.Vowel()
	if v == nil {
		t.Fatal("phone not recognized as vowel")
	}
	if v.Height != ipa.Close || v.Placement != ipa.Front || v.Rounded {
		t.Errorf("vowel features = %+v", v)
	}
	if v.Stress != ipa.Primary || v.Length != ipa.LengthLong {
		t.Errorf("vowel did not inherit phone stress/length: %+v", v)
	}
}

func TestPhoneConsonantFeatures(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	p, err := New("t͡ʃ")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	c := p.Consonant()
	if c == nil {
		t.Fatal("phone not recognized as consonant")
	}
	if c.Type != ipa.Affricate || c.Place != ipa.PostAlveolar || c.Voiced {
		t.Errorf("consonant features = %+v", c)
	}
}

func TestPhoneSchwa(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	p, err := New("ɚ")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	s := p.Schwa()
	if s == nil {
		t.Fatal("phone not recognized as schwa")
	}
	if !s.RColoured {
		t.Errorf("schwa not r-coloured: %+v", s)
	}
}

func TestPhoneDiphthong(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	p, err := New("a͡ʊ")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	d := p.Diphthong()
	if d == nil {
		t.Fatal("phone not recognized as diphthong")
	}
	if d.Vowel1.IPA != "a" || d.Vowel2.IPA != "ʊ" {
		t.Errorf("diphthong vowels = %q %q", d.Vowel1.IPA, d.Vowel2.IPA)
	}
}

func TestPhoneDescribe(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	cases := []struct {
		phone string
		want  string
	}{
		{"n", "voiced alveolar nasal"},
		{"ɔː", "long open-mid back rounded vowel"},
		{"‖", "major break"},
	}
	for _, c := range cases {
		p, err := New(c.phone)
		if err != nil {
			t.Fatalf("New(%q) returned error: %v", c.phone, err)
		}
		if got := p.Describe(); got != c.want {
			t.Errorf("Describe(%q) = %q, want %q", c.phone, got, c.want)
		}
	}
}

func TestPhoneWithoutStress(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	p, err := New("ˈa")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	q := p.WithoutStress()
	if q.Text != "a" || q.Stress != ipa.NoStress {
		t.Errorf("WithoutStress = %+v", q)
	}
	if p.Stress != ipa.Primary {
		t.Errorf("WithoutStress mutated receiver")
	}
}

func TestPronunciationUtterance(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	// "Yes, choose IPA."
	pron, err := ParsePronunciation("↗ˈjɛs|ˈt͡ʃuːz#↘aɪpiːeɪ‖")
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	sounds := pron.WithoutStress().Sounds()
	want := []string{"j", "ɛ", "s", "t͡ʃ", "uː", "z", "a", "ɪ", "p", "iː", "e", "ɪ"}
	got := make([]string, len(sounds))
	for i, p := range sounds {
		got[i] = p.Text
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sounds = %v, want %v", got, want)
	}
	all := pron.Texts()
	if all[0] != ipa.IntonationRising || all[len(all)-1] != ipa.BreakMajor {
		t.Errorf("utterance boundaries = %q … %q", all[0], all[len(all)-1])
	}
}

func TestPronunciationSounds(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	pron, err := ParsePronunciation("ˈjɛs|ˈt͡ʃuːz")
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if len(pron.Phones()) != 7 {
		t.Errorf("got %d phones, want 7", len(pron.Phones()))
	}
	if len(pron.Sounds()) != 6 {
		t.Errorf("got %d sounds, want 6", len(pron.Sounds()))
	}
}
