package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestConvertIPAToEspeak(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	conv, err := newConverter("ipa", "espeak", " ")
	if err != nil {
		t.Fatalf("newConverter: %v", err)
	}
	out, err := conv.convert("mʊmˈbaɪ")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if out != "[[mUm'baI]]" {
		t.Errorf("convert = %q", out)
	}
}

func TestConvertEspeakToSampa(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	conv, err := newConverter("espeak", "sampa", " ")
	if err != nil {
		t.Fatalf("newConverter: %v", err)
	}
	// espeak's tS token belongs to the retroflex affricate ʈ͡ʂ, which
	// sampa spells ts`.
	out, err := conv.convert("'tSu:z")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if out != "\"ts`u:z" {
		t.Errorf("convert = %q", out)
	}
}

func TestConvertIPAToLanguage(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	conv, err := newConverter("ipa", "en-us", " ")
	if err != nil {
		t.Fatalf("newConverter: %v", err)
	}
	out, err := conv.convert("dʒʌst")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if out != "d͡ʒ ʌ s t" {
		t.Errorf("convert = %q", out)
	}
}

func TestConvertUnknownLanguageFails(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	if _, err := newConverter("ipa", "tlh", " "); err == nil {
		t.Error("expected error for unsupported destination")
	}
}

func TestPrintLanguageFilter(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"print", "--language", "de"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("print: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) == 0 {
		t.Fatal("no output")
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "{") {
			t.Errorf("not a JSON record: %q", line)
		}
	}
	if !strings.Contains(out.String(), "\"ç\"") {
		t.Errorf("German inventory should list the ç fricative:\n%s", out.String())
	}
	if strings.Contains(out.String(), "\"ð\"") {
		t.Errorf("ð is not a German phoneme:\n%s", out.String())
	}
}

func TestPhonesSeparator(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"phones", "--separator", "_", "ˈjɛs"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("phones: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "ˈj_ɛ_s" {
		t.Errorf("phones output = %q", got)
	}
}
