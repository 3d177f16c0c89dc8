package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glottis/ipa"
	"github.com/glottis/ipa/phone"
)

// inputLines hands every non-empty input line to fn: the positional
// arguments if any were given, otherwise lines read from stdin.
func inputLines(cmd *cobra.Command, args []string, fn func(line string) error) error {
	if len(args) > 0 {
		for _, arg := range args {
			if arg = strings.TrimSpace(arg); arg == "" {
				continue
			}
			if err := fn(arg); err != nil {
				return err
			}
		}
		return nil
	}
	if isTerminal(os.Stdin) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Reading from stdin...")
	}
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// writeRecord prints one JSON record per line to the command's stdout.
func writeRecord(cmd *cobra.Command, v interface{}) error {
	return json.NewEncoder(cmd.OutOrStdout()).Encode(v)
}

type phoneRecord struct {
	Text        string   `json:"text"`
	Letters     string   `json:"letters,omitempty"`
	Description string   `json:"description"`
	Stress      string   `json:"stress,omitempty"`
	Length      string   `json:"length,omitempty"`
	Diacritics  []string `json:"diacritics,omitempty"`
	Tone        string   `json:"tone,omitempty"`
	Espeak      string   `json:"espeak,omitempty"`
	Sampa       string   `json:"sampa,omitempty"`
}

func makePhoneRecord(p phone.Phone) phoneRecord {
	rec := phoneRecord{
		Text:        p.Text,
		Letters:     p.Letters,
		Description: p.Describe(),
		Diacritics:  p.Diacritics,
		Tone:        p.Tone,
	}
	if p.Stress != ipa.NoStress {
		rec.Stress = p.Stress.String()
	}
	if p.Length != ipa.LengthNormal {
		rec.Length = p.Length.String()
	}
	return rec
}
