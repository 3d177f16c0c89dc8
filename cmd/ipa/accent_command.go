package main

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/glottis/ipa/accent"
	"github.com/glottis/ipa/phoneme"
)

type guessRecord struct {
	Phoneme string   `json:"phoneme"`
	Guesses []string `json:"guesses"`
}

func newAccentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "accent <from-lang> <to-lang> [phoneme...]",
		Short: "Guess target-language phonemes for foreign phonemes",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 2 {
				to, err := phoneme.FromLanguage(args[1])
				if err != nil {
					return err
				}
				for _, from := range args[2:] {
					guesses, err := accent.GuessPhoneme(from, to)
					if err != nil {
						return err
					}
					if err := writeRecord(cmd, guessRecord{Phoneme: from, Guesses: guesses}); err != nil {
						return err
					}
				}
				return nil
			}
			m, err := accent.GuessMap(args[0], args[1])
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(m))
			for k := range m {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				if err := writeRecord(cmd, guessRecord{Phoneme: k, Guesses: m[k]}); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newClosestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "closest [symbol...]",
		Short: "Rank known IPA symbols by phonetic distance to a symbol",
		RunE: func(cmd *cobra.Command, args []string) error {
			return inputLines(cmd, args, func(line string) error {
				return writeRecord(cmd, guessRecord{Phoneme: line, Guesses: accent.Closest(line)})
			})
		},
	}
}
