package main

import (
	"fmt"
	"os"
	"strings"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/spf13/cobra"

	"github.com/glottis/ipa/phoneme"
)

func newPhonemesCommand() *cobra.Command {
	var language string
	var phonemesFile string
	var separator string
	var keepStress bool
	var dropTones bool
	cmd := &cobra.Command{
		Use:   "phonemes [pronunciation...]",
		Short: "Group phones into language phonemes (read from stdin if not given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			tab, err := loadPhonemeTable(language, phonemesFile)
			if err != nil {
				return err
			}
			opts := phoneme.GroupOptions{KeepStress: keepStress, DropTones: dropTones}
			return inputLines(cmd, args, func(line string) error {
				phonemes, err := tab.Split(line, opts)
				if err != nil {
					return err
				}
				texts := make([]string, 0, len(phonemes))
				for _, p := range phonemes {
					if p.Text != "" {
						texts = append(texts, p.Text)
					}
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(texts, separator))
				return err
			})
		},
	}
	cmd.Flags().StringVar(&language, "language", "", "Language or language/set (default: OS locale)")
	cmd.Flags().StringVar(&phonemesFile, "phonemes-file", "", "Load the phoneme inventory from a file instead of a language")
	cmd.Flags().StringVar(&separator, "separator", " ", "Separator between phonemes in output")
	cmd.Flags().BoolVar(&keepStress, "keep-stress", false, "Keep stress marks on covering phonemes")
	cmd.Flags().BoolVar(&dropTones, "drop-tones", false, "Ignore tone marks when matching")
	return cmd
}

// loadPhonemeTable resolves the phoneme inventory for the phonemes and
// convert commands: an explicit file wins, then an explicit language,
// then the language of the OS locale.
func loadPhonemeTable(language, file string) (*phoneme.Table, error) {
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("cannot load phoneme inventory: %w", err)
		}
		defer f.Close()
		return phoneme.FromText(f, file)
	}
	if language == "" {
		locale, err := jj.DetectIETF()
		if err != nil {
			return nil, fmt.Errorf("cannot detect OS locale, use --language: %w", err)
		}
		language = locale
	}
	return phoneme.FromLanguage(language)
}
