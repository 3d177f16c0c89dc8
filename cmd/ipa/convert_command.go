package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glottis/ipa/notation"
	"github.com/glottis/ipa/phoneme"
)

func newConvertCommand() *cobra.Command {
	var separator string
	cmd := &cobra.Command{
		Use:   "convert <src> <dest> [pronunciation...]",
		Short: "Convert pronunciations between IPA, espeak, sampa and language phonemes",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := newConverter(args[0], args[1], separator)
			if err != nil {
				return err
			}
			return inputLines(cmd, args[2:], func(line string) error {
				out, err := conv.convert(line)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&separator, "separator", " ", "Separator between phonemes in output")
	return cmd
}

// converter translates one pronunciation line from a source to a
// destination representation, with IPA as the interlingua.
type converter struct {
	src, dest string
	srcTable  *notation.Table // non-nil for espeak/sampa sources
	destTable *notation.Table // non-nil for espeak/sampa destinations
	srcLang   *phoneme.Table  // non-nil for language sources
	destLang  *phoneme.Table  // non-nil for language destinations
	separator string
}

func newConverter(src, dest, separator string) (*converter, error) {
	conv := &converter{src: src, dest: dest, separator: separator}
	var err error
	if src != "ipa" {
		if tab, ok := notation.ForName(src); ok {
			conv.srcTable = tab
		} else if conv.srcLang, err = phoneme.FromLanguage(src); err != nil {
			return nil, err
		}
	}
	if dest != "ipa" {
		if tab, ok := notation.ForName(dest); ok {
			conv.destTable = tab
		} else if conv.destLang, err = phoneme.FromLanguage(dest); err != nil {
			return nil, err
		}
	}
	return conv, nil
}

func (conv *converter) convert(line string) (string, error) {
	ipaText, err := conv.toIPA(line)
	if err != nil {
		return "", err
	}
	return conv.fromIPA(ipaText)
}

func (conv *converter) toIPA(line string) (string, error) {
	switch {
	case conv.srcTable != nil:
		return conv.srcTable.ToIPA(line)
	case conv.srcLang != nil:
		phonemes, err := conv.srcLang.Split(line, phoneme.GroupOptions{KeepStress: true})
		if err != nil {
			return "", err
		}
		texts := make([]string, len(phonemes))
		for i, p := range phonemes {
			texts[i] = p.Text
		}
		return strings.Join(texts, ""), nil
	}
	return line, nil
}

func (conv *converter) fromIPA(ipaText string) (string, error) {
	switch {
	case conv.destTable != nil:
		out, err := conv.destTable.FromIPA(ipaText)
		if err != nil {
			return "", err
		}
		if conv.dest == "espeak" {
			out = "[[" + out + "]]"
		}
		return out, nil
	case conv.destLang != nil:
		phonemes, err := conv.destLang.Split(ipaText, phoneme.GroupOptions{})
		if err != nil {
			return "", err
		}
		texts := make([]string, 0, len(phonemes))
		for _, p := range phonemes {
			if p.Text != "" {
				texts = append(texts, p.Text)
			}
		}
		return strings.Join(texts, conv.separator), nil
	}
	return ipaText, nil
}
