package main

import (
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/glottis/ipa"
	"github.com/glottis/ipa/notation"
	"github.com/glottis/ipa/phoneme"
)

func newPrintCommand() *cobra.Command {
	var language string
	var pretty bool
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print all known IPA phones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrint(cmd, language, pretty)
		},
	}
	cmd.Flags().StringVar(&language, "language", "", "Only print phones of this language or language/set")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Render the listing as a table")
	return cmd
}

type printRecord struct {
	Text        string `json:"text"`
	Description string `json:"description"`
	Espeak      string `json:"espeak"`
	Sampa       string `json:"sampa"`
}

func runPrint(cmd *cobra.Command, language string, pretty bool) error {
	var filter *phoneme.Table
	if language != "" {
		tab, err := phoneme.FromLanguage(language)
		if err != nil {
			return err
		}
		filter = tab
	}

	var symbols []string
	for text := range ipa.Vowels() {
		symbols = append(symbols, text)
	}
	for text := range ipa.Consonants() {
		symbols = append(symbols, text)
	}
	for text := range ipa.Schwas() {
		symbols = append(symbols, text)
	}
	sort.Strings(symbols)

	espeak, _ := notation.ForName("espeak")
	sampa, _ := notation.ForName("sampa")

	var records []printRecord
	for _, symbol := range symbols {
		if filter != nil && !filter.Contains(symbol) {
			continue
		}
		info, err := ipa.Classify(symbol)
		if err != nil {
			return err
		}
		rec := printRecord{Text: symbol, Description: info.Describe()}
		// Symbols without a registered token stay blank.
		rec.Espeak, _ = espeak.FromIPA(symbol)
		rec.Sampa, _ = sampa.FromIPA(symbol)
		records = append(records, rec)
	}

	if pretty {
		return renderPrintTable(cmd, records)
	}
	for _, rec := range records {
		if err := writeRecord(cmd, rec); err != nil {
			return err
		}
	}
	return nil
}

func renderPrintTable(cmd *cobra.Command, records []printRecord) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(cmd.OutOrStdout())
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Symbol", "Description", "espeak", "SAMPA"})
	for _, rec := range records {
		tw.AppendRow(table.Row{rec.Text, rec.Description, rec.Espeak, rec.Sampa})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	tw.Render()
	return nil
}
