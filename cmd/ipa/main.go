/*
BSD 3-Clause License

Copyright (c) 2023–24, the glottis/ipa authors

All rights reserved.
*/

// Command ipa inspects and converts IPA pronunciations: it prints the
// known symbol inventory, describes phones, tokenizes pronunciations
// into phones, groups phones into language phonemes, and converts
// between IPA, espeak and X-SAMPA notation.
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var debug bool
	rootCmd := &cobra.Command{
		Use:           "ipa",
		Short:         "Inspect and convert IPA pronunciations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupTracing(debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Print debug traces to stderr")

	rootCmd.AddCommand(newPrintCommand())
	rootCmd.AddCommand(newDescribeCommand())
	rootCmd.AddCommand(newPhonesCommand())
	rootCmd.AddCommand(newPhonemesCommand())
	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newAccentCommand())
	rootCmd.AddCommand(newClosestCommand())

	return rootCmd
}

func setupTracing(debug bool) {
	gtrace.CoreTracer = gologadapter.New()
	level := tracing.LevelInfo
	if debug {
		level = tracing.LevelDebug
	}
	gtrace.CoreTracer.SetTraceLevel(level)
}
