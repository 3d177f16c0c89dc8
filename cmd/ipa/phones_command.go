package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glottis/ipa/phone"
)

func newPhonesCommand() *cobra.Command {
	var separator string
	cmd := &cobra.Command{
		Use:   "phones [pronunciation...]",
		Short: "Tokenize IPA pronunciations into phones (read from stdin if not given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return inputLines(cmd, args, func(line string) error {
				pron, err := phone.ParsePronunciation(line)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(pron.Texts(), separator))
				return err
			})
		},
	}
	cmd.Flags().StringVar(&separator, "separator", " ", "Separator between phones in output")
	return cmd
}
