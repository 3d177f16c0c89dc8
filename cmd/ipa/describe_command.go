package main

import (
	"github.com/spf13/cobra"

	"github.com/glottis/ipa/phone"
)

func newDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe [phone...]",
		Short: "Describe IPA phones (read from stdin if not given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return inputLines(cmd, args, func(line string) error {
				p, err := phone.New(line)
				if err != nil {
					return err
				}
				return writeRecord(cmd, makePhoneRecord(p))
			})
		},
	}
}
