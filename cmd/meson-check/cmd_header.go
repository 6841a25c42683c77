package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newHeaderCmd() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "header <name>",
		Short: "Check that a header can be included",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			checker, err := flags.newChecker()
			if err != nil {
				return err
			}
			ok, err := checker.Header(args[0], flags.options())
			if err != nil {
				return err
			}
			if !ok {
				os.Exit(1)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
