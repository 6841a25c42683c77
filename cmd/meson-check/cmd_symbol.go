package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newSymbolCmd() *cobra.Command {
	flags := &checkFlags{}
	var libraries []string

	cmd := &cobra.Command{
		Use:   "symbol <name>",
		Short: "Check that a symbol exists and can be linked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			checker, err := flags.newChecker()
			if err != nil {
				return err
			}
			opts := flags.options()
			opts.Libraries = libraries
			ok, err := checker.Symbol(args[0], opts)
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
	cmd.Flags().StringArrayVarP(&libraries, "library", "l", nil, "library to link against (repeatable)")
	return cmd
}
