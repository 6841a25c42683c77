package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newDeclarationCmd() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "declaration <header> <declaration>",
		Short: "Check that a declaration exists with a given shape",
		Long: `Check that a declaration exists in a header.

A bare identifier only checks that the symbol is visible after
including the header. A full declaration such as
"int printf(const char *, ...)" additionally checks its type by
compiling a probe program against the real declaration.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			checker, err := flags.newChecker()
			if err != nil {
				return err
			}
			result, err := checker.Declaration(args[0], args[1], flags.options())
			if err != nil {
				return err
			}
			if !result.OK {
				os.Exit(1)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
