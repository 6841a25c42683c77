package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Snaipe/meson-check/cdecl"
)

func newParseCmd() *cobra.Command {
	var language string
	var showTree bool

	cmd := &cobra.Command{
		Use:   "parse <declaration>",
		Short: "Parse a declaration and show how it would be checked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := cdecl.ParseLanguage(language)
			if err != nil {
				return err
			}
			frontend, err := cdecl.FrontendFor(lang)
			if err != nil {
				return err
			}

			tree, err := frontend.Parse(args[0])
			if err != nil {
				return err
			}

			if showTree {
				fmt.Print(tree.String())
			}

			name, ok := cdecl.ExtractName(tree)
			if !ok {
				return fmt.Errorf("parse tree has no name site")
			}
			fmt.Printf("name: %s\n", name)

			if cdecl.IsBareIdentifier(tree) {
				fmt.Println("kind: bare identifier (existence check only)")
				return nil
			}
			fmt.Println("kind: declaration (prototype check)")
			fmt.Printf("prototype: %s\n", cdecl.Rewrite(tree, name))
			fmt.Printf("probe declaration: %s\n", cdecl.Rewrite(tree, cdecl.ProbeReplacement))
			return nil
		},
	}
	cmd.Flags().StringVar(&language, "language", "c", "source language (c or cpp)")
	cmd.Flags().BoolVar(&showTree, "tree", false, "dump the parse tree")
	return cmd
}
