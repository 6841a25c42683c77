package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Snaipe/meson-check/cdecl"
	"github.com/Snaipe/meson-check/check"
	"github.com/Snaipe/meson-check/toolchain"
)

func newRunCmd() *cobra.Command {
	var compiler string
	var output string

	cmd := &cobra.Command{
		Use:   "run <manifest>",
		Short: "Run all checks from a TOML manifest",
		Long: `Run all checks from a TOML manifest and write a config header
with a #define for every positive outcome.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := check.LoadManifest(args[0])
			if err != nil {
				return err
			}

			lang := cdecl.LanguageC
			if manifest.Language != "" {
				lang, err = cdecl.ParseLanguage(manifest.Language)
				if err != nil {
					return err
				}
			}

			cc := toolchain.New(compiler)
			cc.CXX = lang == cdecl.LanguageCPP
			checker := check.New(cc,
				check.WithLanguage(lang),
				check.WithArgs(manifest.Args...))

			summary, err := manifest.Run(checker)
			if err != nil {
				return err
			}
			fmt.Printf("%d of %d checks passed\n", summary.Passed, summary.Total)

			path := output
			if path == "" {
				path = manifest.Output
			}
			if path != "" {
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("create config header: %w", err)
				}
				defer f.Close()
				if err := checker.Config().WriteHeader(f); err != nil {
					return fmt.Errorf("write config header: %w", err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&compiler, "compiler", "cc", "compiler driver to invoke")
	cmd.Flags().StringVarP(&output, "output", "o", "", "config header path (overrides the manifest)")
	return cmd
}
