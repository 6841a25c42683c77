package main

import (
	"github.com/spf13/cobra"

	"github.com/Snaipe/meson-check/cdecl"
	"github.com/Snaipe/meson-check/check"
	"github.com/Snaipe/meson-check/toolchain"
)

// checkFlags are the flags shared by the one-shot check commands.
type checkFlags struct {
	compiler string
	language string
	args     []string
	variable string
	required bool
}

func (f *checkFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.compiler, "compiler", "cc", "compiler driver to invoke")
	cmd.Flags().StringVar(&f.language, "language", "c", "source language (c or cpp)")
	cmd.Flags().StringArrayVar(&f.args, "arg", nil, "extra compiler argument (repeatable)")
	cmd.Flags().StringVar(&f.variable, "variable", "", "config variable to define on success")
	cmd.Flags().BoolVar(&f.required, "required", false, "fail when the check is negative")
}

func (f *checkFlags) newChecker() (*check.Checker, error) {
	lang, err := cdecl.ParseLanguage(f.language)
	if err != nil {
		return nil, err
	}
	cc := toolchain.New(f.compiler)
	cc.CXX = lang == cdecl.LanguageCPP
	return check.New(cc, check.WithLanguage(lang), check.WithArgs(f.args...)), nil
}

func (f *checkFlags) options() check.Options {
	return check.Options{
		Variable: f.variable,
		Required: f.required,
	}
}
