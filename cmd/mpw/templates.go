package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mpw"
)

func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List password templates and their patterns",
		Long: `Lists every template with its one-letter code and character-class patterns.

CLASSES:
    V vowel, C consonant, v lower vowel, c lower consonant,
    A upper letter, a letter, n digit, o symbol, x any, space`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, tmpl := range mpw.Templates() {
				if _, err := fmt.Fprintf(out, "%s (%s)\n", color.New(color.Bold).Sprint(tmpl), tmpl.Code()); err != nil {
					return err
				}
				for _, p := range tmpl.Patterns() {
					fmt.Fprintf(out, "    %q\n", p)
				}
			}
			return nil
		},
	}
}

// templateCodes lists the accepted template names for flag help
func templateCodes() string {
	names := make([]string, 0, len(mpw.Templates()))
	for _, tmpl := range mpw.Templates() {
		names = append(names, tmpl.String())
	}
	return strings.Join(names, ", ")
}
