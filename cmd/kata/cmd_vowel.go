package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/kata/vowel"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newVowelCmd(a *app) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "vowel STRING...",
		Short: "Check whether strings are vowel-balanced",
		Long: `Compares the vowel counts (a, e, i, o, u, any case) of the first and
second half of each string. For odd lengths the center character is ignored.`,
		Example: `  kata vowel hello world
  kata vowel --quiet bookkeeper`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports := make([]vowel.Report, len(args))
			for i, s := range args {
				reports[i] = vowel.Analyze(s)
				a.logger.Debug("vowel balance",
					zap.String("input", s),
					zap.Int("first", reports[i].FirstVowels),
					zap.Int("second", reports[i].SecondVowels),
					zap.Bool("balanced", reports[i].Balanced),
				)
			}

			return a.render(cmd.OutOrStdout(), reports, func(w io.Writer) error {
				for _, r := range reports {
					if quiet {
						fmt.Fprintf(w, "%s=%t\n", r.Input, r.Balanced)

						continue
					}
					fmt.Fprintln(w, r)
					fmt.Fprintln(w, separator)
				}

				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only input=true|false")

	return cmd
}
