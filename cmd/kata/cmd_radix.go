package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/kata/radix"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRadixCmd(a *app) *cobra.Command {
	var base int
	cmd := &cobra.Command{
		Use:   "radix STRING...",
		Short: "Validate numerals in a base between 2 and 36",
		Long: `Checks that every symbol of each STRING is a digit of the chosen base.
Digits are 0-9 then A-Z (case-insensitive). Invalid inputs list every
offending character with its value.`,
		Example: `  kata radix --base 2 101 102
  kata radix -b 36 zZ`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("base") {
				base = a.cfg.Radix.DefaultBase
			}
			results := make([]radix.Result, 0, len(args))
			for _, s := range args {
				res, err := radix.Check(s, base)
				if err != nil {
					return err
				}
				a.logger.Debug("radix check",
					zap.String("input", s),
					zap.Int("base", base),
					zap.Bool("valid", res.Valid),
					zap.Int("offenses", len(res.Offenses)),
				)
				results = append(results, res)
			}

			return a.render(cmd.OutOrStdout(), results, func(w io.Writer) error {
				for _, res := range results {
					writeRadixResult(w, res)
					fmt.Fprintln(w, separator)
				}

				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&base, "base", "b", 0, "numeral base, 2..36 (default from config)")

	return cmd
}

// writeRadixResult prints one Result as a text block.
func writeRadixResult(w io.Writer, res radix.Result) {
	verdict := "No"
	if res.Valid {
		verdict = "Yes"
	}
	fmt.Fprintf(w, "Number: '%s'\n", res.Input)
	fmt.Fprintf(w, "Base: %d\n", res.Base)
	fmt.Fprintf(w, "Valid digits for base %d: %s\n", res.Base, res.Digits)
	fmt.Fprintf(w, "Is valid: %s\n", verdict)
	if len(res.Offenses) > 0 {
		parts := make([]string, len(res.Offenses))
		for i, o := range res.Offenses {
			parts[i] = o.String()
		}
		fmt.Fprintf(w, "Invalid characters/digits: %s\n", strings.Join(parts, ", "))
	}
}
