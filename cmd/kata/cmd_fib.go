package main

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/kata/fibonacci"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errLengthLimit is returned when --length exceeds fibonacci.max_length.
var errLengthLimit = errors.New("length exceeds the configured maximum")

// fibRequest is one parsed generator call.
type fibRequest struct {
	First  string
	Second string
	Length int
	Big    bool
}

// fibResult is what the fib command renders.
type fibResult struct {
	First    string   `yaml:"first"`
	Second   string   `yaml:"second"`
	Length   int      `yaml:"length"`
	Sequence []string `yaml:"sequence"`
}

func newFibCmd(a *app) *cobra.Command {
	var req fibRequest
	cmd := &cobra.Command{
		Use:   "fib",
		Short: "Generate an additive sequence from two seed numbers",
		Long: `Starts from --first and --second and appends the sum of the previous two
elements until the sequence has --length elements. Seeds may be negative.
Use --big for arbitrary precision.`,
		Example: `  kata fib --first 0 --second 1 --length 10
  kata fib --first -1 --second 4 --length 4
  kata fib --length 200 --big`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("big") {
				req.Big = a.cfg.Fibonacci.Big
			}
			res, err := a.generate(req)
			if err != nil {
				return err
			}

			return a.render(cmd.OutOrStdout(), res, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Fibonacci sequence: [%s]\n", strings.Join(res.Sequence, ", "))

				return err
			})
		},
	}
	cmd.Flags().StringVar(&req.First, "first", "0", "first seed number")
	cmd.Flags().StringVar(&req.Second, "second", "1", "second seed number")
	cmd.Flags().IntVarP(&req.Length, "length", "n", 10, "number of elements to generate")
	cmd.Flags().BoolVar(&req.Big, "big", false, "use arbitrary-precision integers")

	return cmd
}

// generate applies the configured length bound and runs the generator.
func (a *app) generate(req fibRequest) (fibResult, error) {
	if limit := a.cfg.Fibonacci.MaxLength; limit > 0 && req.Length > limit {
		a.logger.Warn("fibonacci length rejected", zap.Int("length", req.Length), zap.Int("max", limit))

		return fibResult{}, fmt.Errorf("%w (%d > %d)", errLengthLimit, req.Length, limit)
	}

	var (
		seq []string
		err error
	)
	if !req.Big {
		var overflow bool
		seq, overflow, err = generateInt64(req)
		if overflow {
			a.logger.Info("int64 overflow, switching to arbitrary precision", zap.Int("length", req.Length))
			req.Big = true
		}
	}
	if req.Big {
		seq, err = generateBig(req)
	}
	if err != nil {
		return fibResult{}, err
	}
	a.logger.Debug("fibonacci generated",
		zap.String("first", req.First),
		zap.String("second", req.Second),
		zap.Int("length", req.Length),
		zap.Bool("big", req.Big),
	)

	return fibResult{First: req.First, Second: req.Second, Length: req.Length, Sequence: seq}, nil
}

// generateInt64 runs the fixed-width generator. overflow is true when any
// element wrapped, in which case seq must not be used.
func generateInt64(req fibRequest) (seq []string, overflow bool, err error) {
	a, err := strconv.ParseInt(strings.TrimSpace(req.First), 10, 64)
	if err != nil {
		return nil, false, fmt.Errorf("invalid first number %q: %w", req.First, err)
	}
	b, err := strconv.ParseInt(strings.TrimSpace(req.Second), 10, 64)
	if err != nil {
		return nil, false, fmt.Errorf("invalid second number %q: %w", req.Second, err)
	}
	vals, err := fibonacci.Generate(fibonacci.Pair(a, b), req.Length)
	if err != nil {
		return nil, false, err
	}
	out := make([]string, len(vals))
	for i, v := range vals {
		if i >= 2 && sumOverflows(vals[i-1], vals[i-2]) {
			return nil, true, nil
		}
		out[i] = strconv.FormatInt(v, 10)
	}

	return out, false, nil
}

// sumOverflows reports whether x+y wraps around int64.
func sumOverflows(x, y int64) bool {
	s := x + y

	return (x > 0 && y > 0 && s < 0) || (x < 0 && y < 0 && s >= 0)
}

func generateBig(req fibRequest) ([]string, error) {
	a, ok := new(big.Int).SetString(strings.TrimSpace(req.First), 10)
	if !ok {
		return nil, fmt.Errorf("invalid first number %q", req.First)
	}
	b, ok := new(big.Int).SetString(strings.TrimSpace(req.Second), 10)
	if !ok {
		return nil, fmt.Errorf("invalid second number %q", req.Second)
	}
	seq, err := fibonacci.GenerateBig(a, b, req.Length)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(seq))
	for i, v := range seq {
		out[i] = v.String()
	}

	return out, nil
}
