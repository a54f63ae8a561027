package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/kata/radix"
	"github.com/katalvlaran/kata/vowel"
	"github.com/spf13/cobra"
)

// errQuit ends a prompt loop without reporting an error.
var errQuit = errors.New("quit")

// prompter reads answers line by line and writes questions to out.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

// ask prints question and returns the trimmed answer. End of input is
// reported as errQuit, reader failures as inputError.
func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", inputError{err}
		}
		fmt.Fprintln(p.out)

		return "", errQuit
	}

	return strings.TrimSpace(p.in.Text()), nil
}

// loop calls step until it returns errQuit or a read error.
// Any other error is printed and the loop continues.
func (p *prompter) loop(step func() error) error {
	for {
		err := step()
		switch {
		case err == nil:
		case errors.Is(err, errQuit):
			fmt.Fprintln(p.out, "Goodbye!")

			return nil
		case isInputErr(err):
			return err
		default:
			fmt.Fprintf(p.out, "Error: %v\n", err)
		}
	}
}

// inputError marks failures of the underlying reader.
type inputError struct{ err error }

func (e inputError) Error() string { return "read input: " + e.err.Error() }
func (e inputError) Unwrap() error { return e.err }

func isInputErr(err error) bool {
	var ie inputError
	return errors.As(err, &ie)
}

func newPromptCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Interactive variants of the exercises",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "vowel",
			Short: "Check strings for vowel balance until an empty line",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.promptVowel(newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()))
			},
		},
		&cobra.Command{
			Use:   "radix",
			Short: "Validate numerals until 'quit'",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.promptRadix(newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()))
			},
		},
		&cobra.Command{
			Use:   "fib",
			Short: "Ask for two seeds and a length, print the sequence",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.promptFib(newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()))
			},
		},
	)

	return cmd
}

func (a *app) promptVowel(p *prompter) error {
	fmt.Fprintln(p.out, "Vowel Balance Checker")
	fmt.Fprintln(p.out, strings.Repeat("=", 50))
	fmt.Fprintln(p.out, "Press Enter with an empty string to quit.")

	return p.loop(func() error {
		s, err := p.ask("Enter string: ")
		if err != nil {
			return err
		}
		if s == "" {
			return errQuit
		}
		fmt.Fprintln(p.out, vowel.Analyze(s))
		fmt.Fprintln(p.out, separator)

		return nil
	})
}

func (a *app) promptRadix(p *prompter) error {
	fmt.Fprintln(p.out, "Base Number Validator")
	fmt.Fprintln(p.out, strings.Repeat("=", 30))

	return p.loop(func() error {
		s, err := p.ask("Enter a number string (or 'quit' to exit): ")
		if err != nil {
			return err
		}
		if strings.EqualFold(s, "quit") {
			return errQuit
		}
		answer, err := p.ask(fmt.Sprintf("Enter the base (%d-%d): ", radix.MinBase, radix.MaxBase))
		if err != nil {
			return err
		}
		base, err := strconv.Atoi(answer)
		if err != nil {
			return fmt.Errorf("invalid base %q", answer)
		}
		res, err := radix.Check(s, base)
		if err != nil {
			return err
		}
		writeRadixResult(p.out, res)

		return nil
	})
}

// promptFib asks for one sequence and reports bad input
// without failing the command.
func (a *app) promptFib(p *prompter) error {
	var req fibRequest
	var err error
	questions := []struct {
		q   string
		dst *string
	}{
		{"Enter the first number: ", &req.First},
		{"Enter the second number: ", &req.Second},
	}
	for _, q := range questions {
		if *q.dst, err = p.ask(q.q); err != nil {
			return quitIsNil(err)
		}
	}
	answer, err := p.ask("Enter the desired sequence length: ")
	if err != nil {
		return quitIsNil(err)
	}
	if req.Length, err = strconv.Atoi(answer); err != nil {
		fmt.Fprintf(p.out, "Error: invalid length %q\n", answer)

		return nil
	}
	req.Big = a.cfg.Fibonacci.Big

	res, err := a.generate(req)
	if err != nil {
		fmt.Fprintf(p.out, "Error: %v\n", err)

		return nil
	}
	fmt.Fprintf(p.out, "\nFibonacci sequence: [%s]\n", strings.Join(res.Sequence, ", "))

	return nil
}

func quitIsNil(err error) error {
	if errors.Is(err, errQuit) {
		return nil
	}

	return err
}
