// Command kata runs the vowel-balance, radix and additive-sequence
// exercises from the command line.
//
//	kata vowel hello world
//	kata radix --base 16 ABC GHI
//	kata fib --first 0 --second 1 --length 10
//	kata prompt radix
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/kata/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	// Global flags
	verbose    bool
	configPath string
	output     string

	cfg    config.Config
	logger *zap.Logger

	// newLogger builds the logger once flags and config are known.
	newLogger func(level zapcore.Level) (*zap.Logger, error)
}

func newApp() *app {
	return &app{
		cfg:       config.Default(),
		logger:    zap.NewNop(),
		newLogger: productionLogger,
	}
}

// productionLogger mirrors zap's production preset at the given level.
func productionLogger(level zapcore.Level) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}

// newRootCmd wires the command tree around a.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "kata",
		Short: "Small string and sequence exercises",
		Long: `kata bundles three independent exercises:

  vowel   does a string hold as many vowels in its first half as in its second?
  radix   is a string a valid numeral in base 2..36?
  fib     the additive sequence grown from two seed numbers

Use "kata prompt <exercise>" for the interactive variants.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format: text or yaml (default from config)")

	root.AddCommand(newVowelCmd(a), newRadixCmd(a), newFibCmd(a), newPromptCmd(a))

	return root
}

// setup loads the config and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.output != "" {
		cfg.Output.Format = a.output
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	if a.verbose {
		level = zapcore.DebugLevel
	}
	logger, err := a.newLogger(level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger.Named(cmd.Name())
	a.logger.Debug("configuration loaded",
		zap.String("path", a.configPath),
		zap.String("format", cfg.Output.Format),
		zap.Int("fib_max_length", cfg.Fibonacci.MaxLength),
		zap.Int("default_base", cfg.Radix.DefaultBase),
	)

	return nil
}

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		os.Exit(1)
	}
}
