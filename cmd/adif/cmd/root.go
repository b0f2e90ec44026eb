package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/adifkit/pkg/adif"
	"github.com/msto63/adifkit/pkg/core/config"
	"github.com/msto63/adifkit/pkg/core/log"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string

	cfg    config.Config
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "adif",
	Short: "adifkit - tools for ADIF amateur radio logs",
	Long: `adifkit parses and reports on ADI files, the legacy bracket-delimited
physical encoding of ADIF amateur radio contact logs.

Commands:
  parse    - parse a file and show its physical structure
  dump     - show the logical contents of a file
  diff     - compare the records of two files
  version  - show version information`,

	// Processing errors should not dump the usage text
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
			if err != nil {
				return err
			}
		} else {
			cfg = config.Default()
		}

		levelName := cfg.General.LogLevel
		if verbose {
			levelName = "debug"
		}
		level, err := log.ParseLevel(levelName)
		if err != nil {
			return usageError{err}
		}

		formatName := cfg.General.LogFormat
		if logFormat != "" {
			formatName = logFormat
		}
		format, err := log.ParseFormat(formatName)
		if err != nil {
			return usageError{err}
		}

		logger = log.NewWithConfig(log.Config{
			Level:  level,
			Format: format,
			Name:   "adif",
		})

		// Tag everything from this invocation
		logger = logger.WithRequestID(uuid.New().String())
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text or json)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})
}

// usageError marks errors caused by how the tool was invoked rather than
// by the input being processed
type usageError struct {
	err error
}

func (u usageError) Error() string {
	return u.err.Error()
}

func (u usageError) Unwrap() error {
	return u.err
}

// ExitCode maps an error from Execute to the process exit code: 2 for
// usage errors, 1 for everything else
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ue usageError
	if errors.As(err, &ue) {
		return 2
	}
	return 1
}

// exactArgs is cobra.ExactArgs with the result classified as a usage error
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// parseFile opens and fully parses one ADI file
func parseFile(filename string) (*adif.File, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", filename, err)
	}
	defer file.Close()

	return adif.Parse(filename, file)
}

// output is where command results are written, separate from logging,
// which goes to stderr
func output() io.Writer {
	return os.Stdout
}
