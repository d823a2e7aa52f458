package cmd

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/funscript-tools/fsdiff/internal/config"
	"github.com/funscript-tools/fsdiff/internal/logging"
	"github.com/funscript-tools/fsdiff/pkg/output"
)

var (
	cfgFile      string
	cfg          *config.Config
	logLevel     string
	logFormat    string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "fsdiff",
	Short: "Funscript rate transformer",
	Long: `fsdiff derives the rate of change of a funscript's motion and reshapes it
through a chain of operations (normalize, scale-linear, scale-sqrt, shorten),
writing the result back as a funscript.

It can also inspect scripts and generate synthetic ones for testing.`,
	Version:       "0.1.0",
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command and reports a failure on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		output.Error(rootCmd.ErrOrStderr(), "%v", err)
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./fsdiff.yaml, then $HOME/.fsdiff/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log", "l", "", "enable logging: debug, info, warn, error (default: from config, off)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text, json (default: from config, text)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", output.FormatTable, "report format: table, json, yaml")
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		output.Warn(rootCmd.ErrOrStderr(), "Could not load config: %v", err)
		cfg = config.Default()
	}
}

// newLogger builds the logger for a command from the config and the
// persistent flags. Logs go to w, normally stderr.
func newLogger(w io.Writer) *slog.Logger {
	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	format := cfg.Log.Format
	if logFormat != "" {
		format = logFormat
	}
	return logging.New(level, format, w)
}
