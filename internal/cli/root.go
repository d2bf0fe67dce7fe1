package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/yildizm/freqsum/internal/config"
	"github.com/yildizm/freqsum/internal/emoji"
	"github.com/yildizm/freqsum/internal/logger"
)

var (
	cfgFile   string
	verbose   bool
	noColor   bool
	noEmoji   bool
	outputFmt string

	globalConfig *config.Config
)

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "freqsum",
		Short: "Frequency analysis of values against categories",
		Long: `FreqSum counts how many values of a dataset fall into each of a list of
categories and reports the frequency and percentage share of each.

Categories are comma separated and may be inclusive ranges (2-10), strict
bounds (<5, >10), exact numbers (7) or case-insensitive text (apple).
Values come from a file, stdin or --data, either as plain separated values
or as fields extracted from log lines.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Auto-disable emojis on Windows if not explicitly set
			if runtime.GOOS == "windows" && !cmd.Flag("no-emoji").Changed {
				noEmoji = true
			}
			emoji.SetEmojiDisabled(noEmoji)

			cfg, err := config.NewLoader().LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			applyGlobalConfig(cmd, cfg)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "disable emoji output (useful for Windows terminals)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "output format (text, json, markdown, csv)")

	// Add subcommands
	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newPresetsCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

// applyGlobalConfig stores cfg and lets it fill in global flags that were
// not given on the command line
func applyGlobalConfig(cmd *cobra.Command, cfg *config.Config) {
	globalConfig = cfg

	if flag := cmd.Flag("output"); flag != nil && !flag.Changed && cfg.Output.DefaultFormat != "" {
		outputFmt = cfg.Output.DefaultFormat
	}
	if flag := cmd.Flag("verbose"); flag != nil && !flag.Changed && cfg.Output.Verbose {
		verbose = true
	}
	if flag := cmd.Flag("no-color"); flag != nil && !flag.Changed && cfg.Output.ColorMode == "never" {
		noColor = true
	}
}

// GetGlobalConfig returns the configuration loaded for this invocation, or
// the defaults when none was loaded
func GetGlobalConfig() *config.Config {
	if globalConfig == nil {
		return config.DefaultConfig()
	}
	return globalConfig
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "FreqSum %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// Global helpers
func isVerbose() bool {
	return verbose
}

func getOutputFormat() string {
	return outputFmt
}

// useColor reports whether styled output is wanted. ColorMode "always"
// overrides NO_COLOR; "auto" honours it.
func useColor() bool {
	if noColor {
		return false
	}
	if GetGlobalConfig().Output.ColorMode == "always" {
		return true
	}
	return os.Getenv("NO_COLOR") == ""
}

// newLogger returns a component logger that follows the verbose flag
func newLogger(component string, w io.Writer) *logger.Logger {
	log := logger.NewWithCallback(component, isVerbose)
	if w != nil {
		log = log.WithWriter(w)
	}
	return log
}
