package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/yildizm/freqsum/internal/analyzer"
	"github.com/yildizm/freqsum/internal/formatter"
	"github.com/yildizm/freqsum/internal/logger"
	"github.com/yildizm/freqsum/internal/ui"
)

var (
	analyzeInputs     inputOptions
	analyzeNoTUI      bool
	analyzeOutputFile string
)

func newAnalyzeCommand() *cobra.Command {
	analyzeInputs = inputOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Count values per category",
		Long: `Count how many values fall into each category and report the
frequency and percentage share of each, plus a Total row.

Values are read from --data, the file argument or stdin, in that order.
Categories come from --categories, --categories-file, --preset or the
configuration file.

Examples:
  freqsum analyze --data "1 2 3 4 5 6 7 8 9 10" --categories "1-5,>8"
  freqsum analyze scores.txt --preset grades
  cat app.log | freqsum analyze --source log --preset log-levels
  freqsum analyze values.txt --categories "<5,apple" -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyze,
	}

	analyzeInputs.bind(cmd)
	cmd.Flags().BoolVar(&analyzeNoTUI, "no-tui", false, "disable terminal UI, output to stdout")
	cmd.Flags().StringVar(&analyzeOutputFile, "output-file", "", "save output to file instead of stdout")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()
	analyzeInputs.applyConfig(cmd, cfg)

	log := newLogger("analyze", cmd.ErrOrStderr())
	loader := NewPresetLoader(log.WithComponent("presets"))

	analyze := func() (*analyzer.Analysis, error) {
		data, err := analyzeInputs.loadData(args, log)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		categories, err := analyzeInputs.resolveCategories(cfg, loader)
		if err != nil {
			return nil, err
		}
		return runFrequencyAnalysis(data, categories, log)
	}

	analysis, err := analyze()
	if err != nil {
		return err
	}

	if shouldUseTUIMode() && isTerminal(os.Stdout) {
		log.Info("launching interactive terminal UI")
		// reload warnings are shown in the viewer, not on the alternate screen
		log = log.WithWriter(io.Discard)
		opts := ui.Options{
			Theme:      cfg.UI.Theme,
			Color:      useColor(),
			ChartWidth: cfg.Output.ChartWidth,
		}
		// stdin and --data cannot change while the viewer runs
		if len(args) > 0 && !analyzeInputs.dataSet {
			opts.Reload = analyze
		}
		return ui.Run(analysis, opts)
	}

	return formatAndOutputResults(cmd.OutOrStdout(), analysis, log)
}

// shouldUseTUIMode reports whether flags and configuration allow the
// interactive viewer
func shouldUseTUIMode() bool {
	return !analyzeNoTUI &&
		GetGlobalConfig().UI.Enabled &&
		getOutputFormat() == formatter.FormatText &&
		!isVerbose() &&
		analyzeOutputFile == ""
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// formatAndOutputResults formats analysis results and handles output
func formatAndOutputResults(w io.Writer, analysis *analyzer.Analysis, log *logger.Logger) error {
	formatterInstance, err := formatter.New(getOutputFormat(), formatter.Options{
		Color:      useColor() && analyzeOutputFile == "",
		Emoji:      !noEmoji,
		ChartWidth: GetGlobalConfig().Output.ChartWidth,
	})
	if err != nil {
		return fmt.Errorf("failed to get formatter: %w", err)
	}

	output, err := formatterInstance.Format(analysis)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	return handleOutputDestination(w, output, log)
}

// handleOutputDestination writes output to file or w
func handleOutputDestination(w io.Writer, output []byte, log *logger.Logger) error {
	if analyzeOutputFile == "" {
		_, err := w.Write(output)
		return err
	}

	if err := validateOutputFilePath(analyzeOutputFile); err != nil {
		return fmt.Errorf("invalid output file path: %w", err)
	}
	if err := writeOutputBytesToFile(output, analyzeOutputFile, log); err != nil {
		return fmt.Errorf("failed to write output to file: %w", err)
	}

	log.InfoWithFields("output saved", []logger.Field{logger.F("file", analyzeOutputFile)})
	return nil
}

func validateOutputFilePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty file path")
	}
	info, err := os.Stat(filepath.Clean(path))
	if err == nil && info.IsDir() {
		return fmt.Errorf("path is a directory: %s", path)
	}
	return nil
}

// writeOutputBytesToFile writes output to a file with proper error handling
func writeOutputBytesToFile(output []byte, filePath string, log *logger.Logger) error {
	cleanPath := filepath.Clean(filePath)

	// #nosec G304 - path is chosen by the user on the command line
	file, err := os.Create(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.WarnWithFields("failed to close output file", []logger.Field{logger.Error(closeErr)})
		}
	}()

	if _, err := file.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	// Sync to ensure data is written
	if err := file.Sync(); err != nil {
		return fmt.Errorf("failed to sync output file: %w", err)
	}

	return nil
}
