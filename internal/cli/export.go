package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yildizm/freqsum/internal/formatter"
	"github.com/yildizm/freqsum/internal/logger"
)

var (
	exportInputs inputOptions
	exportPath   string
	exportFormat string
	exportForce  bool
)

func newExportCommand() *cobra.Command {
	exportInputs = inputOptions{}

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write a frequency report to a file",
		Long: `Run the analysis and write the report to a file. The format follows
the file extension (.md, .json, .csv, .txt) unless --format is given.

Examples:
  freqsum export scores.txt --preset grades
  freqsum export --data "a b a" --categories "a,b" --out report.json
  freqsum export values.txt --categories "<5,>5" --out report.csv --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExport,
	}

	exportInputs.bind(cmd)
	cmd.Flags().StringVar(&exportPath, "out", "", "report path (default: output.export_path)")
	cmd.Flags().StringVar(&exportFormat, "format", "", "report format, overrides the file extension (text, json, markdown, csv)")
	cmd.Flags().BoolVar(&exportForce, "force", false, "overwrite an existing report")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()
	exportInputs.applyConfig(cmd, cfg)

	log := newLogger("export", cmd.ErrOrStderr())

	path := exportPath
	if path == "" {
		path = cfg.Output.ExportPath
	}
	if err := validateOutputFilePath(path); err != nil {
		return fmt.Errorf("invalid output file path: %w", err)
	}
	if !exportForce && fileExists(path) {
		return fmt.Errorf("report already exists at %s (use --force to overwrite)", path)
	}

	format := exportFormat
	if format == "" {
		var err error
		if format, err = formatter.FormatForPath(path); err != nil {
			return err
		}
	}
	f, err := formatter.New(format, formatter.Options{
		Emoji:      !noEmoji,
		ChartWidth: cfg.Output.ChartWidth,
	})
	if err != nil {
		return err
	}

	data, err := exportInputs.loadData(args, log)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	categories, err := exportInputs.resolveCategories(cfg, NewPresetLoader(log.WithComponent("presets")))
	if err != nil {
		return err
	}
	analysis, err := runFrequencyAnalysis(data, categories, log)
	if err != nil {
		return err
	}

	output, err := f.Format(analysis)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	if err := writeOutputBytesToFile(output, path, log); err != nil {
		return err
	}

	log.InfoWithFields("report written", []logger.Field{logger.F("file", path), logger.F("format", format)})
	fmt.Fprintf(cmd.OutOrStdout(), "%s Report written to %s\n", GetEmoji("success"), path)
	return nil
}
