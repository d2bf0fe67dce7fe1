package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/yildizm/freqsum/internal/analyzer"
	"github.com/yildizm/freqsum/internal/common"
	"github.com/yildizm/freqsum/internal/config"
	"github.com/yildizm/freqsum/internal/input"
	"github.com/yildizm/freqsum/internal/logger"
)

// inputOptions holds the dataset and category flags shared by analyze,
// export and watch
type inputOptions struct {
	data           string
	categories     string
	preset         string
	categoriesFile string
	source         string
	logFormat      string
	logField       string
	maxLines       int

	dataSet bool
}

func (o *inputOptions) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&o.data, "data", "", "inline dataset, values separated by whitespace or commas")
	flags.StringVar(&o.categories, "categories", "", `comma-separated categories, e.g. "<5,5-10,>10,apple"`)
	flags.StringVarP(&o.preset, "preset", "p", "", "category preset id (see 'freqsum presets list')")
	flags.StringVar(&o.categoriesFile, "categories-file", "", "preset YAML file to take categories from")
	flags.StringVar(&o.source, "source", "plain", "input source (plain, log)")
	flags.StringVarP(&o.logFormat, "log-format", "f", "auto", "log format for --source log (auto, json, logfmt, text)")
	flags.StringVar(&o.logField, "log-field", "level", "log field used as the value for --source log (level, message)")
	flags.IntVar(&o.maxLines, "max-lines", 100000, "maximum input lines to read")
}

// applyConfig fills flags the user did not set from the configuration
func (o *inputOptions) applyConfig(cmd *cobra.Command, cfg *config.Config) {
	changed := func(name string) bool {
		flag := cmd.Flags().Lookup(name)
		return flag != nil && flag.Changed
	}

	o.dataSet = changed("data")
	if !changed("source") && cfg.Input.Source != "" {
		o.source = cfg.Input.Source
	}
	if !changed("log-format") && cfg.Input.LogFormat != "" {
		o.logFormat = cfg.Input.LogFormat
	}
	if !changed("log-field") && cfg.Input.LogField != "" {
		o.logField = cfg.Input.LogField
	}
	if !changed("max-lines") && cfg.Input.MaxLines > 0 {
		o.maxLines = cfg.Input.MaxLines
	}
}

func (o *inputOptions) sourceOptions() input.Options {
	return input.Options{
		Source:    o.source,
		LogFormat: o.logFormat,
		LogField:  o.logField,
		MaxLines:  o.maxLines,
	}
}

// loadData reads the dataset from --data, the file argument or stdin, in
// that order
func (o *inputOptions) loadData(args []string, log *logger.Logger) (string, error) {
	switch {
	case o.dataSet:
		log.Debug("reading data from --data")
		return input.LoadString(o.data, o.sourceOptions())
	case len(args) > 0:
		log.InfoWithFields("reading data file", []logger.Field{logger.F("file", args[0])})
		return input.ReadFile(args[0], o.sourceOptions())
	default:
		log.Info("reading data from stdin")
		return input.Load(os.Stdin, o.sourceOptions())
	}
}

// resolveCategories picks the category specification. Precedence:
// --categories, --categories-file, --preset, config categories.default,
// config categories.preset.
func (o *inputOptions) resolveCategories(cfg *config.Config, loader *PresetLoader) (string, error) {
	if o.categories != "" {
		return o.categories, nil
	}

	if o.categoriesFile != "" {
		presets, err := loader.LoadFile(o.categoriesFile)
		if err != nil {
			return "", fmt.Errorf("failed to load categories file: %w", err)
		}
		preset := presets[0]
		if o.preset != "" {
			var ok bool
			if preset, ok = common.FindPreset(presets, o.preset); !ok {
				return "", fmt.Errorf("preset %s not found in %s", o.preset, o.categoriesFile)
			}
		}
		return preset.Spec(), nil
	}

	if o.preset != "" {
		preset, err := loader.Resolve(cfg, o.preset)
		if err != nil {
			return "", err
		}
		return preset.Spec(), nil
	}

	if cfg.Categories.Default != "" {
		return cfg.Categories.Default, nil
	}

	if cfg.Categories.Preset != "" {
		preset, err := loader.Resolve(cfg, cfg.Categories.Preset)
		if err != nil {
			return "", err
		}
		return preset.Spec(), nil
	}

	return "", nil
}

// runFrequencyAnalysis analyzes data against categories and logs every
// recovered category error
func runFrequencyAnalysis(data, categories string, log *logger.Logger) (*analyzer.Analysis, error) {
	engine := analyzer.NewEngine().WithWarningHandler(func(w *analyzer.InvalidCategorySyntaxError) {
		log.WarnWithFields("invalid category, counting 0", []logger.Field{
			logger.Category(w.Category),
			logger.F("kind", w.Kind),
			logger.F("reason", w.Reason),
		})
	})

	start := time.Now()
	analysis, err := engine.Analyze(data, categories)
	if err != nil {
		return nil, withInputHint(err)
	}

	log.InfoWithFields("analysis complete", []logger.Field{
		logger.Count(analysis.TokenCount),
		logger.F("categories", len(analysis.Results)),
		logger.Duration(time.Since(start)),
	})
	return analysis, nil
}

// withInputHint adds the flags that supply a missing input to the error
func withInputHint(err error) error {
	var missing *analyzer.MissingInputError
	if !errors.As(err, &missing) {
		return err
	}
	switch missing.Field {
	case analyzer.FieldData:
		return fmt.Errorf("%w (pass --data, a file argument or pipe values on stdin)", err)
	case analyzer.FieldCategories:
		return fmt.Errorf("%w (pass --categories, --preset or --categories-file)", err)
	default:
		return err
	}
}
