package cli

import (
	"fmt"
	"os"

	"github.com/yildizm/freqsum/internal/common"
	"github.com/yildizm/freqsum/internal/config"
	"github.com/yildizm/freqsum/internal/logger"
)

// PresetLoader collects category presets from the embedded set, configured
// directories and explicit files
type PresetLoader struct {
	log *logger.Logger
}

// NewPresetLoader creates a new preset loader instance
func NewPresetLoader(log *logger.Logger) *PresetLoader {
	if log == nil {
		log = newLogger("presets", nil)
	}
	return &PresetLoader{log: log}
}

// LoadAll loads presets in precedence order: configured directories first,
// then embedded defaults when enabled. FindPreset returns the first match,
// so a directory preset shadows an embedded one with the same id.
func (pl *PresetLoader) LoadAll(cfg *config.Config) []*common.Preset {
	var presets []*common.Preset

	presets = append(presets, pl.loadPresetsFromDirectories(cfg.Categories.Directories)...)

	if cfg.Categories.EnableDefaults {
		presets = append(presets, pl.loadDefaultPresets()...)
	}

	return presets
}

// LoadFile loads the presets of a single file
func (pl *PresetLoader) LoadFile(path string) ([]*common.Preset, error) {
	presets, err := common.LoadPresetsFromFile(path)
	if err != nil {
		return nil, err
	}
	if len(presets) == 0 {
		return nil, fmt.Errorf("no presets found in %s", path)
	}
	pl.log.InfoWithFields("loaded presets", []logger.Field{logger.Count(len(presets)), logger.F("file", path)})
	return presets, nil
}

// Resolve returns the preset with id from the configured sources
func (pl *PresetLoader) Resolve(cfg *config.Config, id string) (*common.Preset, error) {
	presets := pl.LoadAll(cfg)
	preset, ok := common.FindPreset(presets, id)
	if !ok {
		return nil, fmt.Errorf("unknown preset: %s (run 'freqsum presets list')", id)
	}
	return preset, nil
}

// loadPresetsFromDirectories loads presets from configured directories.
// Missing directories are skipped silently.
func (pl *PresetLoader) loadPresetsFromDirectories(directories []string) []*common.Preset {
	var presets []*common.Preset

	for _, dir := range directories {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}

		loaded, err := common.LoadPresetsFromDirectory(dir, func(path string, err error) {
			pl.log.WarnWithFields("skipping preset file", []logger.Field{logger.F("file", path), logger.Error(err)})
		})
		if err != nil {
			pl.log.WarnWithFields("failed to load presets", []logger.Field{logger.F("dir", dir), logger.Error(err)})
			continue
		}

		presets = append(presets, loaded...)
		pl.log.InfoWithFields("loaded presets", []logger.Field{logger.Count(len(loaded)), logger.F("dir", dir)})
	}

	return presets
}

// loadDefaultPresets loads embedded default presets
func (pl *PresetLoader) loadDefaultPresets() []*common.Preset {
	presets, err := common.LoadDefaultPresets()
	if err != nil {
		pl.log.WarnWithFields("failed to load default presets", []logger.Field{logger.Error(err)})
		return nil
	}

	pl.log.Debug("loaded %d default presets", len(presets))
	return presets
}
