package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/yildizm/freqsum/internal/analyzer"
	"github.com/yildizm/freqsum/internal/config"
	"github.com/yildizm/freqsum/internal/emoji"
	"github.com/yildizm/freqsum/internal/formatter"
	"github.com/yildizm/freqsum/internal/logger"
	"github.com/yildizm/freqsum/internal/monitor"
)

var (
	watchInputs   inputOptions
	watchDebounce time.Duration
)

func newWatchCommand() *cobra.Command {
	watchInputs = inputOptions{}

	cmd := &cobra.Command{
		Use:   "watch [file]",
		Short: "Re-run the analysis whenever the data changes",
		Long: `Watch a data file and re-run the frequency analysis each time it is
written. When --categories-file is given that file is watched too.

Every run recomputes everything from the current file contents. Press
Ctrl+C to stop watching.

Examples:
  freqsum watch scores.txt --preset grades
  freqsum watch app.log --source log --preset log-levels
  freqsum watch values.txt --categories-file ./presets/custom.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}

	watchInputs.bind(cmd)
	cmd.Flags().DurationVar(&watchDebounce, "debounce", 200*time.Millisecond, "wait this long after a change before re-running")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()
	watchInputs.applyConfig(cmd, cfg)
	if watchInputs.dataSet {
		return fmt.Errorf("--data cannot be watched, pass a data file instead")
	}
	if !cmd.Flag("debounce").Changed {
		watchDebounce = cfg.Watch.Debounce
	}

	log := newLogger("watch", cmd.ErrOrStderr())

	session, err := newWatchSession(args[0], &watchInputs, cfg, cmd.OutOrStdout(), log)
	if err != nil {
		return err
	}
	session.debounce = watchDebounce

	watcher, cleanup, err := setupFileWatcher(session.watchPaths(), log)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.InfoWithFields("watching", []logger.Field{logger.F("file", session.dataPath), logger.F("debounce", session.debounce)})
	fmt.Fprintf(cmd.ErrOrStderr(), "%s Watching %s (Ctrl+C to stop)\n", emoji.GetEmoji("watch"), session.dataPath)

	session.run()
	err = session.loop(ctx, watcher)
	session.summary(cmd.ErrOrStderr())
	return err
}

// watchSession re-runs the analysis for one data file
type watchSession struct {
	dataPath string
	inputs   *inputOptions
	cfg      *config.Config
	loader   *PresetLoader
	out      io.Writer
	log      *logger.Logger
	debounce time.Duration
	now      func() time.Time
	stats    *monitor.Collector

	// absolute paths whose changes trigger a run
	targets map[string]bool
}

func newWatchSession(dataPath string, inputs *inputOptions, cfg *config.Config, out io.Writer, log *logger.Logger) (*watchSession, error) {
	if err := validateWatchFilePath(dataPath); err != nil {
		return nil, fmt.Errorf("invalid file path: %w", err)
	}

	s := &watchSession{
		dataPath: filepath.Clean(dataPath),
		inputs:   inputs,
		cfg:      cfg,
		loader:   NewPresetLoader(log.WithComponent("presets")),
		out:      out,
		log:      log,
		debounce: cfg.Watch.Debounce,
		now:      time.Now,
		stats:    monitor.New(),
		targets:  make(map[string]bool),
	}

	if err := s.addTarget(dataPath); err != nil {
		return nil, err
	}
	if inputs.categoriesFile != "" {
		if err := validateWatchFilePath(inputs.categoriesFile); err != nil {
			return nil, fmt.Errorf("invalid categories file: %w", err)
		}
		if err := s.addTarget(inputs.categoriesFile); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *watchSession) addTarget(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	s.targets[abs] = true
	return nil
}

// watchPaths returns the directories holding the targets. Editors often
// replace a file on save, which a watch on the file itself would miss.
func (s *watchSession) watchPaths() []string {
	dirs := make(map[string]bool)
	for target := range s.targets {
		dirs[filepath.Dir(target)] = true
	}
	paths := make([]string, 0, len(dirs))
	for dir := range dirs {
		paths = append(paths, dir)
	}
	sort.Strings(paths)
	return paths
}

// relevant reports whether event should trigger a run
func (s *watchSession) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return s.targets[abs]
}

// run analyzes the current file contents and prints the result. Failures
// are reported and the session keeps watching.
func (s *watchSession) run() {
	fmt.Fprintf(s.out, "\n%s [%s] %s\n", emoji.GetEmoji("statistics"), s.now().Format("15:04:05"), s.dataPath)

	tokens, err := s.pipeline()
	s.stats.RunFinished(tokens, err)
	if err != nil {
		s.reportError(err)
	}
}

// pipeline runs one read, resolve, analyze, format and write pass and
// returns the number of tokens analyzed
func (s *watchSession) pipeline() (int, error) {
	var (
		data       string
		categories string
		analysis   *analyzer.Analysis
		output     []byte
	)

	err := s.stats.Track(monitor.OperationRead, func() (err error) {
		if data, err = s.inputs.loadData([]string{s.dataPath}, s.log); err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	err = s.stats.Track(monitor.OperationResolve, func() (err error) {
		categories, err = s.inputs.resolveCategories(s.cfg, s.loader)
		return err
	})
	if err != nil {
		return 0, err
	}

	err = s.stats.Track(monitor.OperationAnalyze, func() (err error) {
		analysis, err = runFrequencyAnalysis(data, categories, s.log)
		return err
	})
	if err != nil {
		return 0, err
	}

	err = s.stats.Track(monitor.OperationFormat, func() error {
		f, err := formatter.New(getOutputFormat(), formatter.Options{
			Color:      useColor(),
			Emoji:      !noEmoji,
			ChartWidth: s.cfg.Output.ChartWidth,
		})
		if err != nil {
			return err
		}
		if output, err = f.Format(analysis); err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	err = s.stats.Track(monitor.OperationWrite, func() error {
		_, err := s.out.Write(output)
		return err
	})
	return analysis.TokenCount, err
}

// summary writes the session statistics to w
func (s *watchSession) summary(w io.Writer) {
	if err := monitor.WriteReport(w, s.stats.Snapshot(), termOptions()); err != nil {
		s.log.WarnWithFields("failed to write session summary", []logger.Field{logger.Error(err)})
	}
}

func (s *watchSession) reportError(err error) {
	fmt.Fprintf(s.out, "%s %v\n", emoji.GetEmoji("error"), err)
}

// loop re-runs the analysis after relevant events until ctx is done
func (s *watchSession) loop(ctx context.Context, watcher *fsnotify.Watcher) error {
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			s.log.Info("stopping")
			return nil

		case <-pending:
			pending = nil
			s.run()

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !s.relevant(event) {
				continue
			}
			s.log.DebugWithFields("change detected", []logger.Field{logger.F("file", event.Name), logger.F("op", event.Op.String())})
			if s.debounce <= 0 {
				s.run()
				continue
			}
			pending = time.After(s.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			s.log.WarnWithFields("watcher error", []logger.Field{logger.Error(err)})
		}
	}
}

// cleanupWatcher safely closes watcher with error logging
func cleanupWatcher(watcher *fsnotify.Watcher, log *logger.Logger) {
	if err := watcher.Close(); err != nil {
		log.WarnWithFields("failed to close watcher", []logger.Field{logger.Error(err)})
	}
}

// setupFileWatcher creates a watcher over paths
func setupFileWatcher(paths []string, log *logger.Logger) (*fsnotify.Watcher, func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			cleanupWatcher(watcher, log)
			return nil, nil, fmt.Errorf("failed to watch %s: %w", path, err)
		}
	}

	return watcher, func() { cleanupWatcher(watcher, log) }, nil
}

// validateWatchFilePath validates that a file path is safe to watch
func validateWatchFilePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty file path")
	}

	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("cannot watch directory, must be a file")
	}

	return nil
}
