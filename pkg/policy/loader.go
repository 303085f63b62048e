package policy

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Loader handles loading check suites from files and directories.
type Loader struct {
	logger   zerolog.Logger
	validate *validator.Validate
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
}

// NewLoader creates a new suite loader.
func NewLoader(logger zerolog.Logger) *Loader {
	return &Loader{
		logger:   logger.With().Str("component", "suite-loader").Logger(),
		validate: validator.New(),
	}
}

// LoadFromPaths loads suites from a list of file or directory paths.
func (l *Loader) LoadFromPaths(ctx context.Context, paths []string) ([]Suite, error) {
	var allSuites []Suite

	for _, path := range paths {
		suites, err := l.loadFromPath(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to load from path %s: %w", path, err)
		}
		allSuites = append(allSuites, suites...)
	}

	l.logger.Info().
		Int("total", len(allSuites)).
		Int("sources", len(paths)).
		Msg("Suites loaded from paths")

	return allSuites, nil
}

// LoadFromFile loads and validates a single suite file.
func (l *Loader) LoadFromFile(_ context.Context, path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}

	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("failed to parse suite file %s: %w", path, err)
	}

	if suite.Name == "" {
		suite.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if err := l.Validate(&suite); err != nil {
		return nil, fmt.Errorf("suite %s is invalid: %w", suite.Name, err)
	}

	l.logger.Debug().
		Str("suite", suite.Name).
		Int("checks", len(suite.Checks)).
		Str("path", path).
		Msg("Suite loaded")

	return &suite, nil
}

// Validate checks a suite against its struct constraints plus the
// cross-field rules validator tags cannot express.
func (l *Loader) Validate(suite *Suite) error {
	if err := l.validate.Struct(suite); err != nil {
		return err
	}

	for i := range suite.Checks {
		check := &suite.Checks[i]
		if check.Severity == "" {
			check.Severity = SeverityError
		}
		if check.Op == OpGreaterThan {
			// Thresholds must be numeric so the runner never has to
			// surface per-check configuration errors mid-scan.
			if _, ok := toNumber(check.Value); !ok {
				return fmt.Errorf("check %s: greater_than value %v is not numeric", check.Name, check.Value)
			}
		}
	}

	return nil
}

// loadFromPath loads suites from a single path (file or directory).
func (l *Loader) loadFromPath(ctx context.Context, path string) ([]Suite, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	if info.IsDir() {
		return l.loadFromDirectory(ctx, path)
	}

	suite, err := l.LoadFromFile(ctx, path)
	if err != nil {
		return nil, err
	}

	return []Suite{*suite}, nil
}

// loadFromDirectory loads all .yaml/.yml files from a directory
// recursively. Bad files are logged and skipped so one broken suite
// does not hide the rest.
func (l *Loader) loadFromDirectory(ctx context.Context, dirPath string) ([]Suite, error) {
	var suites []Suite

	err := filepath.WalkDir(dirPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if !strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml") {
			return nil
		}

		suite, err := l.LoadFromFile(ctx, path)
		if err != nil {
			l.logger.Warn().Err(err).Str("path", path).Msg("Failed to load suite file")
			return nil
		}

		suites = append(suites, *suite)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", dirPath, err)
	}

	return suites, nil
}

// Watch reloads the suite file whenever it changes and hands the result
// to onChange. Watching stops when ctx is cancelled.
func (l *Loader) Watch(ctx context.Context, path string, onChange func(*Suite)) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.watcher != nil {
		return fmt.Errorf("loader is already watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(path); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	l.watcher = watcher

	go func() {
		defer func() {
			_ = watcher.Close()
			l.mu.Lock()
			l.watcher = nil
			l.mu.Unlock()
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				suite, err := l.LoadFromFile(ctx, event.Name)
				if err != nil {
					l.logger.Warn().Err(err).Str("path", event.Name).Msg("Suite reload failed")
					continue
				}
				l.logger.Info().Str("suite", suite.Name).Msg("Suite reloaded")
				onChange(suite)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				l.logger.Warn().Err(err).Msg("Watcher error")
			}
		}
	}()

	return nil
}
