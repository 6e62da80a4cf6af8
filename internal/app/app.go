// Package app holds the command-line plumbing shared by the tankarena
// binaries: global flags, logging, config resolution and the score store.
// It stays free of the window and sound backends so headless tools can
// build without cgo.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tank-arena/internal/arena"
	"github.com/vovakirdan/tank-arena/internal/config"
	"github.com/vovakirdan/tank-arena/internal/registry"
	"github.com/vovakirdan/tank-arena/internal/storage"
)

// Settings are the global flags every tankarena command understands.
type Settings struct {
	FPS      int
	Seed     int64
	DBPath   string
	LogLevel string
	LogFile  string
	Config   string
	Preset   string
}

// Bind registers the settings as persistent flags of cmd. logFile is the
// default log destination; empty logs to stderr.
func (s *Settings) Bind(cmd *cobra.Command, logFile string) {
	flags := cmd.PersistentFlags()
	flags.IntVar(&s.FPS, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&s.Seed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&s.DBPath, "db", "~/.tankarena/scores.db", "Path to scores database (empty disables)")
	flags.StringVar(&s.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.StringVar(&s.LogFile, "log-file", logFile, "Log file path (empty logs to stderr)")
	flags.StringVar(&s.Config, "config", "", "Path to custom arena config YAML")
	flags.StringVar(&s.Preset, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// NewLogger builds the process logger. The returned func closes the log
// file, if any.
func (s Settings) NewLogger(prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", s.LogLevel, err)
	}

	var (
		w       io.Writer = os.Stderr
		cleanup           = func() {}
	)
	if s.LogFile != "" {
		f, err := openLogFile(ExpandHome(s.LogFile))
		if err != nil {
			// Logging is optional; the terminal belongs to the game
			fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
			w = io.Discard
		} else {
			w = f
			cleanup = func() { _ = f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, cleanup, nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //#nosec G304 -- user-chosen log path
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// LoadConfig resolves the arena config from --config and --difficulty and
// makes it the config registry factories build with.
func (s Settings) LoadConfig() (config.ArenaConfig, error) {
	var preset config.DifficultyPreset
	if s.Preset != "" {
		preset = config.ParsePreset(s.Preset)
		if preset == "" {
			return config.ArenaConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s.Preset)
		}
	}
	return s.Configure(preset)
}

// Configure loads --config, applies preset if set and activates the result.
func (s Settings) Configure(preset config.DifficultyPreset) (config.ArenaConfig, error) {
	cfg, err := config.LoadArena(s.Config)
	if err != nil {
		return cfg, err
	}
	if preset != "" {
		config.ApplyArenaPreset(&cfg, preset)
	}
	if err := arena.Configure(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// OpenStore opens the score database. Scores are optional, so failures are
// logged and play continues without them.
func (s Settings) OpenStore(logger *log.Logger) *storage.Store {
	if s.DBPath == "" {
		return nil
	}
	store, err := storage.Open(s.DBPath)
	if err != nil {
		logger.Warn("scores disabled", "db", s.DBPath, "err", err)
		return nil
	}
	return store
}

// CheckVariant fails with a hint when id is not a registered variant.
func CheckVariant(id string) error {
	if registry.Exists(id) {
		return nil
	}
	ids := make([]string, 0, len(arena.Variants))
	for _, v := range arena.Variants {
		ids = append(ids, string(v))
	}
	return fmt.Errorf("unknown variant %q (want one of: %s)", id, strings.Join(ids, ", "))
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
