package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestCheckVariant(t *testing.T) {
	for _, id := range []string{"drift", "descent"} {
		if err := CheckVariant(id); err != nil {
			t.Errorf("CheckVariant(%q) = %v", id, err)
		}
	}
	err := CheckVariant("dino")
	if err == nil {
		t.Fatal("unknown variant accepted")
	}
	if !strings.Contains(err.Error(), "drift") {
		t.Errorf("error %q should list the variants", err)
	}
}

func TestLoadConfigPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	s := Settings{Preset: "hard"}
	cfg, err := s.LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Spawn.EnemyChance != 40 {
		t.Errorf("hard enemy chance = %d, want 40", cfg.Spawn.EnemyChance)
	}

	s.Preset = "brutal"
	if _, err := s.LoadConfig(); err == nil {
		t.Error("unknown preset accepted")
	}
}

func TestLoadConfigRejectsInvalidFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "arena.yaml")
	if err := os.WriteFile(path, []byte("player:\n  max_health: 500\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	s := Settings{Config: path}
	if _, err := s.LoadConfig(); err == nil {
		t.Error("max_health above the cap accepted")
	}
}

func TestBindDefaults(t *testing.T) {
	var s Settings
	cmd := &cobra.Command{Use: "x", RunE: func(*cobra.Command, []string) error { return nil }}
	s.Bind(cmd, "")
	cmd.SetArgs([]string{"--seed", "7", "--difficulty", "easy"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if s.FPS != 60 || s.Seed != 7 || s.Preset != "easy" || s.LogFile != "" {
		t.Errorf("settings = %+v", s)
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "arena.log")
	s := Settings{LogLevel: "debug", LogFile: path}

	logger, closeLog, err := s.NewLogger("test")
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("hello")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q", data)
	}

	s.LogLevel = "loud"
	if _, _, err := s.NewLogger("test"); err == nil {
		t.Error("bad level accepted")
	}
}

func TestOpenStoreDisabled(t *testing.T) {
	s := Settings{}
	if store := s.OpenStore(nil); store != nil {
		t.Error("empty --db should disable the store")
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if got := ExpandHome("~/x.log"); got != home+"/x.log" {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := ExpandHome("/abs/x.log"); got != "/abs/x.log" {
		t.Errorf("ExpandHome = %q", got)
	}
}
