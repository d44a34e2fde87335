package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/muurk/spinbutton/internal/spinbutton"
)

func TestGetConfigDir(t *testing.T) {
	if runtime.GOOS != "windows" && runtime.GOOS != "darwin" {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	}

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if !strings.Contains(configDir, "spinbutton") {
		t.Errorf("GetConfigDir() = %v, should contain 'spinbutton'", configDir)
	}
	if runtime.GOOS == "linux" && configDir != filepath.Join("/tmp/xdg", "spinbutton") {
		t.Errorf("GetConfigDir() = %v, want XDG_CONFIG_HOME based path", configDir)
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if reg.Version != CurrentVersion || reg.Profiles == nil || reg.Preferences == nil {
		t.Errorf("Load() of missing file should return defaults, got %+v", reg)
	}
	if reg.Path() != path {
		t.Errorf("Path() = %q, want %q", reg.Path(), path)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	start := 2.5
	reg.SetProfile("volume", &Profile{
		Min:      0,
		Max:      "11",
		Step:     0.5,
		Value:    &start,
		Wrap:     true,
		Name:     "volume",
		State:    spinbutton.Valid(true),
		Vertical: true,
	})
	reg.Preferences.DefaultProfile = "volume"
	if err := reg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be renamed away")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() after Save error = %v", err)
	}
	p := loaded.GetProfile("volume")
	if p == nil {
		t.Fatal("profile not persisted")
	}

	res := spinbutton.ResolveConfig(p.WidgetConfig())
	if res.Min != 0 || res.Max != 11 || res.Step != 0.5 || res.Precision != 1 {
		t.Errorf("resolved profile = %+v", res)
	}
	if v, ok := p.InitialValue().Float(); !ok || v != 2.5 {
		t.Errorf("InitialValue() = %v, %v", v, ok)
	}
	if !p.Wrap || !p.Vertical || p.State == nil || !*p.State {
		t.Errorf("flags not persisted: %+v", p)
	}
	if loaded.Preferences.DefaultProfile != "volume" {
		t.Errorf("DefaultProfile = %q", loaded.Preferences.DefaultProfile)
	}
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 2\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject version 2")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: [1\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}
}

func TestDeleteProfile(t *testing.T) {
	reg := NewRegistry()
	reg.SetProfile("a", &Profile{})
	reg.Preferences.DefaultProfile = "a"

	if !reg.DeleteProfile("a") {
		t.Error("DeleteProfile() should report existing profile")
	}
	if reg.DeleteProfile("a") {
		t.Error("DeleteProfile() of missing profile should return false")
	}
	if reg.Preferences.DefaultProfile != "" {
		t.Error("deleting the default profile should clear the preference")
	}
}

func TestProfileWithoutValueIsAbsent(t *testing.T) {
	p := &Profile{}
	if !p.InitialValue().IsAbsent() {
		t.Error("profile without value should start absent")
	}
	cfg := p.WidgetConfig()
	if cfg.Min != nil || cfg.Max != nil || cfg.Step != nil {
		t.Errorf("unset bounds should stay nil, got %+v", cfg)
	}
}
