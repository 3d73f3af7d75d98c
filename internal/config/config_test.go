package config

import (
	"os"
	"path/filepath"
	"testing"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bundle-mcp.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(envFrom(nil))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults %+v", cfg, Default())
	}
	if cfg.Debug() {
		t.Error("default config should not enable debug")
	}
	if cfg.MaxDimension != DefaultMaxDimension {
		t.Errorf("MaxDimension: got %d, want %d", cfg.MaxDimension, DefaultMaxDimension)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"
filter = "bild-linear"
max_bundles = 8
max_dimension = 2048
`)

	cfg, err := load(envFrom(map[string]string{EnvConfigFile: path}))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !cfg.Debug() || cfg.Filter != "bild-linear" || cfg.MaxBundles != 8 || cfg.MaxDimension != 2048 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
filter = "box"
max_bundles = 8
`)

	cfg, err := load(envFrom(map[string]string{
		EnvConfigFile:   path,
		EnvLogLevel:     "DEBUG",
		EnvFilter:       "nearest",
		EnvMaxBundles:   "3",
		EnvMaxDimension: "512",
	}))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.Filter != "nearest" || cfg.MaxBundles != 3 || cfg.MaxDimension != 512 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	badToml := writeConfig(t, `max_bundles = "lots"`)

	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing file", map[string]string{EnvConfigFile: "/nonexistent/bundle-mcp.toml"}},
		{"bad toml type", map[string]string{EnvConfigFile: badToml}},
		{"bad max bundles", map[string]string{EnvMaxBundles: "many"}},
		{"negative max bundles", map[string]string{EnvMaxBundles: "-1"}},
		{"bad max dimension", map[string]string{EnvMaxDimension: "huge"}},
		{"zero max dimension", map[string]string{EnvMaxDimension: "0"}},
		{"bad log level", map[string]string{EnvLogLevel: "verbose"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := load(envFrom(tt.env)); err == nil {
				t.Error("load should fail")
			}
		})
	}
}
