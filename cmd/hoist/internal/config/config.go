// Package config loads the optional hoist.yaml project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// DefaultFrameInterval mirrors the runtime's frame scheduler default.
const DefaultFrameInterval = 16 * time.Millisecond

// Config represents the optional hoist.yaml configuration.
type Config struct {
	App     AppConfig     `yaml:"app"`
	Runtime RuntimeConfig `yaml:"runtime"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
	ID   string `yaml:"id,omitempty"`
}

// RuntimeConfig contains host runtime settings.
type RuntimeConfig struct {
	// Debug enables diagnostics assertions. Unset means enabled.
	Debug *bool `yaml:"debug,omitempty"`
	// FrameInterval is the dirty scheduler's frame interval, as a Go
	// duration string (e.g. "16ms").
	FrameInterval string `yaml:"frame_interval,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root          string
	ModulePath    string
	AppName       string
	AppID         string
	Debug         bool
	FrameInterval time.Duration
}

// LoadOptional reads hoist.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "hoist.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read hoist.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse hoist.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads hoist.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	appID := strings.TrimSpace(cfg.App.ID)
	if appID == "" {
		appID = defaultAppID(modulePath, appName)
	}

	debug := true
	if cfg.Runtime.Debug != nil {
		debug = *cfg.Runtime.Debug
	}

	frameInterval := DefaultFrameInterval
	if raw := strings.TrimSpace(cfg.Runtime.FrameInterval); raw != "" {
		frameInterval, err = time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid runtime.frame_interval %q: %w", raw, err)
		}
		if frameInterval <= 0 {
			return nil, fmt.Errorf("runtime.frame_interval must be positive, got %q", raw)
		}
	}

	return &Resolved{
		Root:          dir,
		ModulePath:    modulePath,
		AppName:       appName,
		AppID:         appID,
		Debug:         debug,
		FrameInterval: frameInterval,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	modName, _, ok := module.SplitPathVersion(modulePath)
	if ok {
		parts := strings.Split(modName, "/")
		if len(parts) > 0 {
			base = parts[len(parts)-1]
		}
	}
	if base == "" {
		return "hoist_app"
	}
	return base
}

func defaultAppID(modulePath, appName string) string {
	parts := strings.Split(modulePath, "/")
	if len(parts) < 2 || !strings.Contains(parts[0], ".") {
		return fmt.Sprintf("com.example.%s", sanitizeSegment(appName))
	}

	host := strings.Split(parts[0], ".")
	for i, j := 0, len(host)-1; i < j; i, j = i+1, j-1 {
		host[i], host[j] = host[j], host[i]
	}

	segments := host
	for _, p := range parts[1:] {
		if s := sanitizeSegment(p); s != "" {
			segments = append(segments, s)
		}
	}
	return strings.Join(segments, ".")
}

// sanitizeSegment lowercases a path segment and strips characters that are
// not valid in a reverse-domain identifier.
func sanitizeSegment(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == '-' || r == '_':
			sb.WriteRune('_')
		}
	}
	return sb.String()
}
