package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/ollama/ollama-link/internal/branding"
	"github.com/ollama/ollama-link/internal/resolver"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyPackaged    = "packaged"
	KeyResourceDir = "resource_dir"
	KeyDevRoot     = "dev_root"
	KeyLinkPath    = "link_path"
	KeyExecutable  = "executable"
	KeyElevation   = "elevation"
	KeyLogLevel    = "log_level"
)

// Keys lists every setting understood by the tool.
var Keys = []string{
	KeyPackaged, KeyResourceDir, KeyDevRoot, KeyLinkPath,
	KeyExecutable, KeyElevation, KeyLogLevel,
}

var v = viper.New()

// Settings is the typed view of the loaded configuration.
type Settings struct {
	LinkPath   string
	Executable string
	Elevation  string
	LogLevel   string
}

// Dir returns the path to the config directory (~/.ollama-link/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes a fresh Viper instance reading from the config file and
// environment. A missing config file is not an error.
func Load() error {
	v = viper.New()
	v.SetConfigFile(FilePath())
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()
	for _, key := range Keys {
		// AutomaticEnv only answers Get; binding lets IsSet see env values too.
		_ = v.BindEnv(key)
	}

	v.SetDefault(KeyLinkPath, branding.LinkPath())
	v.SetDefault(KeyExecutable, branding.Executable())
	v.SetDefault(KeyElevation, "auto")
	v.SetDefault(KeyLogLevel, "WARN")

	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(FilePath()); os.IsNotExist(statErr) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return v.GetString(key)
}

// Current returns the loaded settings.
func Current() Settings {
	return Settings{
		LinkPath:   v.GetString(KeyLinkPath),
		Executable: v.GetString(KeyExecutable),
		Elevation:  v.GetString(KeyElevation),
		LogLevel:   v.GetString(KeyLogLevel),
	}
}

// Layout combines the layout detected from exe with any configured
// overrides. Explicit settings always win over detection.
func Layout(exe string) resolver.Layout {
	l := resolver.Detect(exe)
	if v.IsSet(KeyPackaged) {
		l.Packaged = v.GetBool(KeyPackaged)
	}
	if dir := v.GetString(KeyResourceDir); dir != "" {
		l.ResourceDir = dir
	}
	if root := v.GetString(KeyDevRoot); root != "" {
		l.DevRoot = root
	}
	return l
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !slices.Contains(Keys, key) {
		return fmt.Errorf("unknown config key %q", key)
	}

	var typed any = value
	if key == KeyPackaged {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false: %w", key, err)
		}
		typed = b
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	// Only persist what came from the file, not defaults or env.
	file := viper.New()
	file.SetConfigFile(FilePath())
	file.SetConfigType(fileType)
	if _, err := os.Stat(FilePath()); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}
	file.Set(key, typed)

	if err := file.WriteConfigAs(FilePath()); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	v.Set(key, typed)
	return nil
}
