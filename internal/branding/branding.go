// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded into the binary; edit it to rename the tool or to
// point it at a different companion executable.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	Executable  string `yaml:"executable"`
	LinkPath    string `yaml:"link_path"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "ollama-link",
			DisplayName: "Ollama",
			Description: "Install the ollama command line tool on the system PATH",
			HomeDir:     ".ollama-link",
			EnvPrefix:   "OLLAMA_LINK",
			Executable:  "ollama",
			LinkPath:    "/usr/local/bin/ollama",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "ollama-link").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".ollama-link").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "OLLAMA_LINK").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// Executable returns the file name of the companion binary (e.g., "ollama").
func Executable() string { load(); return defaults.Executable }

// LinkPath returns the well-known system path the companion binary is linked
// into (e.g., "/usr/local/bin/ollama").
func LinkPath() string { load(); return defaults.LinkPath }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("LOG_LEVEL") → "OLLAMA_LINK_LOG_LEVEL".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
