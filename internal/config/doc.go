// Package config manages user-level settings stored at ~/.ollama-link/config.yaml.
// Values may be overridden with OLLAMA_LINK_* environment variables. The
// settings decide where the companion executable is looked up, which path it
// is linked into and how privileges are obtained.
package config
