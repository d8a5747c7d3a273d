// Package cli defines the Cobra command tree for ollama-link. Each file
// registers one top-level command with the root command. Commands delegate
// to the linker and config packages and only handle flags and output.
package cli
