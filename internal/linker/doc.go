// Package linker makes the companion executable available on the system
// PATH by keeping a well-known symlink (by default /usr/local/bin/ollama)
// pointed at it. It reports whether the link is installed and creates or
// removes it through a privilege-elevation helper.
package linker
