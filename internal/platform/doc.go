// Package platform provides the filesystem and privilege primitives used to
// manage the system-wide CLI symlink. Symlinks are replaced atomically with a
// temporary link and a rename. Privileged work is described as a structured
// Request and handed to an Elevator, which on macOS uses osascript, on other
// Unix systems pkexec or sudo, and is unsupported on Windows.
package platform
