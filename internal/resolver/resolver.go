// Package resolver derives the absolute path of the companion executable
// that gets linked onto the system PATH.
package resolver

import (
	"os"
	"path/filepath"
	"strings"
)

// getwd is a seam for tests.
var getwd = os.Getwd

// Layout describes where the companion executable lives. It replaces any
// reliance on process-wide "is packaged" flags: callers build one explicitly
// or obtain one from Detect.
type Layout struct {
	// Packaged is true when running from an installed distribution.
	Packaged bool
	// ResourceDir holds bundled resources when Packaged is true.
	ResourceDir string
	// DevRoot is the working tree root used when Packaged is false.
	// Empty means the current working directory.
	DevRoot string
}

// Mode returns "packaged" or "development".
func (l Layout) Mode() string {
	if l.Packaged {
		return "packaged"
	}
	return "development"
}

// Resolve returns the absolute path of the executable called name.
//
// Packaged layouts join ResourceDir and name. Development layouts step one
// directory up from DevRoot and look for name there, so a checkout with the
// app in <repo>/app resolves to <repo>/<name>. No filesystem access happens
// beyond reading the working directory for relative roots.
func Resolve(l Layout, name string) string {
	if l.Packaged {
		return absolute(filepath.Join(l.ResourceDir, name))
	}
	return absolute(filepath.Join(l.DevRoot, "..", name))
}

// Detect infers a Layout from the path of the running executable. A binary
// inside a macOS application bundle (Foo.app/Contents/MacOS/bin) is packaged
// and its resources live in Foo.app/Contents/Resources. Anything else is
// treated as a development checkout rooted at the working directory.
func Detect(exe string) Layout {
	if exe == "" {
		return Layout{}
	}
	exe = filepath.Clean(exe)

	macos := filepath.Dir(exe)
	contents := filepath.Dir(macos)
	bundle := filepath.Dir(contents)
	if filepath.Base(macos) == "MacOS" &&
		filepath.Base(contents) == "Contents" &&
		strings.HasSuffix(bundle, ".app") {
		return Layout{
			Packaged:    true,
			ResourceDir: filepath.Join(contents, "Resources"),
		}
	}
	return Layout{}
}

func absolute(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	cwd, err := getwd()
	if err != nil {
		cwd = string(filepath.Separator)
	}
	return filepath.Join(cwd, p)
}
