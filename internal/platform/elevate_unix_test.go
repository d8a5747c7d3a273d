//go:build unix

package platform

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	name string
	args []string
}

func stubExec(t *testing.T, script string) (*recorded, *gostub.Stubs) {
	t.Helper()
	rec := &recorded{}
	stubs := gostub.Stub(&execCommand, func(ctx context.Context, name string, args ...string) *exec.Cmd {
		rec.name = name
		rec.args = args
		return exec.CommandContext(ctx, "sh", "-c", script)
	})
	return rec, stubs
}

func TestUnixPrefersPkexec(t *testing.T) {
	rec, stubs := stubExec(t, "exit 0")
	defer stubs.Reset()
	stubs.Stub(&lookPath, func(file string) (string, error) { return "/usr/bin/" + file, nil })
	stubs.Stub(&stdinIsTerminal, func() bool { return true })

	req := LinkRequest("/opt/ollama", "/usr/local/bin/ollama")
	require.NoError(t, Unix{}.Run(context.Background(), req))
	assert.Equal(t, "/usr/bin/pkexec", rec.name)
	assert.Equal(t, req.Argv(), rec.args)
}

func TestUnixFallsBackToSudoOnTerminal(t *testing.T) {
	rec, stubs := stubExec(t, "exit 0")
	defer stubs.Reset()
	stubs.Stub(&lookPath, func(file string) (string, error) {
		if file == "sudo" {
			return "/usr/bin/sudo", nil
		}
		return "", exec.ErrNotFound
	})
	stubs.Stub(&stdinIsTerminal, func() bool { return true })

	require.NoError(t, Unix{}.Run(context.Background(), UnlinkRequest("/usr/local/bin/ollama")))
	assert.Equal(t, "/usr/bin/sudo", rec.name)
}

func TestUnixWithoutHelper(t *testing.T) {
	_, stubs := stubExec(t, "exit 0")
	defer stubs.Reset()
	stubs.Stub(&lookPath, func(string) (string, error) { return "", exec.ErrNotFound })
	stubs.Stub(&stdinIsTerminal, func() bool { return false })

	err := Unix{}.Run(context.Background(), UnlinkRequest("/usr/local/bin/ollama"))
	assert.ErrorIs(t, err, ErrElevationUnsupported)
}

func TestRunCommandIncludesStderr(t *testing.T) {
	_, stubs := stubExec(t, "echo 'User canceled.' >&2; exit 1")
	defer stubs.Reset()

	err := runCommand(context.Background(), "osascript", "-e", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "osascript")
	assert.Contains(t, err.Error(), "User canceled.")

	var exitErr *exec.ExitError
	assert.True(t, errors.As(err, &exitErr))
}

func TestOsascriptRun(t *testing.T) {
	rec, stubs := stubExec(t, "exit 0")
	defer stubs.Reset()

	req := LinkRequest("/opt/ollama", "/usr/local/bin/ollama")
	require.NoError(t, Osascript{}.Run(context.Background(), req))
	assert.Equal(t, "osascript", rec.name)
	assert.Equal(t, osascriptArgs(req.Argv()), rec.args)
}

func TestPlatformElevatorAsRoot(t *testing.T) {
	stubs := gostub.Stub(&geteuid, func() int { return 0 })
	defer stubs.Reset()
	assert.Equal(t, Direct{}, NewElevator("auto"))
}
