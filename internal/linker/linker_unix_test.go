//go:build unix

package linker

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"testing"

	"github.com/ollama/ollama-link/internal/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shellElevator runs the request argv through a real child process.
type shellElevator struct {
	script string
}

func (e shellElevator) Run(ctx context.Context, req platform.Request) error {
	argv := req.Argv()
	cmd := exec.CommandContext(ctx, "sh", append([]string{"-c", e.script, "sh"}, argv...)...)
	return cmd.Run()
}

func TestInstallWithRealSubprocess(t *testing.T) {
	m, link := newTestManager(t, shellElevator{script: `exec "$@"`})

	m.Install(context.Background())
	m.Install(context.Background())
	assert.True(t, m.Installed())

	target, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, m.ExecutablePath(), target)
}

func TestInstallSubprocessNonZeroExit(t *testing.T) {
	m, link := newTestManager(t, shellElevator{script: "exit 1"})

	err := m.TryInstall(context.Background())
	assert.ErrorIs(t, err, ErrInstallFailed)

	_, statErr := os.Lstat(link)
	assert.True(t, os.IsNotExist(statErr))
	assert.False(t, m.Installed())
}

func TestInstallOverDirectoryNeverReportsFalseSuccess(t *testing.T) {
	m, link := newTestManager(t, shellElevator{script: `exec "$@"`})
	require.NoError(t, os.Mkdir(link, 0755))

	err := m.TryInstall(context.Background())
	assert.Equal(t, err == nil, m.Installed(), "TryInstall err=%v", err)

	if runtime.GOOS == "linux" {
		assert.ErrorIs(t, err, ErrInstallFailed)
		entries, readErr := os.ReadDir(link)
		require.NoError(t, readErr)
		assert.Empty(t, entries, "link was created inside the directory")
	}
}
