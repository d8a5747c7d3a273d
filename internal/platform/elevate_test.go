package platform

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestArgv(t *testing.T) {
	req := LinkRequest("/Applications/App.app/Contents/Resources/ollama", "/usr/local/bin/ollama")
	want := append([]string{"ln"}, lnForceFlags...)
	want = append(want, "/Applications/App.app/Contents/Resources/ollama", "/usr/local/bin/ollama")
	assert.Equal(t, want, req.Argv())

	assert.Equal(t, []string{"rm", "-f", "/usr/local/bin/ollama"}, UnlinkRequest("/usr/local/bin/ollama").Argv())
}

func TestRequestStringQuotes(t *testing.T) {
	req := UnlinkRequest("/tmp/it's here; rm -rf /")
	assert.Equal(t, `rm -f '/tmp/it'"'"'s here; rm -rf /'`, req.String())
}

func TestOsascriptArgsPassesArgvSeparately(t *testing.T) {
	argv := []string{"ln", "-F", "-s", "/a b/ollama", "/usr/local/bin/ollama"}
	args := osascriptArgs(argv)

	// Script lines come first as -e pairs, argv items are trailing arguments.
	require.Greater(t, len(args), len(argv))
	assert.Equal(t, argv, args[len(args)-len(argv):])
	script := args[:len(args)-len(argv)]
	for i := 0; i < len(script); i += 2 {
		assert.Equal(t, "-e", script[i])
	}
	assert.Contains(t, script, "do shell script cmd with administrator privileges")
	assert.Contains(t, script, `set cmd to cmd & quoted form of (a as text) & " "`)
}

func TestNewElevatorNone(t *testing.T) {
	assert.Equal(t, Direct{}, NewElevator("none"))
	assert.Equal(t, Direct{}, NewElevator("NONE"))
}

func TestDirectRun(t *testing.T) {
	tmp := t.TempDir()
	link := filepath.Join(tmp, "ollama")
	ctx := context.Background()

	require.NoError(t, Direct{}.Run(ctx, LinkRequest("/opt/ollama", link)))
	got, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, "/opt/ollama", got)

	require.NoError(t, Direct{}.Run(ctx, UnlinkRequest(link)))
	_, err = os.Lstat(link)
	assert.True(t, os.IsNotExist(err))

	assert.Error(t, Direct{}.Run(ctx, Request{Op: Op(42)}))
}

func TestUnsupported(t *testing.T) {
	err := Unsupported{}.Run(context.Background(), LinkRequest("a", "b"))
	assert.ErrorIs(t, err, ErrElevationUnsupported)
}
