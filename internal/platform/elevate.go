package platform

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"al.essio.dev/pkg/shellescape"
	"github.com/mattn/go-isatty"
)

// ErrElevationUnsupported is returned when no privilege-elevation helper is
// available on this platform.
var ErrElevationUnsupported = errors.New("privilege elevation not supported on this platform")

// Seams for tests.
var (
	execCommand     = exec.CommandContext
	lookPath        = exec.LookPath
	geteuid         = os.Geteuid
	stdinIsTerminal = func() bool { return isatty.IsTerminal(os.Stdin.Fd()) }
)

// Op is the kind of privileged filesystem change a Request asks for.
type Op int

const (
	// OpLink replaces Link with a symlink pointing at Target.
	OpLink Op = iota
	// OpUnlink removes the symlink at Link.
	OpUnlink
)

// Request describes one privileged filesystem change. It is rendered as an
// explicit argument list and never interpolated into a shell string.
type Request struct {
	Op     Op
	Target string
	Link   string
}

// LinkRequest asks for link to become a symlink to target, overwriting
// whatever is there.
func LinkRequest(target, link string) Request {
	return Request{Op: OpLink, Target: target, Link: link}
}

// UnlinkRequest asks for the symlink at link to be removed.
func UnlinkRequest(link string) Request {
	return Request{Op: OpUnlink, Link: link}
}

// Argv returns the command that performs the request, name first.
func (r Request) Argv() []string {
	switch r.Op {
	case OpUnlink:
		return []string{"rm", "-f", r.Link}
	default:
		argv := append([]string{"ln"}, lnForceFlags...)
		return append(argv, r.Target, r.Link)
	}
}

// String renders the request as a shell-quoted command line for logs.
func (r Request) String() string {
	return shellescape.QuoteCommand(r.Argv())
}

// Elevator performs a Request, possibly asking the interactive user for
// administrator credentials first. Run blocks until the helper exits; it
// imposes no timeout of its own.
type Elevator interface {
	Run(ctx context.Context, req Request) error
}

// NewElevator returns the elevator for mode. "none" performs requests
// in-process with the caller's own permissions; anything else selects the
// platform helper.
func NewElevator(mode string) Elevator {
	if strings.EqualFold(mode, "none") {
		return Direct{}
	}
	return platformElevator()
}

// Direct applies requests in-process without elevation.
type Direct struct{}

// Run implements Elevator.
func (Direct) Run(_ context.Context, req Request) error {
	switch req.Op {
	case OpLink:
		return ForceSymlink(req.Target, req.Link)
	case OpUnlink:
		return RemoveSymlink(req.Link)
	default:
		return fmt.Errorf("unknown request op %d", req.Op)
	}
}

// Osascript asks for administrator privileges through the macOS
// authorization dialog. The argv is passed to the script as arguments and
// each item is quoted with AppleScript's "quoted form of".
type Osascript struct{}

// Run implements Elevator.
func (Osascript) Run(ctx context.Context, req Request) error {
	return runCommand(ctx, "osascript", osascriptArgs(req.Argv())...)
}

func osascriptArgs(argv []string) []string {
	script := []string{
		"on run argv",
		`set cmd to ""`,
		"repeat with a in argv",
		`set cmd to cmd & quoted form of (a as text) & " "`,
		"end repeat",
		"do shell script cmd with administrator privileges",
		"end run",
	}
	args := make([]string, 0, 2*len(script)+len(argv))
	for _, line := range script {
		args = append(args, "-e", line)
	}
	return append(args, argv...)
}

// Unix elevates with pkexec, falling back to sudo when stdin is a terminal.
type Unix struct{}

// Run implements Elevator.
func (Unix) Run(ctx context.Context, req Request) error {
	argv := req.Argv()
	if path, err := lookPath("pkexec"); err == nil {
		return runCommand(ctx, path, argv...)
	}
	if stdinIsTerminal() {
		if path, err := lookPath("sudo"); err == nil {
			return runCommand(ctx, path, argv...)
		}
	}
	return fmt.Errorf("neither pkexec nor an interactive sudo is available: %w", ErrElevationUnsupported)
}

// Unsupported always fails with ErrElevationUnsupported.
type Unsupported struct{}

// Run implements Elevator.
func (Unsupported) Run(context.Context, Request) error { return ErrElevationUnsupported }

// runCommand runs name with args and folds its stderr into the error.
func runCommand(ctx context.Context, name string, args ...string) error {
	cmd := execCommand(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
