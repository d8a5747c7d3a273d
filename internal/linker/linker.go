package linker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/ollama/ollama-link/internal/branding"
	"github.com/ollama/ollama-link/internal/ctxlog"
	"github.com/ollama/ollama-link/internal/platform"
	"github.com/ollama/ollama-link/internal/resolver"
)

var (
	// ErrInstallFailed wraps every failure of the privileged install:
	// helper exec errors, non-zero exits and a cancelled credential prompt.
	ErrInstallFailed = errors.New("failed to install cli")
	// ErrForeignLink is returned when the link path holds something that
	// does not point at the resolved executable.
	ErrForeignLink = errors.New("link path is not managed by this installation")
)

// Manager owns one link path and the executable it should point at. It holds
// no mutable state after New returns.
type Manager struct {
	layout   resolver.Layout
	name     string
	exe      string
	link     string
	elevator platform.Elevator
	logger   *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLayout sets the runtime layout used to resolve the executable.
func WithLayout(l resolver.Layout) Option {
	return func(m *Manager) { m.layout = l }
}

// WithExecutableName sets the companion executable's file name.
func WithExecutableName(name string) Option {
	return func(m *Manager) { m.name = name }
}

// WithLinkPath sets the system path the executable is linked into.
func WithLinkPath(path string) Option {
	return func(m *Manager) { m.link = path }
}

// WithElevator sets how privileged requests are carried out.
func WithElevator(e platform.Elevator) Option {
	return func(m *Manager) { m.elevator = e }
}

// WithLogger sets the logger, overriding any logger carried in contexts.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// New builds a Manager. The executable path is resolved once, here.
func New(opts ...Option) *Manager {
	m := &Manager{
		name: branding.Executable(),
		link: branding.LinkPath(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.elevator == nil {
		m.elevator = platform.NewElevator("auto")
	}
	m.exe = resolver.Resolve(m.layout, m.name)
	return m
}

// ExecutablePath returns the resolved absolute path of the executable.
func (m *Manager) ExecutablePath() string { return m.exe }

// LinkPath returns the system path managed by m.
func (m *Manager) LinkPath() string { return m.link }

// Layout returns the layout the executable path was resolved from.
func (m *Manager) Layout() resolver.Layout { return m.layout }

// Status inspects the link path. The symlink target is compared with the
// resolved executable path as a plain string, without normalization.
func (m *Manager) Status() (State, error) {
	isLink, err := platform.IsSymlink(m.link)
	if err != nil {
		return StateMissing, fmt.Errorf("inspecting %s: %w", m.link, err)
	}
	if !isLink {
		if exists(m.link) {
			return StateNotSymlink, nil
		}
		return StateMissing, nil
	}

	target, err := platform.ReadSymlinkTarget(m.link)
	if err != nil {
		return StateMissing, fmt.Errorf("reading %s: %w", m.link, err)
	}
	if target != m.exe {
		return StateForeign, nil
	}
	return StateInstalled, nil
}

// Installed reports whether the link path is a symlink to the resolved
// executable. Any inspection error counts as not installed.
func (m *Manager) Installed() bool {
	state, err := m.Status()
	return err == nil && state == StateInstalled
}

// Install links the executable into place, prompting for administrator
// credentials if needed. Failures are logged and swallowed; callers that
// need to know the outcome should use TryInstall or re-check Installed.
func (m *Manager) Install(ctx context.Context) {
	ctx = m.withLogger(ctx)
	if err := m.TryInstall(ctx); err != nil {
		ctxlog.Error(ctx, "cli: failed to install cli", "error", err)
	}
}

// TryInstall is Install with the failure returned instead of logged. The
// existing entry at the link path is overwritten. It blocks until the
// elevation helper exits.
func (m *Manager) TryInstall(ctx context.Context) error {
	ctx = m.withLogger(ctx)
	req := platform.LinkRequest(m.exe, m.link)
	ctxlog.Debug(ctx, "installing cli", "command", req.String())

	if err := m.elevator.Run(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInstallFailed, err)
	}

	// Helpers can exit 0 without producing the link, e.g. ln linking
	// inside an existing directory.
	state, err := m.Status()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInstallFailed, err)
	}
	if state != StateInstalled {
		return fmt.Errorf("%w: %s is %s after install", ErrInstallFailed, m.link, state)
	}
	ctxlog.Info(ctx, "installed cli", "link", m.link, "target", m.exe)
	return nil
}

// Uninstall removes the link if, and only if, it points at the resolved
// executable. A missing link is a no-op.
func (m *Manager) Uninstall(ctx context.Context) error {
	state, err := m.Status()
	if err != nil {
		return err
	}

	switch state {
	case StateMissing:
		return nil
	case StateForeign, StateNotSymlink:
		return fmt.Errorf("%s is %s: %w", m.link, state, ErrForeignLink)
	}

	req := platform.UnlinkRequest(m.link)
	ctxlog.Debug(m.withLogger(ctx), "removing cli link", "command", req.String())
	if err := m.elevator.Run(ctx, req); err != nil {
		return fmt.Errorf("removing %s: %w", m.link, err)
	}
	return nil
}

// withLogger makes m's own logger, if any, the one carried by ctx.
func (m *Manager) withLogger(ctx context.Context) context.Context {
	if m.logger != nil {
		return ctxlog.New(ctx, m.logger)
	}
	return ctx
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
