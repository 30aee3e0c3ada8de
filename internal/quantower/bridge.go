// Package quantower detects a running Quantower instance and exposes its
// installation root through the environment and the desktop file manager.
package quantower

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"qtsetup/internal/envvar"
	"qtsetup/internal/explorer"
	"qtsetup/internal/model"
	"qtsetup/internal/paths"
	"qtsetup/internal/procfind"
)

const (
	// ProcessName is the launcher binary searched for in the process table.
	ProcessName = "Starter"
	// EnvKey holds the detected installation root.
	EnvKey = "QuantowerRoot"
)

// Config is supplied by the host when building a Bridge.
type Config struct {
	ProcessName     string // defaults to ProcessName
	EnvKey          string // defaults to EnvKey
	SuppressExplore bool   // turn every explore request into a no-op
}

// Bridge ties process detection, path resolution, the environment and the
// file manager together.
type Bridge struct {
	processName string
	envKey      string
	suppress    atomic.Bool

	locator  *procfind.Locator
	env      envvar.Store
	launcher explorer.Launcher
	log      zerolog.Logger
}

// Option customises a Bridge.
type Option func(*Bridge)

func WithLocator(l *procfind.Locator) Option {
	return func(b *Bridge) { b.locator = l }
}

func WithEnv(s envvar.Store) Option {
	return func(b *Bridge) { b.env = s }
}

func WithLauncher(l explorer.Launcher) Option {
	return func(b *Bridge) { b.launcher = l }
}

func WithLogger(l zerolog.Logger) Option {
	return func(b *Bridge) { b.log = l }
}

// New builds a Bridge. Anything not injected falls back to the host OS.
func New(cfg Config, opts ...Option) *Bridge {
	b := &Bridge{
		processName: cfg.ProcessName,
		envKey:      cfg.EnvKey,
		log:         zerolog.Nop(),
	}
	if b.processName == "" {
		b.processName = ProcessName
	}
	if b.envKey == "" {
		b.envKey = EnvKey
	}
	b.suppress.Store(cfg.SuppressExplore)

	for _, opt := range opts {
		opt(b)
	}

	if b.locator == nil {
		b.locator = procfind.NewLocator(nil, b.log)
	}
	if b.env == nil {
		b.env = envvar.NewOSStore()
	}
	if b.launcher == nil {
		b.launcher = explorer.Default()
	}
	return b
}

func (b *Bridge) ProcessName() string { return b.processName }

func (b *Bridge) EnvKey() string { return b.envKey }

// SetSuppressExplore flips the explore gate.
func (b *Bridge) SetSuppressExplore(v bool) { b.suppress.Store(v) }

func (b *Bridge) ExploreSuppressed() bool { return b.suppress.Load() }

// CanDetect reports whether the platform appears to be running.
func (b *Bridge) CanDetect() bool {
	return b.locator.CanDetect(b.processName)
}

// Process returns the first matching launcher process. Another binary
// whose name contains the fragment wins if the OS lists it first.
func (b *Bridge) Process() model.Optional[procfind.Handle] {
	return b.locator.FirstContainingName(b.processName)
}

// ProcessPath is the running launcher's executable.
func (b *Bridge) ProcessPath() model.Optional[string] {
	return procfind.ExecutablePath(b.Process())
}

// ProcessDirectory is the directory of the running launcher.
func (b *Bridge) ProcessDirectory() model.Optional[string] {
	return procfind.ExecutableDirectory(b.Process())
}

// DetectRootPath derives the installation root of the running instance.
// The two-levels-up layout is assumed, not verified.
func (b *Bridge) DetectRootPath() model.Optional[string] {
	return paths.ProcessDirToRoot(b.ProcessDirectory())
}

// DetectCustomIndicatorsPath derives the custom indicators directory.
func (b *Bridge) DetectCustomIndicatorsPath() model.Optional[string] {
	return paths.RootToCustomIndicatorsDir(b.DetectRootPath())
}
