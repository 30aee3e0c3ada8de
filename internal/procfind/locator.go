// Package procfind looks up running processes by name and resolves where
// their executables live.
package procfind

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"qtsetup/internal/model"
)

// Locator filters a process Source by name.
type Locator struct {
	src Source
	log zerolog.Logger
}

// NewLocator returns a Locator over src. A nil src means the host process table.
func NewLocator(src Source, logger zerolog.Logger) *Locator {
	if src == nil {
		src = SystemSource()
	}
	return &Locator{src: src, log: logger}
}

// ListContainingName returns every process whose name contains sub
// (case-sensitive). Enumeration failures yield an empty result.
func (l *Locator) ListContainingName(sub string) []Handle {
	return l.filter(func(name string) bool { return strings.Contains(name, sub) })
}

// ListExactName returns every process named exactly name. A trailing
// ".exe" on the OS name is ignored, so "Starter" matches Starter.exe.
func (l *Locator) ListExactName(name string) []Handle {
	return l.filter(func(n string) bool { return n == name })
}

// CanDetect reports whether any process name contains sub.
func (l *Locator) CanDetect(sub string) bool {
	return len(l.ListContainingName(sub)) > 0
}

// FirstContainingName returns the first match in enumeration order. The
// order is whatever the OS hands back, and any process sharing the name
// fragment can win.
// TODO: filter false positives once a second distinguishing trait of the
// launcher (version resource, sibling files) is settled on.
func (l *Locator) FirstContainingName(sub string) model.Optional[Handle] {
	matches := l.ListContainingName(sub)
	if len(matches) == 0 {
		return model.None[Handle]()
	}
	return model.Some(matches[0])
}

func (l *Locator) filter(match func(name string) bool) []Handle {
	procs, err := l.src.Processes()
	if err != nil {
		l.log.Debug().Err(err).Msg("process enumeration failed")
		return []Handle{}
	}

	out := []Handle{}
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			// Exited between listing and inspection, or not ours to read.
			continue
		}
		if match(baseName(name)) {
			out = append(out, p)
		}
	}
	return out
}

// baseName strips a trailing ".exe" in any case. gopsutil reports Windows
// names as the executable's file name, extension included.
func baseName(name string) string {
	const ext = ".exe"
	if len(name) > len(ext) && strings.EqualFold(name[len(name)-len(ext):], ext) {
		return name[:len(name)-len(ext)]
	}
	return name
}

// ExecutablePath resolves the main executable of h. Permission failures and
// exited processes are reported as absent.
func ExecutablePath(h model.Optional[Handle]) model.Optional[string] {
	return model.FlatMap(h, func(p Handle) model.Optional[string] {
		exe, err := p.Exe()
		if err != nil {
			return model.None[string]()
		}
		return model.OptionalString(exe)
	})
}

// ExecutableDirectory is the directory holding ExecutablePath(h).
func ExecutableDirectory(h model.Optional[Handle]) model.Optional[string] {
	return model.Map(ExecutablePath(h), filepath.Dir)
}
