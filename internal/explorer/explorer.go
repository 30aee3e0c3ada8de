// Package explorer opens directories in the desktop file manager.
package explorer

import (
	"os"
	"os/exec"
	"sync"
)

// Launcher opens a directory in the platform's file manager.
type Launcher interface {
	Open(dir string) error
}

// CommandLauncher starts Name with the directory as its last argument and
// does not wait for it.
type CommandLauncher struct {
	Name string
	Args []string
}

func (c CommandLauncher) Open(dir string) error {
	args := append(append([]string(nil), c.Args...), dir)
	cmd := exec.Command(c.Name, args...)
	return cmd.Start()
}

// Default returns the launcher for the current OS.
func Default() Launcher {
	return defaultLauncher()
}

// DirExists reports whether p names an existing directory.
func DirExists(p string) bool {
	if p == "" {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

// Recorder counts Open calls instead of launching anything.
type Recorder struct {
	mu     sync.Mutex
	Err    error // returned from every Open
	opened []string
}

func (r *Recorder) Open(dir string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.opened = append(r.opened, dir)
	return r.Err
}

// Calls is the number of Open calls so far.
func (r *Recorder) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.opened)
}

// Opened lists the directories passed to Open.
func (r *Recorder) Opened() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.opened...)
}
