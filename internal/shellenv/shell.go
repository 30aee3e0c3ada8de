package shellenv

import (
	"os"
	"path/filepath"
	"strings"
)

// Shell defines the interface for shell-specific login behaviour.
type Shell interface {
	// Name is the shell's short name.
	Name() string
	// ProfileFile is the login start-up file new sessions read.
	ProfileFile(home string) string
	// LoginCommand runs script the way a new login session would.
	LoginCommand(script string) []string
}

// ZshShell implements Shell for Zsh.
type ZshShell struct{}

func (s *ZshShell) Name() string {
	return "zsh"
}

func (s *ZshShell) ProfileFile(home string) string {
	return filepath.Join(home, ".zprofile")
}

func (s *ZshShell) LoginCommand(script string) []string {
	return []string{"zsh", "-lc", script}
}

// BashShell implements Shell for Bash.
type BashShell struct{}

func (s *BashShell) Name() string {
	return "bash"
}

// ProfileFile prefers ~/.bash_profile, since bash skips ~/.profile when it exists.
func (s *BashShell) ProfileFile(home string) string {
	bp := filepath.Join(home, ".bash_profile")
	if _, err := os.Stat(bp); err == nil {
		return bp
	}
	return filepath.Join(home, ".profile")
}

func (s *BashShell) LoginCommand(script string) []string {
	return []string{"bash", "-lc", script}
}

// PosixShell implements Shell for plain sh and anything unrecognised.
type PosixShell struct{}

func (s *PosixShell) Name() string {
	return "sh"
}

func (s *PosixShell) ProfileFile(home string) string {
	return filepath.Join(home, ".profile")
}

func (s *PosixShell) LoginCommand(script string) []string {
	return []string{"sh", "-lc", script}
}

// DetectShell identifies the user's shell from $SHELL.
func DetectShell(shellPath string) Shell {
	base := filepath.Base(shellPath)
	switch {
	case strings.Contains(base, "bash"):
		return &BashShell{}
	case strings.Contains(base, "zsh"):
		return &ZshShell{}
	default:
		return &PosixShell{}
	}
}
