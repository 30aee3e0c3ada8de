//go:build !windows

package envvar

import (
	"os"

	"qtsetup/internal/shellenv"
)

func defaultUserStore() UserStore {
	path, err := DefaultDotenvPath()
	if err != nil {
		return unavailableStore{err: err}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return unavailableStore{err: err}
	}
	return NewDotenvStore(path, shellenv.DetectShell(os.Getenv("SHELL")), home)
}
