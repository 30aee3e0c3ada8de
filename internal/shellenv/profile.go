package shellenv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

const (
	blockStart = "# >>> qtsetup >>>"
	blockEnd   = "# <<< qtsetup <<<"
)

// SourceBlock is the profile snippet that exports every entry of envFile.
func SourceBlock(envFile string) string {
	q := Quote(envFile)
	return fmt.Sprintf("%s\n[ -f %s ] && { set -a; . %s; set +a; }\n%s\n", blockStart, q, q, blockEnd)
}

// EnsureSourced appends SourceBlock to the shell's login profile unless a
// qtsetup block is already there. It reports whether the profile changed.
func EnsureSourced(shell Shell, home, envFile string) (bool, error) {
	profile := shell.ProfileFile(home)

	existing, err := os.ReadFile(profile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("read %s: %w", profile, err)
	}
	if strings.Contains(string(existing), blockStart) {
		return false, nil
	}

	f, err := os.OpenFile(profile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return false, fmt.Errorf("open %s: %w", profile, err)
	}
	defer f.Close()

	block := SourceBlock(envFile)
	if len(existing) > 0 && !strings.HasSuffix(string(existing), "\n") {
		block = "\n" + block
	}
	if _, err := f.WriteString(block); err != nil {
		return false, fmt.Errorf("write %s: %w", profile, err)
	}
	return true, nil
}

// Quote wraps s in single quotes for POSIX sh. Nothing inside is expanded.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
