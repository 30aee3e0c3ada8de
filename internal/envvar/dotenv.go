package envvar

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"qtsetup/internal/shellenv"
)

// DotenvStore keeps user-scope variables in a dotenv file that the login
// profile sources.
type DotenvStore struct {
	path  string
	shell shellenv.Shell // nil skips profile wiring
	home  string
}

func NewDotenvStore(path string, shell shellenv.Shell, home string) *DotenvStore {
	return &DotenvStore{path: path, shell: shell, home: home}
}

// DefaultDotenvPath is $XDG_CONFIG_HOME/qtsetup/env or its platform equivalent.
func DefaultDotenvPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "qtsetup", "env"), nil
}

func (d *DotenvStore) Location() string {
	return d.path
}

func (d *DotenvStore) Lookup(key string) (string, bool) {
	vals, err := godotenv.Read(d.path)
	if err != nil {
		return "", false
	}
	v, ok := vals[key]
	return v, ok
}

func (d *DotenvStore) Store(key, value string) error {
	vals, err := godotenv.Read(d.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read %s: %w", d.path, err)
		}
		vals = map[string]string{}
	}
	vals[key] = value

	if err := os.MkdirAll(filepath.Dir(d.path), 0755); err != nil {
		return err
	}
	if err := writeEnvFile(d.path, vals); err != nil {
		return fmt.Errorf("write %s: %w", d.path, err)
	}

	if d.shell == nil {
		return nil
	}
	if _, err := shellenv.EnsureSourced(d.shell, d.home, d.path); err != nil {
		return err
	}
	return nil
}

// writeEnvFile emits KEY='value' lines. Single quotes read back verbatim
// through godotenv and through sh sourcing alike; godotenv.Write
// double-quotes and escapes characters such as "!", which sh keeps.
func writeEnvFile(path string, vals map[string]string) error {
	keys := make([]string, 0, len(vals))
	for k, v := range vals {
		if strings.ContainsAny(v, "'\n") || strings.HasSuffix(v, `\`) {
			return fmt.Errorf("%s: value cannot hold a single quote, a newline or a trailing backslash", k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%s\n", k, shellenv.Quote(vals[k]))
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}
