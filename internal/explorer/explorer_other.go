//go:build !windows && !darwin

package explorer

import "os"

func defaultLauncher() Launcher {
	return CommandLauncher{Name: "xdg-open"}
}

// ExpandEnv expands $VAR and ${VAR} references.
func ExpandEnv(s string) string {
	return os.ExpandEnv(s)
}
