//go:build windows

package explorer

import "golang.org/x/sys/windows"

func defaultLauncher() Launcher {
	return CommandLauncher{Name: "explorer.exe"}
}

// ExpandEnv expands %VAR% references the way the shell does.
func ExpandEnv(s string) string {
	if s == "" {
		return ""
	}
	src, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return s
	}
	n, err := windows.ExpandEnvironmentStrings(src, nil, 0)
	if err != nil || n == 0 {
		return s
	}
	buf := make([]uint16, n)
	if _, err := windows.ExpandEnvironmentStrings(src, &buf[0], n); err != nil {
		return s
	}
	return windows.UTF16ToString(buf)
}
