// Package report renders a detection Status for the terminal or as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"qtsetup/internal/model"
	"qtsetup/internal/shellenv"
)

const absent = "(not detected)"

// Generate builds the plain-text diagnostic report.
func Generate(st model.Status, verbose bool) string {
	var b strings.Builder

	b.WriteString("Quantower Setup Report\n")
	b.WriteString("======================\n\n")

	fmt.Fprintf(&b, "%s Process %q", model.Icon(st.Detected), st.ProcessName)
	if pid, ok := st.PID.Get(); ok {
		fmt.Fprintf(&b, " running (pid %d)\n", pid)
	} else {
		b.WriteString(" not running\n")
	}
	if verbose {
		fmt.Fprintf(&b, "    executable: %s\n", st.ProcessPath.OrElse(absent))
		fmt.Fprintf(&b, "    directory:  %s\n", st.ProcessDir.OrElse(absent))
	}
	b.WriteString("\n")

	b.WriteString("Paths\n")
	writePath(&b, "root", st.Root, st.RootExists)
	writePath(&b, "indicators", st.Indicators, st.IndicatorsExists)
	b.WriteString("\n")

	b.WriteString("Environment\n")
	writeEnv(&b, "process", st.EnvKey, st.EnvProcess, st.Root)
	writeEnv(&b, "user", st.EnvKey, st.EnvUser, st.Root)
	if verbose && st.UserStore != "" {
		fmt.Fprintf(&b, "    user store: %s\n", st.UserStore)
	}
	b.WriteString("\n")

	b.WriteString("Diagnostics\n")
	for _, d := range Diagnostics(st) {
		fmt.Fprintf(&b, "  - %s\n", d)
	}
	return b.String()
}

// ProbeSection describes what a new login shell sees.
func ProbeSection(res shellenv.ProbeResult, err error) string {
	if err != nil {
		return fmt.Sprintf("Login shell\n  %s probe failed: %v\n", model.IconMissing, err)
	}
	if !res.Set {
		return fmt.Sprintf("Login shell\n  %s new %s sessions do not see %s\n", model.IconMissing, res.Shell, res.Key)
	}
	return fmt.Sprintf("Login shell\n  %s new %s sessions see %s=%s\n", model.IconOK, res.Shell, res.Key, res.Value)
}

// Diagnostics lists actionable observations about st.
func Diagnostics(st model.Status) []string {
	var out []string
	if !st.Detected {
		out = append(out, fmt.Sprintf("Start Quantower so %q shows up in the process list, then re-run.", st.ProcessName))
	} else if !st.Root.IsPresent() {
		out = append(out, "The launcher is running but its executable could not be read; try again from an elevated prompt.")
	}
	if st.Root.IsPresent() && !st.RootExists {
		out = append(out, "The derived root does not exist; the install layout may differ from the expected one.")
	}
	if st.Root.IsPresent() && !st.EnvInSync {
		out = append(out, fmt.Sprintf("%s is not set to the detected root; run with --setup.", st.EnvKey))
	}
	if st.EnvInSync {
		out = append(out, "Restart any IDE that was already open so it picks up the user-scope value.")
	}
	if st.ExploreMuted {
		out = append(out, "Explore requests are suppressed.")
	}
	if len(out) == 0 {
		out = append(out, "Nothing to report.")
	}
	return out
}

// JSON writes st as indented JSON.
func JSON(w io.Writer, st model.Status) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(st)
}

func writePath(b *strings.Builder, label string, p model.Optional[string], exists bool) {
	v, ok := p.Get()
	if !ok {
		fmt.Fprintf(b, "  %s %-10s %s\n", model.IconMissing, label, absent)
		return
	}
	suffix := ""
	if !exists {
		suffix = " (missing on disk)"
	}
	fmt.Fprintf(b, "  %s %-10s %s%s\n", model.Icon(exists), label, v, suffix)
}

func writeEnv(b *strings.Builder, scope, key string, v, root model.Optional[string]) {
	val, ok := v.Get()
	if !ok {
		fmt.Fprintf(b, "  %s %-10s %s unset\n", model.IconMissing, scope, key)
		return
	}
	icon := model.IconOK
	if r, detected := root.Get(); detected && r != val {
		icon = model.IconStale
	}
	fmt.Fprintf(b, "  %s %-10s %s=%s\n", icon, scope, key, val)
}
