// Package shellenv wires the user-scope variable into login shells and
// checks whether new shell sessions actually see it.
package shellenv

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
)

const probeMarker = "__qtsetup__"

var (
	keyRe   = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	probeRe = regexp.MustCompile(`^` + probeMarker + ` (set|) ([A-Za-z_][A-Za-z0-9_]*)=(.*)$`)
)

// ProbeResult is what a fresh login shell reported for a variable.
type ProbeResult struct {
	Shell string // Shell that was probed
	Key   string // Variable name
	Set   bool   // Variable is defined in the new session
	Value string // Its value, if Set
}

// runCommand is swapped out in tests.
var runCommand = func(argv []string, env []string) (string, error) {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Env = env
	out, err := cmd.Output()
	return string(out), err
}

// ProbeScript prints key in a form ParseProbe understands.
func ProbeScript(key string) string {
	return fmt.Sprintf(`printf '%s %%s %%s=%%s\n' "${%s+set}" %s "${%s-}"`, probeMarker, key, key, key)
}

// Probe starts a new login shell and asks it for key. The inherited value
// is stripped first so only what the start-up files provide is observed.
func Probe(shell Shell, key string) (ProbeResult, error) {
	if !keyRe.MatchString(key) {
		return ProbeResult{}, fmt.Errorf("invalid variable name %q", key)
	}

	var env []string
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, key+"=") {
			continue
		}
		env = append(env, e)
	}

	out, err := runCommand(shell.LoginCommand(ProbeScript(key)), env)
	if err != nil {
		return ProbeResult{}, fmt.Errorf("%s login probe: %w", shell.Name(), err)
	}

	res, ok := ParseProbe(out, key)
	if !ok {
		return ProbeResult{}, fmt.Errorf("%s login probe: no marker in output", shell.Name())
	}
	res.Shell = shell.Name()
	return res, nil
}

// ParseProbe finds the marker line for key in shell output. Start-up files
// may print anything around it.
func ParseProbe(output, key string) (ProbeResult, bool) {
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		m := probeRe.FindStringSubmatch(scanner.Text())
		if len(m) != 4 || m[2] != key {
			continue
		}
		return ProbeResult{Key: key, Set: m[1] == "set", Value: m[3]}, true
	}
	return ProbeResult{}, false
}
