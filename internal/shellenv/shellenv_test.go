package shellenv

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectShell(t *testing.T) {
	assert.Equal(t, "bash", DetectShell("/bin/bash").Name())
	assert.Equal(t, "zsh", DetectShell("/usr/local/bin/zsh").Name())
	assert.Equal(t, "sh", DetectShell("/bin/sh").Name())
	assert.Equal(t, "sh", DetectShell("").Name())
	assert.Equal(t, "sh", DetectShell("/opt/bashful/bin/fish").Name())
}

func TestBashProfileFile(t *testing.T) {
	home := t.TempDir()
	b := &BashShell{}
	assert.Equal(t, filepath.Join(home, ".profile"), b.ProfileFile(home))

	require.NoError(t, os.WriteFile(filepath.Join(home, ".bash_profile"), nil, 0644))
	assert.Equal(t, filepath.Join(home, ".bash_profile"), b.ProfileFile(home))
}

func TestEnsureSourcedIsIdempotent(t *testing.T) {
	home := t.TempDir()
	profile := filepath.Join(home, ".zprofile")
	require.NoError(t, os.WriteFile(profile, []byte("export EDITOR=vim"), 0644))

	envFile := filepath.Join(home, ".config", "qtsetup", "env")

	changed, err := EnsureSourced(&ZshShell{}, home, envFile)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = EnsureSourced(&ZshShell{}, home, envFile)
	require.NoError(t, err)
	assert.False(t, changed)

	data, err := os.ReadFile(profile)
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.HasPrefix(content, "export EDITOR=vim\n"+blockStart))
	assert.Equal(t, 1, strings.Count(content, blockStart))
	assert.Contains(t, content, "'"+envFile+"'")
}

func TestEnsureSourcedCreatesProfile(t *testing.T) {
	home := t.TempDir()
	changed, err := EnsureSourced(&PosixShell{}, home, "/tmp/env")
	require.NoError(t, err)
	assert.True(t, changed)

	data, err := os.ReadFile(filepath.Join(home, ".profile"))
	require.NoError(t, err)
	assert.Equal(t, SourceBlock("/tmp/env"), string(data))
}

func TestShellQuote(t *testing.T) {
	assert.Equal(t, `'/a b'`, Quote("/a b"))
	assert.Equal(t, `'it'\''s'`, Quote("it's"))
}

func TestParseProbe(t *testing.T) {
	out := "welcome banner\n__qtsetup__ set QuantowerRoot=/opt/Quantower\n"
	res, ok := ParseProbe(out, "QuantowerRoot")
	require.True(t, ok)
	assert.True(t, res.Set)
	assert.Equal(t, "/opt/Quantower", res.Value)

	res, ok = ParseProbe("__qtsetup__  QuantowerRoot=\n", "QuantowerRoot")
	require.True(t, ok)
	assert.False(t, res.Set)

	_, ok = ParseProbe("__qtsetup__ set Other=1\n", "QuantowerRoot")
	assert.False(t, ok)
}

func TestProbe(t *testing.T) {
	orig := runCommand
	t.Cleanup(func() { runCommand = orig })
	t.Setenv("QuantowerRoot", "inherited")

	var gotArgv, gotEnv []string
	runCommand = func(argv []string, env []string) (string, error) {
		gotArgv, gotEnv = argv, env
		return "__qtsetup__ set QuantowerRoot=/from/profile\n", nil
	}

	res, err := Probe(&BashShell{}, "QuantowerRoot")
	require.NoError(t, err)
	assert.Equal(t, "bash", res.Shell)
	assert.True(t, res.Set)
	assert.Equal(t, "/from/profile", res.Value)

	assert.Equal(t, []string{"bash", "-lc", ProbeScript("QuantowerRoot")}, gotArgv)
	for _, e := range gotEnv {
		assert.False(t, strings.HasPrefix(e, "QuantowerRoot="), "inherited value leaked into probe")
	}
}

func TestProbeErrors(t *testing.T) {
	orig := runCommand
	t.Cleanup(func() { runCommand = orig })

	_, err := Probe(&ZshShell{}, "bad;name")
	assert.Error(t, err)

	runCommand = func([]string, []string) (string, error) { return "", errors.New("exit 127") }
	_, err = Probe(&ZshShell{}, "QuantowerRoot")
	assert.Error(t, err)

	runCommand = func([]string, []string) (string, error) { return "nothing useful", nil }
	_, err = Probe(&ZshShell{}, "QuantowerRoot")
	assert.Error(t, err)
}
