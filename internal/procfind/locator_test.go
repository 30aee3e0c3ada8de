package procfind

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v4/process"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qtsetup/internal/model"
)

func newTestLocator(procs ...Handle) *Locator {
	return NewLocator(StaticSource{Procs: procs}, zerolog.Nop())
}

func TestListContainingName(t *testing.T) {
	l := newTestLocator(
		StaticProcess{Pid: 1, Command: "Starter"},
		StaticProcess{Pid: 2, Command: "Quantower.Starter"},
		StaticProcess{Pid: 3, Command: "starter"},
		StaticProcess{Pid: 4, Command: "explorer"},
	)

	got := l.ListContainingName("Starter")
	require.Len(t, got, 2)
	assert.Equal(t, int32(1), got[0].PID())
	assert.Equal(t, int32(2), got[1].PID())
}

func TestListContainingNameNoMatch(t *testing.T) {
	l := newTestLocator()
	got := l.ListContainingName("Starter")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListSkipsUnreadableProcesses(t *testing.T) {
	l := newTestLocator(
		StaticProcess{Pid: 1, Command: "Starter", Exited: true},
		StaticProcess{Pid: 2, Command: "Starter"},
	)
	got := l.ListContainingName("Starter")
	require.Len(t, got, 1)
	assert.Equal(t, int32(2), got[0].PID())
}

func TestEnumerationErrorYieldsEmpty(t *testing.T) {
	l := NewLocator(StaticSource{Err: errors.New("boom")}, zerolog.Nop())
	assert.Empty(t, l.ListContainingName("Starter"))
	assert.False(t, l.CanDetect("Starter"))
	assert.False(t, l.FirstContainingName("Starter").IsPresent())
}

func TestListExactName(t *testing.T) {
	l := newTestLocator(
		StaticProcess{Pid: 1, Command: "Starter"},
		StaticProcess{Pid: 2, Command: "Quantower.Starter"},
	)
	got := l.ListExactName("Starter")
	require.Len(t, got, 1)
	assert.Equal(t, int32(1), got[0].PID())
	assert.Empty(t, l.ListExactName("Start"))
}

func TestListExactNameIgnoresExeSuffix(t *testing.T) {
	l := newTestLocator(
		StaticProcess{Pid: 1, Command: "Starter.exe"},
		StaticProcess{Pid: 2, Command: "STARTER.EXE"},
		StaticProcess{Pid: 3, Command: "Starter.exe.bak"},
		StaticProcess{Pid: 4, Command: "Quantower.Starter.exe"},
	)
	got := l.ListExactName("Starter")
	require.Len(t, got, 1)
	assert.Equal(t, int32(1), got[0].PID())
	assert.Len(t, l.ListContainingName("Starter"), 3)
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "Starter", baseName("Starter.exe"))
	assert.Equal(t, "Starter", baseName("Starter.EXE"))
	assert.Equal(t, "Starter", baseName("Starter"))
	assert.Equal(t, ".exe", baseName(".exe"))
	assert.Equal(t, "Starter.exe.bak", baseName("Starter.exe.bak"))
}

func TestCanDetect(t *testing.T) {
	l := newTestLocator(StaticProcess{Pid: 1, Command: "Starter"})
	assert.True(t, l.CanDetect("Start"))
	assert.False(t, l.CanDetect("Quantower"))
}

func TestFirstContainingName(t *testing.T) {
	assert.False(t, newTestLocator().FirstContainingName("Starter").IsPresent())

	l := newTestLocator(
		StaticProcess{Pid: 7, Command: "Starter"},
		StaticProcess{Pid: 9, Command: "Starter"},
	)
	h, ok := l.FirstContainingName("Starter").Get()
	require.True(t, ok)
	// Order is OS-defined in practice; only assert that a match came back.
	name, err := h.Name()
	require.NoError(t, err)
	assert.Contains(t, name, "Starter")
}

func TestExecutablePath(t *testing.T) {
	exe := filepath.Join(t.TempDir(), "bin", "Starter.exe")

	assert.False(t, ExecutablePath(model.None[Handle]()).IsPresent())
	assert.False(t, ExecutableDirectory(model.None[Handle]()).IsPresent())

	h := model.Some[Handle](StaticProcess{Pid: 1, Command: "Starter", Path: exe})
	assert.Equal(t, exe, ExecutablePath(h).OrElse(""))
	assert.Equal(t, filepath.Dir(exe), ExecutableDirectory(h).OrElse(""))
}

func TestExecutablePathDenied(t *testing.T) {
	h := model.Some[Handle](StaticProcess{Pid: 1, Command: "Starter", Path: "x", Denied: true})
	assert.False(t, ExecutablePath(h).IsPresent())
	assert.False(t, ExecutableDirectory(h).IsPresent())

	gone := model.Some[Handle](StaticProcess{Pid: 1, Command: "Starter", Path: "x", Exited: true})
	assert.False(t, ExecutableDirectory(gone).IsPresent())
}

func TestSystemSourceUsesGopsutil(t *testing.T) {
	orig := listProcesses
	t.Cleanup(func() { listProcesses = orig })

	listProcesses = func() ([]*process.Process, error) {
		return []*process.Process{{Pid: 42}}, nil
	}
	procs, err := SystemSource().Processes()
	require.NoError(t, err)
	require.Len(t, procs, 1)
	assert.Equal(t, int32(42), procs[0].PID())

	listProcesses = func() ([]*process.Process, error) {
		return nil, errors.New("denied")
	}
	_, err = SystemSource().Processes()
	assert.Error(t, err)
}

func TestSystemSourceSmoke(t *testing.T) {
	// Real process table; just make sure nothing panics.
	l := NewLocator(nil, zerolog.Nop())
	_ = l.ListContainingName("definitely-not-a-running-process-name")
	assert.False(t, l.CanDetect("definitely-not-a-running-process-name"))
}
