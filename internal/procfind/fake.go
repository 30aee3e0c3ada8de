package procfind

import "errors"

// ErrGone is what a StaticProcess reports once marked as exited.
var ErrGone = errors.New("process no longer exists")

// StaticProcess is a fixed Handle for hosts and tests that supply their own
// process table.
type StaticProcess struct {
	Pid     int32
	Command string
	Path    string
	Denied  bool // Exe lookups fail as if access was refused
	Exited  bool // All lookups fail
}

func (s StaticProcess) PID() int32 { return s.Pid }

func (s StaticProcess) Name() (string, error) {
	if s.Exited {
		return "", ErrGone
	}
	return s.Command, nil
}

func (s StaticProcess) Exe() (string, error) {
	if s.Exited {
		return "", ErrGone
	}
	if s.Denied {
		return "", errors.New("access is denied")
	}
	return s.Path, nil
}

// StaticSource serves a fixed process list in order.
type StaticSource struct {
	Procs []Handle
	Err   error
}

func (s StaticSource) Processes() ([]Handle, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Procs, nil
}
