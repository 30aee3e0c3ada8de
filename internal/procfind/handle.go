package procfind

import (
	"github.com/shirou/gopsutil/v4/process"
)

// Handle is a live OS process. Handles are fetched fresh on every query and
// go stale once the process exits; accessors then return errors.
type Handle interface {
	PID() int32
	Name() (string, error)
	Exe() (string, error)
}

// Source enumerates the processes currently running on the host.
type Source interface {
	Processes() ([]Handle, error)
}

// System call wrapper for testing
var listProcesses = process.Processes

type osProcess struct {
	p *process.Process
}

func (o osProcess) PID() int32 { return o.p.Pid }

func (o osProcess) Name() (string, error) { return o.p.Name() }

// Exe may fail for elevated or other-user processes.
func (o osProcess) Exe() (string, error) { return o.p.Exe() }

type systemSource struct{}

// SystemSource lists processes through gopsutil.
func SystemSource() Source {
	return systemSource{}
}

func (systemSource) Processes() ([]Handle, error) {
	procs, err := listProcesses()
	if err != nil {
		return nil, err
	}
	handles := make([]Handle, 0, len(procs))
	for _, p := range procs {
		handles = append(handles, osProcess{p: p})
	}
	return handles, nil
}
