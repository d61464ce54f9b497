package process

import (
	"github.com/mitchellh/go-ps"

	"calculator/internal/platform"
)

// ProcessInfo is a small struct representing a running process.
type ProcessInfo struct {
	PID  int
	Name string
}

// Lister returns the running processes. It is a variable so tests can
// substitute a fixed table.
var Lister = GetProcesses

// GetProcesses returns a list of running processes in a platform-agnostic format.
// It wraps github.com/mitchellh/go-ps internally and normalizes the result.
func GetProcesses() ([]ProcessInfo, error) {
	procs, err := ps.Processes()
	if err != nil {
		return nil, err
	}
	out := make([]ProcessInfo, 0, len(procs))
	for _, p := range procs {
		out = append(out, ProcessInfo{PID: p.Pid(), Name: p.Executable()})
	}
	return out, nil
}

// FindOtherInstances returns every process, other than selfPID, whose
// executable name matches execName. Names are compared case-insensitively
// and without the platform executable suffix.
func FindOtherInstances(execName string, selfPID int) ([]ProcessInfo, error) {
	procs, err := Lister()
	if err != nil {
		return nil, err
	}
	want := platform.NormalizeProcessName(execName)
	var others []ProcessInfo
	for _, p := range procs {
		if p.PID == selfPID {
			continue
		}
		if platform.NormalizeProcessName(p.Name) == want {
			others = append(others, p)
		}
	}
	return others, nil
}
