package observability

import (
	"os"

	"github.com/shirou/gopsutil/process"
)

// ProcessSnapshot holds resource usage of the running client.
// The transcript is never evicted, so RSS grows with the session.
type ProcessSnapshot struct {
	RSS        uint64
	CPUPercent float64
}

// ProcessStats retrieves memory and CPU usage of the current process.
func ProcessStats() (ProcessSnapshot, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return ProcessSnapshot{}, err
	}
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return ProcessSnapshot{}, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return ProcessSnapshot{}, err
	}
	return ProcessSnapshot{RSS: memInfo.RSS, CPUPercent: cpuPercent}, nil
}
