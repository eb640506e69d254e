package telemetry

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/shirou/gopsutil/v3/process"
)

// Resources is a point-in-time sample of this process's resource usage.
type Resources struct {
	RSSBytes   uint64
	CPUPercent float64 // averaged over the process lifetime
	Threads    int32
}

// SampleProcess reads the current process's resource usage.
func SampleProcess() (Resources, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return Resources{}, fmt.Errorf("opening process: %w", err)
	}
	mem, err := p.MemoryInfo()
	if err != nil {
		return Resources{}, fmt.Errorf("reading memory: %w", err)
	}
	cpu, err := p.CPUPercent()
	if err != nil {
		return Resources{}, fmt.Errorf("reading cpu: %w", err)
	}
	threads, err := p.NumThreads()
	if err != nil {
		return Resources{}, fmt.Errorf("reading threads: %w", err)
	}
	return Resources{RSSBytes: mem.RSS, CPUPercent: cpu, Threads: threads}, nil
}

// LogValue implements slog.LogValuer.
func (r Resources) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("rss_mib", float64(r.RSSBytes)/(1<<20)),
		slog.Float64("cpu_percent", r.CPUPercent),
		slog.Int("threads", int(r.Threads)),
	)
}
