package schedulers

import (
	"os-simulator/internal/core"
	"os-simulator/internal/util"
)

// Result is everything a single run produces.
type Result struct {
	Algorithm Algorithm
	Processes []core.CompletedProcess
	// Stats is nil when the run has no timing data: an empty process list or
	// a Banker's safety check.
	Stats        *core.Stats
	Timeline     []core.Slice
	Cpu          core.CpuMetric
	SafeSequence []int
}

func generateResult(algorithm Algorithm, s schedule) Result {
	stats := util.CalculateStats(s.completed)
	return Result{
		Algorithm: algorithm,
		Processes: s.completed,
		Stats:     &stats,
		Timeline:  s.cpu.Timeline(),
		Cpu:       s.cpu.Metric(),
	}
}

// Clone returns a copy that shares no memory with r.
func (r Result) Clone() Result {
	out := r
	if r.Processes != nil {
		out.Processes = make([]core.CompletedProcess, len(r.Processes))
		for i, p := range r.Processes {
			if p.Priority != nil {
				p.Priority = core.IntPtr(*p.Priority)
			}
			out.Processes[i] = p
		}
	}
	if r.Stats != nil {
		stats := *r.Stats
		out.Stats = &stats
	}
	out.Timeline = append([]core.Slice(nil), r.Timeline...)
	out.SafeSequence = append([]int(nil), r.SafeSequence...)
	return out
}
