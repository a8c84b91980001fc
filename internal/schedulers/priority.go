package schedulers

import "os-simulator/internal/core"

// PriorityScheduling is non-preemptive. Lower priority values run first and a
// process without a priority counts as 0.
func PriorityScheduling(processes []core.Process) []core.CompletedProcess {
	return runPriority(processes).completed
}

func runPriority(processes []core.Process) schedule {
	return runNonPreemptive(processes, func(a, b core.Process) bool {
		return a.EffectivePriority() < b.EffectivePriority()
	})
}
