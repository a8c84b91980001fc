package schedulers

import (
	"sort"

	"os-simulator/internal/core"
)

// ShortestJobFirst is non-preemptive: whenever the CPU frees up, the ready
// process with the smallest burst time runs to completion. Ties go to the
// process that entered the ready queue first.
func ShortestJobFirst(processes []core.Process) []core.CompletedProcess {
	return runShortestJobFirst(processes).completed
}

func runShortestJobFirst(processes []core.Process) schedule {
	return runNonPreemptive(processes, func(a, b core.Process) bool {
		return a.BurstTime < b.BurstTime
	})
}

// runNonPreemptive drives the admission loop shared by SJF and Priority
// scheduling. less orders the ready queue; the front is dispatched.
func runNonPreemptive(processes []core.Process, less func(a, b core.Process) bool) schedule {
	pending := newArrivals(processes)
	readyQueue := make([]core.Process, 0, len(processes))
	completed := make([]core.CompletedProcess, 0, len(processes))
	cpu := core.NewCpu()

	for !pending.empty() || len(readyQueue) > 0 {
		readyQueue = append(readyQueue, pending.admit(cpu.Time())...)

		if len(readyQueue) == 0 {
			// cpu is idle until the next arrival
			cpu.IdleUntil(pending.nextArrival())
			continue
		}

		sort.SliceStable(readyQueue, func(i, j int) bool {
			return less(readyQueue[i], readyQueue[j])
		})

		job := readyQueue[0]
		readyQueue = readyQueue[1:]

		completedTime := cpu.Execute(job.ID, job.BurstTime)
		completed = append(completed, core.Complete(job, completedTime))
	}
	return schedule{completed: completed, cpu: cpu}
}
