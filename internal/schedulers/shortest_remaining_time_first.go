package schedulers

import (
	"sort"

	"os-simulator/internal/core"
)

// ShortestRemainingTimeFirst is the preemptive variant of SJF. The ready
// queue is re-sorted by remaining time before every time unit, so a newly
// arrived shorter job takes the CPU at the next unit boundary. Equal
// remaining times do not preempt.
func ShortestRemainingTimeFirst(processes []core.Process) []core.CompletedProcess {
	return runShortestRemainingTimeFirst(processes).completed
}

func runShortestRemainingTimeFirst(processes []core.Process) schedule {
	pending := newArrivals(processes)
	readyQueue := make([]*task, 0, len(processes))
	completed := make([]core.CompletedProcess, 0, len(processes))
	cpu := core.NewCpu()

	for !pending.empty() || len(readyQueue) > 0 {
		readyQueue = append(readyQueue, newTasks(pending.admit(cpu.Time()))...)

		if len(readyQueue) == 0 {
			cpu.IdleUntil(pending.nextArrival())
			continue
		}

		sort.SliceStable(readyQueue, func(i, j int) bool {
			return readyQueue[i].remaining < readyQueue[j].remaining
		})

		current := readyQueue[0]
		current.remaining--
		cpu.Execute(current.process.ID, 1)

		if current.remaining == 0 {
			readyQueue = readyQueue[1:]
			completed = append(completed, core.Complete(current.process, cpu.Time()))
		}
	}
	return schedule{completed: completed, cpu: cpu}
}
