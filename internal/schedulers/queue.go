package schedulers

import (
	"sort"

	"os-simulator/internal/core"
)

// arrivals holds the processes that have not yet been admitted, ordered by
// arrival time. Admission advances a cursor instead of shifting the slice, so
// the order must never change after construction.
type arrivals struct {
	pending []core.Process
	next    int
}

func newArrivals(processes []core.Process) *arrivals {
	pending := make([]core.Process, len(processes))
	copy(pending, processes)
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].ArrivalTime < pending[j].ArrivalTime
	})
	return &arrivals{pending: pending}
}

func (a *arrivals) empty() bool {
	return a.next >= len(a.pending)
}

// nextArrival is the arrival time of the earliest pending process. Callers
// must check empty first.
func (a *arrivals) nextArrival() int {
	return a.pending[a.next].ArrivalTime
}

// admit returns every pending process that has arrived by now, in arrival
// order, and removes them from the pending set.
func (a *arrivals) admit(now int) []core.Process {
	start := a.next
	for a.next < len(a.pending) && a.pending[a.next].ArrivalTime <= now {
		a.next++
	}
	return a.pending[start:a.next]
}

// task is the per-run mutable copy used by the preemptive algorithms.
type task struct {
	process   core.Process
	remaining int
}

func newTasks(processes []core.Process) []*task {
	tasks := make([]*task, 0, len(processes))
	for _, p := range processes {
		tasks = append(tasks, &task{process: p, remaining: p.BurstTime})
	}
	return tasks
}
