package schedulers

import (
	"fmt"
	"log/slog"

	"os-simulator/internal/core"
)

// DefaultTimeQuantum is used when a run does not specify a quantum.
const DefaultTimeQuantum = 1

// RoundRobin gives each ready process at most timeQuantum units before moving
// it to the tail of the ready queue. Processes that arrive during a slice are
// queued ahead of the preempted process.
func RoundRobin(processes []core.Process, timeQuantum int) ([]core.CompletedProcess, error) {
	s, err := runRoundRobin(processes, timeQuantum)
	if err != nil {
		return nil, err
	}
	return s.completed, nil
}

func runRoundRobin(processes []core.Process, timeQuantum int) (schedule, error) {
	if timeQuantum <= 0 {
		return schedule{}, fmt.Errorf("%w: got %d", ErrInvalidQuantum, timeQuantum)
	}
	slog.Debug("running roundRobin algorithm", "time_quantum", timeQuantum)

	pending := newArrivals(processes)
	roundRobinQueue := make([]*task, 0, len(processes))
	completed := make([]core.CompletedProcess, 0, len(processes))
	cpu := core.NewCpu()

	for !pending.empty() || len(roundRobinQueue) > 0 {
		roundRobinQueue = append(roundRobinQueue, newTasks(pending.admit(cpu.Time()))...)

		if len(roundRobinQueue) == 0 {
			cpu.IdleUntil(pending.nextArrival())
			continue
		}

		current := roundRobinQueue[0]
		roundRobinQueue = roundRobinQueue[1:]

		executionTime := min(timeQuantum, current.remaining)
		current.remaining -= executionTime
		cpu.Execute(current.process.ID, executionTime)

		if current.remaining == 0 {
			completed = append(completed, core.Complete(current.process, cpu.Time()))
			continue
		}

		// context switch: new arrivals go ahead of the preempted process
		roundRobinQueue = append(roundRobinQueue, newTasks(pending.admit(cpu.Time()))...)
		roundRobinQueue = append(roundRobinQueue, current)
	}
	return schedule{completed: completed, cpu: cpu}, nil
}
