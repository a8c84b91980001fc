package schedulers

import (
	"sort"

	"os-simulator/internal/core"
)

// schedule is the raw output of one algorithm run: completed processes in
// completion order plus the simulated core that ran them.
type schedule struct {
	completed []core.CompletedProcess
	cpu       *core.Cpu
}

// FirstComeFirstServe runs processes to completion in order of arrival. Ties
// keep their input order.
func FirstComeFirstServe(processes []core.Process) []core.CompletedProcess {
	return runFirstComeFirstServe(processes).completed
}

func runFirstComeFirstServe(processes []core.Process) schedule {
	// sort jobs by arrival time
	jobs := make([]core.Process, len(processes))
	copy(jobs, processes)
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].ArrivalTime < jobs[j].ArrivalTime
	})

	cpu := core.NewCpu()
	completed := make([]core.CompletedProcess, 0, len(jobs))
	for _, job := range jobs {
		cpu.IdleUntil(job.ArrivalTime)
		completedTime := cpu.Execute(job.ID, job.BurstTime)
		completed = append(completed, core.Complete(job, completedTime))
	}
	return schedule{completed: completed, cpu: cpu}
}
