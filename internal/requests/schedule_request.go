package requests

import (
	"fmt"

	"os-simulator/internal/core"
	"os-simulator/internal/schedulers"
)

type Job struct {
	ProcessId   int  `json:"process_id"`
	ArrivalTime int  `json:"arrival_time"`
	BurstTime   int  `json:"burst_time"`
	Priority    *int `json:"priority,omitempty"`
}

type ResourceRequest struct {
	Available  []int   `json:"available"`
	Maximum    [][]int `json:"maximum"`
	Allocation [][]int `json:"allocation"`
}

type ScheduleRequests struct {
	Jobs        []Job            `json:"jobs"`
	TimeQuantum *int             `json:"time_quantum,omitempty"`
	Resources   *ResourceRequest `json:"resources,omitempty"`
}

// Limits bounds the work a single request may ask for. Zero disables a bound.
type Limits struct {
	MaxJobs int
	// MaxTime caps the simulated horizon: the latest arrival plus the sum of
	// all bursts.
	MaxTime int
}

// Validate checks the request before any algorithm runs. An explicit time
// quantum must be positive; an omitted one falls back to the configured default.
func (r *ScheduleRequests) Validate(limits Limits) error {
	if r.TimeQuantum != nil && *r.TimeQuantum <= 0 {
		return fmt.Errorf("%w: got %d", schedulers.ErrInvalidQuantum, *r.TimeQuantum)
	}
	if limits.MaxJobs > 0 && len(r.Jobs) > limits.MaxJobs {
		return fmt.Errorf("%w: %d jobs exceed the limit of %d", schedulers.ErrInvalidProcess, len(r.Jobs), limits.MaxJobs)
	}

	processes := r.Processes()
	if err := schedulers.ValidateProcesses(processes); err != nil {
		return err
	}
	if limits.MaxTime > 0 {
		return checkHorizon(processes, limits.MaxTime)
	}
	return nil
}

// checkHorizon rejects runs whose schedule could end after maxTime. Every
// partial sum stays below 2*maxTime, so it cannot overflow.
func checkHorizon(processes []core.Process, maxTime int) error {
	var latestArrival int
	for _, p := range processes {
		if p.ArrivalTime > maxTime || p.BurstTime > maxTime {
			return fmt.Errorf("%w: process %d exceeds the time limit of %d", schedulers.ErrInvalidProcess, p.ID, maxTime)
		}
		latestArrival = max(latestArrival, p.ArrivalTime)
	}

	horizon := latestArrival
	for _, p := range processes {
		horizon += p.BurstTime
		if horizon > maxTime {
			return fmt.Errorf("%w: total simulated time exceeds the time limit of %d", schedulers.ErrInvalidProcess, maxTime)
		}
	}
	return nil
}

func (r *ScheduleRequests) Processes() []core.Process {
	processes := make([]core.Process, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		processes = append(processes, core.Process{
			ID:          job.ProcessId,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
			Priority:    job.Priority,
		})
	}
	return processes
}

// Quantum returns the requested time quantum or fallback when none was sent.
func (r *ScheduleRequests) Quantum(fallback int) int {
	if r.TimeQuantum == nil {
		return fallback
	}
	return *r.TimeQuantum
}

// ToResourceState derives the need matrix. It returns nil when the request
// carries no resource section.
func (r *ScheduleRequests) ToResourceState() *core.ResourceState {
	if r.Resources == nil {
		return nil
	}
	state := core.NewResourceState(r.Resources.Available, r.Resources.Maximum, r.Resources.Allocation)
	return &state
}

// Run converts the request into a dispatcher run.
func (r *ScheduleRequests) Run(algorithm schedulers.Algorithm, defaultQuantum int) schedulers.Run {
	return schedulers.Run{
		Algorithm:   algorithm,
		Processes:   r.Processes(),
		TimeQuantum: r.Quantum(defaultQuantum),
		Resources:   r.ToResourceState(),
	}
}
