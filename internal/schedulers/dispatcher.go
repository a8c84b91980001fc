package schedulers

import (
	"fmt"
	"log/slog"
	"strings"

	"os-simulator/internal/core"
)

type Algorithm string

const (
	FCFS     Algorithm = "FCFS"
	SJF      Algorithm = "SJF"
	SRTF     Algorithm = "SRTF"
	RR       Algorithm = "RR"
	Priority Algorithm = "Priority"
	Bankers  Algorithm = "Bankers"
)

// GetAvailableAlgorithms lists every algorithm identifier Schedule accepts.
func GetAvailableAlgorithms() []Algorithm {
	return []Algorithm{FCFS, SJF, SRTF, RR, Priority, Bankers}
}

// TimingAlgorithms lists the algorithms that compute completion times.
func TimingAlgorithms() []Algorithm {
	return []Algorithm{FCFS, SJF, SRTF, RR, Priority}
}

// ParseAlgorithm matches an identifier case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, algorithm := range GetAvailableAlgorithms() {
		if strings.EqualFold(name, string(algorithm)) {
			return algorithm, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Run describes one invocation of Schedule.
type Run struct {
	Algorithm Algorithm
	Processes []core.Process
	// TimeQuantum is only read by RR. Zero selects DefaultTimeQuantum.
	TimeQuantum int
	// Resources is required by Bankers and ignored otherwise.
	Resources *core.ResourceState
}

// ValidateProcesses rejects arrival times below zero and non-positive bursts.
func ValidateProcesses(processes []core.Process) error {
	for i, p := range processes {
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: process %d (index %d) has negative arrival time %d", ErrInvalidProcess, p.ID, i, p.ArrivalTime)
		}
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: process %d (index %d) has non-positive burst time %d", ErrInvalidProcess, p.ID, i, p.BurstTime)
		}
	}
	return nil
}

// Schedule runs the selected algorithm. An empty process list is a no-op and
// returns an empty Result without stats. Errors never come with partial
// results.
func Schedule(run Run) (Result, error) {
	if len(run.Processes) == 0 {
		return Result{Algorithm: run.Algorithm}, nil
	}
	if err := ValidateProcesses(run.Processes); err != nil {
		return Result{}, err
	}
	slog.Debug("running scheduling algorithm", "algorithm", run.Algorithm, "processes", len(run.Processes))

	switch run.Algorithm {
	case FCFS:
		return generateResult(run.Algorithm, runFirstComeFirstServe(run.Processes)), nil
	case SJF:
		return generateResult(run.Algorithm, runShortestJobFirst(run.Processes)), nil
	case SRTF:
		return generateResult(run.Algorithm, runShortestRemainingTimeFirst(run.Processes)), nil
	case RR:
		quantum := run.TimeQuantum
		if quantum == 0 {
			quantum = DefaultTimeQuantum
		}
		s, err := runRoundRobin(run.Processes, quantum)
		if err != nil {
			return Result{}, err
		}
		return generateResult(run.Algorithm, s), nil
	case Priority:
		return generateResult(run.Algorithm, runPriority(run.Processes)), nil
	case Bankers:
		if run.Resources == nil {
			return Result{}, fmt.Errorf("%w: no resource state configured", ErrMalformedResourceState)
		}
		processes, sequence, err := runBankers(run.Processes, *run.Resources)
		if err != nil {
			return Result{}, err
		}
		return Result{Algorithm: run.Algorithm, Processes: processes, SafeSequence: sequence}, nil
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, run.Algorithm)
	}
}
