// Package session holds the state of one interactive simulation: the process
// list being built, the resource matrices, and the results of the last run.
//
// A Session is not safe for concurrent use.
package session

import (
	"github.com/google/uuid"

	"os-simulator/internal/core"
	"os-simulator/internal/schedulers"
)

type Session struct {
	processes []core.Process
	resources *core.ResourceState
	results   []core.CompletedProcess
	stats     core.Stats
	last      *schedulers.Result
	runID     uuid.UUID
}

func New() *Session {
	return &Session{processes: make([]core.Process, 0)}
}

func (s *Session) AddProcess(p core.Process) {
	s.processes = append(s.processes, p)
}

// SetResourceState replaces the Banker's matrices. The session keeps its own copy.
func (s *Session) SetResourceState(state core.ResourceState) {
	clone := state.Clone()
	s.resources = &clone
}

// Calculate runs algorithm over the current process list and replaces the
// previous results. With no processes it only clears them. On error nothing
// from the failed run is kept.
func (s *Session) Calculate(algorithm schedulers.Algorithm, timeQuantum int) error {
	s.clearResults()
	if len(s.processes) == 0 {
		return nil
	}

	result, err := schedulers.Schedule(schedulers.Run{
		Algorithm:   algorithm,
		Processes:   s.processes,
		TimeQuantum: timeQuantum,
		Resources:   s.resources,
	})
	if err != nil {
		return err
	}

	s.results = result.Processes
	if result.Stats != nil {
		s.stats = *result.Stats
	}
	s.last = &result
	s.runID = uuid.New()
	return nil
}

// Reset clears processes, resources and results.
func (s *Session) Reset() {
	s.processes = make([]core.Process, 0)
	s.resources = nil
	s.clearResults()
}

func (s *Session) clearResults() {
	s.results = nil
	s.stats = core.Stats{}
	s.last = nil
	s.runID = uuid.Nil
}

func (s *Session) Processes() []core.Process {
	out := make([]core.Process, len(s.processes))
	copy(out, s.processes)
	return out
}

func (s *Session) Results() []core.CompletedProcess {
	out := make([]core.CompletedProcess, len(s.results))
	copy(out, s.results)
	return out
}

func (s *Session) Stats() core.Stats {
	return s.stats
}

// Resources returns a copy of the configured matrices, or nil.
func (s *Session) Resources() *core.ResourceState {
	if s.resources == nil {
		return nil
	}
	clone := s.resources.Clone()
	return &clone
}

// LastResult returns a copy of the full result of the last successful run,
// or nil.
func (s *Session) LastResult() *schedulers.Result {
	if s.last == nil {
		return nil
	}
	result := s.last.Clone()
	return &result
}

// RunID identifies the last successful run; uuid.Nil when there is none.
func (s *Session) RunID() uuid.UUID {
	return s.runID
}
