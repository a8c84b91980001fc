package core

// Process is a job as entered by the user. ID is a display key and is not
// required to be unique.
type Process struct {
	ID          int
	ArrivalTime int
	BurstTime   int
	Priority    *int
}

// EffectivePriority returns the priority used for ordering. A process without
// a priority is treated as priority 0. Lower values run first.
func (p Process) EffectivePriority() int {
	if p.Priority == nil {
		return 0
	}
	return *p.Priority
}

// CompletedProcess is a Process with the timing fields filled in by a
// scheduling algorithm.
type CompletedProcess struct {
	Process
	CompletedTime  int
	WaitingTime    int
	TurnAroundTime int
}

// Complete derives turnaround and waiting time from the completion time.
func Complete(p Process, completedTime int) CompletedProcess {
	turnAroundTime := completedTime - p.ArrivalTime
	return CompletedProcess{
		Process:        p,
		CompletedTime:  completedTime,
		TurnAroundTime: turnAroundTime,
		WaitingTime:    turnAroundTime - p.BurstTime,
	}
}

// Stats summarises a completed run.
type Stats struct {
	AvgTurnaroundTime float64
	AvgWaitingTime    float64
	Throughput        float64
}

// Slice is one contiguous interval during which a process held the CPU.
type Slice struct {
	ProcessID int
	Start     int
	End       int
}

// Len returns the number of time units covered by the slice.
func (s Slice) Len() int {
	return s.End - s.Start
}

// IntPtr is a convenience for building optional priorities.
func IntPtr(v int) *int {
	return &v
}
