package core

// CpuMetric reports how the simulated core spent its time.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Utilization is the busy share of the total time, or 0 for an empty run.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

// Cpu is a single simulated core driven by an integer clock starting at 0.
// It records the execution timeline as processes are run on it.
type Cpu struct {
	time     int
	busy     int
	idle     int
	timeline []Slice
}

func NewCpu() *Cpu {
	return &Cpu{timeline: make([]Slice, 0)}
}

// Time returns the current clock value.
func (c *Cpu) Time() int {
	return c.time
}

// IdleUntil moves the clock forward to t, counting the gap as idle time.
// Moving backwards is a no-op.
func (c *Cpu) IdleUntil(t int) {
	if t > c.time {
		c.idle += t - c.time
		c.time = t
	}
}

// Execute runs the process for the given number of units and returns the
// clock after the slice. Consecutive slices of the same process are merged.
func (c *Cpu) Execute(processID, units int) int {
	if units <= 0 {
		return c.time
	}
	start := c.time
	c.time += units
	c.busy += units

	if n := len(c.timeline); n > 0 {
		last := &c.timeline[n-1]
		if last.ProcessID == processID && last.End == start {
			last.End = c.time
			return c.time
		}
	}
	c.timeline = append(c.timeline, Slice{ProcessID: processID, Start: start, End: c.time})
	return c.time
}

// Timeline returns a copy of the recorded slices in execution order.
func (c *Cpu) Timeline() []Slice {
	out := make([]Slice, len(c.timeline))
	copy(out, c.timeline)
	return out
}

func (c *Cpu) Metric() CpuMetric {
	return CpuMetric{
		TotalTime:       c.time,
		UtilizationTime: c.busy,
		IdleTime:        c.idle,
	}
}
