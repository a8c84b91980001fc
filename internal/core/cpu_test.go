package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCpuMergesConsecutiveSlices(t *testing.T) {
	cpu := NewCpu()
	cpu.Execute(1, 1)
	cpu.Execute(1, 2)
	cpu.Execute(2, 1)
	cpu.IdleUntil(6)
	cpu.Execute(2, 1)

	assert.Equal(t, []Slice{
		{ProcessID: 1, Start: 0, End: 3},
		{ProcessID: 2, Start: 3, End: 4},
		{ProcessID: 2, Start: 6, End: 7},
	}, cpu.Timeline())
	assert.Equal(t, CpuMetric{TotalTime: 7, UtilizationTime: 5, IdleTime: 2}, cpu.Metric())
	assert.InDelta(t, 5.0/7.0, cpu.Metric().Utilization(), 1e-9)
}

func TestCpuIgnoresBackwardsAndEmptyMoves(t *testing.T) {
	cpu := NewCpu()
	cpu.IdleUntil(4)
	cpu.IdleUntil(2)
	assert.Equal(t, 4, cpu.Execute(3, 0))
	assert.Empty(t, cpu.Timeline())
	assert.Equal(t, 4, cpu.Time())
	assert.Zero(t, CpuMetric{}.Utilization())
}

func TestCpuTimelineIsACopy(t *testing.T) {
	cpu := NewCpu()
	cpu.Execute(1, 2)

	timeline := cpu.Timeline()
	timeline[0].End = 99

	assert.Equal(t, 2, cpu.Timeline()[0].End)
}
