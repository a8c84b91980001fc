package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-simulator/internal/core"
)

func proc(id, arrival, burst int) core.Process {
	return core.Process{ID: id, ArrivalTime: arrival, BurstTime: burst}
}

func procWithPriority(id, arrival, burst, priority int) core.Process {
	p := proc(id, arrival, burst)
	p.Priority = core.IntPtr(priority)
	return p
}

func completionByID(completed []core.CompletedProcess) map[int]int {
	out := make(map[int]int, len(completed))
	for _, c := range completed {
		out[c.ID] = c.CompletedTime
	}
	return out
}

func requireTimingInvariants(t *testing.T, input []core.Process, completed []core.CompletedProcess) {
	t.Helper()
	require.Len(t, completed, len(input))
	for _, c := range completed {
		assert.Equal(t, c.CompletedTime-c.ArrivalTime, c.TurnAroundTime, "turnaround of process %d", c.ID)
		assert.Equal(t, c.TurnAroundTime-c.BurstTime, c.WaitingTime, "waiting of process %d", c.ID)
		assert.GreaterOrEqual(t, c.WaitingTime, 0, "waiting of process %d", c.ID)
	}
}

func TestFirstComeFirstServe(t *testing.T) {
	input := []core.Process{proc(1, 0, 5), proc(2, 1, 3), proc(3, 2, 8)}

	completed := FirstComeFirstServe(input)
	requireTimingInvariants(t, input, completed)

	var completions, turnarounds, waits []int
	for _, c := range completed {
		completions = append(completions, c.CompletedTime)
		turnarounds = append(turnarounds, c.TurnAroundTime)
		waits = append(waits, c.WaitingTime)
	}
	assert.Equal(t, []int{5, 8, 16}, completions)
	assert.Equal(t, []int{5, 7, 14}, turnarounds)
	assert.Equal(t, []int{0, 4, 6}, waits)
}

func TestFirstComeFirstServeStableOnTies(t *testing.T) {
	input := []core.Process{proc(9, 2, 1), proc(4, 0, 2), proc(7, 2, 1)}

	completed := FirstComeFirstServe(input)

	ids := make([]int, 0, len(completed))
	for _, c := range completed {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int{4, 9, 7}, ids)
}

func TestFirstComeFirstServeIdleGap(t *testing.T) {
	s := runFirstComeFirstServe([]core.Process{proc(1, 3, 2)})

	require.Len(t, s.completed, 1)
	assert.Equal(t, 5, s.completed[0].CompletedTime)
	assert.Equal(t, 0, s.completed[0].WaitingTime)
	assert.Equal(t, core.CpuMetric{TotalTime: 5, UtilizationTime: 2, IdleTime: 3}, s.cpu.Metric())
}

func TestFirstComeFirstServeDoesNotMutateInput(t *testing.T) {
	input := []core.Process{proc(1, 4, 1), proc(2, 0, 2)}
	snapshot := append([]core.Process(nil), input...)

	FirstComeFirstServe(input)

	assert.Equal(t, snapshot, input)
}

func TestShortestJobFirst(t *testing.T) {
	input := []core.Process{proc(1, 0, 7), proc(2, 2, 4), proc(3, 4, 1), proc(4, 5, 4)}

	completed := ShortestJobFirst(input)
	requireTimingInvariants(t, input, completed)

	assert.Equal(t, map[int]int{1: 7, 2: 12, 3: 8, 4: 16}, completionByID(completed))

	order := make([]int, 0, len(completed))
	for _, c := range completed {
		order = append(order, c.ID)
	}
	assert.Equal(t, []int{1, 3, 2, 4}, order)
}

func TestShortestJobFirstIdleJump(t *testing.T) {
	input := []core.Process{proc(2, 5, 1), proc(1, 0, 2)}

	s := runShortestJobFirst(input)
	requireTimingInvariants(t, input, s.completed)

	assert.Equal(t, map[int]int{1: 2, 2: 6}, completionByID(s.completed))
	assert.Equal(t, 3, s.cpu.Metric().IdleTime)
}

func TestShortestRemainingTimeFirstPreempts(t *testing.T) {
	input := []core.Process{proc(1, 0, 8), proc(2, 1, 4)}

	s := runShortestRemainingTimeFirst(input)
	requireTimingInvariants(t, input, s.completed)

	assert.Equal(t, map[int]int{1: 12, 2: 5}, completionByID(s.completed))
	assert.Equal(t, []core.Slice{
		{ProcessID: 1, Start: 0, End: 1},
		{ProcessID: 2, Start: 1, End: 5},
		{ProcessID: 1, Start: 5, End: 12},
	}, s.cpu.Timeline())
}

func TestShortestRemainingTimeFirstNoPreemptionOnTie(t *testing.T) {
	input := []core.Process{proc(1, 0, 4), proc(2, 1, 3)}

	completed := ShortestRemainingTimeFirst(input)

	// at t=1 both have 3 units left; the running process keeps the cpu
	assert.Equal(t, map[int]int{1: 4, 2: 7}, completionByID(completed))
}

func TestRoundRobin(t *testing.T) {
	input := []core.Process{proc(1, 0, 5), proc(2, 1, 3)}

	s, err := runRoundRobin(input, 2)
	require.NoError(t, err)
	requireTimingInvariants(t, input, s.completed)

	assert.Equal(t, map[int]int{1: 8, 2: 7}, completionByID(s.completed))

	executed := map[int]int{}
	for _, slice := range s.cpu.Timeline() {
		require.Positive(t, slice.Len())
		require.LessOrEqual(t, slice.Len(), 2)
		executed[slice.ProcessID] += slice.Len()
	}
	assert.Equal(t, map[int]int{1: 5, 2: 3}, executed)
}

func TestRoundRobinAdmitsArrivalsBeforeRequeue(t *testing.T) {
	// process 2 arrives exactly when process 1's slice ends
	input := []core.Process{proc(1, 0, 4), proc(2, 2, 2)}

	completed, err := RoundRobin(input, 2)
	require.NoError(t, err)

	assert.Equal(t, map[int]int{1: 6, 2: 4}, completionByID(completed))
}

func TestRoundRobinInvalidQuantum(t *testing.T) {
	for _, quantum := range []int{0, -3} {
		completed, err := RoundRobin([]core.Process{proc(1, 0, 1)}, quantum)
		require.ErrorIs(t, err, ErrInvalidQuantum)
		assert.Nil(t, completed)
	}
}

func TestRoundRobinLargeQuantumMatchesFCFS(t *testing.T) {
	input := []core.Process{proc(1, 0, 5), proc(2, 1, 3), proc(3, 2, 8)}

	rr, err := RoundRobin(input, 100)
	require.NoError(t, err)

	assert.Equal(t, FirstComeFirstServe(input), rr)
}

func TestPriorityScheduling(t *testing.T) {
	input := []core.Process{
		procWithPriority(1, 0, 4, 2),
		procWithPriority(2, 1, 3, 1),
		procWithPriority(3, 2, 1, 3),
		proc(4, 3, 2), // no priority counts as 0
	}

	completed := PriorityScheduling(input)
	requireTimingInvariants(t, input, completed)

	assert.Equal(t, map[int]int{1: 4, 4: 6, 2: 9, 3: 10}, completionByID(completed))
}

func TestAlgorithmsOnEmptyInput(t *testing.T) {
	assert.Empty(t, FirstComeFirstServe(nil))
	assert.Empty(t, ShortestJobFirst(nil))
	assert.Empty(t, ShortestRemainingTimeFirst(nil))
	assert.Empty(t, PriorityScheduling(nil))

	rr, err := RoundRobin(nil, 3)
	require.NoError(t, err)
	assert.Empty(t, rr)
}
