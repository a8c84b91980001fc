package util

import "os-simulator/internal/core"

// CalculateAverage returns the mean waiting and turnaround times.
func CalculateAverage(processDetails []core.CompletedProcess) (averageWaitingTime, averageTurnAroundTime float64) {
	var waitingTimeSum float64
	var turnAroundTimeSum float64

	for _, process := range processDetails {
		waitingTimeSum += float64(process.WaitingTime)
		turnAroundTimeSum += float64(process.TurnAroundTime)
	}

	processCount := float64(len(processDetails))

	averageWaitingTime = waitingTimeSum / processCount
	averageTurnAroundTime = turnAroundTimeSum / processCount
	return
}

// Makespan is the latest completion time in the run.
func Makespan(processDetails []core.CompletedProcess) int {
	var makespan int
	for _, process := range processDetails {
		makespan = max(makespan, process.CompletedTime)
	}
	return makespan
}

// CalculateStats reduces a completed run to its averages and throughput.
// processDetails must not be empty. A zero makespan reports zero throughput.
func CalculateStats(processDetails []core.CompletedProcess) core.Stats {
	averageWaitingTime, averageTurnAroundTime := CalculateAverage(processDetails)

	var throughput float64
	if makespan := Makespan(processDetails); makespan > 0 {
		throughput = float64(len(processDetails)) / float64(makespan)
	}

	return core.Stats{
		AvgTurnaroundTime: averageTurnAroundTime,
		AvgWaitingTime:    averageWaitingTime,
		Throughput:        throughput,
	}
}
