package responses

import "os-simulator/internal/schedulers"

type ProcessResponse struct {
	ProcessId      int  `json:"process_id"`
	ArrivalTime    int  `json:"arrival_time"`
	BurstTime      int  `json:"burst_time"`
	Priority       *int `json:"priority,omitempty"`
	CompletedTime  int  `json:"completed_time"`
	TurnAroundTime int  `json:"turn_around_time"`
	WaitingTime    int  `json:"waiting_time"`
}

type SliceResponse struct {
	ProcessId int `json:"process_id"`
	Start     int `json:"start"`
	End       int `json:"end"`
}

type ScheduleResponse struct {
	RunID                 string            `json:"run_id"`
	Algorithm             string            `json:"algorithm"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
	Timeline              []SliceResponse   `json:"timeline,omitempty"`
	SafeSequence          []int             `json:"safe_sequence,omitempty"`
}

func generateProcessDetails(result schedulers.Result) []ProcessResponse {
	details := make([]ProcessResponse, 0, len(result.Processes))
	for _, p := range result.Processes {
		details = append(details, ProcessResponse{
			ProcessId:      p.ID,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			Priority:       p.Priority,
			CompletedTime:  p.CompletedTime,
			TurnAroundTime: p.TurnAroundTime,
			WaitingTime:    p.WaitingTime,
		})
	}
	return details
}

// Build converts a dispatcher result into its JSON form.
func Build(runID string, result schedulers.Result) ScheduleResponse {
	response := ScheduleResponse{
		RunID:          runID,
		Algorithm:      string(result.Algorithm),
		TotalTime:      result.Cpu.TotalTime,
		IdleTime:       result.Cpu.IdleTime,
		CpuUtilization: result.Cpu.Utilization(),
		Details:        generateProcessDetails(result),
		SafeSequence:   result.SafeSequence,
	}
	if result.Stats != nil {
		response.AverageWaitingTime = result.Stats.AvgWaitingTime
		response.AverageTurnAroundTime = result.Stats.AvgTurnaroundTime
		response.CpuThroughput = result.Stats.Throughput
	}
	for _, s := range result.Timeline {
		response.Timeline = append(response.Timeline, SliceResponse{ProcessId: s.ProcessID, Start: s.Start, End: s.End})
	}
	return response
}

type AllAlgorithmsResponse struct {
	RunID   string                      `json:"run_id"`
	Results map[string]ScheduleResponse `json:"results"`
}
