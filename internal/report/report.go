// Package report renders simulation results as plain-text tables.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"os-simulator/internal/core"
	"os-simulator/internal/schedulers"
)

var titles = map[schedulers.Algorithm]string{
	schedulers.FCFS:     "First-come, first-serve",
	schedulers.SJF:      "Shortest-job-first",
	schedulers.SRTF:     "Shortest-remaining-time-first",
	schedulers.RR:       "Round-robin",
	schedulers.Priority: "Priority",
	schedulers.Bankers:  "Banker's safety check",
}

// Title returns the display name of an algorithm.
func Title(algorithm schedulers.Algorithm) string {
	if title, ok := titles[algorithm]; ok {
		return title
	}
	return string(algorithm)
}

// WriteResult prints the title, the Gantt strip and the schedule table of a
// timing run, or the safe sequence of a Banker's run.
func WriteResult(w io.Writer, result schedulers.Result) {
	outputTitle(w, Title(result.Algorithm))

	// an empty run never reaches the safety check, so there is nothing to report
	if len(result.Processes) == 0 {
		_, _ = fmt.Fprintln(w, "No processes to schedule.")
		return
	}
	if result.Algorithm == schedulers.Bankers {
		outputSafeSequence(w, result.SafeSequence)
		return
	}

	outputGantt(w, result.Timeline)
	outputSchedule(w, result)
}

// WriteResources prints the Banker's matrices side by side, one row per process.
func WriteResources(w io.Writer, state core.ResourceState) {
	_, _ = fmt.Fprintln(w, "Resource state")
	_, _ = fmt.Fprintln(w, "Available:", formatVector(state.Available))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Allocation", "Maximum", "Need"})
	for i := range state.Allocation {
		table.Append([]string{
			fmt.Sprintf("P%d", i),
			formatVector(row(state.Allocation, i)),
			formatVector(row(state.Maximum, i)),
			formatVector(row(state.Need, i)),
		})
	}
	table.Render()
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, gantt []core.Slice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		pid := fmt.Sprint(gantt[i].ProcessID)
		padding := strings.Repeat(" ", max(8-len(pid), 0)/2)
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].End))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, result schedulers.Result) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Exit"})

	rows := make([][]string, 0, len(result.Processes))
	for _, p := range result.Processes {
		priority := "-"
		if p.Priority != nil {
			priority = fmt.Sprint(*p.Priority)
		}
		rows = append(rows, []string{
			fmt.Sprint(p.ID),
			priority,
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.TurnAroundTime),
			fmt.Sprint(p.CompletedTime),
		})
	}
	table.AppendBulk(rows)

	var stats core.Stats
	if result.Stats != nil {
		stats = *result.Stats
	}
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("avg %.2f", stats.AvgWaitingTime),
		fmt.Sprintf("avg %.2f", stats.AvgTurnaroundTime),
		fmt.Sprintf("%.2f/t", stats.Throughput)})
	table.Render()

	_, _ = fmt.Fprintf(w, "CPU utilization: %.2f%% (idle %d of %d)\n\n",
		result.Cpu.Utilization()*100, result.Cpu.IdleTime, result.Cpu.TotalTime)
}

func outputSafeSequence(w io.Writer, sequence []int) {
	steps := make([]string, 0, len(sequence))
	for _, i := range sequence {
		steps = append(steps, fmt.Sprintf("P%d", i))
	}
	_, _ = fmt.Fprintln(w, "System is in a safe state.")
	_, _ = fmt.Fprintf(w, "Safe sequence: %s\n\n", strings.Join(steps, " -> "))
}

func row(m [][]int, i int) []int {
	if i < len(m) {
		return m[i]
	}
	return nil
}

func formatVector(v []int) string {
	parts := make([]string, 0, len(v))
	for _, x := range v {
		parts = append(parts, fmt.Sprint(x))
	}
	return "[" + strings.Join(parts, " ") + "]"
}
