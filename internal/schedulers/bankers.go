package schedulers

import (
	"fmt"

	"os-simulator/internal/core"
)

// IsSafeState reports whether every process can finish given the currently
// available resources. Inputs are not modified.
func IsSafeState(available []int, allocation, need [][]int) bool {
	_, safe := SafeSequence(available, allocation, need)
	return safe
}

// SafeSequence runs the Banker's safety algorithm and returns the indexes of
// the processes in the order they were able to finish. The sequence is
// complete only when the state is safe. The matrices must already agree on
// their dimensions, see ValidateResourceState.
func SafeSequence(available []int, allocation, need [][]int) ([]int, bool) {
	n := len(allocation)
	m := len(available)

	work := make([]int, m)
	copy(work, available)
	finish := make([]bool, n)
	sequence := make([]int, 0, n)

	for len(sequence) < n {
		found := false
		for i := 0; i < n; i++ {
			if finish[i] || !canFinish(need[i], work) {
				continue
			}
			for j := 0; j < m; j++ {
				work[j] += allocation[i][j]
			}
			finish[i] = true
			found = true
			sequence = append(sequence, i)
		}
		if !found {
			break
		}
	}
	return sequence, len(sequence) == n
}

func canFinish(need, work []int) bool {
	for j := range work {
		if need[j] > work[j] {
			return false
		}
	}
	return true
}

// ValidateResourceState checks that all matrices agree on N processes and R
// resource types and that no need is negative.
func ValidateResourceState(state core.ResourceState) error {
	n, m := state.Dimensions()

	if len(state.Maximum) != n {
		return fmt.Errorf("%w: maximum has %d rows, allocation has %d", ErrMalformedResourceState, len(state.Maximum), n)
	}
	if len(state.Need) != n {
		return fmt.Errorf("%w: need has %d rows, allocation has %d", ErrMalformedResourceState, len(state.Need), n)
	}
	for i := 0; i < n; i++ {
		if err := checkRow("maximum", i, state.Maximum[i], m); err != nil {
			return err
		}
		if err := checkRow("allocation", i, state.Allocation[i], m); err != nil {
			return err
		}
		if err := checkRow("need", i, state.Need[i], m); err != nil {
			return err
		}
		for j, v := range state.Need[i] {
			if v < 0 {
				return fmt.Errorf("%w: need[%d][%d] is negative (%d)", ErrMalformedResourceState, i, j, v)
			}
		}
	}
	return nil
}

func checkRow(name string, i int, row []int, m int) error {
	if len(row) != m {
		return fmt.Errorf("%w: %s row %d has %d columns, expected %d", ErrMalformedResourceState, name, i, len(row), m)
	}
	return nil
}

// CalculateBankers gates a run on the safety of the configured resource state. It does
// not compute timing: on success the processes are returned unchanged with
// zero timing fields.
func CalculateBankers(processes []core.Process, state core.ResourceState) ([]core.CompletedProcess, error) {
	out, _, err := runBankers(processes, state)
	return out, err
}

func runBankers(processes []core.Process, state core.ResourceState) ([]core.CompletedProcess, []int, error) {
	if err := ValidateResourceState(state); err != nil {
		return nil, nil, err
	}

	sequence, safe := SafeSequence(state.Available, state.Allocation, state.Need)
	if !safe {
		return nil, nil, fmt.Errorf("%w: only %d of %d processes can finish", ErrDeadlockRisk, len(sequence), len(state.Allocation))
	}

	out := make([]core.CompletedProcess, 0, len(processes))
	for _, p := range processes {
		out = append(out, core.CompletedProcess{Process: p})
	}
	return out, sequence, nil
}
