package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-simulator/internal/core"
)

func textbookState() core.ResourceState {
	return core.NewResourceState(
		[]int{3, 3, 2},
		[][]int{{7, 5, 3}, {3, 2, 2}, {9, 0, 2}, {2, 2, 2}, {4, 3, 3}},
		[][]int{{0, 1, 0}, {2, 0, 0}, {3, 0, 2}, {2, 1, 1}, {0, 0, 2}},
	)
}

func TestSafeSequenceTextbook(t *testing.T) {
	state := textbookState()

	sequence, safe := SafeSequence(state.Available, state.Allocation, state.Need)

	assert.True(t, safe)
	assert.Equal(t, []int{1, 3, 4, 0, 2}, sequence)
	assert.True(t, IsSafeState(state.Available, state.Allocation, state.Need))
}

func TestIsSafeStateUnsafeWhenNothingAvailable(t *testing.T) {
	state := textbookState()
	state.Available = []int{0, 0, 0}

	assert.False(t, IsSafeState(state.Available, state.Allocation, state.Need))
}

func TestIsSafeStateDoesNotMutateInputs(t *testing.T) {
	state := textbookState()
	before := state.Clone()

	IsSafeState(state.Available, state.Allocation, state.Need)

	assert.Equal(t, before, state)
}

func TestIsSafeStateNoProcesses(t *testing.T) {
	assert.True(t, IsSafeState([]int{1}, nil, nil))
}

func TestCalculateBankers(t *testing.T) {
	input := []core.Process{proc(1, 0, 3), proc(2, 1, 2)}

	t.Run("safe state returns processes unchanged", func(t *testing.T) {
		out, err := CalculateBankers(input, textbookState())
		require.NoError(t, err)
		require.Len(t, out, 2)
		for i, c := range out {
			assert.Equal(t, input[i], c.Process)
			assert.Zero(t, c.CompletedTime)
			assert.Zero(t, c.WaitingTime)
			assert.Zero(t, c.TurnAroundTime)
		}
	})

	t.Run("unsafe state is a deadlock risk", func(t *testing.T) {
		state := textbookState()
		state.Available = []int{0, 0, 0}

		out, err := CalculateBankers(input, state)
		require.ErrorIs(t, err, ErrDeadlockRisk)
		assert.Nil(t, out)
	})
}

func TestValidateResourceState(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateResourceState(textbookState()))
	})

	tests := map[string]func(s *core.ResourceState){
		"available too short":     func(s *core.ResourceState) { s.Available = []int{3, 3} },
		"maximum missing a row":   func(s *core.ResourceState) { s.Maximum = s.Maximum[:4] },
		"need missing a row":      func(s *core.ResourceState) { s.Need = s.Need[:4] },
		"allocation row too long": func(s *core.ResourceState) { s.Allocation[2] = []int{3, 0, 2, 1} },
		"negative need":           func(s *core.ResourceState) { s.Need[0][1] = -1 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			state := textbookState()
			mutate(&state)

			err := ValidateResourceState(state)
			assert.ErrorIs(t, err, ErrMalformedResourceState)

			_, err = CalculateBankers([]core.Process{proc(1, 0, 1)}, state)
			assert.ErrorIs(t, err, ErrMalformedResourceState)
		})
	}
}
