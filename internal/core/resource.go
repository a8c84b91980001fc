package core

// ResourceState is the Banker's algorithm snapshot: R resource types shared
// between N processes.
type ResourceState struct {
	Available  []int
	Maximum    [][]int
	Allocation [][]int
	Need       [][]int
}

// NewResourceState builds a state and derives Need = Maximum - Allocation.
// Rows missing from allocation are treated as zero allocation; dimension
// mismatches are left for the caller to validate.
func NewResourceState(available []int, maximum, allocation [][]int) ResourceState {
	need := make([][]int, len(maximum))
	for i, row := range maximum {
		need[i] = make([]int, len(row))
		for j, m := range row {
			var held int
			if i < len(allocation) && j < len(allocation[i]) {
				held = allocation[i][j]
			}
			need[i][j] = m - held
		}
	}
	return ResourceState{
		Available:  cloneVector(available),
		Maximum:    cloneMatrix(maximum),
		Allocation: cloneMatrix(allocation),
		Need:       need,
	}
}

// Dimensions returns the number of processes and resource types, taken from
// Allocation and Available respectively.
func (r ResourceState) Dimensions() (n, m int) {
	return len(r.Allocation), len(r.Available)
}

// Clone returns a deep copy.
func (r ResourceState) Clone() ResourceState {
	return ResourceState{
		Available:  cloneVector(r.Available),
		Maximum:    cloneMatrix(r.Maximum),
		Allocation: cloneMatrix(r.Allocation),
		Need:       cloneMatrix(r.Need),
	}
}

func cloneVector(v []int) []int {
	if v == nil {
		return nil
	}
	out := make([]int, len(v))
	copy(out, v)
	return out
}

func cloneMatrix(m [][]int) [][]int {
	if m == nil {
		return nil
	}
	out := make([][]int, len(m))
	for i := range m {
		out[i] = cloneVector(m[i])
	}
	return out
}
