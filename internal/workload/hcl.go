package workload

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"os-simulator/internal/core"
)

// hclFile is the top-level schema of an .hcl workload:
//
//	algorithm    = "RR"
//	time_quantum = 2
//
//	process {
//	  id       = 1
//	  arrival  = 0
//	  burst    = 5
//	  priority = 2
//	}
//
//	resources {
//	  available  = [3, 3, 2]
//	  maximum    = [[7, 5, 3], [3, 2, 2]]
//	  allocation = [[0, 1, 0], [2, 0, 0]]
//	}
type hclFile struct {
	Algorithm   *string       `hcl:"algorithm,optional"`
	TimeQuantum *int          `hcl:"time_quantum,optional"`
	Processes   []hclProcess  `hcl:"process,block"`
	Resources   *hclResources `hcl:"resources,block"`
}

type hclProcess struct {
	ID       int  `hcl:"id"`
	Arrival  int  `hcl:"arrival"`
	Burst    int  `hcl:"burst"`
	Priority *int `hcl:"priority,optional"`
}

type hclResources struct {
	Available  []int   `hcl:"available"`
	Maximum    [][]int `hcl:"maximum"`
	Allocation [][]int `hcl:"allocation"`
}

// evalContext exposes a few cty functions so workloads can compute values,
// e.g. burst = max(1, 8 - 3).
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"abs":    stdlib.AbsoluteFunc,
			"min":    stdlib.MinFunc,
			"max":    stdlib.MaxFunc,
			"concat": stdlib.ConcatFunc,
			"length": stdlib.LengthFunc,
		},
	}
}

// LoadHCL parses and decodes a workload file.
func LoadHCL(path string) (*Workload, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return decodeHCL(file.Body, path)
}

// ParseHCL decodes a workload from source bytes; filename is used in
// diagnostics only.
func ParseHCL(src []byte, filename string) (*Workload, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return decodeHCL(file.Body, filename)
}

func decodeHCL(body hcl.Body, filename string) (*Workload, error) {
	var root hclFile
	if diags := gohcl.DecodeBody(body, evalContext(), &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	w := &Workload{Processes: make([]core.Process, 0, len(root.Processes))}
	if root.Algorithm != nil {
		w.Algorithm = *root.Algorithm
	}
	if root.TimeQuantum != nil {
		if *root.TimeQuantum <= 0 {
			return nil, fmt.Errorf("%s: time_quantum must be a positive integer, got %d", filename, *root.TimeQuantum)
		}
		w.TimeQuantum = *root.TimeQuantum
	}
	for _, p := range root.Processes {
		w.Processes = append(w.Processes, core.Process{
			ID:          p.ID,
			ArrivalTime: p.Arrival,
			BurstTime:   p.Burst,
			Priority:    p.Priority,
		})
	}
	if root.Resources != nil {
		state := core.NewResourceState(root.Resources.Available, root.Resources.Maximum, root.Resources.Allocation)
		w.Resources = &state
	}
	return w, nil
}
