// Package workload reads process lists and resource matrices from files so a
// simulation can be run offline.
package workload

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"os-simulator/internal/core"
)

// Workload is everything a file can describe. Algorithm and TimeQuantum are
// zero when the file does not set them.
type Workload struct {
	Algorithm   string
	TimeQuantum int
	Processes   []core.Process
	Resources   *core.ResourceState
}

var ErrUnsupportedFormat = errors.New("unsupported workload format")

// Load picks a loader from the file extension.
func Load(path string) (*Workload, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("error opening workload file: %w", err)
		}
		defer f.Close()

		processes, err := LoadCSV(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return &Workload{Processes: processes}, nil
	case ".hcl":
		return LoadHCL(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
