package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"os-simulator/internal/core"
)

var ErrInvalidRow = errors.New("invalid workload row")

// LoadCSV reads rows of "id,burst,arrival[,priority]". Lines starting with #
// are comments and a first row with no numeric field is treated as a header.
func LoadCSV(r io.Reader) ([]core.Process, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	processes := make([]core.Process, 0)
	for row := 0; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading CSV", err)
		}
		line, _ := reader.FieldPos(0)

		if row == 0 && isHeader(record) {
			continue
		}
		process, err := parseRow(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		processes = append(processes, process)
	}
	return processes, nil
}

// isHeader reports whether no field of record is an integer, so a malformed
// first data row such as "P1,5,0" is still reported as an error.
func isHeader(record []string) bool {
	for _, field := range record {
		if _, err := strconv.Atoi(strings.TrimSpace(field)); err == nil {
			return false
		}
	}
	return true
}

func parseRow(record []string) (core.Process, error) {
	if len(record) != 3 && len(record) != 4 {
		return core.Process{}, fmt.Errorf("%w: expected 3 or 4 fields, got %d", ErrInvalidRow, len(record))
	}

	values := make([]int, len(record))
	for i, field := range record {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return core.Process{}, fmt.Errorf("%w: field %d: %v", ErrInvalidRow, i+1, err)
		}
		values[i] = v
	}

	process := core.Process{
		ID:          values[0],
		BurstTime:   values[1],
		ArrivalTime: values[2],
	}
	if len(values) == 4 {
		process.Priority = core.IntPtr(values[3])
	}
	return process, nil
}
