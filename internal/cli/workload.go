package cli

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"cpu-scheduler/internal/core"
)

var ErrInvalidWorkload = errors.New("invalid workload")

// LoadWorkload reads a process set from a CSV file of
// id,burst,arrival[,priority] rows.
func LoadWorkload(path string) ([]core.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening workload file: %w", err)
	}
	defer f.Close()

	return readWorkload(f)
}

func readWorkload(r io.Reader) ([]core.Process, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading workload CSV: %w", err)
	}

	processes := make([]core.Process, len(rows))
	for i, row := range rows {
		if len(row) < 3 {
			return nil, fmt.Errorf("%w: row %d needs id, burst and arrival columns", ErrInvalidWorkload, i+1)
		}
		fields := make([]int, len(row))
		for j, cell := range row {
			fields[j], err = strconv.Atoi(cell)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %d: %v", ErrInvalidWorkload, i+1, j+1, err)
			}
		}
		processes[i] = core.Process{ID: fields[0], Burst: fields[1], Arrival: fields[2]}
		if len(fields) >= 4 {
			processes[i].Priority = fields[3]
		}
	}

	return processes, nil
}
