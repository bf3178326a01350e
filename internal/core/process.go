package core

import (
	"errors"
	"fmt"
)

// AgingInterval is how many time units a pending process must wait before its
// effective priority improves by one step when aging is enabled.
const AgingInterval = 5

var (
	ErrEmptyProcessSet = errors.New("empty process set")
	ErrDuplicateID     = errors.New("duplicate process id")
	ErrInvalidProcess  = errors.New("invalid process")
	ErrInvalidQuantum  = errors.New("invalid time quantum")
)

// Process holds the immutable scheduling inputs for one process. A lower
// Priority value means a higher priority; non-priority policies ignore it.
type Process struct {
	ID       int
	Arrival  int
	Burst    int
	Priority int
}

// Segment is one contiguous CPU allocation on the simulated timeline.
type Segment struct {
	ProcessID int
	Start     int
	End       int
}

func (s Segment) Duration() int { return s.End - s.Start }

// Completed pairs a process with the metrics derived from its finished run.
type Completed struct {
	Process
	Completion int
	Turnaround int
	Waiting    int
}

// Schedule is the full outcome of one policy run: completions in the order
// processes finished and execution segments ordered by start time.
type Schedule struct {
	Processes []Completed
	Segments  []Segment
}

// Complete derives the turnaround and waiting metrics for a process whose
// last unit of work finished at the given time.
func Complete(p Process, completion int) Completed {
	turnaround := completion - p.Arrival
	return Completed{
		Process:    p,
		Completion: completion,
		Turnaround: turnaround,
		Waiting:    turnaround - p.Burst,
	}
}

// Validate rejects process sets the policies cannot schedule unambiguously.
// It runs before any simulation starts, so a failed call never returns a
// partial schedule.
func Validate(processes []Process) error {
	if len(processes) == 0 {
		return ErrEmptyProcessSet
	}
	seen := make(map[int]struct{}, len(processes))
	for _, p := range processes {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.Arrival < 0 {
			return fmt.Errorf("%w: process %d has a negative arrival time", ErrInvalidProcess, p.ID)
		}
		if p.Burst <= 0 {
			return fmt.Errorf("%w: process %d needs a positive burst time", ErrInvalidProcess, p.ID)
		}
	}
	return nil
}
