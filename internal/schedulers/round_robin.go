package schedulers

import (
	"fmt"
	"log"
	"sort"

	"cpu-scheduler/internal/core"
)

// ScheduleRoundRobin slices CPU time in fixed quanta over a FIFO queue.
// Processes are sorted by arrival (stable) and all enqueued before the clock
// starts, so every process is treated as runnable from time 0 regardless of
// its true arrival; arrivals after 0 are not held back until their instant.
// A process that still has work after a full quantum goes to the back of the
// queue; otherwise it runs out its remainder and completes.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int) (core.Schedule, error) {
	if timeQuantum <= 0 {
		return core.Schedule{}, fmt.Errorf("%w: %d", core.ErrInvalidQuantum, timeQuantum)
	}
	if err := core.Validate(processes); err != nil {
		return core.Schedule{}, err
	}
	log.Println("running roundRobin algorithm with timeQuantum =", timeQuantum)

	procs := make([]core.Process, len(processes))
	copy(procs, processes)
	sort.SliceStable(procs, func(i, j int) bool {
		return procs[i].Arrival < procs[j].Arrival
	})

	remaining := make([]int, len(procs))
	queue := make([]int, 0, len(procs))
	for i, p := range procs {
		remaining[i] = p.Burst
		queue = append(queue, i)
	}

	schedule := core.Schedule{
		Processes: make([]core.Completed, 0, len(procs)),
		Segments:  make([]core.Segment, 0, len(procs)),
	}
	currentTime := 0
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]

		start := currentTime
		if remaining[idx] > timeQuantum {
			currentTime += timeQuantum
			remaining[idx] -= timeQuantum
			queue = append(queue, idx)
		} else {
			currentTime += remaining[idx]
			remaining[idx] = 0
			schedule.Processes = append(schedule.Processes, core.Complete(procs[idx], currentTime))
		}
		schedule.Segments = append(schedule.Segments, core.Segment{
			ProcessID: procs[idx].ID,
			Start:     start,
			End:       currentTime,
		})
	}
	return schedule, nil
}
