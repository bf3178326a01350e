package schedulers

import (
	"log"

	"cpu-scheduler/internal/core"
)

// ScheduleShortestJobFirst repeatedly runs, among the processes that have
// already arrived, the one with the smallest burst until all are done.
// Non-preemptive. Ties keep the first process encountered in input order.
//
// When nothing has arrived yet the clock jumps to the arrival of the first
// pending process in input order, not to the earliest arrival overall, and
// selection is retried. Callers relying on idle gaps should order their input
// accordingly.
func ScheduleShortestJobFirst(processes []core.Process) (core.Schedule, error) {
	if err := core.Validate(processes); err != nil {
		return core.Schedule{}, err
	}
	log.Println("running sjf algorithm ...")

	procs := make([]core.Process, len(processes))
	copy(procs, processes)

	schedule := core.Schedule{
		Processes: make([]core.Completed, 0, len(procs)),
		Segments:  make([]core.Segment, 0, len(procs)),
	}
	scheduled := make([]bool, len(procs))
	currentTime := 0
	for completed := 0; completed < len(procs); {
		shortest := -1
		for i, p := range procs {
			if scheduled[i] || p.Arrival > currentTime {
				continue
			}
			if shortest == -1 || p.Burst < procs[shortest].Burst {
				shortest = i
			}
		}
		if shortest == -1 {
			for i, p := range procs {
				if !scheduled[i] {
					currentTime = p.Arrival
					break
				}
			}
			continue
		}

		p := procs[shortest]
		start := currentTime
		currentTime += p.Burst
		scheduled[shortest] = true
		completed++
		schedule.Processes = append(schedule.Processes, core.Complete(p, currentTime))
		schedule.Segments = append(schedule.Segments, core.Segment{
			ProcessID: p.ID,
			Start:     start,
			End:       currentTime,
		})
	}
	return schedule, nil
}
