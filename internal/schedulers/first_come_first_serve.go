package schedulers

import (
	"log"
	"sort"

	"cpu-scheduler/internal/core"
)

// ScheduleFirstComeFirstServe runs every process to completion in arrival
// order. Ties keep the caller's original order. When the clock is behind the
// next arrival it jumps forward, leaving an idle gap on the timeline.
func ScheduleFirstComeFirstServe(processes []core.Process) (core.Schedule, error) {
	if err := core.Validate(processes); err != nil {
		return core.Schedule{}, err
	}
	log.Println("running fcfs algorithm ...")

	procs := make([]core.Process, len(processes))
	copy(procs, processes)
	sort.SliceStable(procs, func(i, j int) bool {
		return procs[i].Arrival < procs[j].Arrival
	})

	schedule := core.Schedule{
		Processes: make([]core.Completed, 0, len(procs)),
		Segments:  make([]core.Segment, 0, len(procs)),
	}
	currentTime := 0
	for _, p := range procs {
		if currentTime < p.Arrival {
			currentTime = p.Arrival
		}
		start := currentTime
		currentTime += p.Burst
		schedule.Processes = append(schedule.Processes, core.Complete(p, currentTime))
		schedule.Segments = append(schedule.Segments, core.Segment{
			ProcessID: p.ID,
			Start:     start,
			End:       currentTime,
		})
	}
	return schedule, nil
}
