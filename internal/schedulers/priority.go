package schedulers

import (
	"log"

	"cpu-scheduler/internal/core"
)

// SchedulePriority repeatedly runs, among the processes that have already
// arrived, the one with the lowest effective priority value until all are
// done. Non-preemptive. Ties go to the earlier arrival, then the smaller
// burst, then the first process encountered in input order.
//
// With aging enabled a pending process's effective priority improves by one
// step for every core.AgingInterval time units it has waited since arrival,
// floored at zero, so long waits eventually beat nominally higher priorities.
// When nothing has arrived yet the clock jumps to the earliest arrival among
// the pending processes and selection is retried.
func SchedulePriority(processes []core.Process, withAging bool) (core.Schedule, error) {
	if err := core.Validate(processes); err != nil {
		return core.Schedule{}, err
	}
	log.Println("running priority algorithm with aging =", withAging)

	procs := make([]core.Process, len(processes))
	copy(procs, processes)

	schedule := core.Schedule{
		Processes: make([]core.Completed, 0, len(procs)),
		Segments:  make([]core.Segment, 0, len(procs)),
	}
	scheduled := make([]bool, len(procs))
	currentTime := 0
	for completed := 0; completed < len(procs); {
		best := -1
		bestPriority := 0
		for i, p := range procs {
			if scheduled[i] || p.Arrival > currentTime {
				continue
			}
			effective := effectivePriority(p, currentTime, withAging)
			if best == -1 || effective < bestPriority ||
				(effective == bestPriority && beatsTie(p, procs[best])) {
				best = i
				bestPriority = effective
			}
		}
		if best == -1 {
			currentTime = earliestPending(procs, scheduled)
			continue
		}

		p := procs[best]
		start := currentTime
		currentTime += p.Burst
		scheduled[best] = true
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

func effectivePriority(p core.Process, currentTime int, withAging bool) int {
	if !withAging {
		return p.Priority
	}
	effective := p.Priority - (currentTime-p.Arrival)/core.AgingInterval
	if effective < 0 {
		effective = 0
	}
	return effective
}

// beatsTie orders two processes of equal effective priority: earlier arrival
// first, then smaller burst. Equal on both keeps the incumbent.
func beatsTie(candidate, incumbent core.Process) bool {
	if candidate.Arrival != incumbent.Arrival {
		return candidate.Arrival < incumbent.Arrival
	}
	return candidate.Burst < incumbent.Burst
}

func earliestPending(procs []core.Process, scheduled []bool) int {
	earliest := -1
	for i, p := range procs {
		if scheduled[i] {
			continue
		}
		if earliest == -1 || p.Arrival < earliest {
			earliest = p.Arrival
		}
	}
	return earliest
}
