package util

import (
	"fmt"

	"cpu-scheduler/internal/core"
)

// Summary aggregates the per-process metrics of one finished schedule.
type Summary struct {
	AverageTurnaround float64
	AverageWaiting    float64
	TotalTime         int
	Throughput        float64
}

// Summarize computes the average turnaround and waiting times, the total
// simulated time (latest completion) and the throughput of a finished
// schedule. It fails on an empty set or a zero total time instead of
// producing NaN or Inf.
func Summarize(completed []core.Completed) (Summary, error) {
	if len(completed) == 0 {
		return Summary{}, fmt.Errorf("%w: nothing to summarize", core.ErrEmptyProcessSet)
	}

	var turnaroundSum, waitingSum float64
	var totalTime int
	for _, p := range completed {
		turnaroundSum += float64(p.Turnaround)
		waitingSum += float64(p.Waiting)
		if p.Completion > totalTime {
			totalTime = p.Completion
		}
	}
	if totalTime == 0 {
		return Summary{}, fmt.Errorf("%w: schedule finished at time zero", core.ErrEmptyProcessSet)
	}

	count := float64(len(completed))
	return Summary{
		AverageTurnaround: turnaroundSum / count,
		AverageWaiting:    waitingSum / count,
		TotalTime:         totalTime,
		Throughput:        count / float64(totalTime),
	}, nil
}
