package schedulers

import (
	"errors"
	"fmt"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

// Names accepted by RunAlgorithm and the transport layer.
const (
	AlgorithmFCFS       = "fcfs"
	AlgorithmSJF        = "sjf"
	AlgorithmRoundRobin = "rr"
	AlgorithmPriority   = "priority"
)

// Algorithms lists every policy name in presentation order.
var Algorithms = []string{AlgorithmFCFS, AlgorithmSJF, AlgorithmRoundRobin, AlgorithmPriority}

var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// RunAlgorithm dispatches one policy by name. The quantum only applies to
// round-robin and the aging flag only to priority scheduling.
func RunAlgorithm(algorithm string, processes []core.Process, timeQuantum int, withAging bool) (core.Schedule, error) {
	switch algorithm {
	case AlgorithmFCFS:
		return ScheduleFirstComeFirstServe(processes)
	case AlgorithmSJF:
		return ScheduleShortestJobFirst(processes)
	case AlgorithmRoundRobin:
		return ScheduleRoundRobin(processes, timeQuantum)
	case AlgorithmPriority:
		return SchedulePriority(processes, withAging)
	default:
		return core.Schedule{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

// GenerateResponse packages a finished schedule for transport: per-process
// rows in completion order, segment rows in timeline order and the aggregate
// metrics.
func GenerateResponse(algorithm string, schedule core.Schedule) (responses.ScheduleResponse, error) {
	summary, err := util.Summarize(schedule.Processes)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	details := make([]responses.ProcessResponse, 0, len(schedule.Processes))
	for _, p := range schedule.Processes {
		details = append(details, responses.ProcessResponse{
			ProcessId:      p.ID,
			ArrivalTime:    p.Arrival,
			BurstTime:      p.Burst,
			CompletionTime: p.Completion,
			TurnAroundTime: p.Turnaround,
			WaitingTime:    p.Waiting,
		})
	}
	segments := make([]responses.SegmentResponse, 0, len(schedule.Segments))
	for _, s := range schedule.Segments {
		segments = append(segments, responses.SegmentResponse{
			ProcessId: s.ProcessID,
			StartTime: s.Start,
			EndTime:   s.End,
			Duration:  s.Duration(),
		})
	}

	return responses.ScheduleResponse{
		Algorithm:             algorithm,
		TotalTime:             summary.TotalTime,
		AverageWaitingTime:    summary.AverageWaiting,
		AverageTurnAroundTime: summary.AverageTurnaround,
		CpuThroughput:         summary.Throughput,
		Details:               details,
		Segments:              segments,
	}, nil
}
