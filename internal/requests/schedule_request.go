package requests

import "cpu-scheduler/internal/core"

type Process struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"`
}

type ScheduleRequest struct {
	Processes   []Process `json:"processes"`
	TimeQuantum int       `json:"time_quantum,omitempty"`
	WithAging   *bool     `json:"with_aging,omitempty"`
}

// CoreProcesses converts the wire records into engine inputs.
func (r *ScheduleRequest) CoreProcesses() []core.Process {
	procs := make([]core.Process, 0, len(r.Processes))
	for _, p := range r.Processes {
		procs = append(procs, core.Process{
			ID:       p.ProcessId,
			Arrival:  p.ArrivalTime,
			Burst:    p.BurstTime,
			Priority: p.Priority,
		})
	}
	return procs
}
