// Package display renders finished schedules for the console. It only
// consumes engine output; nothing in the engine depends on it.
package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/util"
)

// Render prints the title banner, the Gantt strip, the per-segment execution
// details and the schedule table with aggregate metrics for one run.
func Render(w io.Writer, title string, schedule core.Schedule, summary util.Summary) {
	renderTitle(w, title)
	renderGantt(w, schedule.Segments)
	renderTimeline(w, schedule.Segments)
	renderSchedule(w, schedule.Processes, summary)
}

func renderTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func renderGantt(w io.Writer, segments []core.Segment) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for _, s := range segments {
		label := "P" + strconv.Itoa(s.ProcessID)
		padding := strings.Repeat(" ", (8-len(label))/2)
		_, _ = fmt.Fprint(w, padding, label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, s := range segments {
		_, _ = fmt.Fprint(w, s.Start, "\t")
		if i == len(segments)-1 {
			_, _ = fmt.Fprint(w, s.End)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func renderTimeline(w io.Writer, segments []core.Segment) {
	_, _ = fmt.Fprintln(w, "Execution details")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Start", "End", "Duration"})
	for _, s := range segments {
		table.Append([]string{
			"P" + strconv.Itoa(s.ProcessID),
			strconv.Itoa(s.Start),
			strconv.Itoa(s.End),
			strconv.Itoa(s.Duration()),
		})
	}
	table.Render()
	_, _ = fmt.Fprintln(w)
}

func renderSchedule(w io.Writer, completed []core.Completed, summary util.Summary) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	rows := make([][]string, 0, len(completed))
	for _, p := range completed {
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			strconv.Itoa(p.Arrival),
			strconv.Itoa(p.Burst),
			strconv.Itoa(p.Completion),
			strconv.Itoa(p.Turnaround),
			strconv.Itoa(p.Waiting),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Completion", "Turnaround", "Wait"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "",
		fmt.Sprintf("Throughput\n%.2f/t", summary.Throughput),
		fmt.Sprintf("Average\n%.2f", summary.AverageTurnaround),
		fmt.Sprintf("Average\n%.2f", summary.AverageWaiting)})
	table.Render()
	_, _ = fmt.Fprintln(w)
}
