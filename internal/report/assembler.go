package report

import (
	"fmt"
	"sort"
	"time"

	"muster/internal/attendance"
	"muster/internal/grouping"
	"muster/internal/roster"
)

// ClusterSummary aggregates one recurring-meeting cluster.
type ClusterSummary struct {
	// Label is the human-supplied group name, or "" for untagged clusters.
	Label    string
	Meetings int
	// PeakAttendance is the historical maximum attendee count, the
	// normalization baseline for Health.
	PeakAttendance int
	// LatestAttendance is the attendee count of the most recent meeting.
	LatestAttendance int
	// Health is LatestAttendance divided by PeakAttendance, in [0,1].
	Health    float64
	FirstSeen time.Time
	LastSeen  time.Time
	Grid      ClusterGrid
}

// ClusterGrid is the per-cluster attendance matrix: one row per student,
// one column per meeting in assignment order.
type ClusterGrid struct {
	MeetingTimes []time.Time
	Rows         []GridRow
}

// GridRow is one student's attendance across a cluster's meetings.
type GridRow struct {
	Student      roster.Student
	Cells        []GridCell
	TotalMinutes int
}

// GridCell is one student-meeting pairing.
type GridCell struct {
	Attended bool
	Minutes  int
	Bucket   Bucket
}

// StudentSummary aggregates one student across every cluster they appear in.
type StudentSummary struct {
	Student          roster.Student
	TotalMinutes     int
	MeetingsAttended int
	// Percentile is the share of students with strictly lower totals,
	// in [0,100).
	Percentile   float64
	TopDecile    bool
	BottomDecile bool
}

// UnresolvedLabel is a raw attendee label that never matched the roster,
// with the number of times it appeared.
type UnresolvedLabel struct {
	Label string
	Count int
}

// Report is the full presentation-ready output of a run.
type Report struct {
	Clusters    []ClusterSummary
	Students    []StudentSummary
	Unresolved  []UnresolvedLabel
	Skipped     []attendance.SkippedFile
	Ambiguities int
	Thresholds  Thresholds
}

// Options configures report assembly.
type Options struct {
	Thresholds Thresholds
	// Labels maps group labels to clusters, as produced by
	// grouping.Set.ResolveLabels. May be nil.
	Labels map[string]*grouping.Cluster
}

// Assemble computes all aggregates for a finished clustering run. The
// skipped manifest and unresolved tally pass through so the renderer has
// the whole story in one structure.
func Assemble(set *grouping.Set, skipped []attendance.SkippedFile, unresolved map[string]int, opts Options) (*Report, error) {
	if err := opts.Thresholds.Validate(); err != nil {
		return nil, fmt.Errorf("attendance thresholds: %w", err)
	}

	labelFor := invertLabels(opts.Labels)

	out := &Report{
		Skipped:     skipped,
		Ambiguities: set.Ambiguities,
		Thresholds:  opts.Thresholds,
	}
	for _, cluster := range set.Clusters {
		out.Clusters = append(out.Clusters, summarizeCluster(cluster, labelFor[cluster], opts.Thresholds))
	}
	out.Students = summarizeStudents(set)
	out.Unresolved = sortUnresolved(unresolved)
	return out, nil
}

func invertLabels(labels map[string]*grouping.Cluster) map[*grouping.Cluster]string {
	inverted := make(map[*grouping.Cluster]string, len(labels))
	// Sort label keys so ties on the same cluster resolve the same way
	// every run.
	keys := make([]string, 0, len(labels))
	for label := range labels {
		keys = append(keys, label)
	}
	sort.Strings(keys)
	for _, label := range keys {
		cluster := labels[label]
		if _, taken := inverted[cluster]; !taken {
			inverted[cluster] = label
		}
	}
	return inverted
}

func summarizeCluster(cluster *grouping.Cluster, label string, thresholds Thresholds) ClusterSummary {
	records := cluster.Records()

	summary := ClusterSummary{
		Label:          label,
		Meetings:       len(records),
		PeakAttendance: cluster.PeakAttendance(),
	}
	if latest := cluster.Latest(); latest != nil {
		summary.LatestAttendance = latest.AttendeeCount()
	}
	if summary.PeakAttendance > 0 {
		summary.Health = float64(summary.LatestAttendance) / float64(summary.PeakAttendance)
	}
	for _, record := range records {
		start := record.StartTime()
		if summary.FirstSeen.IsZero() || start.Before(summary.FirstSeen) {
			summary.FirstSeen = start
		}
		if start.After(summary.LastSeen) {
			summary.LastSeen = start
		}
	}
	summary.Grid = buildGrid(records, thresholds)
	return summary
}

func buildGrid(records []*attendance.Record, thresholds Thresholds) ClusterGrid {
	grid := ClusterGrid{MeetingTimes: make([]time.Time, 0, len(records))}
	for _, record := range records {
		grid.MeetingTimes = append(grid.MeetingTimes, record.StartTime())
	}

	students := make(map[string]roster.Student)
	for _, record := range records {
		for _, st := range record.Attendees() {
			if _, seen := students[st.Key()]; !seen {
				students[st.Key()] = st
			}
		}
	}
	keys := make([]string, 0, len(students))
	for key := range students {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		row := GridRow{Student: students[key], Cells: make([]GridCell, 0, len(records))}
		for _, record := range records {
			minutes, attended := record.MinutesFor(key)
			cell := GridCell{Attended: attended, Minutes: minutes}
			if attended {
				cell.Bucket = thresholds.Classify(minutes)
				row.TotalMinutes += minutes
			}
			row.Cells = append(row.Cells, cell)
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}

func summarizeStudents(set *grouping.Set) []StudentSummary {
	totals := make(map[string]*StudentSummary)
	for _, record := range set.Records() {
		for _, st := range record.Attendees() {
			key := st.Key()
			summary, ok := totals[key]
			if !ok {
				summary = &StudentSummary{Student: st}
				totals[key] = summary
			}
			if minutes, attended := record.MinutesFor(key); attended {
				summary.TotalMinutes += minutes
				summary.MeetingsAttended++
			}
		}
	}

	students := make([]StudentSummary, 0, len(totals))
	for _, summary := range totals {
		students = append(students, *summary)
	}
	sort.Slice(students, func(i, j int) bool {
		if students[i].TotalMinutes != students[j].TotalMinutes {
			return students[i].TotalMinutes > students[j].TotalMinutes
		}
		return students[i].Student.Key() < students[j].Student.Key()
	})

	n := len(students)
	for i := range students {
		below := 0
		above := 0
		for j := range students {
			switch {
			case students[j].TotalMinutes < students[i].TotalMinutes:
				below++
			case students[j].TotalMinutes > students[i].TotalMinutes:
				above++
			}
		}
		students[i].Percentile = 100 * float64(below) / float64(n)
		students[i].TopDecile = float64(below)/float64(n) >= 0.9
		students[i].BottomDecile = float64(above)/float64(n) >= 0.9
	}
	return students
}

func sortUnresolved(counts map[string]int) []UnresolvedLabel {
	out := make([]UnresolvedLabel, 0, len(counts))
	for label, count := range counts {
		out = append(out, UnresolvedLabel{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}
