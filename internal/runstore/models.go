package runstore

import "time"

// Run is one recorded clustering run.
type Run struct {
	ID              string
	CreatedAt       time.Time
	ExportsDir      string
	RatioThreshold  float64
	FileCount       int
	ClusterCount    int
	StudentCount    int
	UnresolvedCount int
	AmbiguityCount  int
}

// ClusterRow is one cluster's summary within a recorded run.
type ClusterRow struct {
	Position       int
	Label          string
	Meetings       int
	PeakAttendance int
	Health         float64
}

// SkipRow is one skipped export file within a recorded run.
type SkipRow struct {
	File   string
	Reason string
}

// RunParams describes a finished run to RecordRun.
type RunParams struct {
	ExportsDir      string
	RatioThreshold  float64
	FileCount       int
	StudentCount    int
	UnresolvedCount int
	AmbiguityCount  int
	Clusters        []ClusterRow
	Skipped         []SkipRow
}
