package grouping

import "muster/internal/attendance"

// Cluster is a sequence of meeting records believed to be recurrences of the
// same group, in assignment order. Clusters are built by the Clusterer and
// read-only afterwards.
type Cluster struct {
	records []*attendance.Record
	rep     *attendance.Record
}

// add appends a record and updates the representative. Only a strictly
// larger attendee set takes over, so ties keep the earliest arrival.
func (c *Cluster) add(record *attendance.Record) {
	c.records = append(c.records, record)
	if c.rep == nil || record.AttendeeCount() > c.rep.AttendeeCount() {
		c.rep = record
	}
}

// Records returns the cluster's records in assignment order.
func (c *Cluster) Records() []*attendance.Record {
	out := make([]*attendance.Record, len(c.records))
	copy(out, c.records)
	return out
}

// Len reports how many meeting instances the cluster holds.
func (c *Cluster) Len() int {
	return len(c.records)
}

// Representative returns the comparison baseline: the record with the most
// attendees seen so far, earliest arrival winning ties. It can change over
// the cluster's lifetime as larger meetings arrive.
func (c *Cluster) Representative() *attendance.Record {
	return c.rep
}

// PeakAttendance is the historical maximum attendee count, the
// normalization baseline for the cluster health score.
func (c *Cluster) PeakAttendance() int {
	if c.rep == nil {
		return 0
	}
	return c.rep.AttendeeCount()
}

// Latest returns the most recently assigned record.
func (c *Cluster) Latest() *attendance.Record {
	if len(c.records) == 0 {
		return nil
	}
	return c.records[len(c.records)-1]
}
