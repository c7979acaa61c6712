// Package report turns a finished clustering run into presentation-ready
// aggregates.
//
// The assembler computes per-student attendance totals with decile flags,
// per-cluster health scores normalized against each cluster's historical
// peak attendance, an attendance grid per cluster with duration bucket
// classifications, and the tally of attendee labels that never resolved to
// a roster identity. Everything is plain data; rendering belongs to the
// caller.
package report
