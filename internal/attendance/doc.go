// Package attendance parses per-meeting attendance export CSVs into
// immutable records.
//
// One export file yields one Record: meeting topic, start time, duration,
// and the set of roster identities that attended. Raw attendee labels are
// resolved through an IdentityResolver; labels the resolver cannot place are
// collected as diagnostics on the record, never treated as errors. Malformed
// meeting metadata, by contrast, makes the whole file unusable and surfaces
// as ErrMalformedExport.
//
// ScanDir enumerates a directory of exports in lexicographic file name
// order. That order is part of the grouping contract: downstream clustering
// is first-match-wins, so reruns over the same directory must see the same
// sequence.
package attendance
