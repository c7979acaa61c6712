// Package runstore persists a history of clustering runs in SQLite.
//
// Each run records its input directory, configuration, aggregate counts,
// the per-cluster summaries, and the manifest of skipped files. The store
// takes an advisory file lock on open so two concurrent runs cannot
// interleave writes to the same database.
package runstore
