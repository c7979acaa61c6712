// Package pipeline runs a full attendance report: roster load, export
// ingestion, meeting grouping, and report assembly, in that order.
package pipeline
