package attendance

import (
	"time"

	"muster/internal/roster"
)

// IdentityResolver maps a raw attendee label to a canonical roster identity.
// Implementations decide how forgiving the match is; this package only
// requires that resolution be deterministic.
type IdentityResolver interface {
	Resolve(raw string) (roster.Student, bool)
}

// Record is one parsed meeting instance. Records are immutable after
// construction: the attendee set and the per-attendee minutes map always
// cover exactly the same students.
type Record struct {
	origin          string
	topic           string
	startTime       time.Time
	durationMinutes int
	attendees       []roster.Student
	minutes         map[string]int
	unresolved      []string
}

// RecordAttendee pairs a resolved identity with its recorded minutes, for
// callers constructing records outside the CSV parser.
type RecordAttendee struct {
	Student roster.Student
	Minutes int
}

// RecordParams describes a meeting instance to NewRecord.
type RecordParams struct {
	Origin          string
	Topic           string
	StartTime       time.Time
	DurationMinutes int
	Attendees       []RecordAttendee
	Unresolved      []string
}

// NewRecord builds a record directly, for ingestion paths other than
// ParseExport. Duplicate attendee identities collapse to their first
// occurrence, preserving the invariant that the attendee set and the
// minutes map cover the same students.
func NewRecord(params RecordParams) *Record {
	record := newRecord(params.Origin, params.Topic, params.StartTime, params.DurationMinutes)
	for _, attendee := range params.Attendees {
		record.addAttendee(attendee.Student, attendee.Minutes)
	}
	for _, raw := range params.Unresolved {
		record.addUnresolved(raw)
	}
	return record
}

func newRecord(origin, topic string, start time.Time, duration int) *Record {
	return &Record{
		origin:          origin,
		topic:           topic,
		startTime:       start,
		durationMinutes: duration,
		minutes:         make(map[string]int),
	}
}

// addAttendee records a resolved attendee. Duplicate identities keep their
// first duration so the attendee set stays a set.
func (r *Record) addAttendee(st roster.Student, minutes int) {
	key := st.Key()
	if _, seen := r.minutes[key]; seen {
		return
	}
	r.minutes[key] = minutes
	r.attendees = append(r.attendees, st)
}

func (r *Record) addUnresolved(raw string) {
	r.unresolved = append(r.unresolved, raw)
}

// Origin returns the export file name this record was parsed from.
func (r *Record) Origin() string { return r.origin }

// Topic returns the meeting topic as written in the export.
func (r *Record) Topic() string { return r.topic }

// StartTime returns the meeting start time.
func (r *Record) StartTime() time.Time { return r.startTime }

// DurationMinutes returns the scheduled meeting length in minutes.
func (r *Record) DurationMinutes() int { return r.durationMinutes }

// AttendeeCount returns the size of the resolved attendee set.
func (r *Record) AttendeeCount() int { return len(r.attendees) }

// Attendees returns the resolved attendees in export row order.
func (r *Record) Attendees() []roster.Student {
	out := make([]roster.Student, len(r.attendees))
	copy(out, r.attendees)
	return out
}

// Keys returns the canonical keys of the attendee set.
func (r *Record) Keys() []string {
	out := make([]string, 0, len(r.attendees))
	for _, st := range r.attendees {
		out = append(out, st.Key())
	}
	return out
}

// MinutesFor returns the recorded attendance minutes for a student key.
func (r *Record) MinutesFor(key string) (int, bool) {
	minutes, ok := r.minutes[key]
	return minutes, ok
}

// Unresolved returns the raw labels that failed identity resolution, one
// entry per export row.
func (r *Record) Unresolved() []string {
	out := make([]string, len(r.unresolved))
	copy(out, r.unresolved)
	return out
}
