package attendance

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedExport marks an export file whose meeting metadata cannot be
// parsed. The file is unusable as a whole; callers skip it and report it in
// the run manifest instead of aborting the run.
var ErrMalformedExport = errors.New("malformed export")

// Export CSV layout, as produced by the meeting platform: a meeting header
// row, the meeting info row, a blank separator line, then an attendee header
// row followed by one row per attendee.
const (
	topicColumn    = 1
	startColumn    = 2
	durationColumn = 5

	attendeeNameColumn    = 0
	attendeeMinutesColumn = 2
)

// ParseExport reads one export CSV and resolves its attendee rows against
// the given resolver. Unresolvable attendee labels are collected on the
// record; only broken meeting metadata returns an error.
func ParseExport(path string, resolver IdentityResolver) (*Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open export: %w", err)
	}

	meetingSection, attendeeSection, err := splitSections(string(raw))
	if err != nil {
		return nil, err
	}

	info, err := parseMeetingInfo(meetingSection)
	if err != nil {
		return nil, err
	}

	record := newRecord(filepath.Base(path), info.topic, info.start, info.duration)
	if err := parseAttendees(attendeeSection, resolver, record); err != nil {
		return nil, err
	}
	return record, nil
}

// splitSections divides the export at its blank separator line. The blank
// line is load-bearing: a CSV without one is not a meeting report.
func splitSections(contents string) (meeting, attendees []string, err error) {
	lines := strings.Split(strings.ReplaceAll(contents, "\r\n", "\n"), "\n")
	separator := -1
	for index, line := range lines {
		if strings.TrimSpace(strings.ReplaceAll(line, ",", "")) == "" {
			separator = index
			break
		}
	}
	if separator < 0 {
		return nil, nil, fmt.Errorf("%w: no blank separator line; this does not look like a meeting report", ErrMalformedExport)
	}
	if separator < 2 {
		return nil, nil, fmt.Errorf("%w: missing meeting information rows", ErrMalformedExport)
	}
	return lines[:separator], lines[separator+1:], nil
}

type meetingInfo struct {
	topic    string
	start    time.Time
	duration int
}

func parseMeetingInfo(section []string) (meetingInfo, error) {
	reader := csv.NewReader(strings.NewReader(strings.Join(section, "\n")))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return meetingInfo{}, fmt.Errorf("%w: %v", ErrMalformedExport, err)
	}
	if len(rows) < 2 {
		return meetingInfo{}, fmt.Errorf("%w: no meeting information row", ErrMalformedExport)
	}

	row := rows[1]
	if len(row) <= durationColumn {
		return meetingInfo{}, fmt.Errorf("%w: meeting information row has %d columns, need %d", ErrMalformedExport, len(row), durationColumn+1)
	}

	start, err := parseStartTime(row[startColumn])
	if err != nil {
		return meetingInfo{}, fmt.Errorf("%w: start time %q: %v", ErrMalformedExport, row[startColumn], err)
	}
	duration, err := strconv.Atoi(strings.TrimSpace(row[durationColumn]))
	if err != nil {
		return meetingInfo{}, fmt.Errorf("%w: duration %q is not a number", ErrMalformedExport, row[durationColumn])
	}

	return meetingInfo{
		topic:    strings.TrimSpace(row[topicColumn]),
		start:    start,
		duration: duration,
	}, nil
}

// parseAttendees reads the attendee section, whose first line is a column
// header. Resolution failures are per-row diagnostics, never errors.
func parseAttendees(section []string, resolver IdentityResolver, record *Record) error {
	if len(section) <= 1 {
		return nil
	}
	reader := csv.NewReader(strings.NewReader(strings.Join(section[1:], "\n")))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("%w: attendee rows: %v", ErrMalformedExport, err)
	}

	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		raw := strings.TrimSpace(row[attendeeNameColumn])
		if raw == "" {
			continue
		}
		minutes := 0
		if len(row) > attendeeMinutesColumn {
			if parsed, err := strconv.Atoi(strings.TrimSpace(row[attendeeMinutesColumn])); err == nil {
				minutes = parsed
			}
		}
		st, ok := resolver.Resolve(raw)
		if !ok {
			record.addUnresolved(raw)
			continue
		}
		record.addAttendee(st, minutes)
	}
	return nil
}

var timeSplitPattern = regexp.MustCompile(`[/\s:]+`)

// parseStartTime parses the locale-specific "M/D/YYYY H:MM AM/PM" start
// stamp the exports carry.
func parseStartTime(value string) (time.Time, error) {
	lowered := strings.ToLower(value)

	numbers := make([]int, 0, 5)
	for _, part := range timeSplitPattern.Split(lowered, -1) {
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}
	if len(numbers) < 5 {
		return time.Time{}, errors.New("need month, day, year, hour, and minute")
	}

	month, day, year, hour, minute := numbers[0], numbers[1], numbers[2], numbers[3], numbers[4]
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, errors.New("month or day out of range")
	}
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return time.Time{}, errors.New("hour or minute out of range")
	}

	// 12-hour marker: noon stays 12, midnight becomes 0.
	if strings.Contains(lowered, "pm") {
		if hour < 12 {
			hour += 12
		}
	} else if hour == 12 {
		hour = 0
	}

	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local), nil
}
