package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ExportAttendee is one attendee row in a generated export fixture.
type ExportAttendee struct {
	Name    string
	Minutes int
}

// ExportParams describe a generated meeting export fixture.
type ExportParams struct {
	Topic     string
	Start     string
	Duration  int
	Attendees []ExportAttendee
}

// WriteExport writes a meeting export CSV in the platform's layout to
// dir/name and returns its full path.
func WriteExport(t testing.TB, dir, name string, params ExportParams) string {
	t.Helper()

	start := params.Start
	if start == "" {
		start = "9/12/2025 10:00 AM"
	}
	duration := params.Duration
	if duration == 0 {
		duration = 45
	}

	var b strings.Builder
	b.WriteString("Meeting ID,Topic,Start Time,End Time,User Email,Duration (Minutes),Participants\n")
	fmt.Fprintf(&b, "987 6543 2100,%s,%s,,host@example.org,%d,%d\n", params.Topic, start, duration, len(params.Attendees))
	b.WriteString("\n")
	b.WriteString("Name (Original Name),User Email,Total Duration (Minutes),Guest\n")
	for _, attendee := range params.Attendees {
		fmt.Fprintf(&b, "%s,,%d,No\n", attendee.Name, attendee.Minutes)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write export %s: %v", path, err)
	}
	return path
}

// WriteRoster writes a roster CSV with an id/name/grade/homeroom header to
// path. Each row is "id,name,grade,homeroom".
func WriteRoster(t testing.TB, path string, rows ...string) {
	t.Helper()

	var b strings.Builder
	b.WriteString("Student ID,Student Name,Grade Level,Homeroom\n")
	for _, row := range rows {
		b.WriteString(row)
		b.WriteString("\n")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write roster %s: %v", path, err)
	}
}
