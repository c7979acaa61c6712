package grouping

import (
	"testing"
	"time"

	"muster/internal/attendance"
	"muster/internal/logging"
	"muster/internal/roster"
)

func student(name string) roster.Student {
	first, last := name, ""
	for i := range name {
		if name[i] == ' ' {
			first, last = name[:i], name[i+1:]
			break
		}
	}
	return roster.Student{FirstName: first, LastName: last}
}

func meeting(origin string, names ...string) *attendance.Record {
	attendees := make([]attendance.RecordAttendee, 0, len(names))
	for _, name := range names {
		attendees = append(attendees, attendance.RecordAttendee{Student: student(name), Minutes: 30})
	}
	return attendance.NewRecord(attendance.RecordParams{
		Origin:          origin,
		Topic:           "Test Meeting",
		StartTime:       time.Date(2020, 9, 24, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 40,
		Attendees:       attendees,
	})
}

func newTestClusterer(t *testing.T, ratio float64) *Clusterer {
	t.Helper()
	c, err := NewClusterer(ratio, logging.NewNop())
	if err != nil {
		t.Fatalf("NewClusterer: %v", err)
	}
	return c
}

func TestNewClustererRejectsOutOfRangeRatio(t *testing.T) {
	for _, ratio := range []float64{0, 1, -0.5, 1.5} {
		if _, err := NewClusterer(ratio, nil); err == nil {
			t.Errorf("NewClusterer(%v) accepted an out-of-range ratio", ratio)
		}
	}
}

func TestAssignGroupsRecurringMeetings(t *testing.T) {
	// Two Health instances share three attendees; the art class is
	// unrelated. Default threshold groups the first two only.
	c := newTestClusterer(t, 0.75)

	first := c.Assign(meeting("health-1.csv", "Ada A", "Ben B", "Cai C"))
	second := c.Assign(meeting("health-2.csv", "Ada A", "Ben B", "Cai C", "Dia D"))
	third := c.Assign(meeting("art-1.csv", "Xia X", "Yu Y", "Zed Z"))

	if first != second {
		t.Error("recurring meeting instances landed in different clusters")
	}
	if third == first {
		t.Error("unrelated meeting joined the recurring cluster")
	}
	if got := len(c.Clusters()); got != 2 {
		t.Fatalf("cluster count = %d, want 2", got)
	}
	if c.Clusters()[0].Len() != 2 || c.Clusters()[1].Len() != 1 {
		t.Errorf("cluster sizes = %d,%d want 2,1", c.Clusters()[0].Len(), c.Clusters()[1].Len())
	}
}

func TestAssignIdenticalSetsMatchEitherOrder(t *testing.T) {
	names := []string{"Ada A", "Ben B", "Cai C"}
	forward := newTestClusterer(t, 0.75)
	a := forward.Assign(meeting("one.csv", names...))
	b := forward.Assign(meeting("two.csv", names...))
	if a != b {
		t.Error("identical attendee sets split across clusters (forward order)")
	}

	reverse := newTestClusterer(t, 0.75)
	a = reverse.Assign(meeting("two.csv", names...))
	b = reverse.Assign(meeting("one.csv", names...))
	if a != b {
		t.Error("identical attendee sets split across clusters (reverse order)")
	}
}

func TestAssignEmptyRecordAlwaysSingleton(t *testing.T) {
	c := newTestClusterer(t, 0.75)
	c.Assign(meeting("full.csv", "Ada A", "Ben B"))

	empty := c.Assign(meeting("empty-1.csv"))
	if empty.Len() != 1 {
		t.Fatalf("empty record cluster size = %d, want singleton", empty.Len())
	}

	// Even against another empty representative: total == 0 is no match.
	second := c.Assign(meeting("empty-2.csv"))
	if second == empty {
		t.Error("two empty records should not group (total == 0 guard)")
	}
	if got := len(c.Clusters()); got != 3 {
		t.Errorf("cluster count = %d, want 3", got)
	}
}

func TestAssignFirstMatchWins(t *testing.T) {
	// C1 and C2 both have 10-attendee representatives. R shares 9 with C1
	// (union 11, total 20, 20*0.75=15 > 11: match) and 2 with C2
	// (union 17, 15 < 17: no match).
	c1Names := []string{"a a", "b b", "c c", "d d", "e e", "f f", "g g", "h h", "i i", "j j"}
	c2Names := []string{"i i", "j j", "k k", "l l", "m m", "n n", "o o", "p p", "q q", "r r"}
	rNames := []string{"a a", "b b", "c c", "d d", "e e", "f f", "g g", "h h", "i i", "z z"}

	c := newTestClusterer(t, 0.75)
	c1 := c.Assign(meeting("c1.csv", c1Names...))
	c2 := c.Assign(meeting("c2.csv", c2Names...))
	got := c.Assign(meeting("r.csv", rNames...))

	if got != c1 {
		t.Error("record did not join the first matching cluster")
	}
	if c2.Len() != 1 {
		t.Error("second cluster should be untouched")
	}
}

func TestAssignComparesAgainstRepresentative(t *testing.T) {
	c := newTestClusterer(t, 0.75)

	big := meeting("big.csv", "a a", "b b", "c c", "d d", "e e", "f f")
	small := meeting("small.csv", "a a", "b b", "c c", "d d", "e e")
	cluster := c.Assign(big)
	c.Assign(small)

	if cluster.Representative() != big {
		t.Error("representative should stay the largest-attendance record")
	}

	// A larger meeting takes over as representative.
	bigger := meeting("bigger.csv", "a a", "b b", "c c", "d d", "e e", "f f", "g g")
	c.Assign(bigger)
	if cluster.Representative() != bigger {
		t.Error("representative should move to the larger record")
	}
}

func TestRepresentativeTieKeepsEarliestArrival(t *testing.T) {
	c := newTestClusterer(t, 0.75)
	first := meeting("first.csv", "a a", "b b", "c c")
	second := meeting("second.csv", "a a", "b b", "d d")
	cluster := c.Assign(first)
	c.Assign(second)
	if cluster.Representative() != first {
		t.Error("equal-size representative should not be replaced")
	}
}

func TestAmbiguityCounting(t *testing.T) {
	// Two identical clusters, then a record that matches both.
	names := []string{"a a", "b b", "c c"}
	c := newTestClusterer(t, 0.75)
	c.Assign(meeting("one.csv", names...))

	// Force a second cluster with the same membership by using a
	// disjoint set first, then checking ambiguity on a triple overlap.
	other := []string{"x x", "y y", "z z"}
	c.Assign(meeting("two.csv", other...))
	c.Assign(meeting("three.csv", names...)) // joins cluster one
	if c.Ambiguities() != 0 {
		t.Fatalf("ambiguities = %d, want 0 so far", c.Ambiguities())
	}

	// A record overlapping both clusters enough to match each: against
	// either representative total=9, union=6, and 9*0.75 > 6.
	mixed := []string{"a a", "b b", "c c", "x x", "y y", "z z"}
	got := c.Assign(meeting("four.csv", mixed...))
	if got != c.Clusters()[0] {
		t.Error("ambiguous record should land in the first matching cluster")
	}
	if c.Ambiguities() != 1 {
		t.Errorf("ambiguities = %d, want 1", c.Ambiguities())
	}
}

func TestScenarioThreeFilesTwoClusters(t *testing.T) {
	c := newTestClusterer(t, 0.75)
	c.Assign(meeting("m1.csv", "a a", "b b", "c c"))
	c.Assign(meeting("m2.csv", "a a", "b b", "c c", "d d"))
	c.Assign(meeting("m3.csv", "x x", "y y", "z z"))

	clusters := c.Clusters()
	if len(clusters) != 2 {
		t.Fatalf("cluster count = %d, want 2", len(clusters))
	}
	if clusters[0].Len() != 2 {
		t.Errorf("first cluster has %d records, want 2", clusters[0].Len())
	}
	if clusters[1].Len() != 1 {
		t.Errorf("second cluster has %d records, want 1", clusters[1].Len())
	}
	if clusters[0].PeakAttendance() != 4 {
		t.Errorf("peak attendance = %d, want 4", clusters[0].PeakAttendance())
	}
}
