package grouping

import (
	"reflect"
	"testing"
)

func clusteredSet(t *testing.T) *Set {
	t.Helper()
	c := newTestClusterer(t, 0.75)
	c.Assign(meeting("health-1.csv", "a a", "b b", "c c"))
	c.Assign(meeting("health-2.csv", "a a", "b b", "c c", "d d"))
	c.Assign(meeting("art-1.csv", "x x", "y y", "z z"))
	return c.Result()
}

func TestResolveLabelsTagsWholeCluster(t *testing.T) {
	set := clusteredSet(t)

	resolved := set.ResolveLabels(map[string]string{
		"health-2.csv": "Health; Smith Homeroom",
	})

	cluster, ok := resolved["Health; Smith Homeroom"]
	if !ok {
		t.Fatal("label missing from resolved map")
	}
	if cluster != set.Clusters[0] {
		t.Error("label resolved to the wrong cluster")
	}
	if len(resolved) != 1 {
		t.Errorf("untagged clusters leaked into the label map: %v", resolved)
	}
}

func TestResolveLabelsFirstTaggedRecordWins(t *testing.T) {
	set := clusteredSet(t)

	resolved := set.ResolveLabels(map[string]string{
		"health-1.csv": "First Tag",
		"health-2.csv": "Second Tag",
	})

	if _, ok := resolved["First Tag"]; !ok {
		t.Error("first tagged record in arrival order should name the cluster")
	}
	if _, ok := resolved["Second Tag"]; ok {
		t.Error("later tags in the same cluster should be ignored")
	}
}

func TestResolveLabelsIdempotent(t *testing.T) {
	set := clusteredSet(t)
	labels := map[string]string{"art-1.csv": "Art Club"}

	first := set.ResolveLabels(labels)
	second := set.ResolveLabels(labels)

	if !reflect.DeepEqual(first, second) {
		t.Error("resolving labels twice produced different maps")
	}
}

func TestResolveLabelsEmptyMap(t *testing.T) {
	set := clusteredSet(t)
	if got := set.ResolveLabels(nil); len(got) != 0 {
		t.Errorf("ResolveLabels(nil) = %v, want empty", got)
	}
}

func TestTopicLabelMapLabelsEachClusterByTopic(t *testing.T) {
	set := clusteredSet(t)

	resolved := set.ResolveLabels(set.TopicLabelMap())

	// Every meeting in the fixture shares the same topic, so both
	// clusters compete for one label and the later cluster wins.
	if len(resolved) != 1 {
		t.Fatalf("resolved %d labels, want 1", len(resolved))
	}
	if cluster, ok := resolved["Test Meeting"]; !ok || cluster != set.Clusters[1] {
		t.Errorf("topic label should map to the last cluster claiming it, got %v", resolved)
	}
}

func TestSetRecordsFlattens(t *testing.T) {
	set := clusteredSet(t)
	if got := len(set.Records()); got != 3 {
		t.Errorf("Records() returned %d, want 3", got)
	}
}
