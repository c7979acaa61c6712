package grouping

import (
	"muster/internal/attendance"
	"muster/internal/textutil"
)

// Set is the complete output of one clustering run.
type Set struct {
	Clusters    []*Cluster
	Ambiguities int
}

// Records returns every record across all clusters.
func (s *Set) Records() []*attendance.Record {
	var out []*attendance.Record
	for _, cluster := range s.Clusters {
		out = append(out, cluster.records...)
	}
	return out
}

// ResolveLabels maps human-supplied labels onto clusters. labels is sparse:
// it maps an export file name to a group label, and tagging any single
// record in a cluster names the whole cluster. For each cluster, the first
// tagged record in assignment order wins; clusters with no tagged record do
// not appear in the result and are only reachable through Clusters.
//
// The function is pure, so resolving twice over the same finished Set
// yields the same map.
func (s *Set) ResolveLabels(labels map[string]string) map[string]*Cluster {
	resolved := make(map[string]*Cluster)
	if len(labels) == 0 {
		return resolved
	}
	for _, cluster := range s.Clusters {
		for _, record := range cluster.records {
			label, ok := labels[record.Origin()]
			if !ok {
				continue
			}
			resolved[label] = cluster
			break
		}
	}
	return resolved
}

// TopicLabelMap builds a label map that trusts meeting topics: every record
// is tagged with its own topic, title-cased for display. Feeding the result
// to ResolveLabels labels each cluster with the topic of its first record.
func (s *Set) TopicLabelMap() map[string]string {
	labels := make(map[string]string)
	for _, cluster := range s.Clusters {
		for _, record := range cluster.records {
			label := textutil.TitleLabel(record.Topic())
			if label == "" {
				continue
			}
			labels[record.Origin()] = label
		}
	}
	return labels
}
