package grouping

import (
	"fmt"
	"log/slog"

	"muster/internal/attendance"
	"muster/internal/logging"
)

// Clusterer assigns meeting records to clusters one at a time. It is not
// safe for concurrent use, and each record must be assigned exactly once;
// both restrictions follow from the order-dependent first-match policy.
type Clusterer struct {
	ratio       float64
	log         *slog.Logger
	clusters    []*Cluster
	ambiguities int
}

// NewClusterer builds a clusterer with the given union/total ratio
// threshold, which must lie strictly between 0 and 1.
func NewClusterer(ratio float64, logger *slog.Logger) (*Clusterer, error) {
	if ratio <= 0 || ratio >= 1 {
		return nil, fmt.Errorf("ratio threshold must be strictly between 0 and 1, got %v", ratio)
	}
	return &Clusterer{
		ratio: ratio,
		log:   logging.NewComponentLogger(logger, "clusterer"),
	}, nil
}

// Assign places a record into the first existing cluster whose
// representative passes the ratio test, scanning clusters in creation
// order, or starts a new singleton cluster. It returns the cluster the
// record landed in.
func (c *Clusterer) Assign(record *attendance.Record) *Cluster {
	var matched *Cluster
	for _, cluster := range c.clusters {
		if !c.matches(cluster.Representative(), record) {
			continue
		}
		if matched == nil {
			matched = cluster
			continue
		}
		// A later cluster would also have accepted this record. The
		// first match stands; just count the near miss.
		c.ambiguities++
	}

	if matched != nil {
		c.log.Debug("meeting matched existing group",
			"file", record.Origin(),
			"representative", matched.Representative().Origin(),
			"group_size", matched.Len())
		matched.add(record)
		return matched
	}

	cluster := &Cluster{}
	cluster.add(record)
	c.clusters = append(c.clusters, cluster)
	c.log.Debug("meeting started new group",
		"file", record.Origin(),
		"groups", len(c.clusters))
	return cluster
}

// matches applies the union/total ratio test against a cluster
// representative. Two empty attendee sets never match: total == 0 is
// guarded as "no match" so degenerate records always form singletons.
func (c *Clusterer) matches(rep, record *attendance.Record) bool {
	repKeys := rep.Keys()
	recordKeys := record.Keys()
	total := len(repKeys) + len(recordKeys)
	if total == 0 {
		return false
	}

	union := make(map[string]struct{}, total)
	for _, key := range repKeys {
		union[key] = struct{}{}
	}
	for _, key := range recordKeys {
		union[key] = struct{}{}
	}

	return float64(total)*c.ratio > float64(len(union))
}

// Clusters returns the clusters in creation order.
func (c *Clusterer) Clusters() []*Cluster {
	out := make([]*Cluster, len(c.clusters))
	copy(out, c.clusters)
	return out
}

// Ambiguities reports how many assignments could have matched more than one
// cluster. A non-zero count means the grouping depended on scan order.
func (c *Clusterer) Ambiguities() int {
	return c.ambiguities
}

// Result snapshots the finished clustering run.
func (c *Clusterer) Result() *Set {
	return &Set{
		Clusters:    c.Clusters(),
		Ambiguities: c.ambiguities,
	}
}
