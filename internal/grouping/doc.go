// Package grouping infers which meeting instances are recurrences of the
// same group.
//
// The Clusterer runs a single incremental pass: each incoming record is
// compared against every existing cluster's representative (the
// largest-attendance record seen in that cluster so far) and joins the first
// cluster that passes the union/total ratio test, or starts a new one. The
// test is total * ratio > union over the two attendee sets: with perfect
// attendance union == total/2 and any ratio above 0.5 matches; the default
// 0.75 tolerates attendance dropping to roughly 75% overlap.
//
// First-match-wins is deliberate. It keeps the pass O(n·k) and explainable
// at the cost of occasional mis-grouping when several clusters are
// simultaneously plausible; the Clusterer counts those near-miss cases as a
// diagnostic instead of resolving them. Because of this policy, assignment
// order is part of the contract: callers must feed records in a
// deterministic order and assign each record exactly once.
package grouping
