package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"muster/internal/attendance"
	"muster/internal/config"
	"muster/internal/grouping"
	"muster/internal/logging"
	"muster/internal/report"
	"muster/internal/roster"
)

// Result carries everything a run produced: the assembled report plus the
// intermediate structures callers may want to inspect or persist.
type Result struct {
	Report  *report.Report
	Set     *grouping.Set
	Labels  map[string]*grouping.Cluster
	Roster  *roster.Roster
	Scanned int
	Skipped []attendance.SkippedFile
}

// Run executes the report pipeline against cfg. The roster is optional:
// without one every attendee label is reported as unresolved rather than
// failing the run.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	log := logging.NewComponentLogger(logger, "pipeline")

	students, err := loadRoster(cfg, log)
	if err != nil {
		return nil, err
	}
	resolver := roster.NewResolver(students, cfg.Roster.Overrides)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	scan, err := attendance.ScanDir(cfg.Paths.ExportsDir, resolver, logger)
	if err != nil {
		return nil, fmt.Errorf("scan exports: %w", err)
	}
	log.Info("exports scanned",
		"records", len(scan.Records),
		"skipped", len(scan.Skipped))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clusterer, err := grouping.NewClusterer(cfg.Clustering.RatioThreshold, logger)
	if err != nil {
		return nil, err
	}
	for _, record := range scan.Records {
		clusterer.Assign(record)
	}
	set := clusterer.Result()
	log.Info("meetings grouped",
		"clusters", len(set.Clusters),
		"ambiguities", set.Ambiguities)

	labelMap := cfg.Clustering.Labels
	if cfg.Clustering.TrustTopics {
		labelMap = set.TopicLabelMap()
	}
	labels := set.ResolveLabels(labelMap)

	rep, err := report.Assemble(set, scan.Skipped, scan.UnresolvedCounts(), report.Options{
		Thresholds: report.Thresholds{
			Red:    cfg.Report.RedMinutes,
			Yellow: cfg.Report.YellowMinutes,
			Green:  cfg.Report.GreenMinutes,
		},
		Labels: labels,
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Report:  rep,
		Set:     set,
		Labels:  labels,
		Roster:  students,
		Scanned: len(scan.Records) + len(scan.Skipped),
		Skipped: scan.Skipped,
	}, nil
}

func loadRoster(cfg *config.Config, log *slog.Logger) (*roster.Roster, error) {
	if cfg.Paths.RosterPath == "" {
		log.Warn("no roster configured, attendee names will not be verified")
		return roster.New(nil), nil
	}
	students, err := roster.Load(cfg.Paths.RosterPath)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	log.Info("roster loaded", "students", students.Len())
	return students, nil
}
