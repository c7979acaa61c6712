package attendance

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"muster/internal/logging"
)

// SkippedFile records an export that could not be parsed, with the reason it
// was skipped.
type SkippedFile struct {
	Name   string
	Reason string
}

// ScanResult is everything one pass over an export directory produced.
type ScanResult struct {
	Records []*Record
	Skipped []SkippedFile
}

// UnresolvedCounts tallies every raw label that failed resolution across the
// scanned records.
func (s *ScanResult) UnresolvedCounts() map[string]int {
	counts := make(map[string]int)
	for _, record := range s.Records {
		for _, raw := range record.Unresolved() {
			counts[raw]++
		}
	}
	return counts
}

// ScanDir parses every export CSV in dir, in lexicographic file name order.
// Files that are not CSVs, dotfiles, and editor temp files are ignored.
// Files that cannot be read or whose meeting metadata is broken are skipped
// and reported, never fatal for the run.
func ScanDir(dir string, resolver IdentityResolver, logger *slog.Logger) (*ScanResult, error) {
	log := logging.NewComponentLogger(logger, "ingest")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read exports directory: %w", err)
	}

	result := &ScanResult{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !isExportFile(name) {
			continue
		}
		record, err := ParseExport(filepath.Join(dir, name), resolver)
		if err != nil {
			// Any per-file failure is recorded and the scan moves on;
			// one broken or unreadable export never fails the run.
			log.Warn("skipping unparsable export", "file", name, logging.Error(err))
			result.Skipped = append(result.Skipped, SkippedFile{Name: name, Reason: err.Error()})
			continue
		}
		log.Debug("parsed export",
			"file", name,
			"topic", record.Topic(),
			"attendees", record.AttendeeCount(),
			"unresolved", len(record.Unresolved()))
		result.Records = append(result.Records, record)
	}

	log.Info("scanned exports directory",
		"dir", dir,
		"parsed", len(result.Records),
		"skipped", len(result.Skipped))
	return result, nil
}

func isExportFile(name string) bool {
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "~") {
		return false
	}
	return strings.EqualFold(filepath.Ext(name), ".csv")
}
