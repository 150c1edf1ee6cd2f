package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/quotype/quotype/internal/model"
)

// ExportAll serializes every persisted aggregate into one versioned bundle.
func (s *Store) ExportAll(ctx context.Context) model.BackupBundle {
	bests := s.Bests(ctx)
	history := s.History(ctx)
	streak := s.Streak(ctx)
	achievements := s.Achievements(ctx)
	settings := s.Settings(ctx)
	return model.BackupBundle{
		PersonalBests:      &bests,
		PerformanceHistory: &history,
		StreakData:         &streak,
		Achievements:       &achievements,
		Settings:           &settings,
		ExportDate:         s.now().Format(time.RFC3339),
		Version:            model.BackupVersion,
	}
}

// ImportAll restores aggregates from a bundle. The version tag must match;
// after that, each present section is applied independently, so a partial
// bundle updates only the sections it carries.
func (s *Store) ImportAll(ctx context.Context, bundle model.BackupBundle) error {
	if bundle.Version == "" {
		return fmt.Errorf("backup bundle has no version tag")
	}
	if bundle.Version != model.BackupVersion {
		return fmt.Errorf("unsupported backup version %q (want %s)", bundle.Version, model.BackupVersion)
	}
	if bundle.PersonalBests != nil {
		s.setJSON(ctx, keyPersonalBests, bundle.PersonalBests)
	}
	if bundle.PerformanceHistory != nil {
		s.setJSON(ctx, keyHistory, bundle.PerformanceHistory)
	}
	if bundle.StreakData != nil {
		s.setJSON(ctx, keyStreak, bundle.StreakData)
	}
	if bundle.Achievements != nil {
		s.setJSON(ctx, keyAchievements, bundle.Achievements)
	}
	if bundle.Settings != nil {
		s.setJSON(ctx, keySettings, bundle.Settings)
	}
	return nil
}

// DecodeBundle parses a raw backup payload without applying it.
func DecodeBundle(raw []byte) (model.BackupBundle, error) {
	var bundle model.BackupBundle
	if err := json.Unmarshal(raw, &bundle); err != nil {
		return model.BackupBundle{}, fmt.Errorf("invalid backup data format: %w", err)
	}
	return bundle, nil
}

// CleanupOldData drops history entries older than the retention cutoff and
// reports whether anything was removed. Entries with unreadable timestamps
// are treated as expired.
func (s *Store) CleanupOldData(ctx context.Context) bool {
	settings := s.Settings(ctx)
	history := s.History(ctx)
	cutoff := s.now().AddDate(0, 0, -settings.RetentionDays)

	kept := make([]model.HistoryEntry, 0, len(history))
	for _, entry := range history {
		at, err := time.Parse(time.RFC3339, entry.Timestamp)
		if err != nil {
			continue
		}
		if at.After(cutoff) {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(history) {
		return false
	}
	s.setJSON(ctx, keyHistory, kept)
	return true
}

// MaybeDailyCleanup runs the retention sweep at most once per day, stamping
// the last run in the key-value store.
func (s *Store) MaybeDailyCleanup(ctx context.Context) {
	var last string
	s.getJSON(ctx, keyLastCleanup, &last)
	if last != "" {
		at, err := time.Parse(time.RFC3339, last)
		if err == nil && s.now().Sub(at) < 24*time.Hour {
			return
		}
	}
	s.CleanupOldData(ctx)
	s.setJSON(ctx, keyLastCleanup, s.now().Format(time.RFC3339))
}
