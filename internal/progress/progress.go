// Package progress maintains the persisted typing records: personal bests,
// performance history, streaks, achievements, and settings.
package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/quotype/quotype/internal/model"
	"github.com/quotype/quotype/internal/storage"
)

// Logical keys in the key-value collaborator.
const (
	keyPersonalBests = "personal-bests"
	keyHistory       = "performance-history"
	keyStreak        = "streak-data"
	keyAchievements  = "achievements"
	keySettings      = "settings"
	keyLastCleanup   = "last-cleanup"
)

const dateLayout = "2006-01-02"

// Store consumes completed Results and keeps all persisted aggregates
// current. Reads substitute documented defaults when a value is missing or
// corrupt; writes are best-effort and never fatal.
type Store struct {
	kv  *storage.KV
	now func() time.Time
}

// NewStore returns a Store over the given key-value collaborator.
func NewStore(kv *storage.KV) *Store {
	return &Store{kv: kv, now: time.Now}
}

// Outcome is the UI feedback signal from RecordResult.
type Outcome struct {
	NewBest         bool
	NewAchievements []string
	Bests           model.PersonalBests
	Streak          model.StreakData
}

// RecordResult folds one completed Result into bests, history, streak, and
// achievements. The caller guarantees at-most-once submission per session;
// resubmitting the same Result inflates history and streaks.
func (s *Store) RecordResult(ctx context.Context, res model.Result) Outcome {
	bests, newBest := s.updateBests(ctx, res)
	history := s.appendHistory(ctx, res)
	streak := s.updateStreak(ctx)
	unlocked := s.updateAchievements(ctx, res, history, streak)
	return Outcome{
		NewBest:         newBest,
		NewAchievements: unlocked,
		Bests:           bests,
		Streak:          streak,
	}
}

// Bests returns the persisted personal bests, or the zero-state defaults.
func (s *Store) Bests(ctx context.Context) model.PersonalBests {
	bests := model.DefaultPersonalBests()
	s.getJSON(ctx, keyPersonalBests, &bests)
	// Guard buckets dropped by older or hand-edited payloads.
	if bests.ByDuration == nil {
		bests.ByDuration = model.DefaultPersonalBests().ByDuration
	}
	for _, d := range model.Durations {
		key := model.DurationKey(d)
		if _, ok := bests.ByDuration[key]; !ok {
			bests.ByDuration[key] = model.DurationBest{}
		}
	}
	return bests
}

// History returns the performance log, most recent first.
func (s *Store) History(ctx context.Context) []model.HistoryEntry {
	var history []model.HistoryEntry
	s.getJSON(ctx, keyHistory, &history)
	return history
}

// Streak returns the persisted streak counters.
func (s *Store) Streak(ctx context.Context) model.StreakData {
	var streak model.StreakData
	s.getJSON(ctx, keyStreak, &streak)
	return streak
}

// Achievements returns the persisted unlock flags.
func (s *Store) Achievements(ctx context.Context) model.Achievements {
	var achievements model.Achievements
	s.getJSON(ctx, keyAchievements, &achievements)
	return achievements
}

// Settings returns stored settings merged over the defaults.
func (s *Store) Settings(ctx context.Context) model.Settings {
	settings := model.DefaultSettings()
	s.getJSON(ctx, keySettings, &settings)
	if settings.HistoryLimit <= 0 {
		settings.HistoryLimit = model.DefaultSettings().HistoryLimit
	}
	if settings.RetentionDays <= 0 {
		settings.RetentionDays = model.DefaultSettings().RetentionDays
	}
	return settings
}

// SetSettings persists the full settings record.
func (s *Store) SetSettings(ctx context.Context, settings model.Settings) {
	s.setJSON(ctx, keySettings, settings)
}

// ResetAll clears every persisted aggregate back to its zero-state.
func (s *Store) ResetAll(ctx context.Context) error {
	if err := s.kv.Clear(ctx); err != nil {
		return fmt.Errorf("failed to reset stored data: %w", err)
	}
	return nil
}

func (s *Store) updateBests(ctx context.Context, res model.Result) (model.PersonalBests, bool) {
	bests := s.Bests(ctx)
	updated := false

	if res.WPM > bests.WPM {
		bests.WPM = res.WPM
		updated = true
	}
	if res.Accuracy > bests.Accuracy {
		bests.Accuracy = res.Accuracy
		updated = true
	}

	key := model.DurationKey(res.TestDuration)
	if bucket, ok := bests.ByDuration[key]; ok {
		if res.WPM > bucket.WPM {
			bucket.WPM = res.WPM
			bucket.AchievedAt = s.now().Format(time.RFC3339)
			updated = true
		}
		if res.Accuracy > bucket.Accuracy {
			bucket.Accuracy = res.Accuracy
			bucket.AchievedAt = s.now().Format(time.RFC3339)
			updated = true
		}
		bests.ByDuration[key] = bucket
	}

	if updated {
		s.setJSON(ctx, keyPersonalBests, bests)
	}
	return bests, updated
}

func (s *Store) appendHistory(ctx context.Context, res model.Result) []model.HistoryEntry {
	history := s.History(ctx)
	settings := s.Settings(ctx)
	now := s.now()

	entry := model.HistoryEntry{
		Result:    res,
		Timestamp: now.Format(time.RFC3339),
		Date:      now.Format(dateLayout),
	}
	history = append([]model.HistoryEntry{entry}, history...)
	if len(history) > settings.HistoryLimit {
		history = history[:settings.HistoryLimit]
	}
	s.setJSON(ctx, keyHistory, history)
	return history
}

// updateStreak applies the daily rule: at most one increment per calendar
// day, consecutive days extend the streak, any gap restarts it.
func (s *Store) updateStreak(ctx context.Context) model.StreakData {
	streak := s.Streak(ctx)
	today := s.now().Format(dateLayout)
	yesterday := s.now().AddDate(0, 0, -1).Format(dateLayout)

	if streak.LastTestDate == today {
		return streak
	}
	if streak.LastTestDate == yesterday {
		streak.CurrentStreak++
	} else {
		streak.CurrentStreak = 1
		streak.StreakStartDate = today
	}
	if streak.CurrentStreak > streak.LongestStreak {
		streak.LongestStreak = streak.CurrentStreak
	}
	streak.LastTestDate = today

	s.setJSON(ctx, keyStreak, streak)
	return streak
}

// getJSON loads a key into target, leaving target untouched when the key is
// missing or the stored payload is corrupt.
func (s *Store) getJSON(ctx context.Context, key string, target any) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		logErrf("failed to read %s: %v\n", key, err)
		return
	}
	if !ok {
		return
	}
	if err := json.Unmarshal(raw, target); err != nil {
		logErrf("ignoring corrupt %s entry: %v\n", key, err)
	}
}

func (s *Store) setJSON(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		logErrf("failed to encode %s: %v\n", key, err)
		return
	}
	if err := s.kv.Set(ctx, key, raw); err != nil {
		logErrf("failed to write %s: %v\n", key, err)
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
