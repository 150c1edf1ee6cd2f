package progress

import (
	"context"

	"github.com/quotype/quotype/internal/model"
)

// updateAchievements flips newly earned flags and persists them. Flags are
// monotonic: once set they are never re-evaluated.
func (s *Store) updateAchievements(ctx context.Context, res model.Result, history []model.HistoryEntry, streak model.StreakData) []string {
	achievements := s.Achievements(ctx)
	var unlocked []string
	unlock := func(flag *bool, id string, earned bool) {
		if !*flag && earned {
			*flag = true
			unlocked = append(unlocked, id)
		}
	}

	accurate := 0
	for _, entry := range history {
		if entry.Accuracy >= 95 {
			accurate++
		}
	}

	unlock(&achievements.FirstTest, "firstTest", len(history) >= 1)
	unlock(&achievements.SpeedDemon, "speedDemon", res.WPM >= 100)
	unlock(&achievements.AccuracyExpert, "accuracyExpert", res.Accuracy >= 100)
	unlock(&achievements.Consistent, "consistent", accurate >= 10)
	unlock(&achievements.Marathoner, "marathoner", len(history) >= 50)
	unlock(&achievements.StreakMaster, "streakMaster", streak.CurrentStreak >= 7)
	unlock(&achievements.Perfectionist, "perfectionist", res.Accuracy >= 100 && res.WPM >= 50)
	unlock(&achievements.Speedster, "speedster", recentAverageWPM(history, 10) >= 80)
	unlock(&achievements.Dedicated, "dedicated", len(history) >= 100)

	if len(unlocked) > 0 {
		s.setJSON(ctx, keyAchievements, achievements)
	}
	return unlocked
}

// recentAverageWPM averages the n most recent entries; fewer than n entries
// disqualifies (returns 0).
func recentAverageWPM(history []model.HistoryEntry, n int) float64 {
	if len(history) < n || n <= 0 {
		return 0
	}
	sum := 0.0
	for _, entry := range history[:n] {
		sum += entry.WPM
	}
	return sum / float64(n)
}

// AchievementLabels maps flag identifiers to display names and criteria.
var AchievementLabels = []struct {
	ID          string
	Name        string
	Description string
}{
	{"firstTest", "First Steps", "Complete your first test"},
	{"speedDemon", "Speed Demon", "Achieve 100+ WPM"},
	{"accuracyExpert", "Accuracy Expert", "Achieve 100% accuracy"},
	{"consistent", "Consistent", "Complete 10 tests with 95%+ accuracy"},
	{"marathoner", "Marathoner", "Complete 50 tests"},
	{"streakMaster", "Streak Master", "Maintain a 7-day streak"},
	{"perfectionist", "Perfectionist", "100% accuracy at 50+ WPM"},
	{"speedster", "Speedster", "Average 80+ WPM over 10 tests"},
	{"dedicated", "Dedicated", "Complete 100 tests"},
}

// Unlocked reports whether the flag with the given identifier is set.
func Unlocked(a model.Achievements, id string) bool {
	switch id {
	case "firstTest":
		return a.FirstTest
	case "speedDemon":
		return a.SpeedDemon
	case "accuracyExpert":
		return a.AccuracyExpert
	case "consistent":
		return a.Consistent
	case "marathoner":
		return a.Marathoner
	case "streakMaster":
		return a.StreakMaster
	case "perfectionist":
		return a.Perfectionist
	case "speedster":
		return a.Speedster
	case "dedicated":
		return a.Dedicated
	}
	return false
}
