package stats

import (
	"fmt"
	"io"

	"github.com/quotype/quotype/internal/model"
	"github.com/quotype/quotype/internal/progress"
)

// RenderSummary prints the overall performance summary with a WPM sparkline.
func RenderSummary(w io.Writer, history []model.HistoryEntry, width int) error {
	if len(history) == 0 {
		_, err := fmt.Fprintln(w, "No tests recorded yet.")
		return err
	}
	s := progress.ComputeStats(history)
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	lines := []string{
		fmt.Sprintf("Tests: %d", s.TotalTests),
		fmt.Sprintf("Avg WPM: %.0f", s.AverageWPM),
		fmt.Sprintf("Best WPM: %.0f", s.BestWPM),
		fmt.Sprintf("Avg Accuracy: %.0f%%", s.AverageAccuracy),
		fmt.Sprintf("Recent 10 Avg: %.0f WPM", s.RecentAverage),
	}
	if s.TotalTests >= 20 {
		lines = append(lines, fmt.Sprintf("Trend: %+.0f%%", s.ImprovementTrend))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	series := MovingAverage(WPMSeries(history), 5)
	if width > 0 {
		series = FitSeries(series, width)
	}
	if _, err := fmt.Fprintf(w, "WPM %s\n\n", Sparkline(series)); err != nil {
		return err
	}
	return nil
}

// RenderBests prints overall and per-duration personal bests.
func RenderBests(w io.Writer, bests model.PersonalBests) error {
	if _, err := fmt.Fprintln(w, "Personal Bests"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Overall: %.2f WPM · %.2f%% accuracy\n", bests.WPM, bests.Accuracy); err != nil {
		return err
	}
	rows := make([][]string, 0, len(model.Durations))
	for _, d := range model.Durations {
		bucket := bests.ByDuration[model.DurationKey(d)]
		achieved := bucket.AchievedAt
		if achieved == "" {
			achieved = "-"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%ds", d),
			fmt.Sprintf("%.2f", bucket.WPM),
			fmt.Sprintf("%.2f%%", bucket.Accuracy),
			achieved,
		})
	}
	headers := []string{"Duration", "WPM", "Accuracy", "Achieved"}
	for _, line := range formatTable(headers, rows, map[int]bool{1: true, 2: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderStreak prints the streak counters.
func RenderStreak(w io.Writer, streak model.StreakData) error {
	if streak.CurrentStreak == 0 && streak.LongestStreak == 0 {
		_, err := fmt.Fprintln(w, "No streak yet.")
		return err
	}
	_, err := fmt.Fprintf(w, "Streak: %d day(s) (longest %d, since %s)\n\n",
		streak.CurrentStreak, streak.LongestStreak, orDash(streak.StreakStartDate))
	return err
}

// RenderAchievements prints the unlock checklist.
func RenderAchievements(w io.Writer, achievements model.Achievements) error {
	if _, err := fmt.Fprintln(w, "Achievements"); err != nil {
		return err
	}
	rows := make([][]string, 0, len(progress.AchievementLabels))
	for _, label := range progress.AchievementLabels {
		mark := "[ ]"
		if progress.Unlocked(achievements, label.ID) {
			mark = "[x]"
		}
		rows = append(rows, []string{mark, label.Name, label.Description})
	}
	for _, line := range formatTable([]string{"", "Name", "Criteria"}, rows, nil) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderHistory prints the most recent test results as a table.
func RenderHistory(w io.Writer, history []model.HistoryEntry, limit int) error {
	if len(history) == 0 {
		_, err := fmt.Fprintln(w, "No tests recorded yet.")
		return err
	}
	if limit > 0 && len(history) > limit {
		history = history[:limit]
	}
	rows := make([][]string, 0, len(history))
	for _, entry := range history {
		rows = append(rows, []string{
			entry.Date,
			fmt.Sprintf("%.2f", entry.WPM),
			fmt.Sprintf("%.2f%%", entry.Accuracy),
			fmt.Sprintf("%d", entry.Errors),
			fmt.Sprintf("%ds", entry.TestDuration),
			string(entry.Quote.Difficulty),
		})
	}
	headers := []string{"Date", "WPM", "Accuracy", "Errors", "Duration", "Difficulty"}
	for _, line := range formatTable(headers, rows, map[int]bool{1: true, 2: true, 3: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
