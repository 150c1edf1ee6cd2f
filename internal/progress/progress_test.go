package progress

import (
	"context"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/quotype/quotype/internal/model"
	"github.com/quotype/quotype/internal/storage"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	kv, err := storage.Open(filepath.Join(t.TempDir(), "quotype.db"))
	if err != nil {
		t.Fatalf("open kv: %v", err)
	}
	t.Cleanup(func() {
		_ = kv.Close()
	})
	s := NewStore(kv)
	s.now = func() time.Time {
		return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	}
	return s
}

func result(wpm, accuracy float64, duration int) model.Result {
	return model.Result{
		WPM:          wpm,
		Accuracy:     accuracy,
		TotalChars:   100,
		CorrectChars: 100,
		TimeElapsed:  float64(duration),
		TestDuration: duration,
		Quote:        model.Quote{Text: "q", Difficulty: model.Easy},
	}
}

func TestFreshStoreEndToEnd(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	outcome := s.RecordResult(ctx, result(105, 100, 60))
	if !outcome.NewBest {
		t.Fatalf("first result must be a new best")
	}
	if outcome.Bests.WPM != 105 {
		t.Fatalf("best WPM = %v, want 105", outcome.Bests.WPM)
	}
	want := []string{"accuracyExpert", "firstTest", "perfectionist", "speedDemon"}
	got := append([]string(nil), outcome.NewAchievements...)
	sort.Strings(got)
	if len(got) != len(want) {
		t.Fatalf("unlocked = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unlocked = %v, want %v", got, want)
		}
	}

	bucket := outcome.Bests.ByDuration["60"]
	if bucket.WPM != 105 || bucket.AchievedAt == "" {
		t.Fatalf("duration bucket not stamped: %+v", bucket)
	}
}

func TestBestsMonotonic(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	wpms := []float64{50, 80, 30, 80, 79.99, 81, 10}
	prev := 0.0
	for _, wpm := range wpms {
		outcome := s.RecordResult(ctx, result(wpm, 90, 30))
		if outcome.Bests.WPM < prev {
			t.Fatalf("best WPM decreased from %v to %v", prev, outcome.Bests.WPM)
		}
		prev = outcome.Bests.WPM
	}
	if prev != 81 {
		t.Fatalf("final best = %v, want 81", prev)
	}
	// An exact tie is not a new best.
	if outcome := s.RecordResult(ctx, result(81, 90, 30)); outcome.NewBest {
		t.Fatalf("tie must not count as a new best")
	}
}

func TestStreakDailyRule(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return day }

	streak := s.RecordResult(ctx, result(40, 90, 60)).Streak
	if streak.CurrentStreak != 1 {
		t.Fatalf("first day streak = %d, want 1", streak.CurrentStreak)
	}
	// Same-day repeat is a no-op.
	streak = s.RecordResult(ctx, result(40, 90, 60)).Streak
	if streak.CurrentStreak != 1 {
		t.Fatalf("same-day streak = %d, want 1", streak.CurrentStreak)
	}
	// Consecutive days increment.
	for i := 1; i <= 3; i++ {
		day = day.AddDate(0, 0, 1)
		streak = s.RecordResult(ctx, result(40, 90, 60)).Streak
		if streak.CurrentStreak != 1+i {
			t.Fatalf("day %d streak = %d, want %d", i, streak.CurrentStreak, 1+i)
		}
	}
	if streak.LongestStreak != 4 {
		t.Fatalf("longest = %d, want 4", streak.LongestStreak)
	}
	// A gap resets to 1 but longest survives.
	day = day.AddDate(0, 0, 3)
	streak = s.RecordResult(ctx, result(40, 90, 60)).Streak
	if streak.CurrentStreak != 1 || streak.LongestStreak != 4 {
		t.Fatalf("after gap: current=%d longest=%d", streak.CurrentStreak, streak.LongestStreak)
	}
	if streak.StreakStartDate != day.Format("2006-01-02") {
		t.Fatalf("streak start = %q, want %q", streak.StreakStartDate, day.Format("2006-01-02"))
	}
}

func TestAchievementsMonotonic(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	s.RecordResult(ctx, result(120, 100, 60))
	if !s.Achievements(ctx).SpeedDemon {
		t.Fatalf("speedDemon not unlocked at 120 WPM")
	}
	// Slow, sloppy results never clear earned flags.
	s.RecordResult(ctx, result(5, 10, 60))
	a := s.Achievements(ctx)
	if !a.SpeedDemon || !a.AccuracyExpert || !a.FirstTest {
		t.Fatalf("achievements regressed: %+v", a)
	}
}

func TestSpeedsterNeedsTenFastTests(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for i := 0; i < 9; i++ {
		if outcome := s.RecordResult(ctx, result(90, 90, 60)); contains(outcome.NewAchievements, "speedster") {
			t.Fatalf("speedster unlocked with only %d tests", i+1)
		}
	}
	if outcome := s.RecordResult(ctx, result(90, 90, 60)); !contains(outcome.NewAchievements, "speedster") {
		t.Fatalf("speedster not unlocked after 10 fast tests")
	}
}

func TestHistoryBoundedByLimit(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	s.SetSettings(ctx, model.Settings{StreakTracking: true, HistoryLimit: 5, RetentionDays: 365})

	for i := 0; i < 8; i++ {
		s.RecordResult(ctx, result(float64(10+i), 90, 60))
	}
	history := s.History(ctx)
	if len(history) != 5 {
		t.Fatalf("history length = %d, want 5", len(history))
	}
	if history[0].WPM != 17 {
		t.Fatalf("history not most-recent-first: %v", history[0].WPM)
	}
}

func TestCorruptValuesFallBackToDefaults(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	if err := s.kv.Set(ctx, keyPersonalBests, []byte("{not json")); err != nil {
		t.Fatalf("seed corrupt value: %v", err)
	}
	bests := s.Bests(ctx)
	if bests.WPM != 0 || len(bests.ByDuration) != 4 {
		t.Fatalf("corrupt bests did not default: %+v", bests)
	}
	// Recording still works over the corrupt entry.
	if outcome := s.RecordResult(ctx, result(42, 90, 30)); !outcome.NewBest {
		t.Fatalf("record over corrupt store failed")
	}
}

func TestCleanupOldData(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	old := now.AddDate(0, 0, -400)
	s.now = func() time.Time { return old }
	s.RecordResult(ctx, result(40, 90, 60))
	s.now = func() time.Time { return now }
	s.RecordResult(ctx, result(50, 90, 60))

	if !s.CleanupOldData(ctx) {
		t.Fatalf("expected cleanup to drop the 400-day-old entry")
	}
	history := s.History(ctx)
	if len(history) != 1 || history[0].WPM != 50 {
		t.Fatalf("unexpected history after cleanup: %+v", history)
	}
	if s.CleanupOldData(ctx) {
		t.Fatalf("second cleanup must be a no-op")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	s.RecordResult(ctx, result(70, 95, 60))

	bundle := s.ExportAll(ctx)
	if bundle.Version != model.BackupVersion || bundle.ExportDate == "" {
		t.Fatalf("bundle header incomplete: %+v", bundle)
	}

	other := testStore(t)
	if err := other.ImportAll(ctx, bundle); err != nil {
		t.Fatalf("import: %v", err)
	}
	if got := other.Bests(ctx).WPM; got != 70 {
		t.Fatalf("imported best WPM = %v, want 70", got)
	}
	if got := len(other.History(ctx)); got != 1 {
		t.Fatalf("imported history length = %d, want 1", got)
	}
}

func TestImportRejectsBadVersion(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if err := s.ImportAll(ctx, model.BackupBundle{}); err == nil {
		t.Fatalf("expected error for missing version")
	}
	if err := s.ImportAll(ctx, model.BackupBundle{Version: "2.0"}); err == nil {
		t.Fatalf("expected error for unsupported version")
	}
}

func TestPartialBundleAppliesPresentSections(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	s.RecordResult(ctx, result(70, 95, 60))

	streak := model.StreakData{CurrentStreak: 3, LongestStreak: 9, LastTestDate: "2026-02-28"}
	partial := model.BackupBundle{StreakData: &streak, Version: model.BackupVersion}
	if err := s.ImportAll(ctx, partial); err != nil {
		t.Fatalf("partial import: %v", err)
	}
	if got := s.Streak(ctx).LongestStreak; got != 9 {
		t.Fatalf("streak section not applied: %d", got)
	}
	// Absent sections stay untouched.
	if got := s.Bests(ctx).WPM; got != 70 {
		t.Fatalf("bests clobbered by partial import: %v", got)
	}
}

func TestComputeStats(t *testing.T) {
	var history []model.HistoryEntry
	for i := 0; i < 10; i++ {
		history = append(history, model.HistoryEntry{Result: result(60, 90, 60)})
	}
	stats := ComputeStats(history)
	if stats.TotalTests != 10 || stats.AverageWPM != 60 || stats.RecentAverage != 60 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.BestAccuracy != 90 {
		t.Fatalf("best accuracy = %v, want 90", stats.BestAccuracy)
	}
	if got := ComputeStats(nil); got.TotalTests != 0 {
		t.Fatalf("empty history stats: %+v", got)
	}
}

func TestComputeStatsTrendComparesStoredWindows(t *testing.T) {
	// Most-recent-first: ten tests at 80 WPM followed by the ten oldest
	// at 40 WPM. The trend divides the tail window by the mid window of
	// the stored slice, so a faster recent ten yields a negative figure.
	var history []model.HistoryEntry
	for i := 0; i < 10; i++ {
		history = append(history, model.HistoryEntry{Result: result(80, 95, 60)})
	}
	for i := 0; i < 10; i++ {
		history = append(history, model.HistoryEntry{Result: result(40, 95, 60)})
	}
	stats := ComputeStats(history)
	if stats.ImprovementTrend != -50 {
		t.Fatalf("trend = %v, want -50", stats.ImprovementTrend)
	}
	if stats.RecentAverage != 80 {
		t.Fatalf("recent average = %v, want 80", stats.RecentAverage)
	}
}

func contains(list []string, want string) bool {
	for _, item := range list {
		if item == want {
			return true
		}
	}
	return false
}
