// Package model defines shared data structures.
package model

import (
	"strconv"
	"strings"
)

// Difficulty classifies how demanding a passage is to type.
type Difficulty string

// Difficulty levels known to the catalog.
const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists all levels in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// ParseDifficulty normalizes a difficulty string. Unknown values return false.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case Easy:
		return Easy, true
	case Medium:
		return Medium, true
	case Hard:
		return Hard, true
	}
	return "", false
}

// Quote is a passage the user is asked to reproduce.
type Quote struct {
	Text       string     `json:"text"`
	Difficulty Difficulty `json:"difficulty"`
	Category   string     `json:"category"`
	Author     string     `json:"author"`
}

// SessionState tracks the typing session lifecycle.
type SessionState int

// Session lifecycle states.
const (
	StateIdle SessionState = iota
	StateActive
	StateComplete
)

// String implements fmt.Stringer.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateComplete:
		return "complete"
	}
	return "unknown"
}

// Durations holds the fixed test lengths with per-duration bests.
var Durations = []int{15, 30, 60, 120}

// Result captures a finished typing session. Immutable once produced.
type Result struct {
	WPM          float64 `json:"wpm"`
	Accuracy     float64 `json:"accuracy"`
	Errors       int     `json:"errors"`
	TotalChars   int     `json:"totalChars"`
	CorrectChars int     `json:"correctChars"`
	TimeElapsed  float64 `json:"timeElapsed"`
	TestDuration int     `json:"testDuration"`
	Quote        Quote   `json:"quote"`
}

// DurationBest is the best recorded performance for one test length.
type DurationBest struct {
	WPM        float64 `json:"wpm"`
	Accuracy   float64 `json:"accuracy"`
	AchievedAt string  `json:"date,omitempty"`
}

// PersonalBests aggregates best scores overall and per duration bucket.
type PersonalBests struct {
	WPM        float64                 `json:"wpm"`
	Accuracy   float64                 `json:"accuracy"`
	ByDuration map[string]DurationBest `json:"byDuration"`
}

// DefaultPersonalBests returns the zero-state bests record.
func DefaultPersonalBests() PersonalBests {
	byDuration := make(map[string]DurationBest, len(Durations))
	for _, d := range Durations {
		byDuration[DurationKey(d)] = DurationBest{}
	}
	return PersonalBests{ByDuration: byDuration}
}

// HistoryEntry is a Result stamped with completion time, most-recent-first.
type HistoryEntry struct {
	Result
	Timestamp string `json:"timestamp"`
	Date      string `json:"date"`
}

// StreakData counts consecutive calendar days with at least one test.
type StreakData struct {
	CurrentStreak   int    `json:"currentStreak"`
	LongestStreak   int    `json:"longestStreak"`
	LastTestDate    string `json:"lastTestDate,omitempty"`
	StreakStartDate string `json:"streakStartDate,omitempty"`
}

// Achievements holds the fixed set of monotonic unlock flags.
type Achievements struct {
	FirstTest      bool `json:"firstTest"`
	SpeedDemon     bool `json:"speedDemon"`
	AccuracyExpert bool `json:"accuracyExpert"`
	Consistent     bool `json:"consistent"`
	Marathoner     bool `json:"marathoner"`
	StreakMaster   bool `json:"streakMaster"`
	Perfectionist  bool `json:"perfectionist"`
	Speedster      bool `json:"speedster"`
	Dedicated      bool `json:"dedicated"`
}

// Settings controls history retention and streak tracking.
type Settings struct {
	StreakTracking bool `json:"streakTracking"`
	HistoryLimit   int  `json:"historyLimit"`
	RetentionDays  int  `json:"dataRetentionDays"`
}

// DefaultSettings returns the documented settings defaults.
func DefaultSettings() Settings {
	return Settings{
		StreakTracking: true,
		HistoryLimit:   100,
		RetentionDays:  365,
	}
}

// BackupVersion tags the export bundle format.
const BackupVersion = "1.0"

// BackupBundle is the versioned export/import container for all aggregates.
// Pointer sections distinguish absent from zero; import applies each present
// section independently.
type BackupBundle struct {
	PersonalBests      *PersonalBests  `json:"personalBests,omitempty"`
	PerformanceHistory *[]HistoryEntry `json:"performanceHistory,omitempty"`
	StreakData         *StreakData     `json:"streakData,omitempty"`
	Achievements       *Achievements   `json:"achievements,omitempty"`
	Settings           *Settings       `json:"settings,omitempty"`
	ExportDate         string          `json:"exportDate"`
	Version            string          `json:"version"`
}

// DurationKey renders a duration bucket as its map key.
func DurationKey(seconds int) string {
	return strconv.Itoa(seconds)
}
