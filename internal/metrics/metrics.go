// Package metrics contains the typing score calculations.
package metrics

import "math"

// WPM computes words per minute as (chars/5) / minutes, rounded to two
// decimals. Invalid input yields 0 rather than an error.
func WPM(totalChars int, seconds float64) float64 {
	if seconds <= 0 || totalChars < 0 {
		return 0
	}
	minutes := seconds / 60
	return round2(float64(totalChars) / 5 / minutes)
}

// RawWPM computes WPM over all typed characters, errors included.
func RawWPM(totalChars int, seconds float64) float64 {
	return WPM(totalChars, seconds)
}

// NetWPM computes WPM over correctly typed characters only.
func NetWPM(totalChars, errors int, seconds float64) float64 {
	if seconds <= 0 || totalChars < 0 || errors < 0 {
		return 0
	}
	return WPM(totalChars-errors, seconds)
}

// Accuracy returns the correct-character percentage in [0, 100], rounded to
// two decimals. A non-positive total yields 0.
func Accuracy(correctChars, totalChars int) float64 {
	if totalChars <= 0 {
		return 0
	}
	return round2(float64(correctChars) / float64(totalChars) * 100)
}

// Category describes a performance band for a WPM value.
type Category struct {
	Emoji       string
	Name        string
	Description string
}

// PerformanceCategory maps WPM to one of six fixed bands.
func PerformanceCategory(wpm float64) Category {
	switch {
	case wpm >= 100:
		return Category{Emoji: "👑", Name: "Legend", Description: "Extraordinary!"}
	case wpm >= 81:
		return Category{Emoji: "🏆", Name: "Master", Description: "Outstanding!"}
	case wpm >= 61:
		return Category{Emoji: "🚀", Name: "Expert", Description: "Impressive!"}
	case wpm >= 41:
		return Category{Emoji: "⚡", Name: "Advanced", Description: "Nice speed!"}
	case wpm >= 21:
		return Category{Emoji: "📝", Name: "Intermediate", Description: "You're getting there!"}
	default:
		return Category{Emoji: "🐌", Name: "Beginner", Description: "Keep practicing!"}
	}
}

// Modifier carries accuracy feedback for display. Bonus is advisory only and
// is never folded into a stored WPM figure.
type Modifier struct {
	Bonus   int
	Message string
}

// AccuracyModifier returns display feedback for an accuracy percentage.
func AccuracyModifier(accuracy float64) Modifier {
	switch {
	case accuracy == 100:
		return Modifier{Bonus: 5, Message: "Perfect accuracy! +5 WPM bonus applied"}
	case accuracy >= 95:
		return Modifier{Message: "Excellent accuracy!"}
	case accuracy >= 90:
		return Modifier{Message: "Good accuracy! Try to aim for 95%+ for better scores"}
	default:
		return Modifier{Message: "Focus on accuracy to improve your overall performance"}
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
