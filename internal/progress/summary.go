package progress

import (
	"math"

	"github.com/quotype/quotype/internal/model"
)

// PerformanceStats summarizes the whole history for display. Values are
// rounded to whole numbers.
type PerformanceStats struct {
	TotalTests       int
	AverageWPM       float64
	AverageAccuracy  float64
	BestWPM          float64
	BestAccuracy     float64
	ImprovementTrend float64
	RecentAverage    float64
}

// ComputeStats derives display statistics from a most-recent-first history.
func ComputeStats(history []model.HistoryEntry) PerformanceStats {
	total := len(history)
	if total == 0 {
		return PerformanceStats{}
	}

	var sumWPM, sumAcc, bestWPM, bestAcc float64
	for _, entry := range history {
		sumWPM += entry.WPM
		sumAcc += entry.Accuracy
		if entry.WPM > bestWPM {
			bestWPM = entry.WPM
		}
		if entry.Accuracy > bestAcc {
			bestAcc = entry.Accuracy
		}
	}
	avgWPM := sumWPM / float64(total)
	avgAcc := sumAcc / float64(total)

	trend := 0.0
	if total >= 20 {
		// History is most-recent-first, so the tail ten of the stored
		// slice are the chronologically earliest entries of the window.
		midTen := meanWPM(history[total-20 : total-10])
		tailTen := meanWPM(history[total-10:])
		if midTen != 0 {
			trend = (tailTen - midTen) / midTen * 100
		}
	}

	recent := avgWPM
	if total >= 10 {
		recent = meanWPM(history[:10])
	}

	return PerformanceStats{
		TotalTests:       total,
		AverageWPM:       math.Round(avgWPM),
		AverageAccuracy:  math.Round(avgAcc),
		BestWPM:          math.Round(bestWPM),
		BestAccuracy:     math.Round(bestAcc),
		ImprovementTrend: math.Round(trend),
		RecentAverage:    math.Round(recent),
	}
}

func meanWPM(entries []model.HistoryEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0.0
	for _, entry := range entries {
		sum += entry.WPM
	}
	return sum / float64(len(entries))
}
