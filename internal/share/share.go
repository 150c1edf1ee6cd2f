// Package share renders typing results as shareable text cards.
package share

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/quotype/quotype/internal/metrics"
	"github.com/quotype/quotype/internal/model"
)

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(1, 3)

// Text returns a plain-text summary suitable for pasting into a chat.
func Text(res model.Result) string {
	cat := metrics.PerformanceCategory(res.WPM)

	minutes := int(math.Round(res.TimeElapsed / 60))
	unit := "minutes"
	if minutes == 1 {
		unit = "minute"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "⚡ I just scored %d WPM on quotype!\n", int(math.Round(res.WPM)))
	fmt.Fprintf(&b, "Accuracy: %d%%\n", int(math.Round(res.Accuracy)))
	fmt.Fprintf(&b, "Rank: %s %s\n", cat.Name, cat.Emoji)
	fmt.Fprintf(&b, "Time: %d %s\n", minutes, unit)
	b.WriteString("\nCan you beat my score?")
	return b.String()
}

// Card returns a bordered card rendering of a result for terminal display.
func Card(res model.Result) string {
	cat := metrics.PerformanceCategory(res.WPM)

	lines := []string{
		fmt.Sprintf("%s  %s", cat.Emoji, cat.Name),
		"",
		fmt.Sprintf("%.0f WPM", res.WPM),
		fmt.Sprintf("%.0f%% accuracy, %d errors", res.Accuracy, res.Errors),
		fmt.Sprintf("%d characters in %.0fs", res.TotalChars, res.TimeElapsed),
	}
	if res.Quote.Author != "" {
		lines = append(lines, "", fmt.Sprintf("%q", res.Quote.Author))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

// Save writes the share text for res into dir and returns the file path.
// The directory is created if missing.
func Save(dir string, res model.Result, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create share directory: %w", err)
	}
	name := fmt.Sprintf("quotype-%s.txt", at.Format("2006-01-02-150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(Text(res)+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("failed to write share card: %w", err)
	}
	return path, nil
}
