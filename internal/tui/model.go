// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quotype/quotype/internal/config"
	"github.com/quotype/quotype/internal/metrics"
	"github.com/quotype/quotype/internal/model"
	"github.com/quotype/quotype/internal/progress"
	"github.com/quotype/quotype/internal/session"
	"github.com/quotype/quotype/internal/share"
)

// tickMsg carries the generation of the tick chain that produced it. Ticks
// from an abandoned session carry a stale generation and are discarded, so
// exactly one chain ever drives the active countdown.
type tickMsg struct {
	gen int
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	sess     *session.Session
	store    *progress.Store
	shareDir string

	width  int
	height int

	durationIdx int
	generation  int
	snap        session.Snapshot
	outcome     *progress.Outcome
	statusLine  string
}

var (
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cursorStyle    = pendingStyle.Copy().Underline(true)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	accentStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	bannerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7FD662"))
)

// NewModel constructs a typing TUI model. The preferred duration selects the
// initial entry of the duration picker.
func NewModel(sess *session.Session, store *progress.Store, preferredDuration int) *Model {
	m := &Model{
		sess:     sess,
		store:    store,
		shareDir: config.DefaultShareDir(),
	}
	for i, d := range model.Durations {
		if d == preferredDuration {
			m.durationIdx = i
		}
	}
	m.snap = sess.Snapshot()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if msg.gen != m.generation || m.snap.State != model.StateActive {
			return m, nil
		}
		m.snap = m.sess.Tick()
		if m.snap.State == model.StateComplete {
			m.recordResult()
			return m, nil
		}
		return m, tickCmd(msg.gen)
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.snap.State {
	case model.StateActive:
		switch msg.Type {
		case tea.KeyEsc:
			m.snap = m.sess.Restart()
			return m, nil
		case tea.KeyBackspace, tea.KeyDelete:
			m.snap = m.sess.Keystroke(session.Backspace)
			return m, nil
		case tea.KeySpace:
			m.snap = m.sess.Keystroke(" ")
			m.recordIfComplete()
			return m, nil
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				m.snap = m.sess.Keystroke(string(r))
			}
			m.recordIfComplete()
			return m, nil
		default:
			return m, nil
		}
	case model.StateComplete:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "r", "enter":
			m.snap = m.sess.Restart()
			m.outcome = nil
			m.statusLine = ""
			return m, nil
		case "R":
			m.snap = m.sess.ResetTracking()
			m.outcome = nil
			m.statusLine = ""
			return m, nil
		case "s":
			m.saveCard()
			return m, nil
		default:
			return m, nil
		}
	default: // idle
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "left", "h":
			if m.durationIdx > 0 {
				m.durationIdx--
			}
			return m, nil
		case "right", "l":
			if m.durationIdx < len(model.Durations)-1 {
				m.durationIdx++
			}
			return m, nil
		case "R":
			m.snap = m.sess.ResetTracking()
			m.statusLine = "selection history cleared"
			return m, nil
		case "enter", " ":
			snap, err := m.sess.Start(model.Durations[m.durationIdx])
			if err != nil {
				m.statusLine = err.Error()
				return m, nil
			}
			m.snap = snap
			m.statusLine = ""
			m.generation++
			return m, tickCmd(m.generation)
		default:
			return m, nil
		}
	}
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (m *Model) recordIfComplete() {
	if m.snap.State == model.StateComplete {
		m.recordResult()
	}
}

func (m *Model) recordResult() {
	res, ok := m.sess.Result()
	if !ok {
		return
	}
	outcome := m.store.RecordResult(context.Background(), res)
	m.outcome = &outcome
}

func (m *Model) saveCard() {
	res, ok := m.sess.Result()
	if !ok {
		return
	}
	path, err := share.Save(m.shareDir, res, time.Now())
	if err != nil {
		logErrf("failed to save share card: %v\n", err)
		m.statusLine = "could not save share card"
		return
	}
	m.statusLine = "share card saved to " + path
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	switch m.snap.State {
	case model.StateActive:
		content = m.viewActive()
	case model.StateComplete:
		content = m.viewComplete()
	default:
		content = m.viewIdle()
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) viewIdle() string {
	var b strings.Builder
	b.WriteString(accentStyle.Render("quotype"))
	b.WriteString("\n\n")
	b.WriteString("Duration: ")
	for i, d := range model.Durations {
		label := fmt.Sprintf(" %ds ", d)
		if i == m.durationIdx {
			b.WriteString(accentStyle.Render("[" + strings.TrimSpace(label) + "]"))
		} else {
			b.WriteString(footerStyle.Render(label))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(footerStyle.Render("enter start · ←/→ duration · R reset tracking · q quit"))
	if m.statusLine != "" {
		b.WriteString("\n\n")
		b.WriteString(footerStyle.Render(m.statusLine))
	}
	return b.String()
}

func (m *Model) viewActive() string {
	targetRunes := []rune(m.snap.Quote.Text)
	inputRunes := []rune(m.snap.Typed)
	cursorIndex := -1
	if len(inputRunes) < len(targetRunes) {
		cursorIndex = len(inputRunes)
	}
	styledRunes := buildStyledRunes(targetRunes, inputRunes, cursorIndex)

	contentWidth := 76
	if m.width > 0 {
		contentWidth = int(float64(m.width) * 0.70)
		if contentWidth < 1 {
			contentWidth = 1
		}
	}
	passage := wrapStyledRunes(styledRunes, contentWidth)

	footer := footerStyle.Render(fmt.Sprintf(
		"%ds left · %.0f WPM · %.0f%% · %d errors · esc abort",
		m.snap.Remaining, m.snap.LiveWPM, m.snap.LiveAccuracy, m.snap.Errors,
	))
	attribution := ""
	if m.snap.Quote.Author != "" {
		attribution = footerStyle.Render("— "+m.snap.Quote.Author) + "\n\n"
	}
	return lipgloss.NewStyle().Width(contentWidth).Render(passage) + "\n\n" + attribution + footer
}

func (m *Model) viewComplete() string {
	res, ok := m.sess.Result()
	if !ok {
		return ""
	}
	cat := metrics.PerformanceCategory(res.WPM)
	mod := metrics.AccuracyModifier(res.Accuracy)

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s · %s\n\n", cat.Emoji, accentStyle.Render(cat.Name), cat.Description)
	fmt.Fprintf(&b, "%.2f WPM · %.2f%% accuracy · %d errors · %d chars in %.0fs\n",
		res.WPM, res.Accuracy, res.Errors, res.TotalChars, res.TimeElapsed)
	if mod.Bonus > 0 {
		fmt.Fprintf(&b, "%s (+%d WPM display bonus)\n", mod.Message, mod.Bonus)
	}
	if m.outcome != nil {
		if m.outcome.NewBest {
			b.WriteString("\n" + bannerStyle.Render("New personal best!") + "\n")
		}
		for _, id := range m.outcome.NewAchievements {
			b.WriteString(bannerStyle.Render("Achievement unlocked: "+achievementName(id)) + "\n")
		}
		if m.outcome.Streak.CurrentStreak > 1 {
			fmt.Fprintf(&b, "\n%d day streak\n", m.outcome.Streak.CurrentStreak)
		}
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("r try again · R reset tracking · s share card · q quit"))
	if m.statusLine != "" {
		b.WriteString("\n" + footerStyle.Render(m.statusLine))
	}
	return b.String()
}

func achievementName(id string) string {
	for _, l := range progress.AchievementLabels {
		if l.ID == id {
			return l.Name
		}
	}
	return id
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
