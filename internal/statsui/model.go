// Package statsui provides the Bubble Tea stats interface.
package statsui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quotype/quotype/internal/model"
	"github.com/quotype/quotype/internal/progress"
	"github.com/quotype/quotype/internal/stats"
)

const (
	tabOverview = iota
	tabHistory
	tabAchievements
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	unlockedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7FD662"))
)

// Model implements the Bubble Tea stats UI.
type Model struct {
	store *progress.Store

	history      []model.HistoryEntry
	bests        model.PersonalBests
	streak       model.StreakData
	achievements model.Achievements

	tabs         []string
	activeTab    int
	viewports    []viewport.Model
	historyTable table.Model

	width  int
	height int
}

// NewModel constructs a stats UI model over the given progress store.
func NewModel(st *progress.Store) *Model {
	m := &Model{
		store: st,
		tabs:  []string{"Overview", "History", "Achievements"},
	}
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
	m.historyTable = buildHistoryTable(nil, 0, 1)
	m.refresh()
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
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		if m.activeTab == tabHistory {
			m.historyTable.Focus()
		} else {
			m.historyTable.Blur()
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "g", "home":
			if m.activeTab == tabHistory {
				m.historyTable.GotoTop()
			} else {
				m.viewports[m.activeTab].GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabHistory {
				m.historyTable.GotoBottom()
			} else {
				m.viewports[m.activeTab].GotoBottom()
			}
			return m, nil
		default:
			if m.activeTab == tabHistory {
				var cmd tea.Cmd
				m.historyTable, cmd = m.historyTable.Update(msg)
				return m, cmd
			}
			vp := m.viewports[m.activeTab]
			var cmd tea.Cmd
			vp, cmd = vp.Update(msg)
			m.viewports[m.activeTab] = vp
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) refresh() {
	ctx := context.Background()
	m.history = m.store.History(ctx)
	m.bests = m.store.Bests(ctx)
	m.streak = m.store.Streak(ctx)
	m.achievements = m.store.Achievements(ctx)

	width := m.width
	if width <= 0 {
		width = 80
	}
	_, bodyHeight, _ := m.layoutHeights()
	m.historyTable = buildHistoryTable(m.history, width, bodyHeight)
	m.renderTabContents()
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight
	footerHeight = 1
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = bodyHeight
	}
	m.historyTable.SetWidth(m.width)
	m.historyTable.SetHeight(maxInt(1, bodyHeight-1))
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	if m.activeTab == tabHistory {
		m.historyTable.Focus()
	} else {
		m.historyTable.Blur()
	}
}

func (m *Model) renderHeader() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderFooter() string {
	return headerStyle.Render("Nav: left/right  Scroll: up/down/pgup/pgdn  Quit: q")
}

func (m *Model) renderBody() string {
	if m.activeTab == tabHistory {
		if len(m.history) == 0 {
			return "No tests recorded yet."
		}
		return tableMutedStyle.Render(m.historyTable.View())
	}
	return m.viewports[m.activeTab].View()
}

func (m *Model) renderTabContents() {
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.viewports[tabOverview].SetContent(renderOverview(m.history, m.bests, m.streak, width))
	m.viewports[tabAchievements].SetContent(renderAchievements(m.achievements))
}

func renderOverview(history []model.HistoryEntry, bests model.PersonalBests, streak model.StreakData, width int) string {
	if len(history) == 0 {
		return "No tests recorded yet."
	}
	perf := progress.ComputeStats(history)
	cards := []string{
		metricCard("Tests", fmt.Sprintf("%d", perf.TotalTests)),
		metricCard("Avg WPM", fmt.Sprintf("%.0f", perf.AverageWPM)),
		metricCard("Best WPM", fmt.Sprintf("%.0f", perf.BestWPM)),
		metricCard("Avg Acc", fmt.Sprintf("%.0f%%", perf.AverageAccuracy)),
		metricCard("Streak", fmt.Sprintf("%d days", streak.CurrentStreak)),
	}
	var summary string
	if width < 80 {
		summary = strings.Join(cards, "\n")
	} else {
		row1 := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1], cards[2])
		row2 := lipgloss.JoinHorizontal(lipgloss.Top, cards[3], cards[4])
		summary = lipgloss.JoinVertical(lipgloss.Left, row1, row2)
	}

	lines := []string{summary, ""}
	if perf.ImprovementTrend != 0 {
		lines = append(lines, fmt.Sprintf("Trend: %+.0f%% over the last 10 tests", perf.ImprovementTrend))
	}
	if perf.TotalTests >= 10 {
		lines = append(lines, fmt.Sprintf("Recent average: %.0f WPM", perf.RecentAverage))
	}

	series := stats.WPMSeries(history)
	if len(series) >= 2 {
		smoothed := stats.MovingAverage(series, 5)
		fitted := stats.FitSeries(smoothed, maxInt(10, width-10))
		lines = append(lines, "", headerStyle.Render("WPM over time"), stats.Sparkline(fitted))
	}

	lines = append(lines, "", headerStyle.Render("Personal bests"))
	lines = append(lines, fmt.Sprintf("Overall: %.2f WPM at %.2f%% accuracy", bests.WPM, bests.Accuracy))
	for _, d := range model.Durations {
		best, ok := bests.ByDuration[model.DurationKey(d)]
		if !ok || best.WPM == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%4ds: %.2f WPM at %.2f%% accuracy", d, best.WPM, best.Accuracy))
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func renderAchievements(a model.Achievements) string {
	lines := make([]string, 0, len(progress.AchievementLabels))
	for _, label := range progress.AchievementLabels {
		if progress.Unlocked(a, label.ID) {
			lines = append(lines, unlockedStyle.Render(fmt.Sprintf("[x] %s: %s", label.Name, label.Description)))
		} else {
			lines = append(lines, headerStyle.Render(fmt.Sprintf("[ ] %s: %s", label.Name, label.Description)))
		}
	}
	return strings.Join(lines, "\n")
}

func buildHistoryTable(history []model.HistoryEntry, width, height int) table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "WPM", Width: 7},
		{Title: "Accuracy", Width: 9},
		{Title: "Errors", Width: 6},
		{Title: "Duration", Width: 8},
		{Title: "Difficulty", Width: 10},
	}
	rows := make([]table.Row, 0, len(history))
	for _, entry := range history {
		rows = append(rows, table.Row{
			entry.Date,
			fmt.Sprintf("%.2f", entry.WPM),
			fmt.Sprintf("%.2f%%", entry.Accuracy),
			fmt.Sprintf("%d", entry.Errors),
			fmt.Sprintf("%ds", entry.TestDuration),
			string(entry.Quote.Difficulty),
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(maxInt(1, height-1)),
	)
	t.SetWidth(width)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	t.SetStyles(styles)
	return t
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth < width {
			lines[i] = line + strings.Repeat(" ", width-lineWidth)
		}
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}
