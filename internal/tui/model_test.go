package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quotype/quotype/internal/catalog"
	"github.com/quotype/quotype/internal/model"
	"github.com/quotype/quotype/internal/progress"
	"github.com/quotype/quotype/internal/selector"
	"github.com/quotype/quotype/internal/session"
	"github.com/quotype/quotype/internal/storage"
)

func testModel(t *testing.T, easyText string) *Model {
	t.Helper()
	cat, err := catalog.NewFromQuotes([]model.Quote{
		{Text: easyText, Category: "test", Author: "A", Difficulty: model.Easy},
		{Text: "medium passage", Category: "test", Author: "B", Difficulty: model.Medium},
		{Text: "hard passage", Category: "test", Author: "C", Difficulty: model.Hard},
	})
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	kv, err := storage.Open(filepath.Join(t.TempDir(), "quotype.db"))
	if err != nil {
		t.Fatalf("failed to open storage: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })

	sess := session.New(selector.New(cat))
	m := NewModel(sess, progress.NewStore(kv), 60)
	m.shareDir = filepath.Join(t.TempDir(), "cards")
	return m
}

func typeString(m *Model, text string) {
	for _, r := range text {
		if r == ' ' {
			m.Update(tea.KeyMsg{Type: tea.KeySpace})
			continue
		}
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestIdleStartActivatesSession(t *testing.T) {
	m := testModel(t, "go on")

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.snap.State != model.StateActive {
		t.Fatalf("expected active state, got %v", m.snap.State)
	}
	if m.snap.Duration != 60 {
		t.Fatalf("expected 60s test, got %d", m.snap.Duration)
	}
}

func TestDurationPicker(t *testing.T) {
	m := testModel(t, "go on")

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.snap.Duration != model.Durations[0] {
		t.Fatalf("expected shortest duration, got %d", m.snap.Duration)
	}
}

func TestTypingThroughCompletionRecordsResult(t *testing.T) {
	m := testModel(t, "go on")

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typeString(m, "go on")

	if m.snap.State != model.StateComplete {
		t.Fatalf("expected complete state, got %v", m.snap.State)
	}
	if m.outcome == nil {
		t.Fatalf("expected recorded outcome")
	}
	if !m.outcome.NewBest {
		t.Fatalf("expected first result to be a personal best")
	}
	found := false
	for _, id := range m.outcome.NewAchievements {
		if id == "firstTest" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected firstTest achievement, got %v", m.outcome.NewAchievements)
	}
	view := m.View()
	if !strings.Contains(view, "accuracy") {
		t.Fatalf("complete view missing summary:\n%s", view)
	}
}

func TestRestartAfterCompletion(t *testing.T) {
	m := testModel(t, "go on")

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typeString(m, "go on")
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

	if m.snap.State != model.StateIdle {
		t.Fatalf("expected idle state after restart, got %v", m.snap.State)
	}
	if m.outcome != nil {
		t.Fatalf("expected outcome cleared on restart")
	}
}

func TestTickAfterCompletionIsIgnored(t *testing.T) {
	m := testModel(t, "go on")

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typeString(m, "go on")
	before := m.snap
	_, cmd := m.Update(tickMsg{gen: m.generation})
	if m.snap != before {
		t.Fatalf("expected tick after completion to be a no-op")
	}
	if cmd != nil {
		t.Fatalf("tick after completion must not re-arm the countdown")
	}
}

func TestAbandonedSessionTickDoesNotTouchNewCountdown(t *testing.T) {
	m := testModel(t, "go on")

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	stale := tickMsg{gen: m.generation}
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	fresh := tickMsg{gen: m.generation}

	_, cmd := m.Update(stale)
	if m.snap.Remaining != 60 {
		t.Fatalf("stale tick changed countdown: remaining = %d, want 60", m.snap.Remaining)
	}
	if cmd != nil {
		t.Fatalf("stale tick must not re-arm the countdown")
	}

	_, cmd = m.Update(fresh)
	if m.snap.Remaining != 59 {
		t.Fatalf("fresh tick: remaining = %d, want 59", m.snap.Remaining)
	}
	if cmd == nil {
		t.Fatalf("fresh tick must re-arm the countdown")
	}
}

func TestCompletionOnTrailingSpaceRecordsResult(t *testing.T) {
	m := testModel(t, "go on ")

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typeString(m, "go on ")

	if m.snap.State != model.StateComplete {
		t.Fatalf("expected complete state, got %v", m.snap.State)
	}
	if m.outcome == nil {
		t.Fatalf("expected result recorded when the final keystroke is a space")
	}
}
