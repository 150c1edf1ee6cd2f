// Package session implements the typing test state machine.
package session

import (
	"fmt"
	"time"

	"github.com/quotype/quotype/internal/metrics"
	"github.com/quotype/quotype/internal/model"
	"github.com/quotype/quotype/internal/selector"
)

// Backspace is the key token that removes the last typed character.
const Backspace = "backspace"

// wpmWindowSize bounds the rolling average used for progressive selection.
const wpmWindowSize = 5

// Session owns one typing test at a time: the passage, the typed buffer, the
// countdown, and the live score. Mutations arrive through Start, Keystroke,
// Tick, and Restart; the embedding event loop serializes them.
type Session struct {
	sel *selector.Selector
	now func() time.Time

	state          model.SessionState
	quote          model.Quote
	passage        []rune
	input          []rune
	errorCount     int
	startedAt      time.Time
	durationTarget int
	remaining      int
	liveWPM        float64
	liveAccuracy   float64

	lastDifficulty model.Difficulty
	forced         model.Difficulty
	wpmWindow      []float64
	result         *model.Result
}

// Snapshot is the read-only view handed to the presentation layer.
type Snapshot struct {
	State        model.SessionState
	Quote        model.Quote
	Typed        string
	Errors       int
	Duration     int
	Remaining    int
	LiveWPM      float64
	LiveAccuracy float64
}

// New returns an idle session drawing passages from the given selector.
func New(sel *selector.Selector) *Session {
	return &Session{
		sel:          sel,
		now:          time.Now,
		liveAccuracy: 100,
	}
}

// Start selects a passage for the rolling average pace and begins a test of
// the given length. It fails, leaving the session idle, when no passage is
// available or the session is already running.
func (s *Session) Start(durationSeconds int) (Snapshot, error) {
	if s.state == model.StateActive {
		return s.Snapshot(), fmt.Errorf("session already active; restart it first")
	}
	if durationSeconds <= 0 {
		return s.Snapshot(), fmt.Errorf("test duration must be positive, got %d", durationSeconds)
	}

	quote, err := s.selectQuote()
	if err != nil {
		s.state = model.StateIdle
		return s.Snapshot(), fmt.Errorf("failed to select passage: %w", err)
	}
	if quote.Text == "" {
		s.state = model.StateIdle
		return s.Snapshot(), fmt.Errorf("selected passage is empty")
	}

	s.state = model.StateActive
	s.quote = quote
	s.passage = []rune(quote.Text)
	s.lastDifficulty = quote.Difficulty
	s.input = nil
	s.errorCount = 0
	s.startedAt = s.now()
	s.durationTarget = durationSeconds
	s.remaining = durationSeconds
	s.liveWPM = 0
	s.liveAccuracy = 100
	s.result = nil
	return s.Snapshot(), nil
}

// ForceDifficulty pins passage selection to one level instead of the
// progressive pace-based choice. An empty level restores progressive mode.
func (s *Session) ForceDifficulty(level model.Difficulty) {
	s.forced = level
}

func (s *Session) selectQuote() (model.Quote, error) {
	if s.forced != "" {
		return s.sel.ByDifficulty(s.forced)
	}
	return s.sel.Progressive(s.averageWPM(), s.lastDifficulty)
}

// Keystroke feeds one key into the session. Backspace removes the last typed
// character and recounts every error; a single printable rune appends and
// adjusts the error count incrementally. Anything else, or any key outside
// the active state, is ignored.
func (s *Session) Keystroke(key string) Snapshot {
	if s.state != model.StateActive {
		return s.Snapshot()
	}
	if key == Backspace {
		s.backspace()
		return s.Snapshot()
	}
	runes := []rune(key)
	if len(runes) != 1 {
		return s.Snapshot()
	}
	s.typeRune(runes[0])
	return s.Snapshot()
}

// Tick advances the countdown by one second. At zero the session finalizes
// with the full configured duration as elapsed time. The caller owns the
// once-per-second schedule and must stop it once the state leaves active.
func (s *Session) Tick() Snapshot {
	if s.state != model.StateActive {
		return s.Snapshot()
	}
	s.remaining--
	if s.remaining <= 0 {
		s.remaining = 0
		s.finalize(float64(s.durationTarget))
	}
	return s.Snapshot()
}

// Restart abandons any in-progress or finished attempt and returns to idle.
// Selection history and the rolling WPM window survive; use ResetTracking to
// clear those too.
func (s *Session) Restart() Snapshot {
	s.state = model.StateIdle
	s.quote = model.Quote{}
	s.passage = nil
	s.input = nil
	s.errorCount = 0
	s.startedAt = time.Time{}
	s.remaining = 0
	s.liveWPM = 0
	s.liveAccuracy = 100
	s.result = nil
	return s.Snapshot()
}

// ResetTracking restarts and additionally forgets served passages and the
// rolling WPM window, as if the practice sequence began fresh.
func (s *Session) ResetTracking() Snapshot {
	snap := s.Restart()
	s.sel.Reset()
	s.wpmWindow = nil
	s.lastDifficulty = ""
	return snap
}

// Result returns the finalized outcome. The second value is false until the
// session completes.
func (s *Session) Result() (model.Result, bool) {
	if s.result == nil {
		return model.Result{}, false
	}
	return *s.result, true
}

// Snapshot returns the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:        s.state,
		Quote:        s.quote,
		Typed:        string(s.input),
		Errors:       s.errorCount,
		Duration:     s.durationTarget,
		Remaining:    s.remaining,
		LiveWPM:      s.liveWPM,
		LiveAccuracy: s.liveAccuracy,
	}
}

func (s *Session) backspace() {
	if len(s.input) == 0 {
		return
	}
	s.input = s.input[:len(s.input)-1]
	// Recount from scratch; arbitrary delete sequences make incremental
	// bookkeeping unreliable.
	s.errorCount = 0
	for i, r := range s.input {
		if r != s.passage[i] {
			s.errorCount++
		}
	}
	s.refreshLive()
}

func (s *Session) typeRune(r rune) {
	pos := len(s.input)
	if pos >= len(s.passage) {
		return
	}
	s.input = append(s.input, r)
	if r != s.passage[pos] {
		s.errorCount++
	}
	s.refreshLive()
	if len(s.input) == len(s.passage) {
		s.finalize(s.now().Sub(s.startedAt).Seconds())
	}
}

func (s *Session) refreshLive() {
	elapsed := s.now().Sub(s.startedAt).Seconds()
	s.liveWPM = metrics.NetWPM(len(s.input), s.errorCount, elapsed)
	s.liveAccuracy = metrics.Accuracy(len(s.input)-s.errorCount, len(s.input))
}

func (s *Session) finalize(elapsedSeconds float64) {
	total := len(s.input)
	wpm := metrics.NetWPM(total, s.errorCount, elapsedSeconds)
	accuracy := metrics.Accuracy(total-s.errorCount, total)
	s.result = &model.Result{
		WPM:          wpm,
		Accuracy:     accuracy,
		Errors:       s.errorCount,
		TotalChars:   total,
		CorrectChars: total - s.errorCount,
		TimeElapsed:  elapsedSeconds,
		TestDuration: s.durationTarget,
		Quote:        s.quote,
	}
	s.liveWPM = wpm
	s.liveAccuracy = accuracy
	s.state = model.StateComplete

	s.sel.MarkUsed(s.quote)
	s.wpmWindow = append(s.wpmWindow, wpm)
	if len(s.wpmWindow) > wpmWindowSize {
		s.wpmWindow = s.wpmWindow[len(s.wpmWindow)-wpmWindowSize:]
	}
}

func (s *Session) averageWPM() float64 {
	if len(s.wpmWindow) == 0 {
		return 0
	}
	sum := 0.0
	for _, w := range s.wpmWindow {
		sum += w
	}
	return sum / float64(len(s.wpmWindow))
}
