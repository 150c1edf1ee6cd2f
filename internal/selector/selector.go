// Package selector picks passages, avoiding recent repeats and adapting
// difficulty to the user's pace.
package selector

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/quotype/quotype/internal/catalog"
	"github.com/quotype/quotype/internal/model"
)

const maxHistory = 10

// WPM thresholds for the base difficulty target.
const (
	mediumThreshold = 35
	hardThreshold   = 60
)

// Selector serves passages from a catalog. It remembers the last few served
// quotes so consecutive tests do not repeat text.
type Selector struct {
	cat     *catalog.Catalog
	rnd     *rand.Rand
	history []model.Quote
}

// New returns a Selector seeded with the current time.
func New(cat *catalog.Catalog) *Selector {
	return &Selector{
		cat: cat,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ByDifficulty picks a passage at the requested level, preferring ones not
// served recently. Once the level's fresh options run out, repeats are
// served again. An empty level bucket degrades to the full catalog.
func (s *Selector) ByDifficulty(level model.Difficulty) (model.Quote, error) {
	pool := s.cat.ByDifficulty(level)
	if len(pool) == 0 {
		pool = s.cat.All()
	}
	if len(pool) == 0 {
		return model.Quote{}, fmt.Errorf("no quotes available for difficulty %q", level)
	}

	fresh := make([]model.Quote, 0, len(pool))
	for _, q := range pool {
		if !s.recentlyUsed(q) {
			fresh = append(fresh, q)
		}
	}
	if len(fresh) > 0 {
		return fresh[s.rnd.Intn(len(fresh))], nil
	}
	return pool[s.rnd.Intn(len(pool))], nil
}

// Progressive maps the rolling average WPM to a difficulty target, applies
// hysteresis against the previously served level, and delegates the pick to
// ByDifficulty. lastServed may be empty when no passage was served yet.
func (s *Selector) Progressive(avgWPM float64, lastServed model.Difficulty) (model.Quote, error) {
	return s.ByDifficulty(targetDifficulty(avgWPM, lastServed))
}

// MarkUsed records a served passage, evicting the oldest beyond capacity.
func (s *Selector) MarkUsed(q model.Quote) {
	if q.Text == "" {
		return
	}
	s.history = append([]model.Quote{q}, s.history...)
	if len(s.history) > maxHistory {
		s.history = s.history[:maxHistory]
	}
}

// Recent returns up to n most recently served passages, newest first.
func (s *Selector) Recent(n int) []model.Quote {
	if n > len(s.history) {
		n = len(s.history)
	}
	out := make([]model.Quote, n)
	copy(out, s.history[:n])
	return out
}

// Reset clears the served-passage history.
func (s *Selector) Reset() {
	s.history = nil
}

func (s *Selector) recentlyUsed(q model.Quote) bool {
	for _, recent := range s.history {
		if recent.Text == q.Text {
			return true
		}
	}
	return false
}

// targetDifficulty applies the threshold mapping, then the four hysteresis
// rules in order; the last applicable rule wins.
func targetDifficulty(avgWPM float64, lastServed model.Difficulty) model.Difficulty {
	target := model.Easy
	switch {
	case avgWPM >= hardThreshold:
		target = model.Hard
	case avgWPM >= mediumThreshold:
		target = model.Medium
	}

	if lastServed == model.Hard && avgWPM < 50 {
		target = model.Medium
	} else if lastServed == model.Medium && avgWPM < 25 {
		target = model.Easy
	}
	if lastServed == model.Easy && avgWPM > 50 {
		target = model.Medium
	} else if lastServed == model.Medium && avgWPM > 70 {
		target = model.Hard
	}
	return target
}
