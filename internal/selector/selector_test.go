package selector

import (
	"math/rand"
	"testing"

	"github.com/quotype/quotype/internal/catalog"
	"github.com/quotype/quotype/internal/model"
)

func testSelector(t *testing.T, quotes []model.Quote) *Selector {
	t.Helper()
	cat, err := catalog.NewFromQuotes(quotes)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return &Selector{cat: cat, rnd: rand.New(rand.NewSource(1))}
}

func testQuotes() []model.Quote {
	return []model.Quote{
		{Text: "easy one", Difficulty: model.Easy, Category: "common", Author: "a"},
		{Text: "easy two", Difficulty: model.Easy, Category: "common", Author: "b"},
		{Text: "easy three", Difficulty: model.Easy, Category: "common", Author: "c"},
		{Text: "medium one", Difficulty: model.Medium, Category: "common", Author: "d"},
		{Text: "medium two", Difficulty: model.Medium, Category: "common", Author: "e"},
		{Text: "hard one", Difficulty: model.Hard, Category: "common", Author: "f"},
		{Text: "hard two", Difficulty: model.Hard, Category: "common", Author: "g"},
	}
}

func TestNoImmediateRepeat(t *testing.T) {
	s := testSelector(t, testQuotes())
	var prev string
	for i := 0; i < 100; i++ {
		q, err := s.ByDifficulty(model.Easy)
		if err != nil {
			t.Fatalf("select %d: %v", i, err)
		}
		if q.Text == prev {
			t.Fatalf("selection %d repeated %q immediately", i, q.Text)
		}
		s.MarkUsed(q)
		prev = q.Text
	}
}

func TestExhaustedFreshOptionsDegrade(t *testing.T) {
	quotes := []model.Quote{
		{Text: "only easy", Difficulty: model.Easy, Category: "common", Author: "a"},
		{Text: "m", Difficulty: model.Medium, Category: "common", Author: "b"},
		{Text: "h", Difficulty: model.Hard, Category: "common", Author: "c"},
	}
	s := testSelector(t, quotes)
	first, err := s.ByDifficulty(model.Easy)
	if err != nil {
		t.Fatalf("first select: %v", err)
	}
	s.MarkUsed(first)
	// The single easy quote is in history; a repeat is served rather than
	// failing.
	second, err := s.ByDifficulty(model.Easy)
	if err != nil {
		t.Fatalf("second select: %v", err)
	}
	if second.Text != first.Text {
		t.Fatalf("expected repeat of %q, got %q", first.Text, second.Text)
	}
}

func TestEmptyDifficultyFallsBackToCatalog(t *testing.T) {
	s := testSelector(t, testQuotes())
	q, err := s.ByDifficulty(model.Difficulty("nonsense"))
	if err != nil {
		t.Fatalf("fallback select: %v", err)
	}
	if q.Text == "" {
		t.Fatalf("expected a quote from full-catalog fallback")
	}
}

func TestHistoryBounded(t *testing.T) {
	s := testSelector(t, testQuotes())
	for i := 0; i < 25; i++ {
		q, err := s.ByDifficulty(model.Easy)
		if err != nil {
			t.Fatalf("select: %v", err)
		}
		s.MarkUsed(q)
	}
	if got := len(s.history); got > maxHistory {
		t.Fatalf("history grew to %d, cap is %d", got, maxHistory)
	}
	if got := len(s.Recent(3)); got != 3 {
		t.Fatalf("Recent(3) returned %d entries", got)
	}
	s.Reset()
	if len(s.history) != 0 {
		t.Fatalf("history not cleared by Reset")
	}
}

func TestTargetDifficultyThresholds(t *testing.T) {
	cases := []struct {
		avg  float64
		last model.Difficulty
		want model.Difficulty
	}{
		{0, "", model.Easy},
		{34.9, "", model.Easy},
		{35, "", model.Medium},
		{59.9, "", model.Medium},
		{60, "", model.Hard},
		// Struggling: downgrade from the base target.
		{45, model.Hard, model.Medium},
		{20, model.Medium, model.Easy},
		// Excelling: upgrade past the base target.
		{51, model.Easy, model.Medium},
		{71, model.Medium, model.Hard},
		// Upgrade rule evaluated after downgrade rule wins the conflict:
		// avg 71 from hard maps to hard base, no downgrade (>=50).
		{71, model.Hard, model.Hard},
		// avg 40 after medium stays medium: neither rule applies.
		{40, model.Medium, model.Medium},
	}
	for _, tc := range cases {
		if got := targetDifficulty(tc.avg, tc.last); got != tc.want {
			t.Fatalf("targetDifficulty(%v, %q) = %q, want %q", tc.avg, tc.last, got, tc.want)
		}
	}
}

func TestProgressiveServesTargetLevel(t *testing.T) {
	s := testSelector(t, testQuotes())
	q, err := s.Progressive(80, model.Hard)
	if err != nil {
		t.Fatalf("progressive: %v", err)
	}
	if q.Difficulty != model.Hard {
		t.Fatalf("expected hard passage at 80 WPM, got %q", q.Difficulty)
	}
	q, err = s.Progressive(10, "")
	if err != nil {
		t.Fatalf("progressive: %v", err)
	}
	if q.Difficulty != model.Easy {
		t.Fatalf("expected easy passage at 10 WPM, got %q", q.Difficulty)
	}
}
