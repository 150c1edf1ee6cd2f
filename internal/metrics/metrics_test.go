package metrics

import "testing"

func TestWPMGuards(t *testing.T) {
	cases := []struct {
		name    string
		chars   int
		seconds float64
	}{
		{"zero seconds", 100, 0},
		{"negative seconds", 100, -5},
		{"negative chars", -1, 60},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WPM(tc.chars, tc.seconds); got != 0 {
				t.Fatalf("WPM(%d, %v) = %v, want 0", tc.chars, tc.seconds, got)
			}
			if got := NetWPM(tc.chars, 0, tc.seconds); got != 0 {
				t.Fatalf("NetWPM(%d, 0, %v) = %v, want 0", tc.chars, tc.seconds, got)
			}
		})
	}
	if got := NetWPM(100, -1, 60); got != 0 {
		t.Fatalf("NetWPM with negative errors = %v, want 0", got)
	}
}

func TestWPMValues(t *testing.T) {
	if got := WPM(300, 60); got != 60 {
		t.Fatalf("WPM(300, 60) = %v, want 60", got)
	}
	// 100 chars in 30s: (100/5) / 0.5 = 40.
	if got := WPM(100, 30); got != 40 {
		t.Fatalf("WPM(100, 30) = %v, want 40", got)
	}
	// Rounding to two decimals: (50/5)/(37/60) = 16.2162...
	if got := WPM(50, 37); got != 16.22 {
		t.Fatalf("WPM(50, 37) = %v, want 16.22", got)
	}
	if got := NetWPM(300, 50, 60); got != 50 {
		t.Fatalf("NetWPM(300, 50, 60) = %v, want 50", got)
	}
	if got := RawWPM(300, 60); got != 60 {
		t.Fatalf("RawWPM(300, 60) = %v, want 60", got)
	}
}

func TestAccuracy(t *testing.T) {
	if got := Accuracy(10, 0); got != 0 {
		t.Fatalf("Accuracy(10, 0) = %v, want 0", got)
	}
	if got := Accuracy(0, -3); got != 0 {
		t.Fatalf("Accuracy(0, -3) = %v, want 0", got)
	}
	if got := Accuracy(50, 50); got != 100 {
		t.Fatalf("Accuracy(50, 50) = %v, want 100", got)
	}
	if got := Accuracy(2, 3); got != 66.67 {
		t.Fatalf("Accuracy(2, 3) = %v, want 66.67", got)
	}
}

func TestPerformanceCategoryBoundaries(t *testing.T) {
	cases := []struct {
		wpm  float64
		name string
	}{
		{0, "Beginner"},
		{20, "Beginner"},
		{21, "Intermediate"},
		{40, "Intermediate"},
		{41, "Advanced"},
		{60, "Advanced"},
		{61, "Expert"},
		{80, "Expert"},
		{81, "Master"},
		{99, "Master"},
		{100, "Legend"},
		{150, "Legend"},
	}
	for _, tc := range cases {
		if got := PerformanceCategory(tc.wpm); got.Name != tc.name {
			t.Fatalf("PerformanceCategory(%v) = %q, want %q", tc.wpm, got.Name, tc.name)
		}
	}
}

func TestAccuracyModifier(t *testing.T) {
	if m := AccuracyModifier(100); m.Bonus != 5 {
		t.Fatalf("expected +5 bonus at 100%% accuracy, got %d", m.Bonus)
	}
	for _, acc := range []float64{99.99, 95, 90, 50, 0} {
		if m := AccuracyModifier(acc); m.Bonus != 0 {
			t.Fatalf("expected no bonus at %v%% accuracy, got %d", acc, m.Bonus)
		}
	}
	if m := AccuracyModifier(95); m.Message != "Excellent accuracy!" {
		t.Fatalf("unexpected message at 95%%: %q", m.Message)
	}
}
