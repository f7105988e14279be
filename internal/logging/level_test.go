package logging

import "testing"

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
		ok    bool
	}{
		{"debug", LevelDebug, true},
		{"INFO", LevelInfo, true},
		{" warn ", LevelWarn, true},
		{"error", LevelError, true},
		{"none", LevelNone, true},
		{"", LevelInfo, false},
		{"verbose", LevelInfo, false},
	}
	for _, tc := range tests {
		got, ok := ParseLevel(tc.input)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseLevel(%q) = (%v, %v), want (%v, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestLevelOrdering(t *testing.T) {
	ordered := []Level{LevelDebug, LevelInfo, LevelWarn, LevelError, LevelNone}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Rank() >= ordered[i].Rank() {
			t.Fatalf("expected %v < %v", ordered[i-1], ordered[i])
		}
	}
}

func TestShouldEmitMatrix(t *testing.T) {
	entryLevels := []Level{LevelDebug, LevelInfo, LevelWarn, LevelError}
	thresholds := []Level{LevelDebug, LevelInfo, LevelWarn, LevelError, LevelNone}
	for _, level := range entryLevels {
		for _, threshold := range thresholds {
			want := level.Rank() >= threshold.Rank()
			if got := ShouldEmit(level, threshold); got != want {
				t.Errorf("ShouldEmit(%v, %v) = %v, want %v", level, threshold, got, want)
			}
		}
	}
}

func TestNoneThresholdDisablesEverything(t *testing.T) {
	for _, level := range []Level{LevelDebug, LevelInfo, LevelWarn, LevelError} {
		if ShouldEmit(level, LevelNone) {
			t.Errorf("expected %v to be suppressed by a none threshold", level)
		}
	}
}

func TestLevelTextRoundTrip(t *testing.T) {
	for _, level := range []Level{LevelDebug, LevelInfo, LevelWarn, LevelError, LevelNone} {
		text, err := level.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", level, err)
		}
		var back Level
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != level {
			t.Fatalf("round trip %v -> %q -> %v", level, text, back)
		}
	}
}
