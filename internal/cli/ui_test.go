package cli

import (
	"strings"
	"testing"
)

func TestScoreBarWidth(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{"zero", 0},
		{"half", 0.5},
		{"full", 1},
		{"below range", -0.3},
		{"above range", 1.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := scoreBar(tt.value)
			cells := strings.Count(bar, "█") + strings.Count(bar, "░")
			if cells != barWidth {
				t.Errorf("scoreBar(%v) rendered %d cells, want %d", tt.value, cells, barWidth)
			}
		})
	}
}

func TestScoreBarFill(t *testing.T) {
	if got := strings.Count(scoreBar(1), "█"); got != barWidth {
		t.Errorf("full bar has %d filled cells, want %d", got, barWidth)
	}
	if got := strings.Count(scoreBar(0), "█"); got != 0 {
		t.Errorf("empty bar has %d filled cells, want 0", got)
	}
	if got := strings.Count(scoreBar(0.5), "█"); got != barWidth/2 {
		t.Errorf("half bar has %d filled cells, want %d", got, barWidth/2)
	}
}
