package utils

import (
	"strings"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 10, 500*time.Millisecond)
	if s.AveragePopulation != 10 {
		t.Errorf("AveragePopulation = %v, want 10", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 2 {
		t.Errorf("GenerationsPerSecond = %v, want 2", s.GenerationsPerSecond)
	}

	s.Update(2, 20, 0)
	if s.AveragePopulation != 11 {
		t.Errorf("AveragePopulation = %v, want 11", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 2 {
		t.Error("zero duration overwrote GenerationsPerSecond")
	}
	if s.PeakPopulation != 20 || s.TotalGenerations != 2 {
		t.Errorf("PeakPopulation=%d TotalGenerations=%d, want 20 and 2", s.PeakPopulation, s.TotalGenerations)
	}

	if !strings.HasPrefix(s.Summary(), "2 generations in ") {
		t.Errorf("Summary() = %q", s.Summary())
	}
}
