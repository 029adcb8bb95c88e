package utils

import (
	"fmt"
	"time"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	PeakPopulation       int
	TotalGenerations     int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one generation's population and how long it took to produce
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}
	s.PeakPopulation = max(s.PeakPopulation, population)

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Summary formats the run totals on one line
func (s *Stats) Summary() string {
	return fmt.Sprintf("%d generations in %.1fs | Avg Pop: %.1f | Peak Pop: %d",
		s.TotalGenerations, time.Since(s.StartTime).Seconds(), s.AveragePopulation, s.PeakPopulation)
}
