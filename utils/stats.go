package utils

import "time"

// Stats tracks animation progress for status display
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	Population           int
	Generation           int
	StartTime            time.Time

	history  []string // fingerprints of recent generations for cycle detection
	stagnant bool
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records the generation just shown and how long the previous frame took
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.Generation = generation
	s.Population = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Observe records the fingerprint of the generation just shown. A generation that
// repeats one of the previous three (still life or a short oscillator) is stagnant.
func (s *Stats) Observe(fingerprint string) {
	s.stagnant = false
	for _, h := range s.history[max(0, len(s.history)-3):] {
		if h == fingerprint {
			s.stagnant = true
			break
		}
	}

	s.history = append(s.history, fingerprint)
	// Keep only last 5 states to detect cycles
	if len(s.history) > 5 {
		s.history = s.history[1:]
	}
}

// Status describes the latest generation: Extinct, Stagnant or Active
func (s *Stats) Status() string {
	switch {
	case s.Population == 0:
		return "Extinct"
	case s.stagnant:
		return "Stagnant"
	default:
		return "Active"
	}
}

// Runtime returns the time since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
