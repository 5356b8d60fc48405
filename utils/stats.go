package utils

import "time"

// populationSmoothing is the weight given to the newest population sample
const populationSmoothing = 0.1

// Stats tracks simulation throughput and a smoothed population
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Record folds in one published generation and the time it took to arrive.
// The first sample seeds the average directly.
func (s *Stats) Record(frame, population int, elapsed time.Duration) {
	s.TotalGenerations = frame
	if elapsed > 0 {
		s.GenerationsPerSecond = float64(time.Second) / float64(elapsed)
	}

	sample := float64(population)
	if s.AveragePopulation == 0 {
		s.AveragePopulation = sample
		return
	}
	s.AveragePopulation += populationSmoothing * (sample - s.AveragePopulation)
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
