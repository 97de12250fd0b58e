package services

import (
	"errors"
	"fmt"

	"gpu-benchmark-scraper/models"
)

// ErrZeroPrice is returned for a card whose price is exactly zero.
var ErrZeroPrice = errors.New("value score: division by zero price")

// ValueScore is benchmark points per unit of price.
func ValueScore(s models.Sample) (float64, error) {
	if s.Price == 0 {
		return 0, fmt.Errorf("%w: %q", ErrZeroPrice, s.Name)
	}
	return s.Benchmark / s.Price, nil
}

// ScoreAll computes the value score of every sample, in order. The first
// zero price aborts the whole computation.
func ScoreAll(samples []models.Sample) ([]models.ScoredGPU, error) {
	scored := make([]models.ScoredGPU, 0, len(samples))
	for _, s := range samples {
		v, err := ValueScore(s)
		if err != nil {
			return nil, err
		}
		scored = append(scored, models.ScoredGPU{Sample: s, ValueScore: v})
	}
	return scored, nil
}
