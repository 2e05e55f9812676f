// Package statistics aggregates per-hand results from simulation runs.
package statistics

import (
	"fmt"
	"math"
)

// HandResult is the outcome of a single simulated hand.
type HandResult struct {
	Seed     int64 // RNG seed for this hand, kept for replay
	Pot      int   // chips pushed to winners
	Winners  int   // seats that took a share of some pot
	Actions  int   // manual decisions taken
	Showdown bool  // whether the hand reached a showdown
}

// Statistics accumulates hand results. Pot moments use Welford's online
// update so arbitrarily long runs need no sample buffer, and two partial
// runs combine exactly with Merge.
type Statistics struct {
	Hands     int
	Showdowns int
	SplitPots int // hands whose pots were shared between seats
	MaxPot    int

	actions int
	potMean float64
	potM2   float64
}

// Add incorporates one hand result.
func (s *Statistics) Add(result HandResult) {
	s.Hands++
	if result.Showdown {
		s.Showdowns++
	}
	if result.Winners > 1 {
		s.SplitPots++
	}
	if result.Pot > s.MaxPot {
		s.MaxPot = result.Pot
	}
	s.actions += result.Actions

	x := float64(result.Pot)
	delta := x - s.potMean
	s.potMean += delta / float64(s.Hands)
	s.potM2 += delta * (x - s.potMean)
}

// Merge folds another accumulator into this one. The pot moments combine
// with the parallel form of Welford's update, so merging per-worker
// statistics matches a single sequential pass.
func (s *Statistics) Merge(other *Statistics) {
	if other.Hands == 0 {
		return
	}
	if s.Hands == 0 {
		*s = *other
		return
	}

	n1, n2 := float64(s.Hands), float64(other.Hands)
	total := n1 + n2
	delta := other.potMean - s.potMean
	s.potM2 += other.potM2 + delta*delta*n1*n2/total
	s.potMean += delta * n2 / total

	s.Hands += other.Hands
	s.Showdowns += other.Showdowns
	s.SplitPots += other.SplitPots
	if other.MaxPot > s.MaxPot {
		s.MaxPot = other.MaxPot
	}
	s.actions += other.actions
}

// Mean returns the mean pot size in chips.
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.potMean
}

// Variance returns the sample variance of pot sizes.
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	return s.potM2 / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation of pot sizes.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean pot size.
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
// pot size.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// ShowdownRate returns the fraction of hands that reached a showdown.
func (s *Statistics) ShowdownRate() float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(s.Showdowns) / float64(s.Hands)
}

// ActionsPerHand returns the mean number of manual decisions per hand.
func (s *Statistics) ActionsPerHand() float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(s.actions) / float64(s.Hands)
}

// Validate checks the accumulated counters for consistency.
func (s *Statistics) Validate() error {
	if s.Hands <= 0 {
		return fmt.Errorf("no hands recorded")
	}
	if s.Showdowns > s.Hands {
		return fmt.Errorf("showdowns (%d) exceed hands (%d)", s.Showdowns, s.Hands)
	}
	if s.SplitPots > s.Hands {
		return fmt.Errorf("split pots (%d) exceed hands (%d)", s.SplitPots, s.Hands)
	}
	if s.potM2 < 0 {
		return fmt.Errorf("negative pot variance accumulator: %f", s.potM2)
	}
	return nil
}
