package optimizer

import (
	"fmt"
	"math"
)

// Weights is the fixed APS calibration vector. W1..W6 scale the positive
// terms (instructor ratings, block rating, holiday baseline), W7/W8 the
// student penalty terms.
type Weights struct {
	W1 float64 // perceived value
	W2 float64 // liking / engagement
	W3 float64 // study efficiency
	W4 float64 // attendance risk
	W5 float64 // time block rating
	W6 float64 // holiday baseline
	W7 float64 // travel time penalty
	W8 float64 // time commitment penalty
}

// DefaultWeights returns the calibrated vector. The positive terms sum
// close to, but not exactly, 1 (0.8086) by calibration.
func DefaultWeights() Weights {
	return Weights{
		W1: 0.1476, W2: 0.1456, W3: 0.1370, W4: 0.1356,
		W5: 0.1203, W6: 0.1225, W7: 0.0935, W8: 0.0979,
	}
}

// Validate checks that no weight is negative and that the full vector
// stays in the calibrated neighborhood of 1.
func (w Weights) Validate() error {
	for i, v := range []float64{w.W1, w.W2, w.W3, w.W4, w.W5, w.W6, w.W7, w.W8} {
		if v < 0 {
			return fmt.Errorf("weight w%d is negative: %f", i+1, v)
		}
	}
	sum := w.W1 + w.W2 + w.W3 + w.W4 + w.W5 + w.W6 + w.W7 + w.W8
	if math.Abs(sum-1.0) > 0.05 {
		return fmt.Errorf("weights sum to %.4f, expected about 1.0", sum)
	}
	return nil
}

// Configuration bundles the solve parameters.
type Configuration struct {
	// Weights is the APS calibration vector.
	Weights Weights
	// HolidayBaseline is the fixed holiday-skip risk term; it is not
	// sourced from the instructor record.
	HolidayBaseline float64
	// WeeksPerTerm projects weekly totals onto the semester.
	WeeksPerTerm int
	// SolverMaxIter and SolverTol are handed to the simplex solver.
	SolverMaxIter int
	SolverTol     float64
	// IntegralityTol decides when a relaxed variable counts as integral.
	IntegralityTol float64
	// PruneTol is the improvement margin required to keep exploring a
	// branch over the incumbent.
	PruneTol float64
	// MaxNodes caps the branch-and-bound search. The search keeps the
	// best incumbent found when the budget runs out.
	MaxNodes int
}

func NewDefaultConfiguration() *Configuration {
	return &Configuration{
		Weights:         DefaultWeights(),
		HolidayBaseline: 5.0,
		WeeksPerTerm:    20,
		SolverMaxIter:   4000,
		SolverTol:       1.0e-12,
		IntegralityTol:  1e-6,
		PruneTol:        1e-6,
		MaxNodes:        100000,
	}
}
