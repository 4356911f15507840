package strength

import "math"

const (
	formulaIntercept = 1.0278
	formulaSlope     = 0.0278

	// MaxReps is the highest rep count the formula is defined for.
	MaxReps = 36
)

// Set is one performed weight x reps pair.
type Set struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

// EstimateOneRepMax returns weight / (1.0278 - 0.0278 * reps).
func EstimateOneRepMax(weight float64, reps int) (float64, error) {
	if reps < 1 {
		return 0, ErrInvalidReps
	}
	if reps > MaxReps {
		return 0, ErrDivisionSingularity
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return 0, ErrInvalidWeight
	}
	return weight / (formulaIntercept - formulaSlope*float64(reps)), nil
}

// EstimateSets estimates every set, one value per set, in order.
func EstimateSets(sets []Set) ([]float64, error) {
	estimates := make([]float64, 0, len(sets))
	for i, s := range sets {
		e, err := EstimateOneRepMax(s.Weight, s.Reps)
		if err != nil {
			return nil, &SetError{Index: i, Weight: s.Weight, Reps: s.Reps, Err: err}
		}
		estimates = append(estimates, e)
	}
	return estimates, nil
}

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
