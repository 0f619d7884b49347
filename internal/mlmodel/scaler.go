package mlmodel

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// StandardScaler removes the mean and scales to unit variance using
// statistics fitted offline.
type StandardScaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

func (s *StandardScaler) Validate() error {
	if len(s.Mean) == 0 {
		return fmt.Errorf("scaler has no features")
	}
	if len(s.Mean) != len(s.Scale) {
		return fmt.Errorf("scaler mean/scale length mismatch: %d != %d", len(s.Mean), len(s.Scale))
	}
	return nil
}

// Transform returns (x - mean) / scale. A zero scale leaves the centred value
// unscaled.
func (s *StandardScaler) Transform(x []float64) ([]float64, error) {
	if len(x) != len(s.Mean) || len(s.Scale) != len(s.Mean) {
		return nil, fmt.Errorf("scaler expects %d features, got %d", len(s.Mean), len(x))
	}
	out := make([]float64, len(x))
	floats.SubTo(out, x, s.Mean)

	scale := make([]float64, len(s.Scale))
	for i, v := range s.Scale {
		scale[i] = v
		if v == 0 {
			scale[i] = 1
		}
	}
	floats.Div(out, scale)
	return out, nil
}
