package mlmodel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const KindLogisticRegression = "logistic_regression"

// LogisticRegression is a fitted linear classifier. Multiclass models carry
// one coefficient row per class; binary models may carry a single row for the
// positive (second) class.
type LogisticRegression struct {
	Kind      string       `json:"kind"`
	Classes   []ClassLabel `json:"classes"`
	Coef      [][]float64  `json:"coef"`
	Intercept []float64    `json:"intercept"`
}

func (m *LogisticRegression) Validate() error {
	if m.Kind != "" && m.Kind != KindLogisticRegression {
		return fmt.Errorf("unsupported model kind %q", m.Kind)
	}
	if len(m.Classes) < 2 {
		return fmt.Errorf("model needs at least two classes, has %d", len(m.Classes))
	}
	rows := len(m.Coef)
	binary := len(m.Classes) == 2 && rows == 1
	if !binary && rows != len(m.Classes) {
		return fmt.Errorf("coef rows %d do not match %d classes", rows, len(m.Classes))
	}
	if len(m.Intercept) != rows {
		return fmt.Errorf("intercept length %d does not match coef rows %d", len(m.Intercept), rows)
	}
	width := len(m.Coef[0])
	if width == 0 {
		return fmt.Errorf("model has no features")
	}
	for i, row := range m.Coef {
		if len(row) != width {
			return fmt.Errorf("coef row %d has %d features, want %d", i, len(row), width)
		}
	}
	return nil
}

func (m *LogisticRegression) NumFeatures() int {
	if len(m.Coef) == 0 {
		return 0
	}
	return len(m.Coef[0])
}

// weights packs the coefficient rows into a dense class x feature matrix.
func (m *LogisticRegression) weights() *mat.Dense {
	w := mat.NewDense(len(m.Coef), m.NumFeatures(), nil)
	for k, row := range m.Coef {
		w.SetRow(k, row)
	}
	return w
}

// PredictProba returns one probability per entry of Classes.
func (m *LogisticRegression) PredictProba(x []float64) ([]float64, error) {
	width := m.NumFeatures()
	if width == 0 || len(x) != width {
		return nil, fmt.Errorf("model expects %d features, got %d", width, len(x))
	}
	if len(m.Intercept) != len(m.Coef) {
		return nil, fmt.Errorf("intercept length %d does not match coef rows %d", len(m.Intercept), len(m.Coef))
	}

	scores := mat.NewVecDense(len(m.Coef), nil)
	scores.MulVec(m.weights(), mat.NewVecDense(width, x))
	scores.AddVec(scores, mat.NewVecDense(len(m.Intercept), m.Intercept))

	raw := scores.RawVector().Data
	if len(raw) == 1 {
		p := sigmoid(raw[0])
		return []float64{1 - p, p}, nil
	}
	return softmax(raw), nil
}

// Predict returns the most probable class together with the full
// probability vector.
func (m *LogisticRegression) Predict(x []float64) (ClassLabel, []float64, error) {
	proba, err := m.PredictProba(x)
	if err != nil {
		return ClassLabel{}, nil, err
	}
	return m.Classes[floats.MaxIdx(proba)], proba, nil
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func softmax(scores []float64) []float64 {
	lse := floats.LogSumExp(scores)
	out := make([]float64, len(scores))
	for i, s := range scores {
		out[i] = math.Exp(s - lse)
	}
	return out
}
