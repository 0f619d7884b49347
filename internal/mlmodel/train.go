package mlmodel

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
)

type TrainOptions struct {
	// C is the inverse L2 regularisation strength.
	C float64
	// MaxIter bounds the LBFGS major iterations.
	MaxIter int
	// Tol stops the fit once the gradient norm falls below it.
	Tol float64
}

func DefaultTrainOptions() TrainOptions {
	return TrainOptions{C: 1.0, MaxIter: 1000, Tol: 1e-6}
}

func denseRows(X [][]float64) (*mat.Dense, error) {
	if len(X) == 0 {
		return nil, fmt.Errorf("no samples")
	}
	width := len(X[0])
	if width == 0 {
		return nil, fmt.Errorf("samples have no features")
	}
	m := mat.NewDense(len(X), width, nil)
	for i, row := range X {
		if len(row) != width {
			return nil, fmt.Errorf("ragged feature matrix")
		}
		m.SetRow(i, row)
	}
	return m, nil
}

// FitScaler computes per-column mean and population standard deviation.
// Constant columns get a scale of 1.
func FitScaler(X [][]float64) (*StandardScaler, error) {
	m, err := denseRows(X)
	if err != nil {
		return nil, err
	}
	n, width := m.Dims()
	s := &StandardScaler{Mean: make([]float64, width), Scale: make([]float64, width)}
	col := make([]float64, n)
	for j := 0; j < width; j++ {
		mat.Col(col, j, m)
		mean, std := stat.PopMeanStdDev(col, nil)
		s.Mean[j] = mean
		s.Scale[j] = std
		if std == 0 {
			s.Scale[j] = 1
		}
	}
	return s, nil
}

// FitLogisticRegression fits an L2-regularised multinomial logistic
// regression with LBFGS. Classes are ordered the same way scikit-learn orders
// them, and intercepts are not penalised.
func FitLogisticRegression(X [][]float64, y []ClassLabel, opts TrainOptions) (*LogisticRegression, error) {
	if len(X) == 0 || len(X) != len(y) {
		return nil, fmt.Errorf("need matching non-empty samples and targets (%d, %d)", len(X), len(y))
	}
	if opts.C <= 0 {
		opts.C = 1
	}
	classes := uniqueClasses(y)
	if len(classes) < 2 {
		return nil, fmt.Errorf("cannot train with a single class %q", classes[0])
	}
	index := make(map[ClassLabel]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}

	features, err := denseRows(X)
	if err != nil {
		return nil, err
	}
	n, width := features.Dims()
	k, cols := len(classes), width+1

	// 设计矩阵末列为常数 1，对应截距
	design := mat.NewDense(n, cols, nil)
	design.Slice(0, n, 0, width).(*mat.Dense).Copy(features)
	target := make([]int, n)
	for i := range target {
		design.Set(i, width, 1)
		target[i] = index[y[i]]
	}

	lambda := 1 / (opts.C * float64(n))
	scores := mat.NewDense(n, k, nil)
	resid := mat.NewDense(n, k, nil)

	// 参数按类别分行：width 个系数后接一个截距
	forward := func(params []float64) float64 {
		w := mat.NewDense(k, cols, params)
		scores.Mul(design, w.T())
		var loss float64
		for i := 0; i < n; i++ {
			row := scores.RawRowView(i)
			lse := floats.LogSumExp(row)
			loss += lse - row[target[i]]
			r := resid.RawRowView(i)
			for c, s := range row {
				r[c] = math.Exp(s - lse)
			}
			r[target[i]] -= 1
		}
		var penalty float64
		for c := 0; c < k; c++ {
			coef := params[c*cols : c*cols+width]
			penalty += floats.Dot(coef, coef)
		}
		return loss/float64(n) + 0.5*lambda*penalty
	}

	problem := optimize.Problem{
		Func: forward,
		Grad: func(grad, params []float64) {
			forward(params)
			g := mat.NewDense(k, cols, grad)
			g.Mul(resid.T(), design)
			g.Scale(1/float64(n), g)
			for c := 0; c < k; c++ {
				floats.AddScaled(grad[c*cols:c*cols+width], lambda, params[c*cols:c*cols+width])
			}
		},
	}
	settings := &optimize.Settings{
		GradientThreshold: opts.Tol,
		MajorIterations:   opts.MaxIter,
	}
	result, err := optimize.Minimize(problem, make([]float64, k*cols), settings, &optimize.LBFGS{})
	if result == nil {
		return nil, fmt.Errorf("fit logistic regression: %w", err)
	}
	// 最优点附近线搜索可能提前报错，此时保留已找到的最优位置
	if math.IsNaN(result.F) || math.IsInf(result.F, 0) || floats.HasNaN(result.X) {
		return nil, fmt.Errorf("fit logistic regression diverged: status %v: %v", result.Status, err)
	}

	m := &LogisticRegression{
		Kind:      KindLogisticRegression,
		Classes:   classes,
		Coef:      make([][]float64, k),
		Intercept: make([]float64, k),
	}
	for c := 0; c < k; c++ {
		row := result.X[c*cols : (c+1)*cols]
		m.Coef[c] = append([]float64(nil), row[:width]...)
		m.Intercept[c] = row[width]
	}
	return m, nil
}

// Accuracy is the share of rows whose predicted class equals the target.
func Accuracy(m *LogisticRegression, X [][]float64, y []ClassLabel) float64 {
	if len(X) == 0 {
		return 0
	}
	hits := 0
	for i, row := range X {
		got, _, err := m.Predict(row)
		if err == nil && got == y[i] {
			hits++
		}
	}
	return float64(hits) / float64(len(X))
}

func uniqueClasses(y []ClassLabel) []ClassLabel {
	seen := make(map[ClassLabel]bool)
	var out []ClassLabel
	for _, l := range y {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
