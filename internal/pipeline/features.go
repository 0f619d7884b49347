package pipeline

import (
	"errors"
	"strings"

	"awareness_backend/internal/mlmodel"
)

var (
	ErrFeaturesUnavailable = errors.New("feature names not loaded")
	ErrModelUnavailable    = errors.New("model not loaded")
)

// FeatureEncoder 将答案序列编码为与训练时列顺序一致的 one-hot 向量
type FeatureEncoder struct {
	names   []string
	index   map[string]int
	offsets []int
}

// NewFeatureEncoder uses the configured offsets when they all occur in the
// feature names, otherwise derives them from the names.
func NewFeatureEncoder(names []string, offsets []int) *FeatureEncoder {
	index := make(map[string]int, len(names))
	for i, n := range names {
		if _, ok := index[n]; !ok {
			index[n] = i
		}
	}
	if len(offsets) == 0 || !mlmodel.OffsetsMatch(names, offsets) {
		offsets = mlmodel.DeriveOffsets(names)
	}
	return &FeatureEncoder{names: names, index: index, offsets: offsets}
}

func (e *FeatureEncoder) Width() int {
	if e == nil {
		return 0
	}
	return len(e.names)
}

func (e *FeatureEncoder) Offsets() []int {
	return append([]int(nil), e.offsets...)
}

// Encode sets one slot per answer: the exact column when present, otherwise
// the first column containing both the question prefix and the option text.
// Answers beyond the offset table are ignored.
func (e *FeatureEncoder) Encode(options []string) ([]float64, error) {
	if e == nil || len(e.names) == 0 {
		return nil, ErrFeaturesUnavailable
	}
	vec := make([]float64, len(e.names))
	for i, opt := range options {
		if i >= len(e.offsets) {
			break
		}
		if opt == "" {
			continue
		}
		offset := e.offsets[i]
		if slot, ok := e.index[mlmodel.ColumnName(offset, opt)]; ok {
			vec[slot] = 1
			continue
		}
		prefix := mlmodel.ColumnPrefix(offset)
		for slot, name := range e.names {
			if strings.Contains(name, prefix) && strings.Contains(name, opt) {
				vec[slot] = 1
				break
			}
		}
	}
	return vec, nil
}
