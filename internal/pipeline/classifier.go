package pipeline

import (
	"context"
	"fmt"

	"awareness_backend/internal/mlmodel"
	"awareness_backend/internal/model"
	"awareness_backend/pkg/logger"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Classifier is a trained model returning the predicted class and the
// probability of every class.
type Classifier interface {
	Predict(x []float64) (mlmodel.ClassLabel, []float64, error)
}

type Scaler interface {
	Transform(x []float64) ([]float64, error)
}

var namedAwareness = map[string]string{
	"Beginner":     model.AwarenessLow,
	"Basic":        model.AwarenessLow,
	"Intermediate": model.AwarenessModerate,
	"Advanced":     model.AwarenessHigh,
	"Expert":       model.AwarenessHigh,
}

var codedAwareness = map[int]string{
	0: model.AwarenessLow,
	1: model.AwarenessModerate,
	2: model.AwarenessHigh,
}

// MapAwareness 将模型输出的原始类别映射为三级意识标签，无法识别时为 Unknown
func MapAwareness(label mlmodel.ClassLabel) string {
	if label.Numeric {
		if v, ok := codedAwareness[label.Code]; ok {
			return v
		}
		return model.AwarenessUnknown
	}
	if v, ok := namedAwareness[label.Name]; ok {
		return v
	}
	return model.AwarenessUnknown
}

// AwarenessClassifier 封装特征编码、标准化与分类，任何失败都降级为 ("Unknown", 0)
type AwarenessClassifier struct {
	model   Classifier
	scaler  Scaler
	encoder *FeatureEncoder
}

func NewAwarenessClassifier(m Classifier, s Scaler, encoder *FeatureEncoder) *AwarenessClassifier {
	return &AwarenessClassifier{model: m, scaler: s, encoder: encoder}
}

// Predict never fails; errors and panics degrade to ("Unknown", 0).
func (a *AwarenessClassifier) Predict(ctx context.Context, answers []model.UserAnswer, profile model.UserProfile) (label string, confidence float64) {
	_, span := tracer.Start(ctx, "pipeline.predict")
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			logger.Log.Error("awareness prediction panicked", zap.Any("panic", r))
			label, confidence = model.AwarenessUnknown, 0
		}
		span.SetAttributes(attribute.String("awareness.label", label))
	}()

	label, confidence, err := a.predict(answers)
	if err != nil {
		logger.Log.Warn("awareness prediction unavailable",
			zap.Error(err),
			zap.String("email", profile.Email))
		return model.AwarenessUnknown, 0
	}
	return label, confidence
}

func (a *AwarenessClassifier) predict(answers []model.UserAnswer) (string, float64, error) {
	if a == nil || a.model == nil || a.scaler == nil {
		return "", 0, ErrModelUnavailable
	}
	options := make([]string, len(answers))
	for i, ans := range answers {
		options[i] = ans.SelectedOption
	}
	features, err := a.encoder.Encode(options)
	if err != nil {
		return "", 0, err
	}
	scaled, err := a.scaler.Transform(features)
	if err != nil {
		return "", 0, fmt.Errorf("scale features: %w", err)
	}
	raw, proba, err := a.model.Predict(scaled)
	if err != nil {
		return "", 0, fmt.Errorf("classify: %w", err)
	}
	confidence := 0.0
	for _, p := range proba {
		if p > confidence {
			confidence = p
		}
	}
	logger.Log.Debug("awareness predicted",
		zap.String("raw_class", raw.String()),
		zap.Float64("confidence", confidence))
	return MapAwareness(raw), confidence, nil
}

// Ready reports which of the model, scaler and feature names are loaded.
func (a *AwarenessClassifier) Ready() (modelLoaded, scalerLoaded, featuresLoaded bool) {
	if a == nil {
		return false, false, false
	}
	return a.model != nil, a.scaler != nil, a.encoder.Width() > 0
}
