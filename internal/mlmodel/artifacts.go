package mlmodel

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Artifact file names written by the trainer.
const (
	ModelFile        = "model.json"
	ScalerFile       = "scaler.json"
	FeatureNamesFile = "feature_names.json"
)

func DecodeClassifier(r io.Reader) (*LogisticRegression, error) {
	var m LogisticRegression
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func DecodeScaler(r io.Reader) (*StandardScaler, error) {
	var s StandardScaler
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode scaler: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func DecodeFeatureNames(r io.Reader) ([]string, error) {
	var names []string
	if err := json.NewDecoder(r).Decode(&names); err != nil {
		return nil, fmt.Errorf("decode feature names: %w", err)
	}
	return names, nil
}

// SaveArtifacts writes model, scaler and feature names into dir.
func SaveArtifacts(dir string, m *LogisticRegression, s *StandardScaler, featureNames []string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	files := map[string]interface{}{
		ModelFile:        m,
		ScalerFile:       s,
		FeatureNamesFile: featureNames,
	}
	for name, v := range files {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
			return err
		}
	}
	return nil
}
