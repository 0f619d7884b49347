package pipeline

import (
	"context"
	"io"
	"os"

	"awareness_backend/internal/domain"
	"awareness_backend/internal/mlmodel"
	"awareness_backend/pkg/logger"

	"go.uber.org/zap"
)

// Opener 读取静态数据与模型文件，本地目录与对象存储均实现该接口
type Opener interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

type fileOpener struct{}

func (fileOpener) Open(_ context.Context, name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// FileOpener opens artifact names as local paths.
var FileOpener Opener = fileOpener{}

// Sources 一个领域的数据与模型文件位置，空字符串表示未配置
type Sources struct {
	AnswerSheet     string
	ExplanationBank string
	Model           string
	Scaler          string
	FeatureNames    string
	FeatureOffsets  []int
}

// Load reads every artifact of a domain. Each failure is logged and leaves the
// corresponding component unloaded; Load itself never fails.
func Load(ctx context.Context, cat *domain.Catalog, opener Opener, src Sources) *Pipeline {
	if opener == nil {
		opener = FileOpener
	}
	log := logger.Log.With(zap.String("domain", cat.Slug))
	a := Artifacts{FeatureOffsets: src.FeatureOffsets}

	read := func(kind, name string, decode func(io.Reader) error) bool {
		if name == "" {
			log.Warn(kind+" not configured", zap.String("artifact", kind))
			return false
		}
		rc, err := opener.Open(ctx, name)
		if err != nil {
			log.Warn(kind+" unavailable", zap.String("path", name), zap.Error(err))
			return false
		}
		defer rc.Close()
		if err := decode(rc); err != nil {
			log.Warn(kind+" could not be decoded", zap.String("path", name), zap.Error(err))
			return false
		}
		log.Info(kind+" loaded", zap.String("path", name))
		return true
	}

	read("answer sheet", src.AnswerSheet, func(r io.Reader) error {
		sheet, err := ParseAnswerSheet(r)
		a.AnswerSheet = sheet
		return err
	})
	read("explanation bank", src.ExplanationBank, func(r io.Reader) error {
		bank, err := ParseExplanationBank(r, cat.FallbackExplanation)
		a.Explanations = bank
		return err
	})
	read("model", src.Model, func(r io.Reader) error {
		m, err := mlmodel.DecodeClassifier(r)
		if err == nil {
			a.Model = m
		}
		return err
	})
	read("scaler", src.Scaler, func(r io.Reader) error {
		s, err := mlmodel.DecodeScaler(r)
		if err == nil {
			a.Scaler = s
		}
		return err
	})
	read("feature names", src.FeatureNames, func(r io.Reader) error {
		names, err := mlmodel.DecodeFeatureNames(r)
		a.FeatureNames = names
		return err
	})

	if len(a.FeatureNames) > 0 && len(a.FeatureOffsets) > 0 && !mlmodel.OffsetsMatch(a.FeatureNames, a.FeatureOffsets) {
		log.Warn("configured feature offsets do not match feature names, deriving from names",
			zap.Ints("configured", a.FeatureOffsets),
			zap.Ints("derived", mlmodel.DeriveOffsets(a.FeatureNames)))
	}

	p := New(cat, a)
	log.Info("pipeline ready", zap.Any("status", p.Status()))
	return p
}
