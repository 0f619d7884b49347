package pipeline

import (
	"context"
	"time"

	"awareness_backend/internal/domain"
	"awareness_backend/internal/model"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("awareness_backend/pipeline")

// Artifacts 流水线启动时加载的只读数据；缺失的部分保持为 nil
type Artifacts struct {
	AnswerSheet    *AnswerSheet
	Explanations   *ExplanationBank
	Model          Classifier
	Scaler         Scaler
	FeatureNames   []string
	FeatureOffsets []int
}

// Pipeline 单个评估领域的评分、解释、预测与推荐流程，构造后不可变
type Pipeline struct {
	catalog    *domain.Catalog
	sheet      *AnswerSheet
	bank       *ExplanationBank
	classifier *AwarenessClassifier
}

func New(cat *domain.Catalog, a Artifacts) *Pipeline {
	sheet := a.AnswerSheet
	if sheet == nil {
		sheet = emptyAnswerSheet()
	}
	bank := a.Explanations
	if bank == nil {
		bank = NewExplanationBank(nil, cat.FallbackExplanation)
	}
	var encoder *FeatureEncoder
	if len(a.FeatureNames) > 0 {
		encoder = NewFeatureEncoder(a.FeatureNames, a.FeatureOffsets)
	}
	return &Pipeline{
		catalog:    cat,
		sheet:      sheet,
		bank:       bank,
		classifier: NewAwarenessClassifier(a.Model, a.Scaler, encoder),
	}
}

func (p *Pipeline) Catalog() *domain.Catalog {
	return p.catalog
}

func (p *Pipeline) AnswerSheet() *AnswerSheet {
	return p.sheet
}

func (p *Pipeline) Explanations() *ExplanationBank {
	return p.bank
}

// Questions 题库视图，题库未加载时为空
func (p *Pipeline) Questions() []model.QuestionView {
	return p.sheet.Questions(p.catalog.Category)
}

// Status reports which artifacts are loaded.
func (p *Pipeline) Status() map[string]bool {
	modelLoaded, scalerLoaded, featuresLoaded := p.classifier.Ready()
	return map[string]bool{
		"model_loaded":            modelLoaded,
		"scaler_loaded":           scalerLoaded,
		"feature_names_loaded":    featuresLoaded,
		"answer_sheet_loaded":     p.sheet.Len() > 0,
		"questions_loaded":        p.sheet.Len() > 0,
		"explanation_bank_loaded": p.bank.Len() > 0,
	}
}

// Assess scores a validated submission. The rule-based score is independent
// of the classifier, which only ever degrades to "Unknown".
func (p *Pipeline) Assess(ctx context.Context, sub *model.AssessmentSubmission) *model.AssessmentResult {
	ctx, span := tracer.Start(ctx, "pipeline.assess")
	defer span.End()

	profile := sub.UserProfile.WithDefaults()

	total, maxTotal := 0, 0
	feedback := make([]model.QuestionFeedback, 0, len(sub.Answers))
	for _, ans := range sub.Answers {
		score, level := p.sheet.Score(ans.QuestionText, ans.SelectedOption)
		questionMax := p.sheet.MaxScore(ans.QuestionText)
		total += score
		maxTotal += questionMax

		feedback = append(feedback, model.QuestionFeedback{
			QuestionID:        ans.QuestionID,
			QuestionText:      ans.QuestionText,
			SelectedOption:    ans.SelectedOption,
			Score:             score,
			MaxScore:          questionMax,
			Level:             level,
			Explanation:       p.bank.Explain(ans.QuestionID, OptionLabel(ans.SelectedOptionIndex), profile),
			EnhancementAdvice: p.catalog.AdviceFor(level),
		})
	}

	percentage := Percentage(total, maxTotal)
	awareness, confidence := p.classifier.Predict(ctx, sub.Answers, profile)

	var recommendations []string
	if awareness != model.AwarenessUnknown {
		recommendations = Recommend(p.catalog, awareness, confidence, profile)
	}

	span.SetAttributes(
		attribute.String("assessment.domain", p.catalog.Slug),
		attribute.Int("assessment.answers", len(sub.Answers)),
		attribute.Float64("assessment.percentage", percentage),
	)

	return &model.AssessmentResult{
		Timestamp:             time.Now().UTC(),
		Domain:                p.catalog.Slug,
		Category:              p.catalog.Category,
		UserProfile:           sub.UserProfile,
		TotalScore:            total,
		MaxScore:              maxTotal,
		Percentage:            Round(percentage, 2),
		OverallKnowledgeLevel: OverallLevel(percentage),
		DetailedFeedback:      feedback,
		MLAwarenessLevel:      awareness,
		MLConfidence:          Round(confidence, 4),
		MLRecommendations:     recommendations,
		LearningPath:          BuildLearningPath(p.catalog, feedback),
	}
}
