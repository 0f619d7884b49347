package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"awareness_backend/internal/domain"
	"awareness_backend/internal/model"
	"awareness_backend/internal/pipeline"
	"awareness_backend/internal/repository"
	"awareness_backend/internal/util"
	"awareness_backend/pkg/logger"
	"awareness_backend/pkg/monitoring"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("awareness_backend/service")

// Leaderboard 最佳成绩排行，Redis 不可用时为 nil
type Leaderboard interface {
	Record(ctx context.Context, domain, email, name string, percentage float64) error
	Top(ctx context.Context, domain string, limit int) ([]model.LeaderboardEntry, error)
	Ping(ctx context.Context) error
}

const (
	msgSaved    = "Assessment completed successfully with ML-based analysis!"
	msgNotSaved = "Assessment completed, but the result could not be saved."
	msgNoSink   = "Assessment completed. Result storage is not configured, so the result was not saved."
)

type AssessmentService struct {
	pipelines   map[string]*pipeline.Pipeline
	order       []string
	sink        repository.ResultSink
	leaderboard Leaderboard
}

// NewAssessmentService sink 与 leaderboard 均可为 nil
func NewAssessmentService(pipelines []*pipeline.Pipeline, sink repository.ResultSink, leaderboard Leaderboard) *AssessmentService {
	s := &AssessmentService{
		pipelines:   make(map[string]*pipeline.Pipeline, len(pipelines)),
		sink:        sink,
		leaderboard: leaderboard,
	}
	for _, p := range pipelines {
		slug := p.Catalog().Slug
		if _, ok := s.pipelines[slug]; !ok {
			s.order = append(s.order, slug)
		}
		s.pipelines[slug] = p
	}
	return s
}

func (s *AssessmentService) pipeline(slug string) (*pipeline.Pipeline, error) {
	cat, ok := domain.Lookup(slug)
	if !ok {
		return nil, fmt.Errorf("%q: %w", slug, util.ErrDomainNotFound)
	}
	p, ok := s.pipelines[cat.Slug]
	if !ok {
		return nil, fmt.Errorf("%q is not enabled: %w", cat.Slug, util.ErrDomainNotFound)
	}
	return p, nil
}

func (s *AssessmentService) ListDomains() []model.DomainSummary {
	out := make([]model.DomainSummary, 0, len(s.order))
	for _, slug := range s.order {
		p := s.pipelines[slug]
		cat := p.Catalog()
		out = append(out, model.DomainSummary{
			Slug:          cat.Slug,
			Name:          cat.Name,
			Category:      cat.Category,
			Description:   cat.Description,
			QuestionCount: p.AnswerSheet().Len(),
			Components:    p.Status(),
		})
	}
	return out
}

func (s *AssessmentService) Questions(slug string) ([]model.QuestionView, error) {
	p, err := s.pipeline(slug)
	if err != nil {
		return nil, err
	}
	questions := p.Questions()
	if len(questions) == 0 {
		return nil, util.ErrQuestionsUnavailable
	}
	return questions, nil
}

// Assess 运行评估流水线并尝试保存结果；保存失败只影响 saved_to_database 与 message
func (s *AssessmentService) Assess(ctx context.Context, slug string, sub *model.AssessmentSubmission) (*model.AssessmentResult, error) {
	p, err := s.pipeline(slug)
	if err != nil {
		return nil, err
	}

	result := p.Assess(ctx, sub)
	result.AssessmentID = model.GenerateUUID()

	log := logger.Log.With(zap.String("domain", result.Domain), zap.String("assessment_id", result.AssessmentID))

	saveFailed := false
	switch err := s.persist(ctx, result); {
	case err == nil:
		result.SavedToDatabase = true
		result.Message = msgSaved
	case errors.Is(err, util.ErrSinkUnavailable):
		result.Message = msgNoSink
	default:
		log.Warn("Failed to save assessment result", zap.Error(err))
		result.Message = msgNotSaved
		saveFailed = true
	}

	if s.leaderboard != nil && result.UserProfile.Email != "" {
		if err := s.leaderboard.Record(ctx, result.Domain, result.UserProfile.Email, result.UserProfile.Name, result.Percentage); err != nil {
			log.Warn("Failed to update leaderboard", zap.Error(err))
		}
	}

	monitoring.ObserveAssessment(result.Domain, result.OverallKnowledgeLevel, result.MLAwarenessLevel, saveFailed)
	log.Info("Assessment completed",
		zap.Int("total_score", result.TotalScore),
		zap.Int("max_score", result.MaxScore),
		zap.String("overall_level", result.OverallKnowledgeLevel),
		zap.String("awareness", result.MLAwarenessLevel),
		zap.Bool("saved", result.SavedToDatabase),
	)
	return result, nil
}

func (s *AssessmentService) persist(ctx context.Context, result *model.AssessmentResult) error {
	if s.sink == nil {
		return util.ErrSinkUnavailable
	}
	ctx, span := tracer.Start(ctx, "repository.save")
	defer span.End()
	span.SetAttributes(
		attribute.String("sink", s.sink.Name()),
		attribute.String("domain", result.Domain),
	)

	if err := s.sink.Save(ctx, model.NewAssessmentRecord(result)); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "save failed")
		return err
	}
	return nil
}

func (s *AssessmentService) Stats(ctx context.Context, slug string) (*model.AssessmentStats, error) {
	p, err := s.pipeline(slug)
	if err != nil {
		return nil, err
	}
	if s.sink == nil {
		return nil, util.ErrSinkUnavailable
	}
	return s.sink.Stats(ctx, p.Catalog().Slug)
}

// History 按时间顺序返回某人的作答记录及每次相对上一次的提升
func (s *AssessmentService) History(ctx context.Context, slug, email string) (*model.AssessmentHistory, error) {
	p, err := s.pipeline(slug)
	if err != nil {
		return nil, err
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, util.ErrEmailRequired
	}
	if s.sink == nil {
		return nil, util.ErrSinkUnavailable
	}

	records, err := s.sink.ListByEmail(ctx, p.Catalog().Slug, email)
	if err != nil {
		return nil, err
	}
	return buildHistory(email, records), nil
}

func buildHistory(email string, records []model.AssessmentRecord) *model.AssessmentHistory {
	h := &model.AssessmentHistory{
		Email:         email,
		TotalAttempts: len(records),
		Attempts:      make([]model.HistoryEntry, 0, len(records)),
	}
	if len(records) == 0 {
		h.Message = "No assessments found"
		return h
	}

	for i, r := range records {
		entry := model.HistoryEntry{
			AttemptNumber:  i + 1,
			AssessmentID:   r.ID,
			Score:          r.TotalScore,
			Percentage:     r.Percentage,
			KnowledgeLevel: r.OverallKnowledgeLevel,
			Awareness:      r.MLAwarenessLevel,
			CompletedAt:    r.Timestamp,
		}
		if i > 0 {
			entry.Improvement = pipeline.Round(r.Percentage-records[i-1].Percentage, 2)
		}
		h.Attempts = append(h.Attempts, entry)
	}

	first, latest := records[0].Percentage, records[len(records)-1].Percentage
	h.TotalImprovement = pipeline.Round(latest-first, 2)
	if first > 0 {
		h.ImprovementPercentage = pipeline.Round((latest-first)/first*100, 2)
	}
	h.Message = "History retrieved successfully"
	return h
}

func (s *AssessmentService) Leaderboard(ctx context.Context, slug string, limit int) ([]model.LeaderboardEntry, error) {
	p, err := s.pipeline(slug)
	if err != nil {
		return nil, err
	}
	if s.leaderboard == nil {
		return nil, util.ErrLeaderboardDisabled
	}
	return s.leaderboard.Top(ctx, p.Catalog().Slug, limit)
}

// Health 所有领域组件均加载且存储可达时为 healthy，否则 degraded
func (s *AssessmentService) Health(ctx context.Context) *model.HealthReport {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	report := &model.HealthReport{
		Status:    "healthy",
		Database:  util.SinkNone,
		Domains:   make(map[string]map[string]bool, len(s.pipelines)),
		Timestamp: time.Now().UTC(),
	}

	if s.sink != nil {
		report.Database = s.sink.Name()
		report.DatabaseConnected = s.sink.Ping(ctx) == nil
	}
	if s.leaderboard != nil {
		report.LeaderboardConnected = s.leaderboard.Ping(ctx) == nil
	}
	if !report.DatabaseConnected {
		report.Status = "degraded"
	}

	for _, slug := range s.order {
		status := s.pipelines[slug].Status()
		report.Domains[slug] = status
		for _, ok := range status {
			if !ok {
				report.Status = "degraded"
			}
		}
	}
	return report
}
