package repository

import (
	"context"
	"math"

	"awareness_backend/internal/model"
)

// ResultSink 评估结果的追加式存储，每次评估写入一条新记录，不做更新
type ResultSink interface {
	Name() string
	Save(ctx context.Context, rec *model.AssessmentRecord) error
	Stats(ctx context.Context, domain string) (*model.AssessmentStats, error)
	ListByEmail(ctx context.Context, domain, email string) ([]model.AssessmentRecord, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func newStats(total int64, avg float64, dist map[string]int64) *model.AssessmentStats {
	if dist == nil {
		dist = map[string]int64{}
	}
	stats := &model.AssessmentStats{
		TotalAssessments:  total,
		AverageScore:      round2(avg),
		LevelDistribution: dist,
		Message:           "Statistics retrieved successfully",
	}
	if total == 0 {
		stats.AverageScore = 0
		stats.Message = "No assessments found"
	}
	return stats
}

// statsFromRecords 内存统计，供不支持聚合查询的存储使用
func statsFromRecords(records []model.AssessmentRecord) *model.AssessmentStats {
	dist := map[string]int64{}
	sum := 0.0
	for _, r := range records {
		sum += r.Percentage
		dist[r.OverallKnowledgeLevel]++
	}
	avg := 0.0
	if len(records) > 0 {
		avg = sum / float64(len(records))
	}
	return newStats(int64(len(records)), avg, dist)
}
