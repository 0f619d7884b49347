package repository

import (
	"context"

	"awareness_backend/internal/model"

	"gorm.io/gorm"
)

// AssessmentRepository 基于 gorm 的结果存储，支持 mysql / postgres / sqlite
type AssessmentRepository struct {
	DB     *gorm.DB
	driver string
}

func NewAssessmentRepository(db *gorm.DB, driver string) *AssessmentRepository {
	return &AssessmentRepository{DB: db, driver: driver}
}

func (r *AssessmentRepository) Name() string {
	return r.driver
}

func (r *AssessmentRepository) Save(ctx context.Context, rec *model.AssessmentRecord) error {
	return r.DB.WithContext(ctx).Create(rec).Error
}

func (r *AssessmentRepository) Stats(ctx context.Context, domain string) (*model.AssessmentStats, error) {
	query := r.DB.WithContext(ctx).Model(&model.AssessmentRecord{}).Where("domain = ?", domain)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var avg struct {
		Average float64
	}
	if err := r.DB.WithContext(ctx).Model(&model.AssessmentRecord{}).
		Select("COALESCE(AVG(percentage), 0) AS average").
		Where("domain = ?", domain).
		Scan(&avg).Error; err != nil {
		return nil, err
	}

	var rows []struct {
		Level string
		Count int64
	}
	if err := r.DB.WithContext(ctx).Model(&model.AssessmentRecord{}).
		Select("overall_knowledge_level AS level, COUNT(*) AS count").
		Where("domain = ?", domain).
		Group("overall_knowledge_level").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	dist := make(map[string]int64, len(rows))
	for _, row := range rows {
		dist[row.Level] = row.Count
	}
	return newStats(total, avg.Average, dist), nil
}

func (r *AssessmentRepository) ListByEmail(ctx context.Context, domain, email string) ([]model.AssessmentRecord, error) {
	var records []model.AssessmentRecord
	err := r.DB.WithContext(ctx).
		Where("domain = ? AND email = ?", domain, email).
		Order("timestamp asc").
		Find(&records).Error
	return records, err
}

func (r *AssessmentRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *AssessmentRepository) Close(context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
