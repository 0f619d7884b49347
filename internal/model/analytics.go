package model

import "time"

// swagger:model AssessmentStats
type AssessmentStats struct {
	TotalAssessments  int64            `json:"total_assessments"`
	AverageScore      float64          `json:"average_score"`
	LevelDistribution map[string]int64 `json:"level_distribution"`
	Message           string           `json:"message"`
}

// swagger:model HistoryEntry
type HistoryEntry struct {
	AttemptNumber  int       `json:"attempt_number"`
	AssessmentID   string    `json:"assessment_id"`
	Score          int       `json:"score"`
	Percentage     float64   `json:"percentage"`
	KnowledgeLevel string    `json:"knowledge_level"`
	Awareness      string    `json:"awareness_level"`
	Improvement    float64   `json:"improvement"`
	CompletedAt    time.Time `json:"completed_at"`
}

// swagger:model AssessmentHistory
type AssessmentHistory struct {
	Email                 string         `json:"email"`
	TotalAttempts         int            `json:"total_attempts"`
	Attempts              []HistoryEntry `json:"attempts"`
	TotalImprovement      float64        `json:"total_improvement"`
	ImprovementPercentage float64        `json:"improvement_percentage"`
	Message               string         `json:"message"`
}

// swagger:model DomainSummary
type DomainSummary struct {
	Slug          string          `json:"slug"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	QuestionCount int             `json:"question_count"`
	Components    map[string]bool `json:"components"`
}

// swagger:model HealthReport
type HealthReport struct {
	Status               string                     `json:"status"`
	Database             string                     `json:"database"`
	DatabaseConnected    bool                       `json:"database_connected"`
	LeaderboardConnected bool                       `json:"leaderboard_connected"`
	Domains              map[string]map[string]bool `json:"domains"`
	Timestamp            time.Time                  `json:"timestamp"`
}

// swagger:model LeaderboardEntry
type LeaderboardEntry struct {
	Rank         int     `json:"rank"`
	RespondentID string  `json:"respondent_id"`
	Name         string  `json:"name"`
	BestScore    float64 `json:"best_score"`
}
