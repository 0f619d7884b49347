package model

import "time"

// swagger:model UserAnswer
type UserAnswer struct {
	QuestionID          string `json:"question_id" binding:"required"`
	QuestionText        string `json:"question_text" binding:"required"`
	SelectedOption      string `json:"selected_option" binding:"required"`
	SelectedOptionIndex int    `json:"selected_option_index" binding:"min=0,max=25"`
}

// swagger:model AssessmentSubmission
type AssessmentSubmission struct {
	UserProfile UserProfile  `json:"user_profile" binding:"required"`
	Answers     []UserAnswer `json:"answers" binding:"required,min=1,dive"`
}

// swagger:model QuestionFeedback
type QuestionFeedback struct {
	QuestionID        string `json:"question_id"`
	QuestionText      string `json:"question_text"`
	SelectedOption    string `json:"selected_option"`
	Score             int    `json:"score"`
	MaxScore          int    `json:"max_score"`
	Level             string `json:"level"`
	Explanation       string `json:"explanation"`
	EnhancementAdvice string `json:"enhancement_advice"`
}

// swagger:model LearningPathItem
type LearningPathItem struct {
	QuestionID   string   `json:"question_id"`
	Topic        string   `json:"topic"`
	CurrentLevel string   `json:"current_level"`
	TargetLevel  string   `json:"target_level"`
	Resources    []string `json:"resources"`
	Priority     string   `json:"priority"`
}

// swagger:model AssessmentResult
type AssessmentResult struct {
	AssessmentID          string             `json:"assessment_id"`
	Timestamp             time.Time          `json:"timestamp"`
	Domain                string             `json:"domain"`
	Category              string             `json:"category"`
	UserProfile           UserProfile        `json:"user_profile"`
	TotalScore            int                `json:"total_score"`
	MaxScore              int                `json:"max_score"`
	Percentage            float64            `json:"percentage"`
	OverallKnowledgeLevel string             `json:"overall_knowledge_level"`
	DetailedFeedback      []QuestionFeedback `json:"detailed_feedback"`
	MLAwarenessLevel      string             `json:"ml_awareness_level"`
	MLConfidence          float64            `json:"ml_confidence"`
	MLRecommendations     []string           `json:"ml_recommendations"`
	LearningPath          []LearningPathItem `json:"learning_path"`
	SavedToDatabase       bool               `json:"saved_to_database"`
	Message               string             `json:"message"`
}

// Overall knowledge levels.
const (
	LevelAdvanced     = "Advanced"
	LevelIntermediate = "Intermediate"
	LevelBasic        = "Basic"
	LevelBeginner     = "Beginner"
)

// Awareness labels predicted by the classifier.
const (
	AwarenessLow      = "Low Awareness"
	AwarenessModerate = "Moderate Awareness"
	AwarenessHigh     = "High Awareness"
	AwarenessUnknown  = "Unknown"
)
