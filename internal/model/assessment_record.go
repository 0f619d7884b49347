package model

import "time"

// AssessmentRecord 持久化的评估结果，写入后不再修改
type AssessmentRecord struct {
	UUIDBase              `bson:",inline"`
	Domain                string    `gorm:"size:64;index" json:"domain" bson:"domain"`
	Timestamp             time.Time `gorm:"index" json:"timestamp" bson:"timestamp"`
	Email                 string    `gorm:"size:255;index" json:"email" bson:"email"`
	Name                  string    `gorm:"size:255" json:"name" bson:"name"`
	Organization          string    `gorm:"size:255" json:"organization,omitempty" bson:"organization,omitempty"`
	Gender                string    `gorm:"size:32" json:"gender" bson:"gender"`
	EducationLevel        string    `gorm:"size:32" json:"educationLevel" bson:"education_level"`
	Proficiency           string    `gorm:"size:32" json:"proficiency" bson:"proficiency"`
	TotalScore            int       `json:"totalScore" bson:"total_score"`
	MaxScore              int       `json:"maxScore" bson:"max_score"`
	Percentage            float64   `json:"percentage" bson:"percentage"`
	OverallKnowledgeLevel string    `gorm:"size:32" json:"overallKnowledgeLevel" bson:"overall_knowledge_level"`
	MLAwarenessLevel      string    `gorm:"size:32" json:"mlAwarenessLevel" bson:"ml_awareness_level"`
	MLConfidence          float64   `json:"mlConfidence" bson:"ml_confidence"`
	Category              string    `gorm:"size:128;index" json:"category" bson:"category"`
}

func (AssessmentRecord) TableName() string {
	return "assessment_records"
}

// NewAssessmentRecord 由评估结果构造持久化记录
func NewAssessmentRecord(res *AssessmentResult) *AssessmentRecord {
	return &AssessmentRecord{
		UUIDBase:              UUIDBase{ID: res.AssessmentID, CreatedAt: time.Now()},
		Domain:                res.Domain,
		Timestamp:             res.Timestamp,
		Email:                 res.UserProfile.Email,
		Name:                  res.UserProfile.Name,
		Organization:          res.UserProfile.Organization,
		Gender:                res.UserProfile.Gender,
		EducationLevel:        res.UserProfile.EducationLevel,
		Proficiency:           res.UserProfile.Proficiency,
		TotalScore:            res.TotalScore,
		MaxScore:              res.MaxScore,
		Percentage:            res.Percentage,
		OverallKnowledgeLevel: res.OverallKnowledgeLevel,
		MLAwarenessLevel:      res.MLAwarenessLevel,
		MLConfidence:          res.MLConfidence,
		Category:              res.Category,
	}
}
