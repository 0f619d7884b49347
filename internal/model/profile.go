package model

// Education levels accepted on a profile.
const (
	EducationOL     = "O/L"
	EducationAL     = "A/L"
	EducationHND    = "HND"
	EducationDegree = "Degree"
)

// Canonical proficiency values used by the explanation banks.
const (
	ProficiencySchool = "School"
	ProficiencyHigh   = "High"
)

// Profile defaults applied when a field is blank.
const (
	DefaultGender      = "Male"
	DefaultEducation   = EducationDegree
	DefaultProficiency = ProficiencyHigh
)

// swagger:model UserProfile
type UserProfile struct {
	Email          string `json:"email" binding:"required,email" bson:"email"`
	Name           string `json:"name" binding:"required" bson:"name"`
	Organization   string `json:"organization,omitempty" bson:"organization,omitempty"`
	Gender         string `json:"gender" binding:"required" bson:"gender"`
	EducationLevel string `json:"education_level" binding:"required,education" bson:"education_level"`
	Proficiency    string `json:"proficiency" binding:"required,proficiency" bson:"proficiency"`
}

// WithDefaults 返回补齐默认值后的副本
func (p UserProfile) WithDefaults() UserProfile {
	if p.Gender == "" {
		p.Gender = DefaultGender
	}
	if p.EducationLevel == "" {
		p.EducationLevel = DefaultEducation
	}
	if p.Proficiency == "" {
		p.Proficiency = DefaultProficiency
	}
	return p
}
