package model

type ExplanationProfile struct {
	Gender      string `json:"gender"`
	Education   string `json:"education"`
	Proficiency string `json:"proficiency"`
}

// ExplanationRecord 解释库中的一条记录
type ExplanationRecord struct {
	QuestionID  string             `json:"questionId"`
	Option      string             `json:"option"`
	Profile     ExplanationProfile `json:"profile"`
	Explanation string             `json:"explanation"`
}
