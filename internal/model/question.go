package model

// Option 题库中的单个选项，Marks 为得分，Level 为选项对应的知识水平
type Option struct {
	Text  string `json:"text"`
	Label string `json:"label,omitempty"`
	Marks int    `json:"marks"`
	Level string `json:"level"`
}

// Question 题库原始结构，加载后只读
type Question struct {
	QuestionID string   `json:"questionId,omitempty"`
	Question   string   `json:"question"`
	Options    []Option `json:"options"`
}

// QuestionBank 题库文件的顶层结构
type QuestionBank struct {
	Questions []Question `json:"questions"`
}

// swagger:model QuestionOption
type QuestionOption struct {
	Text   string `json:"text"`
	Weight int    `json:"weight"`
	Level  string `json:"level"`
}

// swagger:model QuestionView
type QuestionView struct {
	ID       string           `json:"id"`
	Question string           `json:"question"`
	Options  []QuestionOption `json:"options"`
	Category string           `json:"category"`
}

// Answer levels used by the answer sheets.
const (
	AnswerLevelWrong        = "wrong"
	AnswerLevelBeginner     = "beginner"
	AnswerLevelBasic        = "basic"
	AnswerLevelIntermediate = "intermediate"
	AnswerLevelAdvanced     = "advanced"
)
