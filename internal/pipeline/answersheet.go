package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"awareness_backend/internal/model"
)

type scoreEntry struct {
	Weight int
	Level  string
}

// AnswerSheet 题目文本 -> 选项文本 -> 分值与等级，加载后只读
type AnswerSheet struct {
	entries   map[string]map[string]scoreEntry
	maxScores map[string]int
	questions []model.Question
}

func emptyAnswerSheet() *AnswerSheet {
	return &AnswerSheet{
		entries:   map[string]map[string]scoreEntry{},
		maxScores: map[string]int{},
	}
}

// NewAnswerSheet builds the lookup from questions in source order. Questions
// without text are skipped.
func NewAnswerSheet(questions []model.Question) *AnswerSheet {
	sheet := emptyAnswerSheet()
	for _, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			continue
		}
		options := make(map[string]scoreEntry, len(q.Options))
		best := 0
		for i, opt := range q.Options {
			options[opt.Text] = scoreEntry{Weight: opt.Marks, Level: opt.Level}
			if i == 0 || opt.Marks > best {
				best = opt.Marks
			}
		}
		sheet.entries[q.Question] = options
		sheet.maxScores[q.Question] = best
		sheet.questions = append(sheet.questions, q)
	}
	return sheet
}

func ParseAnswerSheet(r io.Reader) (*AnswerSheet, error) {
	var bank model.QuestionBank
	if err := json.NewDecoder(r).Decode(&bank); err != nil {
		return emptyAnswerSheet(), fmt.Errorf("parse answer sheet: %w", err)
	}
	return NewAnswerSheet(bank.Questions), nil
}

// LoadAnswerSheet 读取题库文件；失败时返回空题库和错误，由调用方记录并降级运行
func LoadAnswerSheet(path string) (*AnswerSheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return emptyAnswerSheet(), fmt.Errorf("open answer sheet: %w", err)
	}
	defer f.Close()
	return ParseAnswerSheet(f)
}

// Score returns the points and level for a selected option. Matching is exact
// and case-sensitive; any miss scores (0, "wrong").
func (s *AnswerSheet) Score(question, option string) (int, string) {
	if opts, ok := s.entries[question]; ok {
		if e, ok := opts[option]; ok {
			return e.Weight, e.Level
		}
	}
	return 0, model.AnswerLevelWrong
}

// MaxScore is the highest option weight of a question, 0 when unknown.
func (s *AnswerSheet) MaxScore(question string) int {
	return s.maxScores[question]
}

func (s *AnswerSheet) Len() int {
	return len(s.questions)
}

// Questions 返回按原始顺序排列的题目视图
func (s *AnswerSheet) Questions(category string) []model.QuestionView {
	views := make([]model.QuestionView, 0, len(s.questions))
	for i, q := range s.questions {
		id := q.QuestionID
		if id == "" {
			id = fmt.Sprintf("Q%02d", i+1)
		}
		opts := make([]model.QuestionOption, 0, len(q.Options))
		for _, o := range q.Options {
			opts = append(opts, model.QuestionOption{Text: o.Text, Weight: o.Marks, Level: o.Level})
		}
		views = append(views, model.QuestionView{
			ID:       id,
			Question: q.Question,
			Options:  opts,
			Category: category,
		})
	}
	return views
}

// OptionValues 每道题的选项文本，供训练器构建特征列
func (s *AnswerSheet) OptionValues() [][]string {
	out := make([][]string, 0, len(s.questions))
	for _, q := range s.questions {
		values := make([]string, 0, len(q.Options))
		for _, o := range q.Options {
			values = append(values, o.Text)
		}
		out = append(out, values)
	}
	return out
}

// QuestionTexts returns the question texts in source order.
func (s *AnswerSheet) QuestionTexts() []string {
	out := make([]string, 0, len(s.questions))
	for _, q := range s.questions {
		out = append(out, q.Question)
	}
	return out
}
