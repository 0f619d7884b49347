package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"awareness_backend/internal/model"
)

// ExplanationBank 个性化解释库，按题目与选项做逐级放宽的匹配
type ExplanationBank struct {
	records  []model.ExplanationRecord
	fallback string
}

// NewExplanationBank normalises the question ids of records and keeps the
// fallback text returned when nothing matches.
func NewExplanationBank(records []model.ExplanationRecord, fallback string) *ExplanationBank {
	normalized := make([]model.ExplanationRecord, len(records))
	for i, r := range records {
		r.QuestionID = NormalizeQuestionID(r.QuestionID)
		normalized[i] = r
	}
	return &ExplanationBank{records: normalized, fallback: fallback}
}

func ParseExplanationBank(r io.Reader, fallback string) (*ExplanationBank, error) {
	var records []model.ExplanationRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return NewExplanationBank(nil, fallback), fmt.Errorf("parse explanation bank: %w", err)
	}
	return NewExplanationBank(records, fallback), nil
}

// LoadExplanationBank 读取解释库；文件缺失或损坏时返回空库和错误
func LoadExplanationBank(path, fallback string) (*ExplanationBank, error) {
	f, err := os.Open(path)
	if err != nil {
		return NewExplanationBank(nil, fallback), fmt.Errorf("open explanation bank: %w", err)
	}
	defer f.Close()
	return ParseExplanationBank(f, fallback)
}

func (b *ExplanationBank) Len() int {
	return len(b.records)
}

// Explain resolves the best matching explanation. The cascade is exact match,
// then without proficiency, then question and option only, then the fallback.
// Records with blank text never match. The result is never empty.
func (b *ExplanationBank) Explain(questionID, option string, profile model.UserProfile) string {
	profile = profile.WithDefaults()
	qid := NormalizeQuestionID(questionID)
	proficiency := NormalizeProficiency(profile.Proficiency)

	if option == "" {
		return b.fallbackText()
	}

	matchers := []func(p model.ExplanationProfile) bool{
		func(p model.ExplanationProfile) bool {
			return p.Gender == profile.Gender && p.Education == profile.EducationLevel && p.Proficiency == proficiency
		},
		func(p model.ExplanationProfile) bool {
			return p.Gender == profile.Gender && p.Education == profile.EducationLevel
		},
		func(model.ExplanationProfile) bool { return true },
	}
	for _, match := range matchers {
		for _, r := range b.records {
			if r.QuestionID != qid || r.Option != option {
				continue
			}
			if !match(r.Profile) || strings.TrimSpace(r.Explanation) == "" {
				continue
			}
			return r.Explanation
		}
	}
	return b.fallbackText()
}

func (b *ExplanationBank) fallbackText() string {
	if strings.TrimSpace(b.fallback) == "" {
		return "No explanation is available for this answer yet."
	}
	return b.fallback
}

// NormalizeQuestionID maps aliases such as "Q01", "q1" and "map1" to "Q1".
// Ids without a numeric part are returned trimmed and otherwise unchanged.
func NormalizeQuestionID(id string) string {
	trimmed := strings.TrimSpace(id)
	rest := trimmed
	lower := strings.ToLower(rest)
	switch {
	case strings.HasPrefix(lower, "map"):
		rest = rest[3:]
	case strings.HasPrefix(lower, "q"):
		rest = rest[1:]
	}
	if rest == "" {
		return trimmed
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return trimmed
		}
	}
	rest = strings.TrimLeft(rest, "0")
	if rest == "" {
		rest = "0"
	}
	return "Q" + rest
}

// NormalizeProficiency folds case and aliases to School or High.
func NormalizeProficiency(p string) string {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "school":
		return model.ProficiencySchool
	case "high", "high education":
		return model.ProficiencyHigh
	}
	return p
}

// OptionLabel maps a zero-based option index to its letter label, or "" when
// the index has no letter.
func OptionLabel(index int) string {
	if index < 0 || index > 25 {
		return ""
	}
	return string(rune('A' + index))
}

// CoverageReport 解释库对题库非最优选项的覆盖情况
type CoverageReport struct {
	Required          int            `json:"required"`
	Covered           int            `json:"covered"`
	Missing           []string       `json:"missing"`
	ProfileVariations map[string]int `json:"profile_variations"`
}

// Coverage checks that every non-advanced option of every question has at
// least one non-blank explanation, and counts profile variations per pair.
func (b *ExplanationBank) Coverage(sheet *AnswerSheet) CoverageReport {
	report := CoverageReport{ProfileVariations: map[string]int{}}
	for _, r := range b.records {
		if strings.TrimSpace(r.Explanation) == "" {
			continue
		}
		report.ProfileVariations[r.QuestionID+"/"+r.Option]++
	}
	for i, q := range sheet.questions {
		qid := q.QuestionID
		if qid == "" {
			qid = fmt.Sprintf("Q%d", i+1)
		}
		qid = NormalizeQuestionID(qid)
		for j, opt := range q.Options {
			if strings.EqualFold(opt.Level, model.AnswerLevelAdvanced) {
				continue
			}
			label := opt.Label
			if label == "" {
				label = OptionLabel(j)
			}
			report.Required++
			key := qid + "/" + label
			if report.ProfileVariations[key] > 0 {
				report.Covered++
			} else {
				report.Missing = append(report.Missing, key)
			}
		}
	}
	sort.Strings(report.Missing)
	return report
}
