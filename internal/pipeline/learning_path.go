package pipeline

import (
	"sort"
	"strings"

	"awareness_backend/internal/domain"
	"awareness_backend/internal/model"
)

const (
	weakAreaRatio     = 0.7
	highPriorityRatio = 0.3
)

var nextLevel = map[string]string{
	model.AnswerLevelWrong:        model.AnswerLevelBeginner,
	model.AnswerLevelBeginner:     model.AnswerLevelIntermediate,
	model.AnswerLevelBasic:        model.AnswerLevelIntermediate,
	model.AnswerLevelIntermediate: model.AnswerLevelAdvanced,
	model.AnswerLevelAdvanced:     "expert",
}

var levelModifier = map[string]string{
	model.AnswerLevelBasic:        "beginner guide",
	model.AnswerLevelBeginner:     "beginner guide",
	model.AnswerLevelIntermediate: "best practices",
	model.AnswerLevelAdvanced:     "enterprise security",
}

// NextLevel 学习目标等级
func NextLevel(current string) string {
	if next, ok := nextLevel[strings.ToLower(current)]; ok {
		return next
	}
	return model.AnswerLevelAdvanced
}

// SearchTerms appends the level modifier to each of the topic's terms.
func SearchTerms(topic domain.Topic, level string) []string {
	modifier, ok := levelModifier[strings.ToLower(level)]
	if !ok {
		modifier = "tutorial"
	}
	terms := topic.SearchTerms
	if len(terms) > 3 {
		terms = terms[:3]
	}
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		out = append(out, t+" "+modifier)
	}
	return out
}

type weakArea struct {
	feedback model.QuestionFeedback
	ratio    float64
}

// BuildLearningPath 将得分低于满分 70% 的题目转为学习路径，按得分率升序
func BuildLearningPath(cat *domain.Catalog, feedback []model.QuestionFeedback) []model.LearningPathItem {
	var weak []weakArea
	for _, f := range feedback {
		if f.MaxScore <= 0 {
			continue
		}
		ratio := float64(f.Score) / float64(f.MaxScore)
		if ratio < weakAreaRatio {
			weak = append(weak, weakArea{feedback: f, ratio: ratio})
		}
	}
	sort.SliceStable(weak, func(i, j int) bool { return weak[i].ratio < weak[j].ratio })

	path := make([]model.LearningPathItem, 0, len(weak))
	for _, w := range weak {
		topic := cat.TopicFor(w.feedback.QuestionText)
		priority := "Medium"
		if w.ratio < highPriorityRatio {
			priority = "High"
		}
		path = append(path, model.LearningPathItem{
			QuestionID:   w.feedback.QuestionID,
			Topic:        topic.Name,
			CurrentLevel: w.feedback.Level,
			TargetLevel:  NextLevel(w.feedback.Level),
			Resources:    SearchTerms(topic, w.feedback.Level),
			Priority:     priority,
		})
	}
	return path
}
