package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Topic 学习路径中的主题，按关键字匹配题目文本
type Topic struct {
	Name        string
	Keywords    []string
	SearchTerms []string
}

// Recommendations 按意识等级组织的推荐文案
// ModerateBase 与 HighBase 中包含一个 %.1f%% 占位符，用于填充置信度
type Recommendations struct {
	LowBase           string
	LowSchool         string
	LowHigher         string
	ModerateBase      string
	ModerateFollowUp  string
	HighBase          string
	HighFollowUp      string
	ProficiencySchool string
	ProficiencyHigh   string
}

// Catalog 一个评估领域的全部文案与命名
type Catalog struct {
	Slug                string
	Aliases             []string
	Name                string
	Category            string
	Description         string
	Collection          string
	FallbackExplanation string
	Advice              map[string]string
	DefaultAdvice       string
	Recommendations     Recommendations
	Topics              []Topic
	DefaultTopic        Topic
}

// AdviceFor returns the enhancement advice for an answer level.
func (c *Catalog) AdviceFor(level string) string {
	if advice, ok := c.Advice[strings.ToLower(strings.TrimSpace(level))]; ok {
		return advice
	}
	return c.DefaultAdvice
}

// TopicFor maps a question text to the first topic whose keywords appear in it.
func (c *Catalog) TopicFor(question string) Topic {
	lower := strings.ToLower(question)
	for _, topic := range c.Topics {
		for _, kw := range topic.Keywords {
			if strings.Contains(lower, kw) {
				return topic
			}
		}
	}
	return c.DefaultTopic
}

var registry = map[string]*Catalog{}
var aliases = map[string]string{}

func register(c *Catalog) {
	if _, ok := registry[c.Slug]; ok {
		panic(fmt.Sprintf("domain %q registered twice", c.Slug))
	}
	registry[c.Slug] = c
	aliases[c.Slug] = c.Slug
	for _, a := range c.Aliases {
		aliases[a] = c.Slug
	}
}

// Lookup resolves a slug or alias to its catalog.
func Lookup(slug string) (*Catalog, bool) {
	canonical, ok := aliases[strings.ToLower(strings.TrimSpace(slug))]
	if !ok {
		return nil, false
	}
	return registry[canonical], true
}

// Slugs 返回所有已注册领域的规范 slug，按字母排序
func Slugs() []string {
	out := make([]string, 0, len(registry))
	for slug := range registry {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}

func init() {
	register(appPermissions)
	register(deviceSecurity)
	register(passwordSecurity)
	register(phishingDetection)
	register(socialEngineering)
}
