package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"awareness_backend/internal/domain"
	"awareness_backend/internal/mlmodel"
	"awareness_backend/internal/model"
)

const sharePassword = "Q: share password?"

func testCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	cat, ok := domain.Lookup("password-security")
	if !ok {
		t.Fatalf("password-security catalog missing")
	}
	return cat
}

func testSheet() *AnswerSheet {
	return NewAnswerSheet([]model.Question{
		{
			Question: sharePassword,
			Options: []model.Option{
				{Text: "Never", Marks: 10, Level: "advanced"},
				{Text: "Sometimes", Marks: 5, Level: "intermediate"},
				{Text: "Always", Marks: 0, Level: "wrong"},
			},
		},
		{Question: "   "},
	})
}

func testProfile() model.UserProfile {
	return model.UserProfile{
		Email:          "kasun@example.com",
		Name:           "Kasun",
		Gender:         "Male",
		EducationLevel: "Degree",
		Proficiency:    "High",
	}
}

func TestScoreMiss(t *testing.T) {
	sheet := testSheet()
	cases := []struct {
		question, option string
		points           int
		level            string
	}{
		{sharePassword, "Sometimes", 5, "intermediate"},
		{sharePassword, "sometimes", 0, "wrong"},
		{sharePassword, "Maybe", 0, "wrong"},
		{"unknown question", "Never", 0, "wrong"},
	}
	for _, c := range cases {
		points, level := sheet.Score(c.question, c.option)
		if points != c.points || level != c.level {
			t.Fatalf("Score(%q,%q): want=(%d,%q) got=(%d,%q)", c.question, c.option, c.points, c.level, points, level)
		}
	}
	if sheet.Len() != 1 {
		t.Fatalf("blank question should be skipped, Len=%d", sheet.Len())
	}
	if got := sheet.MaxScore(sharePassword); got != 10 {
		t.Fatalf("MaxScore: want=10 got=%d", got)
	}
	if got := sheet.MaxScore("unknown question"); got != 0 {
		t.Fatalf("MaxScore unknown: want=0 got=%d", got)
	}
}

func TestLoadAnswerSheetMissingFile(t *testing.T) {
	sheet, err := LoadAnswerSheet(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if sheet == nil || sheet.Len() != 0 {
		t.Fatalf("expected empty answer sheet")
	}
	if points, level := sheet.Score("x", "y"); points != 0 || level != "wrong" {
		t.Fatalf("empty sheet Score: got=(%d,%q)", points, level)
	}
}

func TestParseAnswerSheetQuestionsView(t *testing.T) {
	doc := `{"questions":[
		{"questionId":"map7","question":"Allow contacts?","options":[{"text":"Yes","marks":0,"level":"wrong"},{"text":"No","marks":10,"level":"advanced"}]},
		{"question":"Review apps?","options":[{"text":"Monthly","marks":10,"level":"advanced"}]}
	]}`
	sheet, err := ParseAnswerSheet(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseAnswerSheet: %v", err)
	}
	views := sheet.Questions("App Permissions")
	if len(views) != 2 {
		t.Fatalf("views: want=2 got=%d", len(views))
	}
	if views[0].ID != "map7" || views[1].ID != "Q02" {
		t.Fatalf("ids: got=%q,%q", views[0].ID, views[1].ID)
	}
	if views[0].Options[1].Weight != 10 || views[1].Category != "App Permissions" {
		t.Fatalf("unexpected view: %+v", views)
	}
	if _, err := ParseAnswerSheet(strings.NewReader("{")); err == nil {
		t.Fatalf("expected error for malformed document")
	}
}

func TestPercentage(t *testing.T) {
	if got := Percentage(0, 0); got != 0 {
		t.Fatalf("Percentage(0,0): got=%v", got)
	}
	if got := Percentage(5, 0); got != 0 {
		t.Fatalf("Percentage(5,0): got=%v", got)
	}
	if got := Percentage(5, 10); got != 50 {
		t.Fatalf("Percentage(5,10): got=%v", got)
	}
}

func TestOverallLevelThresholds(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{100, "Advanced"},
		{80, "Advanced"},
		{79.999, "Intermediate"},
		{60, "Intermediate"},
		{59.99, "Basic"},
		{40, "Basic"},
		{39.99, "Beginner"},
		{0, "Beginner"},
	}
	for _, c := range cases {
		if got := OverallLevel(c.pct); got != c.want {
			t.Fatalf("OverallLevel(%v): want=%q got=%q", c.pct, c.want, got)
		}
	}
}

func TestNormalizeQuestionID(t *testing.T) {
	cases := map[string]string{
		"Q01":   "Q1",
		"Q1":    "Q1",
		"q001":  "Q1",
		"map10": "Q10",
		"MAP3":  "Q3",
		"Q10":   "Q10",
		" Q07 ": "Q7",
		"7":     "Q7",
		"Q00":   "Q0",
		"Qx":    "Qx",
		"intro": "intro",
		"":      "",
	}
	for in, want := range cases {
		got := NormalizeQuestionID(in)
		if got != want {
			t.Fatalf("NormalizeQuestionID(%q): want=%q got=%q", in, want, got)
		}
		if again := NormalizeQuestionID(got); again != got {
			t.Fatalf("NormalizeQuestionID not idempotent for %q: %q -> %q", in, got, again)
		}
	}
	if NormalizeQuestionID("Q01") != NormalizeQuestionID("Q1") {
		t.Fatalf("aliases should collapse")
	}
}

func TestNormalizeProficiency(t *testing.T) {
	cases := map[string]string{
		"school":         "School",
		"SCHOOL":         "School",
		"High":           "High",
		"high education": "High",
		"High Education": "High",
		"University":     "University",
	}
	for in, want := range cases {
		if got := NormalizeProficiency(in); got != want {
			t.Fatalf("NormalizeProficiency(%q): want=%q got=%q", in, want, got)
		}
	}
}

func TestExplainCascade(t *testing.T) {
	const fallback = "generic fallback"
	records := []model.ExplanationRecord{
		{QuestionID: "Q01", Option: "A", Profile: model.ExplanationProfile{Gender: "Male", Education: "Degree", Proficiency: "School"}, Explanation: "partial match"},
		{QuestionID: "Q1", Option: "D", Profile: model.ExplanationProfile{Gender: "Female", Education: "HND", Proficiency: "High"}, Explanation: "question and option"},
		{QuestionID: "Q2", Option: "B", Profile: model.ExplanationProfile{Gender: "Male", Education: "Degree", Proficiency: "High"}, Explanation: "   "},
		{QuestionID: "Q2", Option: "B", Profile: model.ExplanationProfile{Gender: "Female", Education: "O/L", Proficiency: "School"}, Explanation: "non-blank"},
		{QuestionID: "Q3", Option: "C", Profile: model.ExplanationProfile{Gender: "Female", Education: "O/L", Proficiency: "High"}, Explanation: "wrong proficiency"},
		{QuestionID: "Q3", Option: "C", Profile: model.ExplanationProfile{Gender: "Female", Education: "O/L", Proficiency: "School"}, Explanation: "exact"},
	}
	bank := NewExplanationBank(records, fallback)
	profile := testProfile()

	if got := bank.Explain("Q1", "A", profile); got != "partial match" {
		t.Fatalf("partial match: got=%q", got)
	}
	if got := bank.Explain("map1", "D", model.UserProfile{Gender: "Other", EducationLevel: "A/L", Proficiency: "school"}); got != "question and option" {
		t.Fatalf("relaxed match: got=%q", got)
	}
	if got := bank.Explain("Q2", "B", profile); got != "non-blank" {
		t.Fatalf("blank record must be skipped: got=%q", got)
	}
	female := model.UserProfile{Gender: "Female", EducationLevel: "O/L", Proficiency: "SCHOOL"}
	if got := bank.Explain("Q03", "C", female); got != "exact" {
		t.Fatalf("exact match: got=%q", got)
	}
	if got := bank.Explain("Q9", "A", profile); got != fallback {
		t.Fatalf("fallback: got=%q", got)
	}
}

func TestExplainNeverEmpty(t *testing.T) {
	cat := testCatalog(t)
	empty := NewExplanationBank(nil, cat.FallbackExplanation)
	inputs := []struct{ qid, option string }{{"Q1", "A"}, {"", ""}, {"map99", "Z"}}
	for _, in := range inputs {
		if got := empty.Explain(in.qid, in.option, model.UserProfile{}); got != cat.FallbackExplanation {
			t.Fatalf("Explain(%q,%q): got=%q", in.qid, in.option, got)
		}
	}
	blank := NewExplanationBank([]model.ExplanationRecord{{QuestionID: "Q1", Option: "A", Explanation: ""}}, "")
	if got := blank.Explain("Q1", "A", model.UserProfile{}); strings.TrimSpace(got) == "" {
		t.Fatalf("Explain returned empty text")
	}
}

func TestOptionLabel(t *testing.T) {
	if OptionLabel(0) != "A" || OptionLabel(2) != "C" || OptionLabel(25) != "Z" {
		t.Fatalf("unexpected option labels")
	}
	if OptionLabel(-1) != "" || OptionLabel(26) != "" {
		t.Fatalf("out of range index should have no label")
	}
}

func TestExplainOutOfRangeOption(t *testing.T) {
	bank := NewExplanationBank([]model.ExplanationRecord{
		{QuestionID: "Q1", Option: "A", Explanation: "Option A reasoning"},
		{QuestionID: "Q1", Option: "", Explanation: "Blank option text"},
	}, "Generic advice")
	for _, idx := range []int{-1, 26, 99} {
		if got := bank.Explain("Q1", OptionLabel(idx), model.UserProfile{}); got != "Generic advice" {
			t.Fatalf("index %d: want fallback got=%q", idx, got)
		}
	}
	if got := bank.Explain("Q1", OptionLabel(0), model.UserProfile{}); got != "Option A reasoning" {
		t.Fatalf("index 0: got=%q", got)
	}
}

func TestEncodeExactSlot(t *testing.T) {
	names := []string{"Q_0_No", "Q_0_Yes", "Q_2_Always", "Q_2_Never"}
	enc := NewFeatureEncoder(names, nil)
	if !reflect.DeepEqual(enc.Offsets(), []int{0, 2}) {
		t.Fatalf("derived offsets: got=%v", enc.Offsets())
	}

	vec, err := enc.Encode([]string{"Yes"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if want := []float64{0, 1, 0, 0}; !reflect.DeepEqual(vec, want) {
		t.Fatalf("Encode: want=%v got=%v", want, vec)
	}

	vec, _ = enc.Encode([]string{"No", "Never", "Yes", "Yes"})
	if want := []float64{1, 0, 0, 1}; !reflect.DeepEqual(vec, want) {
		t.Fatalf("answers beyond offsets must be ignored: want=%v got=%v", want, vec)
	}
}

func TestEncodeFuzzyFallback(t *testing.T) {
	enc := NewFeatureEncoder([]string{"Q_0_Only when needed", "Q_4_Yes, always", "Q_4_No"}, []int{0, 4})
	vec, err := enc.Encode([]string{"needed", "Yes"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if want := []float64{1, 1, 0}; !reflect.DeepEqual(vec, want) {
		t.Fatalf("fuzzy: want=%v got=%v", want, vec)
	}
	vec, _ = enc.Encode([]string{"Unknown"})
	if want := []float64{0, 0, 0}; !reflect.DeepEqual(vec, want) {
		t.Fatalf("miss should stay zero: want=%v got=%v", want, vec)
	}
}

func TestEncoderIgnoresStaleOffsets(t *testing.T) {
	names := []string{"Q_0_No", "Q_0_Yes", "Q_2_Always", "Q_2_Never"}
	enc := NewFeatureEncoder(names, []int{0, 4})
	if !reflect.DeepEqual(enc.Offsets(), []int{0, 2}) {
		t.Fatalf("offsets absent from names should be replaced: got=%v", enc.Offsets())
	}
	vec, _ := enc.Encode([]string{"Yes", "Never"})
	if want := []float64{0, 1, 0, 1}; !reflect.DeepEqual(vec, want) {
		t.Fatalf("Encode: want=%v got=%v", want, vec)
	}
}

func TestEncodeUnavailable(t *testing.T) {
	var nilEncoder *FeatureEncoder
	if _, err := nilEncoder.Encode([]string{"Yes"}); !errors.Is(err, ErrFeaturesUnavailable) {
		t.Fatalf("nil encoder: want ErrFeaturesUnavailable got=%v", err)
	}
	if _, err := NewFeatureEncoder(nil, nil).Encode([]string{"Yes"}); !errors.Is(err, ErrFeaturesUnavailable) {
		t.Fatalf("empty names: want ErrFeaturesUnavailable got=%v", err)
	}
}

func TestMapAwareness(t *testing.T) {
	cases := []struct {
		raw  mlmodel.ClassLabel
		want string
	}{
		{mlmodel.StringLabel("Beginner"), "Low Awareness"},
		{mlmodel.StringLabel("Basic"), "Low Awareness"},
		{mlmodel.StringLabel("Intermediate"), "Moderate Awareness"},
		{mlmodel.StringLabel("Advanced"), "High Awareness"},
		{mlmodel.StringLabel("Expert"), "High Awareness"},
		{mlmodel.CodeLabel(0), "Low Awareness"},
		{mlmodel.CodeLabel(1), "Moderate Awareness"},
		{mlmodel.CodeLabel(2), "High Awareness"},
		{mlmodel.CodeLabel(7), "Unknown"},
		{mlmodel.StringLabel("Guru"), "Unknown"},
		{mlmodel.StringLabel("2"), "Unknown"},
	}
	for _, c := range cases {
		if got := MapAwareness(c.raw); got != c.want {
			t.Fatalf("MapAwareness(%v): want=%q got=%q", c.raw, c.want, got)
		}
	}
}

var sheetFeatures = []string{"Q_0_Always", "Q_0_Never", "Q_0_Sometimes"}

// sometimesModel predicts Intermediate when "Sometimes" is chosen.
func sometimesModel() *mlmodel.LogisticRegression {
	return &mlmodel.LogisticRegression{
		Kind:      mlmodel.KindLogisticRegression,
		Classes:   []mlmodel.ClassLabel{mlmodel.StringLabel("Beginner"), mlmodel.StringLabel("Intermediate"), mlmodel.StringLabel("Expert")},
		Coef:      [][]float64{{0, 0, 0}, {0, 0, 5}, {0, 0, 0}},
		Intercept: []float64{0, 0, 0},
	}
}

func identityScaler() *mlmodel.StandardScaler {
	return &mlmodel.StandardScaler{Mean: []float64{0, 0, 0}, Scale: []float64{1, 1, 1}}
}

type panickingModel struct{}

func (panickingModel) Predict([]float64) (mlmodel.ClassLabel, []float64, error) {
	panic("corrupt model")
}

type failingScaler struct{}

func (failingScaler) Transform([]float64) ([]float64, error) {
	return nil, errors.New("boom")
}

func TestPredictDegrades(t *testing.T) {
	answers := []model.UserAnswer{{QuestionText: sharePassword, SelectedOption: "Sometimes"}}
	enc := NewFeatureEncoder(sheetFeatures, nil)
	cases := []struct {
		name string
		clf  *AwarenessClassifier
	}{
		{"nil adapter", nil},
		{"no model", NewAwarenessClassifier(nil, identityScaler(), enc)},
		{"no scaler", NewAwarenessClassifier(sometimesModel(), nil, enc)},
		{"no feature names", NewAwarenessClassifier(sometimesModel(), identityScaler(), nil)},
		{"empty feature names", NewAwarenessClassifier(sometimesModel(), identityScaler(), NewFeatureEncoder([]string{}, nil))},
		{"scaler error", NewAwarenessClassifier(sometimesModel(), failingScaler{}, enc)},
		{"model panic", NewAwarenessClassifier(panickingModel{}, identityScaler(), enc)},
		{"dimension mismatch", NewAwarenessClassifier(sometimesModel(), &mlmodel.StandardScaler{Mean: []float64{0}, Scale: []float64{1}}, enc)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			label, confidence := c.clf.Predict(context.Background(), answers, testProfile())
			if label != "Unknown" || confidence != 0 {
				t.Fatalf("want=(Unknown,0) got=(%q,%v)", label, confidence)
			}
		})
	}
}

func TestPredictMapsModelOutput(t *testing.T) {
	clf := NewAwarenessClassifier(sometimesModel(), identityScaler(), NewFeatureEncoder(sheetFeatures, nil))
	label, confidence := clf.Predict(context.Background(),
		[]model.UserAnswer{{SelectedOption: "Sometimes"}}, testProfile())
	if label != "Moderate Awareness" {
		t.Fatalf("label: want=Moderate Awareness got=%q", label)
	}
	if confidence < 0.98 || confidence > 1 {
		t.Fatalf("confidence: got=%v", confidence)
	}

	coded := &mlmodel.LogisticRegression{
		Classes:   []mlmodel.ClassLabel{mlmodel.CodeLabel(0), mlmodel.CodeLabel(2)},
		Coef:      [][]float64{{0, 4, 0}},
		Intercept: []float64{0},
	}
	clf = NewAwarenessClassifier(coded, identityScaler(), NewFeatureEncoder(sheetFeatures, nil))
	label, _ = clf.Predict(context.Background(), []model.UserAnswer{{SelectedOption: "Never"}}, testProfile())
	if label != "High Awareness" {
		t.Fatalf("coded label: want=High Awareness got=%q", label)
	}
}

func TestRecommend(t *testing.T) {
	cat := testCatalog(t)
	r := cat.Recommendations

	school := model.UserProfile{EducationLevel: "O/L", Proficiency: "school"}
	got := Recommend(cat, "Low Awareness", 0.4, school)
	if want := []string{r.LowBase, r.LowSchool}; !reflect.DeepEqual(got, want) {
		t.Fatalf("low school: want=%q got=%q", want, got)
	}

	got = Recommend(cat, "Low Awareness", 0.4, model.UserProfile{EducationLevel: "HND", Proficiency: "High"})
	if want := []string{r.LowBase, r.LowHigher}; !reflect.DeepEqual(got, want) {
		t.Fatalf("low higher: want=%q got=%q", want, got)
	}

	got = Recommend(cat, "Moderate Awareness", 0.825, testProfile())
	if len(got) != 2 || !strings.Contains(got[0], "(confidence: 82.5%)") || got[1] != r.ModerateFollowUp {
		t.Fatalf("moderate: got=%q", got)
	}

	got = Recommend(cat, "High Awareness", 1, testProfile())
	if len(got) != 2 || !strings.Contains(got[0], "(confidence: 100.0%)") {
		t.Fatalf("high: got=%q", got)
	}

	if got := Recommend(cat, "Unknown", 0, testProfile()); len(got) != 0 {
		t.Fatalf("unknown without proficiency messages: got=%q", got)
	}

	app, _ := domain.Lookup("app-permissions")
	got = Recommend(app, "High Awareness", 0.9, school)
	if len(got) != 3 || got[2] != app.Recommendations.ProficiencySchool {
		t.Fatalf("proficiency message: got=%q", got)
	}
	got = Recommend(app, "Unknown", 0, testProfile())
	if !reflect.DeepEqual(got, []string{app.Recommendations.ProficiencyHigh}) {
		t.Fatalf("unknown level keeps proficiency message: got=%q", got)
	}
}

func TestBuildLearningPath(t *testing.T) {
	app, _ := domain.Lookup("app-permissions")
	feedback := []model.QuestionFeedback{
		{QuestionID: "Q1", QuestionText: "Should a game track your location?", Score: 5, MaxScore: 10, Level: "intermediate"},
		{QuestionID: "Q2", QuestionText: "Do you review permissions?", Score: 0, MaxScore: 10, Level: "wrong"},
		{QuestionID: "Q3", QuestionText: "Camera access?", Score: 10, MaxScore: 10, Level: "advanced"},
		{QuestionID: "Q4", QuestionText: "Unknown", Score: 0, MaxScore: 0, Level: "wrong"},
	}
	path := BuildLearningPath(app, feedback)
	if len(path) != 2 {
		t.Fatalf("path: want=2 items got=%d", len(path))
	}
	first, second := path[0], path[1]
	if first.QuestionID != "Q2" || first.Topic != "permission_review" || first.Priority != "High" || first.TargetLevel != "beginner" {
		t.Fatalf("first item: %+v", first)
	}
	if second.QuestionID != "Q1" || second.Topic != "location_permissions" || second.Priority != "Medium" || second.TargetLevel != "advanced" {
		t.Fatalf("second item: %+v", second)
	}
	if want := []string{"app location permission guide best practices", "mobile location privacy best practices"}; !reflect.DeepEqual(second.Resources, want) {
		t.Fatalf("resources: want=%q got=%q", want, second.Resources)
	}
	if first.Resources[0] != "app permission audit guide tutorial" {
		t.Fatalf("wrong level modifier: got=%q", first.Resources[0])
	}
}

func TestAssessEndToEnd(t *testing.T) {
	cat := testCatalog(t)
	p := New(cat, Artifacts{AnswerSheet: testSheet()})

	sub := &model.AssessmentSubmission{
		UserProfile: testProfile(),
		Answers: []model.UserAnswer{{
			QuestionID:          "Q01",
			QuestionText:        sharePassword,
			SelectedOption:      "Sometimes",
			SelectedOptionIndex: 1,
		}},
	}
	res := p.Assess(context.Background(), sub)

	if res.TotalScore != 5 || res.MaxScore != 10 || res.Percentage != 50.0 || res.OverallKnowledgeLevel != "Basic" {
		t.Fatalf("totals: got score=%d max=%d pct=%v level=%q", res.TotalScore, res.MaxScore, res.Percentage, res.OverallKnowledgeLevel)
	}
	fb := res.DetailedFeedback[0]
	if fb.Score != 5 || fb.Level != "intermediate" || fb.MaxScore != 10 {
		t.Fatalf("feedback: %+v", fb)
	}
	if fb.Explanation != cat.FallbackExplanation {
		t.Fatalf("explanation: want fallback got=%q", fb.Explanation)
	}
	if fb.EnhancementAdvice != cat.Advice["intermediate"] {
		t.Fatalf("advice: got=%q", fb.EnhancementAdvice)
	}
	if res.MLAwarenessLevel != "Unknown" || res.MLConfidence != 0 || res.MLRecommendations != nil {
		t.Fatalf("ml without artifacts: got=(%q,%v,%v)", res.MLAwarenessLevel, res.MLConfidence, res.MLRecommendations)
	}
	if res.Domain != "password-security" || res.Category != "Password Security" || res.Timestamp.IsZero() {
		t.Fatalf("metadata: %+v", res)
	}
	if len(res.LearningPath) != 1 || res.LearningPath[0].Priority != "Medium" {
		t.Fatalf("learning path: %+v", res.LearningPath)
	}
}

func TestAssessWithModel(t *testing.T) {
	cat := testCatalog(t)
	p := New(cat, Artifacts{
		AnswerSheet:  testSheet(),
		Model:        sometimesModel(),
		Scaler:       identityScaler(),
		FeatureNames: sheetFeatures,
	})
	res := p.Assess(context.Background(), &model.AssessmentSubmission{
		UserProfile: testProfile(),
		Answers:     []model.UserAnswer{{QuestionID: "Q1", QuestionText: sharePassword, SelectedOption: "Sometimes", SelectedOptionIndex: 1}},
	})
	if res.MLAwarenessLevel != "Moderate Awareness" {
		t.Fatalf("awareness: got=%q", res.MLAwarenessLevel)
	}
	if res.MLConfidence != 0.9867 {
		t.Fatalf("confidence rounded to 4 places: got=%v", res.MLConfidence)
	}
	if len(res.MLRecommendations) != 2 || !strings.Contains(res.MLRecommendations[0], "98.7%") {
		t.Fatalf("recommendations: %q", res.MLRecommendations)
	}
	if res.TotalScore != 5 || res.OverallKnowledgeLevel != "Basic" {
		t.Fatalf("rule-based path changed by model: %+v", res)
	}
}

func TestAssessUnansweredQuestionsIgnored(t *testing.T) {
	p := New(testCatalog(t), Artifacts{AnswerSheet: testSheet()})
	res := p.Assess(context.Background(), &model.AssessmentSubmission{
		UserProfile: testProfile(),
		Answers:     []model.UserAnswer{{QuestionID: "Q5", QuestionText: "not in sheet", SelectedOption: "Never"}},
	})
	if res.MaxScore != 0 || res.Percentage != 0 || res.OverallKnowledgeLevel != "Beginner" {
		t.Fatalf("unknown question: %+v", res)
	}
}

func TestStatus(t *testing.T) {
	p := New(testCatalog(t), Artifacts{})
	for k, v := range p.Status() {
		if v {
			t.Fatalf("empty pipeline: %s should be false", k)
		}
	}
	p = New(testCatalog(t), Artifacts{
		AnswerSheet:  testSheet(),
		Explanations: NewExplanationBank([]model.ExplanationRecord{{QuestionID: "Q1", Option: "A", Explanation: "x"}}, ""),
		Model:        sometimesModel(),
		Scaler:       identityScaler(),
		FeatureNames: sheetFeatures,
	})
	for k, v := range p.Status() {
		if !v {
			t.Fatalf("loaded pipeline: %s should be true", k)
		}
	}
}

func writeJSON(t *testing.T, path string, v interface{}) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	cat := testCatalog(t)

	p := Load(context.Background(), cat, nil, Sources{
		AnswerSheet: filepath.Join(dir, "missing.json"),
	})
	if p.Status()["answer_sheet_loaded"] || p.Status()["model_loaded"] {
		t.Fatalf("missing artifacts should stay unloaded: %v", p.Status())
	}

	writeJSON(t, filepath.Join(dir, "questions.json"), model.QuestionBank{Questions: []model.Question{{
		Question: sharePassword,
		Options:  []model.Option{{Text: "Never", Marks: 10, Level: "advanced"}, {Text: "Sometimes", Marks: 5, Level: "intermediate"}},
	}}})
	writeJSON(t, filepath.Join(dir, "explanations.json"), []model.ExplanationRecord{{QuestionID: "Q01", Option: "B", Explanation: "be careful"}})
	if err := mlmodel.SaveArtifacts(dir, sometimesModel(), identityScaler(), sheetFeatures); err != nil {
		t.Fatalf("SaveArtifacts: %v", err)
	}

	p = Load(context.Background(), cat, FileOpener, Sources{
		AnswerSheet:     filepath.Join(dir, "questions.json"),
		ExplanationBank: filepath.Join(dir, "explanations.json"),
		Model:           filepath.Join(dir, mlmodel.ModelFile),
		Scaler:          filepath.Join(dir, mlmodel.ScalerFile),
		FeatureNames:    filepath.Join(dir, mlmodel.FeatureNamesFile),
	})
	for k, v := range p.Status() {
		if !v {
			t.Fatalf("%s should be loaded", k)
		}
	}
	res := p.Assess(context.Background(), &model.AssessmentSubmission{
		UserProfile: testProfile(),
		Answers:     []model.UserAnswer{{QuestionID: "Q1", QuestionText: sharePassword, SelectedOption: "Sometimes", SelectedOptionIndex: 1}},
	})
	if res.DetailedFeedback[0].Explanation != "be careful" {
		t.Fatalf("explanation: got=%q", res.DetailedFeedback[0].Explanation)
	}
	if res.MLAwarenessLevel != "Moderate Awareness" {
		t.Fatalf("awareness: got=%q", res.MLAwarenessLevel)
	}
}

func TestCoverage(t *testing.T) {
	bank := NewExplanationBank([]model.ExplanationRecord{
		{QuestionID: "Q1", Option: "B", Explanation: "x"},
		{QuestionID: "Q01", Option: "B", Profile: model.ExplanationProfile{Gender: "Female"}, Explanation: "y"},
		{QuestionID: "Q1", Option: "C", Explanation: " "},
	}, "")
	report := bank.Coverage(testSheet())
	if report.Required != 2 || report.Covered != 1 {
		t.Fatalf("coverage: %+v", report)
	}
	if !reflect.DeepEqual(report.Missing, []string{"Q1/C"}) {
		t.Fatalf("missing: got=%v", report.Missing)
	}
	if report.ProfileVariations["Q1/B"] != 2 {
		t.Fatalf("variations: got=%v", report.ProfileVariations)
	}
}
