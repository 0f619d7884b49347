package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"awareness_backend/internal/domain"
	"awareness_backend/internal/model"
	"awareness_backend/internal/pipeline"
	"awareness_backend/internal/repository"
	"awareness_backend/internal/service"
	"awareness_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const question = "Do you click links in unexpected emails?"

func newRouter(t *testing.T, withSink bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	util.RegisterValidators()

	cat, _ := domain.Lookup("phishing-detection")
	sheet := pipeline.NewAnswerSheet([]model.Question{{
		QuestionID: "Q01",
		Question:   question,
		Options: []model.Option{
			{Text: "Never", Marks: 10, Level: "advanced"},
			{Text: "Sometimes", Marks: 4, Level: "basic"},
		},
	}})
	pipelines := []*pipeline.Pipeline{pipeline.New(cat, pipeline.Artifacts{AnswerSheet: sheet})}

	var sink repository.ResultSink
	if withSink {
		repo, err := repository.NewFileAssessmentRepo(filepath.Join(t.TempDir(), "assessments.jsonl"))
		if err != nil {
			t.Fatalf("sink: %v", err)
		}
		sink = repo
	}
	svc := service.NewAssessmentService(pipelines, sink, nil)
	ac := NewAssessmentController(svc, 0)
	hc := NewHealthController(svc, "test")

	r := gin.New()
	r.GET("/", hc.Root)
	r.GET("/health", hc.HealthCheck)
	api := r.Group("/api/assessments")
	api.GET("", ac.ListDomains)
	api.GET("/:domain/questions", ac.GetQuestions)
	api.POST("/:domain/assess", ac.Assess)
	api.GET("/:domain/leaderboard", ac.Leaderboard)
	admin := r.Group("/api/admin/assessments")
	admin.GET("/:domain/stats", ac.Stats)
	admin.GET("/:domain/history", ac.History)
	return r
}

func do(r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, util.Response) {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var resp util.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func validSubmission() map[string]interface{} {
	return map[string]interface{}{
		"user_profile": map[string]interface{}{
			"email":           "ruwan@example.com",
			"name":            "Ruwan",
			"gender":          "Male",
			"education_level": "HND",
			"proficiency":     "High",
		},
		"answers": []map[string]interface{}{{
			"question_id":           "Q01",
			"question_text":         question,
			"selected_option":       "Sometimes",
			"selected_option_index": 1,
		}},
	}
}

func TestRoutesStatusCodes(t *testing.T) {
	r := newRouter(t, true)
	cases := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"root", http.MethodGet, "/", http.StatusOK},
		{"health", http.MethodGet, "/health", http.StatusOK},
		{"domains", http.MethodGet, "/api/assessments", http.StatusOK},
		{"questions", http.MethodGet, "/api/assessments/phishing/questions", http.StatusOK},
		{"unknown domain", http.MethodGet, "/api/assessments/cooking/questions", http.StatusNotFound},
		{"disabled domain", http.MethodGet, "/api/assessments/device-security/questions", http.StatusNotFound},
		{"leaderboard disabled", http.MethodGet, "/api/assessments/phishing/leaderboard", http.StatusServiceUnavailable},
		{"history without email", http.MethodGet, "/api/admin/assessments/phishing/history", http.StatusBadRequest},
		{"stats", http.MethodGet, "/api/admin/assessments/phishing/stats", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, resp := do(r, tc.method, tc.path, nil)
			if w.Code != tc.want || resp.Code != tc.want {
				t.Fatalf("status: want=%d got=%d envelope=%d body=%s", tc.want, w.Code, resp.Code, w.Body.String())
			}
		})
	}
}

func TestAssessEndpoint(t *testing.T) {
	r := newRouter(t, true)
	w, _ := do(r, http.MethodPost, "/api/assessments/phishing-detection/assess", validSubmission())
	if w.Code != http.StatusOK {
		t.Fatalf("assess: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Message string                 `json:"message"`
		Data    model.AssessmentResult `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	res := resp.Data
	if res.TotalScore != 4 || res.MaxScore != 10 || res.Percentage != 40 || res.OverallKnowledgeLevel != "Basic" {
		t.Fatalf("result: %+v", res)
	}
	if !res.SavedToDatabase || resp.Message != res.Message {
		t.Fatalf("persist: saved=%v message=%q", res.SavedToDatabase, resp.Message)
	}

	w, _ = do(r, http.MethodGet, "/api/admin/assessments/phishing-detection/history?email=ruwan@example.com", nil)
	var hist struct {
		Data model.AssessmentHistory `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &hist)
	if w.Code != http.StatusOK || hist.Data.TotalAttempts != 1 {
		t.Fatalf("history: %d %s", w.Code, w.Body.String())
	}
}

func TestAssessValidation(t *testing.T) {
	r := newRouter(t, false)
	cases := []struct {
		name   string
		mutate func(m map[string]interface{})
	}{
		{"bad email", func(m map[string]interface{}) {
			m["user_profile"].(map[string]interface{})["email"] = "not-an-email"
		}},
		{"bad education", func(m map[string]interface{}) {
			m["user_profile"].(map[string]interface{})["education_level"] = "PhD"
		}},
		{"bad proficiency", func(m map[string]interface{}) {
			m["user_profile"].(map[string]interface{})["proficiency"] = "Expert"
		}},
		{"no answers", func(m map[string]interface{}) {
			m["answers"] = []map[string]interface{}{}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := validSubmission()
			tc.mutate(body)
			w, _ := do(r, http.MethodPost, "/api/assessments/phishing/assess", body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("want 400 got=%d body=%s", w.Code, w.Body.String())
			}
		})
	}
}

func TestAssessWithoutSinkStillScores(t *testing.T) {
	r := newRouter(t, false)
	w, _ := do(r, http.MethodPost, "/api/assessments/phishing/assess", validSubmission())
	var resp struct {
		Data model.AssessmentResult `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if w.Code != http.StatusOK || resp.Data.SavedToDatabase || resp.Data.TotalScore != 4 {
		t.Fatalf("degraded assess: %d %s", w.Code, w.Body.String())
	}

	w, _ = do(r, http.MethodGet, "/api/admin/assessments/phishing/stats", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("stats without sink: want 503 got=%d", w.Code)
	}
}

type limitRecorder struct {
	limits []int
}

func (l *limitRecorder) Record(context.Context, string, string, string, float64) error { return nil }

func (l *limitRecorder) Top(_ context.Context, _ string, limit int) ([]model.LeaderboardEntry, error) {
	l.limits = append(l.limits, limit)
	return []model.LeaderboardEntry{}, nil
}

func (l *limitRecorder) Ping(context.Context) error { return nil }

func TestLeaderboardDefaultSize(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cat, _ := domain.Lookup("phishing-detection")
	pipelines := []*pipeline.Pipeline{pipeline.New(cat, pipeline.Artifacts{})}

	cases := []struct {
		name       string
		configured int
		query      string
		want       int
	}{
		{"configured size", 3, "", 3},
		{"explicit limit", 3, "?limit=7", 7},
		{"unset", 0, "", util.DefaultLeaderboardSize},
		{"over max", 500, "", util.MaxLeaderboardSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lb := &limitRecorder{}
			ac := NewAssessmentController(service.NewAssessmentService(pipelines, nil, lb), tc.configured)
			r := gin.New()
			r.GET("/api/assessments/:domain/leaderboard", ac.Leaderboard)

			w, _ := do(r, http.MethodGet, "/api/assessments/phishing/leaderboard"+tc.query, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("leaderboard: %d %s", w.Code, w.Body.String())
			}
			if len(lb.limits) != 1 || lb.limits[0] != tc.want {
				t.Fatalf("limit: want=%d got=%v", tc.want, lb.limits)
			}
		})
	}
}
