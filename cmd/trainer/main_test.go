package main

import (
	"os"
	"path/filepath"
	"testing"

	"awareness_backend/internal/model"
	"awareness_backend/internal/pipeline"
)

func TestAwarenessClass(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{100, "Expert"},
		{75, "Expert"},
		{74.9, "Intermediate"},
		{50, "Intermediate"},
		{49.9, "Beginner"},
		{0, "Beginner"},
	}
	for _, tc := range cases {
		if got := awarenessClass(tc.pct).String(); got != tc.want {
			t.Fatalf("awarenessClass(%v): want=%q got=%q", tc.pct, tc.want, got)
		}
	}
}

func TestScoreAnswerIgnoresCase(t *testing.T) {
	sheet := pipeline.NewAnswerSheet([]model.Question{{
		Question: "Lock screen?",
		Options: []model.Option{
			{Text: "Always", Marks: 10, Level: "advanced"},
			{Text: "Never", Marks: 0, Level: "wrong"},
		},
	}})
	opts := sheet.OptionValues()[0]
	if got := scoreAnswer(sheet, "Lock screen?", "always", opts); got != 10 {
		t.Fatalf("case-insensitive match: got=%d", got)
	}
	if got := scoreAnswer(sheet, "Lock screen?", "Sometimes", opts); got != 0 {
		t.Fatalf("unknown answer: got=%d", got)
	}
}

func TestReadCSVDropsBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "responses.csv")
	body := "\ufeffTimestamp,Lock screen?\n2024-01-01,Always\n2024-01-02,Never\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	ds, err := readCSV(path)
	if err != nil {
		t.Fatalf("readCSV: %v", err)
	}
	if ds.header[0] != "Timestamp" || len(ds.rows) != 2 || ds.value(ds.rows[1], 1) != "Never" {
		t.Fatalf("dataset: %+v", ds)
	}
}
