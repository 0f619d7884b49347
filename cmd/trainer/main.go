// 离线训练意识水平分类器，输出 model.json / scaler.json / feature_names.json
//
// 用法: go run ./cmd/trainer -answers data/password_security/answer_sheet.json \
//	-data data/password_security/responses.csv -out data/password_security
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"

	"awareness_backend/internal/mlmodel"
	"awareness_backend/internal/model"
	"awareness_backend/internal/pipeline"
)

// 人口统计列不参与训练
var demographicColumns = map[string]bool{
	"Respondent_ID":               true,
	"Timestamp":                   true,
	"Select Your Age":             true,
	"Select Your Gender":          true,
	"Select Your Education level": true,
	"IT proficiency at the":       true,
}

type dataset struct {
	header []string
	rows   [][]string
}

func readCSV(path string) (*dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	ds := &dataset{header: header}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		ds.rows = append(ds.rows, rec)
	}
	return ds, nil
}

func (d *dataset) value(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// scoreAnswer 精确匹配优先，其次忽略大小写
func scoreAnswer(sheet *pipeline.AnswerSheet, question, answer string, options []string) int {
	if points, level := sheet.Score(question, answer); points != 0 || level != model.AnswerLevelWrong {
		return points
	}
	for _, opt := range options {
		if strings.EqualFold(opt, answer) {
			points, _ := sheet.Score(question, opt)
			return points
		}
	}
	return 0
}

func awarenessClass(percentage float64) mlmodel.ClassLabel {
	switch {
	case percentage >= 75:
		return mlmodel.StringLabel("Expert")
	case percentage >= 50:
		return mlmodel.StringLabel("Intermediate")
	default:
		return mlmodel.StringLabel("Beginner")
	}
}

func main() {
	answersPath := flag.String("answers", "", "answer sheet JSON")
	dataPath := flag.String("data", "", "survey responses CSV")
	outDir := flag.String("out", ".", "artifact output directory")
	maxIter := flag.Int("max-iter", 1000, "LBFGS iteration limit")
	seed := flag.Int64("seed", 42, "train/test split seed")
	flag.Parse()

	if *answersPath == "" || *dataPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	sheet, err := pipeline.LoadAnswerSheet(*answersPath)
	if err != nil {
		log.Fatalf("load answer sheet: %v", err)
	}
	ds, err := readCSV(*dataPath)
	if err != nil {
		log.Fatalf("load dataset: %v", err)
	}

	columns := make(map[string]int, len(ds.header))
	dropped := 0
	for i, h := range ds.header {
		if demographicColumns[h] {
			dropped++
			continue
		}
		columns[h] = i
	}
	fmt.Printf("Loaded %d responses, dropped %d demographic columns\n", len(ds.rows), dropped)

	// 题库中出现在数据集里的题目，保持题库顺序
	var questions []string
	var questionOptions [][]string
	allOptions := sheet.OptionValues()
	for i, q := range sheet.QuestionTexts() {
		if _, ok := columns[q]; ok {
			questions = append(questions, q)
			questionOptions = append(questionOptions, allOptions[i])
		} else {
			fmt.Printf("  question not in dataset: %s\n", q)
		}
	}
	if len(questions) == 0 {
		log.Fatalf("no answer sheet question matches a dataset column")
	}

	maxTotal := 0
	for _, q := range questions {
		maxTotal += sheet.MaxScore(q)
	}

	observed := make([][]string, len(questions))
	labels := make([]mlmodel.ClassLabel, len(ds.rows))
	dist := map[string]int{}
	for r, row := range ds.rows {
		total := 0
		for i, q := range questions {
			answer := ds.value(row, columns[q])
			observed[i] = append(observed[i], answer)
			total += scoreAnswer(sheet, q, answer, questionOptions[i])
		}
		labels[r] = awarenessClass(pipeline.Percentage(total, maxTotal))
		dist[labels[r].String()]++
	}
	fmt.Printf("Max possible score: %d, level distribution: %v\n", maxTotal, dist)

	names, offsets := mlmodel.BuildSchema(observed)
	index := make(map[string]int, len(names))
	for i, n := range names {
		index[n] = i
	}
	X := make([][]float64, len(ds.rows))
	for r := range ds.rows {
		x := make([]float64, len(names))
		for i := range questions {
			if col, ok := index[mlmodel.ColumnName(offsets[i], observed[i][r])]; ok {
				x[col] = 1
			}
		}
		X[r] = x
	}
	fmt.Printf("Total features created: %d, offsets: %v\n", len(names), offsets)

	// 固定种子的 80/20 划分
	perm := rand.New(rand.NewSource(*seed)).Perm(len(X))
	split := len(X) * 8 / 10
	if split == 0 {
		split = len(X)
	}
	pick := func(idx []int) ([][]float64, []mlmodel.ClassLabel) {
		xs := make([][]float64, 0, len(idx))
		ys := make([]mlmodel.ClassLabel, 0, len(idx))
		for _, i := range idx {
			xs = append(xs, X[i])
			ys = append(ys, labels[i])
		}
		return xs, ys
	}
	trainX, trainY := pick(perm[:split])
	testX, testY := pick(perm[split:])

	scaler, err := mlmodel.FitScaler(trainX)
	if err != nil {
		log.Fatalf("fit scaler: %v", err)
	}
	scale := func(rows [][]float64) [][]float64 {
		out := make([][]float64, len(rows))
		for i, row := range rows {
			out[i], _ = scaler.Transform(row)
		}
		return out
	}

	opts := mlmodel.DefaultTrainOptions()
	opts.MaxIter = *maxIter
	clf, err := mlmodel.FitLogisticRegression(scale(trainX), trainY, opts)
	if err != nil {
		log.Fatalf("fit model: %v", err)
	}

	fmt.Printf("Train accuracy: %.3f\n", mlmodel.Accuracy(clf, scale(trainX), trainY))
	if len(testX) > 0 {
		fmt.Printf("Test accuracy: %.3f (%d samples)\n", mlmodel.Accuracy(clf, scale(testX), testY), len(testX))
	}

	if err := mlmodel.SaveArtifacts(*outDir, clf, scaler, names); err != nil {
		log.Fatalf("save artifacts: %v", err)
	}
	fmt.Printf("Artifacts written to %s\n", *outDir)
}
