package repository

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"awareness_backend/internal/model"
)

// FileAssessmentRepo 以 JSON Lines 追加写入本地文件，适合无数据库的单机部署
type FileAssessmentRepo struct {
	path string
	mu   sync.Mutex
}

func NewFileAssessmentRepo(path string) (*FileAssessmentRepo, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return &FileAssessmentRepo{path: path}, nil
}

func (r *FileAssessmentRepo) Name() string {
	return "file"
}

func (r *FileAssessmentRepo) Save(_ context.Context, rec *model.AssessmentRecord) error {
	if rec.ID == "" {
		rec.ID = model.GenerateUUID()
	}
	line, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (r *FileAssessmentRepo) readAll(domain string, keep func(*model.AssessmentRecord) bool) ([]model.AssessmentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Open(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []model.AssessmentRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var rec model.AssessmentRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", r.path, line, err)
		}
		if rec.Domain != domain || (keep != nil && !keep(&rec)) {
			continue
		}
		out = append(out, rec)
	}
	return out, scanner.Err()
}

func (r *FileAssessmentRepo) Stats(_ context.Context, domain string) (*model.AssessmentStats, error) {
	records, err := r.readAll(domain, nil)
	if err != nil {
		return nil, err
	}
	return statsFromRecords(records), nil
}

func (r *FileAssessmentRepo) ListByEmail(_ context.Context, domain, email string) ([]model.AssessmentRecord, error) {
	records, err := r.readAll(domain, func(rec *model.AssessmentRecord) bool {
		return rec.Email == email
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})
	return records, nil
}

func (r *FileAssessmentRepo) Ping(context.Context) error {
	_, err := os.Stat(filepath.Dir(r.path))
	return err
}

func (r *FileAssessmentRepo) Close(context.Context) error {
	return nil
}
