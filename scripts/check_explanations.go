// 检查各领域解析库对题库选项的覆盖情况
//
// 对每个启用的领域，列出缺少解析的 (题号, 选项, 熟练度) 组合。
// 用法: go run scripts/check_explanations.go [configs/config.yaml]

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"awareness_backend/internal/domain"
	"awareness_backend/internal/pipeline"

	"gopkg.in/yaml.v3"
)

type scriptConfig struct {
	Storage struct {
		LocalPath string `yaml:"local_path"`
	} `yaml:"storage"`
	Domains []struct {
		Slug            string `yaml:"slug"`
		AnswerSheet     string `yaml:"answer_sheet"`
		ExplanationBank string `yaml:"explanation_bank"`
		Enabled         bool   `yaml:"enabled"`
	} `yaml:"domains"`
}

func main() {
	path := "configs/config.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg scriptConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	missingTotal := 0
	for _, d := range cfg.Domains {
		if !d.Enabled {
			continue
		}
		cat, ok := domain.Lookup(d.Slug)
		if !ok {
			log.Printf("未知领域: %s", d.Slug)
			continue
		}

		sheet, err := pipeline.LoadAnswerSheet(filepath.Join(cfg.Storage.LocalPath, d.AnswerSheet))
		if err != nil {
			log.Printf("[%s] 题库加载失败: %v", cat.Slug, err)
			continue
		}
		bank, err := pipeline.LoadExplanationBank(filepath.Join(cfg.Storage.LocalPath, d.ExplanationBank), cat.FallbackExplanation)
		if err != nil {
			log.Printf("[%s] 解析库加载失败: %v", cat.Slug, err)
			continue
		}

		report := bank.Coverage(sheet)
		fmt.Printf("[%s] %d/%d explanations present (%d records)\n", cat.Slug, report.Covered, report.Required, bank.Len())
		for _, m := range report.Missing {
			fmt.Printf("  missing: %s\n", m)
		}
		missingTotal += len(report.Missing)
	}

	if missingTotal > 0 {
		os.Exit(1)
	}
}
