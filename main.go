// @title Security Awareness Assessment API
// @version 1.0
// @description 安全意识问卷评分、解析与意识水平预测服务。

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"flag"
	"log"
	"path/filepath"

	"awareness_backend/internal/app"
	"awareness_backend/internal/config"
	"awareness_backend/pkg/configwatcher"
	"awareness_backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	configDir := flag.String("config", "configs", "配置目录，需包含 config.yaml")
	watch := flag.Bool("watch", true, "配置文件变更时热加载日志级别等设置")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *watch {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			if err := configwatcher.WatchConfig(ctx, filepath.Join(*configDir, "config.yaml"), application.ApplyConfig); err != nil {
				logger.Log.Warn("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	application.Run()
}
