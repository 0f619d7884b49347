package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"awareness_backend/internal/config"
	"awareness_backend/internal/controller"
	"awareness_backend/internal/domain"
	"awareness_backend/internal/middleware"
	"awareness_backend/internal/pipeline"
	"awareness_backend/internal/repository"
	"awareness_backend/internal/service"
	"awareness_backend/internal/util"
	"awareness_backend/pkg/database"
	"awareness_backend/pkg/logger"
	"awareness_backend/pkg/monitoring"
	"awareness_backend/pkg/security"
	"awareness_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

const Version = "1.0.0"

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	Sink            repository.ResultSink
	Mongo           *mongo.Client
	Redis           *redis.Client
	services        *services
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type services struct {
	storage    *service.StorageService
	assessment *service.AssessmentService
}

type controllers struct {
	assessment *controller.AssessmentController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 热加载后调整日志级别并通知回调；端口、存储等需要重启才生效
func (a *App) ApplyConfig(cfg *config.Config) {
	logger.SetLevel(logger.ResolveLevel(cfg.Server.Mode, cfg.Log.Level))
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

// initSink 连接结果存储，失败时返回 nil，评估照常进行但不保存
func (a *App) initSink(cfg *config.Config) repository.ResultSink {
	log := logger.Log.With(zap.String("driver", cfg.Database.Driver))

	switch cfg.Database.Driver {
	case util.SinkMongo:
		client, err := database.InitMongo(&cfg.Mongo)
		if err != nil {
			log.Warn("MongoDB unavailable, results will not be saved", zap.Error(err))
			return nil
		}
		a.Mongo = client
		collections := make(map[string]string)
		for _, d := range cfg.EnabledDomains() {
			name := d.Collection
			if name == "" {
				if cat, ok := domain.Lookup(d.Slug); ok {
					name = cat.Collection
				}
			}
			collections[d.Slug] = name
		}
		return repository.NewMongoAssessmentRepo(client, cfg.Mongo.Database, collections)
	case util.SinkMySQL, util.SinkPostgres, util.SinkSQLite:
		db, err := database.InitDB(&cfg.Database, cfg.Server.Mode == gin.DebugMode)
		if err != nil {
			log.Warn("Database unavailable, results will not be saved", zap.Error(err))
			return nil
		}
		return repository.NewAssessmentRepository(db, cfg.Database.Driver)
	case util.SinkFile:
		path := cfg.Database.Path
		if path == "" {
			path = filepath.Join("data", "assessments.jsonl")
		}
		repo, err := repository.NewFileAssessmentRepo(path)
		if err != nil {
			log.Warn("Result file unavailable, results will not be saved", zap.Error(err))
			return nil
		}
		return repo
	}

	log.Info("Result storage disabled")
	return nil
}

// initLeaderboard Redis 不可用时排行榜关闭
func (a *App) initLeaderboard(cfg *config.Config) service.Leaderboard {
	if !cfg.Redis.Enabled {
		return nil
	}
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Redis unavailable, leaderboard disabled", zap.Error(err))
		return nil
	}
	a.Redis = rdb
	return repository.NewLeaderboardRepository(rdb)
}

// initPipelines 每个启用的领域加载一次，之后只读共享
func (a *App) initPipelines(ctx context.Context, cfg *config.Config, opener pipeline.Opener) []*pipeline.Pipeline {
	var pipelines []*pipeline.Pipeline
	for _, d := range cfg.EnabledDomains() {
		cat, ok := domain.Lookup(d.Slug)
		if !ok {
			continue
		}
		if d.Name != "" {
			named := *cat
			named.Name = d.Name
			cat = &named
		}
		pipelines = append(pipelines, pipeline.Load(ctx, cat, opener, pipeline.Sources{
			AnswerSheet:     d.AnswerSheet,
			ExplanationBank: d.ExplanationBank,
			Model:           d.Model,
			Scaler:          d.Scaler,
			FeatureNames:    d.FeatureNames,
			FeatureOffsets:  d.FeatureOffsets,
		}))
	}
	return pipelines
}

func (a *App) initServices(cfg *config.Config) *services {
	s := &services{}
	s.storage = service.NewStorageService(&cfg.Storage)

	pipelines := a.initPipelines(context.Background(), cfg, s.storage)
	a.Sink = a.initSink(cfg)
	s.assessment = service.NewAssessmentService(pipelines, a.Sink, a.initLeaderboard(cfg))
	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		assessment: controller.NewAssessmentController(s.assessment, a.Config.Leaderboard.Size),
		health:     controller.NewHealthController(s.assessment, Version),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
	router.Use(middleware.RequestLogger(cfg.Server.LogFormat))
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully", zap.String("mode", cfg.Server.Mode))

	gin.SetMode(cfg.Server.Mode)
	if err := util.RegisterValidators(); err != nil {
		logger.Log.Fatal("Failed to register validators", zap.Error(err))
	}

	app := &App{Config: cfg}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Warn("Failed to initialize tracing", zap.Error(err))
		} else {
			app.tracer = tp
		}
	}

	app.services = app.initServices(cfg)
	controllers := app.initControllers(app.services)

	// 监控初始化
	monitoring.Init()

	router := gin.New()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("listen failed", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}
	a.Close(ctx)

	logger.Log.Info("Server exiting")
}

// Close 释放存储、缓存与追踪资源
func (a *App) Close(ctx context.Context) {
	if a.Sink != nil {
		if err := a.Sink.Close(ctx); err != nil {
			logger.Log.Error("Failed to close result storage", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	_ = logger.Log.Sync()
}
