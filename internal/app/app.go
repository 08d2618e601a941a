package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"studyhub_backend/internal/config"
	"studyhub_backend/internal/controller"
	"studyhub_backend/internal/repository"
	"studyhub_backend/internal/service"
	"studyhub_backend/internal/util"
	"studyhub_backend/pkg/database"
	"studyhub_backend/pkg/logger"
	"studyhub_backend/pkg/monitoring"
	"studyhub_backend/pkg/security"
	"studyhub_backend/pkg/tracing"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	Store  repository.BlobStore

	services        *services
	tracer          *sdktrace.TracerProvider
	mu              sync.Mutex
	configCallbacks []func(*config.Config)
}

type services struct {
	goal      *service.GoalService
	schedule  *service.ScheduleService
	dashboard *service.DashboardService
}

type controllers struct {
	health    *controller.HealthController
	dashboard *controller.DashboardController
	goal      *controller.GoalController
	schedule  *controller.ScheduleController
}

// RegisterConfigCallback 配置热更新时依次调用
func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 由配置监听器调用；只有 AI 设置可以在运行时替换
func (a *App) ApplyConfig(cfg *config.Config) {
	a.mu.Lock()
	callbacks := append([]func(*config.Config){}, a.configCallbacks...)
	a.mu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
}

// initStore 按 storage.type 选择目标集合的持久化后端
func initStore(ctx context.Context, cfg *config.Config) (repository.BlobStore, error) {
	switch cfg.Storage.Type {
	case util.StorageMemory:
		return repository.NewMemoryBlobStore(), nil
	case util.StorageRedis:
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return repository.NewRedisBlobStore(rdb, "studyhub:"), nil
	case util.StorageDatabase:
		db, err := database.InitDB(&cfg.Database, cfg.Server.Mode == gin.DebugMode)
		if err != nil {
			return nil, err
		}
		return repository.NewGormBlobStore(db), nil
	case util.StorageMinio:
		return repository.NewMinioBlobStore(ctx, &cfg.Storage)
	case util.StorageOSS:
		return repository.NewOSSBlobStore(&cfg.Storage)
	default:
		return nil, fmt.Errorf("unsupported storage type %q", cfg.Storage.Type)
	}
}

func initServices(store repository.BlobStore, generator service.ScheduleGenerator, cfg *config.Config) *services {
	goalRepo := repository.NewGoalRepository(store, cfg.Storage.GoalsKey)
	return &services{
		goal:      service.NewGoalService(goalRepo, time.Now),
		schedule:  service.NewScheduleService(generator),
		dashboard: service.NewDashboardService(time.Now),
	}
}

func initControllers(s *services) *controllers {
	return &controllers{
		health:    controller.NewHealthController(s.goal),
		dashboard: controller.NewDashboardController(s.dashboard),
		goal:      controller.NewGoalController(s.goal),
		schedule:  controller.NewScheduleController(s.schedule),
	}
}

func setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	store, err := initStore(context.Background(), cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize goal store",
			zap.String("type", cfg.Storage.Type), zap.Error(err))
		log.Fatalf("Failed to initialize goal store: %v", err)
	}

	ai := service.NewAIService(cfg.AI)
	app := newApp(cfg, store, service.NewAIScheduleGenerator(ai))
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		ai.UpdateConfig(newCfg.AI)
		logger.Log.Info("AI config updated", zap.String("model", newCfg.AI.Model))
	})

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	return app
}

// newApp 组装服务、控制器和路由，不接触外部基础设施
func newApp(cfg *config.Config, store repository.BlobStore, generator service.ScheduleGenerator) *App {
	gin.SetMode(cfg.Server.Mode)

	// gin 绑定错误中的字段名与 JSON 保持一致
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		service.UseJSONFieldNames(v)
	}

	monitoring.Init()

	app := &App{
		Config: cfg,
		Store:  store,
	}
	app.services = initServices(store, generator, cfg)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	setupMiddlewares(router, cfg)
	registerRoutes(router, initControllers(app.services), cfg)
	app.Router = router

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
			log.Fatalf("listen: %s\n", err)
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

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	logger.Log.Info("Server exiting")
}
