package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"study_planner_backend/internal/config"
	"study_planner_backend/internal/controller"
	"study_planner_backend/internal/repository"
	"study_planner_backend/internal/service"
	"study_planner_backend/pkg/configwatcher"
	"study_planner_backend/pkg/database"
	"study_planner_backend/pkg/logger"
	"study_planner_backend/pkg/monitoring"
	"study_planner_backend/pkg/security"
	"study_planner_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user          *repository.UserRepository
	subject       *repository.SubjectRepository
	weekConfig    *repository.WeekConfigRepository
	scheduleBlock *repository.ScheduleBlockRepository
	material      *repository.MaterialRepository
	progress      *repository.ProgressRepository
	streak        *repository.StreakRepository
	aiModel       *repository.AIModelRepository
}

type services struct {
	schedule    *service.ScheduleService
	regenerator *service.Regenerator
	subject     *service.SubjectService
	weekConfig  *service.WeekConfigService
	material    *service.MaterialService
	streak      *service.StreakService
	ai          *service.AIService
	progress    *service.ProgressService
}

type controllers struct {
	subject    *controller.SubjectController
	weekConfig *controller.WeekConfigController
	schedule   *controller.ScheduleController
	ai         *controller.AIController
	streak     *controller.StreakController
	progress   *controller.ProgressController
	material   *controller.MaterialController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:          repository.NewUserRepository(db),
		subject:       repository.NewSubjectRepository(db),
		weekConfig:    repository.NewWeekConfigRepository(db),
		scheduleBlock: repository.NewScheduleBlockRepository(db),
		material:      repository.NewMaterialRepository(db),
		progress:      repository.NewProgressRepository(db),
		streak:        repository.NewStreakRepository(db),
		aiModel:       repository.NewAIModelRepository(db),
	}
}

func (a *App) initServices(repos *repositories, rdb *redis.Client) *services {
	s := &services{}

	s.schedule = service.NewScheduleService(repos.subject, repos.weekConfig, repos.scheduleBlock)
	s.regenerator = service.NewRegenerator(s.schedule)

	s.subject = service.NewSubjectService(repos.subject, s.regenerator)
	s.weekConfig = service.NewWeekConfigService(repos.weekConfig, s.regenerator)
	s.material = service.NewMaterialService(repos.material, repos.subject)
	s.streak = service.NewStreakService(repos.streak)
	s.ai = service.NewAIService(repos.aiModel, repos.streak, repos.subject, s.regenerator, rdb)
	s.progress = service.NewProgressService(repos.progress, repos.material, repos.subject, s.streak, s.ai, s.regenerator)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		subject:    controller.NewSubjectController(s.subject),
		weekConfig: controller.NewWeekConfigController(s.weekConfig),
		schedule:   controller.NewScheduleController(s.schedule, s.regenerator),
		ai:         controller.NewAIController(s.ai),
		streak:     controller.NewStreakController(s.streak),
		progress:   controller.NewProgressController(s.progress),
		material:   controller.NewMaterialController(s.material),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.L().Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.L().Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Redis 只影响缓存，降级运行
		logger.L().Warn("Redis unavailable, insights caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("study-planner", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.L().Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, repos, cfg)

	// 配置文件热更新
	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(newCfg interface{}) {
		updated, ok := newCfg.(*config.Config)
		if !ok {
			return
		}
		app.Config = updated
		for _, callback := range app.configCallbacks {
			callback(updated)
		}
		logger.L().Info("config reloaded")
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// 等待在途的课表重建收尾
	if a.services != nil && a.services.regenerator != nil {
		a.services.regenerator.Stop()
	}

	// 关闭服务
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.L().Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
