package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/WaseemSyawish/lingua/internal/config"
	"github.com/WaseemSyawish/lingua/internal/controller"
	"github.com/WaseemSyawish/lingua/internal/repository"
	"github.com/WaseemSyawish/lingua/internal/service"
	"github.com/WaseemSyawish/lingua/pkg/database"
	"github.com/WaseemSyawish/lingua/pkg/logger"
	"github.com/WaseemSyawish/lingua/pkg/monitoring"
	"github.com/WaseemSyawish/lingua/pkg/ratelimit"
	"github.com/WaseemSyawish/lingua/pkg/security"
	"github.com/WaseemSyawish/lingua/pkg/tracing"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services

	sweeperStop chan struct{}
}

type repositories struct {
	user    *repository.UserRepository
	profile *repository.ProfileRepository
	mastery *repository.MasteryRepository
	session *repository.SessionRepository
}

type services struct {
	ai       *service.AIService
	auth     *service.AuthService
	user     *service.UserService
	session  *service.SessionService
	memory   *service.MemoryService
	mastery  *service.MasteryService
	tutor    *service.TutorService
	analysis *service.AnalysisService
	progress *service.ProgressService
}

type controllers struct {
	auth      *controller.AuthController
	user      *controller.UserController
	session   *controller.SessionController
	chat      *controller.ChatController
	placement *controller.PlacementController
	progress  *controller.ProgressController
	admin     *controller.AdminController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:    repository.NewUserRepository(db),
		profile: repository.NewProfileRepository(db),
		mastery: repository.NewMasteryRepository(db),
		session: repository.NewSessionRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) (*services, error) {
	s := &services{}

	storage, err := service.NewStorageProvider(&cfg.Storage)
	if err != nil {
		return nil, err
	}

	s.ai = service.NewAIService(cfg.AI)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, storage)
	s.session = service.NewSessionService(repos.session, s.ai)
	s.memory = service.NewMemoryService(repos.mastery, repos.session)
	s.mastery = service.NewMasteryService(repos.mastery)
	s.tutor = service.NewTutorService(repos.session, repos.profile, repos.user, s.memory, s.ai, rdb)
	s.analysis = service.NewAnalysisService(s.ai, repos.session, repos.profile, s.mastery)
	s.progress = service.NewProgressService(repos.profile, repos.mastery, repos.session)

	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		user:      controller.NewUserController(s.user),
		session:   controller.NewSessionController(s.session, s.analysis),
		chat:      controller.NewChatController(s.tutor),
		placement: controller.NewPlacementController(s.analysis),
		progress:  controller.NewProgressController(s.progress),
		admin:     controller.NewAdminController(s.progress),
		health:    controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// rateLimiters 各接口的限流配置，后台定期清理过期条目
type rateLimiters struct {
	chat     *ratelimit.Store
	analysis *ratelimit.Store
	auth     *ratelimit.Store
}

func (a *App) initRateLimiters(cfg *config.Config) *rateLimiters {
	chatPerMinute := cfg.RateLimit.ChatPerMinute
	if chatPerMinute <= 0 {
		chatPerMinute = 20
	}
	analysisPerMinute := cfg.RateLimit.AnalysisPerMinute
	if analysisPerMinute <= 0 {
		analysisPerMinute = 5
	}
	authMax := cfg.RateLimit.AuthMaxRequests
	if authMax <= 0 {
		authMax = 10
	}
	authWindow := time.Duration(cfg.RateLimit.AuthWindowMinutes) * time.Minute
	if authWindow <= 0 {
		authWindow = 15 * time.Minute
	}

	limiters := &rateLimiters{
		chat:     ratelimit.NewStore(chatPerMinute, time.Minute),
		analysis: ratelimit.NewStore(analysisPerMinute, time.Minute),
		auth:     ratelimit.NewStore(authMax, authWindow),
	}

	a.sweeperStop = make(chan struct{})
	limiters.chat.StartSweeper(time.Minute, a.sweeperStop)
	limiters.analysis.StartSweeper(time.Minute, a.sweeperStop)
	limiters.auth.StartSweeper(time.Minute, a.sweeperStop)

	return limiters
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	// release 模式默认不自动迁移，需要 --migrate 显式开启
	migrate := cfg.Server.Mode != "release" || cfg.ForceMigrate
	db, err := database.InitDB(&cfg.Database, migrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	svcs, err := app.initServices(repos, cfg, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	app.services = svcs
	ctrls := app.initControllers(svcs, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("lingua-tutor", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	limiters := app.initRateLimiters(cfg)
	app.registerRoutes(router, ctrls, repos, limiters, cfg)

	if cfg.Storage.Type == "local" || cfg.Storage.Type == "" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

// ReloadAIConfig 配置热加载回调，切换对话/分析模型无需重启
func (a *App) ReloadAIConfig(cfg *config.Config) {
	a.services.ai.UpdateConfig(cfg.AI)
	logger.Log.Info("AI config reloaded",
		zap.String("model", cfg.AI.Model),
		zap.String("analysisModel", cfg.AI.AnalysisModel))
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

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

	if a.sweeperStop != nil {
		close(a.sweeperStop)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
