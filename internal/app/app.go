package app

import (
	"context"
	"log"
	"manhaj_backend/internal/config"
	"manhaj_backend/internal/controller"
	"manhaj_backend/internal/repository"
	"manhaj_backend/internal/service"
	"manhaj_backend/pkg/configwatcher"
	"manhaj_backend/pkg/database"
	"manhaj_backend/pkg/logger"
	"manhaj_backend/pkg/monitoring"
	"manhaj_backend/pkg/security"
	"manhaj_backend/pkg/tracing"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

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
	configCallbacks []func(*config.Config)
	tracerProvider  *sdktrace.TracerProvider
}

type repositories struct {
	user        *repository.UserRepository
	school      *repository.SchoolRepository
	section     *repository.SectionRepository
	topic       *repository.TopicRepository
	lesson      *repository.LessonRepository
	lessonMedia *repository.LessonMediaRepository
	document    *repository.DocumentRepository
	video       *repository.VideoRepository
	question    *repository.QuestionRepository
	miniProject *repository.MiniProjectRepository
	calendar    *repository.CalendarRepository
	game        *repository.GameRepository
}

type services struct {
	auth        *service.AuthService
	storage     *service.StorageService
	contentTree *service.ContentTreeService
	document    *service.DocumentService
	video       *service.VideoService
	question    *service.QuestionService
	miniProject *service.MiniProjectService
	calendar    *service.CalendarService
	game        *service.GameService
	user        *service.UserService
	school      *service.SchoolService
}

type controllers struct {
	auth        *controller.AuthController
	contentTree *controller.ContentTreeController
	document    *controller.DocumentController
	video       *controller.VideoController
	question    *controller.QuestionController
	miniProject *controller.MiniProjectController
	calendar    *controller.CalendarController
	game        *controller.GameController
	user        *controller.UserController
	school      *controller.SchoolController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		school:      repository.NewSchoolRepository(db),
		section:     repository.NewSectionRepository(db),
		topic:       repository.NewTopicRepository(db),
		lesson:      repository.NewLessonRepository(db),
		lessonMedia: repository.NewLessonMediaRepository(db),
		document:    repository.NewDocumentRepository(db),
		video:       repository.NewVideoRepository(db),
		question:    repository.NewQuestionRepository(db),
		miniProject: repository.NewMiniProjectRepository(db),
		calendar:    repository.NewCalendarRepository(db),
		game:        repository.NewGameRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.contentTree = service.NewContentTreeService(repos.section, repos.topic, repos.lesson, repos.lessonMedia, db)
	s.document = service.NewDocumentService(repos.document, s.storage, rdb)
	s.video = service.NewVideoService(repos.video, s.storage, cfg)
	s.question = service.NewQuestionService(repos.question)
	s.miniProject = service.NewMiniProjectService(repos.miniProject)
	s.calendar = service.NewCalendarService(repos.calendar, rdb)
	s.game = service.NewGameService(repos.game)
	s.user = service.NewUserService(repos.user, s.storage)
	s.school = service.NewSchoolService(repos.school)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		contentTree: controller.NewContentTreeController(s.contentTree),
		document:    controller.NewDocumentController(s.document),
		video:       controller.NewVideoController(s.video),
		question:    controller.NewQuestionController(s.question),
		miniProject: controller.NewMiniProjectController(s.miniProject),
		calendar:    controller.NewCalendarController(s.calendar),
		game:        controller.NewGameController(s.game),
		user:        controller.NewUserController(s.user),
		school:      controller.NewSchoolController(s.school),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startBackgroundTasks runs the scheduled-publish sweep for both libraries.
func (a *App) startBackgroundTasks(s *services) {
	go func() {
		ticker := time.NewTicker(time.Minute)
		for range ticker.C {
			if n, err := s.document.PublishDue(); err != nil {
				logger.Log.Error("document publish sweep failed", zap.Error(err))
			} else if n > 0 {
				logger.Log.Info("documents published", zap.Int64("count", n))
			}
			if n, err := s.video.PublishDue(); err != nil {
				logger.Log.Error("video publish sweep failed", zap.Error(err))
			} else if n > 0 {
				logger.Log.Info("videos published", zap.Int64("count", n))
			}
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
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
	services := app.initServices(repos, cfg, db, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("manhaj-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
		router.Static("/api/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services)

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		services.storage.Reload(newCfg)
	})
	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(raw interface{}) {
		newCfg, ok := raw.(*config.Config)
		if !ok {
			return
		}
		app.Config = newCfg
		for _, cb := range app.configCallbacks {
			cb(newCfg)
		}
		logger.Log.Info("Configuration reloaded")
	})

	return app
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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
