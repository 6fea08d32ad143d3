package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fadilmartias/cv-optimizer/internal/config"
	"github.com/fadilmartias/cv-optimizer/internal/domain/fiber/handler"
	"github.com/fadilmartias/cv-optimizer/internal/dto"
	"github.com/fadilmartias/cv-optimizer/internal/middleware"
	"github.com/fadilmartias/cv-optimizer/internal/model"
	"github.com/fadilmartias/cv-optimizer/internal/renderer"
	"github.com/fadilmartias/cv-optimizer/internal/repository"
	"github.com/fadilmartias/cv-optimizer/internal/service"
	"github.com/fadilmartias/cv-optimizer/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if err := godotenv.Load(); err != nil {
		log.Warn("could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	if appConfig.Env != "production" {
		log.SetLevel(logrus.DebugLevel)
	}

	app := fiber.New(fiber.Config{
		AppName:   appConfig.Name,
		BodyLimit: 6 * 1024 * 1024,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"success": false, "message": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, " + middleware.UserIDHeader,
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	store := newStore(log, appConfig.StorageDriver)
	generator, modelName, timeout := newGenerator(ctx, log, appConfig.AIProvider)

	analyzer := service.NewCVAnalyzer(generator, modelName, timeout, log)
	log.WithFields(logrus.Fields{
		"provider": appConfig.AIProvider,
		"model":    modelName,
		"enabled":  analyzer.Enabled(),
	}).Info("ai client configured")

	analysisUC := usecase.NewAnalysisUsecase(analyzer, store, renderer.NewChromedpRenderer(), log)
	jobsUC := usecase.NewJobMatchingUsecase(analyzer, log)

	handler.NewCVHandler(analysisUC, jobsUC, appConfig.UploadDir).RegisterRoutes(app)
	handler.NewJobHandler(jobsUC, analysisUC, dto.AIStatusDTO{
		Enabled:  analyzer.Enabled(),
		Provider: appConfig.AIProvider,
		Model:    analyzer.Model(),
	}).RegisterRoutes(app)

	log.Infof("Server running on %s", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

// newGenerator picks the configured provider. A provider that cannot be built
// leaves the analyzer disabled so every AI call is served from fallback data.
func newGenerator(ctx context.Context, log *logrus.Logger, provider string) (service.TextGenerator, string, time.Duration) {
	switch provider {
	case "openrouter":
		cfg := config.LoadOpenRouterConfig()
		client, err := service.NewOpenRouterService(cfg.APIKey, cfg.BaseURL)
		if err != nil {
			log.WithError(err).Warn("openrouter client unavailable, running in fallback mode")
			return nil, cfg.Model, cfg.RequestTimeout
		}
		return client, cfg.Model, cfg.RequestTimeout
	default:
		if provider != "gemini" {
			log.Warnf("unknown AI_PROVIDER %q, using gemini", provider)
		}
		cfg := config.LoadGeminiConfig()
		client, err := service.NewGeminiService(ctx, cfg.APIKey)
		if err != nil {
			log.WithError(err).Warn("gemini client unavailable, running in fallback mode")
			return nil, cfg.Model, cfg.RequestTimeout
		}
		return client, cfg.Model, cfg.RequestTimeout
	}
}

func newStore(log *logrus.Logger, driver string) usecase.CVUploadStore {
	if driver == "memory" {
		log.Warn("using in-memory cv storage, records are lost on restart")
		return repository.NewMemoryCVUploadRepository()
	}
	return repository.NewCVUploadRepository(ConnectDB(log))
}

func ConnectDB(log *logrus.Logger) *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Asia/Jakarta",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	// uuid_generate_v4 backs the cv_uploads primary key
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		log.Fatalf("enable uuid-ossp: %v", err)
	}
	if err := db.AutoMigrate(&model.CVUpload{}); err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
