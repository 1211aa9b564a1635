package main

import (
	"context"
	"errors"
	"log"
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/hiredeck/ats-service/internal/config"
	"github.com/hiredeck/ats-service/internal/domain/fiber/handler"
	"github.com/hiredeck/ats-service/internal/export"
	"github.com/hiredeck/ats-service/internal/middleware"
	"github.com/hiredeck/ats-service/internal/repository"
	"github.com/hiredeck/ats-service/internal/service"
	"github.com/hiredeck/ats-service/internal/store"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
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

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	storageConfig := config.LoadStorageConfig()
	repo := repository.NewFileRepository(storageConfig)
	exporter := export.NewExcelWriter(storageConfig.ExcelFile)
	scorer := newScorer(ctx, appConfig.ATSProvider)

	applicantStore, err := store.New(repo, scorer, exporter)
	if err != nil {
		log.Fatal(err)
	}

	mailer := service.NewMailService()
	handler.NewHRHandler(applicantStore, mailer).RegisterRoutes(app)
	handler.NewCandidateHandler(applicantStore).RegisterRoutes(app)

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			log.Printf("Active goroutines: %d", runtime.NumGoroutine())
		}
	}()

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func newScorer(ctx context.Context, provider string) store.Scorer {
	switch provider {
	case "openrouter":
		log.Println("Using OpenRouter scoring backend")
		return service.NewOpenRouterService()
	default:
		gemini, err := service.NewGeminiService(ctx)
		if err != nil {
			log.Fatal(err)
		}
		return gemini
	}
}
