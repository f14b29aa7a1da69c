package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/clinicscribe-team/clinic-scribe/pkg/validator"

	"github.com/clinicscribe-team/clinic-scribe/internal/adapter/handler"
	"github.com/clinicscribe-team/clinic-scribe/internal/adapter/repository"
	"github.com/clinicscribe-team/clinic-scribe/internal/infrastructure/cache"
	"github.com/clinicscribe-team/clinic-scribe/internal/infrastructure/database"
	"github.com/clinicscribe-team/clinic-scribe/internal/infrastructure/storage"
	consultationuc "github.com/clinicscribe-team/clinic-scribe/internal/usecase/consultation"
	recorduc "github.com/clinicscribe-team/clinic-scribe/internal/usecase/record"
	similarityuc "github.com/clinicscribe-team/clinic-scribe/internal/usecase/similarity"
	pkgai "github.com/clinicscribe-team/clinic-scribe/pkg/ai"
	"github.com/clinicscribe-team/clinic-scribe/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Running migrations (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize Redis
	log.Println("📦 Connecting to Redis...")
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize MinIO for consultation recordings
	log.Println("📦 Connecting to object storage...")
	minioClient, err := storage.NewMinIOClient(&cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	patientRepo := repository.NewPatientRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	recordRepo := repository.NewRecordRepository(db)

	// Initialize AI clients and pipeline services
	log.Println("🤖 Initializing AI components...")
	groqClient := pkgai.NewGroqClient(&cfg.Groq)
	googleClient := pkgai.NewGoogleAIClient(&cfg.GoogleAI)

	consultationService := consultationuc.NewService(groqClient, groqClient, minioClient, cfg, logger)
	similarityService := similarityuc.NewService(googleClient, logger)
	recordService := recorduc.NewService(recordRepo, bookingRepo, similarityService, logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	aiHandler := handler.NewAI(consultationService, similarityService, logger)
	patientHandler := handler.NewPatient(patientRepo, logger)
	bookingHandler := handler.NewBooking(bookingRepo, patientRepo, logger)
	recordHandler := handler.NewRecord(recordService, logger)
	dashboardHandler := handler.NewDashboard(recordRepo, redisClient, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, aiHandler, patientHandler, bookingHandler, recordHandler, dashboardHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
