package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studio-ops-backend/internal/api/handlers"
	"studio-ops-backend/internal/api/routes"
	"studio-ops-backend/internal/config"
	"studio-ops-backend/internal/database"
	apperrors "studio-ops-backend/internal/errors"
	"studio-ops-backend/internal/feed"
	"studio-ops-backend/internal/logger"
	"studio-ops-backend/internal/monitoring"
	"studio-ops-backend/internal/notify"
	"studio-ops-backend/internal/repository"
	"studio-ops-backend/internal/service"
	"studio-ops-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "studio-ops-backend/docs" // This is needed for swag
)

//	@title			Studio Operations Backend API
//	@version		1.0
//	@description	Backend API for the studio production workflow: team directory, scheduled events, crew assignment, pipeline stages, deliverables and time tracking.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@host		localhost:7008
//	@BasePath	/api/v1

const shutdownTimeout = 15 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if apperrors.IsConfiguration(err) {
		log.Fatal("Invalid configuration: ", err)
	}
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	if err := monitoring.InitSentry(cfg.SentryDSN, cfg.Environment); err != nil {
		logrus.WithError(err).Warn("Sentry initialization failed, continuing without error reporting")
	}
	defer monitoring.Flush()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	checks := map[string]handlers.DependencyCheck{
		"database": handlers.DatabaseCheck(db),
	}

	// Change feed
	var publisher service.ChangePublisher = feed.NopPublisher{}
	if cfg.RedisURL != "" {
		client, err := feed.Connect(ctx, cfg.RedisURL)
		if err != nil {
			logrus.WithError(err).Warn("Redis unavailable, event changes will not be published")
		} else {
			defer client.Close()
			publisher = feed.NewRedisPublisher(client, cfg.RedisChannel)
			checks["redis"] = func(ctx context.Context) error {
				return client.Ping(ctx).Err()
			}
		}
	}

	// Assignment notifications
	var notifier service.Notifier = notify.NewLogNotifier()
	if cfg.NotificationsEnabled() {
		notifier = notify.NewEmailNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)
	}

	uploads, err := storage.NewLocalStore(cfg.UploadDir, cfg.UploadBaseURL, cfg.MaxUploadBytes)
	if err != nil {
		logrus.Fatal("Failed to initialize upload storage:", err)
	}

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	eventRepo := repository.NewScheduledEventRepository(db)
	memberRepo := repository.NewTeamMemberRepository(db)

	// Initialize services
	store := service.NewEventStore(eventRepo, publisher, validate)
	directory := service.NewTeamDirectory(memberRepo, store, validate)
	store.UseAvailability(directory)
	assignments := service.NewAssignmentEngine(store, directory, notifier, validate)
	stages := service.NewStageController(store, assignments, validate, cfg.RequireFullCrew)
	deliverables := service.NewDeliverableTracker(store, directory, uploads, validate)
	ledger := service.NewTimeLedger(store, directory, validate)

	if err := store.Load(ctx); err != nil {
		logrus.Fatal("Failed to load events:", err)
	}
	if err := directory.Load(ctx); err != nil {
		logrus.Fatal("Failed to load team members:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(&routes.Services{
		Directory:    directory,
		Events:       store,
		Assignments:  assignments,
		Stages:       stages,
		Deliverables: deliverables,
		Ledger:       ledger,
		Checks:       checks,
	}, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
	}

	// Let queued assignment notifications finish
	assignments.Wait()
}
