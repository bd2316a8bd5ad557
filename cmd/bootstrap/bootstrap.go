package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-booking-api/config"
	deliveryHttp "hospital-booking-api/internal/delivery/http"
	"hospital-booking-api/internal/delivery/http/handler"
	"hospital-booking-api/internal/delivery/http/middleware"
	"hospital-booking-api/internal/infrastructure/cache"
	"hospital-booking-api/internal/infrastructure/database"
	"hospital-booking-api/internal/infrastructure/messaging"
	"hospital-booking-api/internal/repository"
	"hospital-booking-api/internal/service"
	"hospital-booking-api/internal/usecase"
	"hospital-booking-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Publisher   service.EventPublisher
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	cfg, log, err := loadConfig()
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	log.Info("Database connected successfully")

	if cfg.DB.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			app.Close()
			return nil, err
		}
		log.Info("Database schema aligned")
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	log.Info("Redis connected successfully")

	// Initialize event publisher
	publisher, err := newEventPublisher(cfg.Kafka, log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to configure Kafka: %w", err)
	}
	app.Publisher = publisher

	// Initialize all layers
	app.Server = initializeServer(cfg, log, db, redisClient, publisher)

	return app, nil
}

// Migrate aligns the schema with the entities and exits.
func Migrate() error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer closeDB(db)

	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	log.Info("Database schema aligned")
	return nil
}

// Seed upserts the catalog file into the database. An empty path falls back
// to CATALOG_SEED_FILE.
func Seed(ctx context.Context, path string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if path == "" {
		path = cfg.Catalog.SeedFile
	}

	catalog, err := service.LoadCatalog(path)
	if err != nil {
		return err
	}

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer closeDB(db)

	seeder := service.NewCatalogSeeder(
		db,
		log,
		repository.NewDoctorSpecializationRepository(),
		repository.NewRequestTypeRepository(),
		repository.NewTestTypeRepository(),
		repository.NewMedicineRepository(),
	)

	result, err := seeder.Seed(ctx, catalog)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"file":    path,
		"created": result.Created,
		"updated": result.Updated,
	}).Info("Catalog seeded")
	return nil
}

func loadConfig() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := setupLogger(cfg.App.LogLevel)
	log.Info("Configuration loaded successfully")
	return cfg, log, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) *logrus.Logger {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
		logrus.Warnf("Unknown log level %q, using info", level)
	}
	logrus.SetLevel(parsed)

	return logrus.StandardLogger()
}

// newEventPublisher returns a Kafka publisher when enabled and a no-op one otherwise.
func newEventPublisher(cfg config.KafkaConfig, log *logrus.Logger) (service.EventPublisher, error) {
	if !cfg.Enabled {
		log.Info("Kafka disabled, request events will not be published")
		return service.NewNoopEventPublisher(log), nil
	}

	writer, err := messaging.NewKafkaWriter(cfg)
	if err != nil {
		return nil, err
	}
	return service.NewKafkaEventPublisher(writer, log), nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client, publisher service.EventPublisher) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	patientRepo := repository.NewPatientRepository()
	doctorRepo := repository.NewDoctorRepository()
	specializationRepo := repository.NewDoctorSpecializationRepository()
	nurseRepo := repository.NewNurseRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	historyRepo := repository.NewAppointmentHistoryRepository()
	requestRepo := repository.NewRequestRepository()
	requestTypeRepo := repository.NewRequestTypeRepository()
	testRepo := repository.NewTestRepository()
	testTypeRepo := repository.NewTestTypeRepository()
	medicineRepo := repository.NewMedicineRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	medicalRecordRepo := repository.NewMedicalRecordRepository()
	notificationRepo := repository.NewNotificationRepository()

	// Initialize services
	historyService := service.NewAppointmentHistoryService(log, historyRepo)
	termCache := service.NewRedisTermCache(redisClient, cfg.Redis.TermsCacheTTL, log)

	// Initialize usecases
	termBookingUsecase := usecase.NewTermBookingUsecase(db, log, patientRepo, nurseRepo, appointmentRepo, requestRepo, requestTypeRepo, notificationRepo, historyService, publisher, termCache)
	patientHistoryUsecase := usecase.NewPatientHistoryUsecase(db, log, patientRepo, requestRepo)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, specializationRepo)
	nurseUsecase := usecase.NewNurseUsecase(db, log, nurseRepo, doctorRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, doctorRepo, historyRepo, historyService, termCache)
	requestUsecase := usecase.NewRequestUsecase(db, log, requestRepo, patientRepo, doctorRepo, nurseRepo, appointmentRepo, requestTypeRepo, historyService, publisher, termCache)
	testUsecase := usecase.NewTestUsecase(db, log, testRepo, testTypeRepo, requestRepo)
	specializationUsecase := usecase.NewSpecializationUsecase(db, log, specializationRepo)
	requestTypeUsecase := usecase.NewRequestTypeUsecase(db, log, requestTypeRepo)
	testTypeUsecase := usecase.NewTestTypeUsecase(db, log, testTypeRepo)
	medicineUsecase := usecase.NewMedicineUsecase(db, log, medicineRepo)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(db, log, prescriptionRepo, doctorRepo, medicineRepo)
	medicalRecordUsecase := usecase.NewMedicalRecordUsecase(db, log, medicalRecordRepo, patientRepo, doctorRepo)
	notificationUsecase := usecase.NewNotificationUsecase(db, log, notificationRepo)

	// Initialize handlers
	handlers := deliveryHttp.Handlers{
		Booking:       handler.NewBookingHandler(termBookingUsecase, patientHistoryUsecase, customValidator),
		Patient:       handler.NewPatientHandler(patientUsecase, medicalRecordUsecase, customValidator),
		Doctor:        handler.NewDoctorHandler(doctorUsecase, customValidator),
		Nurse:         handler.NewNurseHandler(nurseUsecase, customValidator),
		Appointment:   handler.NewAppointmentHandler(appointmentUsecase, customValidator),
		Request:       handler.NewRequestHandler(requestUsecase, testUsecase, customValidator),
		Test:          handler.NewTestHandler(testUsecase, customValidator),
		Catalog:       handler.NewCatalogHandler(specializationUsecase, requestTypeUsecase, testTypeUsecase, medicineUsecase, customValidator),
		Prescription:  handler.NewPrescriptionHandler(prescriptionUsecase, customValidator),
		MedicalRecord: handler.NewMedicalRecordHandler(medicalRecordUsecase, customValidator),
		Notification:  handler.NewNotificationHandler(notificationUsecase),
	}

	// Initialize middleware
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigins)

	// Initialize router
	router := deliveryHttp.NewRouter(handlers, loggingMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close releases the publisher, Redis and the database, in that order
func (app *App) Close() {
	// Flush pending events before the stores go away
	if app.Publisher != nil {
		if err := app.Publisher.Close(); err != nil {
			logrus.Warnf("Failed to close event publisher: %v", err)
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}

	if app.DB != nil {
		closeDB(app.DB)
	}
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.Close()
	}
}
