package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/wipetrack/erasure-api/internal/audit"
	"github.com/wipetrack/erasure-api/internal/cache"
	"github.com/wipetrack/erasure-api/internal/handlers"
	"github.com/wipetrack/erasure-api/internal/jwt"
	"github.com/wipetrack/erasure-api/internal/logger"
	"github.com/wipetrack/erasure-api/internal/middlewares"
	"github.com/wipetrack/erasure-api/internal/repositories"
	"github.com/wipetrack/erasure-api/internal/services"
	"github.com/wipetrack/erasure-api/internal/tenant"
	"github.com/wipetrack/erasure-api/internal/tenantdb"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/wipetrack/erasure-api/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title erasure-api
// @version 1.0.0
// @description Multi-tenant backend for the data-erasure/audit product
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExp,
		adminKey, sweepIntervalSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExp,
		adminKey, sweepIntervalSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, JWT, and operator configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBrokers, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	adminKey string, sweepIntervalSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config (shared main database)
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "erasure")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config (audit events); empty brokers disable publishing
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "audit-events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Operator config
	adminKey = getEnv("ADMIN_API_KEY", "")
	if sweepIntervalSecond, err = strconv.Atoi(getEnv("RESET_SWEEP_INTERVAL_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, databases, Redis, Kafka, and HTTP server. It
// sets up routes, applies middleware, starts the reset-request sweep, and
// handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBrokers, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	adminKey string, sweepIntervalSecond int,
) error {
	// Initialize logger
	log, err := logger.Initialize(logLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer log.Sync()
	log.Infof("Logger initialized with level %s", logLevel)

	// Connect to the shared PostgreSQL database
	sharedDSN := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	log.Infof("Connecting to PostgreSQL at %s:%d", pgHost, pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", sharedDSN)
	if err != nil {
		log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka audit writer (optional)
	var kafkaWriter *kafka.Writer
	if kafkaBrokers != "" {
		kafkaWriter = &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kafkaWriter.Close()
	}
	// A typed nil *kafka.Writer must not reach the interface field.
	auditPublisher := audit.NewPublisher(nil)
	if kafkaWriter != nil {
		auditPublisher = audit.NewPublisher(kafkaWriter)
	}

	// Initialize JWT service
	jwtService := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize cache
	cacheService := cache.New(rdb)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	subuserReadRepo := repositories.NewSubuserReadRepository(db)
	pcReadRepo := repositories.NewPrivateCloudConfigReadRepository(db)
	pcWriteRepo := repositories.NewPrivateCloudConfigWriteRepository(db)
	fpReadRepo := repositories.NewForgotPasswordReadRepository(db)
	fpWriteRepo := repositories.NewForgotPasswordWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	userContextService := services.NewUserContextService(userReadRepo, subuserReadRepo, cacheService)
	privateCloudService := services.NewPrivateCloudService(pcReadRepo, pcWriteRepo, cacheService, auditPublisher)
	tenantConnService := services.NewTenantConnectionService(privateCloudService, sharedDSN)
	authService := services.NewAuthService(userReadRepo, subuserReadRepo, userWriteRepo, jwtService, userContextService, auditPublisher)
	forgotPasswordService := services.NewForgotPasswordService(userReadRepo, fpReadRepo, fpWriteRepo, userWriteRepo, userContextService, auditPublisher)

	// Tenant routing
	contextFactory := tenantdb.NewContextFactory(tenantConnService)
	tenantRouter := tenant.NewRouter(db, contextFactory)
	reportReadRepo := repositories.NewErasureReportReadRepository(tenantRouter)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	forgotPasswordHandler := handlers.NewForgotPasswordHandler(forgotPasswordService)
	resetPasswordHandler := handlers.NewResetPasswordHandler(forgotPasswordService)
	meHandler := handlers.NewMeHandler(userContextService, tenantRouter)
	listReportsHandler := handlers.NewListReportsHandler(reportReadRepo, tenantRouter)
	getReportHandler := handlers.NewGetReportHandler(reportReadRepo, tenantRouter)
	upsertConfigHandler := handlers.NewUpsertConfigHandler(privateCloudService)
	deactivateConfigHandler := handlers.NewDeactivateConfigHandler(privateCloudService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", registerHandler)
		r.Post("/login", loginHandler)
		r.Post("/auth/forgot-password", forgotPasswordHandler)
		r.With(middlewares.TxMiddleware(db)).Post("/auth/reset-password", resetPasswordHandler)

		// Protected routes with JWT + tenant classification
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(jwtService))
			r.Use(middlewares.TenantMiddleware(userContextService, privateCloudService))
			r.Get("/me", meHandler)
			r.Get("/reports", listReportsHandler)
			r.Get("/reports/{id}", getReportHandler)
		})
	})

	// Operator surface
	r.Route("/admin", func(r chi.Router) {
		r.Use(middlewares.AdminKeyMiddleware(adminKey))
		r.Put("/private-cloud-configs", upsertConfigHandler)
		r.Delete("/private-cloud-configs/{email}", deactivateConfigHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Periodic sweep of expired/used reset requests
	go func() {
		ticker := time.NewTicker(time.Duration(sweepIntervalSecond) * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctxShutdown.Done():
				return
			case <-ticker.C:
				if _, err := forgotPasswordService.Sweep(ctxShutdown); err != nil {
					log.Errorw("reset request sweep failed", "error", err)
				}
			}
		}
	}()

	go func() {
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
