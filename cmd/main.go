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
	kafka "github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/habit-tracker/internal/handlers"

	"github.com/sbilibin2017/habit-tracker/internal/jwt"
	"github.com/sbilibin2017/habit-tracker/internal/logger"
	"github.com/sbilibin2017/habit-tracker/internal/repositories"
	"github.com/sbilibin2017/habit-tracker/internal/services"

	"github.com/sbilibin2017/habit-tracker/internal/middlewares"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title habit-tracker API
// @version 1.0.0
// @description Service for tracking daily habits, todos and tasks
// @host localhost:8080
// @BasePath /
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
		authRateLimit, authRateWindowSecond,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExp,
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
		authRateLimit, authRateWindowSecond,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExp,
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

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	authRateLimit, authRateWindowSecond int,
	kafkaBrokers, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
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

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config; an empty REDIS_HOST disables the auth rate limiter.
	redisHost = getEnv("REDIS_HOST", "")
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
	if authRateLimit, err = strconv.Atoi(getEnv("AUTH_RATE_LIMIT", "10")); err != nil {
		return
	}
	if authRateWindowSecond, err = strconv.Atoi(getEnv("AUTH_RATE_WINDOW_SECOND", "60")); err != nil {
		return
	}

	// Kafka config; an empty KAFKA_BROKERS disables check-in event publishing.
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "habit-checkins")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	authRateLimit, authRateWindowSecond int,
	kafkaBrokers, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s", dsn)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis when configured; the limiter is skipped otherwise.
	var authLimiter middlewares.Limiter
	if redisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
			Password:     redisPassword,
			DB:           redisDB,
			PoolSize:     redisPoolSize,
			MinIdleConns: redisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Fatal("Redis connection error:", err)
		}
		defer rdb.Close()
		authLimiter = middlewares.NewRedisLimiter(rdb, "auth",
			authRateLimit, time.Duration(authRateWindowSecond)*time.Second)
	}

	// Connect Kafka writer when configured; check-in events are skipped otherwise.
	var kafkaWriter services.KafkaWriter
	if kafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Initialize JWT service
	jwt := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	todoReadRepo := repositories.NewTodoReadRepository(db)
	todoWriteRepo := repositories.NewTodoWriteRepository(db)
	habitReadRepo := repositories.NewHabitReadRepository(db)
	habitWriteRepo := repositories.NewHabitWriteRepository(db)
	entryReadRepo := repositories.NewHabitEntryReadRepository(db)
	entryWriteRepo := repositories.NewHabitEntryWriteRepository(db)
	taskReadRepo := repositories.NewTaskReadRepository(db)
	taskWriteRepo := repositories.NewTaskWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwt)
	todoService := services.NewTodoService(todoReadRepo, todoWriteRepo)
	habitService := services.NewHabitService(habitReadRepo, habitWriteRepo,
		entryReadRepo, entryWriteRepo, kafkaWriter)
	taskService := services.NewTaskService(taskReadRepo, taskWriteRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	todoListHandler := handlers.NewTodoListHandler(todoService)
	todoCreateHandler := handlers.NewTodoCreateHandler(todoService)
	todoUpdateHandler := handlers.NewTodoUpdateHandler(todoService)
	todoDeleteHandler := handlers.NewTodoDeleteHandler(todoService)
	habitListHandler := handlers.NewHabitListHandler(habitService)
	habitCreateHandler := handlers.NewHabitCreateHandler(habitService)
	habitUpdateHandler := handlers.NewHabitUpdateHandler(habitService)
	habitDeleteHandler := handlers.NewHabitDeleteHandler(habitService)
	checkinMarkHandler := handlers.NewCheckinMarkHandler(habitService)
	checkinClearHandler := handlers.NewCheckinClearHandler(habitService)
	taskListHandler := handlers.NewTaskListHandler(taskService)
	taskCreateHandler := handlers.NewTaskCreateHandler(taskService)
	taskGetHandler := handlers.NewTaskGetHandler(taskService)
	taskUpdateHandler := handlers.NewTaskUpdateHandler(taskService)
	taskDeleteHandler := handlers.NewTaskDeleteHandler(taskService)
	healthHandler := handlers.NewHealthHandler()

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Route("/auth", func(r chi.Router) {
		if authLimiter != nil {
			r.Use(middlewares.RateLimitMiddleware(authLimiter))
		}
		r.Post("/register", registerHandler)
		r.Post("/login", loginHandler)
	})
	r.Get("/healthz", healthHandler)

	// Protected routes with JWT middleware; mutations run in a per-request
	// transaction.
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwt))
		r.Use(middlewares.TxMiddleware(db))

		r.Get("/todos", todoListHandler)
		r.Post("/todos", todoCreateHandler)
		r.Put("/todos/{id}", todoUpdateHandler)
		r.Delete("/todos/{id}", todoDeleteHandler)

		r.Get("/habits", habitListHandler)
		r.Post("/habits", habitCreateHandler)
		r.Put("/habits/{id}", habitUpdateHandler)
		r.Delete("/habits/{id}", habitDeleteHandler)
		r.Post("/habits/{id}/checkins", checkinMarkHandler)
		r.Delete("/habits/{id}/checkins/{date}", checkinClearHandler)

		r.Get("/tasks", taskListHandler)
		r.Post("/tasks", taskCreateHandler)
		r.Get("/tasks/{id}", taskGetHandler)
		r.Put("/tasks/{id}", taskUpdateHandler)
		r.Delete("/tasks/{id}", taskDeleteHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "Not found"}`))
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
