package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"time"

	"project-manager-service/handlers"
	"project-manager-service/logging"
	"project-manager-service/middleware"
	_ "project-manager-service/migrations"
	"project-manager-service/repositories"
	"project-manager-service/services"
	"project-manager-service/utils"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/sony/gobreaker"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func runMigrations(databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, "migrations")
}

func main() {
	logging.InitLogger()

	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting Project Manager Service...")
	if err := godotenv.Load(".env"); err != nil {
		logging.Logger.Warnf("Event ID: ENV_LOAD_WARNING, Description: No .env file loaded, using process environment: %v", err)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: DATABASE_URL is not set in the environment variables.")
	}

	if err := runMigrations(databaseURL); err != nil {
		logging.Logger.Fatalf("Event ID: DB_MIGRATION_FAILED, Description: Database migrations failed: %v", err)
	}
	logging.Logger.Info("Event ID: DB_MIGRATED, Description: Database migrations applied.")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		logging.Logger.Fatalf("Event ID: DB_CONNECTION_FAILED, Description: Database connection for PostgreSQL failed: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logging.Logger.Fatalf("Event ID: DB_PING_FAILED, Description: PostgreSQL connection ping error: %v", err)
	}
	logging.Logger.Info("Event ID: DB_CONNECTED, Description: Successfully connected to PostgreSQL.")

	notificationsBreaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "notifications-cb",
		MaxRequests: 1,
		Timeout:     5 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit Breaker '%s' state changed from %s to %s", name, from.String(), to.String())
		},
	})

	taskRepo := repositories.NewTaskPostgresRepository(pool)
	userRepo := repositories.NewUserPostgresRepository(pool)
	projectRepo := repositories.NewProjectPostgresRepository(pool)

	var notifier services.Notifier
	if notificationsURL := os.Getenv("NOTIFICATIONS_SERVICE_URL"); notificationsURL != "" {
		notifier = services.NewNotificationService(notificationsURL, utils.NewHTTPClient(), notificationsBreaker)
	}

	assignmentService := services.NewAssignmentService(taskRepo, userRepo, notifier)
	userService := services.NewUserService(userRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo, userRepo)
	projectService := services.NewProjectService(projectRepo)

	assignmentHandler := handlers.NewAssignmentHandler(assignmentService, userService)
	taskHandler := handlers.NewTaskHandler(taskService)
	projectHandler := handlers.NewProjectHandler(projectService)

	rateFormat := os.Getenv("RATE_LIMIT")
	if rateFormat == "" {
		rateFormat = "10-M"
	}
	rate, err := limiter.NewRateFromFormatted(rateFormat)
	if err != nil {
		logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: Invalid RATE_LIMIT value %q: %v", rateFormat, err)
	}
	requestLimiter := limiter.New(memory.NewStore(), rate)

	// Kreiranje mux routera
	r := mux.NewRouter()
	r.Use(middleware.JWTAuthMiddleware)
	r.Use(middleware.RateLimitMiddleware(requestLimiter))

	r.HandleFunc("/api/projects/list", projectHandler.ListProjects).Methods(http.MethodGet)
	r.HandleFunc("/api/tasks/list", taskHandler.ListTasks).Methods(http.MethodGet)
	r.HandleFunc("/api/tasks/create", taskHandler.CreateTask).Methods(http.MethodPost)
	r.HandleFunc("/api/tasks/bulk-assign", assignmentHandler.BulkAssignTasks).Methods(http.MethodPost)

	corsRouter := enableCORS(r)

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: SERVER_PORT is not set in the environment variables.")
	}

	serverAddress := fmt.Sprintf(":%s", serverPort)
	logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Server running on http://localhost%s", serverAddress)

	if err := http.ListenAndServe(serverAddress, corsRouter); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
	}
}
