package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aidar/octofit-tracker/internal/admin"
	"github.com/aidar/octofit-tracker/internal/auth"
	"github.com/aidar/octofit-tracker/internal/config"
	"github.com/aidar/octofit-tracker/internal/domain"
	"github.com/aidar/octofit-tracker/internal/handler"
	"github.com/aidar/octofit-tracker/internal/middleware"
	"github.com/aidar/octofit-tracker/internal/repository"
	"github.com/aidar/octofit-tracker/internal/repository/memory"
	"github.com/aidar/octofit-tracker/internal/repository/postgres"
	"github.com/aidar/octofit-tracker/internal/service"
)

// App представляет приложение со всеми зависимостями
type App struct {
	config *config.Config
	db     *pgxpool.Pool
	repos  repository.Repositories
	router http.Handler
	server *http.Server
	seeder *service.Seeder
	logger *slog.Logger
}

// New создает новый экземпляр приложения
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	app := &App{
		config: cfg,
		logger: logger,
	}

	return app, nil
}

// Initialize подключает хранилище, собирает сервисы и HTTP роутер
func (a *App) Initialize(ctx context.Context) error {
	if err := a.openStore(ctx); err != nil {
		return err
	}

	a.setupServer()

	if a.config.Store.SeedOnStart {
		if _, err := a.Populate(ctx); err != nil {
			return fmt.Errorf("failed to seed store: %w", err)
		}
	}

	a.logger.Info("Application initialized successfully", "store", a.config.Store.Driver)
	return nil
}

// openStore выбирает хранилище по STORE_DRIVER
func (a *App) openStore(ctx context.Context) error {
	switch a.config.Store.Driver {
	case config.StoreDriverMemory:
		a.repos = memory.NewRepositories()
		a.logger.Warn("Using in-memory store, data is lost on restart")
		return nil
	default:
		if err := a.connectDB(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if a.config.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, a.db); err != nil {
				return fmt.Errorf("failed to apply migrations: %w", err)
			}
			a.logger.Info("Database migrations applied")
		}
		a.repos = postgres.NewRepositories(a.db)
		return nil
	}
}

// connectDB устанавливает подключение к PostgreSQL с connection pool
func (a *App) connectDB(ctx context.Context) error {
	poolConfig, err := pgxpool.ParseConfig(a.config.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to parse database config: %w", err)
	}

	// Настраиваем размеры connection pool
	poolConfig.MaxConns = a.config.Database.MaxConns
	poolConfig.MinConns = a.config.Database.MinConns

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Проверяем подключение к БД
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	a.db = pool
	a.logger.Info("Connected to database", "host", a.config.Database.Host, "name", a.config.Database.Name)
	return nil
}

// setupServer инициализирует сервисы, HTTP роутер и обработчики
func (a *App) setupServer() {
	hasher := auth.NewPasswordHasher(a.config.Security.BcryptCost)

	// Слой сервисов
	userService := service.NewUserService(a.repos.Users, a.repos.Teams, a.repos.Activities, hasher, a.logger)
	teamService := service.NewTeamService(a.repos.Teams)
	activityService := service.NewActivityService(a.repos.Activities)
	leaderboardService := service.NewLeaderboardService(a.repos, a.logger)
	workoutService := service.NewWorkoutService(a.repos.Workouts)
	a.seeder = service.NewSeeder(a.repos, userService, leaderboardService, a.logger)

	// HTTP обработчики
	userHandler := handler.NewUserHandler(userService)
	teamHandler := handler.NewTeamHandler(teamService)
	activityHandler := handler.NewActivityHandler(activityService)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService)
	workoutHandler := handler.NewWorkoutHandler(workoutService)
	adminHandler := admin.NewHandler(admin.Resources(a.repos), a.logger)

	r := chi.NewRouter()

	// Глобальные middleware (применяются ко всем запросам)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(a.logger))
	r.Use(middleware.Metrics)
	r.Use(chimiddleware.Recoverer)
	// Завершающий слэш необязателен: /api/users/ и /api/users ведут в один обработчик
	r.Use(chimiddleware.StripSlashes)
	if a.config.Server.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(a.config.Server.RequestTimeout))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   a.config.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handler.RespondWithError(w, r, http.StatusNotFound, string(domain.CodeNotFound), "resource not found")
	})

	// Health check и метрики для мониторинга
	r.Get("/health", handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/", handler.APIRoot)
		r.Route("/users", userHandler.Routes)
		r.Route("/teams", teamHandler.Routes)
		r.Route("/activities", activityHandler.Routes)
		r.Route("/leaderboard", leaderboardHandler.Routes)
		r.Route("/workouts", workoutHandler.Routes)
	})

	r.Route("/admin", adminHandler.Routes)

	a.router = r

	// Создаем HTTP сервер с настройками таймаутов
	addr := fmt.Sprintf("%s:%s", a.config.Server.Host, a.config.Server.Port)
	a.server = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  a.config.Server.ReadTimeout,
		WriteTimeout: a.config.Server.WriteTimeout,
		IdleTimeout:  a.config.Server.IdleTimeout,
	}

	a.logger.Info("HTTP server configured", "addr", addr)
}

// Handler возвращает корневой HTTP обработчик (используется в тестах)
func (a *App) Handler() http.Handler {
	return a.router
}

// Populate заполняет хранилище демонстрационными данными
func (a *App) Populate(ctx context.Context) (*service.SeedSummary, error) {
	return a.seeder.Seed(ctx)
}

// Run запускает HTTP сервер
func (a *App) Run() error {
	a.logger.Info("Starting HTTP server", "addr", a.server.Addr)
	return a.server.ListenAndServe()
}

// Close освобождает ресурсы хранилища без остановки сервера (для CLI)
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

// Shutdown корректно останавливает приложение
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application")

	// Останавливаем HTTP сервер (ждем завершения текущих запросов)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	// Закрываем подключения к базе данных
	a.Close()

	a.logger.Info("Application stopped gracefully")
	return nil
}
