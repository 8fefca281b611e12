package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/aidar/octofit-tracker/internal/app"
	"github.com/aidar/octofit-tracker/internal/config"
	"github.com/aidar/octofit-tracker/internal/logger"
)

func main() {
	// .env необязателен: в контейнере переменные приходят из окружения
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Не удалось прочитать .env: %v", err)
	}

	// Загружаем конфигурацию из переменных окружения
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Не удалось загрузить конфигурацию: %v", err)
	}

	l := logger.Setup(cfg.Log)

	// Создаем экземпляр приложения
	application, err := app.New(cfg, l)
	if err != nil {
		l.Error("Failed to create application", "error", err)
		os.Exit(1)
	}

	// Инициализируем приложение (хранилище, миграции, роутинг)
	ctx := context.Background()
	if err := application.Initialize(ctx); err != nil {
		l.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	// Настраиваем graceful shutdown для корректного завершения
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Запускаем HTTP сервер в отдельной горутине
	serverErr := make(chan error, 1)
	go func() {
		if err := application.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал прерывания (Ctrl+C или SIGTERM) или падение сервера
	select {
	case sig := <-sigChan:
		l.Info("Received shutdown signal", "signal", sig.String())
	case err := <-serverErr:
		l.Error("Server failed", "error", err)
	}

	// Создаем контекст с таймаутом для graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	// Корректно останавливаем приложение
	if err := application.Shutdown(shutdownCtx); err != nil {
		cancel()
		slog.Error("Failed to shutdown gracefully", "error", err)
		os.Exit(1)
	}
	cancel()
}
