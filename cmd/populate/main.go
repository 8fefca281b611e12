// Команда populate очищает хранилище и заполняет его демонстрационными данными:
// две команды, десять героев, их активности, таблица лидеров и каталог тренировок.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/aidar/octofit-tracker/internal/app"
	"github.com/aidar/octofit-tracker/internal/config"
	"github.com/aidar/octofit-tracker/internal/logger"
	"github.com/aidar/octofit-tracker/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Не удалось прочитать .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Не удалось загрузить конфигурацию: %v", err)
	}
	// Заполнение выполняется здесь явно
	cfg.Store.SeedOnStart = false

	summary, err := populate(cfg)
	if err != nil {
		log.Fatalf("Не удалось заполнить базу данных: %v", err)
	}
	printSummary(summary)
}

func populate(cfg *config.Config) (*service.SeedSummary, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	application, err := app.New(cfg, logger.Setup(cfg.Log))
	if err != nil {
		return nil, err
	}
	if err := application.Initialize(ctx); err != nil {
		return nil, err
	}
	defer application.Close()

	fmt.Println("Starting database population...")
	return application.Populate(ctx)
}

func printSummary(s *service.SeedSummary) {
	line := strings.Repeat("=", 50)
	fmt.Println(line)
	fmt.Println("Database population completed successfully!")
	fmt.Println(line)
	fmt.Printf("Teams: %d\n", s.Teams)
	fmt.Printf("Users: %d\n", s.Users)
	fmt.Printf("Activities: %d\n", s.Activities)
	fmt.Printf("Leaderboard entries: %d\n", s.Leaderboard)
	fmt.Printf("Workouts: %d\n", s.Workouts)
	fmt.Println(line)
}
