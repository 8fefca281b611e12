// Package logger настраивает log/slog для сервиса и CLI
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/aidar/octofit-tracker/internal/config"
)

// New создает логгер по конфигурации.
// format=json пишет JSON в stdout, format=text пишет цветной текст через tint.
// Если задан cfg.File, JSON-копия пишется также в файл с ротацией.
func New(cfg config.LogConfig, stdout io.Writer) *slog.Logger {
	level := ParseLevel(cfg.Level)

	var console slog.Handler
	if cfg.Format == "text" {
		console = tint.NewHandler(stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		console = slog.NewJSONHandler(stdout, &slog.HandlerOptions{Level: level})
	}

	if cfg.File == "" {
		return slog.New(console)
	}

	file := slog.NewJSONHandler(&lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		LocalTime:  true,
	}, &slog.HandlerOptions{Level: level})

	return slog.New(fanout{console, file})
}

// Setup создает логгер для stdout и делает его логгером по умолчанию
func Setup(cfg config.LogConfig) *slog.Logger {
	l := New(cfg, os.Stdout)
	slog.SetDefault(l)
	return l
}

// ParseLevel разбирает уровень логирования, по умолчанию info
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
