// cmd/logger.go
package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

// parseLevel は設定ファイルのログレベル文字列を slog.Level に変換します。不明な値は false を返します。
func parseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// newLogger は APP_ENV=dev なら tint、それ以外は JSON のロガーを作ります。
// file が指定されていれば lumberjack でローテートするファイルにも書き出す。
func newLogger(stderr io.Writer, level, file, appEnv string) (*slog.Logger, io.Closer) {
	logLevel := new(slog.LevelVar)
	lvl, ok := parseLevel(level)
	logLevel.Set(lvl)

	var out io.Writer = stderr
	var closer io.Closer = nopCloser{}
	if file != "" {
		rotator := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    50, // MB
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		}
		out = io.MultiWriter(stderr, rotator)
		closer = rotator
	}

	var handler slog.Handler
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(out, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
			NoColor:    file != "",
		})
	} else {
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}

	logger := slog.New(handler)
	if !ok {
		logger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}
	return logger, closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setupLogger は設定からロガーを作り、デフォルトロガーに設定します
func setupLogger(level, file string) (*slog.Logger, io.Closer) {
	logger, closer := newLogger(os.Stderr, level, file, os.Getenv("APP_ENV"))
	slog.SetDefault(logger)
	return logger, closer
}
