package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LevelBasedMuxHandler пишет в stdout всё начиная с уровня stdoutLevel,
// а в файл только Info и выше с позицией в исходниках.
type LevelBasedMuxHandler struct {
	stdoutHandler slog.Handler
	fileHandler   slog.Handler
}

type LoggerWithFile struct {
	Logger  *slog.Logger
	LogFile *os.File
}

func NewLevelBasedMuxHandler(stdout, file io.Writer, stdoutLevel slog.Level) *LevelBasedMuxHandler {
	return &LevelBasedMuxHandler{
		stdoutHandler: slog.NewJSONHandler(stdout, &slog.HandlerOptions{
			Level: stdoutLevel,
		}),
		fileHandler: slog.NewJSONHandler(file, &slog.HandlerOptions{
			Level:     slog.LevelInfo,
			AddSource: true,
		}),
	}
}

func (h *LevelBasedMuxHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.stdoutHandler.Enabled(ctx, level) || h.fileHandler.Enabled(ctx, level)
}

func (h *LevelBasedMuxHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.fileHandler.Enabled(ctx, r.Level) {
		if err := h.fileHandler.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}

	if h.stdoutHandler.Enabled(ctx, r.Level) {
		return h.stdoutHandler.Handle(ctx, r)
	}
	return nil
}

func (h *LevelBasedMuxHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LevelBasedMuxHandler{
		stdoutHandler: h.stdoutHandler.WithAttrs(attrs),
		fileHandler:   h.fileHandler.WithAttrs(attrs),
	}
}

func (h *LevelBasedMuxHandler) WithGroup(name string) slog.Handler {
	return &LevelBasedMuxHandler{
		stdoutHandler: h.stdoutHandler.WithGroup(name),
		fileHandler:   h.fileHandler.WithGroup(name),
	}
}

// ParseLevel понимает debug, info, warn, error; остальное считается info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func NewLoggerWithFile(fileName, level string) (*LoggerWithFile, error) {
	logFile, err := os.OpenFile(fileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть файл логов: %w", err)
	}

	handler := NewLevelBasedMuxHandler(os.Stdout, logFile, ParseLevel(level))
	return &LoggerWithFile{
		Logger:  slog.New(handler),
		LogFile: logFile,
	}, nil
}
