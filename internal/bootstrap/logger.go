package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/unlimited-inventories/internal/config"
	"github.com/osse101/unlimited-inventories/internal/logger"
)

// SetupLogger initializes the application logger with file and stdout output.
// Returns the log file handle (caller must close).
func SetupLogger(cfg *config.Config) (*os.File, error) {
	return setupLoggerWithWriter(cfg, os.Stdout, time.Now())
}

func setupLoggerWithWriter(cfg *config.Config, stdout io.Writer, now time.Time) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(cfg.LogDir)

	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, now.Format(LogFileTimestampFormat)))
	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	logCfg := loggerConfig(cfg)
	logger.InitLoggerWithWriter(logCfg, io.MultiWriter(stdout, logFile))

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel())
	slog.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"storage", cfg.StorageType,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"sqlite_path", cfg.SQLitePath,
		"port", cfg.Port)

	return logFile, nil
}

// loggerConfig starts from the environment's defaults and applies whatever the
// app config sets explicitly.
func loggerConfig(cfg *config.Config) logger.Config {
	base := logger.ProductionConfig()
	if cfg.IsDevelopment() {
		base = logger.DevelopmentConfig()
	}
	return logger.NewConfig(
		valueOr(cfg.LogLevel, base.Level),
		valueOr(cfg.LogFormat, base.Format),
		valueOr(cfg.ServiceName, base.ServiceName),
		valueOr(cfg.Version, base.Version),
		valueOr(cfg.Environment, base.Environment),
		base.AddSource,
	)
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// cleanupLogs removes old log files, keeping only the most recent ones.
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}

	if len(logFiles) < LogFileRetentionLimit {
		return
	}

	// timestamped names sort chronologically
	sort.Strings(logFiles)
	toDelete := len(logFiles) - LogFileRetentionCount
	for _, name := range logFiles[:toDelete] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", name, "error", err)
		}
	}
}
