package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Sachin-MethodTech/analytics-dashboard/internal/api"
	"github.com/Sachin-MethodTech/analytics-dashboard/internal/config"
	"github.com/Sachin-MethodTech/analytics-dashboard/internal/service"
	"github.com/Sachin-MethodTech/analytics-dashboard/internal/version"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v":
			fmt.Println(version.Info())
			os.Exit(0)
		case "--help", "-h":
			printUsage()
			os.Exit(0)
		}
	}
	if err := run(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func printUsage() {
	fmt.Printf("Analytics Dashboard - %s\n\n", version.Short())
	fmt.Println("Usage: analytics-dashboard [OPTIONS]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v  Show version information")
	fmt.Println("  --help, -h     Show this help message")
	fmt.Println()
	fmt.Println("Without options, starts the dashboard server.")
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println("  Use environment variables or a .env file.")
	fmt.Println("  UPSTREAM_ANALYTICS_URL must point at the analytics feed endpoint.")
}

func run() error {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Initialize logger.
	logger, err := newLogger(cfg.Server.LogLevel, config.LogDir(), cfg.LogRotation)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("starting analytics-dashboard",
		zap.String("version", version.Short()),
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.String("upstream", cfg.Upstream.URL),
	)

	if err := config.ValidateUpstreamURL(cfg.Upstream.URL); err != nil {
		// Not fatal: the gateway surfaces this per-request, matching the
		// page's error display. Flag it loudly at startup anyway.
		logger.Warn("upstream feed misconfigured", zap.Error(err))
	}

	// Initialize services.
	feedService := service.NewFeedService(cfg.Upstream, logger)
	viewService := service.NewViewService(service.NewResolver(service.DefaultRoutes()))

	// Create HTTP server.
	server := api.NewServer(api.ServerDeps{
		Config:      cfg,
		FeedService: feedService,
		ViewService: viewService,
		Logger:      logger,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	logger.Info("server started", zap.String("addr", addr))

	// Wait for shutdown signal.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func newLogger(level string, logDir string, rotation config.LogRotationConfig) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug", "DEBUG":
		zapLevel = zap.DebugLevel
	case "warn", "WARN":
		zapLevel = zap.WarnLevel
	case "error", "ERROR":
		zapLevel = zap.ErrorLevel
	default:
		zapLevel = zap.InfoLevel
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir %s: %w", logDir, err)
	}

	lj := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "analytics-dashboard.log"),
		MaxSize:    rotation.MaxSizeMB,
		MaxBackups: rotation.MaxBackups,
		MaxAge:     rotation.MaxAgeDays,
		Compress:   rotation.Compress,
	}

	// File core: JSON encoder for structured log parsing
	fileEncoderCfg := zap.NewProductionEncoderConfig()
	fileEncoderCfg.TimeKey = "ts"
	fileEncoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(fileEncoderCfg),
		zapcore.AddSync(lj),
		zapLevel,
	)

	// Console core: human-readable output to stdout/stderr
	consoleEncoderCfg := zap.NewDevelopmentEncoderConfig()
	consoleEncoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleEncoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	consoleEncoder := zapcore.NewConsoleEncoder(consoleEncoderCfg)

	// stdout for DEBUG/INFO, stderr for WARN/ERROR+
	stdoutCore := zapcore.NewCore(
		consoleEncoder,
		zapcore.Lock(os.Stdout),
		zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return l >= zapLevel && l < zapcore.WarnLevel
		}),
	)
	stderrCore := zapcore.NewCore(
		consoleEncoder,
		zapcore.Lock(os.Stderr),
		zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return l >= zapLevel && l >= zapcore.WarnLevel
		}),
	)

	core := zapcore.NewTee(fileCore, stdoutCore, stderrCore)

	return zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
	), nil
}
