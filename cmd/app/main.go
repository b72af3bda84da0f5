package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"stockyard/cmd"
	httpadapter "stockyard/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/spf13/pflag"
)

const (
	defaultHTTPPort           = "8080"
	defaultSessionIdleTimeout = 15 * time.Minute
	shutdownTimeout           = 10 * time.Second
)

func main() {
	envFile := pflag.String("env-file", ".env", "file with environment variables to load")
	httpPort := pflag.String("http-port", "", "HTTP port, overrides HTTP_PORT")
	pflag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	configs, err := getConfigs(*envFile)
	if err != nil {
		log.Fatalf("Error reading configuration: %v", err)
	}
	if *httpPort != "" {
		configs.HTTPPort = *httpPort
	}

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort, logger)
}

func getConfigs(envFile string) (cmd.Config, error) {
	if err := loadEnvFile(envFile); err != nil {
		return cmd.Config{}, err
	}

	config := cmd.Config{
		HTTPPort:      envOrDefault("HTTP_PORT", defaultHTTPPort),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBSslMode:     os.Getenv("DB_SSLMODE"),
		SweepSchedule: os.Getenv("SESSION_SWEEP_SCHEDULE"),
	}

	if v := os.Getenv("SESSION_CAPACITY"); v != "" {
		capacity, err := strconv.Atoi(v)
		if err != nil {
			return cmd.Config{}, fmt.Errorf("SESSION_CAPACITY: %w", err)
		}
		config.SessionCapacity = capacity
	}

	config.SessionIdleTimeout = defaultSessionIdleTimeout
	if v := os.Getenv("SESSION_IDLE_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return cmd.Config{}, fmt.Errorf("SESSION_IDLE_TIMEOUT: %w", err)
		}
		config.SessionIdleTimeout = timeout
	}

	return config, nil
}

// loadEnvFile leaves already exported variables untouched. A missing file is
// fine, the environment alone may configure the service.
func loadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func startWebServer(app cmd.CompositionRoot, port string, logger *slog.Logger) {
	e, err := httpadapter.NewRouter(app.CreateHTTPServer(), logger)
	if err != nil {
		log.Fatalf("Error creating router: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down HTTP server", "error", err)
	}
}
