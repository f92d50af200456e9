package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"task-time-tracker.com/task-time-tracker/internal/cache"
	config "task-time-tracker.com/task-time-tracker/internal/configs"
	httpapi "task-time-tracker.com/task-time-tracker/internal/http"
	repository "task-time-tracker.com/task-time-tracker/internal/repositories"
	"task-time-tracker.com/task-time-tracker/internal/services"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP API server",
	Long:  "Starts the task/time tracking HTTP API over the configured database",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		database := config.NewDatabase(cfg)

		var reportCache *cache.ReportCache
		if cfg.RedisAddr != "" {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			reportCache = cache.NewReportCache(
				redisClient,
				time.Duration(cfg.ReportCacheTTLSeconds)*time.Second,
			)
		}

		taskRepo := repository.NewTaskRepository(database)
		accountRepo := repository.NewAccountRepository(database)
		reportRepo := repository.NewReportRepository(database)

		ledger := services.NewLedgerService(taskRepo)
		directory := services.NewDirectoryService(accountRepo)
		reports := services.NewReportService(reportRepo, reportCache)

		e := echo.New()

		handler := httpapi.NewHandler(ledger, directory, reports)
		httpapi.Register(e, handler, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
