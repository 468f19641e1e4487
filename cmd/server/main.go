package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobtrack/internal/api"
	"jobtrack/internal/app/service"
	"jobtrack/internal/app/worker"
	"jobtrack/internal/app/ws"
	"jobtrack/internal/common/security"
	"jobtrack/internal/domain/repository"
	"jobtrack/internal/platform/config"
	"jobtrack/internal/platform/database"
	"jobtrack/internal/platform/logger"
	"jobtrack/internal/platform/mail"
	"jobtrack/internal/platform/queue"
)

func main() {
	// 1. Configuration and logging
	config.Load()
	if err := logger.Init(config.AppConfig.LogLevel); err != nil {
		log.Fatalf("Could not initialize logger: %v", err)
	}
	defer logger.Sync()

	// 2. JWT
	security.InitJWT()

	// 3. Database (runs migrations)
	if err := database.Connect(); err != nil {
		logger.Log.Fatalw("database initialization failed", "error", err)
	}
	defer database.Close()

	// 4. Redis (notification queue)
	if err := queue.ConnectRedis(); err != nil {
		logger.Log.Fatalw("redis initialization failed", "error", err)
	}
	defer queue.CloseRedis()

	// 5. Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	jobRepo := repository.NewPgJobRepository(database.DB)

	// 6. Live-connection registry and notification plumbing
	hub := ws.NewHub()
	mailer := mail.NewMailer(config.AppConfig)
	notificationService := service.NewNotificationService(
		queue.RDB, config.AppConfig.NotificationQueueName, mailer, hub)

	// 7. Services
	authService := service.NewAuthService(userRepo)
	jobService := service.NewJobService(jobRepo, userRepo, notificationService)

	// 8. Notification worker (as a goroutine)
	notificationWorker := worker.NewNotificationWorker(
		queue.RDB, config.AppConfig.NotificationQueueName, notificationService)
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	go notificationWorker.Start(workerCtx)

	// 9. Router & HTTP server
	router := api.NewRouter(authService, jobService, hub, config.AppConfig.FrontendURL)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 10. Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Log.Infow("server starting", "port", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalw("could not listen", "port", config.AppConfig.APIPort, "error", err)
		}
	}()

	<-stop

	logger.Log.Info("shutting down server")
	workerCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Fatalw("server shutdown failed", "error", err)
	}

	logger.Log.Info("server and worker stopped gracefully")
}
