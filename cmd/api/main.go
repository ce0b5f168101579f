package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskPlanner/internal/config"
	"taskPlanner/internal/handlers"
	"taskPlanner/internal/logger"
	"taskPlanner/internal/middleware"
	"taskPlanner/internal/repository/task/inmemory"
	"taskPlanner/internal/repository/task/postgres"
	"taskPlanner/internal/service"
	"taskPlanner/internal/temporal"
	"taskPlanner/internal/worker"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config.yml", "путь к файлу конфигурации")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		os.Stderr.WriteString("конфигурация: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Development); err != nil {
		os.Stderr.WriteString("инициализация логгера: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clock := temporal.NewClock()

	var taskRepo service.TaskRepository
	switch cfg.Repository.Type {
	case "postgres":
		pgStorage, err := postgres.New(ctx, cfg.Database.URL)
		if err != nil {
			logger.Error("Подключение к PostgreSQL", err)
			os.Exit(1)
		}
		defer pgStorage.Close()
		taskRepo = pgStorage
	default:
		taskRepo = inmemory.NewTaskStorage()
	}

	taskService := service.NewTaskService(taskRepo, clock)
	taskHandler := handlers.NewTaskHandler(&taskService)

	if cfg.Worker.Enabled {
		deadlineWorker := worker.NewDeadlineWorker(taskRepo, clock, &cfg.Worker.Interval, nil)
		go deadlineWorker.Start(ctx)
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.RateLimit(100))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Owner-ID", "X-Request-ID"},
	}))

	r.Route("/tasks", func(r chi.Router) {

		r.Get("/", taskHandler.GetTasks) // GET /tasks
		r.Post("/", taskHandler.PostTask) // POST /tasks

		r.Get("/report", taskHandler.GetReport) // GET /tasks/report?from=&to=

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", taskHandler.GetTaskByID)       // GET /tasks/{id}
			r.Put("/", taskHandler.UpdateTaskByID)    // PUT /tasks/{id}
			r.Delete("/", taskHandler.DeleteTaskByID) // DELETE /tasks/{id}

			r.Post("/complete", taskHandler.CompleteTask) // POST /tasks/{id}/complete
			r.Post("/cancel", taskHandler.CancelTask)     // POST /tasks/{id}/cancel

			r.Post("/timer/start", taskHandler.StartTimer) // POST /tasks/{id}/timer/start
			r.Post("/timer/stop", taskHandler.StopTimer)   // POST /tasks/{id}/timer/stop

			r.Post("/recurrence/toggle", taskHandler.ToggleRecurringCompletion) // POST /tasks/{id}/recurrence/toggle
			r.Post("/suspend", taskHandler.SuspendTask)                         // POST /tasks/{id}/suspend
			r.Post("/resume", taskHandler.ResumeTask)                           // POST /tasks/{id}/resume

			r.Post("/comments", taskHandler.AddComment) // POST /tasks/{id}/comments
		})
	})

	r.Get("/health", taskHandler.HealthCheck)

	server := &http.Server{
		Addr:    cfg.GetServerAddr(),
		Handler: r,
	}

	go func() {
		logger.Info("Server started", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Сервер остановлен с ошибкой", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("Завершение работы сервера...")
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка при завершении", err)
	}
}
