// PromptLens collector server. It ingests LLM traces, manages tasks and
// graders, and runs evaluations and the optimization loop.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/promptlens/promptlens/pkg/api"
	"github.com/promptlens/promptlens/pkg/config"
	"github.com/promptlens/promptlens/pkg/database"
	"github.com/promptlens/promptlens/pkg/evaluation"
	"github.com/promptlens/promptlens/pkg/ingest"
	"github.com/promptlens/promptlens/pkg/llm"
	"github.com/promptlens/promptlens/pkg/optimizer"
	"github.com/promptlens/promptlens/pkg/providers"
	"github.com/promptlens/promptlens/pkg/queue"
	"github.com/promptlens/promptlens/pkg/services"
	"github.com/promptlens/promptlens/pkg/version"
)

func main() {
	envPath := flag.String("env-file", ".env", "Path to environment file")
	flag.Parse()

	if err := godotenv.Load(*envPath); err != nil {
		slog.Warn("Could not load env file, continuing with existing environment",
			"path", *envPath, "error", err)
	}

	cfg := config.LoadFromEnv()
	slog.Info("Starting PromptLens",
		"version", version.Full(),
		"http_port", cfg.HTTPPort,
		"workers", cfg.WorkerCount)

	ctx := context.Background()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Domain services.
	entClient := dbClient.Client
	factory := llm.NewFactory(cfg.LLM)
	executor := llm.NewExecutor(factory, cfg.ExecutionTimeout, slog.Default())

	projectService := services.NewProjectService(entClient)
	traceService := services.NewTraceService(entClient)
	taskService := services.NewTaskService(entClient)
	testCaseService := services.NewTestCaseService(entClient)
	graderService := services.NewGraderService(entClient)
	gradeService := services.NewGradeService(entClient, executor)
	configService := services.NewEvaluationConfigService(entClient)
	executionService := services.NewExecutionService(entClient, taskService, executor)

	pool := queue.NewPool(cfg.WorkerCount)
	pool.Start(ctx)

	ingestService := ingest.NewService(entClient, traceService, taskService, providers.NewRegistry(), pool)
	evaluationService := evaluation.NewService(
		entClient, taskService, testCaseService, graderService,
		configService, executionService, gradeService, pool,
	)
	opt := optimizer.New(entClient, taskService, evaluationService, factory, cfg.OptimizerModel)
	slog.Info("Services initialized")

	server := api.NewServer(api.Deps{
		DB:          dbClient,
		Projects:    projectService,
		Traces:      traceService,
		Tasks:       taskService,
		TestCases:   testCaseService,
		Graders:     graderService,
		Grades:      gradeService,
		Configs:     configService,
		Executions:  executionService,
		Ingest:      ingestService,
		Evaluations: evaluationService,
		Optimizer:   opt,
		Pool:        pool,
	})

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.HTTPPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	pool.Stop()
	slog.Info("PromptLens stopped")
}
