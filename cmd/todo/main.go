// Package main is the entry point for the terminal todo client. It connects
// to the todo server over HTTP and runs the interactive list.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen11/go-todo-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/go-todo-service/internal/adapters/tui"
	"github.com/jsamuelsen11/go-todo-service/internal/app/controller"
	"github.com/jsamuelsen11/go-todo-service/internal/platform/config"
	"github.com/jsamuelsen11/go-todo-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-todo-service/internal/platform/logging"
)

const (
	defaultProfile = "local"
	probeTimeout   = 2 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = defaultProfile
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// The terminal owns stdout, so logs go to log.file or nowhere.
	logger, closeLog, err := logging.FromConfig(cfg.Log, nil)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = closeLog() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	httpClient := httpclient.New(&cfg.Client, "todo-server", nil, logger)
	api := acl.NewTodoClient(httpClient, logger)

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	if err := api.HealthCheck(probeCtx); err != nil {
		logger.Warn("todo server not reachable at startup",
			slog.String("base_url", cfg.Client.BaseURL),
			slog.String("error", err.Error()),
		)
	}
	cancel()

	ctrl := controller.New(api,
		controller.Config{
			DeleteDelay: cfg.Controller.DeleteDelay,
			UndoTimeout: cfg.Controller.UndoTimeout,
		},
		controller.WithLogger(logger),
	)
	defer ctrl.Close()

	logger.Info("starting terminal client", slog.String("base_url", cfg.Client.BaseURL))
	return tui.Run(ctx, ctrl, tea.WithAltScreen())
}
