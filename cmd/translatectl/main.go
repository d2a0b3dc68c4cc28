package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/guttosm/translate-service/config"
	"github.com/guttosm/translate-service/internal/app"
	"github.com/guttosm/translate-service/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.CreateRootCommand(loadDeps)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func loadDeps() (*cli.Deps, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	cfg := config.Load()
	// keep stdout clean for command output
	if os.Getenv("LOG_LEVEL") == "" {
		cfg.Log.Level = "warn"
	}
	app.InitializeLogger(cfg.Log)

	services, err := app.InitializeServices(cfg, nil)
	if err != nil {
		return nil, err
	}

	deps := &cli.Deps{
		Translator:  services.Translator,
		Credentials: services.Credentials,
	}
	if auth := app.InitializeAuth(cfg.Auth); auth.Tokens != nil {
		deps.Tokens = auth.Tokens
	}
	return deps, nil
}
