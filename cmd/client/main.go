package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"projectpad/internal/client/api"
	"projectpad/internal/client/cli"
	"projectpad/internal/client/config"
	"projectpad/internal/client/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load client config failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	apiClient := api.NewClient(cfg.ServerURL)
	store := session.NewStore(cfg.SessionPath)
	app := cli.NewApp(apiClient, store, os.Stdout)

	if err := app.Run(ctx, os.Stdin); err != nil && err != context.Canceled {
		log.Fatalf("client exited with error: %v", err)
	}
}
