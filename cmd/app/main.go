package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"printflow/cmd"

	"github.com/labstack/gommon/log"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if configs.SeedDemoOrders {
		if err = app.SeedDemoOrders(ctx); err != nil {
			log.Fatalf("Error seeding demo orders: %v", err)
		}
		logger.InfoContext(ctx, "Demo orders seeded")
	}

	startJobs(ctx, app, logger)
}

func startJobs(ctx context.Context, app *cmd.CompositionRoot, logger *slog.Logger) {
	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Error creating jobs: %v", err)
	}
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	logger.InfoContext(ctx, "Print portal core running")
	<-ctx.Done()
	logger.InfoContext(context.Background(), "Shutting down")
}
