package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/podiumd/podium/internal/setup"
	"github.com/podiumd/podium/internal/setup/logger"
	"github.com/podiumd/podium/internal/worker/maintenance"
	"github.com/urfave/cli/v3"
)

// WorkerLogDir specifies where worker log files are stored.
const WorkerLogDir = "logs/worker_logs"

func main() {
	if err := run(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.Command{
		Name:  "worker",
		Usage: "Start the podium background workers",
		Commands: []*cli.Command{
			{
				Name:  "maintenance",
				Usage: "Start the rank decay and suspension expiry sweeps",
				Action: func(ctx context.Context, _ *cli.Command) error {
					runMaintenance(ctx)
					return nil
				},
			},
		},
	}

	return app.Run(context.Background(), os.Args)
}

// runMaintenance starts the maintenance worker and blocks until interrupted.
func runMaintenance(ctx context.Context) {
	app, err := setup.InitializeApp(ctx, logger.ServiceWorker, WorkerLogDir)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Cleanup(ctx)

	workerLogger := app.LogManager.GetWorkerLogger("maintenance")

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	maintenance.New(app, workerLogger).Start(ctx)
}
