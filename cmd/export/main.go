package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/podiumd/podium/internal/export"
	"github.com/podiumd/podium/internal/setup"
	"github.com/podiumd/podium/internal/setup/logger"
	"github.com/urfave/cli/v3"
)

// ExportLogDir specifies where export log files are stored.
const ExportLogDir = "logs/export_logs"

func main() {
	if err := run(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.Command{
		Name:  "export",
		Usage: "Export questions and the moderation audit trail to file formats",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "exports",
				Usage:   "Base output directory for export files",
			},
			&cli.StringFlag{
				Name:    "export-version",
				Aliases: []string{"v"},
				Value:   "1",
				Usage:   "Export version",
			},
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
				Usage:   "Export description",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			// Initialize application with required dependencies
			app, err := setup.InitializeApp(ctx, logger.ServiceExport, ExportLogDir)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			defer app.Cleanup(ctx)

			// Create timestamped output directory
			baseDir := c.String("output")
			timestamp := time.Now().UTC().Format("2006-01-02_150405")

			outDir := filepath.Join(baseDir, timestamp)
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			// Create exporter
			exporter := export.New(app, outDir, &export.Config{
				ExportVersion: c.String("export-version"),
				Description:   c.String("description"),
			})

			// Export all formats
			if err := exporter.ExportAll(ctx); err != nil {
				return fmt.Errorf("failed to export data: %w", err)
			}

			return nil
		},
	}

	return app.Run(context.Background(), os.Args)
}
