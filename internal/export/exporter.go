// Package export produces offline snapshots of the question pool and
// moderation audit trail for analytics and archival.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	dbTypes "github.com/podiumd/podium/internal/database/types"
	"github.com/podiumd/podium/internal/database/types/enum"
	"github.com/podiumd/podium/internal/export/csv"
	"github.com/podiumd/podium/internal/export/sqlite"
	"github.com/podiumd/podium/internal/export/types"
	"github.com/podiumd/podium/internal/setup"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

// Format represents a supported export format.
type Format string

const (
	FormatSQLite Format = "sqlite"
	FormatCSV    Format = "csv"
)

// EngineVersion represents the version of the export engine.
// This should be updated when making breaking changes to the export format.
const EngineVersion = "1.0.0"

// fetchPageSize is how many rows each database page fetch pulls.
const fetchPageSize = 1000

// Config holds the configuration for exports.
type Config struct {
	ExportVersion string `json:"exportVersion"`
	Description   string `json:"description"`
}

// Exporter handles exporting questions and the audit trail.
type Exporter struct {
	app     *setup.App
	outDir  string
	config  *Config
	formats []Format
}

// New creates a new exporter instance.
func New(app *setup.App, outDir string, config *Config) *Exporter {
	return &Exporter{
		app:    app,
		outDir: outDir,
		config: config,
		formats: []Format{
			FormatSQLite,
			FormatCSV,
		},
	}
}

// ExportAll exports all data in all supported formats.
func (e *Exporter) ExportAll(ctx context.Context) error {
	fmt.Printf("Starting export:\n")
	fmt.Printf("  Output Directory: %s\n", e.outDir)
	fmt.Printf("  Export Version: %s\n", e.config.ExportVersion)
	fmt.Printf("  Engine Version: %s\n", EngineVersion)
	fmt.Printf("  Description: %s\n\n", e.config.Description)

	fmt.Printf("Fetching data from database...\n")

	questions, err := e.fetchQuestions(ctx)
	if err != nil {
		return err
	}

	audits, err := e.fetchAudits(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Found %d questions and %d audit records to export\n\n", len(questions), len(audits))

	// Save config file
	fmt.Printf("Saving export configuration...\n")

	configPath := filepath.Join(e.outDir, "export_config.json")

	jsonConfig := struct {
		*Config

		EngineVersion string `json:"engineVersion"`
	}{
		Config:        e.config,
		EngineVersion: EngineVersion,
	}

	configData, err := sonic.MarshalIndent(jsonConfig, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal export config: %w", err)
	}

	if err := os.WriteFile(configPath, configData, 0o600); err != nil {
		return fmt.Errorf("failed to write export config: %w", err)
	}

	// Export each format
	fmt.Printf("Exporting data in %d formats...\n", len(e.formats))

	for _, format := range e.formats {
		fmt.Printf("  Writing %s format...\n", format)

		if err := e.export(format, questions, audits); err != nil {
			return fmt.Errorf("failed to export %s format: %w", format, err)
		}
	}

	fmt.Printf("\nExport completed successfully\n")
	fmt.Printf("Files written to: %s\n", e.outDir)

	return nil
}

// fetchQuestions pages through every question, newest first.
func (e *Exporter) fetchQuestions(ctx context.Context) ([]*types.QuestionRecord, error) {
	var records []*types.QuestionRecord

	filter := dbTypes.QuestionFilter{SortBy: enum.QuestionSortByNewest}

	var cursor *dbTypes.QuestionCursor

	for {
		questions, nextCursor, err := e.app.DB.Model().Question().List(ctx, filter, cursor, fetchPageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to get questions: %w", err)
		}

		for _, question := range questions {
			records = append(records, &types.QuestionRecord{
				ID:        question.ID,
				UUID:      question.UUID.String(),
				Status:    question.Status.String(),
				Text:      question.Text,
				Tags:      strings.Join(question.Tags, ";"),
				Upvotes:   question.Upvotes,
				Downvotes: question.Downvotes,
				RankScore: question.RankScore,
				CreatedAt: question.CreatedAt,
			})
		}

		if nextCursor == nil {
			return records, nil
		}

		cursor = nextCursor
	}
}

// fetchAudits pages through the entire audit trail, newest first.
func (e *Exporter) fetchAudits(ctx context.Context) ([]*types.AuditRecord, error) {
	var records []*types.AuditRecord

	var cursor *dbTypes.LogCursor

	for {
		logs, nextCursor, err := e.app.DB.Model().Activity().GetLogs(ctx, dbTypes.ActivityFilter{}, cursor, fetchPageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to get audit records: %w", err)
		}

		for _, log := range logs {
			records = append(records, &types.AuditRecord{
				ID:           log.ID,
				TargetType:   log.TargetType.String(),
				TargetID:     log.TargetID,
				ActivityType: log.ActivityType.String(),
				ActorID:      log.ActorID,
				FromState:    log.FromState,
				ToState:      log.ToState,
				Reason:       log.Reason,
				CreatedAt:    log.CreatedAt,
			})
		}

		if nextCursor == nil {
			return records, nil
		}

		cursor = nextCursor
	}
}

// export handles exporting data in the specified format.
func (e *Exporter) export(format Format, questions []*types.QuestionRecord, audits []*types.AuditRecord) error {
	var exporter interface {
		Export(questions []*types.QuestionRecord, audits []*types.AuditRecord) error
	}

	switch format {
	case FormatSQLite:
		exporter = sqlite.New(e.outDir)
	case FormatCSV:
		exporter = csv.New(e.outDir)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	return exporter.Export(questions, audits)
}
