// Package csv writes export snapshots as CSV files.
package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/podiumd/podium/internal/export/types"
)

// Exporter handles exporting snapshots to csv files.
type Exporter struct {
	outDir string
}

// New creates a new csv exporter instance.
func New(outDir string) *Exporter {
	return &Exporter{outDir: outDir}
}

// Export writes question and audit records to separate csv files.
func (e *Exporter) Export(questions []*types.QuestionRecord, audits []*types.AuditRecord) error {
	// Remove existing files if they exist
	files := []string{"questions.csv", "audit.csv"}
	for _, file := range files {
		path := filepath.Join(e.outDir, file)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove existing file %s: %w", file, err)
		}
	}

	if err := e.writeQuestions(questions); err != nil {
		return fmt.Errorf("failed to export questions: %w", err)
	}

	if err := e.writeAudits(audits); err != nil {
		return fmt.Errorf("failed to export audit log: %w", err)
	}

	return nil
}

func (e *Exporter) writeQuestions(records []*types.QuestionRecord) error {
	file, err := os.Create(filepath.Join(e.outDir, "questions.csv"))
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"id", "uuid", "status", "text", "tags", "upvotes", "downvotes", "rank_score", "created_at"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, record := range records {
		err := writer.Write([]string{
			strconv.FormatUint(record.ID, 10),
			record.UUID,
			record.Status,
			record.Text,
			record.Tags,
			strconv.FormatInt(record.Upvotes, 10),
			strconv.FormatInt(record.Downvotes, 10),
			fmt.Sprintf("%.4f", record.RankScore),
			record.CreatedAt.UTC().Format(time.RFC3339),
		})
		if err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	return nil
}

func (e *Exporter) writeAudits(records []*types.AuditRecord) error {
	file, err := os.Create(filepath.Join(e.outDir, "audit.csv"))
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"id", "target_type", "target_id", "activity_type", "actor_id", "from_state", "to_state", "reason", "created_at"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, record := range records {
		err := writer.Write([]string{
			strconv.FormatUint(record.ID, 10),
			record.TargetType,
			strconv.FormatUint(record.TargetID, 10),
			record.ActivityType,
			strconv.FormatUint(record.ActorID, 10),
			record.FromState,
			record.ToState,
			record.Reason,
			record.CreatedAt.UTC().Format(time.RFC3339),
		})
		if err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	return nil
}
