// Package sqlite writes export snapshots as a single SQLite database, the
// format downstream analytics tooling consumes directly.
package sqlite

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/podiumd/podium/internal/export/types"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const insertBatchSize = 1000

// Exporter handles exporting snapshots to a SQLite database.
type Exporter struct {
	outDir string
}

// New creates a new SQLite exporter instance.
func New(outDir string) *Exporter {
	return &Exporter{outDir: outDir}
}

// Export writes question and audit records into podium.db.
func (e *Exporter) Export(questions []*types.QuestionRecord, audits []*types.AuditRecord) error {
	path := filepath.Join(e.outDir, "podium.db")
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove existing file: %w", err)
	}

	conn, err := sqlite.OpenConn(path, sqlite.OpenCreate|sqlite.OpenReadWrite)
	if err != nil {
		return fmt.Errorf("failed to open SQLite database: %w", err)
	}
	defer conn.Close()

	if err := e.writeQuestions(conn, questions); err != nil {
		return fmt.Errorf("failed to export questions: %w", err)
	}

	if err := e.writeAudits(conn, audits); err != nil {
		return fmt.Errorf("failed to export audit log: %w", err)
	}

	return nil
}

func (e *Exporter) writeQuestions(conn *sqlite.Conn, records []*types.QuestionRecord) error {
	err := sqlitex.Execute(conn, `
		CREATE TABLE questions (
			id INTEGER PRIMARY KEY,
			uuid TEXT NOT NULL,
			status TEXT NOT NULL,
			text TEXT NOT NULL,
			tags TEXT NOT NULL,
			upvotes INTEGER NOT NULL,
			downvotes INTEGER NOT NULL,
			rank_score REAL NOT NULL,
			created_at TEXT NOT NULL
		)
	`, nil)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	for i := 0; i < len(records); i += insertBatchSize {
		end := min(i+insertBatchSize, len(records))

		if err := sqlitex.Execute(conn, "BEGIN TRANSACTION", nil); err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}

		for _, record := range records[i:end] {
			err := sqlitex.Execute(conn, `
				INSERT INTO questions (id, uuid, status, text, tags, upvotes, downvotes, rank_score, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, &sqlitex.ExecOptions{
				Args: []any{
					int64(record.ID), record.UUID, record.Status, record.Text, record.Tags,
					record.Upvotes, record.Downvotes, record.RankScore,
					record.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
				},
			})
			if err != nil {
				return fmt.Errorf("failed to insert record: %w", err)
			}
		}

		if err := sqlitex.Execute(conn, "COMMIT", nil); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
	}

	return nil
}

func (e *Exporter) writeAudits(conn *sqlite.Conn, records []*types.AuditRecord) error {
	err := sqlitex.Execute(conn, `
		CREATE TABLE audit_log (
			id INTEGER PRIMARY KEY,
			target_type TEXT NOT NULL,
			target_id INTEGER NOT NULL,
			activity_type TEXT NOT NULL,
			actor_id INTEGER NOT NULL,
			from_state TEXT NOT NULL,
			to_state TEXT NOT NULL,
			reason TEXT NOT NULL,
			created_at TEXT NOT NULL
		)
	`, nil)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	for i := 0; i < len(records); i += insertBatchSize {
		end := min(i+insertBatchSize, len(records))

		if err := sqlitex.Execute(conn, "BEGIN TRANSACTION", nil); err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}

		for _, record := range records[i:end] {
			err := sqlitex.Execute(conn, `
				INSERT INTO audit_log (id, target_type, target_id, activity_type, actor_id, from_state, to_state, reason, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, &sqlitex.ExecOptions{
				Args: []any{
					int64(record.ID), record.TargetType, int64(record.TargetID), record.ActivityType,
					int64(record.ActorID), record.FromState, record.ToState, record.Reason,
					record.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
				},
			})
			if err != nil {
				return fmt.Errorf("failed to insert record: %w", err)
			}
		}

		if err := sqlitex.Execute(conn, "COMMIT", nil); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
	}

	return nil
}
