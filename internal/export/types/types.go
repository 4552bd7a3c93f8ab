// Package types defines the flat record shapes written by export backends.
package types

import "time"

// QuestionRecord represents a question row in the export files.
type QuestionRecord struct {
	ID        uint64
	UUID      string
	Status    string
	Text      string
	Tags      string
	Upvotes   int64
	Downvotes int64
	RankScore float64
	CreatedAt time.Time
}

// AuditRecord represents a moderation audit row in the export files.
type AuditRecord struct {
	ID           uint64
	TargetType   string
	TargetID     uint64
	ActivityType string
	ActorID      uint64
	FromState    string
	ToState      string
	Reason       string
	CreatedAt    time.Time
}
