package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/podiumd/podium/internal/database/dbretry"
	"github.com/podiumd/podium/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// VoteModel handles database operations for the vote ledger.
// It owns raw vote facts; questions hold only derived aggregate counts.
type VoteModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewVote creates a new VoteModel instance.
func NewVote(db *bun.DB, logger *zap.Logger) *VoteModel {
	return &VoteModel{
		db:     db,
		logger: logger.Named("db_vote"),
	}
}

// Get retrieves a voter's active vote on a question, or nil if none exists.
func (m *VoteModel) Get(ctx context.Context, questionID, voterID uint64) (*types.Vote, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.Vote, error) {
		var vote types.Vote

		err := m.db.NewSelect().
			Model(&vote).
			Where("question_id = ?", questionID).
			Where("voter_id = ?", voterID).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, nil
			}

			return nil, fmt.Errorf("failed to get vote: %w", err)
		}

		return &vote, nil
	})
}

// CountByQuestion recounts a question's up and down votes from the ledger.
// The write path maintains counters incrementally; this exists for audits and
// tests of counter consistency.
func (m *VoteModel) CountByQuestion(ctx context.Context, questionID uint64) (int64, int64, error) {
	type tally struct {
		Direction int   `bun:"direction"`
		Count     int64 `bun:"count"`
	}

	var upvotes, downvotes int64

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		var tallies []tally

		err := m.db.NewSelect().
			Model((*types.Vote)(nil)).
			Column("direction").
			ColumnExpr("COUNT(*) AS count").
			Where("question_id = ?", questionID).
			Group("direction").
			Scan(ctx, &tallies)
		if err != nil {
			return fmt.Errorf("failed to count votes: %w", err)
		}

		upvotes, downvotes = 0, 0

		for _, t := range tallies {
			if t.Direction == 0 {
				upvotes = t.Count
			} else {
				downvotes = t.Count
			}
		}

		return nil
	})

	return upvotes, downvotes, err
}
