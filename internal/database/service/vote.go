package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/podiumd/podium/internal/database/dbretry"
	"github.com/podiumd/podium/internal/database/models"
	"github.com/podiumd/podium/internal/database/types"
	"github.com/podiumd/podium/internal/database/types/enum"
	"github.com/podiumd/podium/internal/ranking"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// VoteService handles vote ledger business logic. All counter changes happen
// inside a single transaction holding the question row lock, so concurrent
// casts never lose an increment and readers never observe half-applied
// direction switches.
type VoteService struct {
	db       *bun.DB
	model    *models.VoteModel
	question *models.QuestionModel
	calc     *ranking.Calculator
	logger   *zap.Logger
}

// NewVote creates a new vote service.
func NewVote(
	db *bun.DB,
	model *models.VoteModel,
	question *models.QuestionModel,
	calc *ranking.Calculator,
	logger *zap.Logger,
) *VoteService {
	return &VoteService{
		db:       db,
		model:    model,
		question: question,
		calc:     calc,
		logger:   logger.Named("vote_service"),
	}
}

// CastVote idempotently sets or overwrites the voter's direction on a
// question and recomputes the question's counters and rank score in the same
// transaction. Re-casting the same direction is a no-op; switching direction
// moves exactly one count each way.
func (s *VoteService) CastVote(
	ctx context.Context, questionID, voterID uint64, direction enum.VoteDirection,
) (*types.VoteTotals, error) {
	var totals *types.VoteTotals

	err := dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		question, err := lockQuestion(ctx, tx, questionID)
		if err != nil {
			return err
		}

		if !question.Status.Votable() {
			return fmt.Errorf("%w: cannot vote on %s question", types.ErrInvalidState, question.Status)
		}

		existing, err := selectVote(ctx, tx, questionID, voterID)
		if err != nil {
			return err
		}

		deltaUp, deltaDown, changed := types.CastDelta(existing, direction)
		if !changed {
			totals = totalsOf(question)
			return nil
		}

		now := time.Now()

		vote := &types.Vote{
			QuestionID: questionID,
			VoterID:    voterID,
			Direction:  direction,
			UpdatedAt:  now,
		}

		_, err = tx.NewInsert().
			Model(vote).
			On("CONFLICT (question_id, voter_id) DO UPDATE").
			Set("direction = EXCLUDED.direction").
			Set("updated_at = EXCLUDED.updated_at").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to save vote: %w", err)
		}

		totals, err = s.applyCounterDelta(ctx, tx, question, deltaUp, deltaDown, now)

		return err
	})
	if err != nil {
		return nil, err
	}

	return totals, nil
}

// RetractVote removes the voter's vote and decrements the corresponding
// counter. Retracting a vote that does not exist is a no-op.
func (s *VoteService) RetractVote(
	ctx context.Context, questionID, voterID uint64,
) (*types.VoteTotals, error) {
	var totals *types.VoteTotals

	err := dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		question, err := lockQuestion(ctx, tx, questionID)
		if err != nil {
			return err
		}

		if !question.Status.Votable() {
			return fmt.Errorf("%w: cannot retract vote on %s question", types.ErrInvalidState, question.Status)
		}

		existing, err := selectVote(ctx, tx, questionID, voterID)
		if err != nil {
			return err
		}

		deltaUp, deltaDown, changed := types.RetractDelta(existing)
		if !changed {
			totals = totalsOf(question)
			return nil
		}

		_, err = tx.NewDelete().
			Model((*types.Vote)(nil)).
			Where("question_id = ?", questionID).
			Where("voter_id = ?", voterID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete vote: %w", err)
		}

		totals, err = s.applyCounterDelta(ctx, tx, question, deltaUp, deltaDown, time.Now())

		return err
	})
	if err != nil {
		return nil, err
	}

	return totals, nil
}

// applyCounterDelta updates the question's counters with relative increments
// and persists the recomputed rank score. The caller must hold the question
// row lock.
func (s *VoteService) applyCounterDelta(
	ctx context.Context, tx bun.Tx, question *types.Question, deltaUp, deltaDown int64, now time.Time,
) (*types.VoteTotals, error) {
	question.Upvotes += deltaUp
	question.Downvotes += deltaDown

	score := s.calc.Score(question.Upvotes, question.Downvotes, now.Sub(question.CreatedAt))

	_, err := tx.NewUpdate().
		Model((*types.Question)(nil)).
		Set("upvotes = upvotes + ?", deltaUp).
		Set("downvotes = downvotes + ?", deltaDown).
		Set("rank_score = ?", score).
		Set("scored_at = ?", now).
		Set("updated_at = ?", now).
		Where("id = ?", question.ID).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update vote counters: %w", err)
	}

	return &types.VoteTotals{
		QuestionID: question.ID,
		Upvotes:    question.Upvotes,
		Downvotes:  question.Downvotes,
		RankScore:  score,
	}, nil
}

// lockQuestion selects a question under FOR UPDATE so the transaction
// serializes against concurrent votes and status transitions on the same row.
func lockQuestion(ctx context.Context, tx bun.Tx, questionID uint64) (*types.Question, error) {
	var question types.Question

	err := tx.NewSelect().
		Model(&question).
		Where("id = ?", questionID).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrQuestionNotFound
		}

		return nil, fmt.Errorf("failed to lock question: %w", err)
	}

	return &question, nil
}

func selectVote(ctx context.Context, tx bun.Tx, questionID, voterID uint64) (*types.Vote, error) {
	var vote types.Vote

	err := tx.NewSelect().
		Model(&vote).
		Where("question_id = ?", questionID).
		Where("voter_id = ?", voterID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get existing vote: %w", err)
	}

	return &vote, nil
}

func totalsOf(question *types.Question) *types.VoteTotals {
	return &types.VoteTotals{
		QuestionID: question.ID,
		Upvotes:    question.Upvotes,
		Downvotes:  question.Downvotes,
		RankScore:  question.RankScore,
	}
}
