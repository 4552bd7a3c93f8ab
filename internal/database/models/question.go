package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/podiumd/podium/internal/database/dbretry"
	"github.com/podiumd/podium/internal/database/types"
	"github.com/podiumd/podium/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// QuestionModel handles database operations for questions.
type QuestionModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewQuestion creates a new QuestionModel instance.
func NewQuestion(db *bun.DB, logger *zap.Logger) *QuestionModel {
	return &QuestionModel{
		db:     db,
		logger: logger.Named("db_question"),
	}
}

// Create inserts a new question and fills in its generated ID.
func (m *QuestionModel) Create(ctx context.Context, question *types.Question) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := m.db.NewInsert().
			Model(question).
			Returning("id").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create question: %w", err)
		}

		return nil
	})
}

// GetByID retrieves a question by ID.
func (m *QuestionModel) GetByID(ctx context.Context, questionID uint64) (*types.Question, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.Question, error) {
		var question types.Question

		err := m.db.NewSelect().
			Model(&question).
			Where("id = ?", questionID).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrQuestionNotFound
			}

			return nil, fmt.Errorf("failed to get question: %w", err)
		}

		return &question, nil
	})
}

// List retrieves questions matching the filter with keyset pagination.
// Rank-score listings page on (rank_score, id), recency listings on
// (created_at, id).
func (m *QuestionModel) List(
	ctx context.Context, filter types.QuestionFilter, cursor *types.QuestionCursor, limit int,
) ([]*types.Question, *types.QuestionCursor, error) {
	var questions []*types.Question

	var nextCursor *types.QuestionCursor

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		query := m.db.NewSelect().Model(&questions)

		if filter.Status != nil {
			query = query.Where("status = ?", *filter.Status)
		}

		if filter.Search != "" {
			query = query.Where("text ILIKE ?", "%"+escapeLike(filter.Search)+"%")
		}

		switch filter.SortBy {
		case enum.QuestionSortByNewest:
			query = query.Order("created_at DESC", "id DESC")
			if cursor != nil {
				query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
			}
		case enum.QuestionSortByRankScore:
			query = query.Order("rank_score DESC", "id DESC")
			if cursor != nil {
				query = query.Where("(rank_score, id) < (?, ?)", cursor.RankScore, cursor.ID)
			}
		}

		err := query.Limit(limit + 1).Scan(ctx)
		if err != nil {
			return fmt.Errorf("failed to list questions: %w", err)
		}

		if len(questions) > limit {
			last := questions[limit-1]
			nextCursor = &types.QuestionCursor{
				RankScore: last.RankScore,
				CreatedAt: last.CreatedAt,
				ID:        last.ID,
			}
			questions = questions[:limit]
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return questions, nextCursor, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes pattern metacharacters so user search terms match
// literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ListByStatuses retrieves questions in any of the given statuses, newest
// first. Used by the duplicate detector to build its candidate pool.
func (m *QuestionModel) ListByStatuses(
	ctx context.Context, statuses []enum.QuestionStatus, limit int,
) ([]*types.Question, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Question, error) {
		var questions []*types.Question

		err := m.db.NewSelect().
			Model(&questions).
			Where("status IN (?)", bun.In(statuses)).
			Order("created_at DESC").
			Limit(limit).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list questions by status: %w", err)
		}

		return questions, nil
	})
}

// ListScoredBefore retrieves votable questions whose rank score has not been
// recomputed since the cutoff. Used by the decay sweep; rows mutated after the
// sweep's snapshot time are naturally excluded by the scored_at check.
func (m *QuestionModel) ListScoredBefore(
	ctx context.Context, cutoff time.Time, limit int,
) ([]*types.Question, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Question, error) {
		var questions []*types.Question

		err := m.db.NewSelect().
			Model(&questions).
			Where("status IN (?)", bun.In([]enum.QuestionStatus{
				enum.QuestionStatusPending,
				enum.QuestionStatusApproved,
			})).
			Where("scored_at < ?", cutoff).
			Order("scored_at ASC").
			Limit(limit).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list stale questions: %w", err)
		}

		return questions, nil
	})
}

// UpdateScore persists a recomputed rank score. The scored_at guard keeps an
// overlapping sweep from clobbering a fresher write-path score.
func (m *QuestionModel) UpdateScore(
	ctx context.Context, questionID uint64, score float64, scoredAt time.Time,
) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := m.db.NewUpdate().
			Model((*types.Question)(nil)).
			Set("rank_score = ?", score).
			Set("scored_at = ?", scoredAt).
			Where("id = ?", questionID).
			Where("scored_at < ?", scoredAt).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to update rank score: %w", err)
		}

		return nil
	})
}
