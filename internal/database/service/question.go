package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/podiumd/podium/internal/database/dbretry"
	"github.com/podiumd/podium/internal/database/models"
	"github.com/podiumd/podium/internal/database/types"
	"github.com/podiumd/podium/internal/database/types/enum"
	"github.com/podiumd/podium/internal/dedup"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// duplicateCandidatePool bounds how many recent questions the duplicate
// detector compares against.
const duplicateCandidatePool = 500

// QuestionService owns the question moderation state machine:
// pending → approved | rejected | merged, with approved → merged allowed for
// late-discovered duplicates. Every successful transition appends an audit
// record in the same transaction.
type QuestionService struct {
	db       *bun.DB
	model    *models.QuestionModel
	activity *models.ActivityModel
	detector *dedup.Detector
	logger   *zap.Logger
}

// NewQuestion creates a new question service.
func NewQuestion(
	db *bun.DB,
	model *models.QuestionModel,
	activity *models.ActivityModel,
	detector *dedup.Detector,
	logger *zap.Logger,
) *QuestionService {
	return &QuestionService{
		db:       db,
		model:    model,
		activity: activity,
		detector: detector,
		logger:   logger.Named("question_service"),
	}
}

// Submit validates and stores a new question in pending status.
func (s *QuestionService) Submit(
	ctx context.Context, authorID uint64, text, questionContext string, tags []string,
) (*types.Question, error) {
	question, err := types.NewSubmission(authorID, text, questionContext, tags)
	if err != nil {
		return nil, err
	}

	if err := s.model.Create(ctx, question); err != nil {
		return nil, err
	}

	err = s.activity.Log(ctx, &types.ActivityLog{
		TargetType:   enum.TargetTypeQuestion,
		TargetID:     question.ID,
		ActivityType: enum.ActivityTypeQuestionSubmitted,
		ActorID:      authorID,
		ToState:      enum.QuestionStatusPending.String(),
		CreatedAt:    question.CreatedAt,
	})
	if err != nil {
		s.logger.Error("Failed to log question submission",
			zap.Error(err),
			zap.Uint64("questionID", question.ID))
	}

	return question, nil
}

// Approve transitions a pending question to approved.
func (s *QuestionService) Approve(ctx context.Context, questionID, actorID uint64) (*types.Question, error) {
	var approved *types.Question

	err := dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		question, err := lockQuestion(ctx, tx, questionID)
		if err != nil {
			return err
		}

		now := time.Now()
		fromState := question.Status

		if err := question.Approve(now); err != nil {
			return err
		}

		_, err = tx.NewUpdate().
			Model(question).
			Column("status", "updated_at").
			WherePK().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to approve question: %w", err)
		}

		err = appendAudit(ctx, tx, &types.ActivityLog{
			TargetType:   enum.TargetTypeQuestion,
			TargetID:     questionID,
			ActivityType: enum.ActivityTypeQuestionApproved,
			ActorID:      actorID,
			FromState:    fromState.String(),
			ToState:      question.Status.String(),
			CreatedAt:    now,
		})
		if err != nil {
			return err
		}

		approved = question

		return nil
	})
	if err != nil {
		return nil, err
	}

	return approved, nil
}

// Reject transitions a pending question to rejected. The reason is required
// and recorded on the audit trail; rejected is terminal.
func (s *QuestionService) Reject(
	ctx context.Context, questionID, actorID uint64, reason string,
) (*types.Question, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", types.ErrValidation)
	}

	var rejected *types.Question

	err := dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		question, err := lockQuestion(ctx, tx, questionID)
		if err != nil {
			return err
		}

		now := time.Now()
		fromState := question.Status

		if err := question.Reject(now); err != nil {
			return err
		}

		_, err = tx.NewUpdate().
			Model(question).
			Column("status", "updated_at").
			WherePK().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to reject question: %w", err)
		}

		err = appendAudit(ctx, tx, &types.ActivityLog{
			TargetType:   enum.TargetTypeQuestion,
			TargetID:     questionID,
			ActivityType: enum.ActivityTypeQuestionRejected,
			ActorID:      actorID,
			FromState:    fromState.String(),
			ToState:      question.Status.String(),
			Reason:       reason,
			CreatedAt:    now,
		})
		if err != nil {
			return err
		}

		rejected = question

		return nil
	})
	if err != nil {
		return nil, err
	}

	return rejected, nil
}

// Merge consolidates a duplicate source question into a canonical target.
// The source's votes are not transferred; they stay attributed to the source
// for audit purposes, and reads of the source redirect display to the target.
func (s *QuestionService) Merge(
	ctx context.Context, sourceID, targetID, actorID uint64,
) (*types.Question, error) {
	if sourceID == targetID {
		return nil, fmt.Errorf("%w: cannot merge a question into itself", types.ErrInvalidState)
	}

	var merged *types.Question

	err := dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		// Lock in ID order so two opposing merges cannot deadlock.
		firstID, secondID := sourceID, targetID
		if targetID < sourceID {
			firstID, secondID = targetID, sourceID
		}

		first, err := lockQuestion(ctx, tx, firstID)
		if err != nil {
			return err
		}

		second, err := lockQuestion(ctx, tx, secondID)
		if err != nil {
			return err
		}

		source, target := first, second
		if source.ID != sourceID {
			source, target = second, first
		}

		now := time.Now()
		fromState := source.Status

		if err := source.MergeInto(target, now); err != nil {
			return err
		}

		_, err = tx.NewUpdate().
			Model(source).
			Column("status", "merged_into_id", "updated_at").
			WherePK().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to merge question: %w", err)
		}

		err = appendAudit(ctx, tx, &types.ActivityLog{
			TargetType:   enum.TargetTypeQuestion,
			TargetID:     source.ID,
			ActivityType: enum.ActivityTypeQuestionMerged,
			ActorID:      actorID,
			FromState:    fromState.String(),
			ToState:      source.Status.String(),
			Details:      map[string]any{"mergedInto": target.ID},
			CreatedAt:    now,
		})
		if err != nil {
			return err
		}

		merged = source

		return nil
	})
	if err != nil {
		return nil, err
	}

	return merged, nil
}

// FindDuplicates proposes candidate duplicates for a question, ranked by
// similarity descending. Advisory only; it never mutates state.
func (s *QuestionService) FindDuplicates(ctx context.Context, questionID uint64) ([]dedup.Match, error) {
	question, err := s.model.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.model.ListByStatuses(ctx, []enum.QuestionStatus{
		enum.QuestionStatusPending,
		enum.QuestionStatusApproved,
	}, duplicateCandidatePool)
	if err != nil {
		return nil, err
	}

	return s.detector.Find(question, candidates), nil
}

// Get retrieves a question by ID.
func (s *QuestionService) Get(ctx context.Context, questionID uint64) (*types.Question, error) {
	return s.model.GetByID(ctx, questionID)
}

// List retrieves questions matching the filter with keyset pagination.
func (s *QuestionService) List(
	ctx context.Context, filter types.QuestionFilter, cursor *types.QuestionCursor, limit int,
) ([]*types.Question, *types.QuestionCursor, error) {
	return s.model.List(ctx, filter, cursor, limit)
}

// appendAudit inserts an audit record inside the caller's transaction so a
// transition and its log line commit or roll back together.
func appendAudit(ctx context.Context, tx bun.Tx, log *types.ActivityLog) error {
	if _, err := tx.NewInsert().Model(log).Exec(ctx); err != nil {
		return fmt.Errorf("failed to append audit record: %w", err)
	}

	return nil
}
