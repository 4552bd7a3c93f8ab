package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/podiumd/podium/internal/database/dbretry"
	"github.com/podiumd/podium/internal/database/models"
	"github.com/podiumd/podium/internal/database/types"
	"github.com/podiumd/podium/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// AccountService owns the account moderation state machine:
// active ⇄ warned, active/warned → suspended, anything unbanned → banned, and
// restore back to active from suspended or banned only. Moderation records
// are created lazily on the first event; warning counts and the audit history
// are append-only and survive every transition.
type AccountService struct {
	db       *bun.DB
	model    *models.AccountModel
	activity *models.ActivityModel
	logger   *zap.Logger
}

// NewAccount creates a new account service.
func NewAccount(
	db *bun.DB,
	model *models.AccountModel,
	activity *models.ActivityModel,
	logger *zap.Logger,
) *AccountService {
	return &AccountService{
		db:       db,
		model:    model,
		activity: activity,
		logger:   logger.Named("account_service"),
	}
}

// Warn issues a warning against an account and increments its warning count.
// Warning a suspended account lifts the suspension. Fails on banned accounts.
func (s *AccountService) Warn(
	ctx context.Context, userID, actorID uint64, reason string,
) (*types.AccountRecord, error) {
	if err := requireReason(reason); err != nil {
		return nil, err
	}

	return s.transition(ctx, userID, true, func(ctx context.Context, tx bun.Tx, record *types.AccountRecord) error {
		now := time.Now()
		fromState := record.Status

		if err := record.Warn(now); err != nil {
			return err
		}

		// suspended_until is written too: warning a suspended account lifts
		// the suspension, and the expiry must go with the status.
		_, err := tx.NewUpdate().
			Model(record).
			Column("status", "warning_count", "suspended_until", "updated_at").
			WherePK().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to warn account: %w", err)
		}

		return appendAudit(ctx, tx, &types.ActivityLog{
			TargetType:   enum.TargetTypeAccount,
			TargetID:     userID,
			ActivityType: enum.ActivityTypeAccountWarned,
			ActorID:      actorID,
			FromState:    fromState.String(),
			ToState:      record.Status.String(),
			Reason:       reason,
			Details:      map[string]any{"warningCount": record.WarningCount},
			CreatedAt:    now,
		})
	})
}

// Suspend suspends an account for durationDays, bounded by the policy
// maximum. Fails on banned accounts; out-of-range durations fail validation.
func (s *AccountService) Suspend(
	ctx context.Context, userID, actorID uint64, reason string, durationDays int,
) (*types.AccountRecord, error) {
	if err := requireReason(reason); err != nil {
		return nil, err
	}

	return s.transition(ctx, userID, true, func(ctx context.Context, tx bun.Tx, record *types.AccountRecord) error {
		now := time.Now()
		fromState := record.Status

		if err := record.Suspend(now, durationDays); err != nil {
			return err
		}

		_, err := tx.NewUpdate().
			Model(record).
			Column("status", "suspended_until", "updated_at").
			WherePK().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to suspend account: %w", err)
		}

		return appendAudit(ctx, tx, &types.ActivityLog{
			TargetType:   enum.TargetTypeAccount,
			TargetID:     userID,
			ActivityType: enum.ActivityTypeAccountSuspended,
			ActorID:      actorID,
			FromState:    fromState.String(),
			ToState:      record.Status.String(),
			Reason:       reason,
			Details:      map[string]any{"durationDays": durationDays, "suspendedUntil": *record.SuspendedUntil},
			CreatedAt:    now,
		})
	})
}

// Ban bans an account indefinitely, clearing any active suspension expiry.
// Only an explicit restore returns a banned account to active.
func (s *AccountService) Ban(
	ctx context.Context, userID, actorID uint64, reason string,
) (*types.AccountRecord, error) {
	if err := requireReason(reason); err != nil {
		return nil, err
	}

	return s.transition(ctx, userID, true, func(ctx context.Context, tx bun.Tx, record *types.AccountRecord) error {
		now := time.Now()
		fromState := record.Status

		if err := record.Ban(now); err != nil {
			return err
		}

		_, err := tx.NewUpdate().
			Model(record).
			Column("status", "suspended_until", "updated_at").
			WherePK().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to ban account: %w", err)
		}

		return appendAudit(ctx, tx, &types.ActivityLog{
			TargetType:   enum.TargetTypeAccount,
			TargetID:     userID,
			ActivityType: enum.ActivityTypeAccountBanned,
			ActorID:      actorID,
			FromState:    fromState.String(),
			ToState:      record.Status.String(),
			Reason:       reason,
			CreatedAt:    now,
		})
	})
}

// Restore returns a suspended or banned account to active, clearing the
// suspension expiry. The warning count and history are untouched.
func (s *AccountService) Restore(
	ctx context.Context, userID, actorID uint64, reason string,
) (*types.AccountRecord, error) {
	if err := requireReason(reason); err != nil {
		return nil, err
	}

	return s.transition(ctx, userID, false, func(ctx context.Context, tx bun.Tx, record *types.AccountRecord) error {
		now := time.Now()
		fromState := record.Status

		if err := record.Restore(now); err != nil {
			return err
		}

		_, err := tx.NewUpdate().
			Model(record).
			Column("status", "suspended_until", "updated_at").
			WherePK().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to restore account: %w", err)
		}

		return appendAudit(ctx, tx, &types.ActivityLog{
			TargetType:   enum.TargetTypeAccount,
			TargetID:     userID,
			ActivityType: enum.ActivityTypeAccountRestored,
			ActorID:      actorID,
			FromState:    fromState.String(),
			ToState:      record.Status.String(),
			Reason:       reason,
			CreatedAt:    now,
		})
	})
}

// ExpireSuspension returns a suspended account whose expiry has passed back
// to active on behalf of the system actor. The status and expiry are
// re-checked under the row lock so the sweep never contradicts a transition
// committed after its snapshot.
func (s *AccountService) ExpireSuspension(ctx context.Context, userID uint64) (bool, error) {
	expired := false

	err := dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		record, err := lockAccount(ctx, tx, userID)
		if err != nil {
			return err
		}

		now := time.Now()
		if !record.SuspensionExpired(now) {
			return nil
		}

		fromState := record.Status

		if err := record.Restore(now); err != nil {
			return err
		}

		_, err = tx.NewUpdate().
			Model(record).
			Column("status", "suspended_until", "updated_at").
			WherePK().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to expire suspension: %w", err)
		}

		err = appendAudit(ctx, tx, &types.ActivityLog{
			TargetType:   enum.TargetTypeAccount,
			TargetID:     userID,
			ActivityType: enum.ActivityTypeSuspensionExpired,
			ActorID:      types.SystemActorID,
			FromState:    fromState.String(),
			ToState:      record.Status.String(),
			Reason:       "suspension expired",
			CreatedAt:    now,
		})
		if err != nil {
			return err
		}

		expired = true

		return nil
	})
	if err != nil {
		return false, err
	}

	return expired, nil
}

// Get retrieves an account's moderation record.
func (s *AccountService) Get(ctx context.Context, userID uint64) (*types.AccountRecord, error) {
	return s.model.Get(ctx, userID)
}

// List retrieves account moderation records matching the filter.
func (s *AccountService) List(
	ctx context.Context, filter types.AccountFilter, afterUserID uint64, limit int,
) ([]*types.AccountRecord, error) {
	return s.model.List(ctx, filter, afterUserID, limit)
}

// transition runs fn against the account's record under a row lock,
// creating the record lazily first when createMissing is set. Restore paths
// pass createMissing=false: an account with no record has never been
// moderated, so there is nothing to restore from.
func (s *AccountService) transition(
	ctx context.Context, userID uint64, createMissing bool,
	fn func(context.Context, bun.Tx, *types.AccountRecord) error,
) (*types.AccountRecord, error) {
	var result *types.AccountRecord

	err := dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		record, err := lockAccount(ctx, tx, userID)
		if errors.Is(err, types.ErrAccountNotFound) {
			if !createMissing {
				return fmt.Errorf("%w: account has never been moderated", types.ErrInvalidState)
			}

			record, err = createAccountRecord(ctx, tx, userID)
		}

		if err != nil {
			return err
		}

		if err := fn(ctx, tx, record); err != nil {
			return err
		}

		result = record

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// lockAccount selects an account record under FOR UPDATE so concurrent
// transitions on the same account serialize.
func lockAccount(ctx context.Context, tx bun.Tx, userID uint64) (*types.AccountRecord, error) {
	var record types.AccountRecord

	err := tx.NewSelect().
		Model(&record).
		Where("user_id = ?", userID).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrAccountNotFound
		}

		return nil, fmt.Errorf("failed to lock account record: %w", err)
	}

	return &record, nil
}

// createAccountRecord inserts a fresh active record. A concurrent insert of
// the same record surfaces as a conflict for the retry layer to replay.
func createAccountRecord(ctx context.Context, tx bun.Tx, userID uint64) (*types.AccountRecord, error) {
	now := time.Now()

	record := &types.AccountRecord{
		UserID:    userID,
		Status:    enum.AccountStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := tx.NewInsert().Model(record).Exec(ctx); err != nil {
		return nil, fmt.Errorf("%w: concurrent account record creation: %w", types.ErrConflict, err)
	}

	return record, nil
}

func requireReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%w: a reason is required", types.ErrValidation)
	}

	return nil
}
