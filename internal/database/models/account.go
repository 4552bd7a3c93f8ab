package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/podiumd/podium/internal/database/dbretry"
	"github.com/podiumd/podium/internal/database/types"
	"github.com/podiumd/podium/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// AccountModel handles database operations for account moderation records.
type AccountModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewAccount creates a new AccountModel instance.
func NewAccount(db *bun.DB, logger *zap.Logger) *AccountModel {
	return &AccountModel{
		db:     db,
		logger: logger.Named("db_account"),
	}
}

// Get retrieves an account's moderation record.
func (m *AccountModel) Get(ctx context.Context, userID uint64) (*types.AccountRecord, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.AccountRecord, error) {
		var record types.AccountRecord

		err := m.db.NewSelect().
			Model(&record).
			Where("user_id = ?", userID).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrAccountNotFound
			}

			return nil, fmt.Errorf("failed to get account record: %w", err)
		}

		return &record, nil
	})
}

// List retrieves account moderation records matching the filter, keyset
// paginated by user ID.
func (m *AccountModel) List(
	ctx context.Context, filter types.AccountFilter, afterUserID uint64, limit int,
) ([]*types.AccountRecord, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.AccountRecord, error) {
		var records []*types.AccountRecord

		query := m.db.NewSelect().Model(&records)

		if filter.Status != nil {
			query = query.Where("status = ?", *filter.Status)
		}

		if afterUserID != 0 {
			query = query.Where("user_id > ?", afterUserID)
		}

		err := query.
			Order("user_id ASC").
			Limit(limit).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list account records: %w", err)
		}

		return records, nil
	})
}

// ListExpiredSuspensions retrieves suspended accounts whose expiry has passed
// as of now. Used by the expiry sweep.
func (m *AccountModel) ListExpiredSuspensions(
	ctx context.Context, now time.Time, limit int,
) ([]*types.AccountRecord, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.AccountRecord, error) {
		var records []*types.AccountRecord

		err := m.db.NewSelect().
			Model(&records).
			Where("status = ?", enum.AccountStatusSuspended).
			Where("suspended_until IS NOT NULL").
			Where("suspended_until < ?", now).
			Order("suspended_until ASC").
			Limit(limit).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list expired suspensions: %w", err)
		}

		return records, nil
	})
}
