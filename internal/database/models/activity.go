package models

import (
	"context"
	"fmt"

	"github.com/podiumd/podium/internal/database/dbretry"
	"github.com/podiumd/podium/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// ActivityModel handles database operations for the moderation audit log.
// Records are append-only; there is deliberately no update or delete here.
type ActivityModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewActivity creates a new ActivityModel instance.
func NewActivity(db *bun.DB, logger *zap.Logger) *ActivityModel {
	return &ActivityModel{
		db:     db,
		logger: logger.Named("db_activity"),
	}
}

// Log appends a moderation action to the audit trail.
func (m *ActivityModel) Log(ctx context.Context, log *types.ActivityLog) error {
	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := m.db.NewInsert().Model(log).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to log activity: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	m.logger.Debug("Logged activity",
		zap.String("targetType", log.TargetType.String()),
		zap.Uint64("targetID", log.TargetID),
		zap.Uint64("actorID", log.ActorID),
		zap.String("activityType", log.ActivityType.String()))

	return nil
}

// GetLogs retrieves audit records matching the filter, newest first, with
// keyset pagination.
func (m *ActivityModel) GetLogs(
	ctx context.Context, filter types.ActivityFilter, cursor *types.LogCursor, limit int,
) ([]*types.ActivityLog, *types.LogCursor, error) {
	var logs []*types.ActivityLog

	var nextCursor *types.LogCursor

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		query := m.db.NewSelect().Model(&logs)

		if filter.TargetType != nil {
			query = query.Where("target_type = ?", *filter.TargetType)
		}

		if filter.TargetID != 0 {
			query = query.Where("target_id = ?", filter.TargetID)
		}

		if filter.ActorID != 0 {
			query = query.Where("actor_id = ?", filter.ActorID)
		}

		if filter.ActivityType != nil {
			query = query.Where("activity_type = ?", *filter.ActivityType)
		}

		if !filter.After.IsZero() {
			query = query.Where("created_at >= ?", filter.After)
		}

		if !filter.Before.IsZero() {
			query = query.Where("created_at <= ?", filter.Before)
		}

		if cursor != nil {
			query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
		}

		err := query.
			Order("created_at DESC", "id DESC").
			Limit(limit + 1).
			Scan(ctx)
		if err != nil {
			return fmt.Errorf("failed to get activity logs: %w", err)
		}

		if len(logs) > limit {
			last := logs[limit-1]
			nextCursor = &types.LogCursor{
				CreatedAt: last.CreatedAt,
				ID:        last.ID,
			}
			logs = logs[:limit]
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return logs, nextCursor, nil
}
