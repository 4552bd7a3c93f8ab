package migrations

import (
	"context"
	"fmt"

	"github.com/podiumd/podium/internal/database/types"
	"github.com/podiumd/podium/internal/database/types/enum"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		models := []any{
			(*types.Question)(nil),
			(*types.Vote)(nil),
			(*types.AccountRecord)(nil),
			(*types.ActivityLog)(nil),
		}

		for _, model := range models {
			_, err := db.NewCreateTable().
				Model(model).
				IfNotExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to create table %T: %w", model, err)
			}
		}

		// The merge target must itself never be merged; the service enforces
		// this, the constraint catches anything that slips through.
		_, err := db.NewRaw(`
			ALTER TABLE questions
			ADD CONSTRAINT questions_merged_iff_target
			CHECK ((status = ?) = (merged_into_id IS NOT NULL))
		`, enum.QuestionStatusMerged).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to add merge constraint: %w", err)
		}

		_, err = db.NewRaw(`
			ALTER TABLE account_records
			ADD CONSTRAINT account_records_suspended_iff_expiry
			CHECK ((status = ?) = (suspended_until IS NOT NULL))
		`, enum.AccountStatusSuspended).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to add suspension constraint: %w", err)
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		models := []any{
			(*types.ActivityLog)(nil),
			(*types.AccountRecord)(nil),
			(*types.Vote)(nil),
			(*types.Question)(nil),
		}

		for _, model := range models {
			_, err := db.NewDropTable().
				Model(model).
				IfExists().
				Cascade().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to drop table %T: %w", model, err)
			}
		}

		return nil
	})
}
