package migrations

import (
	"context"
	"fmt"

	"github.com/podiumd/podium/internal/database/types/enum"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewRaw(`
			-- Question listing indexes
			CREATE INDEX IF NOT EXISTS idx_questions_rank
			ON questions (status, rank_score DESC, created_at DESC, id DESC);

			CREATE INDEX IF NOT EXISTS idx_questions_newest
			ON questions (status, created_at DESC, id DESC);

			CREATE INDEX IF NOT EXISTS idx_questions_author
			ON questions (author_id, created_at DESC);

			-- Rank decay sweep scans for stale scores on votable questions
			CREATE INDEX IF NOT EXISTS idx_questions_scored_at
			ON questions (scored_at ASC)
			WHERE status IN (?, ?);

			-- Vote tally index
			CREATE INDEX IF NOT EXISTS idx_votes_question
			ON votes (question_id, direction);

			-- Suspension expiry sweep
			CREATE INDEX IF NOT EXISTS idx_account_records_suspended
			ON account_records (suspended_until ASC)
			WHERE status = ?;

			-- Activity log indexes
			CREATE INDEX IF NOT EXISTS idx_activity_logs_time
			ON activity_logs (created_at DESC, id DESC);

			CREATE INDEX IF NOT EXISTS idx_activity_logs_target_time
			ON activity_logs (target_type, target_id, created_at DESC, id DESC);

			CREATE INDEX IF NOT EXISTS idx_activity_logs_actor_time
			ON activity_logs (actor_id, created_at DESC, id DESC);

			CREATE INDEX IF NOT EXISTS idx_activity_logs_type_time
			ON activity_logs (activity_type, created_at DESC, id DESC);
		`,
			enum.QuestionStatusPending, enum.QuestionStatusApproved,
			enum.AccountStatusSuspended,
		).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create indexes: %w", err)
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewRaw(`
			DROP INDEX IF EXISTS idx_questions_rank;
			DROP INDEX IF EXISTS idx_questions_newest;
			DROP INDEX IF EXISTS idx_questions_author;
			DROP INDEX IF EXISTS idx_questions_scored_at;
			DROP INDEX IF EXISTS idx_votes_question;
			DROP INDEX IF EXISTS idx_account_records_suspended;
			DROP INDEX IF EXISTS idx_activity_logs_time;
			DROP INDEX IF EXISTS idx_activity_logs_target_time;
			DROP INDEX IF EXISTS idx_activity_logs_actor_time;
			DROP INDEX IF EXISTS idx_activity_logs_type_time;
		`).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to drop indexes: %w", err)
		}

		return nil
	})
}
