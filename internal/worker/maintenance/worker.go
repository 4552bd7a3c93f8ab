// Package maintenance runs the periodic sweeps that keep derived state fresh:
// rank scores decay over time even without new votes, and expired suspensions
// return accounts to active.
package maintenance

import (
	"context"
	"time"

	"github.com/podiumd/podium/internal/database"
	"github.com/podiumd/podium/internal/ranking"
	"github.com/podiumd/podium/internal/setup"
	"github.com/podiumd/podium/internal/worker/core"
	"go.uber.org/zap"
)

// Worker handles all maintenance operations.
type Worker struct {
	db             database.Client
	calc           *ranking.Calculator
	reporter       *core.StatusReporter
	logger         *zap.Logger
	sweepInterval  time.Duration
	staleAfter     time.Duration
	rescoreBatch   int
	expiryInterval time.Duration
	expiryBatch    int
}

// New creates a new maintenance worker.
func New(app *setup.App, logger *zap.Logger) *Worker {
	reporter := core.NewStatusReporter(app.StatusClient, "maintenance", logger)

	return &Worker{
		db:             app.DB,
		calc:           ranking.NewCalculator(app.Config.Common.Ranking.ToParams()),
		reporter:       reporter,
		logger:         logger,
		sweepInterval:  time.Duration(app.Config.Worker.RankSweepInterval) * time.Second,
		staleAfter:     time.Duration(app.Config.Worker.RankStaleAfter) * time.Second,
		rescoreBatch:   app.Config.Worker.RankSweepBatch,
		expiryInterval: time.Duration(app.Config.Worker.SuspensionSweepInterval) * time.Second,
		expiryBatch:    app.Config.Worker.SuspensionSweepBatch,
	}
}

// Start begins the maintenance worker's main loop. It blocks until the
// context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Maintenance worker started", zap.String("workerID", w.reporter.GetWorkerID()))
	w.reporter.Start(ctx)

	defer w.reporter.Stop()

	rankTicker := time.NewTicker(w.sweepInterval)
	defer rankTicker.Stop()

	expiryTicker := time.NewTicker(w.expiryInterval)
	defer expiryTicker.Stop()

	// Run both sweeps once at startup so a long interval does not leave
	// stale state sitting around after a restart.
	w.rescoreStaleQuestions(ctx)
	w.expireSuspensions(ctx)

	for {
		select {
		case <-rankTicker.C:
			w.rescoreStaleQuestions(ctx)
		case <-expiryTicker.C:
			w.expireSuspensions(ctx)
		case <-ctx.Done():
			w.logger.Info("Maintenance worker stopped")
			return
		}
	}
}

// rescoreStaleQuestions recomputes rank scores for votable questions whose
// score has not been refreshed recently. Vote writes recompute scores inline,
// so this only has to catch questions that stopped receiving votes.
func (w *Worker) rescoreStaleQuestions(ctx context.Context) {
	w.reporter.UpdateStatus("Rescoring stale questions", 50)
	w.reporter.SetHealthy(true)

	now := time.Now()
	cutoff := now.Add(-w.staleAfter)

	questions, err := w.db.Model().Question().ListScoredBefore(ctx, cutoff, w.rescoreBatch)
	if err != nil {
		w.logger.Error("Error listing stale questions", zap.Error(err))
		w.reporter.SetHealthy(false)

		return
	}

	if len(questions) == 0 {
		return
	}

	rescored := 0

	for _, question := range questions {
		score := w.calc.Score(question.Upvotes, question.Downvotes, now.Sub(question.CreatedAt))

		if err := w.db.Model().Question().UpdateScore(ctx, question.ID, score, now); err != nil {
			w.logger.Error("Error updating rank score",
				zap.Error(err),
				zap.Uint64("questionID", question.ID))
			w.reporter.SetHealthy(false)

			continue
		}

		rescored++
	}

	w.logger.Info("Rescored stale questions",
		zap.Int("candidates", len(questions)),
		zap.Int("rescored", rescored))
}

// expireSuspensions restores accounts whose suspension expiry has passed.
func (w *Worker) expireSuspensions(ctx context.Context) {
	w.reporter.UpdateStatus("Expiring suspensions", 50)

	records, err := w.db.Model().Account().ListExpiredSuspensions(ctx, time.Now(), w.expiryBatch)
	if err != nil {
		w.logger.Error("Error listing expired suspensions", zap.Error(err))
		w.reporter.SetHealthy(false)

		return
	}

	if len(records) == 0 {
		return
	}

	restored := 0

	for _, record := range records {
		// ExpireSuspension re-checks the expiry under a row lock, so a
		// concurrent ban or manual restore makes this a clean no-op.
		changed, err := w.db.Service().Account().ExpireSuspension(ctx, record.UserID)
		if err != nil {
			w.logger.Error("Error expiring suspension",
				zap.Error(err),
				zap.Uint64("userID", record.UserID))
			w.reporter.SetHealthy(false)

			continue
		}

		if changed {
			restored++
		}
	}

	w.logger.Info("Expired suspensions",
		zap.Int("candidates", len(records)),
		zap.Int("restored", restored))
}
