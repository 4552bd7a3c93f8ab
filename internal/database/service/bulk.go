package service

import (
	"context"
	"sort"

	"github.com/podiumd/podium/internal/database/types"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// BulkService applies a single-item transition to a set of targets, tracking
// per-item success and failure independently. It is pure orchestration: the
// moderation rules live entirely in the transition function, which runs in
// its own transaction per target, so one target's failure never aborts or
// rolls back its siblings.
type BulkService struct {
	concurrency int
	logger      *zap.Logger
}

// NewBulk creates a new bulk coordinator with bounded concurrency.
func NewBulk(concurrency int, logger *zap.Logger) *BulkService {
	if concurrency < 1 {
		concurrency = 1
	}

	return &BulkService{
		concurrency: concurrency,
		logger:      logger.Named("bulk_service"),
	}
}

// TransitionFunc applies a single-item transition to one target.
type TransitionFunc func(ctx context.Context, targetID uint64) error

// Apply runs the transition against every target and collects per-item
// outcomes. Failures are classified by error kind; the result always reports
// exact counts.
func (s *BulkService) Apply(ctx context.Context, targets []uint64, fn TransitionFunc) *types.BulkResult {
	type outcome struct {
		targetID uint64
		err      error
	}

	p := pool.NewWithResults[outcome]().WithMaxGoroutines(s.concurrency)

	for _, targetID := range targets {
		p.Go(func() outcome {
			return outcome{targetID: targetID, err: fn(ctx, targetID)}
		})
	}

	outcomes := p.Wait()

	result := &types.BulkResult{Failures: []types.BulkFailure{}}

	for _, o := range outcomes {
		if o.err == nil {
			result.SuccessCount++
			continue
		}

		result.FailureCount++
		result.Failures = append(result.Failures, types.BulkFailure{
			TargetID:  o.targetID,
			ErrorKind: types.KindOf(o.err),
		})

		s.logger.Debug("Bulk target failed",
			zap.Uint64("targetID", o.targetID),
			zap.Error(o.err))
	}

	// Keep failure order deterministic regardless of goroutine scheduling.
	sort.Slice(result.Failures, func(i, j int) bool {
		return result.Failures[i].TargetID < result.Failures[j].TargetID
	})

	return result
}
