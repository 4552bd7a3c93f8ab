package service_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/podiumd/podium/internal/database/service"
	"github.com/podiumd/podium/internal/database/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBulkApplyPartialFailure(t *testing.T) {
	t.Parallel()

	bulk := service.NewBulk(4, zap.NewNop())

	// Q2 is already approved, so its transition reports an invalid state.
	fn := func(_ context.Context, targetID uint64) error {
		if targetID == 2 {
			return fmt.Errorf("%w: cannot approve Approved question", types.ErrInvalidState)
		}

		return nil
	}

	result := bulk.Apply(t.Context(), []uint64{1, 2}, fn)

	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, uint64(2), result.Failures[0].TargetID)
	assert.Equal(t, types.ErrorKindInvalidState, result.Failures[0].ErrorKind)
}

func TestBulkApplyClassifiesErrorKinds(t *testing.T) {
	t.Parallel()

	bulk := service.NewBulk(2, zap.NewNop())

	errs := map[uint64]error{
		1: types.ErrQuestionNotFound,
		2: types.ErrInvalidState,
		3: types.ErrValidation,
		4: types.ErrConflict,
		5: fmt.Errorf("database exploded"),
	}

	result := bulk.Apply(t.Context(), []uint64{1, 2, 3, 4, 5, 6}, func(_ context.Context, targetID uint64) error {
		return errs[targetID]
	})

	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 5, result.FailureCount)
	require.Len(t, result.Failures, 5)

	kinds := make(map[uint64]types.ErrorKind, len(result.Failures))
	for _, failure := range result.Failures {
		kinds[failure.TargetID] = failure.ErrorKind
	}

	assert.Equal(t, types.ErrorKindNotFound, kinds[1])
	assert.Equal(t, types.ErrorKindInvalidState, kinds[2])
	assert.Equal(t, types.ErrorKindValidation, kinds[3])
	assert.Equal(t, types.ErrorKindConflict, kinds[4])
	assert.Equal(t, types.ErrorKindInternal, kinds[5])
}

func TestBulkApplyRunsEveryTarget(t *testing.T) {
	t.Parallel()

	bulk := service.NewBulk(8, zap.NewNop())

	var calls atomic.Int64

	targets := make([]uint64, 100)
	for i := range targets {
		targets[i] = uint64(i + 1)
	}

	result := bulk.Apply(t.Context(), targets, func(_ context.Context, _ uint64) error {
		calls.Add(1)
		return nil
	})

	assert.Equal(t, int64(100), calls.Load())
	assert.Equal(t, 100, result.SuccessCount)
	assert.Empty(t, result.Failures)
}

func TestBulkApplyEmptyTargets(t *testing.T) {
	t.Parallel()

	bulk := service.NewBulk(4, zap.NewNop())

	result := bulk.Apply(t.Context(), nil, func(_ context.Context, _ uint64) error {
		t.Fatal("transition must not run without targets")
		return nil
	})

	assert.Equal(t, 0, result.SuccessCount)
	assert.Equal(t, 0, result.FailureCount)
	assert.Empty(t, result.Failures)
}
