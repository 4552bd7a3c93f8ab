package types_test

import (
	"testing"
	"time"

	"github.com/podiumd/podium/internal/database/types"
	"github.com/podiumd/podium/internal/database/types/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func suspendedRecord(now time.Time) *types.AccountRecord {
	until := now.Add(48 * time.Hour)

	return &types.AccountRecord{
		UserID:         1,
		Status:         enum.AccountStatusSuspended,
		SuspendedUntil: &until,
	}
}

func TestWarnLiftsSuspension(t *testing.T) {
	t.Parallel()

	now := time.Now()
	record := suspendedRecord(now)

	require.NoError(t, record.Warn(now))

	assert.Equal(t, enum.AccountStatusWarned, record.Status)
	assert.Nil(t, record.SuspendedUntil, "warning must clear the suspension expiry")
	assert.Equal(t, 1, record.WarningCount)
}

func TestWarnIncrementsCount(t *testing.T) {
	t.Parallel()

	now := time.Now()
	record := &types.AccountRecord{UserID: 1, Status: enum.AccountStatusActive}

	require.NoError(t, record.Warn(now))
	require.NoError(t, record.Warn(now))

	assert.Equal(t, enum.AccountStatusWarned, record.Status)
	assert.Equal(t, 2, record.WarningCount)
}

func TestWarnFailsOnBanned(t *testing.T) {
	t.Parallel()

	record := &types.AccountRecord{UserID: 1, Status: enum.AccountStatusBanned}

	err := record.Warn(time.Now())
	require.ErrorIs(t, err, types.ErrInvalidState)
	assert.Equal(t, enum.AccountStatusBanned, record.Status)
	assert.Equal(t, 0, record.WarningCount)
}

func TestSuspendSetsExpiry(t *testing.T) {
	t.Parallel()

	now := time.Now()
	record := &types.AccountRecord{UserID: 1, Status: enum.AccountStatusWarned}

	require.NoError(t, record.Suspend(now, 7))

	assert.Equal(t, enum.AccountStatusSuspended, record.Status)
	require.NotNil(t, record.SuspendedUntil)
	assert.Equal(t, now.AddDate(0, 0, 7), *record.SuspendedUntil)
}

func TestSuspendDurationBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		days    int
		wantErr bool
	}{
		{name: "zero days", days: 0, wantErr: true},
		{name: "negative days", days: -1, wantErr: true},
		{name: "over policy maximum", days: types.MaxSuspensionDays + 1, wantErr: true},
		{name: "minimum", days: 1},
		{name: "policy maximum", days: types.MaxSuspensionDays},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			record := &types.AccountRecord{UserID: 1, Status: enum.AccountStatusActive}

			err := record.Suspend(time.Now(), tt.days)
			if tt.wantErr {
				require.ErrorIs(t, err, types.ErrValidation)
				assert.Equal(t, enum.AccountStatusActive, record.Status)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, enum.AccountStatusSuspended, record.Status)
		})
	}
}

func TestSuspendFailsOnBanned(t *testing.T) {
	t.Parallel()

	record := &types.AccountRecord{UserID: 1, Status: enum.AccountStatusBanned}

	require.ErrorIs(t, record.Suspend(time.Now(), 7), types.ErrInvalidState)
	assert.Nil(t, record.SuspendedUntil)
}

func TestBanClearsExpiry(t *testing.T) {
	t.Parallel()

	now := time.Now()
	record := suspendedRecord(now)

	require.NoError(t, record.Ban(now))

	assert.Equal(t, enum.AccountStatusBanned, record.Status)
	assert.Nil(t, record.SuspendedUntil)
}

func TestBanFailsWhenAlreadyBanned(t *testing.T) {
	t.Parallel()

	record := &types.AccountRecord{UserID: 1, Status: enum.AccountStatusBanned}

	require.ErrorIs(t, record.Ban(time.Now()), types.ErrInvalidState)
}

func TestRestoreTransitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  enum.AccountStatus
		wantErr bool
	}{
		{name: "active has nothing to restore", status: enum.AccountStatusActive, wantErr: true},
		{name: "warned has nothing to restore", status: enum.AccountStatusWarned, wantErr: true},
		{name: "suspended restores", status: enum.AccountStatusSuspended},
		{name: "banned restores", status: enum.AccountStatusBanned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			now := time.Now()
			until := now.Add(time.Hour)
			record := &types.AccountRecord{
				UserID:         1,
				Status:         tt.status,
				WarningCount:   3,
				SuspendedUntil: &until,
			}

			err := record.Restore(now)
			if tt.wantErr {
				require.ErrorIs(t, err, types.ErrInvalidState)
				assert.Equal(t, tt.status, record.Status)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, enum.AccountStatusActive, record.Status)
			assert.Nil(t, record.SuspendedUntil)
			assert.Equal(t, 3, record.WarningCount, "restore must not touch the warning count")
		})
	}
}
