package core_test

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/podiumd/podium/internal/worker/core"
	"github.com/redis/rueidis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTest(t *testing.T) *core.Monitor {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{mr.Addr()},
		DisableCache: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return core.NewMonitor(client, zap.NewNop())
}

func TestReportAndListStatuses(t *testing.T) {
	t.Parallel()

	monitor := setupTest(t)
	ctx := t.Context()

	err := monitor.ReportStatus(ctx, core.Status{
		WorkerID:    "worker-1",
		WorkerType:  "maintenance",
		CurrentTask: "Rescoring stale questions",
		Progress:    50,
		IsHealthy:   true,
	})
	require.NoError(t, err)

	statuses, err := monitor.GetAllStatuses(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 1)

	assert.Equal(t, "worker-1", statuses[0].WorkerID)
	assert.Equal(t, "maintenance", statuses[0].WorkerType)
	assert.Equal(t, "Rescoring stale questions", statuses[0].CurrentTask)
	assert.True(t, statuses[0].IsHealthy)
	assert.False(t, statuses[0].LastSeen.IsZero())
}

func TestReportOverwritesPreviousStatus(t *testing.T) {
	t.Parallel()

	monitor := setupTest(t)
	ctx := t.Context()

	status := core.Status{WorkerID: "worker-2", WorkerType: "maintenance", Progress: 10, IsHealthy: true}
	require.NoError(t, monitor.ReportStatus(ctx, status))

	status.Progress = 90
	status.IsHealthy = false
	require.NoError(t, monitor.ReportStatus(ctx, status))

	statuses, err := monitor.GetAllStatuses(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 1)

	assert.Equal(t, 90, statuses[0].Progress)
	assert.False(t, statuses[0].IsHealthy)
}
