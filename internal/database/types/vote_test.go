package types_test

import (
	"testing"

	"github.com/podiumd/podium/internal/database/types"
	"github.com/podiumd/podium/internal/database/types/enum"
	"github.com/stretchr/testify/assert"
)

func TestCastDelta(t *testing.T) {
	t.Parallel()

	up := &types.Vote{QuestionID: 1, VoterID: 2, Direction: enum.VoteDirectionUp}
	down := &types.Vote{QuestionID: 1, VoterID: 2, Direction: enum.VoteDirectionDown}

	tests := []struct {
		name        string
		existing    *types.Vote
		direction   enum.VoteDirection
		wantUp      int64
		wantDown    int64
		wantChanged bool
	}{
		{name: "fresh upvote", direction: enum.VoteDirectionUp, wantUp: 1, wantChanged: true},
		{name: "fresh downvote", direction: enum.VoteDirectionDown, wantDown: 1, wantChanged: true},
		{name: "re-cast same up direction", existing: up, direction: enum.VoteDirectionUp},
		{name: "re-cast same down direction", existing: down, direction: enum.VoteDirectionDown},
		{name: "switch up to down", existing: up, direction: enum.VoteDirectionDown, wantUp: -1, wantDown: 1, wantChanged: true},
		{name: "switch down to up", existing: down, direction: enum.VoteDirectionUp, wantUp: 1, wantDown: -1, wantChanged: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			deltaUp, deltaDown, changed := types.CastDelta(tt.existing, tt.direction)
			assert.Equal(t, tt.wantUp, deltaUp)
			assert.Equal(t, tt.wantDown, deltaDown)
			assert.Equal(t, tt.wantChanged, changed)
		})
	}
}

func TestRetractDelta(t *testing.T) {
	t.Parallel()

	deltaUp, deltaDown, changed := types.RetractDelta(nil)
	assert.Zero(t, deltaUp)
	assert.Zero(t, deltaDown)
	assert.False(t, changed, "retracting a missing vote changes nothing")

	deltaUp, deltaDown, changed = types.RetractDelta(&types.Vote{Direction: enum.VoteDirectionUp})
	assert.Equal(t, int64(-1), deltaUp)
	assert.Zero(t, deltaDown)
	assert.True(t, changed)

	deltaUp, deltaDown, changed = types.RetractDelta(&types.Vote{Direction: enum.VoteDirectionDown})
	assert.Zero(t, deltaUp)
	assert.Equal(t, int64(-1), deltaDown)
	assert.True(t, changed)
}
