package ranking_test

import (
	"testing"
	"time"

	"github.com/podiumd/podium/internal/ranking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreMonotonicInNetVotes(t *testing.T) {
	t.Parallel()

	calc := ranking.NewCalculator(ranking.Params{
		HalfLifeDays: 7,
		DecayFloor:   0.05,
		Saturation:   50,
		// Pin diversity so only the net-vote base varies
		DiversityFloor:     1,
		MinDiversitySample: 0,
	})

	age := 24 * time.Hour
	prev := calc.Score(0, 100, age)

	for up := int64(1); up <= 500; up += 7 {
		score := calc.Score(up, 100, age)
		assert.GreaterOrEqual(t, score, prev, "score must not decrease as net votes grow (up=%d)", up)
		prev = score
	}
}

func TestScoreMonotonicDecayInAge(t *testing.T) {
	t.Parallel()

	calc := ranking.NewCalculator(ranking.DefaultParams())

	prev := calc.Score(40, 5, 0)
	for days := 1; days <= 120; days++ {
		score := calc.Score(40, 5, time.Duration(days)*24*time.Hour)
		assert.LessOrEqual(t, score, prev, "score must not increase with age (day %d)", days)
		prev = score
	}
}

func TestScoreBoundedInVoteCount(t *testing.T) {
	t.Parallel()

	params := ranking.DefaultParams()
	calc := ranking.NewCalculator(params)

	// Even an absurd vote count cannot push the score past the saturation
	// ceiling at zero age.
	score := calc.Score(10_000_000, 0, 0)
	assert.LessOrEqual(t, score, params.Saturation)
}

func TestScoreDecayFloor(t *testing.T) {
	t.Parallel()

	calc := ranking.NewCalculator(ranking.DefaultParams())

	old := calc.Score(30, 10, 365*24*time.Hour)
	older := calc.Score(30, 10, 10*365*24*time.Hour)
	assert.InDelta(t, old, older, 1e-9, "decay must bottom out at the floor")
	assert.Positive(t, old)
}

func TestDiversityDownweightsLopsidedRatios(t *testing.T) {
	t.Parallel()

	calc := ranking.NewCalculator(ranking.DefaultParams())

	// Same net votes, same age; the balanced distribution carries more weight
	// than the unanimous one.
	balanced := calc.Score(140, 100, time.Hour)
	unanimous := calc.Score(40, 0, time.Hour)
	assert.Greater(t, balanced, unanimous)

	// Strong consensus is downweighted, not discarded.
	assert.Positive(t, unanimous)
}

func TestDiversitySkipsSmallSamples(t *testing.T) {
	t.Parallel()

	params := ranking.DefaultParams()
	calc := ranking.NewCalculator(params)

	// Below the sample threshold a unanimous ratio is not penalized, so the
	// score should match the pinned-diversity curve exactly.
	pinned := ranking.NewCalculator(ranking.Params{
		HalfLifeDays:       params.HalfLifeDays,
		DecayFloor:         params.DecayFloor,
		Saturation:         params.Saturation,
		DiversityFloor:     1,
		MinDiversitySample: 0,
	})

	assert.InDelta(t, pinned.Score(5, 0, time.Hour), calc.Score(5, 0, time.Hour), 1e-9)
}

func TestParamsValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, ranking.DefaultParams().Validate())

	bad := ranking.DefaultParams()
	bad.HalfLifeDays = 0
	require.Error(t, bad.Validate())

	bad = ranking.DefaultParams()
	bad.DiversityFloor = 1.5
	require.Error(t, bad.Validate())
}
