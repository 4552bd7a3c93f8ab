package dedup_test

import (
	"testing"

	"github.com/podiumd/podium/internal/database/types"
	"github.com/podiumd/podium/internal/database/types/enum"
	"github.com/podiumd/podium/internal/dedup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func question(id uint64, text string, tags ...string) *types.Question {
	return &types.Question{
		ID:     id,
		Text:   text,
		Tags:   tags,
		Status: enum.QuestionStatusApproved,
	}
}

func TestFindRanksBySimilarity(t *testing.T) {
	t.Parallel()

	detector := dedup.NewDetector(0.1, 10)

	source := question(1, "Will the city expand public transit funding next year?", "transit", "budget")
	candidates := []*types.Question{
		question(2, "Does the city plan to expand public transit funding?", "transit", "budget"),
		question(3, "When will public transit run on weekends?", "transit"),
		question(4, "What is the plan for the downtown library?", "library"),
	}

	matches := detector.Find(source, candidates)
	require.Len(t, matches, 2)
	assert.Equal(t, uint64(2), matches[0].Question.ID)
	assert.Equal(t, uint64(3), matches[1].Question.ID)
	assert.Greater(t, matches[0].Similarity, matches[1].Similarity)
}

func TestFindExcludesSelfAndMerged(t *testing.T) {
	t.Parallel()

	detector := dedup.NewDetector(0.1, 10)

	source := question(1, "Will the city expand public transit funding?")
	merged := question(2, "Will the city expand public transit funding?")
	merged.Status = enum.QuestionStatusMerged

	matches := detector.Find(source, []*types.Question{source, merged})
	assert.Empty(t, matches)
}

func TestFindEmptyBelowThreshold(t *testing.T) {
	t.Parallel()

	detector := dedup.NewDetector(0.9, 10)

	source := question(1, "Will the city expand public transit funding?")
	matches := detector.Find(source, []*types.Question{
		question(2, "What happened to the school lunch program?"),
	})
	assert.Empty(t, matches)
}

func TestFindNormalizesUnicodeAndCase(t *testing.T) {
	t.Parallel()

	detector := dedup.NewDetector(0.5, 10)

	source := question(1, "WILL THE CITY EXPAND TRANSIT FUNDING")
	matches := detector.Find(source, []*types.Question{
		question(2, "will the city expand transit funding"),
	})
	require.Len(t, matches, 1)
	assert.InDelta(t, 1.0, matches[0].Similarity, 1e-9)
}

func TestFindHonorsLimit(t *testing.T) {
	t.Parallel()

	detector := dedup.NewDetector(0.1, 2)

	source := question(1, "transit funding question")
	candidates := []*types.Question{
		question(2, "transit funding question one"),
		question(3, "transit funding question two"),
		question(4, "transit funding question three"),
	}

	matches := detector.Find(source, candidates)
	assert.Len(t, matches, 2)
}
