package types_test

import (
	"strings"
	"testing"
	"time"

	"github.com/podiumd/podium/internal/database/types"
	"github.com/podiumd/podium/internal/database/types/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmission(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		tags    []string
		wantErr bool
	}{
		{
			name: "valid submission",
			text: "Why does the deploy pipeline skip integration tests on hotfix branches?",
			tags: []string{"ci", "process"},
		},
		{
			name:    "empty text",
			text:    "   ",
			wantErr: true,
		},
		{
			name:    "text over limit",
			text:    strings.Repeat("a", types.MaxQuestionTextLength+1),
			wantErr: true,
		},
		{
			name:    "too many tags",
			text:    "valid question",
			tags:    []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"},
			wantErr: true,
		},
		{
			name: "text exactly at limit",
			text: strings.Repeat("a", types.MaxQuestionTextLength),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			question, err := types.NewSubmission(42, tt.text, "", tt.tags)
			if tt.wantErr {
				require.ErrorIs(t, err, types.ErrValidation)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, uint64(42), question.AuthorID)
			assert.Equal(t, enum.QuestionStatusPending, question.Status)
			assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", question.UUID.String())
		})
	}
}

func TestNewSubmissionNormalizesTags(t *testing.T) {
	t.Parallel()

	question, err := types.NewSubmission(1, "some question", "", []string{" CI ", "ci", "Process", ""})
	require.NoError(t, err)

	assert.Equal(t, []string{"ci", "process"}, question.Tags)
}

func TestQuestionModerationGuards(t *testing.T) {
	t.Parallel()

	now := time.Now()

	question := &types.Question{ID: 1, Status: enum.QuestionStatusPending}
	require.NoError(t, question.Approve(now))
	assert.Equal(t, enum.QuestionStatusApproved, question.Status)

	require.ErrorIs(t, question.Approve(now), types.ErrInvalidState)
	require.ErrorIs(t, question.Reject(now), types.ErrInvalidState)

	other := &types.Question{ID: 2, Status: enum.QuestionStatusPending}
	require.NoError(t, other.Reject(now))
	assert.Equal(t, enum.QuestionStatusRejected, other.Status)

	require.ErrorIs(t, other.Reject(now), types.ErrInvalidState)
	assert.Equal(t, enum.QuestionStatusRejected, other.Status)
}

func TestMergeIntoGuards(t *testing.T) {
	t.Parallel()

	now := time.Now()

	source := &types.Question{ID: 1, Status: enum.QuestionStatusApproved}
	target := &types.Question{ID: 2, Status: enum.QuestionStatusPending}

	require.NoError(t, source.MergeInto(target, now))
	assert.Equal(t, enum.QuestionStatusMerged, source.Status)
	require.NotNil(t, source.MergedIntoID)
	assert.Equal(t, target.ID, *source.MergedIntoID)

	// Already merged, cannot merge again.
	require.ErrorIs(t, source.MergeInto(target, now), types.ErrInvalidState)

	self := &types.Question{ID: 3, Status: enum.QuestionStatusPending}
	require.ErrorIs(t, self.MergeInto(self, now), types.ErrInvalidState)

	// Merging into a merged target would create a chain.
	chained := &types.Question{ID: 4, Status: enum.QuestionStatusPending}
	require.ErrorIs(t, chained.MergeInto(source, now), types.ErrInvalidState)
	assert.Equal(t, enum.QuestionStatusPending, chained.Status)
	assert.Nil(t, chained.MergedIntoID)
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want types.ErrorKind
	}{
		{types.ErrQuestionNotFound, types.ErrorKindNotFound},
		{types.ErrAccountNotFound, types.ErrorKindNotFound},
		{types.ErrInvalidState, types.ErrorKindInvalidState},
		{types.ErrValidation, types.ErrorKindValidation},
		{types.ErrConflict, types.ErrorKindConflict},
		{assert.AnError, types.ErrorKindInternal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, types.KindOf(tt.err))
	}
}
