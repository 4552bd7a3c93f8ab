// Package convert maps database types to REST API types.
package convert

import (
	"github.com/podiumd/podium/internal/database/types"
	"github.com/podiumd/podium/internal/database/types/enum"
	"github.com/podiumd/podium/internal/dedup"
	restTypes "github.com/podiumd/podium/internal/rest/types"
)

// QuestionStatus converts a database question status to REST API status.
func QuestionStatus(status enum.QuestionStatus) restTypes.QuestionStatus {
	switch status {
	case enum.QuestionStatusPending:
		return restTypes.QuestionStatusPending
	case enum.QuestionStatusApproved:
		return restTypes.QuestionStatusApproved
	case enum.QuestionStatusRejected:
		return restTypes.QuestionStatusRejected
	case enum.QuestionStatusMerged:
		return restTypes.QuestionStatusMerged
	default:
		return restTypes.QuestionStatusPending
	}
}

// Question converts a database question to a REST API question.
func Question(question *types.Question) *restTypes.Question {
	if question == nil {
		return nil
	}

	return &restTypes.Question{
		ID:           question.ID,
		UUID:         question.UUID.String(),
		AuthorID:     question.AuthorID,
		Text:         question.Text,
		Context:      question.Context,
		Tags:         question.Tags,
		Upvotes:      question.Upvotes,
		Downvotes:    question.Downvotes,
		NetVotes:     question.NetVotes(),
		RankScore:    question.RankScore,
		Status:       QuestionStatus(question.Status),
		MergedIntoID: question.MergedIntoID,
		CreatedAt:    question.CreatedAt,
		UpdatedAt:    question.UpdatedAt,
	}
}

// Questions converts a slice of database questions.
func Questions(questions []*types.Question) []*restTypes.Question {
	out := make([]*restTypes.Question, 0, len(questions))
	for _, question := range questions {
		out = append(out, Question(question))
	}

	return out
}

// VoteTotals converts aggregate vote state to its REST representation.
func VoteTotals(totals *types.VoteTotals) *restTypes.VoteTotals {
	if totals == nil {
		return nil
	}

	return &restTypes.VoteTotals{
		QuestionID: totals.QuestionID,
		Upvotes:    totals.Upvotes,
		Downvotes:  totals.Downvotes,
		NetVotes:   totals.Upvotes - totals.Downvotes,
		RankScore:  totals.RankScore,
	}
}

// DuplicateMatches converts duplicate detector matches.
func DuplicateMatches(matches []dedup.Match) []restTypes.DuplicateMatch {
	out := make([]restTypes.DuplicateMatch, 0, len(matches))
	for _, match := range matches {
		out = append(out, restTypes.DuplicateMatch{
			Question:   Question(match.Question),
			Similarity: match.Similarity,
		})
	}

	return out
}

// BulkResult converts a bulk operation result.
func BulkResult(result *types.BulkResult) *restTypes.BulkResponse {
	failures := make([]restTypes.BulkFailure, 0, len(result.Failures))
	for _, failure := range result.Failures {
		failures = append(failures, restTypes.BulkFailure{
			TargetID:  failure.TargetID,
			ErrorKind: string(failure.ErrorKind),
		})
	}

	return &restTypes.BulkResponse{
		SuccessCount: result.SuccessCount,
		FailureCount: result.FailureCount,
		Failures:     failures,
	}
}
