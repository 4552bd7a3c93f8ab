package types

import (
	"time"

	"github.com/podiumd/podium/internal/database/types/enum"
)

// Vote represents a voter's single active vote on a question.
// The (question, voter) pair is the identity; casting again overwrites the
// direction rather than creating a second record.
type Vote struct {
	QuestionID uint64             `bun:",pk"      json:"questionId"`
	VoterID    uint64             `bun:",pk"      json:"voterId"`
	Direction  enum.VoteDirection `bun:",notnull" json:"direction"`
	UpdatedAt  time.Time          `bun:",notnull" json:"updatedAt"`
}

// CastDelta computes the counter adjustments for setting a voter's direction
// given their existing vote, if any. Re-casting the same direction changes
// nothing; switching direction moves exactly one count each way.
func CastDelta(existing *Vote, direction enum.VoteDirection) (deltaUp, deltaDown int64, changed bool) {
	switch {
	case existing != nil && existing.Direction == direction:
		return 0, 0, false
	case existing == nil && direction == enum.VoteDirectionUp:
		return 1, 0, true
	case existing == nil:
		return 0, 1, true
	case direction == enum.VoteDirectionUp:
		return 1, -1, true
	default:
		return -1, 1, true
	}
}

// RetractDelta computes the counter adjustment for removing a voter's vote,
// if any. Retracting a vote that does not exist changes nothing.
func RetractDelta(existing *Vote) (deltaUp, deltaDown int64, changed bool) {
	switch {
	case existing == nil:
		return 0, 0, false
	case existing.Direction == enum.VoteDirectionUp:
		return -1, 0, true
	default:
		return 0, -1, true
	}
}

// VoteTotals is the aggregate state returned to callers after a ledger change.
type VoteTotals struct {
	QuestionID uint64  `json:"questionId"`
	Upvotes    int64   `json:"upvotes"`
	Downvotes  int64   `json:"downvotes"`
	RankScore  float64 `json:"rankScore"`
}
