package enum

// QuestionStatus represents the lifecycle state of a submitted question.
//
//go:generate go tool enumer -type=QuestionStatus -trimprefix=QuestionStatus
type QuestionStatus int

const (
	// QuestionStatusPending indicates a question awaiting moderator review.
	QuestionStatusPending QuestionStatus = iota
	// QuestionStatusApproved indicates a question visible in public rankings.
	QuestionStatusApproved
	// QuestionStatusRejected indicates a question removed from circulation.
	QuestionStatusRejected
	// QuestionStatusMerged indicates a question folded into a canonical duplicate.
	QuestionStatusMerged
)

// Votable reports whether a question in this state accepts votes.
// Rejected and merged questions are out of circulation.
func (i QuestionStatus) Votable() bool {
	return i == QuestionStatusPending || i == QuestionStatusApproved
}
