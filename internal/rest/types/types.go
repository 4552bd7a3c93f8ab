// Package types defines the REST API's wire representations. Database enums
// are exposed as strings so the HTTP contract stays stable if the stored
// values ever change.
package types

import "time"

// QuestionStatus represents a question's lifecycle state on the wire.
type QuestionStatus string

const (
	QuestionStatusPending  QuestionStatus = "pending"
	QuestionStatusApproved QuestionStatus = "approved"
	QuestionStatusRejected QuestionStatus = "rejected"
	QuestionStatusMerged   QuestionStatus = "merged"
)

// AccountStatus represents an account's moderation standing on the wire.
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "active"
	AccountStatusWarned    AccountStatus = "warned"
	AccountStatusSuspended AccountStatus = "suspended"
	AccountStatusBanned    AccountStatus = "banned"
)

// Question represents detailed question information.
type Question struct {
	ID           uint64         `json:"id"`
	UUID         string         `json:"uuid"`
	AuthorID     uint64         `json:"authorId"`
	Text         string         `json:"text"`
	Context      string         `json:"context,omitempty"`
	Tags         []string       `json:"tags"`
	Upvotes      int64          `json:"upvotes"`
	Downvotes    int64          `json:"downvotes"`
	NetVotes     int64          `json:"netVotes"`
	RankScore    float64        `json:"rankScore"`
	Status       QuestionStatus `json:"status"`
	MergedIntoID *uint64        `json:"mergedIntoId,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// Account represents an account's moderation record.
type Account struct {
	UserID         uint64        `json:"userId"`
	Status         AccountStatus `json:"accountStatus"`
	WarningCount   int           `json:"warningCount"`
	SuspendedUntil *time.Time    `json:"suspendedUntil,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// ActivityEntry represents a single audit trail record.
type ActivityEntry struct {
	ID           uint64         `json:"id"`
	TargetType   string         `json:"targetType"`
	TargetID     uint64         `json:"targetId"`
	ActivityType string         `json:"activityType"`
	ActorID      uint64         `json:"actorId"`
	FromState    string         `json:"fromState,omitempty"`
	ToState      string         `json:"toState,omitempty"`
	Reason       string         `json:"reason,omitempty"`
	Details      map[string]any `json:"details,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// VoteTotals is the aggregate vote state returned after a ledger change.
type VoteTotals struct {
	QuestionID uint64  `json:"questionId"`
	Upvotes    int64   `json:"upvotes"`
	Downvotes  int64   `json:"downvotes"`
	NetVotes   int64   `json:"netVotes"`
	RankScore  float64 `json:"rankScore"`
}

// DuplicateMatch pairs a candidate question with its similarity to the
// question being checked.
type DuplicateMatch struct {
	Question   *Question `json:"question"`
	Similarity float64   `json:"similarity"`
}

// BulkFailure reports a single target's failure within a bulk operation.
type BulkFailure struct {
	TargetID  uint64 `json:"targetId"`
	ErrorKind string `json:"errorKind"`
}

// BulkResponse reports the per-item outcome of a bulk moderation call.
type BulkResponse struct {
	SuccessCount int           `json:"successCount"`
	FailureCount int           `json:"failureCount"`
	Failures     []BulkFailure `json:"failures"`
}

// SubmitQuestionRequest is the payload for question submission.
type SubmitQuestionRequest struct {
	AuthorID uint64   `json:"authorId"`
	Text     string   `json:"text"`
	Context  string   `json:"context"`
	Tags     []string `json:"tags"`
}

// CastVoteRequest is the payload for casting or switching a vote.
type CastVoteRequest struct {
	VoterID   uint64 `json:"voterId"`
	Direction string `json:"direction"`
}

// RetractVoteRequest is the payload for removing a vote.
type RetractVoteRequest struct {
	VoterID uint64 `json:"voterId"`
}

// ModerationRequest is the shared payload for single-target moderation
// actions. Reason is required for all account actions and for rejection.
type ModerationRequest struct {
	ActorID uint64 `json:"actorId"`
	Reason  string `json:"reason"`
}

// SuspendRequest is the payload for a timed suspension.
type SuspendRequest struct {
	ActorID      uint64 `json:"actorId"`
	Reason       string `json:"reason"`
	DurationDays int    `json:"durationDays"`
}

// MergeRequest is the payload for merging a question into a target.
type MergeRequest struct {
	ActorID  uint64 `json:"actorId"`
	TargetID uint64 `json:"targetId"`
}

// BulkModerationRequest is the payload for bulk approve/reject calls.
type BulkModerationRequest struct {
	ActorID     uint64   `json:"actorId"`
	QuestionIDs []uint64 `json:"questionIds"`
	Reason      string   `json:"reason"`
}

// ListQuestionsResponse is a cursor-paginated page of questions.
type ListQuestionsResponse struct {
	Questions  []*Question `json:"questions"`
	NextCursor string      `json:"nextCursor,omitempty"`
}

// ListAccountsResponse is a page of account records keyed by user ID.
type ListAccountsResponse struct {
	Accounts   []*Account `json:"accounts"`
	NextUserID uint64     `json:"nextUserId,omitempty"`
}

// ListActivityResponse is a cursor-paginated page of audit records.
type ListActivityResponse struct {
	Entries    []*ActivityEntry `json:"entries"`
	NextCursor string           `json:"nextCursor,omitempty"`
}

// ErrorResponse is the uniform error body for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}
