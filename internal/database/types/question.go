package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/podiumd/podium/internal/database/types/enum"
)

// MaxQuestionTextLength bounds the length of submitted question text.
const MaxQuestionTextLength = 500

// MaxQuestionTags bounds the number of issue tags per question.
const MaxQuestionTags = 10

// Question represents a submitted question in any lifecycle state.
// Vote counters are aggregates derived from the vote ledger; individual vote
// records are owned by the Vote type.
type Question struct {
	ID           uint64              `bun:",pk,autoincrement"      json:"id"`
	UUID         uuid.UUID           `bun:",notnull"               json:"uuid"`
	AuthorID     uint64              `bun:",notnull"               json:"authorId"`
	Text         string              `bun:",notnull"               json:"text"`
	Context      string              `bun:",type:text"             json:"context"`
	Tags         []string            `bun:",array"                 json:"tags"`
	Upvotes      int64               `bun:",notnull,default:0"     json:"upvotes"`
	Downvotes    int64               `bun:",notnull,default:0"     json:"downvotes"`
	RankScore    float64             `bun:",notnull,default:0"     json:"rankScore"`
	Status       enum.QuestionStatus `bun:",notnull,default:0"     json:"status"`
	MergedIntoID *uint64             `bun:",nullzero"              json:"mergedIntoId,omitempty"`
	CreatedAt    time.Time           `bun:",notnull"               json:"createdAt"`
	UpdatedAt    time.Time           `bun:",notnull"               json:"updatedAt"`
	ScoredAt     time.Time           `bun:",notnull"               json:"scoredAt"`
}

// NetVotes returns upvotes minus downvotes.
func (q *Question) NetVotes() int64 {
	return q.Upvotes - q.Downvotes
}

// NewSubmission builds a pending question from user input, normalizing the tag
// set (trimmed, lowercased, deduplicated). Returns a validation error wrapped
// around ErrValidation for empty or oversized text.
func NewSubmission(authorID uint64, text, context string, tags []string) (*Question, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: question text is required", ErrValidation)
	}

	if len(text) > MaxQuestionTextLength {
		return nil, fmt.Errorf("%w: question text exceeds %d characters", ErrValidation, MaxQuestionTextLength)
	}

	normalized := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))

	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}

		if _, ok := seen[tag]; ok {
			continue
		}

		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}

	if len(normalized) > MaxQuestionTags {
		return nil, fmt.Errorf("%w: at most %d tags allowed", ErrValidation, MaxQuestionTags)
	}

	now := time.Now()

	return &Question{
		UUID:      uuid.New(),
		AuthorID:  authorID,
		Text:      text,
		Context:   strings.TrimSpace(context),
		Tags:      normalized,
		Status:    enum.QuestionStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
		ScoredAt:  now,
	}, nil
}

// Approve transitions a pending question to approved.
func (q *Question) Approve(now time.Time) error {
	if q.Status != enum.QuestionStatusPending {
		return fmt.Errorf("%w: cannot approve %s question", ErrInvalidState, q.Status)
	}

	q.Status = enum.QuestionStatusApproved
	q.UpdatedAt = now

	return nil
}

// Reject transitions a pending question to rejected. Rejected is terminal.
func (q *Question) Reject(now time.Time) error {
	if q.Status != enum.QuestionStatusPending {
		return fmt.Errorf("%w: cannot reject %s question", ErrInvalidState, q.Status)
	}

	q.Status = enum.QuestionStatusRejected
	q.UpdatedAt = now

	return nil
}

// MergeInto marks the question as a duplicate of target. Only pending and
// approved questions can be merged, and only into pending or approved
// targets: merging into a merged or rejected target would create chains or
// point at a dead end.
func (q *Question) MergeInto(target *Question, now time.Time) error {
	if q.ID == target.ID {
		return fmt.Errorf("%w: cannot merge a question into itself", ErrInvalidState)
	}

	if q.Status != enum.QuestionStatusPending && q.Status != enum.QuestionStatusApproved {
		return fmt.Errorf("%w: cannot merge %s question", ErrInvalidState, q.Status)
	}

	if target.Status != enum.QuestionStatusPending && target.Status != enum.QuestionStatusApproved {
		return fmt.Errorf("%w: cannot merge into %s question", ErrInvalidState, target.Status)
	}

	q.Status = enum.QuestionStatusMerged
	q.MergedIntoID = &target.ID
	q.UpdatedAt = now

	return nil
}

// QuestionFilter describes the read-side filters for question listings.
type QuestionFilter struct {
	Status *enum.QuestionStatus
	Search string
	SortBy enum.QuestionSortBy
}

// QuestionCursor implements keyset pagination over question listings.
// The active fields depend on the listing's sort order.
type QuestionCursor struct {
	RankScore float64   `json:"rankScore"`
	CreatedAt time.Time `json:"createdAt"`
	ID        uint64    `json:"id"`
}
