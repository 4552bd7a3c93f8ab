package types

import "errors"

var (
	// ErrQuestionNotFound indicates the referenced question does not exist.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrAccountNotFound indicates the referenced account has no moderation record.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidState indicates the requested transition is not legal from the
	// entity's current state.
	ErrInvalidState = errors.New("transition not legal from current state")
	// ErrValidation indicates malformed or out-of-policy input.
	ErrValidation = errors.New("validation failed")
	// ErrConflict indicates a concurrent transactional update lost a race and
	// the caller should retry.
	ErrConflict = errors.New("concurrent update conflict")
)

// ErrorKind is the stable failure classification reported per target by bulk
// operations and mapped to HTTP statuses by the REST layer.
type ErrorKind string

const (
	ErrorKindNotFound     ErrorKind = "not_found"
	ErrorKindInvalidState ErrorKind = "invalid_state"
	ErrorKindValidation   ErrorKind = "validation"
	ErrorKindConflict     ErrorKind = "conflict"
	ErrorKindInternal     ErrorKind = "internal"
)

// KindOf classifies an error from this package's taxonomy.
// Unknown errors classify as internal.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrQuestionNotFound), errors.Is(err, ErrAccountNotFound):
		return ErrorKindNotFound
	case errors.Is(err, ErrInvalidState):
		return ErrorKindInvalidState
	case errors.Is(err, ErrValidation):
		return ErrorKindValidation
	case errors.Is(err, ErrConflict):
		return ErrorKindConflict
	default:
		return ErrorKindInternal
	}
}
