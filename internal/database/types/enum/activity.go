package enum

// ActivityType represents the kind of moderation transition recorded in the
// audit log.
//
//go:generate go tool enumer -type=ActivityType -trimprefix=ActivityType
type ActivityType int

const (
	// ActivityTypeQuestionSubmitted tracks a new question entering the pending queue.
	ActivityTypeQuestionSubmitted ActivityType = iota
	// ActivityTypeQuestionApproved tracks a moderator approving a pending question.
	ActivityTypeQuestionApproved
	// ActivityTypeQuestionRejected tracks a moderator rejecting a pending question.
	ActivityTypeQuestionRejected
	// ActivityTypeQuestionMerged tracks a question being consolidated into a
	// canonical duplicate target.
	ActivityTypeQuestionMerged
	// ActivityTypeAccountWarned tracks a warning issued against an account.
	ActivityTypeAccountWarned
	// ActivityTypeAccountSuspended tracks a timed suspension of an account.
	ActivityTypeAccountSuspended
	// ActivityTypeAccountBanned tracks a ban of an account.
	ActivityTypeAccountBanned
	// ActivityTypeAccountRestored tracks an explicit restore of a suspended or
	// banned account.
	ActivityTypeAccountRestored
	// ActivityTypeSuspensionExpired tracks the expiry sweep returning a
	// suspended account to active.
	ActivityTypeSuspensionExpired
)

// TargetType represents which collection an audit record refers to.
//
//go:generate go tool enumer -type=TargetType -trimprefix=TargetType
type TargetType int

const (
	TargetTypeQuestion TargetType = iota
	TargetTypeAccount
)
