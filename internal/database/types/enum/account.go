package enum

// AccountStatus represents a user account's moderation standing.
//
//go:generate go tool enumer -type=AccountStatus -trimprefix=AccountStatus
type AccountStatus int

const (
	// AccountStatusActive indicates an account in good standing.
	AccountStatusActive AccountStatus = iota
	// AccountStatusWarned indicates an account with at least one recorded warning.
	AccountStatusWarned
	// AccountStatusSuspended indicates an account under a timed suspension.
	AccountStatusSuspended
	// AccountStatusBanned indicates a permanently banned account.
	AccountStatusBanned
)

// Restorable reports whether an account in this state can be returned to
// active standing. Warnings stay on the record rather than being restored
// away.
func (i AccountStatus) Restorable() bool {
	return i == AccountStatusSuspended || i == AccountStatusBanned
}
