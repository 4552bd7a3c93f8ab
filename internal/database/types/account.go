package types

import (
	"fmt"
	"time"

	"github.com/podiumd/podium/internal/database/types/enum"
)

// MaxSuspensionDays is the policy maximum for a timed suspension.
const MaxSuspensionDays = 365

// AccountRecord represents a user account's moderation standing.
// Records are created lazily on the first moderation event and persist for the
// lifetime of the account. The warning count is monotonic and survives
// suspension, ban, and restore.
type AccountRecord struct {
	UserID         uint64             `bun:",pk"                json:"userId"`
	Status         enum.AccountStatus `bun:",notnull,default:0" json:"accountStatus"`
	WarningCount   int                `bun:",notnull,default:0" json:"warningCount"`
	SuspendedUntil *time.Time         `bun:",nullzero"          json:"suspendedUntil,omitempty"`
	CreatedAt      time.Time          `bun:",notnull"           json:"createdAt"`
	UpdatedAt      time.Time          `bun:",notnull"           json:"updatedAt"`
}

// SuspensionExpired reports whether a suspended account's expiry has passed.
func (r *AccountRecord) SuspensionExpired(now time.Time) bool {
	return r.Status == enum.AccountStatusSuspended &&
		r.SuspendedUntil != nil && now.After(*r.SuspendedUntil)
}

// Warn transitions the account to warned and increments the warning count.
// Warning a suspended account lifts the suspension, so the expiry is cleared.
// Banned accounts cannot be warned.
func (r *AccountRecord) Warn(now time.Time) error {
	if r.Status == enum.AccountStatusBanned {
		return fmt.Errorf("%w: cannot warn a banned account", ErrInvalidState)
	}

	r.Status = enum.AccountStatusWarned
	r.WarningCount++
	r.SuspendedUntil = nil
	r.UpdatedAt = now

	return nil
}

// Suspend transitions the account to suspended with an expiry durationDays
// from now. Re-suspending replaces the existing expiry.
func (r *AccountRecord) Suspend(now time.Time, durationDays int) error {
	if durationDays < 1 || durationDays > MaxSuspensionDays {
		return fmt.Errorf(
			"%w: suspension duration must be between 1 and %d days",
			ErrValidation, MaxSuspensionDays,
		)
	}

	if r.Status == enum.AccountStatusBanned {
		return fmt.Errorf("%w: cannot suspend a banned account", ErrInvalidState)
	}

	expiry := now.AddDate(0, 0, durationDays)
	r.Status = enum.AccountStatusSuspended
	r.SuspendedUntil = &expiry
	r.UpdatedAt = now

	return nil
}

// Ban transitions the account to banned. Banning is terminal until an
// explicit restore, and supersedes any pending suspension expiry.
func (r *AccountRecord) Ban(now time.Time) error {
	if r.Status == enum.AccountStatusBanned {
		return fmt.Errorf("%w: account is already banned", ErrInvalidState)
	}

	r.Status = enum.AccountStatusBanned
	r.SuspendedUntil = nil
	r.UpdatedAt = now

	return nil
}

// Restore returns a suspended or banned account to active standing. The
// warning count is untouched.
func (r *AccountRecord) Restore(now time.Time) error {
	if !r.Status.Restorable() {
		return fmt.Errorf("%w: cannot restore a %s account", ErrInvalidState, r.Status)
	}

	r.Status = enum.AccountStatusActive
	r.SuspendedUntil = nil
	r.UpdatedAt = now

	return nil
}

// AccountFilter describes the read-side filters for account listings.
type AccountFilter struct {
	Status *enum.AccountStatus
}
