package convert

import (
	"github.com/podiumd/podium/internal/database/types"
	"github.com/podiumd/podium/internal/database/types/enum"
	restTypes "github.com/podiumd/podium/internal/rest/types"
)

// AccountStatus converts a database account status to REST API status.
func AccountStatus(status enum.AccountStatus) restTypes.AccountStatus {
	switch status {
	case enum.AccountStatusActive:
		return restTypes.AccountStatusActive
	case enum.AccountStatusWarned:
		return restTypes.AccountStatusWarned
	case enum.AccountStatusSuspended:
		return restTypes.AccountStatusSuspended
	case enum.AccountStatusBanned:
		return restTypes.AccountStatusBanned
	default:
		return restTypes.AccountStatusActive
	}
}

// Account converts a database account record to its REST representation.
func Account(record *types.AccountRecord) *restTypes.Account {
	if record == nil {
		return nil
	}

	return &restTypes.Account{
		UserID:         record.UserID,
		Status:         AccountStatus(record.Status),
		WarningCount:   record.WarningCount,
		SuspendedUntil: record.SuspendedUntil,
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
	}
}

// Accounts converts a slice of database account records.
func Accounts(records []*types.AccountRecord) []*restTypes.Account {
	out := make([]*restTypes.Account, 0, len(records))
	for _, record := range records {
		out = append(out, Account(record))
	}

	return out
}

// ActivityEntry converts a database audit record to its REST representation.
func ActivityEntry(log *types.ActivityLog) *restTypes.ActivityEntry {
	if log == nil {
		return nil
	}

	return &restTypes.ActivityEntry{
		ID:           log.ID,
		TargetType:   log.TargetType.String(),
		TargetID:     log.TargetID,
		ActivityType: log.ActivityType.String(),
		ActorID:      log.ActorID,
		FromState:    log.FromState,
		ToState:      log.ToState,
		Reason:       log.Reason,
		Details:      log.Details,
		CreatedAt:    log.CreatedAt,
	}
}

// ActivityEntries converts a slice of database audit records.
func ActivityEntries(logs []*types.ActivityLog) []*restTypes.ActivityEntry {
	out := make([]*restTypes.ActivityEntry, 0, len(logs))
	for _, log := range logs {
		out = append(out, ActivityEntry(log))
	}

	return out
}
