package types

import (
	"time"

	"github.com/podiumd/podium/internal/database/types/enum"
)

// SystemActorID is the reserved actor for transitions applied by background
// sweeps rather than a moderator.
const SystemActorID uint64 = 0

// ActivityLog is an immutable audit record appended on every question or
// account transition. Records are never updated or deleted.
type ActivityLog struct {
	ID           uint64            `bun:",pk,autoincrement" json:"id"`
	TargetType   enum.TargetType   `bun:",notnull"          json:"targetType"`
	TargetID     uint64            `bun:",notnull"          json:"targetId"`
	ActivityType enum.ActivityType `bun:",notnull"          json:"activityType"`
	ActorID      uint64            `bun:",notnull"          json:"actorId"`
	FromState    string            `bun:",notnull"          json:"fromState"`
	ToState      string            `bun:",notnull"          json:"toState"`
	Reason       string            `bun:",type:text"        json:"reason"`
	Details      map[string]any    `bun:",type:jsonb"       json:"details,omitempty"`
	CreatedAt    time.Time         `bun:",notnull"          json:"createdAt"`
}

// ActivityFilter describes the filter criteria for audit trail queries.
// Zero values match everything.
type ActivityFilter struct {
	TargetType   *enum.TargetType
	TargetID     uint64
	ActorID      uint64
	ActivityType *enum.ActivityType
	After        time.Time
	Before       time.Time
}

// LogCursor implements keyset pagination over the audit trail, newest first.
type LogCursor struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        uint64    `json:"id"`
}
