package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/podiumd/podium/internal/database"
	"github.com/podiumd/podium/internal/database/types"
	"github.com/podiumd/podium/internal/database/types/enum"
	"github.com/podiumd/podium/internal/rest/convert"
	restTypes "github.com/podiumd/podium/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// ActivityHandler handles audit trail REST endpoints.
type ActivityHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(db database.Client, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		db:     db,
		logger: logger,
	}
}

// ListActivity returns the moderation action history, newest first, filtered
// by target, actor, action type, and time range.
func (h *ActivityHandler) ListActivity(w http.ResponseWriter, req bunrouter.Request) error {
	query := req.URL.Query()

	var filter types.ActivityFilter

	if raw := query.Get("target_type"); raw != "" {
		targetType, err := enum.TargetTypeString(raw)
		if err != nil {
			return writeError(w, h.logger,
				fmt.Errorf("%w: unknown target type %q", types.ErrValidation, raw))
		}

		filter.TargetType = &targetType
	}

	if raw := query.Get("activity_type"); raw != "" {
		// Accept snake_case wire forms as well as the enum names.
		activityType, err := enum.ActivityTypeString(strings.ReplaceAll(raw, "_", ""))
		if err != nil {
			return writeError(w, h.logger,
				fmt.Errorf("%w: unknown activity type %q", types.ErrValidation, raw))
		}

		filter.ActivityType = &activityType
	}

	if raw := query.Get("target_id"); raw != "" {
		targetID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return writeError(w, h.logger,
				fmt.Errorf("%w: malformed target_id parameter %q", types.ErrValidation, raw))
		}

		filter.TargetID = targetID
	}

	if raw := query.Get("actor_id"); raw != "" {
		actorID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return writeError(w, h.logger,
				fmt.Errorf("%w: malformed actor_id parameter %q", types.ErrValidation, raw))
		}

		filter.ActorID = actorID
	}

	if raw := query.Get("after"); raw != "" {
		after, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return writeError(w, h.logger, fmt.Errorf("%w: malformed after timestamp", types.ErrValidation))
		}

		filter.After = after
	}

	if raw := query.Get("before"); raw != "" {
		before, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return writeError(w, h.logger, fmt.Errorf("%w: malformed before timestamp", types.ErrValidation))
		}

		filter.Before = before
	}

	cursor, err := decodeCursor[types.LogCursor](query.Get("cursor"))
	if err != nil {
		return writeError(w, h.logger, err)
	}

	logs, nextCursor, err := h.db.Model().Activity().GetLogs(req.Context(), filter, cursor, pageLimit(req))
	if err != nil {
		return writeError(w, h.logger, err)
	}

	response := restTypes.ListActivityResponse{Entries: convert.ActivityEntries(logs)}
	if nextCursor != nil {
		response.NextCursor = encodeCursor(nextCursor)
	}

	return bunrouter.JSON(w, response)
}
