package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/podiumd/podium/internal/database"
	"github.com/podiumd/podium/internal/database/types"
	"github.com/podiumd/podium/internal/database/types/enum"
	"github.com/podiumd/podium/internal/rest/convert"
	restTypes "github.com/podiumd/podium/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// AccountHandler handles account moderation REST endpoints.
type AccountHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(db database.Client, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{
		db:     db,
		logger: logger,
	}
}

// GetAccount retrieves an account's moderation record.
func (h *AccountHandler) GetAccount(w http.ResponseWriter, req bunrouter.Request) error {
	userID, err := paramID(req, "id")
	if err != nil {
		return writeError(w, h.logger, err)
	}

	record, err := h.db.Service().Account().Get(req.Context(), userID)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return bunrouter.JSON(w, convert.Account(record))
}

// ListAccounts returns account moderation records filtered by standing.
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, req bunrouter.Request) error {
	query := req.URL.Query()

	var filter types.AccountFilter

	if raw := query.Get("account_status"); raw != "" {
		status, err := enum.AccountStatusString(raw)
		if err != nil {
			return writeError(w, h.logger,
				fmt.Errorf("%w: unknown account status %q", types.ErrValidation, raw))
		}

		filter.Status = &status
	}

	var afterUserID uint64

	if raw := query.Get("after"); raw != "" {
		var err error

		afterUserID, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return writeError(w, h.logger,
				fmt.Errorf("%w: malformed after parameter %q", types.ErrValidation, raw))
		}
	}

	limit := pageLimit(req)

	records, err := h.db.Service().Account().List(req.Context(), filter, afterUserID, limit)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	response := restTypes.ListAccountsResponse{Accounts: convert.Accounts(records)}
	if len(records) == limit {
		response.NextUserID = records[len(records)-1].UserID
	}

	return bunrouter.JSON(w, response)
}

// WarnAccount records a warning against an account.
func (h *AccountHandler) WarnAccount(w http.ResponseWriter, req bunrouter.Request) error {
	return h.moderate(w, req, h.db.Service().Account().Warn)
}

// BanAccount permanently bans an account.
func (h *AccountHandler) BanAccount(w http.ResponseWriter, req bunrouter.Request) error {
	return h.moderate(w, req, h.db.Service().Account().Ban)
}

// RestoreAccount returns a suspended or banned account to active standing.
func (h *AccountHandler) RestoreAccount(w http.ResponseWriter, req bunrouter.Request) error {
	return h.moderate(w, req, h.db.Service().Account().Restore)
}

// SuspendAccount suspends an account for a bounded number of days.
func (h *AccountHandler) SuspendAccount(w http.ResponseWriter, req bunrouter.Request) error {
	userID, err := paramID(req, "id")
	if err != nil {
		return writeError(w, h.logger, err)
	}

	var body restTypes.SuspendRequest
	if err := decodeBody(req, &body); err != nil {
		return writeError(w, h.logger, err)
	}

	record, err := h.db.Service().Account().Suspend(
		req.Context(), userID, body.ActorID, body.Reason, body.DurationDays,
	)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return bunrouter.JSON(w, convert.Account(record))
}

type accountAction func(
	ctx context.Context, userID, actorID uint64, reason string,
) (*types.AccountRecord, error)

func (h *AccountHandler) moderate(
	w http.ResponseWriter, req bunrouter.Request, action accountAction,
) error {
	userID, err := paramID(req, "id")
	if err != nil {
		return writeError(w, h.logger, err)
	}

	var body restTypes.ModerationRequest
	if err := decodeBody(req, &body); err != nil {
		return writeError(w, h.logger, err)
	}

	record, err := action(req.Context(), userID, body.ActorID, body.Reason)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return bunrouter.JSON(w, convert.Account(record))
}
