package handler

import (
	"fmt"
	"net/http"

	"github.com/podiumd/podium/internal/database"
	"github.com/podiumd/podium/internal/database/types"
	"github.com/podiumd/podium/internal/database/types/enum"
	"github.com/podiumd/podium/internal/rest/convert"
	restTypes "github.com/podiumd/podium/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// VoteHandler handles vote ledger REST endpoints.
type VoteHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewVoteHandler creates a new vote handler.
func NewVoteHandler(db database.Client, logger *zap.Logger) *VoteHandler {
	return &VoteHandler{
		db:     db,
		logger: logger,
	}
}

// CastVote sets or switches the voter's direction on a question and returns
// the updated counters and rank score.
func (h *VoteHandler) CastVote(w http.ResponseWriter, req bunrouter.Request) error {
	questionID, err := paramID(req, "id")
	if err != nil {
		return writeError(w, h.logger, err)
	}

	var body restTypes.CastVoteRequest
	if err := decodeBody(req, &body); err != nil {
		return writeError(w, h.logger, err)
	}

	direction, err := enum.VoteDirectionString(body.Direction)
	if err != nil {
		return writeError(w, h.logger,
			fmt.Errorf("%w: unknown vote direction %q", types.ErrValidation, body.Direction))
	}

	totals, err := h.db.Service().Vote().CastVote(req.Context(), questionID, body.VoterID, direction)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return bunrouter.JSON(w, convert.VoteTotals(totals))
}

// RetractVote removes the voter's vote. Retracting a vote that was never cast
// succeeds without changing anything.
func (h *VoteHandler) RetractVote(w http.ResponseWriter, req bunrouter.Request) error {
	questionID, err := paramID(req, "id")
	if err != nil {
		return writeError(w, h.logger, err)
	}

	var body restTypes.RetractVoteRequest
	if err := decodeBody(req, &body); err != nil {
		return writeError(w, h.logger, err)
	}

	totals, err := h.db.Service().Vote().RetractVote(req.Context(), questionID, body.VoterID)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return bunrouter.JSON(w, convert.VoteTotals(totals))
}
