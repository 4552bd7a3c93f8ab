package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/podiumd/podium/internal/database"
	"github.com/podiumd/podium/internal/database/types"
	"github.com/podiumd/podium/internal/database/types/enum"
	"github.com/podiumd/podium/internal/rest/convert"
	restTypes "github.com/podiumd/podium/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// QuestionHandler handles question-related REST endpoints.
type QuestionHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewQuestionHandler creates a new question handler.
func NewQuestionHandler(db database.Client, logger *zap.Logger) *QuestionHandler {
	return &QuestionHandler{
		db:     db,
		logger: logger,
	}
}

// SubmitQuestion accepts a new question into the moderation queue.
func (h *QuestionHandler) SubmitQuestion(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.SubmitQuestionRequest
	if err := decodeBody(req, &body); err != nil {
		return writeError(w, h.logger, err)
	}

	question, err := h.db.Service().Question().Submit(
		req.Context(), body.AuthorID, body.Text, body.Context, body.Tags,
	)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	w.WriteHeader(http.StatusCreated)

	return bunrouter.JSON(w, convert.Question(question))
}

// ListQuestions returns a filtered, sorted, cursor-paginated question page.
func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, req bunrouter.Request) error {
	query := req.URL.Query()

	filter := types.QuestionFilter{
		Search: query.Get("search"),
		SortBy: enum.QuestionSortByRankScore,
	}

	if raw := query.Get("status"); raw != "" {
		status, err := enum.QuestionStatusString(raw)
		if err != nil {
			return writeError(w, h.logger, fmt.Errorf("%w: unknown status %q", types.ErrValidation, raw))
		}

		filter.Status = &status
	}

	if raw := query.Get("sort"); raw != "" {
		// Accept the wire form rank_score as well as the enum name.
		sortBy, err := enum.QuestionSortByString(strings.ReplaceAll(raw, "_", ""))
		if err != nil {
			return writeError(w, h.logger, fmt.Errorf("%w: unknown sort %q", types.ErrValidation, raw))
		}

		filter.SortBy = sortBy
	}

	cursor, err := decodeCursor[types.QuestionCursor](query.Get("cursor"))
	if err != nil {
		return writeError(w, h.logger, err)
	}

	questions, nextCursor, err := h.db.Service().Question().List(req.Context(), filter, cursor, pageLimit(req))
	if err != nil {
		return writeError(w, h.logger, err)
	}

	response := restTypes.ListQuestionsResponse{Questions: convert.Questions(questions)}
	if nextCursor != nil {
		response.NextCursor = encodeCursor(nextCursor)
	}

	return bunrouter.JSON(w, response)
}

// GetQuestion retrieves a single question. Merged questions carry their
// redirect target in mergedIntoId.
func (h *QuestionHandler) GetQuestion(w http.ResponseWriter, req bunrouter.Request) error {
	questionID, err := paramID(req, "id")
	if err != nil {
		return writeError(w, h.logger, err)
	}

	question, err := h.db.Service().Question().Get(req.Context(), questionID)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return bunrouter.JSON(w, convert.Question(question))
}

// GetDuplicates returns candidate duplicates for a question, most similar
// first.
func (h *QuestionHandler) GetDuplicates(w http.ResponseWriter, req bunrouter.Request) error {
	questionID, err := paramID(req, "id")
	if err != nil {
		return writeError(w, h.logger, err)
	}

	matches, err := h.db.Service().Question().FindDuplicates(req.Context(), questionID)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return bunrouter.JSON(w, convert.DuplicateMatches(matches))
}

// ApproveQuestion approves a pending question.
func (h *QuestionHandler) ApproveQuestion(w http.ResponseWriter, req bunrouter.Request) error {
	questionID, err := paramID(req, "id")
	if err != nil {
		return writeError(w, h.logger, err)
	}

	var body restTypes.ModerationRequest
	if err := decodeBody(req, &body); err != nil {
		return writeError(w, h.logger, err)
	}

	question, err := h.db.Service().Question().Approve(req.Context(), questionID, body.ActorID)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return bunrouter.JSON(w, convert.Question(question))
}

// RejectQuestion rejects a pending question with a required reason.
func (h *QuestionHandler) RejectQuestion(w http.ResponseWriter, req bunrouter.Request) error {
	questionID, err := paramID(req, "id")
	if err != nil {
		return writeError(w, h.logger, err)
	}

	var body restTypes.ModerationRequest
	if err := decodeBody(req, &body); err != nil {
		return writeError(w, h.logger, err)
	}

	question, err := h.db.Service().Question().Reject(req.Context(), questionID, body.ActorID, body.Reason)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return bunrouter.JSON(w, convert.Question(question))
}

// MergeQuestion merges a question into a canonical target.
func (h *QuestionHandler) MergeQuestion(w http.ResponseWriter, req bunrouter.Request) error {
	questionID, err := paramID(req, "id")
	if err != nil {
		return writeError(w, h.logger, err)
	}

	var body restTypes.MergeRequest
	if err := decodeBody(req, &body); err != nil {
		return writeError(w, h.logger, err)
	}

	question, err := h.db.Service().Question().Merge(req.Context(), questionID, body.TargetID, body.ActorID)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return bunrouter.JSON(w, convert.Question(question))
}

// BulkApprove approves many pending questions, reporting per-item outcomes.
func (h *QuestionHandler) BulkApprove(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.BulkModerationRequest
	if err := decodeBody(req, &body); err != nil {
		return writeError(w, h.logger, err)
	}

	result := h.db.Service().Bulk().Apply(req.Context(), body.QuestionIDs,
		func(ctx context.Context, targetID uint64) error {
			_, err := h.db.Service().Question().Approve(ctx, targetID, body.ActorID)
			return err
		})

	return bunrouter.JSON(w, convert.BulkResult(result))
}

// BulkReject rejects many pending questions, reporting per-item outcomes.
func (h *QuestionHandler) BulkReject(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.BulkModerationRequest
	if err := decodeBody(req, &body); err != nil {
		return writeError(w, h.logger, err)
	}

	result := h.db.Service().Bulk().Apply(req.Context(), body.QuestionIDs,
		func(ctx context.Context, targetID uint64) error {
			_, err := h.db.Service().Question().Reject(ctx, targetID, body.ActorID, body.Reason)
			return err
		})

	return bunrouter.JSON(w, convert.BulkResult(result))
}
