// Package handler implements the REST API endpoints.
package handler

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/podiumd/podium/internal/database/types"
	restTypes "github.com/podiumd/podium/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// maxBodyBytes bounds request body size for all JSON endpoints.
const maxBodyBytes = 1 << 20

// defaultPageSize is used when a listing request omits the limit parameter.
const defaultPageSize = 50

// maxPageSize caps listing page sizes.
const maxPageSize = 200

// writeError maps the storage error taxonomy onto HTTP statuses and writes a
// uniform error body. Internal errors are logged but not echoed to the client.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) error {
	kind := types.KindOf(err)

	var status int

	message := err.Error()

	switch kind {
	case types.ErrorKindNotFound:
		status = http.StatusNotFound
	case types.ErrorKindInvalidState:
		status = http.StatusConflict
	case types.ErrorKindValidation:
		status = http.StatusUnprocessableEntity
	case types.ErrorKindConflict:
		status = http.StatusServiceUnavailable
	default:
		status = http.StatusInternalServerError
		message = "internal server error"

		logger.Error("Request failed", zap.Error(err))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	body, _ := sonic.Marshal(restTypes.ErrorResponse{Error: message, Kind: string(kind)})
	_, _ = w.Write(body)

	return nil
}

// decodeBody reads and unmarshals a JSON request body into dst.
func decodeBody(req bunrouter.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(req.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: failed to read request body", types.ErrValidation)
	}

	if err := sonic.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: malformed JSON body", types.ErrValidation)
	}

	return nil
}

// paramID parses a numeric path parameter.
func paramID(req bunrouter.Request, name string) (uint64, error) {
	id, err := strconv.ParseUint(req.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s parameter", types.ErrValidation, name)
	}

	return id, nil
}

// pageLimit parses the limit query parameter with bounds applied.
func pageLimit(req bunrouter.Request) int {
	raw := req.URL.Query().Get("limit")
	if raw == "" {
		return defaultPageSize
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return defaultPageSize
	}

	return min(limit, maxPageSize)
}

// encodeCursor serializes a keyset cursor into an opaque token.
func encodeCursor(cursor any) string {
	if cursor == nil {
		return ""
	}

	data, err := sonic.Marshal(cursor)
	if err != nil {
		return ""
	}

	return base64.RawURLEncoding.EncodeToString(data)
}

// decodeCursor parses an opaque cursor token back into a keyset cursor.
// Empty tokens yield a nil cursor (first page).
func decodeCursor[T any](raw string) (*T, error) {
	if raw == "" {
		return nil, nil //nolint:nilnil // nil cursor means first page
	}

	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed cursor", types.ErrValidation)
	}

	var cursor T
	if err := sonic.Unmarshal(data, &cursor); err != nil {
		return nil, fmt.Errorf("%w: malformed cursor", types.ErrValidation)
	}

	return &cursor, nil
}
