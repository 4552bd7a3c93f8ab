package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	restTypes "github.com/podiumd/podium/internal/rest/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// newAccountRouter wires ListAccounts without a database; the cases below all
// fail parameter validation before any storage call.
func newAccountRouter() *bunrouter.Router {
	h := NewAccountHandler(nil, zap.NewNop())

	router := bunrouter.New()
	router.GET("/v1/accounts", h.ListAccounts)

	return router
}

func TestListAccountsRejectsMalformedAfter(t *testing.T) {
	t.Parallel()

	router := newAccountRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/accounts?after=abc", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body restTypes.ErrorResponse
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "validation", body.Kind)
}

func TestListAccountsRejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	router := newAccountRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/accounts?account_status=vaporized", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
