package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyiku/hackz-mosaic-back/internal/testutil"
)

func TestHealthHandler_Check(t *testing.T) {
	tc := testutil.NewTestContext(http.MethodGet, "/health", nil)

	h := NewHealthHandler()
	err := h.Check(tc.Context)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, tc.GetResponseCode())
	assert.Equal(t, "ok", tc.GetResponseBody()["status"])
}
