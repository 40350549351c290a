package response

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyiku/hackz-mosaic-back/internal/testutil"
)

func TestSuccess(t *testing.T) {
	tc := testutil.NewTestContext(http.MethodGet, "/", nil)

	err := Success(tc.Context, map[string]interface{}{"scene_id": "abc"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, tc.GetResponseCode())
	body := tc.GetResponseBody()
	assert.Equal(t, false, body["error"])
	assert.Equal(t, "abc", body["scene_id"])
}

func TestError(t *testing.T) {
	tc := testutil.NewTestContext(http.MethodGet, "/", nil)

	err := Error(tc.Context, http.StatusNotFound, "シーンが見つかりません")

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, tc.GetResponseCode())
	body := tc.GetResponseBody()
	assert.Equal(t, true, body["error"])
	assert.Equal(t, "シーンが見つかりません", body["message"])
}

func TestPNG(t *testing.T) {
	tc := testutil.NewTestContext(http.MethodGet, "/", nil)

	err := PNG(tc.Context, []byte("\x89PNGdata"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, tc.GetResponseCode())
	assert.Equal(t, "image/png", tc.Recorder.Header().Get("Content-Type"))
}
