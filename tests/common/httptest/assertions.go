//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"gearshare/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	require.Equal(t, expectedStatus, w.Code,
		"unexpected status, body: %s", w.Body.String())

	if targetStruct != nil && w.Code >= 200 && w.Code < 300 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), targetStruct),
			"could not decode response body: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status code and that the error envelope's
// message contains msgPart (skipped when msgPart is empty).
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, msgPart string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "body: %s", w.Body.String())

	var res httperr.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res),
		"could not decode error envelope: %s", w.Body.String())

	if msgPart != "" {
		assert.Contains(t, res.Error.Message, msgPart)
	}
}
