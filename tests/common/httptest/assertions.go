//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"campus-reservation/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "Response: %s", w.Body.String()) {
		return
	}
	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), targetStruct), "Failed to decode response JSON: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and, when expectedErrorMsg is set,
// that the envelope's message contains it.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "Response: %s", w.Body.String())
	res := decodeError(t, w)
	if expectedErrorMsg != "" {
		assert.Contains(t, res.Error.Message, expectedErrorMsg, "Response error message doesn't contain expected text")
	}
}

// AssertErrorCode checks the status and the machine-readable error code.
func AssertErrorCode(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedCode string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "Response: %s", w.Body.String())
	assert.Equal(t, expectedCode, decodeError(t, w).Error.Code)
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) httperr.Response {
	t.Helper()

	var res httperr.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), "Failed to decode error response JSON: %s", w.Body.String())
	return res
}
