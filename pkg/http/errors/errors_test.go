package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondErrorEnvelope(t *testing.T) {
	cases := []struct {
		write   func(http.ResponseWriter)
		status  int
		message string
	}{
		{RespondBadRequest, http.StatusBadRequest, "Bad Request"},
		{RespondNotFound, http.StatusNotFound, "Resource Not Found"},
		{RespondMethodNotAllowed, http.StatusMethodNotAllowed, "Method Not Allowed"},
		{RespondUnprocessable, http.StatusUnprocessableEntity, "Unprocessable"},
		{RespondInternalError, http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		tc.write(rec)

		assert.Equal(t, tc.status, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, float64(tc.status), body["error"])
		assert.Equal(t, tc.message, body["message"])
	}
}

func TestMessageForUnknownStatus(t *testing.T) {
	assert.Equal(t, "Service Unavailable", MessageFor(http.StatusServiceUnavailable))
}
