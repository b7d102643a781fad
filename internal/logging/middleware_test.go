package logging_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rogerio-castellano/storefront/internal/logging"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logging.SetupWriter(&buf, "info")

	var seenID bool
	h := logging.RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Ctx(r.Context()).Info().Msg("inside")
		seenID = w.Header().Get("X-Request-Id") != ""
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.True(t, seenID)
	assert.Equal(t, http.StatusTeapot, w.Code)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var inner, summary map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &inner))
	require.NoError(t, json.Unmarshal(lines[1], &summary))

	assert.Equal(t, "inside", inner["message"])
	assert.Equal(t, inner["request_id"], summary["request_id"])
	assert.Equal(t, "/contact", summary["endpoint"])
	assert.Equal(t, float64(http.StatusTeapot), summary["status"])
}

func TestSetupWriter_UnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	logging.SetupWriter(&buf, "chatty")

	log.Debug().Msg("hidden")
	log.Info().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
