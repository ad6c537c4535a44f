package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"call-retrieval-go/internal/dataset"
	"call-retrieval-go/internal/resolver"
	"call-retrieval-go/internal/server"
)

func newTestServer(t *testing.T, csvContent, apiKey string) *server.Server {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calls.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvContent), 0o644))
	ds, err := dataset.Load(path)
	require.NoError(t, err)
	return server.New(ds, resolver.Summarize(ds), apiKey)
}

const sampleCSV = "Recording URL,CallID,AudioDurationMinutes,CallSentiment,Top3Themes,City.1\n" +
	`https://recordings.example.com/1,101,3.5,positive,"['Price', 'Support']",Austin` + "\n" +
	"https://recordings.example.com/bad,x9,2.0,neutral,[],Delhi\n"

func get(srv http.Handler, target, apiKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", target, nil)
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func TestGetCallDetailsSuccess(t *testing.T) {
	srv := newTestServer(t, sampleCSV, "")

	w := get(srv, "/get-call-details?recording_url=https%3A%2F%2Frecordings.example.com%2F1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, float64(101), body["call_id"])
	assert.Equal(t, 3.5, body["audio_duration_minutes"])
	assert.Equal(t, "positive", body["call_sentiment"])
	assert.Equal(t, []interface{}{"Price", "Support"}, body["top3_themes"])
	assert.Equal(t, "Austin", body["city"])
	_, hasFeedback := body["agent_improvement_feedback"]
	assert.False(t, hasFeedback, "absent optionals are omitted")
}

func TestGetCallDetailsNotFound(t *testing.T) {
	srv := newTestServer(t, sampleCSV, "")

	w := get(srv, "/get-call-details?recording_url=https%3A%2F%2Frecordings.example.com%2Fmissing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Contains(t, body["error"], "https://recordings.example.com/missing")
}

func TestGetCallDetailsMissingParam(t *testing.T) {
	srv := newTestServer(t, sampleCSV, "")

	w := get(srv, "/get-call-details", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCallDetailsUnavailableWhenEmpty(t *testing.T) {
	srv := server.New(dataset.Empty(), resolver.Summary{}, "")

	w := get(srv, "/get-call-details?recording_url=https%3A%2F%2Frecordings.example.com%2F1", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetCallDetailsFieldDecodeFailure(t *testing.T) {
	srv := newTestServer(t, sampleCSV, "")

	w := get(srv, "/get-call-details?recording_url=https%3A%2F%2Frecordings.example.com%2Fbad", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Contains(t, body["error"], "CallID")
}

func TestAPIKeyRequired(t *testing.T) {
	srv := newTestServer(t, sampleCSV, "secret")

	w := get(srv, "/get-call-details?recording_url=x", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(srv, "/get-call-details?recording_url=x", "wrong")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = get(srv, "/get-call-details?recording_url=https%3A%2F%2Frecordings.example.com%2F1", "secret")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthzSkipsAuth(t *testing.T) {
	srv := newTestServer(t, sampleCSV, "secret")

	w := get(srv, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestStats(t *testing.T) {
	srv := newTestServer(t, sampleCSV, "")

	w := get(srv, "/stats", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var body resolver.Summary
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, 2, body.TotalCalls)
	assert.Equal(t, []string{"Price", "Support"}, body.TopThemes)
}
