package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/osse101/StarSailors_Go/internal/auth"
	"github.com/osse101/StarSailors_Go/internal/domain"
)

const testRequestID = "5f0c6a58-9a39-4f5e-8a0e-3f6f1d1b2c44"

var (
	testSession = domain.Session{UserID: "user-1"}
	mars        = domain.Location{AnomalyID: 30, PlanetType: "Arid"}
)

// newRequest builds a request with a JSON body; string bodies are sent verbatim
func newRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func signedIn(req *http.Request) *http.Request {
	return req.WithContext(auth.WithSession(req.Context(), testSession))
}

// serve routes req through a chi router so URL parameters resolve
func serve(method, pattern string, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, h)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
