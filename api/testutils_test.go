package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/harlequingg/tasks-api/internal/auth"
	"github.com/harlequingg/tasks-api/internal/storage/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestApplication(t *testing.T, requireAuth bool) *application {
	t.Helper()

	st, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	var cfg config
	cfg.Env = "testing"
	cfg.RequireAuth = requireAuth
	cfg.CORS.TrustedOrigins = []string{"*"}
	cfg.JWT.Secret = "test-secret-key"
	cfg.JWT.TTL = time.Minute

	app := newApplication(cfg, st)
	// bcrypt at full cost makes the suite slow.
	app.auth = auth.NewService(st,
		auth.NewPasswordHasher(bcrypt.MinCost),
		auth.NewTokenManager([]byte(cfg.JWT.Secret), cfg.JWT.TTL),
	)
	return app
}

type testResponse struct {
	status int
	header http.Header
	body   []byte
}

func do(t *testing.T, h http.Handler, method, path, body string, headers ...string) testResponse {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return testResponse{status: rec.Code, header: rec.Header(), body: rec.Body.Bytes()}
}

func decodeError(t *testing.T, res testResponse) errorBody {
	t.Helper()
	var e errorBody
	require.NoError(t, json.Unmarshal(res.body, &e), "body: %s", res.body)
	return e
}
