// Package integration exercises the full stack end to end: a seeded SQLite
// store behind the HTTP router, driven over a real listener.
package integration

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/scriptorium/internal/httpapi"
	"github.com/mesh-intelligence/scriptorium/internal/sqlite"
	"github.com/mesh-intelligence/scriptorium/pkg/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// env is an attached store serving over a live test listener.
type env struct {
	t       *testing.T
	backend *sqlite.Backend
	server  *httptest.Server
}

// newEnv attaches a backend in its own temp directory and serves it.
func newEnv(t *testing.T, seed bool) *env {
	t.Helper()

	backend := sqlite.NewBackend()
	require.NoError(t, backend.Attach(types.Config{DataDir: t.TempDir(), SeedOnInit: seed}))

	server := httptest.NewServer(httpapi.NewRouter(backend))
	t.Cleanup(func() {
		server.Close()
		_ = backend.Detach()
	})
	return &env{t: t, backend: backend, server: server}
}

// get performs a GET and decodes the JSON body into out when out is non-nil.
func (e *env) get(path string, out any) int {
	e.t.Helper()

	resp, err := http.Get(e.server.URL + path)
	require.NoError(e.t, err)
	defer resp.Body.Close()

	if out != nil {
		body, err := io.ReadAll(resp.Body)
		require.NoError(e.t, err)
		require.NoError(e.t, json.Unmarshal(body, out), "body: %s", body)
	}
	return resp.StatusCode
}

// post performs a JSON POST and returns the status code and decoded body.
func (e *env) post(path, content string) (int, map[string]any) {
	e.t.Helper()

	payload := fmt.Sprintf(`{"content": %q}`, content)
	resp, err := http.Post(e.server.URL+path, "application/json", strings.NewReader(payload))
	require.NoError(e.t, err)
	defer resp.Body.Close()

	var body map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(e.t, err)
	require.NoError(e.t, json.Unmarshal(raw, &body), "body: %s", raw)
	return resp.StatusCode, body
}

func TestEmptyStore(t *testing.T) {
	e := newEnv(t, false)

	var body map[string]any
	code := e.get("/documents", &body)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "no_data", body["error"])
}

func TestSeededStoreServesDocuments(t *testing.T) {
	e := newEnv(t, true)

	var titles []string
	code := e.get("/documents", &titles)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, titles, "Ada Lovelace")
	assert.Contains(t, titles, "SQLite")

	var revisions []map[string]any
	code = e.get("/documents/Ada%20Lovelace", &revisions)
	require.Equal(t, http.StatusOK, code)
	assert.GreaterOrEqual(t, len(revisions), 2)
}

func TestAsOfWindows(t *testing.T) {
	e := newEnv(t, false)

	t1, err := types.ParseInstant("2023-01-01T00:00:00Z")
	require.NoError(t, err)
	t2, err := types.ParseInstant("2023-01-02T00:00:00Z")
	require.NoError(t, err)
	_, err = e.backend.SaveDocument("A", t1, "rev at T1")
	require.NoError(t, err)
	_, err = e.backend.SaveDocument("A", t2, "rev at T2")
	require.NoError(t, err)

	t.Run("between T1 and T2 returns T1", func(t *testing.T) {
		var rev map[string]any
		code := e.get("/documents/A/2023-01-01T12:00:00Z", &rev)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "rev at T1", rev["content"])
	})

	t.Run("before T1 cites T1 as earliest", func(t *testing.T) {
		var body map[string]any
		code := e.get("/documents/A/2022-12-31T00:00:00Z", &body)
		require.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "no_revision_at_timestamp", body["error"])
		assert.Equal(t, "2023-01-01T00:00:00Z", body["earliest_timestamp"])
	})

	t.Run("latest returns T2", func(t *testing.T) {
		var rev map[string]any
		code := e.get("/documents/A/latest", &rev)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "rev at T2", rev["content"])
	})
}

func TestWriteReadCycle(t *testing.T) {
	e := newEnv(t, false)

	at, err := types.ParseInstant("2023-01-01T00:00:00Z")
	require.NoError(t, err)
	_, err = e.backend.SaveDocument("Cycle", at, "first draft")
	require.NoError(t, err)

	code, body := e.post("/documents/Cycle", "second draft")
	require.Equal(t, http.StatusCreated, code)
	assert.NotEmpty(t, body["document_id"])

	var rev map[string]any
	code = e.get("/documents/Cycle/latest", &rev)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "second draft", rev["content"])

	// Repeating the same content must fail, and must say so.
	code, body = e.post("/documents/Cycle", "second draft")
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "no_changes", body["error"])

	var revisions []map[string]any
	code = e.get("/documents/Cycle", &revisions)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, revisions, 2)
}

func TestUnknownTitleEverywhere(t *testing.T) {
	e := newEnv(t, true)

	for _, path := range []string{
		"/documents/Zed",
		"/documents/Zed/latest",
		"/documents/Zed/2023-01-01T00:00:00Z",
	} {
		var body map[string]any
		code := e.get(path, &body)
		assert.Equal(t, http.StatusNotFound, code, "path %s", path)
		assert.Equal(t, "title_not_found", body["error"], "path %s", path)
	}

	code, body := e.post("/documents/Zed", "content")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "title_not_found", body["error"])
}
