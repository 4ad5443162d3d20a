package cmd_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/M-ayank2005/Carryaptos/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionRoot_MemoryStack(t *testing.T) {
	cfg, err := cmd.LoadConfig(envOf(nil))
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	root, err := cmd.NewCompositionRoot(t.Context(), cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })
	assert.False(t, root.HasEventPublisher())

	e, err := root.CreateHTTPServer()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/0xa11ce/deposits", strings.NewReader(`{"amount":"5"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "SubmitTransaction")

	manager := root.CreateJobManager()
	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
