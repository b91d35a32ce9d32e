package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	root, err := NewRootCmd(context.Background(), Options{
		ConfigPath: filepath.Join(t.TempDir(), "config.yaml"),
	})
	require.NoError(t, err)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), err
}

func TestVersionRunsWithoutConfig(t *testing.T) {
	out, err := executeRoot(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "autopilot version")
}

func TestBareCommandUsesModeFlag(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("content-type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","data":{"titles":["a","b"]}}`))
	}))
	defer server.Close()
	t.Setenv("AUTOPILOT_BACKEND_URL", server.URL)

	out, err := executeRoot(t, "--mode", "extract", "--no-color", "--view", "data", "list", "titles")
	require.NoError(t, err)
	assert.Equal(t, "/extract", path)
	assert.Contains(t, out, "titles")
}

func TestBareCommandRejectsUnknownMode(t *testing.T) {
	_, err := executeRoot(t, "--mode", "scrape", "hello")
	require.Error(t, err)
}
