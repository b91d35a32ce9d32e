package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/autopilot-go/internal/domain"
)

func TestSubmitPostsToModeEndpoint(t *testing.T) {
	var gotPath, gotRequestID, gotTeam string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRequestID = r.Header.Get(domain.RequestIDHeader)
		gotTeam = r.Header.Get("X-Team")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.Header().Set("content-type", "application/json")
		_, _ = io.WriteString(w, `{"status":"success","original_command":"Open Bing, search for cute puppies","steps_results":[{"action":"navigate","status":"success"}]}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", WithHeaders(map[string]string{"X-Team": "qa"}))
	client.newRequestID = func() string { return "req-1" }

	req, err := domain.NewAutomationRequest("  Open Bing, search for cute puppies ", domain.ModeInteract)
	require.NoError(t, err)

	result, err := client.Submit(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "/interact", gotPath)
	assert.Equal(t, "req-1", gotRequestID)
	assert.Equal(t, "qa", gotTeam)
	assert.Equal(t, map[string]string{"command": "Open Bing, search for cute puppies", "browser": "chrome"}, gotBody)
	assert.Equal(t, domain.StatusSuccess, result.Status)
	require.Len(t, result.Steps, 1)
	assert.Equal(t, "navigate", result.Steps[0].Action)
}

func TestSubmitExtractEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/extract", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		_, _ = io.WriteString(w, `{"status":"partial_success","original_command":"x","data":{"headlines":["A","B"]}}`)
	}))
	defer srv.Close()

	req, err := domain.NewAutomationRequest("Extract all news headlines from CNN", domain.ModeExtract)
	require.NoError(t, err)

	result, err := NewClient(srv.URL).Submit(context.Background(), req)
	require.NoError(t, err)
	require.True(t, result.HasData)
	assert.Equal(t, []string{"A", "B"}, result.Data[0].Rows())
}

func TestSubmitNon2xxCarriesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"status":"error","message":"chromedriver crashed"}`)
	}))
	defer srv.Close()

	req, _ := domain.NewAutomationRequest("go", domain.ModeInteract)
	_, err := NewClient(srv.URL).Submit(context.Background(), req)
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, "chromedriver crashed", statusErr.Message)
	assert.Equal(t, "backend returned 500 Internal Server Error: chromedriver crashed", err.Error())
}

func TestSubmitNon2xxWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `<html>bad</html>`)
	}))
	defer srv.Close()

	req, _ := domain.NewAutomationRequest("go", domain.ModeExtract)
	_, err := NewClient(srv.URL).Submit(context.Background(), req)
	require.EqualError(t, err, "backend returned 400 Bad Request")
}

func TestSubmitMalformedBody(t *testing.T) {
	for name, body := range map[string]string{
		"truncated":     `{"status": "success",`,
		"trailing junk": `{"status":"success","original_command":"x"} <html>oops</html>`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, body)
			}))
			defer srv.Close()

			req, _ := domain.NewAutomationRequest("go", domain.ModeInteract)
			result, err := NewClient(srv.URL).Submit(context.Background(), req)
			require.ErrorIs(t, err, domain.ErrMalformedPayload)
			assert.Empty(t, result.Status)
			assert.Empty(t, result.Raw)
		})
	}
}

func TestSubmitNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	req, _ := domain.NewAutomationRequest("go", domain.ModeInteract)
	_, err := NewClient(url).Submit(context.Background(), req)
	require.Error(t, err)
	assert.NotEmpty(t, err.Error())
}

func TestPingAcceptsAnyStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	require.NoError(t, client.Ping(context.Background()))
	assert.Equal(t, srv.URL, client.BaseURL())
}
