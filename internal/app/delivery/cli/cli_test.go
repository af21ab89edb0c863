package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"patient-viewer-service/internal/pkg/constvars"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bundleBody = `{
	"resourceType": "Bundle",
	"total": 3,
	"entry": [
		{"resource": {"resourceType": "Patient", "id": "1", "name": [{"given": ["Jane"], "family": "Smith"}], "gender": "female", "birthDate": "1990-04-01"}},
		{"resource": {"resourceType": "Observation", "id": "obs-1"}},
		{"resource": {"resourceType": "Patient", "id": "2", "name": [{"given": ["Bob"], "family": "Stone"}]}}
	]
}`

func newFhirServer(t *testing.T) (*httptest.Server, func() []string) {
	t.Helper()

	var (
		mu        sync.Mutex
		requested []string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requested = append(requested, r.URL.RequestURI())
		mu.Unlock()
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

		switch r.URL.Path {
		case "/Patient":
			_, _ = w.Write([]byte(bundleBody))
		case "/Patient/1":
			_, _ = w.Write([]byte(`{"resourceType": "Patient", "id": "1", "active": true, "name": [{"given": ["Jane"], "family": "Smith"}], "address": [{"line": ["1 Main St"], "city": "Springfield", "use": "home"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"resourceType": "OperationOutcome", "issue": [{"severity": "error", "diagnostics": "not found"}]}`))
		}
	}))
	t.Cleanup(server.Close)
	return server, func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), requested...)
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	rootCmd := NewRootCommand(BuildInfo{Version: "test", Tag: "v0"}, DefaultClientFactory, &out, &errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestListCommand(t *testing.T) {
	server, requested := newFhirServer(t)

	t.Run("All Patients", func(t *testing.T) {
		out, _, err := execute(t, "list", "--base-url", server.URL, "--count", "20")

		require.NoError(t, err)
		assert.Contains(t, out, "Jane Smith")
		assert.Contains(t, out, "Bob Stone")
		assert.Contains(t, out, "1990-04-01")
		assert.Contains(t, out, "2 patients | Showing 10 per page | Page 1 of 1")
		assert.NotContains(t, out, "obs-1")
		assert.Contains(t, requested(), "/Patient?_count=20")
	})

	t.Run("Search", func(t *testing.T) {
		out, _, err := execute(t, "list", "--base-url", server.URL, "--search", "STONE")

		require.NoError(t, err)
		assert.Contains(t, out, "Bob Stone")
		assert.NotContains(t, out, "Jane Smith")
	})

	t.Run("No Match", func(t *testing.T) {
		out, _, err := execute(t, "list", "--base-url", server.URL, "--search", "nobody")

		require.NoError(t, err)
		assert.Contains(t, out, constvars.ViewNoPatientsFound)
	})

	t.Run("Invalid Count", func(t *testing.T) {
		_, _, err := execute(t, "list", "--base-url", server.URL, "--count", "15")

		require.Error(t, err)
		assert.Equal(t, "count must be one of [10, 20, 30, 50, 100]", err.Error())
	})

	t.Run("Count From Environment", func(t *testing.T) {
		t.Setenv("PV_COUNT", "30")
		_, _, err := execute(t, "list", "--base-url", server.URL)

		require.NoError(t, err)
		assert.Contains(t, requested(), "/Patient?_count=30")
	})
}

func TestListCommandFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, errOut, err := execute(t, "list", "--base-url", server.URL)

	assert.ErrorIs(t, err, ErrViewFailed)
	assert.Contains(t, errOut, constvars.ErrClientServerError)
}

func TestShowCommand(t *testing.T) {
	server, _ := newFhirServer(t)

	t.Run("Found", func(t *testing.T) {
		out, _, err := execute(t, "show", "1", "--base-url", server.URL)

		require.NoError(t, err)
		assert.Contains(t, out, "Jane Smith")
		assert.Contains(t, out, "1 Main St, Springfield (home)")
		assert.Contains(t, out, "true")
		assert.Contains(t, out, constvars.ViewUnknown, "missing birth date falls back")
	})

	t.Run("Not Found", func(t *testing.T) {
		out, errOut, err := execute(t, "show", "missing", "--base-url", server.URL)

		assert.ErrorIs(t, err, ErrViewFailed)
		assert.Contains(t, errOut, constvars.ErrClientResourceNotFound)
		assert.Contains(t, out, constvars.ViewUnableToLoadPatient)
	})

	t.Run("Requires ID", func(t *testing.T) {
		_, _, err := execute(t, "show")

		assert.Error(t, err)
	})
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{"Version: test", "Tag: v0"}, lines)
}
