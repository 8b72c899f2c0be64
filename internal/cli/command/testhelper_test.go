package command

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

const testKey = "0123456789abcdef0123456789abcdef"

// mockServer is a stand-in randapi-server with per-route handlers.
type mockServer struct {
	*httptest.Server

	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	keys     []string // X-API-Key values seen, in order
}

func newMockServer(t *testing.T) *mockServer {
	t.Helper()
	m := &mockServer{handlers: make(map[string]http.HandlerFunc)}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		m.keys = append(m.keys, r.Header.Get("X-API-Key"))
		h, ok := m.handlers[r.Method+" "+r.URL.Path]
		m.mu.Unlock()
		if !ok {
			jsonResponse(w, http.StatusNotFound, map[string]string{"error": "Not Found", "message": "Cannot " + r.Method + " " + r.URL.Path})
			return
		}
		h(w, r)
	}))
	t.Cleanup(m.Close)
	return m
}

// handle registers a handler for "METHOD /path".
func (m *mockServer) handle(route string, h http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[route] = h
}

// gated registers a handler that requires testKey.
func (m *mockServer) gated(route string, body any) {
	m.handle(route, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") != testKey {
			w.Header().Set("X-Error-Code", "RD-AUTH-4010")
			jsonResponse(w, http.StatusUnauthorized, map[string]string{
				"error":   "Invalid API key",
				"message": "Please include a valid API key in the X-API-Key header",
			})
			return
		}
		jsonResponse(w, http.StatusOK, body)
	})
}

func (m *mockServer) lastKey() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.keys) == 0 {
		return ""
	}
	return m.keys[len(m.keys)-1]
}

// jsonResponse writes a JSON response.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// runResult captures one CLI invocation.
type runResult struct {
	stdout string
	stderr string
	err    error
}

// runCLI runs the app with an isolated config file and no RANDAPI_*
// environment.
func runCLI(t *testing.T, configPath string, args ...string) runResult {
	t.Helper()
	for _, name := range []string{"RANDAPI_SERVER", "RANDAPI_API_KEY", "RANDAPI_CLI_CONFIG", "RANDAPI_CA_FILE"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	return runWithEnv(t, configPath, args...)
}

// runWithEnv runs the app with the current environment.
func runWithEnv(t *testing.T, configPath string, args ...string) runResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := NewApp(&stdout, &stderr)
	full := append([]string{"randapi-cli", "--config", configPath}, args...)
	err := app.Run(full)
	return runResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func tempConfigPath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "cli.yaml")
}
