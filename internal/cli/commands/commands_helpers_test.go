package commands

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"runtime"
	"sync"
	"testing"

	"Lumme/internal/config"
)

// withTempConfig переопределяет пользовательские каталоги на время теста,
// чтобы токен, профиль и корзина создавались в temp.
func withTempConfig(t *testing.T, apiURL string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	t.Setenv("API_URL", "")
	return &config.Config{APIURL: apiURL, StateBackend: config.StateFS, StateDir: dir}
}

// apiCall — запрос, пришедший в фейковый API.
type apiCall struct {
	Method, Path, Query, Auth string
	Body                      map[string]any
}

// fakeAPI имитирует маркетплейс: ответы задаются по "METHOD /path".
type fakeAPI struct {
	mu     sync.Mutex
	calls  []apiCall
	routes map[string]fakeResponse
}

type fakeResponse struct {
	status int
	body   string
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()
	f := &fakeAPI{routes: map[string]fakeResponse{}}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		_ = json.Unmarshal(raw, &body)
		f.mu.Lock()
		f.calls = append(f.calls, apiCall{
			Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery,
			Auth: r.Header.Get("Authorization"), Body: body,
		})
		resp, ok := f.routes[r.Method+" "+r.URL.Path]
		f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"success":false,"error":"Not found"}`))
			return
		}
		w.WriteHeader(resp.status)
		_, _ = w.Write([]byte(resp.body))
	}))
	t.Cleanup(ts.Close)
	return f, ts
}

func (f *fakeAPI) on(methodPath string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[methodPath] = fakeResponse{status: status, body: body}
}

func (f *fakeAPI) last(t *testing.T) apiCall {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		t.Fatalf("no API calls recorded")
	}
	return f.calls[len(f.calls)-1]
}

func (f *fakeAPI) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}
