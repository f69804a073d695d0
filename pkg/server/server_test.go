package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/braidkit/braidkit/pkg/braid"
	"github.com/braidkit/braidkit/pkg/cache"
	"github.com/braidkit/braidkit/pkg/catalog"
	"github.com/braidkit/braidkit/pkg/config"
)

func newTestServer(t *testing.T, store catalog.Store) *Server {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return New(Options{
		Config: config.ServerConfig{MaxGenus: 4},
		Cache:  c,
		Store:  store,
	})
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, nil)
	rec := get(t, s, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestVersion(t *testing.T) {
	s := newTestServer(t, nil)
	rec := get(t, s, "/version")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["version"] == "" {
		t.Error("version missing from response")
	}
}

func TestEnumerationJSON(t *testing.T) {
	s := newTestServer(t, nil)
	rec := get(t, s, "/api/v1/enumerations/1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body)
	}

	var resp struct {
		Genus   int            `json:"genus"`
		Count   int            `json:"count"`
		Records []braid.Record `json:"records"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if resp.Genus != 1 || resp.Count != 1 || len(resp.Records) != 1 {
		t.Fatalf("response = %+v, want one genus-1 record", resp)
	}
	if resp.Records[0].Word.String() != "aaa" {
		t.Errorf("word = %q, want %q", resp.Records[0].Word, "aaa")
	}
}

func TestEnumerationText(t *testing.T) {
	s := newTestServer(t, nil)
	rec := get(t, s, "/api/v1/enumerations/1?format=text")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "aaa: 3 1 4 6 2\n" {
		t.Errorf("body = %q, want %q", got, "aaa: 3 1 4 6 2\n")
	}
}

func TestEnumerationUsesCache(t *testing.T) {
	s := newTestServer(t, nil)

	first := get(t, s, "/api/v1/enumerations/3")
	second := get(t, s, "/api/v1/enumerations/3")
	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("statuses = %d, %d; want 200", first.Code, second.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Error("cached response differs from computed response")
	}

	// The cached entry must be present under the enumeration key.
	key := cache.NewDefaultKeyer().EnumerationKey(3)
	if _, hit, _ := s.cache.Get(context.Background(), key); !hit {
		t.Error("enumeration result not cached")
	}
}

func TestEnumerationValidation(t *testing.T) {
	s := newTestServer(t, nil)
	for path, want := range map[string]int{
		"/api/v1/enumerations/0":    http.StatusBadRequest,
		"/api/v1/enumerations/-1":   http.StatusBadRequest,
		"/api/v1/enumerations/abc":  http.StatusBadRequest,
		"/api/v1/enumerations/5":    http.StatusBadRequest, // above MaxGenus=4
		"/api/v1/enumerations/4":    http.StatusOK,
	} {
		rec := get(t, s, path)
		if rec.Code != want {
			t.Errorf("GET %s = %d, want %d", path, rec.Code, want)
		}
	}
}

func TestDTEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	rec := get(t, s, "/api/v1/words/aaa/dt")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body)
	}
	var resp struct {
		Word      string `json:"word"`
		Crossings int    `json:"crossings"`
		DT        []int  `json:"dt"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if resp.Word != "aaa" || resp.Crossings != 3 {
		t.Errorf("response = %+v", resp)
	}
	if len(resp.DT) != 3 || resp.DT[0] != 4 {
		t.Errorf("dt = %v, want [4 6 2]", resp.DT)
	}

	// Words without a closing trace are a client error.
	if rec := get(t, s, "/api/v1/words/aba/dt"); rec.Code != http.StatusBadRequest {
		t.Errorf("GET /words/aba/dt = %d, want 400", rec.Code)
	}
	if rec := get(t, s, "/api/v1/words/a1a/dt"); rec.Code != http.StatusBadRequest {
		t.Errorf("GET /words/a1a/dt = %d, want 400", rec.Code)
	}
}

func TestDiagramDOT(t *testing.T) {
	s := newTestServer(t, nil)
	rec := get(t, s, "/api/v1/words/aaa/diagram?format=dot")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/vnd.graphviz" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "graph interlacement") {
		t.Errorf("body does not look like DOT: %q", rec.Body.String())
	}

	if rec := get(t, s, "/api/v1/words/aaa/diagram?format=gif"); rec.Code != http.StatusBadRequest {
		t.Errorf("unsupported format = %d, want 400", rec.Code)
	}
}

func TestRunsEndpoints(t *testing.T) {
	store := catalog.NewMemoryStore()
	records, err := braid.Enumerate(context.Background(), 1)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	run := catalog.NewRun(1, records, time.Now().Add(-time.Second), time.Now())
	if err := store.SaveRun(context.Background(), run); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	s := newTestServer(t, store)

	rec := get(t, s, "/api/v1/runs")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", rec.Code)
	}
	var summaries []catalog.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &summaries); err != nil {
		t.Fatalf("decoding summaries: %v", err)
	}
	if len(summaries) != 1 || summaries[0].ID != run.ID {
		t.Fatalf("summaries = %+v", summaries)
	}

	rec = get(t, s, "/api/v1/runs/"+run.ID)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", rec.Code)
	}

	if rec := get(t, s, "/api/v1/runs/nope"); rec.Code != http.StatusNotFound {
		t.Errorf("missing run = %d, want 404", rec.Code)
	}
}

func TestEnumerationRecordsRun(t *testing.T) {
	store := catalog.NewMemoryStore()
	s := newTestServer(t, store)

	if rec := get(t, s, "/api/v1/enumerations/2"); rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	run, err := store.LatestRun(context.Background(), 2)
	if err != nil {
		t.Fatalf("LatestRun: %v", err)
	}
	if run.Genus != 2 || run.Count != 1 {
		t.Errorf("run = genus %d count %d, want genus 2 count 1", run.Genus, run.Count)
	}

	// A cached response must not append another run.
	if rec := get(t, s, "/api/v1/enumerations/2"); rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	summaries, err := store.ListRuns(context.Background())
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(summaries) != 1 {
		t.Errorf("runs = %d, want 1", len(summaries))
	}
}

func TestRunsDisabledWithoutStore(t *testing.T) {
	s := newTestServer(t, nil)
	if rec := get(t, s, "/api/v1/runs"); rec.Code != http.StatusNotFound {
		t.Errorf("GET /runs without store = %d, want 404", rec.Code)
	}
}
