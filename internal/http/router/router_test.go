package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	apppokemon "pokeproxy/internal/app/pokemon"
	"pokeproxy/internal/clients/pokeapi"
	"pokeproxy/internal/config"
	"pokeproxy/internal/http/handlers/health"
	pokemonhandler "pokeproxy/internal/http/handlers/pokemon"
	"pokeproxy/internal/logging"
)

const testOrigin = "http://localhost:3000"

// fakeUpstream mimics the subset of the Pokémon API the service consumes.
type fakeUpstream struct {
	*httptest.Server

	mu       sync.Mutex
	requests []string

	typeMembers int
	listSize    int
	failDetail  int
	// bodies replaces the canned 200 body for a path (relative to /api/v2/).
	bodies map[string]string
}

func newFakeUpstream(t *testing.T) *fakeUpstream {
	t.Helper()
	u := &fakeUpstream{typeMembers: 20, listSize: 20, bodies: map[string]string{}}
	u.Server = httptest.NewServer(http.HandlerFunc(u.serve))
	t.Cleanup(u.Close)
	return u
}

func (u *fakeUpstream) detailURL(id int) string {
	return fmt.Sprintf("%s/api/v2/pokemon/%d/", u.URL, id)
}

func (u *fakeUpstream) seen() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.requests...)
}

func (u *fakeUpstream) serve(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	u.requests = append(u.requests, r.URL.RequestURI())
	u.mu.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/api/v2/")
	w.Header().Set("Content-Type", "application/json")

	if body, ok := u.bodies[path]; ok {
		_, _ = fmt.Fprint(w, body)
		return
	}

	switch {
	case path == "type":
		_, _ = fmt.Fprint(w, `{"count":18,"results":[{"name":"normal","url":"https://pokeapi.co/api/v2/type/1/"}]}`)

	case path == "type/4":
		members := make([]string, 0, u.typeMembers)
		for i := 1; i <= u.typeMembers; i++ {
			members = append(members, fmt.Sprintf(`{"slot":1,"pokemon":{"name":"mon-%d","url":%q}}`, i, u.detailURL(i)))
		}
		_, _ = fmt.Fprintf(w, `{"id":4,"name":"poison","pokemon":[%s]}`, strings.Join(members, ","))

	case path == "pokemon":
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		results := make([]string, 0, u.listSize)
		for i := offset + 1; i <= offset+u.listSize; i++ {
			results = append(results, fmt.Sprintf(`{"name":"mon-%d","url":%q}`, i, u.detailURL(i)))
		}
		_, _ = fmt.Fprintf(w, `{"count":1302,"results":[%s]}`, strings.Join(results, ","))

	case path == "pokemon/pikachu":
		_, _ = fmt.Fprint(w, pokemonJSON(25, "pikachu"))

	case strings.HasPrefix(path, "pokemon/"):
		id, err := strconv.Atoi(strings.Trim(strings.TrimPrefix(path, "pokemon/"), "/"))
		if err != nil || id == u.failDetail {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		// Later ids answer faster so completion order differs from list order.
		time.Sleep(time.Duration(max(0, 25-id)) * time.Millisecond)
		_, _ = fmt.Fprint(w, pokemonJSON(id, fmt.Sprintf("mon-%d", id)))

	default:
		http.Error(w, "Not Found", http.StatusNotFound)
	}
}

func pokemonJSON(id int, name string) string {
	return fmt.Sprintf(`{"id":%d,"name":%q,"weight":%d,"height":4,"base_experience":112,
		"stats":[{"base_stat":35,"stat":{"name":"hp"}}],
		"types":[{"slot":1,"type":{"name":"electric"}}],
		"abilities":[{"ability":{"name":"static"}}],
		"moves":[{"move":{"name":"mega-punch"}}],
		"sprites":{"front_default":"https://img/%d.png","back_default":"https://img/back/%d.png"}}`,
		id, name, id*10, id, id)
}

func newTestServer(t *testing.T, upstream *fakeUpstream) http.Handler {
	t.Helper()
	logger := logging.NewNop()

	client, err := pokeapi.New(upstream.URL+"/api/v2/", 0, logger)
	if err != nil {
		t.Fatalf("pokeapi.New() error: %v", err)
	}
	svc := apppokemon.NewService(client, apppokemon.NoopEvents{}, logger)

	return NewRouter(
		logger,
		config.HTTPConfig{RequestTimeout: 5 * time.Second},
		config.CORSConfig{AllowedOrigin: testOrigin},
		health.NewHandler(),
		pokemonhandler.NewHandler(svc, logger),
	)
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

type pageBody struct {
	Count   int `json:"count"`
	Results []struct {
		ID      int             `json:"id"`
		Name    string          `json:"name"`
		Stats   json.RawMessage `json:"stats"`
		Types   json.RawMessage `json:"types"`
		Moves   json.RawMessage `json:"moves"`
		Sprites map[string]any  `json:"sprites"`
	} `json:"results"`
}

func decodePage(t *testing.T, rec *httptest.ResponseRecorder) pageBody {
	t.Helper()
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var body pageBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestListTypesEndToEnd(t *testing.T) {
	h := newTestServer(t, newFakeUpstream(t))

	rec := get(t, h, "/api/pokemon/types")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	want := `{"count":18,"results":[{"name":"normal","id":"1"}]}` + "\n"
	if rec.Body.String() != want {
		t.Errorf("body = %s, want %s", rec.Body.String(), want)
	}
}

func TestListEndToEnd(t *testing.T) {
	upstream := newFakeUpstream(t)
	h := newTestServer(t, upstream)

	body := decodePage(t, get(t, h, "/api/pokemon?offset=0"))

	if body.Count != 1302 {
		t.Errorf("count = %d, want upstream total 1302", body.Count)
	}
	if len(body.Results) != 20 {
		t.Fatalf("len(results) = %d, want 20", len(body.Results))
	}
	for i, r := range body.Results {
		if r.ID != i+1 {
			t.Errorf("results[%d].id = %d, want %d", i, r.ID, i+1)
		}
		if r.Moves != nil {
			t.Errorf("results[%d] should not carry moves", i)
		}
		if len(r.Sprites) != 1 || r.Sprites["front_default"] != fmt.Sprintf("https://img/%d.png", i+1) {
			t.Errorf("results[%d].sprites = %v", i, r.Sprites)
		}
	}

	if first := upstream.seen()[0]; first != "/api/v2/pokemon?limit=20&offset=0" {
		t.Errorf("first upstream request = %q", first)
	}
}

func TestListDetailFailureFailsWholeRequest(t *testing.T) {
	upstream := newFakeUpstream(t)
	upstream.failDetail = 7
	h := newTestServer(t, upstream)

	rec := get(t, h, "/api/pokemon?offset=0")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if body := rec.Body.String(); !strings.HasPrefix(body, "Error al listar. ") {
		t.Errorf("body = %q", body)
	}
}

func TestListByTypeOffsetPastMembers(t *testing.T) {
	upstream := newFakeUpstream(t)
	h := newTestServer(t, upstream)

	body := decodePage(t, get(t, h, "/api/pokemon/types/4?offset=25"))

	if body.Count != 20 {
		t.Errorf("count = %d, want 20", body.Count)
	}
	if body.Results == nil || len(body.Results) != 0 {
		t.Errorf("results = %v, want []", body.Results)
	}
	if n := len(upstream.seen()); n != 1 {
		t.Errorf("upstream saw %d requests, want only the type lookup", n)
	}
}

func TestListByTypeWindow(t *testing.T) {
	upstream := newFakeUpstream(t)
	upstream.typeMembers = 30
	h := newTestServer(t, upstream)

	body := decodePage(t, get(t, h, "/api/pokemon/types/4?offset=25"))

	if body.Count != 30 {
		t.Errorf("count = %d, want 30", body.Count)
	}
	if len(body.Results) != 5 || body.Results[0].ID != 26 || body.Results[4].ID != 30 {
		t.Errorf("results = %+v", body.Results)
	}
}

func TestSearchNormalizesBeforeUpstream(t *testing.T) {
	upstream := newFakeUpstream(t)
	h := newTestServer(t, upstream)

	rec := get(t, h, "/api/pokemon/%20PIKACHU%20")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := upstream.seen(); len(got) != 1 || got[0] != "/api/v2/pokemon/pikachu" {
		t.Errorf("upstream requests = %v", got)
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, key := range []string{"id", "name", "stats", "types", "abilities", "moves", "weight", "sprites"} {
		if _, ok := body[key]; !ok {
			t.Errorf("response missing %q", key)
		}
	}
	if len(body) != 8 {
		t.Errorf("response has %d fields, want 8: %s", len(body), rec.Body.String())
	}
	if string(body["sprites"]) != `{"front_default":"https://img/25.png"}` {
		t.Errorf("sprites = %s", body["sprites"])
	}
}

func TestSearchNotFound(t *testing.T) {
	h := newTestServer(t, newFakeUpstream(t))

	rec := get(t, h, "/api/pokemon/MissingNo")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := rec.Body.String(); body != "No se encuentra el Pokémon missingno" {
		t.Errorf("body = %q", body)
	}
}

func TestUpstreamDownIsReportedAs404(t *testing.T) {
	upstream := newFakeUpstream(t)
	h := newTestServer(t, upstream)
	upstream.Close()

	rec := get(t, h, "/api/pokemon/types")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if body := rec.Body.String(); !strings.HasPrefix(body, "Error al listar. get type: ") {
		t.Errorf("body = %q", body)
	}
}

func TestMalformedUpstreamBodyIsReportedAs404(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   string
		target string
		want   string
	}{
		{"types empty body", "type", "", "/api/pokemon/types", "Error al listar. get type: empty body"},
		{"types without results", "type", `{}`, "/api/pokemon/types", `Error al listar. get type: missing field "results"`},
		{"type empty body", "type/4", "", "/api/pokemon/types/4", "Error al listar. get type 4: empty body"},
		{"type without members", "type/4", `{}`, "/api/pokemon/types/4", `Error al listar. get type 4: missing field "pokemon"`},
		{"type with null members", "type/4", `{"id":4,"name":"poison","pokemon":null}`, "/api/pokemon/types/4", `Error al listar. get type 4: missing field "pokemon"`},
		{"list empty body", "pokemon", "", "/api/pokemon", "Error al listar. get pokemon list: empty body"},
		{"list without results", "pokemon", `{}`, "/api/pokemon", `Error al listar. get pokemon list: missing field "results"`},
		{"types invalid json", "type", `{"count":`, "/api/pokemon/types", "Error al listar. get type: unmarshal body: "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := newFakeUpstream(t)
			upstream.bodies[tt.path] = tt.body
			h := newTestServer(t, upstream)

			rec := get(t, h, tt.target)
			if rec.Code != http.StatusNotFound {
				t.Fatalf("status = %d, want 404, body = %s", rec.Code, rec.Body.String())
			}
			if body := rec.Body.String(); !strings.HasPrefix(body, tt.want) {
				t.Errorf("body = %q, want prefix %q", body, tt.want)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	h := newTestServer(t, newFakeUpstream(t))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", testOrigin)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != testOrigin {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Access-Control-Allow-Credentials = %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("foreign origin got Access-Control-Allow-Origin = %q", got)
	}
}

func TestAmbientRoutes(t *testing.T) {
	h := newTestServer(t, newFakeUpstream(t))

	tests := []struct {
		target string
		status int
	}{
		{"/health", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/api-docs/doc.json", http.StatusOK},
		{"/api-docs", http.StatusMovedPermanently},
		{"/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		if rec := get(t, h, tt.target); rec.Code != tt.status {
			t.Errorf("GET %s status = %d, want %d", tt.target, rec.Code, tt.status)
		}
	}
}
