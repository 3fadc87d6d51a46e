package bootstrap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"coffee-backend/internal/shared/config"
)

func testConfig() config.Config {
	return config.Config{
		Port:            "8080",
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:3000"},
		CafeCacheTTL:    time.Hour,
		CafeSearchRate:  30,
	}
}

func buildTestApp(t *testing.T, cfg config.Config) *App {
	t.Helper()
	app, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return app
}

func doRequest(app *App, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	app := buildTestApp(t, testConfig())
	w := doRequest(app, http.MethodGet, "/api/v1/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestQuizSubmitAndFetchResult(t *testing.T) {
	app := buildTestApp(t, testConfig())

	body := `{
		"milkPreference": "black",
		"temperature": "hot",
		"flavorPreference": "chocolatey",
		"coffeeContext": "home",
		"equipment": "french-press"
	}`
	w := doRequest(app, http.MethodPost, "/api/v1/quiz/submit", body, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("submit status = %d, body = %s", w.Code, w.Body.String())
	}

	var submitted struct {
		ID             string `json:"id"`
		ShareSlug      string `json:"shareSlug"`
		Summary        string `json:"summary"`
		Recommendation struct {
			BestMatch struct {
				ID string `json:"id"`
			} `json:"bestMatch"`
			BrewTips struct {
				Method string `json:"method"`
			} `json:"brewTips"`
		} `json:"recommendation"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &submitted); err != nil {
		t.Fatalf("decode submit response: %v", err)
	}
	if len(submitted.ShareSlug) != 10 {
		t.Fatalf("shareSlug = %q, want 10 chars", submitted.ShareSlug)
	}
	if submitted.Recommendation.BestMatch.ID == "" {
		t.Fatal("expected a best match")
	}
	if submitted.Summary == "" {
		t.Error("expected a shareable summary line")
	}
	if submitted.Recommendation.BrewTips.Method != "french-press" {
		t.Errorf("brew method = %q, want french-press", submitted.Recommendation.BrewTips.Method)
	}

	w = doRequest(app, http.MethodGet, "/api/v1/results/"+submitted.ShareSlug, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("fetch status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), submitted.Recommendation.BestMatch.ID) {
		t.Error("fetched result missing best match id")
	}
}

func TestQuizSubmitValidation(t *testing.T) {
	app := buildTestApp(t, testConfig())

	w := doRequest(app, http.MethodPost, "/api/v1/quiz/submit", `{"milkPreference":"oat"}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid_answers") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestResultNotFound(t *testing.T) {
	app := buildTestApp(t, testConfig())

	w := doRequest(app, http.MethodGet, "/api/v1/results/zzzzzzzzzz", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	w = doRequest(app, http.MethodGet, "/api/v1/results/short", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed slug status = %d, want 400", w.Code)
	}
}

func TestCafeSearchRequiresLocation(t *testing.T) {
	app := buildTestApp(t, testConfig())

	w := doRequest(app, http.MethodGet, "/api/v1/cafes", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "missing_location") {
		t.Errorf("body = %s", w.Body.String())
	}

	w = doRequest(app, http.MethodGet, "/api/v1/cafes?lat=120&lng=0", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("out-of-range lat status = %d, want 400", w.Code)
	}
}

func TestAnalyticsTrack(t *testing.T) {
	app := buildTestApp(t, testConfig())

	w := doRequest(app, http.MethodPost, "/api/v1/analytics/track", `{"eventType":"quiz_start"}`, nil)
	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	w = doRequest(app, http.MethodPost, "/api/v1/analytics/track", `{"eventType":"page_view"}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown event status = %d, want 400", w.Code)
	}
}

func TestAdminAnalyticsAuth(t *testing.T) {
	cfg := testConfig()
	app := buildTestApp(t, cfg)

	// no password configured: admin is disabled
	w := doRequest(app, http.MethodGet, "/api/v1/admin/analytics", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 when admin disabled", w.Code)
	}

	cfg.AdminPassword = "sekret"
	app = buildTestApp(t, cfg)

	w = doRequest(app, http.MethodGet, "/api/v1/admin/analytics", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 without credentials", w.Code)
	}

	w = doRequest(app, http.MethodGet, "/api/v1/admin/analytics", "", map[string]string{"Authorization": "Bearer wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 with wrong password", w.Code)
	}

	// submit one quiz so the report has data
	body := `{"milkPreference":"black","temperature":"hot","flavorPreference":"nutty","coffeeContext":"home"}`
	if w := doRequest(app, http.MethodPost, "/api/v1/quiz/submit", body, nil); w.Code != http.StatusCreated {
		t.Fatalf("submit status = %d", w.Code)
	}

	w = doRequest(app, http.MethodGet, "/api/v1/admin/analytics?days=7", "", map[string]string{"Authorization": "Bearer sekret"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var report struct {
		Summary struct {
			QuizCompletions int `json:"quizCompletions"`
			TotalResults    int `json:"totalResults"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.Summary.QuizCompletions != 1 {
		t.Errorf("quizCompletions = %d, want 1", report.Summary.QuizCompletions)
	}
	if report.Summary.TotalResults != 1 {
		t.Errorf("totalResults = %d, want 1", report.Summary.TotalResults)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	app := buildTestApp(t, testConfig())
	w := doRequest(app, http.MethodGet, "/metrics", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "quiz_submitted_total") {
		t.Errorf("metrics body missing counters: %s", w.Body.String()[:200])
	}
}
