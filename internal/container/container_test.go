package container

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saulo-duarte/studylens/internal/completion"
	"github.com/saulo-duarte/studylens/internal/config"
)

type stubGateway string

func (g stubGateway) Complete(context.Context, []completion.Message) (string, error) {
	return string(g), nil
}

func TestRouterWiring(t *testing.T) {
	settings := &config.Settings{AllowedOrigins: []string{"chrome-extension://abc"}}
	c := build(settings, nil, stubGateway("- point one\n- point two"))
	h := c.Router()

	t.Run("Health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("Summary", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/summary", strings.NewReader(`{"text":"cells"}`)))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var resp struct {
			Summary string `json:"summary"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil || !strings.HasPrefix(resp.Summary, "- point one") {
			t.Errorf("unexpected summary %q (%v)", resp.Summary, err)
		}
	})

	t.Run("HistoryWithoutDatabase", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/history", nil))
		if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"history":[]`) {
			t.Errorf("expected empty history, got %d %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("QuizExtractionFailure", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/quiz", strings.NewReader(`{"text":"cells"}`)))
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("expected 500 for non-JSON model output, got %d", rec.Code)
		}
	})

	t.Run("CORSPreflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/quiz", nil)
		req.Header.Set("Origin", "chrome-extension://abc")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "chrome-extension://abc" {
			t.Errorf("unexpected allow-origin %q", got)
		}
	})
}
