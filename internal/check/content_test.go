package check

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/linkprotect/linkprotect/internal/config"
	"github.com/linkprotect/linkprotect/internal/fetch"
	"github.com/linkprotect/linkprotect/internal/model"
)

func deepRequest(url string) *model.ScanRequest {
	return &model.ScanRequest{
		URL: url,
		Settings: model.UserSettings{
			AllowContentFetch: true,
			DeepCheck:         true,
		},
	}
}

func newContentCheck(t *testing.T) *ContentCheck {
	t.Helper()

	c, err := NewContentCheck(config.DefaultRules(), fetch.NewClient())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

// TestContentCheck tests the deep page-content check.
func TestContentCheck(t *testing.T) {
	t.Parallel()

	t.Run("vetoes obfuscated inline script", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<html><head><script>eval(unescape('%61%6c%65%72%74'))</script></head></html>`))
		}))
		defer srv.Close()

		got := newContentCheck(t).Check(context.Background(), deepRequest(srv.URL))
		if got.Status != StatusVeto {
			t.Fatalf("expected veto, got %v", got.Status)
		}
		if got.HazardKind != HazardMaliciousContent {
			t.Errorf("unexpected hazard kind %q", got.HazardKind)
		}
	})

	t.Run("vetoes signature in event handler", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<html><body onload="eval(payload)">hi</body></html>`))
		}))
		defer srv.Close()

		got := newContentCheck(t).Check(context.Background(), deepRequest(srv.URL))
		if got.Status != StatusVeto {
			t.Errorf("expected veto, got %v", got.Status)
		}
	})

	t.Run("passes clean page", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<html><body><script>console.log("hello")</script></body></html>`))
		}))
		defer srv.Close()

		got := newContentCheck(t).Check(context.Background(), deepRequest(srv.URL))
		if got.Status != StatusPass {
			t.Errorf("expected pass, got %v (%q)", got.Status, got.Advisory)
		}
	})

	t.Run("prose mentioning eval is not flagged", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<html><body><p>We evaluate (eval) submissions weekly.</p><script>var x = 1;</script></body></html>`))
		}))
		defer srv.Close()

		got := newContentCheck(t).Check(context.Background(), deepRequest(srv.URL))
		if got.Status != StatusPass {
			t.Errorf("expected pass for prose outside scripts, got %v", got.Status)
		}
	})

	t.Run("degrades to advisory on fetch failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		got := newContentCheck(t).Check(context.Background(), deepRequest(srv.URL))
		if got.Status != StatusAdvisory {
			t.Fatalf("expected advisory, got %v", got.Status)
		}
		if got.Advisory != AdvisoryDeepFailed {
			t.Errorf("unexpected advisory %q", got.Advisory)
		}
	})

	t.Run("degrades to advisory on unreachable host", func(t *testing.T) {
		t.Parallel()

		got := newContentCheck(t).Check(context.Background(), deepRequest("https://127.0.0.1:1/nope"))
		if got.Status != StatusAdvisory {
			t.Errorf("expected advisory, got %v", got.Status)
		}
	})

	t.Run("never fetches when deep check is disabled", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		c := newContentCheck(t)

		for _, settings := range []model.UserSettings{
			{AllowContentFetch: false, DeepCheck: false},
			{AllowContentFetch: true, DeepCheck: false},
			{AllowContentFetch: false, DeepCheck: true},
		} {
			req := &model.ScanRequest{URL: srv.URL, Settings: settings}
			if got := c.Check(context.Background(), req); got.Status != StatusPass {
				t.Errorf("settings %+v: expected pass, got %v", settings, got.Status)
			}
		}

		if hits.Load() != 0 {
			t.Errorf("expected no network I/O, server saw %d requests", hits.Load())
		}
	})

	t.Run("custom signature from rules is applied", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<html><script>stealCookies()</script></html>`))
		}))
		defer srv.Close()

		rules := config.DefaultRules()
		rules.ScriptSignatures = []string{`stealCookies\s*\(`}

		c, err := NewContentCheck(rules, fetch.NewClient())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := c.Check(context.Background(), deepRequest(srv.URL)); got.Status != StatusVeto {
			t.Errorf("expected veto from custom signature, got %v", got.Status)
		}
	})
}
