package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

// TestClientFetch tests basic fetching behavior.
func TestClientFetch(t *testing.T) {
	t.Parallel()

	t.Run("fetches page body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html><body>hello</body></html>"))
		}))
		defer srv.Close()

		client := NewClient()
		body, err := client.Fetch(context.Background(), srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(body, "hello") {
			t.Errorf("unexpected body: %q", body)
		}
	})

	t.Run("sends user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.UserAgent()
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		client := NewClient(WithUserAgent("TestAgent/1.0"))
		if _, err := client.Fetch(context.Background(), srv.URL); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotUA != "TestAgent/1.0" {
			t.Errorf("expected custom user agent, got %q", gotUA)
		}
	})

	t.Run("truncates large bodies", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(strings.Repeat("x", 4096)))
		}))
		defer srv.Close()

		client := NewClient(WithMaxBodySize(128))
		body, err := client.Fetch(context.Background(), srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(body) != 128 {
			t.Errorf("expected 128 bytes, got %d", len(body))
		}
	})

	t.Run("rejects non-2xx status", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := NewClient()
		if _, err := client.Fetch(context.Background(), srv.URL); !errors.Is(err, ErrBadStatus) {
			t.Errorf("expected ErrBadStatus, got %v", err)
		}
	})

	t.Run("rejects empty url", func(t *testing.T) {
		t.Parallel()

		client := NewClient()
		if _, err := client.Fetch(context.Background(), ""); !errors.Is(err, ErrEmptyURL) {
			t.Errorf("expected ErrEmptyURL, got %v", err)
		}
	})

	t.Run("rejects non-http schemes", func(t *testing.T) {
		t.Parallel()

		client := NewClient()
		if _, err := client.Fetch(context.Background(), "file:///etc/passwd"); !errors.Is(err, ErrUnsupportedScheme) {
			t.Errorf("expected ErrUnsupportedScheme, got %v", err)
		}
	})

	t.Run("times out slow servers", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(500 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		client := NewClient(WithTimeout(50 * time.Millisecond))
		if _, err := client.Fetch(context.Background(), srv.URL); err == nil {
			t.Error("expected timeout error")
		}
	})
}

// TestClientConcurrentInit tests that concurrent first fetches initialize
// the underlying client exactly once and race-free.
func TestClientConcurrentInit(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := client.Fetch(context.Background(), srv.URL); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()
}

// TestClientRedirectLimit tests that redirect chains are bounded.
func TestClientRedirectLimit(t *testing.T) {
	t.Parallel()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Redirect to itself forever.
		http.Redirect(w, r, srv.URL, http.StatusFound)
	}))
	defer srv.Close()

	client := NewClient()
	if _, err := client.Fetch(context.Background(), srv.URL); err == nil {
		t.Error("expected error on endless redirect chain")
	}
}
