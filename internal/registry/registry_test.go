package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCratesIO_Latest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/crates/sccache" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("missing User-Agent header")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"crate":{"id":"sccache","max_version":"0.8.2"}}`))
	}))
	defer srv.Close()

	r := &CratesIO{BaseURL: srv.URL, Client: srv.Client()}
	v, err := r.Latest(context.Background(), "sccache")
	if err != nil {
		t.Fatalf("Latest error: %v", err)
	}
	if v != "0.8.2" {
		t.Fatalf("Latest = %q, want 0.8.2", v)
	}
}

func TestCratesIO_ErrorsMapToNoAnswer(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"not found": func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		},
		"bad json": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"crate":`))
		},
		"empty version": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"crate":{}}`))
		},
	}
	for name, h := range cases {
		srv := httptest.NewServer(h)
		r := &CratesIO{BaseURL: srv.URL, Client: srv.Client()}
		if v, err := r.Latest(context.Background(), "sccache"); err == nil {
			t.Errorf("%s: expected error, got %q", name, v)
		}
		srv.Close()
	}
}

func TestNPM_Latest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/left-pad/latest" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"left-pad","version":"1.3.0"}`))
	}))
	defer srv.Close()

	r := &NPM{BaseURL: srv.URL, Client: srv.Client()}
	v, err := r.Latest(context.Background(), "left-pad")
	if err != nil {
		t.Fatalf("Latest error: %v", err)
	}
	if v != "1.3.0" {
		t.Fatalf("Latest = %q, want 1.3.0", v)
	}
}

func TestProbe_ContextDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`{"crate":{"max_version":"1.0.0"}}`))
	}))
	defer srv.Close()

	r := &CratesIO{BaseURL: srv.URL, Client: srv.Client()}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	if v, err := r.Latest(ctx, "sccache"); err == nil {
		t.Fatalf("expected deadline error, got %q", v)
	}
}
