package openrouter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Parallel()

	if client := NewClient(Config{}); client != nil {
		t.Fatal("expected nil client without an api key")
	}
	if client := NewClient(Config{APIKey: "   "}); client != nil {
		t.Fatal("expected nil client for a blank api key")
	}
}

func TestCheckModelSendsAttributionHeaders(t *testing.T) {
	t.Parallel()

	var gotPath, gotReferer, gotTitle, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotReferer = r.Header.Get("HTTP-Referer")
		gotTitle = r.Header.Get("X-Title")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"test-model","object":"model","created":0,"owned_by":"test"}`))
	}))
	defer srv.Close()

	client := NewClient(Config{
		APIKey:   "secret",
		BaseURL:  srv.URL,
		SiteURL:  "https://kitnetlab.example",
		SiteName: "Kitnet Agent",
	})
	if client == nil {
		t.Fatal("expected a client")
	}

	if err := CheckModel(context.Background(), client, "test-model"); err != nil {
		t.Fatalf("unexpected preflight error: %v", err)
	}

	if !strings.HasSuffix(gotPath, "/models/test-model") {
		t.Fatalf("unexpected request path: %q", gotPath)
	}
	if gotReferer != "https://kitnetlab.example" {
		t.Fatalf("HTTP-Referer not sent, got %q", gotReferer)
	}
	if gotTitle != "Kitnet Agent" {
		t.Fatalf("X-Title not sent, got %q", gotTitle)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
}

func TestCheckModelFailures(t *testing.T) {
	t.Parallel()

	if err := CheckModel(context.Background(), nil, "test-model"); err == nil {
		t.Fatal("expected error for nil client")
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"unauthorized"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "wrong", BaseURL: srv.URL})
	if client == nil {
		t.Fatal("expected a client")
	}

	if err := CheckModel(context.Background(), client, "  "); err == nil {
		t.Fatal("expected error for empty model name")
	}
	if err := CheckModel(context.Background(), client, "test-model"); err == nil {
		t.Fatal("expected error on unauthorized lookup")
	}
}
