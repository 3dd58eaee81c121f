package fetcher

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "hello body")
	}))
	defer server.Close()

	f := NewFetcher()
	body, err := f.GetText(server.URL)
	if err != nil {
		t.Fatalf("GetText() error: %v", err)
	}
	if body != "hello body" {
		t.Errorf("GetText() = %q, want %q", body, "hello body")
	}
}

func TestGetTextNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	f := NewFetcher()
	_, err := f.GetText(server.URL)
	if err == nil {
		t.Fatal("GetText() should fail on 404")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error should be *StatusError, got %T: %v", err, err)
	}
	if statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", statusErr.StatusCode)
	}
}

func TestGetTextFollowsRedirect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/old":
			// Relative redirect, resolved against the original host.
			http.Redirect(w, r, "/new", http.StatusMovedPermanently)
		case "/new":
			fmt.Fprint(w, "moved content")
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	f := NewFetcher()
	body, err := f.GetText(server.URL + "/old")
	if err != nil {
		t.Fatalf("GetText() error: %v", err)
	}
	if body != "moved content" {
		t.Errorf("GetText() = %q, want redirect target body", body)
	}
}

func TestSetRateLimit(t *testing.T) {
	f := NewFetcher()
	f.SetRateLimit(100)
	if f.limiter == nil {
		t.Error("limiter should be set for positive rate")
	}
	f.SetRateLimit(0)
	if f.limiter != nil {
		t.Error("limiter should be cleared for zero rate")
	}
}
