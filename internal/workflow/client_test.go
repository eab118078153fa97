package workflow

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"load-relay/internal/loads"
)

func TestForward_PostsPayloadWithKeyHeader(t *testing.T) {
	var gotKey, gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
	}))
	defer srv.Close()

	c := NewClient(Config{URL: srv.URL, APIKey: "wf2-secret"})
	call := loads.Call{Origin: "Chicago, IL", Destination: "Dallas, TX", TypeOfCall: loads.TypeNewCall}

	if err := c.Forward(context.Background(), call); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gotKey != "wf2-secret" {
		t.Fatalf("expected X-API-Key header, got %q", gotKey)
	}
	if gotContentType != "application/json" {
		t.Fatalf("expected json content type, got %q", gotContentType)
	}

	var decoded loads.Call
	if err := json.Unmarshal(gotBody, &decoded); err != nil {
		t.Fatalf("body not json: %v", err)
	}
	if decoded != call {
		t.Fatalf("expected full payload forwarded, got %+v", decoded)
	}
}

func TestForward_IgnoresDownstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(Config{URL: srv.URL, APIKey: "k"})
	if err := c.Forward(context.Background(), loads.Call{}); err != nil {
		t.Fatalf("non-2xx downstream status must not be an error, got %v", err)
	}
}

func TestForward_TransportFailureIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed on purpose

	c := NewClient(Config{URL: srv.URL, APIKey: "k"})
	if err := c.Forward(context.Background(), loads.Call{}); err == nil {
		t.Fatalf("expected transport error")
	}
}
