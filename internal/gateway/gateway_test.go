package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestOKResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("expected bearer header, got %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("expected json content type, got %q", got)
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	resp, err := c.Do(context.Background(), http.MethodPost, "/memories", nil, map[string]any{"x": 1}, "sk-test")
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	if !resp.OK() {
		t.Errorf("expected ok, got status %d", resp.StatusCode)
	}

	var body struct {
		Success bool `json:"success"`
	}
	if err := resp.Decode(&body); err != nil || !body.Success {
		t.Errorf("decode failed: %v %+v", err, body)
	}
}

func TestClientRejectionIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"error":"title too short"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	resp, err := c.Do(context.Background(), http.MethodPost, "/memories", nil, nil, "")
	if err != nil {
		t.Fatalf("4xx must pass through as a response, got error: %v", err)
	}
	if resp.OK() {
		t.Error("400 must not report OK")
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}

func TestServerErrorClassification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.Do(context.Background(), http.MethodGet, "/memories/trending", nil, nil, "")

	var se *ServerError
	if !errors.As(err, &se) {
		t.Fatalf("expected *ServerError, got %T: %v", err, err)
	}
	if se.StatusCode != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", se.StatusCode)
	}
}

func TestNetworkErrorClassification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(srv.URL, nil)
	_, err := c.Do(context.Background(), http.MethodGet, "/memories/search", nil, nil, "")

	var ne *NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("expected *NetworkError, got %T: %v", err, err)
	}
}

func TestTimeoutIsNetworkError(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer func() {
		close(block)
		srv.Close()
	}()

	c := New(srv.URL, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Do(ctx, http.MethodGet, "/memories/search", nil, nil, "")

	var ne *NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("expected *NetworkError on timeout, got %T: %v", err, err)
	}
}

func TestQueryEncoding(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", nil) // trailing slash must not double up
	q := map[string][]string{"q": {"rate limiting"}, "limit": {"5"}}
	if _, err := c.Do(context.Background(), http.MethodGet, "/memories/search", q, nil, ""); err != nil {
		t.Fatalf("do: %v", err)
	}
	if gotQuery != "limit=5&q=rate+limiting" {
		t.Errorf("unexpected query: %q", gotQuery)
	}
}
