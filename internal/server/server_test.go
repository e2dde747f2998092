package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestServer_ServeHTTPHandler(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	srv, err := New("127.0.0.1:0")
	if err != nil {
		t.Fatalf("unable to create server: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		done <- srv.ServeHTTPHandler(ctx, HandleHealth(ctx))
	}()

	resp, err := http.Get("http://" + srv.Addr() + "/health")
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || string(body) != `{"status": "ok"}` {
		t.Errorf("health got: %d %s, expected: 200 {\"status\": \"ok\"}", resp.StatusCode, body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("serve must stop without error, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not stop after context cancel")
	}
}

func TestHandleHealth_Cancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := httptest.NewRecorder()
	HandleHealth(ctx).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("health status got: %d, expected: %d", rec.Code, http.StatusServiceUnavailable)
	}
}
