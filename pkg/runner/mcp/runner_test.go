package mcp

import (
	"context"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/2yum7/forword/pkg/app"
	"github.com/2yum7/forword/pkg/store"
)

func TestParseTransport(t *testing.T) {
	tests := map[string]Transport{
		"":       TransportStdio,
		"stdio":  TransportStdio,
		" HTTP ": TransportHTTP,
		"http":   TransportHTTP,
	}
	for in, want := range tests {
		got, err := ParseTransport(in)
		if err != nil {
			t.Fatalf("ParseTransport(%q) failed: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseTransport(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseTransport("carrier-pigeon"); err == nil {
		t.Fatalf("expected error for unknown transport")
	}
}

func TestEndpointPath(t *testing.T) {
	tests := map[string]string{
		"":         DefaultEndpointPath,
		"  ":       DefaultEndpointPath,
		"journal":  "/journal",
		"/journal": "/journal",
	}
	for in, want := range tests {
		if got := EndpointPath(in); got != want {
			t.Errorf("EndpointPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestListenURL(t *testing.T) {
	addr := &net.TCPAddr{IP: net.IPv4zero, Port: 7733}
	if got := ListenURL(addr, "0.0.0.0", "/forword/mcp", false); got != "http://127.0.0.1:7733/forword/mcp" {
		t.Errorf("unexpected url %s", got)
	}
	v6 := &net.TCPAddr{IP: net.IPv6loopback, Port: 9000}
	if got := ListenURL(v6, "::1", "/m", true); got != "https://[::1]:9000/m" {
		t.Errorf("unexpected url %s", got)
	}
}

func TestRunnerServesHTTPUntilCancelled(t *testing.T) {
	p, err := store.Load(dirConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	urls := make(chan string, 1)
	r := Runner{
		App:         app.NewService(p),
		Transport:   TransportHTTP,
		Port:        0,
		OnListening: func(url string) { urls <- url },
	}
	done := make(chan error, 1)
	go func() { done <- r.Do(ctx) }()

	var url string
	select {
	case url = <-urls:
	case err := <-done:
		t.Fatalf("runner exited early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("server never listened")
	}
	if !strings.HasSuffix(url, DefaultEndpointPath) {
		t.Fatalf("expected default endpoint, got %s", url)
	}

	// Only the endpoint path is routed.
	resp, err := http.Get(strings.TrimSuffix(url, DefaultEndpointPath) + "/elsewhere")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 off the endpoint, got %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatalf("server did not stop")
	}
}
