package redfish

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
)

// newTestServer starts a TLS test server and returns a Config and Executor
// pointed at it. The executor trusts the server's self-signed certificate.
func newTestServer(t *testing.T, handler http.Handler) (*httptest.Server, Config, Executor) {
	t.Helper()
	server := httptest.NewTLSServer(handler)
	u, err := url.Parse(server.URL)
	if err != nil {
		t.Fatalf("parse test server url: %v", err)
	}
	port, err := strconv.Atoi(u.Port())
	if err != nil {
		t.Fatalf("parse test server port: %v", err)
	}
	cfg := Config{Host: u.Hostname(), Port: port}
	return server, cfg, server.Client()
}

// newTestClient builds a blocking client against a fresh test server.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server, cfg, exec := newTestServer(t, handler)
	client, err := NewClientWithExecutor(cfg, exec)
	if err != nil {
		t.Fatalf("build test client: %v", err)
	}
	return client, server
}
