package redfish

import (
	"net/http"
	"testing"
)

func TestAuthDefaultHeaders(t *testing.T) {
	auth := newAuth(Config{Host: "bmc01"})

	req, err := http.NewRequest(http.MethodGet, "https://bmc01/Managers/", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	auth.apply(req)

	if got := req.Header.Get("Accept"); got != "application/json" {
		t.Fatalf("Accept = %q", got)
	}
	if got := req.Header.Get("Content-Type"); got != "application/json" {
		t.Fatalf("Content-Type = %q", got)
	}
	if got := req.Header.Get("User-Agent"); got != userAgent {
		t.Fatalf("User-Agent = %q", got)
	}
}

func TestAuthBasicCredentials(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		password string
		want     string
	}{
		{
			name:     "UserAndPassword",
			user:     "admin",
			password: "x",
			// base64("admin:x")
			want: "Basic YWRtaW46eA==",
		},
		{
			name: "UserWithoutPassword",
			user: "admin",
			// base64("admin:")
			want: "Basic YWRtaW46",
		},
		{
			name:     "PasswordWithoutUserSendsNothing",
			password: "x",
			want:     "",
		},
		{
			name: "Unauthenticated",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := newAuth(Config{Host: "bmc01", User: tt.user, Password: tt.password})
			req, err := http.NewRequest(http.MethodGet, "https://bmc01/Managers/", nil)
			if err != nil {
				t.Fatalf("new request: %v", err)
			}
			auth.apply(req)
			if got := req.Header.Get("Authorization"); got != tt.want {
				t.Fatalf("Authorization = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAuthExtraHeaders(t *testing.T) {
	extra := http.Header{}
	extra.Set("X-Custom", "yes")
	auth := newAuth(Config{Host: "bmc01", ExtraHeaders: extra})

	req, err := http.NewRequest(http.MethodGet, "https://bmc01/Managers/", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	auth.apply(req)

	if got := req.Header.Get("X-Custom"); got != "yes" {
		t.Fatalf("X-Custom = %q", got)
	}
}

func TestAuthHeaderOnWire(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Name":"Managers","Members":[]}`))
	})

	server, cfg, exec := newTestServer(t, handler)
	defer server.Close()

	cfg.User = "admin"
	cfg.Password = "x"
	client, err := NewClientWithExecutor(cfg, exec)
	if err != nil {
		t.Fatalf("build client: %v", err)
	}
	defer client.Close()

	if _, err := client.GetManagerStatus(); err != nil {
		t.Fatalf("get manager status: %v", err)
	}
	if gotAuth != "Basic YWRtaW46eA==" {
		t.Fatalf("Authorization on wire = %q", gotAuth)
	}
}
