package redfish

import (
	"net/http"
)

const userAgent = "redfish-go/0.1.0"

// Auth produces the fixed request headers and conditionally attaches HTTP
// Basic credentials. It is a request-building step shared by both facades,
// independent of how the request is executed.
type Auth struct {
	cfg Config
}

func newAuth(cfg Config) Auth {
	return Auth{cfg: cfg}
}

// Headers returns the headers sent with every request.
func (a Auth) Headers() http.Header {
	h := http.Header{}
	h.Set("Accept", "application/json")
	// Content-Type on a GET is unusual, but some BMC firmware expects it.
	h.Set("Content-Type", "application/json")
	h.Set("User-Agent", userAgent)
	return h
}

// apply decorates req with the default headers, any configured extra
// headers, and Basic auth when a user is configured. A password without a
// user is ignored.
func (a Auth) apply(req *http.Request) {
	for k, vals := range a.Headers() {
		for _, v := range vals {
			req.Header.Set(k, v)
		}
	}
	for k, vals := range a.cfg.ExtraHeaders {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}
	if a.cfg.User != "" {
		req.SetBasicAuth(a.cfg.User, a.cfg.Password)
	}
}
