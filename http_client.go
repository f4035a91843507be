package redfish

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Executor is the pluggable "execute one HTTP request" strategy shared by
// both facades. *http.Client satisfies it.
type Executor interface {
	Do(req *http.Request) (*http.Response, error)
}

type httpClient struct {
	exec      Executor
	cfg       Config
	auth      Auth
	logger    Logger
	redactMap map[string]struct{}
}

func newHTTPClient(cfg Config, auth Auth, exec Executor) *httpClient {
	if exec == nil {
		transport := &http.Transport{
			Proxy: http.ProxyFromEnvironment,
		}
		if cfg.InsecureSkipVerify {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		}
		exec = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		}
	}

	logger := cfg.Logger
	if cfg.Debug && logger == nil {
		logger = log.New(os.Stdout, "redfish ", log.LstdFlags)
	}

	redactions := map[string]struct{}{}
	for _, h := range cfg.RedactHeaders {
		redactions[strings.ToLower(h)] = struct{}{}
	}

	return &httpClient{
		exec:      exec,
		cfg:       cfg,
		auth:      auth,
		logger:    logger,
		redactMap: redactions,
	}
}

func (c *httpClient) close() {
	if t, ok := c.exec.(interface{ CloseIdleConnections() }); ok {
		t.CloseIdleConnections()
	}
}

// getJSON performs one GET against the api fragment and decodes the body
// into out. Non-2xx responses produce a status error without reading the
// body into the decoder; the body is drained so the connection can be
// reused.
func (c *httpClient) getJSON(ctx context.Context, api string, out any) error {
	if ctx == nil {
		ctx = context.Background()
	}

	uri := buildURI(c.cfg.Host, c.cfg.Port, c.cfg.APIVersion, api)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return transportError(uri, err)
	}
	c.auth.apply(req)
	c.logRequest(req)

	start := time.Now()
	resp, err := c.exec.Do(req)
	if err != nil {
		return transportError(uri, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.logResponse(req, resp, time.Since(start))
		return statusError(uri, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(uri, err)
	}
	c.logResponse(req, resp, time.Since(start))

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return decodeError(uri, err)
	}
	if err := validateDecoded(out); err != nil {
		return decodeError(uri, err)
	}
	return nil
}

// validateDecoded enforces the schema's required fields after decoding, so
// a body missing them surfaces as a decode error instead of a silently
// zeroed value. Non-struct targets (e.g. json.RawMessage) are skipped.
func validateDecoded(out any) error {
	v := reflect.ValueOf(out)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	err := validate.Struct(v.Interface())
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return nil
	}
	return err
}

// fetch decodes one resource document into T.
func fetch[T any](ctx context.Context, c *httpClient, api string) (T, error) {
	var out T
	if err := c.getJSON(ctx, api, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func (c *httpClient) logf(format string, args ...any) {
	if c.logger == nil || !c.cfg.Debug {
		return
	}
	c.logger.Printf(format, args...)
}

func (c *httpClient) logRequest(req *http.Request) {
	c.logf("[request] GET %s headers=%v", req.URL.String(), c.redactedHeaders(req.Header))
}

func (c *httpClient) logResponse(req *http.Request, resp *http.Response, duration time.Duration) {
	c.logf("[response] GET %s status=%d duration=%s", req.URL.String(), resp.StatusCode, duration)
}

func (c *httpClient) redactedHeaders(h http.Header) http.Header {
	if len(c.redactMap) == 0 {
		return h
	}
	cloned := cloneHeaders(h)
	for k := range cloned {
		if _, ok := c.redactMap[strings.ToLower(k)]; ok {
			cloned.Set(k, "[redacted]")
		}
	}
	return cloned
}
