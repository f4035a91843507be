package redfish

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Logger is the minimal logging interface supported by the client.
type Logger interface {
	Printf(format string, v ...any)
}

// APIVersion selects the Redfish protocol version path segment.
//
// The zero value omits the segment entirely; this is deliberately distinct
// from V1, which inserts "redfish/v1". Callers choose explicitly.
type APIVersion int

const (
	// V1 maps to the "redfish/v1" path segment.
	V1 APIVersion = iota + 1
	// V2 maps to the "redfish/v2" path segment.
	V2
)

// String returns the literal path segment, or "" for the zero value.
func (v APIVersion) String() string {
	switch v {
	case V1:
		return "redfish/v1"
	case V2:
		return "redfish/v2"
	default:
		return ""
	}
}

// ParseAPIVersion converts a configuration string such as "v1" into an
// APIVersion. The empty string parses to the zero value (no segment).
func ParseAPIVersion(s string) (APIVersion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return 0, nil
	case "v1", "1", "redfish/v1":
		return V1, nil
	case "v2", "2", "redfish/v2":
		return V2, nil
	default:
		return 0, fmt.Errorf("unknown api version %q", s)
	}
}

// Config holds everything needed to reach one Redfish endpoint. It is
// constructed once and never mutated after a client is built around it.
type Config struct {
	// Host is the IP address or FQDN of the LOM host exposing the endpoint.
	Host string `yaml:"host" validate:"required"`
	// Port the endpoint is exposed at; 0 leaves the port out of the URI.
	Port int `yaml:"port" validate:"gte=0,lte=65535"`
	// APIVersion of the endpoint; the zero value omits the version segment.
	APIVersion APIVersion `yaml:"-"`
	// User with access to the endpoint. Empty means unauthenticated.
	User string `yaml:"user"`
	// Password for User. Ignored when User is empty.
	Password string `yaml:"password"`

	// Timeout for the built-in HTTP client. Zero means no client timeout.
	Timeout time.Duration `yaml:"-"`
	// InsecureSkipVerify disables TLS certificate verification. BMCs
	// commonly ship self-signed certificates.
	InsecureSkipVerify bool `yaml:"insecure_skip_verify"`

	Debug bool `yaml:"debug"`

	ExtraHeaders  http.Header `yaml:"-"`
	Logger        Logger      `yaml:"-"`
	RedactHeaders []string    `yaml:"-"`
}

// ConfigParams provides optional overrides for building a Config.
type ConfigParams struct {
	Host       string
	Port       int
	APIVersion APIVersion
	User       string
	Password   string

	Timeout        time.Duration
	TimeoutSeconds float64

	InsecureSkipVerify *bool
	Debug              *bool

	ExtraHeaders  http.Header
	Logger        Logger
	RedactHeaders []string
}

var validate = validator.New()

// LoadEnv loads variables from .env files into the process environment so
// the REDFISH_* fallbacks below can pick them up. With no arguments it
// loads "./.env".
func LoadEnv(paths ...string) error {
	return godotenv.Load(paths...)
}

// LoadConfig builds a Config from parameters or environment variables.
// Environment fallbacks:
//
//	REDFISH_HOST, REDFISH_PORT, REDFISH_API_VERSION, REDFISH_USER,
//	REDFISH_PASSWORD, REDFISH_TIMEOUT, REDFISH_INSECURE, REDFISH_DEBUG.
func LoadConfig(host, user, password string) (Config, error) {
	return LoadConfigWithParams(ConfigParams{
		Host:     host,
		User:     user,
		Password: password,
	})
}

// LoadConfigWithParams is an extended constructor that accepts structured options.
func LoadConfigWithParams(params ConfigParams) (Config, error) {
	envPort, envPortSet, err := parseEnvInt("REDFISH_PORT")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Host:          firstNonEmpty(params.Host, os.Getenv("REDFISH_HOST")),
		Port:          params.Port,
		APIVersion:    params.APIVersion,
		User:          firstNonEmpty(params.User, os.Getenv("REDFISH_USER")),
		Password:      firstNonEmpty(params.Password, os.Getenv("REDFISH_PASSWORD")),
		ExtraHeaders:  cloneHeaders(params.ExtraHeaders),
		Logger:        params.Logger,
		RedactHeaders: params.RedactHeaders,
	}

	if cfg.Port == 0 && envPortSet {
		cfg.Port = envPort
	}

	if cfg.APIVersion == 0 {
		version, err := ParseAPIVersion(os.Getenv("REDFISH_API_VERSION"))
		if err != nil {
			return Config{}, fmt.Errorf("parse REDFISH_API_VERSION: %w", err)
		}
		cfg.APIVersion = version
	}

	if params.Timeout > 0 {
		cfg.Timeout = params.Timeout
	} else if params.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(params.TimeoutSeconds * float64(time.Second))
	} else if envTimeout, err := parseEnvDuration("REDFISH_TIMEOUT", time.Second); err != nil {
		return Config{}, err
	} else {
		cfg.Timeout = envTimeout
	}
	if cfg.Timeout < 0 {
		return Config{}, fmt.Errorf("timeout must be non-negative")
	}

	if params.InsecureSkipVerify != nil {
		cfg.InsecureSkipVerify = *params.InsecureSkipVerify
	} else if env := os.Getenv("REDFISH_INSECURE"); env != "" {
		val, err := strconv.ParseBool(env)
		if err != nil {
			return Config{}, fmt.Errorf("parse REDFISH_INSECURE: %w", err)
		}
		cfg.InsecureSkipVerify = val
	}

	if params.Debug != nil {
		cfg.Debug = *params.Debug
	} else if env := os.Getenv("REDFISH_DEBUG"); env != "" {
		val, err := strconv.ParseBool(env)
		if err != nil {
			return Config{}, fmt.Errorf("parse REDFISH_DEBUG: %w", err)
		}
		cfg.Debug = val
	}

	if cfg.RedactHeaders == nil {
		cfg.RedactHeaders = []string{"Authorization"}
	}

	if cfg.Host == "" {
		return Config{}, ErrMissingHost
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func parseEnvInt(env string) (int, bool, error) {
	val, ok := os.LookupEnv(env)
	if !ok || val == "" {
		return 0, false, nil
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return 0, true, fmt.Errorf("parse %s: %w", env, err)
	}
	return parsed, true, nil
}

func parseEnvDuration(env string, numericUnit time.Duration) (time.Duration, error) {
	val := os.Getenv(env)
	if val == "" {
		return 0, nil
	}
	if duration, err := time.ParseDuration(val); err == nil {
		return duration, nil
	}
	seconds, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", env, err)
	}
	return time.Duration(seconds * float64(numericUnit)), nil
}

func cloneHeaders(h http.Header) http.Header {
	if h == nil {
		return http.Header{}
	}
	clone := http.Header{}
	for k, vals := range h {
		clone[k] = append([]string(nil), vals...)
	}
	return clone
}
