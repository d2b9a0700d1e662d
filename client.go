package qweather

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/foxzool/qweather-sdk/jsonutil"
	"github.com/foxzool/qweather-sdk/sign"
)

const (
	hostAPI    = "https://api.qweather.com"
	hostDevAPI = "https://devapi.qweather.com"
	hostGeoAPI = "https://geoapi.qweather.com"

	defaultTimeout = 10 * time.Second
)

// HTTPDoer is the subset of *http.Client the client needs. Satisfied by
// *http.Client and easy to fake in tests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RequestMutator tweaks an outbound request before dispatch, after the
// query has been signed. Mutators must not touch the query parameters or
// the signature no longer matches.
type RequestMutator func(req *http.Request) error

// Params holds the query parameters of a single API call. Values are raw;
// URL encoding happens once when the request is built.
type Params map[string]string

// Option follows the functional options pattern used by New to configure
// optional collaborators.
type Option func(*Client)

// Client calls the QWeather API. Construct it with New; the zero value is
// not usable. A Client is safe for concurrent use.
type Client struct {
	apiHost  string
	geoHost  string
	publicID string
	signer   *sign.Signer
	lang     string
	unit     string
	timeout  time.Duration
	http     HTTPDoer
	log      *slog.Logger
	mutators []RequestMutator

	// now is the clock for the t parameter, replaceable in tests.
	now func() time.Time
}

// New constructs a Client for the given credentials. Without
// WithSubscription the free developer host is used.
func New(publicID, privateKey string, opts ...Option) *Client {
	c := &Client{
		apiHost:  hostDevAPI,
		geoHost:  hostGeoAPI,
		publicID: publicID,
		signer:   sign.New(privateKey),
		timeout:  defaultTimeout,
		log:      slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: c.timeout}
	}
	return c
}

// WithSubscription switches to the subscription host. The free developer
// host is the default.
func WithSubscription() Option {
	return func(c *Client) {
		c.apiHost = hostAPI
	}
}

// WithLanguage sets the lang parameter sent with every request. See
// https://dev.qweather.com/docs/resource/language/ for supported values.
func WithLanguage(lang string) Option {
	return func(c *Client) {
		c.lang = lang
	}
}

// WithUnit sets the unit parameter: "m" for metric (the provider default)
// or "i" for imperial.
func WithUnit(unit string) Option {
	return func(c *Client) {
		c.unit = unit
	}
}

// WithHTTPClient overrides the HTTP client used for requests. WithTimeout
// has no effect on a client installed here.
func WithHTTPClient(client HTTPDoer) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithTimeout sets the request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger injects a custom slog logger for request and decode logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.log = logger
		}
	}
}

// WithAPIHost overrides the weather API host. Useful for tests and proxies.
func WithAPIHost(host string) Option {
	return func(c *Client) {
		c.apiHost = host
	}
}

// WithGeoHost overrides the GeoAPI host.
func WithGeoHost(host string) Option {
	return func(c *Client) {
		c.geoHost = host
	}
}

// WithRequestMutator registers a mutator that runs on every outbound
// request before dispatch.
func WithRequestMutator(mutator RequestMutator) Option {
	return func(c *Client) {
		if mutator != nil {
			c.mutators = append(c.mutators, mutator)
		}
	}
}

// baseParams returns the persistent parameters carried by every request.
func (c *Client) baseParams() Params {
	p := Params{"publicid": c.publicID}
	if c.lang != "" {
		p["lang"] = c.lang
	}
	if c.unit != "" {
		p["unit"] = c.unit
	}
	return p
}

// get signs and dispatches a request and applies the provider status-code
// contract: a body that is not a JSON object is a transport error, a
// non-"200" code is a provider error, and an absent code counts as success
// as long as the HTTP status agrees.
func (c *Client) get(ctx context.Context, rawURL string, params Params) ([]byte, error) {
	merged := Params{}
	for k, v := range params {
		if v != "" {
			merged[k] = v
		}
	}
	// The persistent parameters win over per-call ones, so a request can
	// never clobber the credentials.
	for k, v := range c.baseParams() {
		merged[k] = v
	}
	merged["t"] = strconv.FormatInt(c.now().Unix(), 10)
	merged[sign.SignatureKey] = c.signer.Sign(merged)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	query := url.Values{}
	for k, v := range merged {
		query.Set(k, v)
	}
	req.URL.RawQuery = query.Encode()

	for _, mutate := range c.mutators {
		if err := mutate(req); err != nil {
			return nil, &TransportError{Err: err}
		}
	}

	traceID := newTraceID()
	c.log.DebugContext(ctx, "qweather request", "traceId", traceID, "url", req.URL.Redacted())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	var status struct {
		Code string `json:"code"`
	}
	if err := jsonutil.Unmarshal(body, &status); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("non-JSON response: %w", err)}
	}
	if status.Code != "" && status.Code != codeOK {
		c.log.WarnContext(ctx, "qweather provider error", "traceId", traceID, "code", status.Code)
		return nil, &ProviderError{Code: status.Code}
	}
	// The v1 endpoints carry no code field; there the HTTP status is the
	// only error discriminator.
	if status.Code == "" && (resp.StatusCode < http.StatusOK || resp.StatusCode > 299) {
		c.log.WarnContext(ctx, "qweather provider error", "traceId", traceID, "status", resp.StatusCode)
		return nil, &ProviderError{Code: strconv.Itoa(resp.StatusCode)}
	}
	return body, nil
}

// requestAPI runs a call against an envelope-wrapped endpoint. It is a
// function rather than a method so the payload type can stay generic.
func requestAPI[T any](ctx context.Context, c *Client, rawURL string, params Params) (*Envelope[T], error) {
	body, err := c.get(ctx, rawURL, params)
	if err != nil {
		return nil, err
	}
	env, err := decodeEnvelope[T](body)
	if err != nil {
		c.log.ErrorContext(ctx, "qweather response decode failed", "url", rawURL, "error", err)
		return nil, &DecodeError{Err: err}
	}
	return env, nil
}

// requestPlain runs a call against an endpoint without the common envelope
// (the v1 air quality family) and decodes the whole body into T.
func requestPlain[T any](ctx context.Context, c *Client, rawURL string, params Params) (*T, error) {
	body, err := c.get(ctx, rawURL, params)
	if err != nil {
		return nil, err
	}
	var out T
	if err := jsonutil.Unmarshal(body, &out); err != nil {
		c.log.ErrorContext(ctx, "qweather response decode failed", "url", rawURL, "error", err)
		return nil, &DecodeError{Err: err}
	}
	return &out, nil
}
