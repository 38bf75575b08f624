// Package sdk is the Go client for the GamingTech Account and Catalog
// services.
package sdk

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/celerix-dev/gamingtech-store/pkg/schema"
	"github.com/go-resty/resty/v2"
)

const (
	// DefaultAttempts is the total number of tries for a request that fails
	// in transport.
	DefaultAttempts = 3
	// DefaultRetryWait is the first backoff delay.
	DefaultRetryWait = 200 * time.Millisecond
	DefaultTimeout   = 30 * time.Second
)

// Client talks to both services over HTTP. It is safe for concurrent use.
type Client struct {
	accounts *resty.Client
	catalog  *resty.Client
}

var _ GamingTech = (*Client)(nil)

type options struct {
	timeout    time.Duration
	attempts   int
	retryWait  time.Duration
	skipVerify bool
	logger     resty.Logger
}

// Option tunes a Client.
type Option func(*options)

// WithTimeout bounds each attempt.
func WithTimeout(d time.Duration) Option { return func(o *options) { o.timeout = d } }

// WithRetry sets the total attempt count and the first backoff delay.
func WithRetry(attempts int, wait time.Duration) Option {
	return func(o *options) {
		o.attempts = attempts
		o.retryWait = wait
	}
}

// WithInsecureTLS accepts any server certificate, for services running on
// their self-signed development certificate.
func WithInsecureTLS() Option { return func(o *options) { o.skipVerify = true } }

// WithLogger routes retry warnings and client diagnostics to l.
func WithLogger(l resty.Logger) Option { return func(o *options) { o.logger = l } }

// Connect returns a client for the services at the given base URLs, such as
// "http://localhost:3001". No connection is made until the first call.
func Connect(accountAddr, catalogAddr string, opts ...Option) *Client {
	o := options{timeout: DefaultTimeout, attempts: DefaultAttempts, retryWait: DefaultRetryWait}
	for _, opt := range opts {
		opt(&o)
	}
	return &Client{
		accounts: newTransport(accountAddr, o),
		catalog:  newTransport(catalogAddr, o),
	}
}

func newTransport(base string, o options) *resty.Client {
	rc := resty.New().
		SetBaseURL(base).
		SetTimeout(o.timeout).
		SetHeader("Accept", "application/json").
		SetRetryWaitTime(o.retryWait).
		SetRetryMaxWaitTime(8 * o.retryWait).
		// Only transport failures are retried; an HTTP answer is final.
		AddRetryCondition(func(_ *resty.Response, err error) bool { return err != nil })
	if o.attempts > 1 {
		rc.SetRetryCount(o.attempts - 1)
	}
	if o.skipVerify {
		rc.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	if o.logger != nil {
		rc.SetLogger(o.logger)
		logger := o.logger
		rc.AddRetryHook(func(r *resty.Response, err error) {
			attempt := 0
			if r != nil && r.Request != nil {
				attempt = r.Request.Attempt
			}
			logger.Warnf("attempt %d against %s failed: %v", attempt, base, err)
		})
	}
	return rc
}

type errorBody struct {
	Message string `json:"message"`
}

// call executes one request and decodes a 2xx body into out, which may be nil.
func call(ctx context.Context, rc *resty.Client, method, path string, body, out any) error {
	req := rc.R().SetContext(ctx).SetError(&errorBody{})
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		apiErr := &APIError{Status: resp.StatusCode()}
		if eb, ok := resp.Error().(*errorBody); ok {
			apiErr.Message = eb.Message
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(apiErr.Status)
		}
		return apiErr
	}
	return nil
}

func (c *Client) Register(ctx context.Context, firstName, lastName, email, password string) (*RegisterResponse, error) {
	in := map[string]string{
		"firstName": firstName,
		"lastName":  lastName,
		"email":     email,
		"password":  password,
	}
	var out RegisterResponse
	if err := call(ctx, c.accounts, http.MethodPost, "/api/auth/register", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	in := map[string]string{"email": email, "password": password}
	if err := call(ctx, c.accounts, http.MethodPost, "/api/auth/login", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Verify asks the Account Service to check token. An invalid token is an
// *APIError with status 401.
func (c *Client) Verify(ctx context.Context, token string) (*VerifyResponse, error) {
	var out VerifyResponse
	if err := call(ctx, c.accounts, http.MethodPost, "/api/auth/verify", map[string]string{"token": token}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Users(ctx context.Context) ([]schema.PublicUser, error) {
	var out struct {
		Users []schema.PublicUser `json:"users"`
	}
	if err := call(ctx, c.accounts, http.MethodGet, "/api/users", nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (c *Client) Products(ctx context.Context, category string) ([]schema.Product, error) {
	path := "/api/products"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}
	var out []schema.Product
	if err := call(ctx, c.catalog, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Product(ctx context.Context, id int) (*schema.Product, error) {
	var out schema.Product
	if err := call(ctx, c.catalog, http.MethodGet, "/api/products/"+strconv.Itoa(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Components(ctx context.Context) (map[schema.ComponentType][]schema.Component, error) {
	out := map[schema.ComponentType][]schema.Component{}
	if err := call(ctx, c.catalog, http.MethodGet, "/api/components", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ComponentsOfType(ctx context.Context, kind string) ([]schema.Component, error) {
	var out []schema.Component
	if err := call(ctx, c.catalog, http.MethodGet, "/api/components/"+url.PathEscape(kind), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Contact(ctx context.Context, m schema.ContactMessage) (*ContactResponse, error) {
	var out ContactResponse
	if err := call(ctx, c.catalog, http.MethodPost, "/api/contact", m, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) BuildPC(ctx context.Context, req schema.BuildRequest) (*schema.BuildQuote, error) {
	var out schema.BuildQuote
	if err := call(ctx, c.catalog, http.MethodPost, "/api/build-pc", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health pings one service.
func (c *Client) Health(ctx context.Context, svc Service) (*HealthStatus, error) {
	rc := c.catalog
	if svc == AccountService {
		rc = c.accounts
	}
	var out HealthStatus
	if err := call(ctx, rc, http.MethodGet, "/api/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
