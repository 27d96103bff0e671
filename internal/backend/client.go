package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

type AuthMode string

const (
	AuthCookie AuthMode = "cookie"
	AuthBearer AuthMode = "bearer"
)

// AccessTokenCookie is the cookie the backend issues on login.
const AccessTokenCookie = "access_token"

const requestIDHeader = "X-Request-ID"

type Credentials struct {
	Token string
}

func (c Credentials) IsZero() bool {
	return c.Token == ""
}

type credentialsKey struct{}

// WithCredentials attaches the visitor's backend credentials to ctx. Every
// Client call made with the returned context carries them.
func WithCredentials(ctx context.Context, c Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey{}, c)
}

func CredentialsFrom(ctx context.Context) (Credentials, bool) {
	c, ok := ctx.Value(credentialsKey{}).(Credentials)

	return c, ok && !c.IsZero()
}

// Client is the REST wrapper over the backend API. Calls are fire-once: no
// retries and no client-side timeout.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	mode    AuthMode
	log     *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func WithAuthMode(mode AuthMode) Option {
	return func(c *Client) {
		c.mode = mode
	}
}

func New(baseURL string, log *slog.Logger, opts ...Option) (*Client, error) {
	const op = "backend.New"

	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%s: base url %q must be absolute", op, baseURL)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{},
		mode:    AuthCookie,
		log:     log,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

type errorBody struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
	Error     string `json:"error"`
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path

	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	return u.String()
}

// send issues one request. A non-2xx response is drained, closed and turned
// into *Error; on success the caller owns the response body.
func (c *Client) send(ctx context.Context, op, method, path string, query url.Values, body any) (*http.Response, error) {
	var reader io.Reader

	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}

		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return nil, &Error{Op: op, Err: err}
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	reqID := middleware.GetReqID(ctx)
	if reqID == "" {
		reqID = uuid.NewString()
	}

	req.Header.Set(requestIDHeader, reqID)

	if creds, ok := CredentialsFrom(ctx); ok {
		c.attach(req, creds)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("backend request failed",
			slog.String("op", op),
			slog.String("method", method),
			slog.String("path", path),
		)

		return nil, &Error{Op: op, Err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		defer resp.Body.Close()

		return nil, decodeError(op, resp)
	}

	return resp, nil
}

func (c *Client) attach(req *http.Request, creds Credentials) {
	switch c.mode {
	case AuthBearer:
		req.Header.Set("Authorization", "Bearer "+creds.Token)
	default:
		req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: creds.Token})
	}
}

// call runs send and decodes a JSON body into out when out is not nil.
func (c *Client) call(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	resp, err := c.send(ctx, op, method, path, query, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err = render.DecodeJSON(resp.Body, out); err != nil {
		return &Error{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}

	return nil
}

func decodeError(op string, resp *http.Response) *Error {
	e := &Error{Op: op, StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(raw) == 0 {
		return e
	}

	var body errorBody
	if err = json.Unmarshal(raw, &body); err != nil {
		return e
	}

	e.Code = body.ErrorCode
	e.Msg = body.Message

	if e.Msg == "" {
		e.Msg = body.Error
	}

	return e
}
