package backend

//go:generate go run go.uber.org/mock/mockgen -source=./backend.go -destination=./mocks/backend_mock.go -package=mocks

import (
	"agrirent/config"
	"agrirent/infras/otel"
	"agrirent/shared/constant"
	"agrirent/shared/failure"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	otelMethodAttribute = "backend.method"
	otelStatusAttribute = "backend.status"
	maxErrorBodyBytes   = 64 << 10
)

// Client performs calls against the marketplace REST backend. The backend session
// cookie carried by ctx (see WithCredentials) is attached to every non anonymous call.
type Client interface {
	Do(ctx context.Context, req Request, out any) (*Response, error)
}

// Request describes one backend call. Body is JSON encoded, Form is sent as multipart.
type Request struct {
	Method    string
	Path      string
	Query     url.Values
	Body      any
	Form      *Form
	Anonymous bool
}

// Response carries what callers need beyond the decoded body.
type Response struct {
	Status  int
	Cookies []*http.Cookie
}

// Cookie returns the named cookie set by the backend, if any.
func (r *Response) Cookie(name string) (*http.Cookie, bool) {
	for _, c := range r.Cookies {
		if c.Name == name {
			return c, true
		}
	}

	return nil, false
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type clientImpl struct {
	baseURL    string
	cookieName string
	http       *http.Client
	otel       otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Client {
	return &clientImpl{
		baseURL:    strings.TrimRight(cfg.Backend.BaseURL, "/"),
		cookieName: cfg.Backend.SessionCookie,
		http: &http.Client{
			Timeout:   time.Duration(cfg.Backend.TimeoutSeconds) * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		otel: ot,
	}
}

// WithCredentials stores the backend session cookie value for subsequent calls.
func WithCredentials(ctx context.Context, cookie string) context.Context {
	return context.WithValue(ctx, constant.ContextKeyBackendCookie, cookie)
}

func credentials(ctx context.Context) string {
	cookie, _ := ctx.Value(constant.ContextKeyBackendCookie).(string)

	return cookie
}

func (c *clientImpl) Do(ctx context.Context, req Request, out any) (res *Response, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".backend")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelMethodAttribute:                  req.Method,
		constant.OtelBackendPathAttributeKey: req.Path,
	})

	httpReq, err := c.build(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to build backend request: %w", err)
	}

	start := time.Now()

	httpRes, err := c.http.Do(httpReq)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("path", req.Path).Msg("backend request failed")

		return nil, failure.BadGateway(err) //nolint:wrapcheck
	}
	defer httpRes.Body.Close()

	scope.SetAttribute(otelStatusAttribute, httpRes.StatusCode)

	log.Debug().
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", httpRes.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("backend request")

	res = &Response{
		Status:  httpRes.StatusCode,
		Cookies: httpRes.Cookies(),
	}

	if httpRes.StatusCode >= http.StatusBadRequest {
		return res, upstreamError(httpRes)
	}

	if out == nil || httpRes.StatusCode == http.StatusNoContent {
		return res, nil
	}

	body, err := io.ReadAll(httpRes.Body)
	if err != nil {
		return res, failure.BadGateway(fmt.Errorf("failed to read backend response: %w", err)) //nolint:wrapcheck
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return res, nil
	}

	if err = json.Unmarshal(body, out); err != nil {
		log.Error().Err(err).Str("path", req.Path).Msg("failed to decode backend response")

		return res, failure.BadGateway(fmt.Errorf("unexpected backend response: %w", err)) //nolint:wrapcheck
	}

	return res, nil
}

func (c *clientImpl) build(ctx context.Context, req Request) (*http.Request, error) {
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)

	switch {
	case req.Form != nil:
		encoded, formContentType, err := req.Form.encode()
		if err != nil {
			return nil, err
		}

		body, contentType = encoded, formContentType
	case req.Body != nil:
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode body: %w", err)
		}

		body, contentType = bytes.NewReader(encoded), constant.ContentTypeJSON
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	httpReq.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)

	if contentType != "" {
		httpReq.Header.Set(constant.RequestHeaderContentType, contentType)
	}

	if requestID, ok := ctx.Value(constant.ContextKeyRequestID).(string); ok && requestID != "" {
		httpReq.Header.Set(constant.RequestHeaderRequestID, requestID)
	}

	if cookie := credentials(ctx); cookie != "" && !req.Anonymous {
		httpReq.AddCookie(&http.Cookie{Name: c.cookieName, Value: cookie})
	}

	return httpReq, nil
}

func upstreamError(res *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodyBytes))

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil && len(raw) > 0 {
		log.Warn().Int("status", res.StatusCode).Msg("backend returned a non JSON error body")
	}

	message := body.Error
	if message == "" {
		message = body.Message
	}

	return failure.FromUpstream(res.StatusCode, message) //nolint:wrapcheck
}

// IsStatus reports whether err is a backend error with the given status.
func IsStatus(err error, status int) bool {
	var f *failure.Failure

	return errors.As(err, &f) && f.Code == status
}
