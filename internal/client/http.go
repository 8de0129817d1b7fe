package client

import (
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

	"github.com/qawafel/crm-backend/internal/bootstrap"
	"github.com/qawafel/crm-backend/internal/dashboard"
	"github.com/qawafel/crm-backend/internal/intake"
	"github.com/qawafel/crm-backend/internal/leads"
	"github.com/qawafel/crm-backend/internal/messaging"
	"github.com/qawafel/crm-backend/pkg/enums"
	pkgerrors "github.com/qawafel/crm-backend/pkg/errors"
	"github.com/qawafel/crm-backend/pkg/types"
)

const (
	defaultTimeout         = 30 * time.Second
	errorBodyReadLimit     = 64 * 1024
	pathInit               = "/api/init"
	pathMutate             = "/api/mutate"
	pathLeadByToken        = "/api/get-lead-by-token"
	pathUpdateLeadFromForm = "/api/update-lead-from-form"
	pathGenerateMessage    = "/api/generate-message"
	pathDashboard          = "/api/dashboard"
)

var errBaseURLRequired = errors.New("api base url is required")

// HTTPClient talks to the CRM API over HTTP.
type HTTPClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// Option configures optional client behavior.
type Option func(*HTTPClient)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *HTTPClient) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBearerToken sends token as an operator bearer credential.
func WithBearerToken(token string) Option {
	return func(c *HTTPClient) {
		c.token = strings.TrimSpace(token)
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errBaseURLRequired
	}
	c := &HTTPClient{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

type mutateRequest struct {
	Action  enums.MutationAction `json:"action"`
	Payload any                  `json:"payload"`
}

func (c *HTTPClient) Init(ctx context.Context) (bootstrap.Snapshot, error) {
	var snap bootstrap.Snapshot
	err := c.do(ctx, http.MethodGet, pathInit, nil, &snap)
	return snap, err
}

func (c *HTTPClient) Mutate(ctx context.Context, action enums.MutationAction, payload any) error {
	var ack types.Ack
	return c.do(ctx, http.MethodPost, pathMutate, mutateRequest{Action: action, Payload: payload}, &ack)
}

func (c *HTTPClient) GetLeadByToken(ctx context.Context, token string) (leads.Lead, error) {
	var lead leads.Lead
	path := pathLeadByToken + "?" + url.Values{"token": {token}}.Encode()
	err := c.do(ctx, http.MethodGet, path, nil, &lead)
	return lead, err
}

func (c *HTTPClient) UpdateLeadFromForm(ctx context.Context, in intake.Submission) error {
	var ack types.Ack
	return c.do(ctx, http.MethodPost, pathUpdateLeadFromForm, in, &ack)
}

// GenerateMessage asks the server to draft an outreach message.
func (c *HTTPClient) GenerateMessage(ctx context.Context, req messaging.Request) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	err := c.do(ctx, http.MethodPost, pathGenerateMessage, req, &out)
	return out.Message, err
}

// Dashboard fetches the server-computed statistics.
func (c *HTTPClient) Dashboard(ctx context.Context) (dashboard.Stats, error) {
	var stats dashboard.Stats
	err := c.do(ctx, http.MethodGet, pathDashboard, nil, &stats)
	return stats, err
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "marshal request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("%s %s", method, path))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode response")
	}
	return nil
}

// decodeError rebuilds the typed error the server reported.
func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
	var body types.ErrorBody
	if err := json.Unmarshal(raw, &body); err != nil || body.Error == "" {
		return pkgerrors.New(codeForStatus(resp.StatusCode), fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}
	code := pkgerrors.Code(body.Code)
	if code == "" {
		code = codeForStatus(resp.StatusCode)
	}
	return pkgerrors.New(code, body.Error)
}

func codeForStatus(status int) pkgerrors.Code {
	switch status {
	case http.StatusBadRequest:
		return pkgerrors.CodeValidation
	case http.StatusUnauthorized:
		return pkgerrors.CodeUnauthorized
	case http.StatusForbidden:
		return pkgerrors.CodeForbidden
	case http.StatusNotFound:
		return pkgerrors.CodeNotFound
	case http.StatusMethodNotAllowed:
		return pkgerrors.CodeMethodNotAllowed
	case http.StatusTooManyRequests:
		return pkgerrors.CodeRateLimit
	case http.StatusServiceUnavailable:
		return pkgerrors.CodeDependency
	default:
		return pkgerrors.CodeInternal
	}
}
