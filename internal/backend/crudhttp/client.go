// Package crudhttp implements the service.Service interface against a JSON
// CRUD endpoint (GET/POST /crud, PUT/DELETE /crud/{id}).
package crudhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"todolist/internal/config"
	"todolist/internal/service"
)

const (
	// ResourcePath is the collection path on the server.
	ResourcePath = "/crud"

	// APITimeout is the per-request timeout when none is configured.
	APITimeout = config.DefaultTimeout

	// RequestIDHeader carries a per-request uuid for log correlation.
	RequestIDHeader = "X-Request-ID"

	// maxErrorBody caps how much of a failed response is kept in StatusError.
	maxErrorBody = 512
)

// Client implements service.Service over HTTP.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	timeout    time.Duration
	listSchema *jsonschema.Schema
}

// New creates a client for cfg.BaseURL.
func New(cfg *config.Config) (*Client, error) {
	c, err := NewWithHTTPClient(cfg.BaseURL, &http.Client{})
	if err != nil {
		return nil, err
	}
	if cfg.Timeout > 0 {
		c.timeout = cfg.Timeout
	}
	return c, nil
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	schema, err := compileListSchema()
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL:    u,
		httpClient: httpClient,
		timeout:    APITimeout,
		listSchema: schema,
	}, nil
}

// parseBaseURL validates the configured base URL.
func parseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimRight(strings.TrimSpace(raw), "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: missing host", raw)
	}
	return u, nil
}

// ListTasks returns all tasks in server order.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	body, err := c.do(ctx, http.MethodGet, ResourcePath, nil)
	if err != nil {
		return nil, err
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &SchemaError{Reason: "response is not JSON: " + err.Error()}
	}
	if err := c.listSchema.Validate(raw); err != nil {
		return nil, &SchemaError{Reason: err.Error()}
	}

	var tasks []service.Task
	if err := json.Unmarshal(body, &tasks); err != nil {
		return nil, &SchemaError{Reason: err.Error()}
	}
	return tasks, nil
}

// CreateTask posts a new task. The returned task is whatever the server
// echoed back; a body that does not decode yields a zero Task.
func (c *Client) CreateTask(ctx context.Context, in service.TaskInput) (service.Task, error) {
	body, err := c.do(ctx, http.MethodPost, ResourcePath, in)
	if err != nil {
		return service.Task{}, err
	}
	return decodeTask(body), nil
}

// UpdateTask replaces the fields of task id.
func (c *Client) UpdateTask(ctx context.Context, id int, in service.TaskInput) (service.Task, error) {
	body, err := c.do(ctx, http.MethodPut, taskPath(id), in)
	if err != nil {
		return service.Task{}, err
	}
	return decodeTask(body), nil
}

// DeleteTask removes task id.
func (c *Client) DeleteTask(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, taskPath(id), nil)
	return err
}

func taskPath(id int) string {
	return ResourcePath + "/" + strconv.Itoa(id)
}

// do sends one request and returns the response body of a 2xx reply.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	endpoint := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrapError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapError(fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, &StatusError{
			Method:    method,
			Path:      path,
			Code:      resp.StatusCode,
			Body:      strings.TrimSpace(string(body)),
			RequestID: requestID,
		}
	}
	return body, nil
}

func decodeTask(body []byte) service.Task {
	var task service.Task
	if len(bytes.TrimSpace(body)) == 0 {
		return task
	}
	if err := json.Unmarshal(body, &task); err != nil {
		return service.Task{}
	}
	return task
}

// wrapError turns transport errors into short messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("request timed out")
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("request canceled")
	}
	return err
}
