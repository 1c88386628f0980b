// Package client is a Go consumer of the employee-management API. List
// responses are cached per collection and invalidated after the caller's own
// successful mutations; concurrent edits by others are only observed on the
// next fetch.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Collection identifies a cached resource collection.
type Collection string

const (
	Departments Collection = "departments"
	Employees   Collection = "employees"
)

// Operation is a mutating API call.
type Operation string

const (
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Invalidates reports which cached collections a successful operation on a
// resource invalidates. It is a pure function so the invalidation policy can
// be tested on its own.
func Invalidates(res Collection, op Operation) []Collection {
	switch op {
	case OpCreate, OpUpdate, OpDelete:
		return []Collection{res}
	default:
		return nil
	}
}

// APIError is the decoded error body of a non-2xx response.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d %s: %s", e.Status, e.Code, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *collectionCache
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cache:      newCollectionCache(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) DepartmentsAPI() *DepartmentsClient {
	return &DepartmentsClient{c: c}
}

func (c *Client) EmployeesAPI() *EmployeesClient {
	return &EmployeesClient{c: c}
}

// listCached returns the collection from cache, fetching and storing the raw
// body on a miss.
func (c *Client) listCached(ctx context.Context, col Collection, path string, out any) error {
	if data, ok := c.cache.Get(col); ok {
		return json.Unmarshal(data, out)
	}

	data, err := c.doRaw(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	c.cache.Set(col, data)
	return json.Unmarshal(data, out)
}

func (c *Client) afterMutation(res Collection, op Operation) {
	c.cache.Invalidate(Invalidates(res, op)...)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	data, err := c.doRaw(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

func (c *Client) doRaw(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, decodeAPIError(resp.StatusCode, data)
	}
	return data, nil
}

func decodeAPIError(status int, data []byte) error {
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	apiErr := &APIError{Status: status}
	if json.Unmarshal(data, &body) == nil {
		apiErr.Code = body.Error.Code
		apiErr.Message = body.Error.Message
	}
	return apiErr
}
