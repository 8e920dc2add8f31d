// internal/platform/client.go
//
// HTTP client for the compute platform API. All calls are read-only: the
// toolkit compares and reports, it never mutates remote state.

package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client is the slice of the platform API the toolkit consumes. Tests
// substitute in-memory doubles; production wires RESTClient.
type Client interface {
	GetTaskGroup(ctx context.Context, id string) (TaskGroup, error)
	GetWorkRequirement(ctx context.Context, id string) (WorkRequirement, error)
	ListWorkerPools(ctx context.Context) ([]WorkerPool, error)
	GetWorkerPool(ctx context.Context, id string) (WorkerPool, error)
	ListNodes(ctx context.Context, poolID string) ([]Node, error)
}

const defaultTimeout = 30 * time.Second

// RESTClient talks JSON over HTTP with API-key auth.
type RESTClient struct {
	baseURL string
	key     string
	secret  string
	httpc   *http.Client
}

// NewRESTClient builds a client for the given API root, e.g.
// "https://portal.example.com/api".
func NewRESTClient(baseURL, key, secret string) *RESTClient {
	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     key,
		secret:  secret,
		httpc:   &http.Client{Timeout: defaultTimeout},
	}
}

func (c *RESTClient) GetTaskGroup(ctx context.Context, id string) (TaskGroup, error) {
	var tg TaskGroup
	err := c.get(ctx, "/work/taskGroups/"+url.PathEscape(id), "task group", id, &tg)
	return tg, err
}

func (c *RESTClient) GetWorkRequirement(ctx context.Context, id string) (WorkRequirement, error) {
	var wr WorkRequirement
	err := c.get(ctx, "/work/requirements/"+url.PathEscape(id), "work requirement", id, &wr)
	return wr, err
}

func (c *RESTClient) ListWorkerPools(ctx context.Context) ([]WorkerPool, error) {
	var payload struct {
		Items []WorkerPool `json:"items"`
	}
	if err := c.get(ctx, "/workerPools", "worker pool listing", "", &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

func (c *RESTClient) GetWorkerPool(ctx context.Context, id string) (WorkerPool, error) {
	var wp WorkerPool
	err := c.get(ctx, "/workerPools/"+url.PathEscape(id), "worker pool", id, &wp)
	return wp, err
}

func (c *RESTClient) ListNodes(ctx context.Context, poolID string) ([]Node, error) {
	var payload struct {
		Items []Node `json:"items"`
	}
	path := "/workerPools/" + url.PathEscape(poolID) + "/nodes"
	if err := c.get(ctx, path, "worker pool", poolID, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

// get performs one authenticated GET and decodes the JSON body into out.
// A 404 becomes a NotFoundError for the named resource; every other non-200
// status surfaces the response body unchanged.
func (c *RESTClient) get(ctx context.Context, path, kind, ref string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("platform: build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("gd-key %s:%s", c.key, c.secret))
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("platform: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &NotFoundError{Kind: kind, Ref: ref}
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = resp.Status
		}
		return fmt.Errorf("platform: GET %s: %s", path, msg)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("platform: decode %s: %w", path, err)
	}
	return nil
}
