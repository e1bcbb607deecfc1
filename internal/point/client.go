package point

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/pointnetwork/PointBlogSoftware/internal/telemetry/metrics"
)

// maxBodyLogLen bounds the response body kept in a HostError.
const maxBodyLogLen = 512

// Client talks to the HTTP API of a point node.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	metricsManager *metrics.Manager
}

func NewClient(baseURL string, timeout time.Duration, metricsManager *metrics.Manager) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}, metricsManager)
}

func NewClientWithHTTP(baseURL string, httpClient *http.Client, metricsManager *metrics.Manager) *Client {
	return &Client{
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		httpClient:     httpClient,
		metricsManager: metricsManager,
	}
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

func (c *Client) url(path string) string {
	return c.baseURL + path
}

// getData issues a GET and returns the data field of the response envelope.
func (c *Client) getData(ctx context.Context, op, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: new request: %w", op, err)
	}
	return c.doEnvelope(op, req)
}

// postJSON issues a POST with a json body and returns the data field of the response envelope.
func (c *Client) postJSON(ctx context.Context, op, path string, body any) (json.RawMessage, error) {
	reqBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%s: marshal body: %w", op, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("%s: new request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doEnvelope(op, req)
}

func (c *Client) doEnvelope(op string, req *http.Request) (json.RawMessage, error) {
	respBytes, _, err := c.do(op, req)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(respBytes, &env); err != nil {
		return nil, fmt.Errorf("%s: unmarshal response: %w", op, err)
	}
	return env.Data, nil
}

// do executes the request and returns the raw body and the response content type.
func (c *Client) do(op string, req *http.Request) ([]byte, string, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("%s: read response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body := string(respBytes)
		if len(body) > maxBodyLogLen {
			body = body[:maxBodyLogLen]
		}
		return nil, "", &HostError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}

	return respBytes, resp.Header.Get("Content-Type"), nil
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
