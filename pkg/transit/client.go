package transit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Client is the HTTP wrapper for the transport backend REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ ITransit = (*Client)(nil)

// NewClient creates a new transport backend client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// AgentAction submits an intent envelope via POST /agent/action.
func (c *Client) AgentAction(ctx context.Context, req AgentActionRequest) (*AgentActionResponse, error) {
	url := fmt.Sprintf("%s/agent/action", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal agent action request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build agent action request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call agent action API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("agent action API error %d: %s", resp.StatusCode, string(raw))
	}

	var out AgentActionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode agent action response: %w", err)
	}
	return &out, nil
}

// MatchScreenshot uploads an image via multipart POST /vision/match.
func (c *Client) MatchScreenshot(ctx context.Context, filename string, image io.Reader) (*VisionMatch, error) {
	url := fmt.Sprintf("%s/vision/match", c.baseURL)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart form: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("failed to copy image into form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to build vision match request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call vision match API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("vision match API error %d: %s", resp.StatusCode, string(raw))
	}

	var out VisionMatch
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode vision match response: %w", err)
	}
	return &out, nil
}

// getList fetches a JSON array from path into out.
func (c *Client) getList(ctx context.Context, path string, out any) error {
	url := fmt.Sprintf("%s%s", c.baseURL, path)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("transit API %s error %d: %s", path, resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// ListTrips fetches today's trips via GET /trips.
func (c *Client) ListTrips(ctx context.Context) ([]Trip, error) {
	var out []Trip
	if err := c.getList(ctx, "/trips", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListDeployments fetches deployments via GET /deployments.
func (c *Client) ListDeployments(ctx context.Context) ([]Deployment, error) {
	var out []Deployment
	if err := c.getList(ctx, "/deployments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListVehicles fetches the fleet via GET /vehicles.
func (c *Client) ListVehicles(ctx context.Context) ([]Vehicle, error) {
	var out []Vehicle
	if err := c.getList(ctx, "/vehicles", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListStops fetches stops via GET /stops.
func (c *Client) ListStops(ctx context.Context) ([]Stop, error) {
	var out []Stop
	if err := c.getList(ctx, "/stops", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPaths fetches paths via GET /paths.
func (c *Client) ListPaths(ctx context.Context) ([]Path, error) {
	var out []Path
	if err := c.getList(ctx, "/paths", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRoutes fetches routes via GET /routes.
func (c *Client) ListRoutes(ctx context.Context) ([]Route, error) {
	var out []Route
	if err := c.getList(ctx, "/routes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAvailableDrivers fetches free drivers via GET /drivers/available.
func (c *Client) ListAvailableDrivers(ctx context.Context) ([]Driver, error) {
	var out []Driver
	if err := c.getList(ctx, "/drivers/available", &out); err != nil {
		return nil, err
	}
	return out, nil
}
